package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/lreale4125-ux/taplinknfc/internal/delivery/http/middleware"
	"github.com/lreale4125-ux/taplinknfc/internal/delivery/http/response"
	domainerrors "github.com/lreale4125-ux/taplinknfc/internal/domain/errors"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"
)

// AdminHandler serves the admin-only management surface.
type AdminHandler struct {
	adminUC  usecase.AdminUsecase
	ledgerUC usecase.LedgerUsecase
	quoteUC  usecase.QuoteUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(adminUC usecase.AdminUsecase, ledgerUC usecase.LedgerUsecase, quoteUC usecase.QuoteUsecase) *AdminHandler {
	return &AdminHandler{
		adminUC:  adminUC,
		ledgerUC: ledgerUC,
		quoteUC:  quoteUC,
	}
}

// CreateUser handles POST /api/admin/users.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	input := new(usecase.CreateUserInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.adminUC.CreateUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Never echo the password hash back.
	user.PasswordHash = ""

	return response.Success(c, http.StatusCreated, user, "User created")
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	accounts, err := h.adminUC.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	for _, account := range accounts {
		account.User.PasswordHash = ""
	}

	return response.Success(c, http.StatusOK, accounts, "")
}

// DeleteUser handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrUserNotFound)
	}

	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	if err := h.adminUC.DeleteUser(c.Request().Context(), claims.UserID, targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted")
}

// CreateCompany handles POST /api/admin/companies.
func (h *AdminHandler) CreateCompany(c echo.Context) error {
	input := new(usecase.CreateCompanyInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid company input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	company, err := h.adminUC.CreateCompany(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, company, "Company created")
}

// ListCompanies handles GET /api/admin/companies.
func (h *AdminHandler) ListCompanies(c echo.Context) error {
	companies, err := h.adminUC.ListCompanies(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, companies, "")
}

// CreateLink handles POST /api/admin/links.
func (h *AdminHandler) CreateLink(c echo.Context) error {
	input := new(usecase.CreateLinkInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link input")
	}

	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}
	input.CreatedBy = claims.UserID

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	link, err := h.adminUC.CreateLink(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, link, "Link created")
}

// ListLinks handles GET /api/admin/links.
func (h *AdminHandler) ListLinks(c echo.Context) error {
	records, err := h.adminUC.ListLinks(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// CreateSelector handles POST /api/admin/selectors.
func (h *AdminHandler) CreateSelector(c echo.Context) error {
	input := new(usecase.CreateSelectorInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selector input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	selector, err := h.adminUC.CreateSelector(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, selector, "Selector created")
}

// UpdateSelector handles PUT /api/admin/selectors/:id.
func (h *AdminHandler) UpdateSelector(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrSelectorNotFound)
	}

	input := new(usecase.UpdateSelectorInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selector input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	selector, err := h.adminUC.UpdateSelector(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, selector, "Selector updated")
}

// ListSelectors handles GET /api/admin/selectors.
func (h *AdminHandler) ListSelectors(c echo.Context) error {
	selectors, err := h.adminUC.ListSelectors(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, selectors, "")
}

// CreateKeychain handles POST /api/admin/keychains.
func (h *AdminHandler) CreateKeychain(c echo.Context) error {
	input := new(usecase.CreateKeychainInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid keychain input")
	}

	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}
	input.CreatedBy = claims.UserID

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	keychain, err := h.adminUC.CreateKeychain(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, keychain, "Keychain created")
}

// ListKeychains handles GET /api/admin/keychains.
func (h *AdminHandler) ListKeychains(c echo.Context) error {
	keychains, err := h.adminUC.ListKeychains(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, keychains, "")
}

// KeychainQR handles GET /api/admin/keychains/:id/qrcode.
func (h *AdminHandler) KeychainQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrKeychainNotFound)
	}

	png, err := h.adminUC.KeychainQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// AdjustBalance handles POST /api/admin/adjust-balance.
func (h *AdminHandler) AdjustBalance(c echo.Context) error {
	input := new(usecase.AdjustBalanceInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adjustment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.ledgerUC.AdjustBalance(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Balance adjusted")
}

// AnalyticsSummary handles GET /api/admin/analytics/:linkId/summary.
func (h *AdminHandler) AnalyticsSummary(c echo.Context) error {
	linkID, err := uuid.Parse(c.Param("linkId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrLinkNotFound)
	}

	rows, err := h.adminUC.AnalyticsSummary(c.Request().Context(), linkID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}

// AnalyticsDetail handles GET /api/admin/analytics/:linkId/detail.
func (h *AdminHandler) AnalyticsDetail(c echo.Context) error {
	linkID, err := uuid.Parse(c.Param("linkId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrLinkNotFound)
	}

	clicks, err := h.adminUC.AnalyticsDetail(c.Request().Context(), linkID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, clicks, "")
}

// SyncPhrases handles POST /api/admin/sync-phrases.
func (h *AdminHandler) SyncPhrases(c echo.Context) error {
	var phrases []*usecase.PhraseInput
	if err := c.Bind(&phrases); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid phrase payload")
	}

	stored, err := h.quoteUC.SyncPhrases(c.Request().Context(), phrases)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"stored": stored}, "Phrases synced")
}
