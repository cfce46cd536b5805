package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/lreale4125-ux/taplinknfc/internal/delivery/http/middleware"
	"github.com/lreale4125-ux/taplinknfc/internal/delivery/http/response"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"
)

// WalletHandler serves the wallet view and POS payments.
type WalletHandler struct {
	uc usecase.LedgerUsecase
}

// NewWalletHandler is the constructor for WalletHandler, injected by Fx.
func NewWalletHandler(uc usecase.LedgerUsecase) *WalletHandler {
	return &WalletHandler{uc: uc}
}

// Wallet handles GET /api/user/wallet.
func (h *WalletHandler) Wallet(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	output, err := h.uc.Wallet(c.Request().Context(), claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Payment handles POST /api/transactions/payment. The vendor is always
// the authenticated caller; a client cannot charge on someone's behalf.
func (h *WalletHandler) Payment(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	input := new(usecase.TransferInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	input.VendorID = claims.UserID
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Transfer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Payment completed")
}
