package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/lreale4125-ux/taplinknfc/internal/delivery/context"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	domainerrors "github.com/lreale4125-ux/taplinknfc/internal/domain/errors"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/service"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo      repository.UserRepository
	companyRepo   repository.CompanyRepository
	linkRepo      repository.LinkRepository
	selectorRepo  repository.SelectorRepository
	keychainRepo  repository.KeychainRepository
	analyticsRepo repository.AnalyticsRepository
	hasher        service.PasswordHasher
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	CompanyRepo   repository.CompanyRepository
	LinkRepo      repository.LinkRepository
	SelectorRepo  repository.SelectorRepository
	KeychainRepo  repository.KeychainRepository
	AnalyticsRepo repository.AnalyticsRepository
	Hasher        service.PasswordHasher
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:      params.UserRepo,
		companyRepo:   params.CompanyRepo,
		linkRepo:      params.LinkRepo,
		selectorRepo:  params.SelectorRepo,
		keychainRepo:  params.KeychainRepo,
		analyticsRepo: params.AnalyticsRepo,
		hasher:        params.Hasher,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser creates an account with an explicit role, company and
// capability flags.
func (srv *adminService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	role := entity.Role(input.Role)
	if !role.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be admin, user or motivazional")
	}

	if input.CompanyID != nil {
		if _, err := srv.companyRepo.FindByID(ctx, *input.CompanyID); err != nil {
			if errors.Is(err, repository.ErrCompanyNotFound) {
				return nil, domainerrors.ErrCompanyNotFound
			}

			return nil, err
		}
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username:           input.Username,
		Email:              input.Email,
		PasswordHash:       hash,
		Role:               role,
		CompanyID:          input.CompanyID,
		CanAccessWallet:    input.CanAccessWallet,
		CanAccessAnalytics: input.CanAccessAnalytics,
		CanAccessPOS:       input.CanAccessPOS,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Admin created user",
		slog.String("userID", user.ID.String()),
		slog.String("role", string(user.Role)))

	return user, nil
}

// ListUsers returns all accounts with their company names.
func (srv *adminService) ListUsers(ctx context.Context) ([]*repository.UserAccount, error) {
	return srv.userRepo.List(ctx)
}

// DeleteUser removes a user, refusing the protected bootstrap admin and
// the caller's own account.
func (srv *adminService) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return domainerrors.ErrSelfDelete
	}

	target, err := srv.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	if target.Protected {
		return domainerrors.ErrProtectedUser
	}

	if err := srv.userRepo.Delete(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	srv.log(ctx).Info("Admin deleted user",
		slog.String("actorID", actorID.String()),
		slog.String("targetID", targetID.String()))

	return nil
}

// CreateCompany creates a tenant.
func (srv *adminService) CreateCompany(ctx context.Context, input *usecase.CreateCompanyInput) (*entity.Company, error) {
	company := &entity.Company{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// ListCompanies returns all tenants.
func (srv *adminService) ListCompanies(ctx context.Context) ([]*entity.Company, error) {
	return srv.companyRepo.List(ctx)
}

// CreateLink creates a link after validating the exactly-one-destination
// rule and resolving its references.
func (srv *adminService) CreateLink(ctx context.Context, input *usecase.CreateLinkInput) (*entity.Link, error) {
	hasURL := input.URL != nil && *input.URL != ""
	hasSelector := input.SelectorID != nil

	if hasURL == hasSelector {
		return nil, domainerrors.ErrLinkTargetInvalid
	}

	if _, err := srv.companyRepo.FindByID(ctx, input.CompanyID); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, domainerrors.ErrCompanyNotFound
		}

		return nil, err
	}

	if hasSelector {
		if _, err := srv.selectorRepo.FindByID(ctx, *input.SelectorID); err != nil {
			if errors.Is(err, repository.ErrSelectorNotFound) {
				return nil, domainerrors.ErrSelectorNotFound
			}

			return nil, err
		}
	}

	link := &entity.Link{
		CompanyID:   input.CompanyID,
		Name:        input.Name,
		Description: input.Description,
		URL:         input.URL,
		SelectorID:  input.SelectorID,
		CreatedBy:   input.CreatedBy,
	}
	if !hasURL {
		link.URL = nil
	}

	if err := srv.linkRepo.Create(ctx, link); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Admin created link", slog.String("linkID", link.ID.String()))

	return link, nil
}

// ListLinks returns all links with their company names.
func (srv *adminService) ListLinks(ctx context.Context) ([]*repository.LinkRecord, error) {
	return srv.linkRepo.List(ctx)
}

// CreateSelector creates a named redirect target.
func (srv *adminService) CreateSelector(ctx context.Context, input *usecase.CreateSelectorInput) (*entity.Selector, error) {
	selector := &entity.Selector{
		Name:        input.Name,
		RedirectURL: input.RedirectURL,
	}

	if err := srv.selectorRepo.Create(ctx, selector); err != nil {
		return nil, err
	}

	return selector, nil
}

// UpdateSelector repoints a selector, and with it every link bound to it.
func (srv *adminService) UpdateSelector(ctx context.Context, id uuid.UUID, input *usecase.UpdateSelectorInput) (*entity.Selector, error) {
	if err := srv.selectorRepo.UpdateRedirectURL(ctx, id, input.RedirectURL); err != nil {
		if errors.Is(err, repository.ErrSelectorNotFound) {
			return nil, domainerrors.ErrSelectorNotFound
		}

		return nil, err
	}

	selector, err := srv.selectorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Admin repointed selector",
		slog.String("selectorID", id.String()),
		slog.String("redirectURL", input.RedirectURL))

	return selector, nil
}

// ListSelectors returns all selectors.
func (srv *adminService) ListSelectors(ctx context.Context) ([]*entity.Selector, error) {
	return srv.selectorRepo.List(ctx)
}

// CreateKeychain binds a new physical asset to a link. The stored number
// is normalized: a QR prefix typed into the form is stripped.
func (srv *adminService) CreateKeychain(ctx context.Context, input *usecase.CreateKeychainInput) (*entity.Keychain, error) {
	number, _ := entity.NormalizeKeychainIdentifier(input.KeychainNumber)

	if _, err := srv.linkRepo.FindByID(ctx, input.LinkID); err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return nil, domainerrors.ErrLinkNotFound
		}

		return nil, err
	}

	keychain := &entity.Keychain{
		KeychainNumber: number,
		LinkID:         input.LinkID,
		CreatedBy:      input.CreatedBy,
	}

	if err := srv.keychainRepo.Create(ctx, keychain); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Admin created keychain",
		slog.String("keychainID", keychain.ID.String()),
		slog.String("number", keychain.KeychainNumber))

	return keychain, nil
}

// ListKeychains returns all keychains.
func (srv *adminService) ListKeychains(ctx context.Context) ([]*entity.Keychain, error) {
	return srv.keychainRepo.List(ctx)
}

// KeychainQR renders the printable QR code for a keychain.
func (srv *adminService) KeychainQR(ctx context.Context, keychainID uuid.UUID) ([]byte, error) {
	keychain, err := srv.keychainRepo.FindByID(ctx, keychainID)
	if err != nil {
		if errors.Is(err, repository.ErrKeychainNotFound) {
			return nil, domainerrors.ErrKeychainNotFound
		}

		return nil, err
	}

	return srv.qrcodeService.GenerateKeychainQR(keychain.KeychainNumber)
}

// AnalyticsSummary is the admin location rollup for a link, unscoped.
func (srv *adminService) AnalyticsSummary(ctx context.Context, linkID uuid.UUID) ([]repository.LocationClicks, error) {
	if err := srv.requireLink(ctx, linkID); err != nil {
		return nil, err
	}

	return srv.analyticsRepo.SummaryByLocation(ctx, linkID)
}

// AnalyticsDetail returns the raw counter rows for a link, unscoped.
func (srv *adminService) AnalyticsDetail(ctx context.Context, linkID uuid.UUID) ([]*entity.Click, error) {
	if err := srv.requireLink(ctx, linkID); err != nil {
		return nil, err
	}

	return srv.analyticsRepo.Detail(ctx, linkID)
}

func (srv *adminService) requireLink(ctx context.Context, linkID uuid.UUID) error {
	if _, err := srv.linkRepo.FindByID(ctx, linkID); err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return domainerrors.ErrLinkNotFound
		}

		return err
	}

	return nil
}
