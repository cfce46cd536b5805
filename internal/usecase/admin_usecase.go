package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
)

// CreateUserInput is the admin user-creation form.
type CreateUserInput struct {
	Username           string     `json:"username" validate:"required,min=3,max=64"`
	Email              string     `json:"email" validate:"required,email"`
	Password           string     `json:"password" validate:"required,min=8,max=128"`
	Role               string     `json:"role" validate:"required"`
	CompanyID          *uuid.UUID `json:"company_id"`
	CanAccessWallet    bool       `json:"can_access_wallet"`
	CanAccessAnalytics bool       `json:"can_access_analytics"`
	CanAccessPOS       bool       `json:"can_access_pos"`
}

// CreateCompanyInput is the admin company-creation form.
type CreateCompanyInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// CreateLinkInput carries exactly one destination: URL or SelectorID.
type CreateLinkInput struct {
	Name        string     `json:"name" validate:"required,max=100"`
	Description string     `json:"description" validate:"max=500"`
	CompanyID   uuid.UUID  `json:"company_id" validate:"required"`
	URL         *string    `json:"url" validate:"omitempty,url"`
	SelectorID  *uuid.UUID `json:"selector_id"`
	CreatedBy   uuid.UUID  `json:"-"`
}

// CreateSelectorInput is the admin selector-creation form.
type CreateSelectorInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	RedirectURL string `json:"redirect_url" validate:"required,url"`
}

// UpdateSelectorInput repoints an existing selector.
type UpdateSelectorInput struct {
	RedirectURL string `json:"redirect_url" validate:"required,url"`
}

// CreateKeychainInput binds a new physical asset to a link. The number is
// stored without the QR prefix.
type CreateKeychainInput struct {
	KeychainNumber string    `json:"keychain_number" validate:"required,max=64"`
	LinkID         uuid.UUID `json:"link_id" validate:"required"`
	CreatedBy      uuid.UUID `json:"-"`
}

// AdminUsecase covers the admin-only CRUD and reporting surface.
type AdminUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*repository.UserAccount, error)

	// DeleteUser removes a user, refusing the protected bootstrap admin
	// and the caller's own account.
	DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error

	CreateCompany(ctx context.Context, input *CreateCompanyInput) (*entity.Company, error)
	ListCompanies(ctx context.Context) ([]*entity.Company, error)

	// CreateLink validates the exactly-one-destination rule and that the
	// company (and selector, when given) exist.
	CreateLink(ctx context.Context, input *CreateLinkInput) (*entity.Link, error)
	ListLinks(ctx context.Context) ([]*repository.LinkRecord, error)

	CreateSelector(ctx context.Context, input *CreateSelectorInput) (*entity.Selector, error)
	UpdateSelector(ctx context.Context, id uuid.UUID, input *UpdateSelectorInput) (*entity.Selector, error)
	ListSelectors(ctx context.Context) ([]*entity.Selector, error)

	CreateKeychain(ctx context.Context, input *CreateKeychainInput) (*entity.Keychain, error)
	ListKeychains(ctx context.Context) ([]*entity.Keychain, error)

	// KeychainQR renders the printable QR code for a keychain.
	KeychainQR(ctx context.Context, keychainID uuid.UUID) ([]byte, error)

	// AnalyticsSummary and AnalyticsDetail are the admin reports, not
	// scoped to any company.
	AnalyticsSummary(ctx context.Context, linkID uuid.UUID) ([]repository.LocationClicks, error)
	AnalyticsDetail(ctx context.Context, linkID uuid.UUID) ([]*entity.Click, error)
}
