package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	"github.com/lreale4125-ux/taplinknfc/internal/errors"
)

// Sentinel lookup errors for the link registry.
var (
	ErrLinkNotFound     = errors.New("link not found")
	ErrSelectorNotFound = errors.New("selector not found")
	ErrKeychainNotFound = errors.New("keychain not found")
)

// LinkRecord is the admin listing view: a link joined with its company
// name.
type LinkRecord struct {
	Link        *entity.Link
	CompanyName string
}

// ResolvedTarget carries everything resolution needs in one query: the
// link's own URL plus the redirect URL of its selector, when one is bound.
type ResolvedTarget struct {
	LinkID      uuid.UUID
	URL         *string
	SelectorID  *uuid.UUID
	SelectorURL *string
}

// Destination applies the resolution precedence: a bound selector always
// wins over a (possibly stale) direct URL.
func (t *ResolvedTarget) Destination() (string, bool) {
	if t.SelectorID != nil && t.SelectorURL != nil && *t.SelectorURL != "" {
		return *t.SelectorURL, true
	}
	if t.URL != nil && *t.URL != "" {
		return *t.URL, true
	}

	return "", false
}

// LinkRepository persists and retrieves links.
type LinkRepository interface {
	// Create persists a new link.
	Create(ctx context.Context, link *entity.Link) error

	// FindByID retrieves a link by ID, or ErrLinkNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Link, error)

	// ResolveTarget fetches the link joined with its selector in a single
	// query, or ErrLinkNotFound.
	ResolveTarget(ctx context.Context, id uuid.UUID) (*ResolvedTarget, error)

	// List returns all links with their company names, newest first.
	List(ctx context.Context) ([]*LinkRecord, error)
}

// SelectorRepository persists and retrieves selectors.
type SelectorRepository interface {
	// Create persists a new selector.
	Create(ctx context.Context, selector *entity.Selector) error

	// FindByID retrieves a selector by ID, or ErrSelectorNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Selector, error)

	// UpdateRedirectURL repoints the selector, and with it every link that
	// references it. Returns ErrSelectorNotFound when no row matched.
	UpdateRedirectURL(ctx context.Context, id uuid.UUID, redirectURL string) error

	// List returns all selectors ordered by name.
	List(ctx context.Context) ([]*entity.Selector, error)
}

// KeychainRepository persists and retrieves keychains.
type KeychainRepository interface {
	// Create persists a new keychain. Returns a conflict AppError when the
	// keychain number is already taken.
	Create(ctx context.Context, keychain *entity.Keychain) error

	// FindByNumber retrieves a keychain by its normalized number, or
	// ErrKeychainNotFound.
	FindByNumber(ctx context.Context, number string) (*entity.Keychain, error)

	// FindByID retrieves a keychain by ID, or ErrKeychainNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Keychain, error)

	// List returns all keychains, newest first.
	List(ctx context.Context) ([]*entity.Keychain, error)
}
