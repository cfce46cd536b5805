package impl

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	domainerrors "github.com/lreale4125-ux/taplinknfc/internal/domain/errors"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
	mockRepo "github.com/lreale4125-ux/taplinknfc/internal/mocks/repository"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"

	"github.com/google/uuid"
)

// capturingRecorder collects enqueued events synchronously for assertions.
type capturingRecorder struct {
	mu     sync.Mutex
	events []entity.ClickEvent
}

func (r *capturingRecorder) Enqueue(event entity.ClickEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func newRedirectService(t *testing.T) (usecase.RedirectUsecase, *mockRepo.MockLinkRepository, *mockRepo.MockKeychainRepository, *capturingRecorder) {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	keychainRepo := mockRepo.NewMockKeychainRepository(t)
	recorder := &capturingRecorder{}

	service := NewRedirectService(RedirectServiceParams{
		LinkRepo:     linkRepo,
		KeychainRepo: keychainRepo,
		Recorder:     recorder,
		Logger:       testLogger(),
	})

	return service, linkRepo, keychainRepo, recorder
}

func TestRedirectService_ResolveLink_DirectURL(t *testing.T) {
	service, linkRepo, _, recorder := newRedirectService(t)
	ctx := context.Background()
	linkID := uuid.New()
	url := "https://example.com/menu"

	linkRepo.EXPECT().
		ResolveTarget(ctx, linkID).
		Return(&repository.ResolvedTarget{LinkID: linkID, URL: &url}, nil)

	destination, err := service.ResolveLink(ctx, linkID, usecase.RequestMeta{
		IPAddress: "203.0.113.9",
		UserAgent: "Mozilla/5.0",
		Referrer:  "https://search.example",
	})
	require.NoError(t, err)
	assert.Equal(t, url, destination)

	require.Len(t, recorder.events, 1)
	event := recorder.events[0]
	assert.Equal(t, linkID, event.LinkID)
	assert.Equal(t, uuid.Nil, event.KeychainID)
	assert.Equal(t, entity.SourceDirect, event.Source)
	assert.Equal(t, "203.0.113.9", event.IPAddress)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestRedirectService_ResolveLink_SelectorWins(t *testing.T) {
	service, linkRepo, _, _ := newRedirectService(t)
	ctx := context.Background()
	linkID := uuid.New()
	selectorID := uuid.New()
	staleURL := "https://example.com/old"
	selectorURL := "https://example.com/current"

	linkRepo.EXPECT().
		ResolveTarget(ctx, linkID).
		Return(&repository.ResolvedTarget{
			LinkID:      linkID,
			URL:         &staleURL,
			SelectorID:  &selectorID,
			SelectorURL: &selectorURL,
		}, nil)

	destination, err := service.ResolveLink(ctx, linkID, usecase.RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, selectorURL, destination)
}

func TestRedirectService_ResolveLink_NotFound(t *testing.T) {
	service, linkRepo, _, recorder := newRedirectService(t)
	ctx := context.Background()
	linkID := uuid.New()

	linkRepo.EXPECT().
		ResolveTarget(ctx, linkID).
		Return(nil, repository.ErrLinkNotFound)

	destination, err := service.ResolveLink(ctx, linkID, usecase.RequestMeta{})
	require.Error(t, err)
	assert.Empty(t, destination)
	assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)

	// Unresolvable requests record nothing.
	assert.Empty(t, recorder.events)
}

func TestRedirectService_ResolveLink_NoDestination(t *testing.T) {
	service, linkRepo, _, recorder := newRedirectService(t)
	ctx := context.Background()
	linkID := uuid.New()

	linkRepo.EXPECT().
		ResolveTarget(ctx, linkID).
		Return(&repository.ResolvedTarget{LinkID: linkID}, nil)

	destination, err := service.ResolveLink(ctx, linkID, usecase.RequestMeta{})
	require.Error(t, err)
	assert.Empty(t, destination)
	assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
	assert.Empty(t, recorder.events)
}

func TestRedirectService_ResolveKeychain_NFC(t *testing.T) {
	service, linkRepo, keychainRepo, recorder := newRedirectService(t)
	ctx := context.Background()
	keychain := &entity.Keychain{
		ID:             uuid.New(),
		KeychainNumber: "KC-042",
		LinkID:         uuid.New(),
	}
	url := "https://example.com/loyalty"

	keychainRepo.EXPECT().FindByNumber(ctx, "KC-042").Return(keychain, nil)
	linkRepo.EXPECT().
		ResolveTarget(ctx, keychain.LinkID).
		Return(&repository.ResolvedTarget{LinkID: keychain.LinkID, URL: &url}, nil)

	destination, err := service.ResolveKeychain(ctx, "KC-042", usecase.RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, url, destination)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, entity.SourceNFC, recorder.events[0].Source)
	assert.Equal(t, keychain.ID, recorder.events[0].KeychainID)
}

func TestRedirectService_ResolveKeychain_QRPrefixStripped(t *testing.T) {
	service, linkRepo, keychainRepo, recorder := newRedirectService(t)
	ctx := context.Background()
	keychain := &entity.Keychain{
		ID:             uuid.New(),
		KeychainNumber: "KC-042",
		LinkID:         uuid.New(),
	}
	url := "https://example.com/loyalty"

	// The prefix is stripped before the lookup.
	keychainRepo.EXPECT().FindByNumber(ctx, "KC-042").Return(keychain, nil)
	linkRepo.EXPECT().
		ResolveTarget(ctx, keychain.LinkID).
		Return(&repository.ResolvedTarget{LinkID: keychain.LinkID, URL: &url}, nil)

	destination, err := service.ResolveKeychain(ctx, "AQKC-042", usecase.RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, url, destination)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, entity.SourceQR, recorder.events[0].Source)
}

func TestRedirectService_ResolveKeychain_NotFound(t *testing.T) {
	service, _, keychainRepo, recorder := newRedirectService(t)
	ctx := context.Background()

	keychainRepo.EXPECT().
		FindByNumber(ctx, "KC-missing").
		Return(nil, repository.ErrKeychainNotFound)

	destination, err := service.ResolveKeychain(ctx, "KC-missing", usecase.RequestMeta{})
	require.Error(t, err)
	assert.Empty(t, destination)
	assert.ErrorIs(t, err, domainerrors.ErrKeychainNotFound)
	assert.Empty(t, recorder.events)
}
