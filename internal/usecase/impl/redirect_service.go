package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/lreale4125-ux/taplinknfc/internal/delivery/context"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	domainerrors "github.com/lreale4125-ux/taplinknfc/internal/domain/errors"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"
)

// redirectService implements the RedirectUsecase interface.
type redirectService struct {
	linkRepo     repository.LinkRepository
	keychainRepo repository.KeychainRepository
	recorder     usecase.ClickRecorder
	logger       *slog.Logger
}

// RedirectServiceParams holds dependencies for redirectService, injected by Fx.
type RedirectServiceParams struct {
	fx.In

	LinkRepo     repository.LinkRepository
	KeychainRepo repository.KeychainRepository
	Recorder     usecase.ClickRecorder
	Logger       *slog.Logger
}

// NewRedirectService is the constructor for redirectService.
func NewRedirectService(params RedirectServiceParams) usecase.RedirectUsecase {
	return &redirectService{
		linkRepo:     params.LinkRepo,
		keychainRepo: params.KeychainRepo,
		recorder:     params.Recorder,
		logger:       params.Logger,
	}
}

func (srv *redirectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveLink resolves a direct /r/ redirect. The click is enqueued after
// the destination is known, so unresolvable requests record nothing.
func (srv *redirectService) ResolveLink(ctx context.Context, linkID uuid.UUID, meta usecase.RequestMeta) (string, error) {
	destination, err := srv.resolveDestination(ctx, linkID)
	if err != nil {
		return "", err
	}

	srv.recorder.Enqueue(entity.ClickEvent{
		LinkID:     linkID,
		KeychainID: uuid.Nil,
		Source:     entity.SourceDirect,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
		Referrer:   meta.Referrer,
		OccurredAt: time.Now(),
	})

	return destination, nil
}

// ResolveKeychain resolves a physical-asset scan. The identifier scheme
// decides the source: a QR prefix marks a scanned code, anything else is
// an NFC tap.
func (srv *redirectService) ResolveKeychain(ctx context.Context, identifier string, meta usecase.RequestMeta) (string, error) {
	number, source := entity.NormalizeKeychainIdentifier(identifier)

	keychain, err := srv.keychainRepo.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrKeychainNotFound) {
			return "", domainerrors.ErrKeychainNotFound
		}

		return "", err
	}

	destination, err := srv.resolveDestination(ctx, keychain.LinkID)
	if err != nil {
		return "", err
	}

	srv.recorder.Enqueue(entity.ClickEvent{
		LinkID:     keychain.LinkID,
		KeychainID: keychain.ID,
		Source:     source,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
		Referrer:   meta.Referrer,
		OccurredAt: time.Now(),
	})

	return destination, nil
}

func (srv *redirectService) resolveDestination(ctx context.Context, linkID uuid.UUID) (string, error) {
	target, err := srv.linkRepo.ResolveTarget(ctx, linkID)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return "", domainerrors.ErrLinkNotFound
		}

		return "", err
	}

	destination, ok := target.Destination()
	if !ok {
		// A link with neither URL nor live selector is unreachable and
		// reported the same as a missing one.
		srv.log(ctx).Warn("Link has no destination", slog.String("linkID", linkID.String()))

		return "", domainerrors.ErrLinkNotFound
	}

	return destination, nil
}
