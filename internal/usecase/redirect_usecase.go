package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
)

// RequestMeta is what the redirect path captures from the inbound request
// for click recording. IPAddress is already proxy-resolved by the
// delivery layer.
type RequestMeta struct {
	IPAddress string
	UserAgent string
	Referrer  string
}

// RedirectUsecase resolves public redirect requests. Successful resolution
// triggers exactly one click recording, fire-and-forget: a recording
// failure never prevents the redirect.
type RedirectUsecase interface {
	// ResolveLink resolves /r/:linkId to its destination URL.
	ResolveLink(ctx context.Context, linkID uuid.UUID, meta RequestMeta) (string, error)

	// ResolveKeychain normalizes the identifier, resolves through
	// keychain -> link (-> selector), and classifies the source as qr or
	// nfc from the identifier scheme.
	ResolveKeychain(ctx context.Context, identifier string, meta RequestMeta) (string, error)
}

// ClickRecorder accepts click events for asynchronous persistence.
type ClickRecorder interface {
	// Enqueue hands off one click event. It must never block the caller;
	// under load events may be dropped rather than delay a redirect.
	Enqueue(event entity.ClickEvent)
}
