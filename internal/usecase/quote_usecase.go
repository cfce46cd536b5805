package usecase

import (
	"context"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
)

// PhraseInput is one phrase in the upstream sync payload. Field names
// follow the upstream export format.
type PhraseInput struct {
	Text     string `json:"Frase" validate:"required"`
	Category string `json:"Categoria"`
	Author   string `json:"Autori"`
}

// QuoteUsecase serves the motivazional subdomain's quote pool.
type QuoteUsecase interface {
	// SyncPhrases replaces the whole pool with the given phrases and
	// returns how many were stored. Entries with empty text are skipped.
	SyncPhrases(ctx context.Context, phrases []*PhraseInput) (int, error)

	// RandomQuote returns one random phrase, optionally filtered by
	// category.
	RandomQuote(ctx context.Context, category string) (*entity.Phrase, error)
}
