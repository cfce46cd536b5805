package repository

import (
	"context"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	"github.com/lreale4125-ux/taplinknfc/internal/errors"
)

// ErrPhraseNotFound is returned when no phrase matches the lookup.
var ErrPhraseNotFound = errors.New("phrase not found")

// PhraseRepository stores the motivational quote pool.
type PhraseRepository interface {
	// ReplaceAll deletes the existing pool and inserts the given phrases,
	// returning how many were stored. Runs in one transaction so readers
	// never observe a half-synced pool.
	ReplaceAll(ctx context.Context, phrases []*entity.Phrase) (int, error)

	// Random returns one random phrase, optionally filtered by category,
	// or ErrPhraseNotFound when the pool (or category) is empty.
	Random(ctx context.Context, category string) (*entity.Phrase, error)
}
