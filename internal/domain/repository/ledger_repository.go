package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
)

// LedgerRepository is the append-only transaction log. Entries are written
// exactly once, inside the same database transaction as the balance
// mutation they record, and are never updated or deleted.
type LedgerRepository interface {
	// Append persists one ledger entry.
	Append(ctx context.Context, transaction *entity.Transaction) error

	// ListRecentByUser returns the user's latest entries, newest first.
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error)
}
