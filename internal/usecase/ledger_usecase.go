package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
)

// TransferInput is a POS payment: the vendor (the authenticated caller)
// charges the customer.
type TransferInput struct {
	CustomerID  uuid.UUID `json:"customer_id" validate:"required"`
	VendorID    uuid.UUID `json:"-"`
	Amount      int64     `json:"amount" validate:"required,gt=0"`
	Description string    `json:"description" validate:"max=255"`
}

// TransferOutput names both parties for the confirmation message.
type TransferOutput struct {
	FromUsername string `json:"from_username"`
	ToUsername   string `json:"to_username"`
	Amount       int64  `json:"amount"`
}

// AdjustBalanceInput is an admin balance adjustment. Operation must parse
// into entity.AdjustOperation; Amount is required for add and subtract.
type AdjustBalanceInput struct {
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	Operation   string    `json:"operation" validate:"required"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description" validate:"required,max=255"`
}

// WalletOutput is the wallet view: profile fields plus the most recent
// ledger entries.
type WalletOutput struct {
	Profile      *WalletProfile        `json:"profile"`
	Transactions []*entity.Transaction `json:"transactions"`
}

// WalletProfile is the subset of the user shown in the wallet.
type WalletProfile struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	BalanceTap    int64     `json:"balance_tap"`
	LoyaltyPoints int       `json:"loyalty_points"`
}

// LedgerUsecase is the balance + append-only transaction-log subsystem.
// Every mutation couples the balance change with its audit row in one
// database transaction; partial application is never observable.
type LedgerUsecase interface {
	// Transfer moves Amount from the customer to the vendor, appending a
	// PAYMENT_SENT and a PAYMENT_RECEIVED entry. Fails with
	// ErrInvalidAmount, ErrSelfTransfer, ErrUserNotFound or
	// ErrInsufficientFunds without mutating anything.
	Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error)

	// AdjustBalance applies an admin add/subtract/set_zero operation with
	// its matching audit entry.
	AdjustBalance(ctx context.Context, input *AdjustBalanceInput) error

	// Wallet returns the user's profile and last 20 transactions.
	Wallet(ctx context.Context, userID uuid.UUID) (*WalletOutput, error)
}
