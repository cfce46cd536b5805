package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType tags a ledger entry with the operation that produced it.
type TransactionType string

const (
	TransactionPaymentSent     TransactionType = "PAYMENT_SENT"
	TransactionPaymentReceived TransactionType = "PAYMENT_RECEIVED"
	TransactionAdjustAddAdmin  TransactionType = "ADJUST_ADD_ADMIN"
	TransactionAdjustSubAdmin  TransactionType = "ADJUST_SUB_ADMIN"
	TransactionAdjustZeroAdmin TransactionType = "ADJUST_ZERO_ADMIN"
)

// Transaction is an append-only ledger entry. It is written exactly once,
// in the same database transaction as the balance mutation it records, and
// never updated or deleted afterwards.
type Transaction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	TapChange    int64 // signed: negative for debits
	PointsChange int
	Type         TransactionType
	Description  string
	Timestamp    time.Time
}

// AdjustOperation is the closed set of admin balance adjustments.
type AdjustOperation string

const (
	AdjustAdd      AdjustOperation = "add"
	AdjustSubtract AdjustOperation = "subtract"
	AdjustSetZero  AdjustOperation = "set_zero"
)

// ParseAdjustOperation maps a request string onto the closed enum.
func ParseAdjustOperation(s string) (AdjustOperation, bool) {
	switch AdjustOperation(s) {
	case AdjustAdd, AdjustSubtract, AdjustSetZero:
		return AdjustOperation(s), true
	}

	return "", false
}

// RequiresAmount reports whether the operation needs a positive amount.
// set_zero derives its tap change from the current balance instead.
func (op AdjustOperation) RequiresAmount() bool {
	return op == AdjustAdd || op == AdjustSubtract
}
