package repository

import "context"

// TransactionManager runs a function within one database transaction.
// If the function returns an error the transaction is rolled back,
// otherwise it is committed. The ledger relies on this for its
// no-partial-application guarantee: balance mutations and their audit
// rows either all land or none do.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepos RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to the current
// transaction, so every operation inside an Execute callback shares the
// same database connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the transaction.
	UserRepo() UserRepository

	// LedgerRepo returns a LedgerRepository bound to the transaction.
	LedgerRepo() LedgerRepository
}
