package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
	"github.com/lreale4125-ux/taplinknfc/internal/infra/persistence/model"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (repo *ledgerRepository) Append(ctx context.Context, transaction *entity.Transaction) error {
	transactionM := fromTransactionDomain(transaction)

	if err := repo.db.WithContext(ctx).Create(transactionM).Error; err != nil {
		return errors.Wrap(err, "failed to append ledger entry")
	}

	transaction.ID = transactionM.ID

	return nil
}

func (repo *ledgerRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	var transactionModels []*model.TransactionModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&transactionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ledger entries")
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for _, transactionM := range transactionModels {
		transactions = append(transactions, toTransactionDomain(transactionM))
	}

	return transactions, nil
}

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:           data.ID,
		UserID:       data.UserID,
		TapChange:    data.TapChange,
		PointsChange: data.PointsChange,
		Type:         entity.TransactionType(data.Type),
		Description:  data.Description,
		Timestamp:    data.Timestamp,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:           data.ID,
		UserID:       data.UserID,
		TapChange:    data.TapChange,
		PointsChange: data.PointsChange,
		Type:         string(data.Type),
		Description:  data.Description,
		Timestamp:    data.Timestamp,
	}
}
