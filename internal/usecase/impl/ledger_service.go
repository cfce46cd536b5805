package impl

import (
	"context"
	"log/slog"
	"strings"
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

const walletHistoryLimit = 20

// ledgerService implements the LedgerUsecase interface. Every balance
// mutation runs inside one database transaction together with its audit
// entries, under FOR UPDATE row locks.
type ledgerService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	ledgerRepo repository.LedgerRepository
	logger     *slog.Logger
}

// LedgerServiceParams holds dependencies for ledgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	LedgerRepo repository.LedgerRepository
	Logger     *slog.Logger
}

// NewLedgerService is the constructor for ledgerService.
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		ledgerRepo: params.LedgerRepo,
		logger:     params.Logger,
	}
}

func (srv *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Transfer moves Amount from the customer to the vendor. Both rows are
// locked in deterministic ID order, so two opposing transfers running
// concurrently cannot deadlock.
func (srv *ledgerService) Transfer(ctx context.Context, input *usecase.TransferInput) (*usecase.TransferOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}
	if input.CustomerID == input.VendorID {
		return nil, domainerrors.ErrSelfTransfer
	}

	var output *usecase.TransferOutput

	err := srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		userRepo := txRepos.UserRepo()
		ledgerRepo := txRepos.LedgerRepo()

		first, second := lockOrder(input.CustomerID, input.VendorID)

		locked := make(map[uuid.UUID]*entity.User, 2)
		for _, id := range []uuid.UUID{first, second} {
			user, err := userRepo.FindByIDForUpdate(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return domainerrors.ErrUserNotFound
				}

				return err
			}
			locked[id] = user
		}

		customer := locked[input.CustomerID]
		vendor := locked[input.VendorID]

		if customer.BalanceTap < input.Amount {
			return domainerrors.ErrInsufficientFunds
		}

		now := time.Now()

		if err := userRepo.UpdateBalance(ctx, customer.ID, customer.BalanceTap-input.Amount); err != nil {
			return err
		}
		if err := userRepo.UpdateBalance(ctx, vendor.ID, vendor.BalanceTap+input.Amount); err != nil {
			return err
		}

		sent := &entity.Transaction{
			UserID:      customer.ID,
			TapChange:   -input.Amount,
			Type:        entity.TransactionPaymentSent,
			Description: transferDescription(input.Description, "Payment to "+vendor.Username),
			Timestamp:   now,
		}
		if err := ledgerRepo.Append(ctx, sent); err != nil {
			return err
		}

		received := &entity.Transaction{
			UserID:      vendor.ID,
			TapChange:   input.Amount,
			Type:        entity.TransactionPaymentReceived,
			Description: transferDescription(input.Description, "Payment from "+customer.Username),
			Timestamp:   now,
		}
		if err := ledgerRepo.Append(ctx, received); err != nil {
			return err
		}

		output = &usecase.TransferOutput{
			FromUsername: customer.Username,
			ToUsername:   vendor.Username,
			Amount:       input.Amount,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Transfer completed",
		slog.String("from", input.CustomerID.String()),
		slog.String("to", input.VendorID.String()),
		slog.Int64("amount", input.Amount))

	return output, nil
}

// AdjustBalance applies an admin add/subtract/set_zero operation with its
// matching audit entry, in one transaction under a row lock.
func (srv *ledgerService) AdjustBalance(ctx context.Context, input *usecase.AdjustBalanceInput) error {
	operation, ok := entity.ParseAdjustOperation(input.Operation)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails("operation must be add, subtract or set_zero")
	}
	if operation.RequiresAmount() && input.Amount <= 0 {
		return domainerrors.ErrInvalidAmount
	}

	err := srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		userRepo := txRepos.UserRepo()

		user, err := userRepo.FindByIDForUpdate(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return err
		}

		var newBalance, tapChange int64
		var transactionType entity.TransactionType

		switch operation {
		case entity.AdjustAdd:
			newBalance = user.BalanceTap + input.Amount
			tapChange = input.Amount
			transactionType = entity.TransactionAdjustAddAdmin
		case entity.AdjustSubtract:
			if user.BalanceTap < input.Amount {
				return domainerrors.ErrInsufficientFunds
			}
			newBalance = user.BalanceTap - input.Amount
			tapChange = -input.Amount
			transactionType = entity.TransactionAdjustSubAdmin
		case entity.AdjustSetZero:
			newBalance = 0
			tapChange = -user.BalanceTap
			transactionType = entity.TransactionAdjustZeroAdmin
		}

		if err := userRepo.UpdateBalance(ctx, user.ID, newBalance); err != nil {
			return err
		}

		return txRepos.LedgerRepo().Append(ctx, &entity.Transaction{
			UserID:      user.ID,
			TapChange:   tapChange,
			Type:        transactionType,
			Description: input.Description,
			Timestamp:   time.Now(),
		})
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Balance adjusted",
		slog.String("userID", input.UserID.String()),
		slog.String("operation", input.Operation))

	return nil
}

// Wallet returns the user's profile and most recent ledger entries.
func (srv *ledgerService) Wallet(ctx context.Context, userID uuid.UUID) (*usecase.WalletOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	transactions, err := srv.ledgerRepo.ListRecentByUser(ctx, userID, walletHistoryLimit)
	if err != nil {
		return nil, err
	}

	return &usecase.WalletOutput{
		Profile: &usecase.WalletProfile{
			ID:            user.ID,
			Username:      user.Username,
			Email:         user.Email,
			BalanceTap:    user.BalanceTap,
			LoyaltyPoints: user.LoyaltyPoints,
		},
		Transactions: transactions,
	}, nil
}

// lockOrder sorts two user IDs into a stable locking order.
func lockOrder(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if strings.Compare(a.String(), b.String()) <= 0 {
		return a, b
	}

	return b, a
}

func transferDescription(custom, fallback string) string {
	if custom != "" {
		return custom
	}

	return fallback
}
