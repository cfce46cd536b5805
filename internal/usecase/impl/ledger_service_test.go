package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	domainerrors "github.com/lreale4125-ux/taplinknfc/internal/domain/errors"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
	mockRepo "github.com/lreale4125-ux/taplinknfc/internal/mocks/repository"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"

	"github.com/google/uuid"
)

type ledgerTestEnv struct {
	service    usecase.LedgerUsecase
	txManager  *mockRepo.MockTransactionManager
	userRepo   *mockRepo.MockUserRepository
	ledgerRepo *mockRepo.MockLedgerRepository
	// txUserRepo and txLedgerRepo are what the factory hands out inside
	// an Execute callback.
	txUserRepo   *mockRepo.MockUserRepository
	txLedgerRepo *mockRepo.MockLedgerRepository
}

func newLedgerEnv(t *testing.T) *ledgerTestEnv {
	env := &ledgerTestEnv{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		ledgerRepo:   mockRepo.NewMockLedgerRepository(t),
		txUserRepo:   mockRepo.NewMockUserRepository(t),
		txLedgerRepo: mockRepo.NewMockLedgerRepository(t),
	}

	env.service = NewLedgerService(LedgerServiceParams{
		TxManager:  env.txManager,
		UserRepo:   env.userRepo,
		LedgerRepo: env.ledgerRepo,
		Logger:     testLogger(),
	})

	return env
}

// expectTransaction wires the transaction manager so the callback runs
// against the tx-bound repository mocks, as the real manager would.
func (env *ledgerTestEnv) expectTransaction(t *testing.T, ctx context.Context) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(env.txUserRepo).Maybe()
	factory.EXPECT().LedgerRepo().Return(env.txLedgerRepo).Maybe()

	env.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestLedgerService_Transfer(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	customer := &entity.User{ID: uuid.New(), Username: "alice", BalanceTap: 100}
	vendor := &entity.User{ID: uuid.New(), Username: "bob", BalanceTap: 10}

	env.expectTransaction(t, ctx)

	env.txUserRepo.EXPECT().FindByIDForUpdate(ctx, customer.ID).Return(customer, nil)
	env.txUserRepo.EXPECT().FindByIDForUpdate(ctx, vendor.ID).Return(vendor, nil)
	env.txUserRepo.EXPECT().UpdateBalance(ctx, customer.ID, int64(70)).Return(nil)
	env.txUserRepo.EXPECT().UpdateBalance(ctx, vendor.ID, int64(40)).Return(nil)

	var appended []*entity.Transaction
	env.txLedgerRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(ctx context.Context, transaction *entity.Transaction) {
			appended = append(appended, transaction)
		}).
		Return(nil).
		Times(2)

	output, err := env.service.Transfer(ctx, &usecase.TransferInput{
		CustomerID: customer.ID,
		VendorID:   vendor.ID,
		Amount:     30,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", output.FromUsername)
	assert.Equal(t, "bob", output.ToUsername)
	assert.Equal(t, int64(30), output.Amount)

	require.Len(t, appended, 2)
	sent, received := appended[0], appended[1]
	assert.Equal(t, customer.ID, sent.UserID)
	assert.Equal(t, int64(-30), sent.TapChange)
	assert.Equal(t, entity.TransactionPaymentSent, sent.Type)
	assert.Equal(t, "Payment to bob", sent.Description)
	assert.Equal(t, vendor.ID, received.UserID)
	assert.Equal(t, int64(30), received.TapChange)
	assert.Equal(t, entity.TransactionPaymentReceived, received.Type)
	assert.Equal(t, "Payment from alice", received.Description)
	assert.Equal(t, sent.Timestamp, received.Timestamp)
}

func TestLedgerService_Transfer_InsufficientFunds(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	customer := &entity.User{ID: uuid.New(), Username: "alice", BalanceTap: 5}
	vendor := &entity.User{ID: uuid.New(), Username: "bob"}

	env.expectTransaction(t, ctx)
	env.txUserRepo.EXPECT().FindByIDForUpdate(ctx, customer.ID).Return(customer, nil)
	env.txUserRepo.EXPECT().FindByIDForUpdate(ctx, vendor.ID).Return(vendor, nil)

	output, err := env.service.Transfer(ctx, &usecase.TransferInput{
		CustomerID: customer.ID,
		VendorID:   vendor.ID,
		Amount:     30,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientFunds)
}

func TestLedgerService_Transfer_InvalidAmount(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	for _, amount := range []int64{0, -10} {
		output, err := env.service.Transfer(ctx, &usecase.TransferInput{
			CustomerID: uuid.New(),
			VendorID:   uuid.New(),
			Amount:     amount,
		})
		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
	}
}

func TestLedgerService_Transfer_SelfTransfer(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()
	userID := uuid.New()

	output, err := env.service.Transfer(ctx, &usecase.TransferInput{
		CustomerID: userID,
		VendorID:   userID,
		Amount:     30,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSelfTransfer)
}

func TestLedgerService_Transfer_UnknownCustomer(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	customerID := uuid.New()
	vendorID := uuid.New()

	env.expectTransaction(t, ctx)
	env.txUserRepo.EXPECT().
		FindByIDForUpdate(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil, repository.ErrUserNotFound)

	output, err := env.service.Transfer(ctx, &usecase.TransferInput{
		CustomerID: customerID,
		VendorID:   vendorID,
		Amount:     30,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestLedgerService_AdjustBalance_Add(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), BalanceTap: 50}

	env.expectTransaction(t, ctx)
	env.txUserRepo.EXPECT().FindByIDForUpdate(ctx, user.ID).Return(user, nil)
	env.txUserRepo.EXPECT().UpdateBalance(ctx, user.ID, int64(80)).Return(nil)
	env.txLedgerRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(ctx context.Context, transaction *entity.Transaction) {
			assert.Equal(t, int64(30), transaction.TapChange)
			assert.Equal(t, entity.TransactionAdjustAddAdmin, transaction.Type)
			assert.Equal(t, "prize", transaction.Description)
		}).
		Return(nil)

	err := env.service.AdjustBalance(ctx, &usecase.AdjustBalanceInput{
		UserID:      user.ID,
		Operation:   "add",
		Amount:      30,
		Description: "prize",
	})
	require.NoError(t, err)
}

func TestLedgerService_AdjustBalance_Subtract(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), BalanceTap: 50}

	env.expectTransaction(t, ctx)
	env.txUserRepo.EXPECT().FindByIDForUpdate(ctx, user.ID).Return(user, nil)
	env.txUserRepo.EXPECT().UpdateBalance(ctx, user.ID, int64(20)).Return(nil)
	env.txLedgerRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(ctx context.Context, transaction *entity.Transaction) {
			assert.Equal(t, int64(-30), transaction.TapChange)
			assert.Equal(t, entity.TransactionAdjustSubAdmin, transaction.Type)
		}).
		Return(nil)

	err := env.service.AdjustBalance(ctx, &usecase.AdjustBalanceInput{
		UserID:      user.ID,
		Operation:   "subtract",
		Amount:      30,
		Description: "correction",
	})
	require.NoError(t, err)
}

func TestLedgerService_AdjustBalance_SubtractBelowZero(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), BalanceTap: 10}

	env.expectTransaction(t, ctx)
	env.txUserRepo.EXPECT().FindByIDForUpdate(ctx, user.ID).Return(user, nil)

	err := env.service.AdjustBalance(ctx, &usecase.AdjustBalanceInput{
		UserID:      user.ID,
		Operation:   "subtract",
		Amount:      30,
		Description: "correction",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientFunds)
}

func TestLedgerService_AdjustBalance_SetZero(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), BalanceTap: 75}

	env.expectTransaction(t, ctx)
	env.txUserRepo.EXPECT().FindByIDForUpdate(ctx, user.ID).Return(user, nil)
	env.txUserRepo.EXPECT().UpdateBalance(ctx, user.ID, int64(0)).Return(nil)
	env.txLedgerRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(ctx context.Context, transaction *entity.Transaction) {
			// The audit entry records how much was wiped.
			assert.Equal(t, int64(-75), transaction.TapChange)
			assert.Equal(t, entity.TransactionAdjustZeroAdmin, transaction.Type)
		}).
		Return(nil)

	err := env.service.AdjustBalance(ctx, &usecase.AdjustBalanceInput{
		UserID:      user.ID,
		Operation:   "set_zero",
		Description: "reset",
	})
	require.NoError(t, err)
}

func TestLedgerService_AdjustBalance_UnknownOperation(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	err := env.service.AdjustBalance(ctx, &usecase.AdjustBalanceInput{
		UserID:      uuid.New(),
		Operation:   "multiply",
		Amount:      2,
		Description: "nope",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestLedgerService_AdjustBalance_MissingAmount(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	err := env.service.AdjustBalance(ctx, &usecase.AdjustBalanceInput{
		UserID:      uuid.New(),
		Operation:   "add",
		Amount:      0,
		Description: "nope",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestLedgerService_Wallet(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	user := &entity.User{
		ID:            uuid.New(),
		Username:      "alice",
		Email:         "alice@example.com",
		BalanceTap:    120,
		LoyaltyPoints: 3,
	}
	transactions := []*entity.Transaction{
		{ID: uuid.New(), UserID: user.ID, TapChange: -30},
		{ID: uuid.New(), UserID: user.ID, TapChange: 150},
	}

	env.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	env.ledgerRepo.EXPECT().ListRecentByUser(ctx, user.ID, walletHistoryLimit).Return(transactions, nil)

	output, err := env.service.Wallet(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", output.Profile.Username)
	assert.Equal(t, int64(120), output.Profile.BalanceTap)
	assert.Equal(t, 3, output.Profile.LoyaltyPoints)
	assert.Len(t, output.Transactions, 2)
}

func TestLedgerService_Wallet_UnknownUser(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()
	userID := uuid.New()

	env.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := env.service.Wallet(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestLockOrder_Deterministic(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	first, second := lockOrder(a, b)
	assert.Equal(t, a, first)
	assert.Equal(t, b, second)

	first, second = lockOrder(b, a)
	assert.Equal(t, a, first)
	assert.Equal(t, b, second)
}
