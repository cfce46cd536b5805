package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	domainerrors "github.com/lreale4125-ux/taplinknfc/internal/domain/errors"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
	"github.com/lreale4125-ux/taplinknfc/internal/infra/persistence/model"
)

// userRepository implements the repository.UserRepository interface using
// GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCompanyNotFound.WrapMessage("invalid company reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByIDForUpdate retrieves a user while holding a FOR UPDATE row lock.
// Concurrent ledger operations on the same user serialize here, which is
// what prevents lost updates on balance_tap.
func (repo *userRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user for update")
	}

	return toUserDomain(&userM), nil
}

// UpdateBalance sets the user's TAP balance.
func (repo *userRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("balance_tap", balance)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update balance")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List returns all users with their company names, newest first.
func (repo *userRepository) List(ctx context.Context) ([]*repository.UserAccount, error) {
	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Preload("Company").
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	accounts := make([]*repository.UserAccount, 0, len(userModels))
	for _, userM := range userModels {
		account := &repository.UserAccount{User: toUserDomain(userM)}
		if userM.Company != nil {
			name := userM.Company.Name
			account.CompanyName = &name
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// Delete removes a user.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                 data.ID,
		Username:           data.Username,
		Email:              data.Email,
		PasswordHash:       data.PasswordHash,
		Role:               entity.Role(data.Role),
		CompanyID:          data.CompanyID,
		CanAccessWallet:    data.CanAccessWallet,
		CanAccessAnalytics: data.CanAccessAnalytics,
		CanAccessPOS:       data.CanAccessPOS,
		BalanceTap:         data.BalanceTap,
		LoyaltyPoints:      data.LoyaltyPoints,
		Protected:          data.Protected,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                 data.ID,
		Username:           data.Username,
		Email:              data.Email,
		PasswordHash:       data.PasswordHash,
		Role:               string(data.Role),
		CompanyID:          data.CompanyID,
		CanAccessWallet:    data.CanAccessWallet,
		CanAccessAnalytics: data.CanAccessAnalytics,
		CanAccessPOS:       data.CanAccessPOS,
		BalanceTap:         data.BalanceTap,
		LoyaltyPoints:      data.LoyaltyPoints,
		Protected:          data.Protected,
	}
}
