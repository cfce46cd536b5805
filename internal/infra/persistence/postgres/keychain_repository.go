package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	domainerrors "github.com/lreale4125-ux/taplinknfc/internal/domain/errors"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
	"github.com/lreale4125-ux/taplinknfc/internal/infra/persistence/model"
)

type keychainRepository struct {
	db *gorm.DB
}

// NewKeychainRepository is the constructor for keychainRepository.
func NewKeychainRepository(db *gorm.DB) repository.KeychainRepository {
	return &keychainRepository{db: db}
}

func (repo *keychainRepository) Create(ctx context.Context, keychain *entity.Keychain) error {
	keychainM := fromKeychainDomain(keychain)

	if err := repo.db.WithContext(ctx).Create(keychainM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrKeychainAlreadyExists.WrapMessage("keychain number already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrLinkNotFound.WrapMessage("invalid link reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create keychain")
	}

	keychain.ID = keychainM.ID
	keychain.CreatedAt = keychainM.CreatedAt

	return nil
}

func (repo *keychainRepository) FindByNumber(ctx context.Context, number string) (*entity.Keychain, error) {
	var keychainM model.KeychainModel
	if err := repo.db.WithContext(ctx).Where("keychain_number = ?", number).First(&keychainM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeychainNotFound
		}

		return nil, errors.Wrap(err, "failed to find keychain by number")
	}

	return toKeychainDomain(&keychainM), nil
}

func (repo *keychainRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Keychain, error) {
	var keychainM model.KeychainModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&keychainM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeychainNotFound
		}

		return nil, errors.Wrap(err, "failed to find keychain by id")
	}

	return toKeychainDomain(&keychainM), nil
}

func (repo *keychainRepository) List(ctx context.Context) ([]*entity.Keychain, error) {
	var keychainModels []*model.KeychainModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&keychainModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list keychains")
	}

	keychains := make([]*entity.Keychain, 0, len(keychainModels))
	for _, keychainM := range keychainModels {
		keychains = append(keychains, toKeychainDomain(keychainM))
	}

	return keychains, nil
}

func toKeychainDomain(data *model.KeychainModel) *entity.Keychain {
	if data == nil {
		return nil
	}

	return &entity.Keychain{
		ID:             data.ID,
		KeychainNumber: data.KeychainNumber,
		LinkID:         data.LinkID,
		CreatedBy:      data.CreatedBy,
		CreatedAt:      data.CreatedAt,
	}
}

func fromKeychainDomain(data *entity.Keychain) *model.KeychainModel {
	if data == nil {
		return nil
	}

	return &model.KeychainModel{
		ID:             data.ID,
		KeychainNumber: data.KeychainNumber,
		LinkID:         data.LinkID,
		CreatedBy:      data.CreatedBy,
	}
}
