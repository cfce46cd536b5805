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

type selectorRepository struct {
	db *gorm.DB
}

// NewSelectorRepository is the constructor for selectorRepository.
func NewSelectorRepository(db *gorm.DB) repository.SelectorRepository {
	return &selectorRepository{db: db}
}

func (repo *selectorRepository) Create(ctx context.Context, selector *entity.Selector) error {
	selectorM := fromSelectorDomain(selector)

	if err := repo.db.WithContext(ctx).Create(selectorM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create selector")
	}

	selector.ID = selectorM.ID
	selector.CreatedAt = selectorM.CreatedAt
	selector.UpdatedAt = selectorM.UpdatedAt

	return nil
}

func (repo *selectorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Selector, error) {
	var selectorM model.SelectorModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&selectorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSelectorNotFound
		}

		return nil, errors.Wrap(err, "failed to find selector by id")
	}

	return toSelectorDomain(&selectorM), nil
}

func (repo *selectorRepository) UpdateRedirectURL(ctx context.Context, id uuid.UUID, redirectURL string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SelectorModel{}).
		Where("id = ?", id).
		Update("redirect_url", redirectURL)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update selector redirect url")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSelectorNotFound
	}

	return nil
}

func (repo *selectorRepository) List(ctx context.Context) ([]*entity.Selector, error) {
	var selectorModels []*model.SelectorModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&selectorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list selectors")
	}

	selectors := make([]*entity.Selector, 0, len(selectorModels))
	for _, selectorM := range selectorModels {
		selectors = append(selectors, toSelectorDomain(selectorM))
	}

	return selectors, nil
}

func toSelectorDomain(data *model.SelectorModel) *entity.Selector {
	if data == nil {
		return nil
	}

	return &entity.Selector{
		ID:          data.ID,
		Name:        data.Name,
		RedirectURL: data.RedirectURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromSelectorDomain(data *entity.Selector) *model.SelectorModel {
	if data == nil {
		return nil
	}

	return &model.SelectorModel{
		ID:          data.ID,
		Name:        data.Name,
		RedirectURL: data.RedirectURL,
	}
}
