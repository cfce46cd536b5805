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

type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository is the constructor for linkRepository.
func NewLinkRepository(db *gorm.DB) repository.LinkRepository {
	return &linkRepository{db: db}
}

func (repo *linkRepository) Create(ctx context.Context, link *entity.Link) error {
	linkM := fromLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCompanyNotFound.WrapMessage("invalid company or selector reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create link")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt

	return nil
}

func (repo *linkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Link, error) {
	var linkM model.LinkModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find link by id")
	}

	return toLinkDomain(&linkM), nil
}

// ResolveTarget fetches the link and its selector's redirect URL in one
// LEFT JOIN, so the redirect hot path costs a single round trip.
func (repo *linkRepository) ResolveTarget(ctx context.Context, id uuid.UUID) (*repository.ResolvedTarget, error) {
	var row struct {
		LinkID      uuid.UUID
		URL         *string
		SelectorID  *uuid.UUID
		SelectorURL *string
	}

	err := repo.db.WithContext(ctx).
		Model(&model.LinkModel{}).
		Select("links.id AS link_id, links.url, links.selector_id, selectors.redirect_url AS selector_url").
		Joins("LEFT JOIN selectors ON selectors.id = links.selector_id").
		Where("links.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve link target")
	}

	return &repository.ResolvedTarget{
		LinkID:      row.LinkID,
		URL:         row.URL,
		SelectorID:  row.SelectorID,
		SelectorURL: row.SelectorURL,
	}, nil
}

func (repo *linkRepository) List(ctx context.Context) ([]*repository.LinkRecord, error) {
	var linkModels []*model.LinkModel
	if err := repo.db.WithContext(ctx).
		Preload("Company").
		Order("created_at DESC").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list links")
	}

	records := make([]*repository.LinkRecord, 0, len(linkModels))
	for _, linkM := range linkModels {
		record := &repository.LinkRecord{Link: toLinkDomain(linkM)}
		if linkM.Company != nil {
			record.CompanyName = linkM.Company.Name
		}
		records = append(records, record)
	}

	return records, nil
}

func toLinkDomain(data *model.LinkModel) *entity.Link {
	if data == nil {
		return nil
	}

	return &entity.Link{
		ID:          data.ID,
		CompanyID:   data.CompanyID,
		Name:        data.Name,
		Description: data.Description,
		URL:         data.URL,
		SelectorID:  data.SelectorID,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
	}
}

func fromLinkDomain(data *entity.Link) *model.LinkModel {
	if data == nil {
		return nil
	}

	return &model.LinkModel{
		ID:          data.ID,
		CompanyID:   data.CompanyID,
		Name:        data.Name,
		Description: data.Description,
		URL:         data.URL,
		SelectorID:  data.SelectorID,
		CreatedBy:   data.CreatedBy,
	}
}
