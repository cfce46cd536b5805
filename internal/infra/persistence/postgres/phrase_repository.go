package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
	"github.com/lreale4125-ux/taplinknfc/internal/infra/persistence/model"
)

type phraseRepository struct {
	db *gorm.DB
}

// NewPhraseRepository is the constructor for phraseRepository.
func NewPhraseRepository(db *gorm.DB) repository.PhraseRepository {
	return &phraseRepository{db: db}
}

// ReplaceAll swaps the whole pool in one transaction so a reader either
// sees the old pool or the new one, never a half-synced mix.
func (repo *phraseRepository) ReplaceAll(ctx context.Context, phrases []*entity.Phrase) (int, error) {
	phraseModels := make([]*model.PhraseModel, 0, len(phrases))
	for _, phrase := range phrases {
		phraseModels = append(phraseModels, fromPhraseDomain(phrase))
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.PhraseModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear phrase pool")
		}
		if len(phraseModels) == 0 {
			return nil
		}

		return errors.Wrap(tx.Create(&phraseModels).Error, "failed to insert phrases")
	})
	if err != nil {
		return 0, err
	}

	return len(phraseModels), nil
}

func (repo *phraseRepository) Random(ctx context.Context, category string) (*entity.Phrase, error) {
	query := repo.db.WithContext(ctx).Model(&model.PhraseModel{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var phraseM model.PhraseModel
	if err := query.Order("RANDOM()").Take(&phraseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPhraseNotFound
		}

		return nil, errors.Wrap(err, "failed to pick random phrase")
	}

	return toPhraseDomain(&phraseM), nil
}

func toPhraseDomain(data *model.PhraseModel) *entity.Phrase {
	if data == nil {
		return nil
	}

	return &entity.Phrase{
		ID:       data.ID,
		Text:     data.Text,
		Category: data.Category,
		Author:   data.Author,
	}
}

func fromPhraseDomain(data *entity.Phrase) *model.PhraseModel {
	if data == nil {
		return nil
	}

	return &model.PhraseModel{
		ID:       data.ID,
		Text:     data.Text,
		Category: data.Category,
		Author:   data.Author,
	}
}
