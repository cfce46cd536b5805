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
)

func newQuoteService(t *testing.T) (usecase.QuoteUsecase, *mockRepo.MockPhraseRepository) {
	phraseRepo := mockRepo.NewMockPhraseRepository(t)

	service := NewQuoteService(QuoteServiceParams{
		PhraseRepo: phraseRepo,
		Logger:     testLogger(),
	})

	return service, phraseRepo
}

func TestQuoteService_SyncPhrases(t *testing.T) {
	service, phraseRepo := newQuoteService(t)
	ctx := context.Background()

	phraseRepo.EXPECT().
		ReplaceAll(ctx, mock.AnythingOfType("[]*entity.Phrase")).
		RunAndReturn(func(ctx context.Context, phrases []*entity.Phrase) (int, error) {
			require.Len(t, phrases, 2)
			assert.Equal(t, "Chi si ferma è perduto", phrases[0].Text)
			assert.Equal(t, entity.PhraseCategoryStudy, phrases[0].Category)
			assert.Equal(t, entity.PhraseCategoryMotivation, phrases[1].Category)

			return len(phrases), nil
		})

	stored, err := service.SyncPhrases(ctx, []*usecase.PhraseInput{
		{Text: "Chi si ferma è perduto", Category: "studio_apprendimento", Author: "Anonimo"},
		nil,
		{Text: "", Category: "successo_resilienza"},
		{Text: "Avanti tutta", Category: "unknown_label"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stored)
}

func TestQuoteService_RandomQuote(t *testing.T) {
	service, phraseRepo := newQuoteService(t)
	ctx := context.Background()

	phrase := &entity.Phrase{Text: "Avanti tutta", Category: entity.PhraseCategoryMotivation}
	phraseRepo.EXPECT().Random(ctx, "motivazione").Return(phrase, nil)

	output, err := service.RandomQuote(ctx, "motivazione")
	require.NoError(t, err)
	assert.Equal(t, phrase, output)
}

func TestQuoteService_RandomQuote_EmptyPool(t *testing.T) {
	service, phraseRepo := newQuoteService(t)
	ctx := context.Background()

	phraseRepo.EXPECT().Random(ctx, "").Return(nil, repository.ErrPhraseNotFound)

	output, err := service.RandomQuote(ctx, "")
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrQuoteNotFound)
}
