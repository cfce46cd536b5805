package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/lreale4125-ux/taplinknfc/internal/delivery/context"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	domainerrors "github.com/lreale4125-ux/taplinknfc/internal/domain/errors"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"
)

// quoteService implements the QuoteUsecase interface.
type quoteService struct {
	phraseRepo repository.PhraseRepository
	logger     *slog.Logger
}

// QuoteServiceParams holds dependencies for quoteService, injected by Fx.
type QuoteServiceParams struct {
	fx.In

	PhraseRepo repository.PhraseRepository
	Logger     *slog.Logger
}

// NewQuoteService is the constructor for quoteService.
func NewQuoteService(params QuoteServiceParams) usecase.QuoteUsecase {
	return &quoteService{
		phraseRepo: params.PhraseRepo,
		logger:     params.Logger,
	}
}

func (srv *quoteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SyncPhrases replaces the whole pool. Upstream categories are mapped to
// the stored set and entries with empty text are dropped.
func (srv *quoteService) SyncPhrases(ctx context.Context, phrases []*usecase.PhraseInput) (int, error) {
	entities := make([]*entity.Phrase, 0, len(phrases))
	for _, input := range phrases {
		if input == nil || input.Text == "" {
			continue
		}

		entities = append(entities, &entity.Phrase{
			Text:     input.Text,
			Category: entity.MapPhraseCategory(input.Category),
			Author:   input.Author,
		})
	}

	stored, err := srv.phraseRepo.ReplaceAll(ctx, entities)
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Phrase pool synced",
		slog.Int("received", len(phrases)),
		slog.Int("stored", stored))

	return stored, nil
}

// RandomQuote returns one random phrase, optionally filtered by category.
func (srv *quoteService) RandomQuote(ctx context.Context, category string) (*entity.Phrase, error) {
	phrase, err := srv.phraseRepo.Random(ctx, category)
	if err != nil {
		if errors.Is(err, repository.ErrPhraseNotFound) {
			return nil, domainerrors.ErrQuoteNotFound
		}

		return nil, err
	}

	return phrase, nil
}
