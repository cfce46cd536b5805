package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/lreale4125-ux/taplinknfc/config"
	"github.com/lreale4125-ux/taplinknfc/internal/delivery"
	"github.com/lreale4125-ux/taplinknfc/internal/delivery/http"
	"github.com/lreale4125-ux/taplinknfc/internal/delivery/http/middleware"
	"github.com/lreale4125-ux/taplinknfc/internal/delivery/http/router/handler"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/service"
	"github.com/lreale4125-ux/taplinknfc/internal/infra/auth"
	"github.com/lreale4125-ux/taplinknfc/internal/infra/geocode"
	"github.com/lreale4125-ux/taplinknfc/internal/infra/geoip"
	logs "github.com/lreale4125-ux/taplinknfc/internal/infra/log"
	"github.com/lreale4125-ux/taplinknfc/internal/infra/persistence/postgres"
	"github.com/lreale4125-ux/taplinknfc/internal/infra/qrcode"
	"github.com/lreale4125-ux/taplinknfc/internal/infra/useragent"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			migrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCompanyRepository,
			postgres.NewLinkRepository,
			postgres.NewSelectorRepository,
			postgres.NewKeychainRepository,
			postgres.NewAnalyticsRepository,
			postgres.NewLedgerRepository,
			postgres.NewPhraseRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			geoip.New,
			useragent.New,
			geocode.NewOpenCageGeocoder,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewRedirectService,
			impl.NewClickRecorder,
			impl.NewLedgerService,
			impl.NewAnalyticsService,
			impl.NewAdminService,
			impl.NewQuoteService,
			impl.NewGeocodeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRedirectHandler,
			handler.NewAuthHandler,
			handler.NewWalletHandler,
			handler.NewAnalyticsHandler,
			handler.NewAdminHandler,
			handler.NewQuoteHandler,
			handler.NewGeocodeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// migrate runs schema migration and bootstrap seeding when enabled.
func migrate(ctx context.Context, db *gorm.DB, cfg *config.Config, hasher service.PasswordHasher, logger *slog.Logger) error {
	if cfg.Postgres == nil || !cfg.Postgres.AutoMigrate {
		return nil
	}

	return postgres.Migrate(ctx, db, cfg, hasher, logger)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
