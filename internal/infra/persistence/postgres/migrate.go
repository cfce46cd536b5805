package postgres

import (
	"context"
	"log/slog"

	"github.com/lreale4125-ux/taplinknfc/config"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/service"
	"github.com/lreale4125-ux/taplinknfc/internal/errors"
	"github.com/lreale4125-ux/taplinknfc/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema and seeds the protected bootstrap
// admin when the users table is empty. Invoked from main when
// postgres.autoMigrate is enabled.
func Migrate(ctx context.Context, db *gorm.DB, cfg *config.Config, hasher service.PasswordHasher, logger *slog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.CompanyModel{},
		&model.UserModel{},
		&model.SelectorModel{},
		&model.LinkModel{},
		&model.KeychainModel{},
		&model.ClickModel{},
		&model.TransactionModel{},
		&model.PhraseModel{},
	); err != nil {
		return errors.Wrap(err, "auto migration failed")
	}

	return seedBootstrapAdmin(ctx, db, cfg, hasher, logger)
}

func seedBootstrapAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config, hasher service.PasswordHasher, logger *slog.Logger) error {
	if cfg.Bootstrap == nil || cfg.Bootstrap.AdminEmail == "" {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count users")
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash(cfg.Bootstrap.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash bootstrap admin password")
	}

	admin := &model.UserModel{
		Username:     cfg.Bootstrap.AdminUsername,
		Email:        cfg.Bootstrap.AdminEmail,
		PasswordHash: hash,
		Role:         string(entity.RoleAdmin),
		Protected:    true,
	}
	if err := db.WithContext(ctx).Create(admin).Error; err != nil {
		return errors.Wrap(err, "failed to seed bootstrap admin")
	}

	logger.Info("Seeded bootstrap admin", slog.String("username", admin.Username))

	return nil
}
