package migrate

import (
	"context"
	"fmt"

	"github.com/uniformworks/portal-backend/pkg/config"
	"github.com/uniformworks/portal-backend/pkg/db"
	"github.com/uniformworks/portal-backend/pkg/logger"
)

// AutoRun upgrades the store to the current schema version before the handle
// is used, unless auto-migration has been switched off. Mirrors the open
// contract: a handle is never handed out against a stale schema.
func AutoRun(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.DB.AutoMigrate {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "path": cfg.DB.Path})
	logg.Info(ctx, "running store migrations")

	if err := Up(ctx, sqlDB); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "store migrations completed")
	return nil
}
