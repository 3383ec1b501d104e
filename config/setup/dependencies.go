package setup

import (
	"context"
	"log/slog"

	"study-assistant/app"
	"study-assistant/config"
	"study-assistant/database"
	"study-assistant/services"
	"study-assistant/session"
)

// InitDatabase builds the gateway and brings the schema up to date. A failed
// migration is logged and startup continues: the existing tables may still
// be usable, and every later operation reports its own failure.
func InitDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*database.Gateway, *database.Migrator, error) {
	gateway, err := database.NewGateway(cfg.DBPath,
		database.WithDriver(cfg.DBDriver),
		database.WithLockTimeout(cfg.LockTimeout),
	)
	if err != nil {
		return nil, nil, err
	}

	migrator := database.NewMigrator(gateway, logger)
	report, err := migrator.Migrate(ctx)
	if err != nil {
		logger.Error("failed to run migrations", "error", err)
	} else if report.ColumnPhaseAbandoned() {
		logger.Warn("schema upgrade incomplete", "error", report.ColumnPhaseErr)
	}

	logger.Info("database initialized", "path", gateway.Path(), "driver", gateway.Driver())
	return gateway, migrator, nil
}

// InitApp initializes the application with all dependencies
func InitApp(gateway *database.Gateway, migrator *database.Migrator, ai services.AITextService, logger *slog.Logger) *app.App {
	repo := database.NewRepository(database.NewExecutor(gateway, logger))
	sessionStore := session.NewStore()

	application := app.New(gateway, migrator, repo, sessionStore, ai, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown logs out the current user. Connections are never held open, so
// there is nothing else to release.
func Shutdown(application *app.App, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if application == nil {
		return
	}
	if sess := application.SessionStore.Current(); sess != nil {
		_ = application.SessionStore.Delete(sess.ID)
		logger.Info("session closed", "user_id", sess.UserID)
	}
}
