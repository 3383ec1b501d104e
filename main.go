package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"study-assistant/app"
	"study-assistant/config"
	"study-assistant/config/setup"
	"study-assistant/database"
)

const usage = `usage: study-assistant [command]

commands:
  migrate          bring the database schema up to date (default)
  backup [dir]     copy the database file into dir (default BACKUP_DIR)
  restore <file>   replace the database file with a backup
  schema           print the current schema`

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code so deferred cleanup runs before exit.
func realMain(args []string) int {
	config.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gateway, migrator, err := setup.InitDatabase(ctx, config.AppConfig, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return 1
	}

	application := setup.InitApp(gateway, migrator, nil, logger)
	defer setup.Shutdown(application, logger)

	if err := run(ctx, application, args); err != nil {
		logger.Error("command failed", "error", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, application *app.App, args []string) error {
	command := "migrate"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "migrate":
		// InitDatabase has already migrated.
		return nil

	case "backup":
		dir := config.AppConfig.BackupDir
		if len(args) > 1 {
			dir = args[1]
		}
		dst := filepath.Join(dir, database.BackupFileName(time.Now()))
		if err := application.Gateway.Backup(dst); err != nil {
			return err
		}
		application.Logger.Info("backup written", "file", dst)
		return nil

	case "restore":
		if len(args) < 2 {
			return fmt.Errorf("restore needs a backup file\n%s", usage)
		}
		if err := application.Gateway.Restore(args[1]); err != nil {
			return err
		}
		application.Logger.Info("database restored", "from", args[1])
		// A restored file may predate the current schema.
		_, err := application.Migrator.Migrate(ctx)
		return err

	case "schema":
		snapshot, err := application.Migrator.SchemaSnapshot(ctx)
		if err != nil {
			return err
		}
		for _, stmt := range snapshot {
			fmt.Printf("%s;\n\n", stmt)
		}
		return nil

	case "help", "-h", "--help":
		fmt.Println(usage)
		return nil

	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func setupLogger() *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: config.AppConfig.Env == "development",
	}

	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	switch config.AppConfig.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
