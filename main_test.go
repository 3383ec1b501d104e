package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"study-assistant/app"
	"study-assistant/config"
	"study-assistant/config/setup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) *app.App {
	t.Helper()

	dir := t.TempDir()
	config.AppConfig = &config.Config{
		Env:         "test",
		LogLevel:    "error",
		DBPath:      filepath.Join(dir, "study.db"),
		DBDriver:    "sqlite3",
		LockTimeout: time.Second,
		BackupDir:   filepath.Join(dir, "backups"),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gateway, migrator, err := setup.InitDatabase(context.Background(), config.AppConfig, logger)
	require.NoError(t, err)
	return setup.InitApp(gateway, migrator, nil, logger)
}

func TestRunCommands(t *testing.T) {
	ctx := context.Background()
	application := setupTestApp(t)

	require.NoError(t, run(ctx, application, nil))
	require.NoError(t, run(ctx, application, []string{"schema"}))

	t.Run("Backup then restore", func(t *testing.T) {
		require.NoError(t, run(ctx, application, []string{"backup"}))

		entries, err := os.ReadDir(config.AppConfig.BackupDir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Regexp(t, `^aistudy_bak_\d{6}_\d{6}\.db$`, entries[0].Name())

		backup := filepath.Join(config.AppConfig.BackupDir, entries[0].Name())
		require.NoError(t, run(ctx, application, []string{"restore", backup}))
	})

	t.Run("Bad usage", func(t *testing.T) {
		assert.Error(t, run(ctx, application, []string{"restore"}))
		assert.Error(t, run(ctx, application, []string{"launch"}))
	})
}

func TestRealMainExitCodes(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DB_PATH", filepath.Join(dir, "study.db"))
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("BACKUP_DIR", filepath.Join(dir, "backups"))

	assert.Equal(t, 0, realMain(nil))
	assert.Equal(t, 0, realMain([]string{"backup"}))
	assert.Equal(t, 1, realMain([]string{"launch"}))
	assert.Equal(t, 1, realMain([]string{"restore", filepath.Join(dir, "missing.db")}))

	t.Setenv("DB_DRIVER", "mysql")
	assert.Equal(t, 1, realMain(nil))
}

func TestGetLogLevel(t *testing.T) {
	config.AppConfig = &config.Config{LogLevel: "warn"}
	assert.Equal(t, slog.LevelWarn, getLogLevel())

	config.AppConfig.LogLevel = "verbose"
	assert.Equal(t, slog.LevelInfo, getLogLevel())
}
