package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_LOCK_TIMEOUT", "")
	t.Setenv("BACKUP_DIR", "")

	Load()

	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, "./data/ai_study_assistant.db", AppConfig.DBPath)
	assert.Equal(t, "sqlite3", AppConfig.DBDriver)
	assert.Equal(t, 10*time.Second, AppConfig.LockTimeout)
	assert.Equal(t, "./backups", AppConfig.BackupDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/study.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_LOCK_TIMEOUT", "2500ms")

	Load()

	assert.Equal(t, "/tmp/study.db", AppConfig.DBPath)
	assert.Equal(t, "sqlite", AppConfig.DBDriver)
	assert.Equal(t, 2500*time.Millisecond, AppConfig.LockTimeout)
}

func TestGetDurationFallsBack(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "soon")
	assert.Equal(t, time.Second, GetDuration("SOME_TIMEOUT", time.Second))
}
