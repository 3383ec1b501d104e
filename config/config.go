package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	LogLevel    string
	DBPath      string
	DBDriver    string
	LockTimeout time.Duration
	BackupDir   string
}

var AppConfig *Config

// Load reads .env (if present) and the process environment. Missing values
// fall back to defaults; nothing here is required.
func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Env:         GetEnv("ENV", "development"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		DBPath:      GetEnv("DB_PATH", "./data/ai_study_assistant.db"),
		DBDriver:    GetEnv("DB_DRIVER", "sqlite3"),
		LockTimeout: GetDuration("DB_LOCK_TIMEOUT", 10*time.Second),
		BackupDir:   GetEnv("BACKUP_DIR", "./backups"),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetDuration parses values such as "10s" or "500ms"; unparsable values
// use the default.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
