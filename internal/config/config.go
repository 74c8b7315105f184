package config

import (
	"os"
	"time"
)

// Config はアプリケーション設定を表す
type Config struct {
	Env     string
	Server  ServerConfig
	Storage StorageConfig
	Worker  WorkerConfig
}

// ServerConfig はサーバー設定
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StorageConfig はバッキングファイルの設定
type StorageConfig struct {
	FilePath string
}

// WorkerConfig はリマインダーワーカーの設定
type WorkerConfig struct {
	ReminderInterval time.Duration
	ReminderWindow   time.Duration
}

// Load は環境変数から設定を読み込む
func Load() *Config {
	return &Config{
		Env: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Storage: StorageConfig{
			FilePath: getEnv("CALENDAR_FILE", "calendar_events.json"),
		},
		Worker: WorkerConfig{
			ReminderInterval: getDurationEnv("REMINDER_INTERVAL", time.Minute),
			ReminderWindow:   getDurationEnv("REMINDER_WINDOW", 15*time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
