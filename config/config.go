package config

import (
	"os"
	"strconv"
)

type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	SQLite    SQLiteConfig
	Redis     RedisConfig
	Scheduler SchedulerConfig
}

type AppConfig struct {
	AppEnv string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
	File              string // Empty means stdout only
	FileMaxSizeMB     int
	FileMaxBackups    int
}

type SQLiteConfig struct {
	Path          string
	BusyTimeoutMS int
	MaxOpenConns  int
}

type RedisConfig struct {
	Addr     string // Empty disables the distributed lock, in-process lock is used
	Password string
	DB       int
}

type SchedulerConfig struct {
	LowStockReportSpec string // Empty disables the job
}

func LoadEnv() *Config {
	return &Config{
		App: AppConfig{
			AppEnv: getEnv("APP_ENV", "dev"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
			File:              getEnv("LOGGER_FILE", ""),
			FileMaxSizeMB:     getEnvInt("LOGGER_FILE_MAX_SIZE_MB", 50),
			FileMaxBackups:    getEnvInt("LOGGER_FILE_MAX_BACKUPS", 5),
		},
		SQLite: SQLiteConfig{
			Path:          getEnv("SQLITE_PATH", "store.db"),
			BusyTimeoutMS: getEnvInt("SQLITE_BUSY_TIMEOUT_MS", 5000),
			MaxOpenConns:  getEnvInt("SQLITE_MAX_OPEN_CONNS", 1),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Scheduler: SchedulerConfig{
			LowStockReportSpec: getEnv("LOW_STOCK_REPORT_SPEC", "@every 15m"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
