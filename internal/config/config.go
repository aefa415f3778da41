package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Драйверы хранилища записей
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

const defaultRedirectDelay = 2 * time.Second

type Config struct {
	TelegramToken string
	DBDSN         string
	Environment   string
	LogLevel      string
	StoreDriver   string
	// RedirectDelay - пауза между сообщением об успешной записи и показом списка записей
	RedirectDelay time.Duration
	// EnvFileLoaded - был ли найден .env, для лога при старте
	EnvFileLoaded bool
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	// Отсутствие .env не ошибка: в контейнере всё приходит через окружение
	loaded := godotenv.Load(".env") == nil

	return fromEnv(os.Getenv, loaded)
}

func fromEnv(getenv func(string) string, envFileLoaded bool) (*Config, error) {
	cfg := &Config{
		TelegramToken: getenv("TELEGRAM_TOKEN"),
		DBDSN:         getenv("DB_DSN"),
		Environment:   getenv("ENV"),
		LogLevel:      getenv("LOG_LEVEL"),
		StoreDriver:   getenv("STORE_DRIVER"),
		RedirectDelay: defaultRedirectDelay,
		EnvFileLoaded: envFileLoaded,
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = StoreDriverPostgres
	}

	if raw := getenv("REDIRECT_DELAY"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("REDIRECT_DELAY: %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("REDIRECT_DELAY must not be negative, got %s", raw)
		}
		cfg.RedirectDelay = d
	}

	// Проверяем обязательные поля
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("DB_DSN is required but not set")
		}
	case StoreDriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}
