package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	StoreDriverREST     = "rest"
	StoreDriverPostgres = "postgres"

	AuthModeMock  = "mock"
	AuthModeToken = "token"

	minProductionSecretLength = 32
)

// Config хранит все параметры запуска приложения.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	HTTPPort string `env:"HTTP_PORT" envDefault:"8000"`
	LogLevel string `env:"LOG_LEVEL"`

	// Адрес и ключ Supabase обязательны: без них процесс не стартует.
	SupabaseURL string `env:"SUPABASE_URL,required,notEmpty"`
	SupabaseKey string `env:"SUPABASE_KEY,required,notEmpty"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"rest"`
	DatabaseURL string `env:"DATABASE_URL"`

	AuthMode      string        `env:"AUTH_MODE" envDefault:"mock"`
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	MockUserEmail string        `env:"MOCK_USER_EMAIL" envDefault:"mock.user@creathub.com"`

	StaticDir string `env:"STATIC_DIR" envDefault:"./static"`
}

// IsProduction сообщает, запущено ли приложение в production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load читает .env (если есть) и переменные окружения, возвращает готовую конфигурацию.
func Load() (*Config, error) {
	// Загружаем .env только если он существует, иначе используем системные переменные.
	if err := godotenv.Load(".env"); err != nil {
		logrus.WithError(err).Debug("config: .env не найден, используем переменные окружения")
	}

	return parse(env.Options{})
}

// parse разбирает окружение по тегам структуры и проверяет зависимые параметры.
func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
		if cfg.Env == "development" {
			cfg.LogLevel = "debug"
		}
	}

	switch cfg.StoreDriver {
	case StoreDriverREST:
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("config: DATABASE_URL обязателен при STORE_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("config: неизвестный STORE_DRIVER %q", cfg.StoreDriver)
	}

	switch cfg.AuthMode {
	case AuthModeMock:
	case AuthModeToken:
		if cfg.SessionSecret == "" {
			return nil, errors.New("config: SESSION_SECRET обязателен при AUTH_MODE=token")
		}
		if cfg.IsProduction() && len(cfg.SessionSecret) < minProductionSecretLength {
			return nil, fmt.Errorf("config: SESSION_SECRET должен быть не менее %d символов в production", minProductionSecretLength)
		}
	default:
		return nil, fmt.Errorf("config: неизвестный AUTH_MODE %q", cfg.AuthMode)
	}

	return cfg, nil
}
