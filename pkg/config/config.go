package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryDSN string `env:"SENTRY_DSN"`
	}
	Capsy struct {
		BaseURL          string `env:"CAPSY_BASE_URL" env-default:"https://api.capsy.app"`
		AccessToken      string `env:"CAPSY_ACCESS_TOKEN"`
		TimeoutSeconds   int    `env:"CAPSY_TIMEOUT_SECONDS" env-default:"30"`
		PostChannelID    string `env:"CAPSY_POST_CHANNEL_ID"`
		CapsuleChannelID string `env:"CAPSY_CAPSULE_CHANNEL_ID"`
		// The backend stores reveal timestamps shifted out of KST.
		TimezoneOffsetHours int `env:"CAPSY_TZ_OFFSET_HOURS" env-default:"9"`
	}
	Kakao struct {
		BaseURL string `env:"KAKAO_BASE_URL" env-default:"https://dapi.kakao.com"`
		RESTKey string `env:"KAKAO_REST_KEY"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT"`
		Host    string `env:"POSTGRES_HOST"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Telegram struct {
		User    int64  `env:"TELEGRAM_USER"`
		Token   string `env:"TELEGRAM_TOKEN"`
		Channel string `env:"TELEGRAM_CHANNEL"`
	}
	Notifier struct {
		IntervalMinutes int `env:"NOTIFIER_INTERVAL_MINUTES" env-default:"5"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}
