package config

import (
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string `env:"TELEGRAM_TOKEN"`
	DatabaseURI   string `env:"DATABASE_URI"`
	// Timezone is the single target timezone every reminder time is
	// normalized into and matched against. Per-user timezones are not
	// supported.
	Timezone  string `env:"REMINDER_TIMEZONE" envDefault:"UTC"`
	AIAPIKey  string `env:"AI_API_KEY"`
	AIBaseURL string `env:"AI_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	AIModel   string `env:"AI_MODEL" envDefault:"openai/gpt-4o-mini"`
}

func Load() (*Config, error) {
	// .env file is optional in production
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location resolves the configured target timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
