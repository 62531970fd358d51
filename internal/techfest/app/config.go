package app

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// MongoURI is optional. When unset the service runs entirely on the
	// in-memory store.
	MongoURI         string        `env:"MONGODB_URI"`
	MongoDatabase    string        `env:"MONGO_DATABASE" envDefault:"techfest"`
	MongoGracePeriod time.Duration `env:"MONGO_GRACE_PERIOD" envDefault:"2s"`

	SessionSecret string        `env:"SESSION_SECRET" envDefault:"techfest-secret-key-2025"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"168h"`

	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort string `env:"SMTP_PORT"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`

	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
