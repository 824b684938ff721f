package config

import (
	"github.com/caarlos0/env/v11"

	"emerald-ads/internal/config/configs"
)

// Config aggregates all configuration sections for the service. Fields are
// populated from environment variables using caarlos0/env; each nested
// section is parsed with its envPrefix. See the configs package for
// defaults.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP   `envPrefix:"HTTP_"`
	Log  configs.Logger `envPrefix:"LOG_"`

	// Psql configures the reservation journal.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the session store.
	Redis configs.Redis `envPrefix:"REDIS_"`

	Backend configs.Backend `envPrefix:"BACKEND_"`
	Form    configs.Form    `envPrefix:"FORM_"`
}

// Load reads configuration from environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
