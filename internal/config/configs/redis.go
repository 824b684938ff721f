package configs

import "time"

// Redis holds the connection settings for the session store.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// SessionTTL is applied when a session is written. Zero keeps sessions
	// forever.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	KeyPrefix  string        `env:"KEY_PREFIX" envDefault:"session:"`
}
