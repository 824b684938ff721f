package configs

import "time"

// Backend configures the client for the campaign backend REST API. Only
// read requests are retried; ReadRetries of zero disables retries.
type Backend struct {
	// Addr is the base URL of the backend, without a trailing slash.
	Addr         string        `env:"ADDRESS" envDefault:"http://localhost:8080"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"10s"`
	ReadRetries  int           `env:"READ_RETRIES" envDefault:"2"`
	RetryWait    time.Duration `env:"RETRY_WAIT" envDefault:"100ms"`
	RetryMaxWait time.Duration `env:"RETRY_MAX_WAIT" envDefault:"1s"`
}
