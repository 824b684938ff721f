package configs

import "time"

// HTTP defines configuration for the form API server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8081
	// so it does not collide with a backend running on the same host.
	Port uint16 `env:"PORT" envDefault:"8081"`
	// ShutdownTimeout bounds graceful shutdown after a termination signal.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
