package configs

import "time"

// Form tunes the campaign form workflow.
type Form struct {
	// QuietPeriod is how long keyword input must stay unchanged before a
	// suggestion lookup is issued.
	QuietPeriod time.Duration `env:"QUIET_PERIOD" envDefault:"300ms"`
	// IdleTTL unmounts forms that were not touched for this long. Zero
	// disables eviction.
	IdleTTL time.Duration `env:"IDLE_TTL" envDefault:"30m"`
}
