package port

import "time"

// Timer is a pending scheduled call.
type Timer interface {
	// Stop prevents the call from running. It reports false if the call
	// already ran or was stopped.
	Stop() bool
}

// Scheduler runs f on its own goroutine once d has elapsed. It backs the
// keyword search quiet period and is replaced by a manual clock in tests.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}
