package usecase

import (
	"time"

	"emerald-ads/internal/core/port"
)

// SystemScheduler schedules calls on the wall clock via time.AfterFunc.
type SystemScheduler struct{}

func (SystemScheduler) AfterFunc(d time.Duration, f func()) port.Timer {
	return time.AfterFunc(d, f)
}
