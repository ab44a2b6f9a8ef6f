// Package timer provides wall-clock timing for provisioning stages.
package timer

import "time"

// Timer measures the total runtime of an operation and the duration of the
// current stage. Success notifications use both values for timing output.
type Timer interface {
	// Start begins timing. Calling Start again resets both the total and the
	// current stage.
	Start()

	// NewStage marks the beginning of a new stage, ending the previous one.
	NewStage()

	// GetTiming returns the total elapsed time and the elapsed time of the
	// current stage.
	GetTiming() (total time.Duration, stage time.Duration)
}

type realTimer struct {
	start      time.Time
	stageStart time.Time
}

// New creates a Timer backed by the system clock.
func New() Timer {
	return &realTimer{}
}

func (t *realTimer) Start() {
	now := time.Now()
	t.start = now
	t.stageStart = now
}

func (t *realTimer) NewStage() {
	t.stageStart = time.Now()
}

func (t *realTimer) GetTiming() (time.Duration, time.Duration) {
	if t.start.IsZero() {
		return 0, 0
	}

	now := time.Now()

	return now.Sub(t.start), now.Sub(t.stageStart)
}
