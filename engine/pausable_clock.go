package engine

import (
	"sync"
	"time"
)

// PausableClock derives game time from a source clock, excluding paused spans
type PausableClock struct {
	mu sync.RWMutex

	source Clock

	start       time.Time     // Source reading at construction
	pausedAt    time.Time     // Source reading when the current pause began
	pausedTotal time.Duration // Completed pauses
	paused      bool
}

// NewPausableClock creates a running clock over source
// A nil source uses the system clock
func NewPausableClock(source Clock) *PausableClock {
	if source == nil {
		source = NewTimeProvider()
	}
	return &PausableClock{
		source: source,
		start:  source.Now(),
	}
}

// Now returns the current game time; frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.start.Add(pc.pausedAt.Sub(pc.start) - pc.pausedTotal)
	}
	return pc.start.Add(pc.source.Now().Sub(pc.start) - pc.pausedTotal)
}

// Pause stops game time advancement; no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = pc.source.Now()
}

// Resume continues game time advancement; no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.pausedTotal += pc.source.Now().Sub(pc.pausedAt)
	pc.pausedAt = time.Time{}
	pc.paused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.pausedTotal
	if pc.paused {
		total += pc.source.Now().Sub(pc.pausedAt)
	}
	return total
}
