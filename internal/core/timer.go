package core

import "time"

// RateMeter measures how many events happen per second, recomputing the rate
// once per window the way a frame counter does.
type RateMeter struct {
	window time.Duration
	start  time.Time
	count  int
	rate   float64
}

// NewRateMeter constructs a meter that publishes a new rate every window.
func NewRateMeter(window time.Duration) *RateMeter {
	if window <= 0 {
		window = time.Second
	}
	return &RateMeter{window: window}
}

// Reset drops the accumulated count and the published rate.
func (m *RateMeter) Reset(now time.Time) {
	m.start = now
	m.count = 0
	m.rate = 0
}

// Tick records one event at now. It reports whether a new rate was published.
func (m *RateMeter) Tick(now time.Time) bool {
	if m.start.IsZero() {
		m.start = now
	}
	m.count++
	elapsed := now.Sub(m.start)
	if elapsed <= m.window {
		return false
	}
	m.rate = float64(m.count) / elapsed.Seconds()
	m.count = 0
	m.start = now
	return true
}

// Rate returns the most recently published events-per-second value.
func (m *RateMeter) Rate() float64 { return m.rate }
