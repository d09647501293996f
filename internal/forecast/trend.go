package forecast

import "time"

// Trend is the 3-state pressure tendency used by the Zambretti table.
// Only the sign of the pressure change over the window matters.
type Trend int

const (
	Falling Trend = iota
	Steady
	Rising
)

func (t Trend) String() string {
	switch t {
	case Falling:
		return "falling"
	case Rising:
		return "rising"
	default:
		return "steady"
	}
}

// Tracker classifies the pressure tendency over a fixed time window.
// It holds one rolling sample (previous pressure and when it was taken)
// and is owned by a single producer loop; there is no locking.
type Tracker struct {
	window time.Duration

	primed       bool
	lastSample   time.Time
	lastPressure float64
	last         Trend
}

// NewTracker creates a tracker with the given trend window.
func NewTracker(window time.Duration) *Tracker {
	return &Tracker{window: window}
}

// Evaluate classifies the trend given the current sea-level pressure (mb).
//
// The very first call seeds the rolling sample and reports Steady, so no
// trend is invented from a single reading. Calls inside the window return
// the previous trend without touching state. Once the window has elapsed
// the sign of the pressure change picks the new trend and the sample rolls
// forward.
func (tr *Tracker) Evaluate(pressure float64, now time.Time) Trend {
	if !tr.primed {
		tr.primed = true
		tr.lastSample = now
		tr.lastPressure = pressure
		tr.last = Steady
		return tr.last
	}

	if now.Sub(tr.lastSample) < tr.window {
		return tr.last
	}

	delta := pressure - tr.lastPressure
	switch {
	case delta < 0:
		tr.last = Falling
	case delta > 0:
		tr.last = Rising
	default:
		tr.last = Steady
	}

	tr.lastSample = now
	tr.lastPressure = pressure
	return tr.last
}
