package game

import "time"

const (
	NormalInterval      = 500 * time.Millisecond
	AcceleratedInterval = 100 * time.Millisecond
)

// DropTimer decides when gravity moves the active piece. It compares wall
// clock time elapsed since the last drop against whichever interval is
// selected at the moment of the check.
type DropTimer struct {
	normal      time.Duration
	accelerated time.Duration
	fast        bool
	last        time.Time
}

func NewDropTimer(now time.Time) *DropTimer {
	return &DropTimer{
		normal:      NormalInterval,
		accelerated: AcceleratedInterval,
		last:        now,
	}
}

// SetAccelerated selects the interval. The last drop time is kept.
func (d *DropTimer) SetAccelerated(on bool) {
	d.fast = on
}

func (d *DropTimer) Accelerated() bool { return d.fast }

func (d *DropTimer) Interval() time.Duration {
	if d.fast {
		return d.accelerated
	}
	return d.normal
}

// Due reports whether strictly more than the current interval has passed.
func (d *DropTimer) Due(now time.Time) bool {
	return now.Sub(d.last) > d.Interval()
}

func (d *DropTimer) Reset(now time.Time) {
	d.last = now
}
