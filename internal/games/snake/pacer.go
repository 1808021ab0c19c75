package snake

import "time"

// Pacer turns fixed platform frames into snake moves. Frame time accumulates
// until it reaches the move interval; at most one move fires per frame.
type Pacer struct {
	interval time.Duration
	acc      time.Duration
	paused   bool
}

// NewPacer creates a running pacer with the given move interval.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Advance adds one frame of elapsed time and reports whether the snake
// should move. A paused pacer never fires and does not accumulate.
func (p *Pacer) Advance(dt time.Duration) bool {
	if p.paused || p.interval <= 0 {
		return false
	}
	p.acc += dt
	if p.acc < p.interval {
		return false
	}
	p.acc -= p.interval
	if p.acc >= p.interval {
		p.acc = 0
	}
	return true
}

// Interval returns the current move interval.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// SetInterval changes the move interval, keeping accumulated time.
func (p *Pacer) SetInterval(d time.Duration) {
	p.interval = d
}

// Reset restarts the pacer with a new interval and no accumulated time.
func (p *Pacer) Reset(interval time.Duration) {
	p.interval = interval
	p.acc = 0
	p.paused = false
}

func (p *Pacer) Pause()  { p.paused = true }
func (p *Pacer) Resume() { p.paused = false }

// TogglePause flips between paused and running.
func (p *Pacer) TogglePause() {
	if p.paused {
		p.Resume()
	} else {
		p.Pause()
	}
}

// Paused reports whether the pacer is paused.
func (p *Pacer) Paused() bool {
	return p.paused
}

// decay shrinks a move interval after food is eaten. The interval is kept in
// whole milliseconds and truncated, so any factor below one shaves at least
// a millisecond.
func decay(interval time.Duration, factor float64) time.Duration {
	ms := float64(interval.Milliseconds()) * factor
	return time.Duration(int64(ms)) * time.Millisecond
}
