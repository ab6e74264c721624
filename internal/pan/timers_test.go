//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package pan

import "time"

// ManualTimers is a Timers whose intervals fire only when Fire is called.
type ManualTimers struct {
	intervals []*manualInterval
}

type manualInterval struct {
	every   time.Duration
	fn      func()
	stopped bool
}

func (i *manualInterval) Stop() { i.stopped = true }

// Every registers fn; it runs on each Fire until the returned interval is stopped.
func (t *ManualTimers) Every(d time.Duration, fn func()) Interval {
	iv := &manualInterval{every: d, fn: fn}
	t.intervals = append(t.intervals, iv)
	return iv
}

// Fire runs every live interval once and returns how many ran.
func (t *ManualTimers) Fire() int {
	ran := 0
	for _, iv := range t.live() {
		if iv.stopped {
			continue
		}
		iv.fn()
		ran++
	}
	return ran
}

// live prunes stopped intervals and returns a snapshot of the rest.
func (t *ManualTimers) live() []*manualInterval {
	kept := t.intervals[:0]
	for _, iv := range t.intervals {
		if !iv.stopped {
			kept = append(kept, iv)
		}
	}
	t.intervals = kept
	out := make([]*manualInterval, len(kept))
	copy(out, kept)
	return out
}

// Count returns the number of live intervals.
func (t *ManualTimers) Count() int {
	return len(t.live())
}
