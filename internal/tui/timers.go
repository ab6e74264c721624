package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/canvas-pan/internal/pan"
)

// teaTimers implements pan.Timers on the Bubble Tea loop: every repetition is
// an intervalMsg, so callbacks run inside Update alongside key handling.
type teaTimers struct {
	nextID  int
	live    map[int]*teaInterval
	pending []tea.Cmd
}

type teaInterval struct {
	id     int
	every  time.Duration
	fn     func()
	timers *teaTimers
}

func newTeaTimers() *teaTimers {
	return &teaTimers{live: make(map[int]*teaInterval)}
}

// Every registers fn. The first tick is queued and handed to the program by drain.
func (t *teaTimers) Every(d time.Duration, fn func()) pan.Interval {
	t.nextID++
	iv := &teaInterval{id: t.nextID, every: d, fn: fn, timers: t}
	t.live[iv.id] = iv
	t.pending = append(t.pending, iv.schedule())
	return iv
}

// Stop drops the interval; a tick already in flight is ignored on arrival.
func (iv *teaInterval) Stop() {
	delete(iv.timers.live, iv.id)
}

func (iv *teaInterval) schedule() tea.Cmd {
	id := iv.id
	return tea.Tick(iv.every, func(time.Time) tea.Msg {
		return intervalMsg{ID: id}
	})
}

// fire runs the interval's callback and schedules its next repetition.
func (t *teaTimers) fire(id int) tea.Cmd {
	iv, ok := t.live[id]
	if !ok {
		return nil
	}
	iv.fn()
	if _, still := t.live[id]; !still {
		return nil
	}
	return iv.schedule()
}

// drain returns the first ticks of intervals started since the last call.
func (t *teaTimers) drain() tea.Cmd {
	if len(t.pending) == 0 {
		return nil
	}
	cmds := t.pending
	t.pending = nil
	return tea.Batch(cmds...)
}

// count returns the number of live intervals.
func (t *teaTimers) count() int {
	return len(t.live)
}

// releaseTracker synthesises key-up events: a held key is released once no
// repeat of it has arrived for the release delay.
type releaseTracker struct {
	after time.Duration
	seq   uint64
	last  map[string]uint64
}

func newReleaseTracker(after time.Duration) *releaseTracker {
	return &releaseTracker{after: after, last: make(map[string]uint64)}
}

// pressed records a press of key and returns the command that checks for its release.
func (r *releaseTracker) pressed(key string) tea.Cmd {
	r.seq++
	seq := r.seq
	r.last[key] = seq
	return tea.Tick(r.after, func(time.Time) tea.Msg {
		return releaseCheckMsg{Key: key, Seq: seq}
	})
}

// released reports whether msg is the latest press of its key, consuming it if so.
func (r *releaseTracker) released(msg releaseCheckMsg) bool {
	if seq, ok := r.last[msg.Key]; !ok || seq != msg.Seq {
		return false
	}
	delete(r.last, msg.Key)
	return true
}

// forget drops every held key.
func (r *releaseTracker) forget() {
	clear(r.last)
}

// held returns the number of keys awaiting release.
func (r *releaseTracker) held() int {
	return len(r.last)
}
