package pan

import (
	"time"

	"github.com/sirupsen/logrus"
)

// TickInterval is the fixed period of the pan loop.
const TickInterval = 10 * time.Millisecond

// Scheduler owns the single repeating pan tick. It converts the time since the
// panning session began and the current KeyState into a displacement of the
// active surface.
type Scheduler struct {
	keys    *KeyState
	adapter *Adapter
	speed   SpeedSource
	timers  Timers
	clock   Clock
	log     *logrus.Entry

	handle   Interval
	panStart time.Time
	started  bool
}

// SchedulerOption mutates Scheduler configuration.
type SchedulerOption func(*Scheduler)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) SchedulerOption {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the log entry used for loop lifecycle messages.
func WithLogger(l *logrus.Entry) SchedulerOption {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// NewScheduler wires a scheduler to keys and adapter. The adapter is told to
// halt this scheduler whenever it finds no active surface.
func NewScheduler(keys *KeyState, adapter *Adapter, speed SpeedSource, timers Timers, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		keys:    keys,
		adapter: adapter,
		speed:   speed,
		timers:  timers,
		clock:   SystemClock{},
		log:     logrus.WithField("component", "pan"),
	}
	for _, opt := range opts {
		opt(s)
	}
	adapter.onAbsent = s.halt
	return s
}

// Start schedules the tick unless one is already live. Key repeat calls this
// many times per session; only the first has any effect.
func (s *Scheduler) Start() {
	if s.handle != nil {
		return
	}
	s.clearStart()
	s.handle = s.timers.Every(TickInterval, s.tick)
	s.log.Debug("pan loop started")
}

// Stop cancels the tick once no axis is moving. A forced stop always cancels
// it, clears every key flag and forgets the session start.
func (s *Scheduler) Stop(force bool) {
	if force || !s.keys.Panning() {
		s.halt()
	}
	if force {
		s.keys.Reset()
		s.clearStart()
	}
}

// Running reports whether a tick is scheduled.
func (s *Scheduler) Running() bool {
	return s.handle != nil
}

// PanStart returns the start of the current session, if the first tick has fired.
func (s *Scheduler) PanStart() (time.Time, bool) {
	return s.panStart, s.started
}

// halt cancels the live tick, if any, leaving key state alone.
func (s *Scheduler) halt() {
	if s.handle == nil {
		return
	}
	s.handle.Stop()
	s.handle = nil
	s.log.Debug("pan loop stopped")
}

func (s *Scheduler) clearStart() {
	s.panStart = time.Time{}
	s.started = false
}

func (s *Scheduler) tick() {
	surface, ok := s.adapter.ActiveSurface()
	if !ok {
		return
	}
	dx, dy := s.Delta(s.elapsed())
	ApplyPan(surface, dx, dy)
}

// elapsed returns milliseconds since the session's first tick, fixing the
// session start on that first tick.
func (s *Scheduler) elapsed() float64 {
	now := s.clock.Now()
	if !s.started {
		s.panStart = now
		s.started = true
		return 0
	}
	return float64(now.Sub(s.panStart)) / float64(time.Millisecond)
}

// Delta returns the displacement for a tick elapsedMs into the session. The
// distance is computed once and shared by both axes.
func (s *Scheduler) Delta(elapsedMs float64) (dx, dy float64) {
	d := Distance(elapsedMs, s.speed.MaxSpeed())
	return s.keys.axis(West, East) * d, s.keys.axis(North, South) * d
}
