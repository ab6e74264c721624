package pan

import "github.com/sirupsen/logrus"

// Controller bundles the tracker, scheduler and adapter behind the handful of
// calls a host makes: key events, context changes and origin resets.
type Controller struct {
	keys      *KeyState
	tracker   *Tracker
	scheduler *Scheduler
	adapter   *Adapter
	log       *logrus.Entry
}

// Settings is what the controller needs from the settings store.
type Settings interface {
	BindingsSource
	SpeedSource
}

// NewController builds a controller panning the surfaces found by locator.
func NewController(locator SurfaceLocator, settings Settings, timers Timers, opts ...SchedulerOption) *Controller {
	keys := &KeyState{}
	adapter := NewAdapter(locator)
	scheduler := NewScheduler(keys, adapter, settings, timers, opts...)
	return &Controller{
		keys:      keys,
		tracker:   NewTracker(keys, settings, scheduler),
		scheduler: scheduler,
		adapter:   adapter,
		log:       scheduler.log,
	}
}

// KeyDown forwards a key press to the tracker.
func (c *Controller) KeyDown(key string) bool {
	return c.tracker.KeyDown(key)
}

// KeyUp forwards a key release to the tracker.
func (c *Controller) KeyUp(key string) bool {
	return c.tracker.KeyUp(key)
}

// ForceStop stops the loop and drops all held keys. Hosts call it on every
// context change; calling it repeatedly is harmless.
func (c *Controller) ForceStop(reason string) {
	if c.scheduler.Running() || c.keys.Panning() {
		c.log.WithField("reason", reason).Debug("forced pan stop")
	}
	c.scheduler.Stop(true)
}

// ResetOrigin moves the active surface back to (0, 0).
func (c *Controller) ResetOrigin() bool {
	return c.adapter.ResetOrigin()
}

// Panning reports whether any axis is actively moving.
func (c *Controller) Panning() bool {
	return c.tracker.Panning()
}

// Running reports whether the pan tick is scheduled.
func (c *Controller) Running() bool {
	return c.scheduler.Running()
}

// Held reports whether d is currently held.
func (c *Controller) Held(d Direction) bool {
	return c.keys.Down(d)
}
