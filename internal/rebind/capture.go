// Package rebind implements the four-key capture flow that redefines the
// panning bindings.
package rebind

import (
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/canvas-pan/internal/pan"
)

// State is the capture state.
type State int

const (
	Idle State = iota
	AwaitingNorth
	AwaitingWest
	AwaitingSouth
	AwaitingEast
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingNorth:
		return "awaiting north"
	case AwaitingWest:
		return "awaiting west"
	case AwaitingSouth:
		return "awaiting south"
	case AwaitingEast:
		return "awaiting east"
	default:
		return "unknown"
	}
}

// Committer persists a complete set of bindings.
type Committer interface {
	SetBindings(b pan.Bindings) error
}

// Capture records one key per direction in North, West, South, East order and
// commits them together after the fourth.
type Capture struct {
	state  State
	buffer pan.Bindings
	target Committer
	log    *logrus.Entry
}

// NewCapture returns an idle capture committing to target.
func NewCapture(target Committer) *Capture {
	return &Capture{target: target, log: logrus.WithField("component", "rebind")}
}

// Begin discards any partial capture and waits for the north key.
func (c *Capture) Begin() {
	if c.Active() {
		c.log.Debug("discarding partial capture")
	}
	c.buffer = pan.Bindings{}
	c.state = AwaitingNorth
}

// Active reports whether the capture is waiting for keys.
func (c *Capture) Active() bool {
	return c.state != Idle
}

// State returns the current state.
func (c *Capture) State() State {
	return c.state
}

// Awaiting returns the direction the next key will be bound to.
func (c *Capture) Awaiting() (pan.Direction, bool) {
	if !c.Active() {
		return pan.North, false
	}
	return pan.Direction(c.state - AwaitingNorth), true
}

// Pending returns the keys captured so far.
func (c *Capture) Pending() pan.Bindings {
	return c.buffer
}

// Press records key for the awaited direction. The press that completes the
// sequence commits the buffer if every entry is set and reports whether it did.
// Presses while idle are ignored.
func (c *Capture) Press(key string) (bool, error) {
	d, ok := c.Awaiting()
	if !ok {
		return false, nil
	}
	c.buffer = c.buffer.With(d, key)
	if _, more := d.Next(); more {
		c.state++
		return false, nil
	}

	c.state = Idle
	if !c.buffer.Complete() {
		c.log.Debug("incomplete capture discarded")
		return false, nil
	}
	if err := c.target.SetBindings(c.buffer); err != nil {
		return false, err
	}
	c.log.WithField("bindings", c.buffer).Debug("bindings captured")
	return true, nil
}
