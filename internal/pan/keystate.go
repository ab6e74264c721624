package pan

// KeyState holds one flag per direction. Pressing a direction always clears
// its opposite in the same transition; releasing only clears its own flag.
type KeyState struct {
	down [len(Directions)]bool
}

// Press marks d as held and its opposite as released.
func (k *KeyState) Press(d Direction) {
	k.down[d] = true
	k.down[d.Opposite()] = false
}

// Release marks d as not held.
func (k *KeyState) Release(d Direction) {
	k.down[d] = false
}

// Down reports whether d is held.
func (k *KeyState) Down(d Direction) bool {
	return k.down[d]
}

// Reset clears every flag.
func (k *KeyState) Reset() {
	k.down = [len(Directions)]bool{}
}

// Panning is true when exactly one flag of at least one axis is set.
func (k *KeyState) Panning() bool {
	return k.down[North] != k.down[South] || k.down[West] != k.down[East]
}

// axis returns -1 when only neg is held, +1 when only pos is held and 0 otherwise.
func (k *KeyState) axis(neg, pos Direction) float64 {
	switch {
	case k.down[neg] && !k.down[pos]:
		return -1
	case k.down[pos] && !k.down[neg]:
		return 1
	default:
		return 0
	}
}

// Loop is the pan loop as seen by the tracker.
type Loop interface {
	Start()
	Stop(force bool)
}

// Tracker turns raw key events into KeyState transitions using the current bindings.
type Tracker struct {
	keys     *KeyState
	bindings BindingsSource
	loop     Loop
}

// NewTracker returns a tracker updating keys and notifying loop.
func NewTracker(keys *KeyState, bindings BindingsSource, loop Loop) *Tracker {
	return &Tracker{keys: keys, bindings: bindings, loop: loop}
}

// KeyDown handles a key press and reports whether the key is bound.
func (t *Tracker) KeyDown(key string) bool {
	d, ok := t.bindings.Bindings().Match(key)
	if !ok {
		return false
	}
	t.keys.Press(d)
	t.loop.Start()
	return true
}

// KeyUp handles a key release and reports whether the key is bound.
func (t *Tracker) KeyUp(key string) bool {
	d, ok := t.bindings.Bindings().Match(key)
	if !ok {
		return false
	}
	t.keys.Release(d)
	t.loop.Stop(false)
	return true
}

// Panning reports whether any axis is actively moving.
func (t *Tracker) Panning() bool {
	return t.keys.Panning()
}
