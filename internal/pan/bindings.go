package pan

// Bindings maps every direction to the key that pans in it.
type Bindings struct {
	North string `json:"north" yaml:"north" toml:"north" validate:"required,keyname"`
	West  string `json:"west"  yaml:"west"  toml:"west"  validate:"required,keyname"`
	South string `json:"south" yaml:"south" toml:"south" validate:"required,keyname"`
	East  string `json:"east"  yaml:"east"  toml:"east"  validate:"required,keyname"`
}

// DefaultBindings returns the w/a/s/d layout.
func DefaultBindings() Bindings {
	return Bindings{North: "w", West: "a", South: "s", East: "d"}
}

// Key returns the key bound to d.
func (b Bindings) Key(d Direction) string {
	switch d {
	case North:
		return b.North
	case West:
		return b.West
	case South:
		return b.South
	case East:
		return b.East
	default:
		return ""
	}
}

// With returns a copy of b with d bound to key.
func (b Bindings) With(d Direction, key string) Bindings {
	switch d {
	case North:
		b.North = key
	case West:
		b.West = key
	case South:
		b.South = key
	case East:
		b.East = key
	}
	return b
}

// Match returns the first direction, in North, West, South, East order, bound to key.
func (b Bindings) Match(key string) (Direction, bool) {
	if key == "" {
		return North, false
	}
	for _, d := range Directions {
		if b.Key(d) == key {
			return d, true
		}
	}
	return North, false
}

// Complete reports whether every direction has a non-empty key.
func (b Bindings) Complete() bool {
	return b.North != "" && b.West != "" && b.South != "" && b.East != ""
}

// BindingsSource supplies the current key bindings. It is consulted on every
// key event so rebinding takes effect immediately.
type BindingsSource interface {
	Bindings() Bindings
}

// SpeedSource supplies the configured maximum pan speed.
type SpeedSource interface {
	MaxSpeed() float64
}
