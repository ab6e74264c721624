// Package pan implements keyboard panning of a canvas surface: the key state
// tracker, the fixed-tick pan loop and the adapter that applies its output to
// whichever surface the host reports as active.
package pan

// Direction is one of the four panning directions.
type Direction int

const (
	North Direction = iota
	West
	South
	East
)

// Directions lists every direction in key matching and capture order.
//
//nolint:gochecknoglobals // immutable lookup table used across the package.
var Directions = [...]Direction{North, West, South, East}

// Opposite returns the other direction of the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	default:
		return West
	}
}

// Next returns the direction that follows d in capture order and whether one exists.
func (d Direction) Next() (Direction, bool) {
	if d >= East {
		return East, false
	}
	return d + 1, true
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	case East:
		return "east"
	default:
		return "unknown"
	}
}
