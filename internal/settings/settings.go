// Package settings persists the panning bindings and speed.
package settings

import (
	"errors"
	"math"

	"github.com/ensigniasec/canvas-pan/internal/pan"
)

const (
	// DefaultMaxSpeed is the out-of-the-box pan speed.
	DefaultMaxSpeed = 250.0
	// MinSpeed and MaxSpeedLimit bound the speed control.
	MinSpeed      = 50.0
	MaxSpeedLimit = 500.0
	// SpeedStep is the speed control granularity.
	SpeedStep = 10.0
)

var (
	ErrSpeedOutOfRange    = errors.New("speed out of range")
	ErrIncompleteBindings = errors.New("bindings must set all four directions")
)

// Settings is the persisted blob.
type Settings struct {
	Keys     pan.Bindings `json:"keys"     yaml:"keys"     toml:"keys"`
	MaxSpeed float64      `json:"maxSpeed" yaml:"maxSpeed" toml:"maxSpeed" validate:"gt=0"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{Keys: pan.DefaultBindings(), MaxSpeed: DefaultMaxSpeed}
}

// ClampSpeed snaps v to the speed control's step and range.
func ClampSpeed(v float64) float64 {
	v = math.Round(v/SpeedStep) * SpeedStep
	return math.Max(MinSpeed, math.Min(MaxSpeedLimit, v))
}
