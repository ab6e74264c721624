package pan

import "math"

const (
	// MaxDistance caps the per-tick displacement regardless of the configured speed.
	MaxDistance = 250.0

	// accelerationDivisor spreads log10(elapsed) so the configured speed is
	// reached after one second of holding a key.
	accelerationDivisor = 3.0
)

// Distance returns the pan distance for one tick after elapsedMs milliseconds
// of continuous panning. It grows with log10 of the elapsed time and is capped
// at MaxDistance.
func Distance(elapsedMs, maxSpeed float64) float64 {
	if elapsedMs < 1 {
		return 0
	}
	return math.Min(math.Log10(elapsedMs)*maxSpeed/accelerationDivisor, MaxDistance)
}
