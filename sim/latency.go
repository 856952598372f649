package sim

import "math"

// oneWayLatencyDivisor and oneWayLatencyScaleMs implement the approximate
// two-thirds-speed-of-light model of §4.4: floor(distance_km / 200000 * 1000) ms.
const (
	oneWayLatencyDivisor = 200000.0
	oneWayLatencyScaleMs = 1000.0
)

// OneWayLatency returns the one-way propagation delay, in milliseconds,
// between two coordinates. Symmetric: OneWayLatency(a, b) == OneWayLatency(b, a).
func OneWayLatency(a, b Coordinate) int64 {
	d := a.DistanceTo(b)
	return int64(math.Floor(d / oneWayLatencyDivisor * oneWayLatencyScaleMs))
}
