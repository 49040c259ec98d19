package parameter

// Rotation actuator
const (
	// RotationSpeedDefault is the maximum angular speed in degrees per second
	RotationSpeedDefault = 120.0

	// RotationSpeedMin is the slowest accepted angular speed
	RotationSpeedMin = 1.0

	// RotationSpeedMax is the fastest accepted angular speed
	RotationSpeedMax = 1440.0

	// ScanArrivalEpsilon is the distance in degrees at which a sweep bound counts as reached
	// Independent of the per-tick step so the sweep never micro-oscillates at a bound
	ScanArrivalEpsilon = 0.01
)
