package vmath

import "math"

// FlatEpsilonSq is the squared horizontal length below which a direction is undefined
const FlatEpsilonSq = 1e-12

func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }
func RadToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// NormalizeDeg wraps angle to (-180, 180]
func NormalizeDeg(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	angle = math.Mod(angle, 360)
	if angle > 180 {
		angle -= 360
	} else if angle <= -180 {
		angle += 360
	}
	return angle
}

// DeltaDeg returns the shortest signed difference from 'from' to 'to' in (-180, 180]
func DeltaDeg(from, to float64) float64 {
	return NormalizeDeg(to - from)
}

// YawToDirection converts a yaw in degrees to a horizontal unit vector
// Yaw 0 faces +Z, positive yaw turns toward +X
func YawToDirection(yaw float64) Vec3F {
	rad := DegToRad(yaw)
	return Vec3F{X: math.Sin(rad), Z: math.Cos(rad)}
}

// DirectionToYaw converts a direction to yaw in degrees, ignoring Y
func DirectionToYaw(dir Vec3F) float64 {
	return NormalizeDeg(RadToDeg(math.Atan2(dir.X, dir.Z)))
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
