package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in scene units
// Y is the vertical axis; the horizontal plane is X/Z
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FLerp interpolates from a to b, t is not clamped
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t, a.Z + (b.Z-a.Z)*t}
}

// V3FNormalize returns the unit vector of v, zero vector stays zero
func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FFlat projects v onto the horizontal plane (drops Y)
func V3FFlat(v Vec3F) Vec3F {
	return Vec3F{X: v.X, Z: v.Z}
}

// FlatDistSq is the squared horizontal distance between a and b
func FlatDistSq(a, b Vec3F) float64 {
	dx := b.X - a.X
	dz := b.Z - a.Z
	return dx*dx + dz*dz
}

// FlatDist is the horizontal distance between a and b
func FlatDist(a, b Vec3F) float64 {
	return math.Sqrt(FlatDistSq(a, b))
}

// FlatDirection returns the normalized horizontal direction from 'from' to 'to'
// Second return is false when the points coincide horizontally
func FlatDirection(from, to Vec3F) (Vec3F, bool) {
	d := V3FFlat(V3FSub(to, from))
	if V3FMagSq(d) < FlatEpsilonSq {
		return Vec3F{}, false
	}
	return V3FNormalize(d), true
}

// AngleBetween returns the unsigned angle between a and b in degrees
// Zero-length input yields 180 so callers treat it as misaligned
func AngleBetween(a, b Vec3F) float64 {
	na := V3FNormalize(a)
	nb := V3FNormalize(b)
	if V3FMagSq(na) == 0 || V3FMagSq(nb) == 0 {
		return 180
	}
	dot := V3FDot(na, nb)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return RadToDeg(math.Acos(dot))
}
