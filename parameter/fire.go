package parameter

import "time"

// Fire rate, shots per second
const (
	FireRateDefault = 2.0
	FireRateMin     = 0.1
	FireRateMax     = 20.0
)

// Base damage per projectile
const (
	BaseDamageDefault = 10.0
	BaseDamageMin     = 1.0
	BaseDamageMax     = 1000.0
)

// Projectile speed in scene units per second
const (
	ProjectileSpeedDefault = 40.0
	ProjectileSpeedMin     = 1.0
	ProjectileSpeedMax     = 500.0
)

// Projectile lifetime
const (
	ProjectileLifetimeDefault = 2 * time.Second
	ProjectileLifetimeMin     = 100 * time.Millisecond
	ProjectileLifetimeMax     = 30 * time.Second
)

// Aiming
const (
	// AimingToleranceDefault is the maximum angular error in degrees permitted before firing
	AimingToleranceDefault = 5.0

	// AimingToleranceMin keeps the tolerance strictly positive
	AimingToleranceMin = 0.1

	// AimingToleranceMax is the loosest accepted tolerance
	AimingToleranceMax = 90.0
)
