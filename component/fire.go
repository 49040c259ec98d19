package component

import "time"

// FireState caches launcher parameters between pushes
// Each value is kept inside its own range; Dirty marks a pending push
type FireState struct {
	FireRate        float64
	BaseDamage      float64
	ProjectileSpeed float64
	Lifetime        time.Duration

	FireRateRange        Range[float64]
	BaseDamageRange      Range[float64]
	ProjectileSpeedRange Range[float64]
	LifetimeRange        Range[time.Duration]

	Dirty bool
}
