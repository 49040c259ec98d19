package core

import (
	"time"

	"github.com/lixenwraith/sentry/vmath"
)

// Launcher is the opaque weapon the turret fires through
// Projectile simulation and damage resolution belong to the implementation
type Launcher interface {
	// CanFire reports launcher readiness (cooldown, ammo, power)
	CanFire() bool
	// Fire launches toward direction and reports success
	Fire(direction vmath.Vec3F) bool

	FireRate() float64
	SetFireRate(shotsPerSecond float64)
	BaseDamage() float64
	SetBaseDamage(damage float64)
	ProjectileSpeed() float64
	SetProjectileSpeed(unitsPerSecond float64)
	Lifetime() time.Duration
	SetLifetime(lifetime time.Duration)
}
