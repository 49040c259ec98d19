package system

import (
	"cmp"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/sentry/component"
	"github.com/lixenwraith/sentry/core"
	"github.com/lixenwraith/sentry/parameter"
	"github.com/lixenwraith/sentry/status"
	"github.com/lixenwraith/sentry/vmath"
)

// FireGate gates fire requests on aim accuracy and launcher readiness, and owns the cached
// launcher parameters
// Parameter setters only mark the cache dirty; Sync pushes the whole batch at most once per tick
type FireGate struct {
	launcher core.Launcher
	heading  Heading
	logger   *slog.Logger

	accuracyGating  bool
	aimingTolerance float64

	state component.FireState

	// Telemetry
	statShots    *atomic.Int64
	statFailures *atomic.Int64
	statRejected *atomic.Int64
	statPushes   *atomic.Int64
}

// NewFireGate creates a gate with default parameters; the first Sync pushes them
func NewFireGate(launcher core.Launcher, heading Heading, reg *status.Registry, logger *slog.Logger) *FireGate {
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	g := &FireGate{
		launcher:        launcher,
		heading:         heading,
		logger:          logger.With("component", "fire_gate"),
		accuracyGating:  true,
		aimingTolerance: parameter.AimingToleranceDefault,
		state: component.FireState{
			FireRateRange: component.NewRange(
				parameter.FireRateMin, parameter.FireRateMax, parameter.FireRateDefault),
			BaseDamageRange: component.NewRange(
				parameter.BaseDamageMin, parameter.BaseDamageMax, parameter.BaseDamageDefault),
			ProjectileSpeedRange: component.NewRange(
				parameter.ProjectileSpeedMin, parameter.ProjectileSpeedMax, parameter.ProjectileSpeedDefault),
			LifetimeRange: component.NewRange(
				parameter.ProjectileLifetimeMin, parameter.ProjectileLifetimeMax, parameter.ProjectileLifetimeDefault),
		},

		statShots:    reg.Ints.Get("fire.shots"),
		statFailures: reg.Ints.Get("fire.failures"),
		statRejected: reg.Ints.Get("fire.rejected"),
		statPushes:   reg.Ints.Get("fire.pushes"),
	}
	g.state.FireRate = g.state.FireRateRange.Default
	g.state.BaseDamage = g.state.BaseDamageRange.Default
	g.state.ProjectileSpeed = g.state.ProjectileSpeedRange.Default
	g.state.Lifetime = g.state.LifetimeRange.Default
	g.state.Dirty = true
	return g
}

// HasLauncher reports whether a launcher is bound
func (g *FireGate) HasLauncher() bool {
	return g.launcher != nil
}

// SetAccuracyGating toggles the aim check
func (g *FireGate) SetAccuracyGating(enabled bool) {
	g.accuracyGating = enabled
}

// SetAimingTolerance sets the maximum aim error in degrees
func (g *FireGate) SetAimingTolerance(degrees float64) {
	applied := degrees
	if math.IsNaN(applied) {
		applied = parameter.AimingToleranceDefault
	}
	applied = vmath.Clamp(applied, parameter.AimingToleranceMin, parameter.AimingToleranceMax)
	if applied != degrees {
		g.logger.Warn("aiming tolerance clamped", "requested", degrees, "applied", applied)
	}
	g.aimingTolerance = applied
}

func (g *FireGate) AimingTolerance() float64 { return g.aimingTolerance }
func (g *FireGate) AccuracyGating() bool     { return g.accuracyGating }

// Ready reports launcher readiness
func (g *FireGate) Ready() bool {
	return g.launcher != nil && g.launcher.CanFire()
}

// Aligned reports whether direction is within the aiming tolerance of the current forward
// The angle is measured in full 3D; a zero direction is never aligned
// Always true with gating disabled
func (g *FireGate) Aligned(direction vmath.Vec3F) bool {
	if !g.accuracyGating {
		return true
	}
	if g.heading == nil {
		return false
	}
	return vmath.AngleBetween(g.heading.GetForwardDirection(), direction) <= g.aimingTolerance
}

// CanFireInDirection reports whether a shot toward direction would be attempted
func (g *FireGate) CanFireInDirection(direction vmath.Vec3F) bool {
	return g.Ready() && g.Aligned(direction)
}

// ExecuteFire fires toward direction when CanFireInDirection holds and returns launcher success
func (g *FireGate) ExecuteFire(direction vmath.Vec3F) bool {
	if !g.Aligned(direction) {
		g.statRejected.Add(1)
		g.logger.Debug("fire rejected, off aim", "tolerance", g.aimingTolerance)
		return false
	}
	if !g.Ready() {
		g.statRejected.Add(1)
		g.logger.Debug("fire rejected, launcher not ready")
		return false
	}
	// Parameters changed this tick must reach the launcher before the shot
	g.Sync()
	if !g.launcher.Fire(direction) {
		g.statFailures.Add(1)
		return false
	}
	g.statShots.Add(1)
	return true
}

// Sync pushes cached parameters to the launcher if any changed
// Returns true when a push happened
func (g *FireGate) Sync() bool {
	if !g.state.Dirty || g.launcher == nil {
		return false
	}
	g.launcher.SetFireRate(g.state.FireRate)
	g.launcher.SetBaseDamage(g.state.BaseDamage)
	g.launcher.SetProjectileSpeed(g.state.ProjectileSpeed)
	g.launcher.SetLifetime(g.state.Lifetime)
	g.state.Dirty = false
	g.statPushes.Add(1)
	return true
}

// Dirty reports whether a push is pending
func (g *FireGate) Dirty() bool {
	return g.state.Dirty
}

// SetFireRate sets shots per second
func (g *FireGate) SetFireRate(v float64) {
	g.state.FireRate = setParam(g, "fire_rate", g.state.FireRateRange, g.state.FireRate, v)
}

// SetBaseDamage sets damage per projectile
func (g *FireGate) SetBaseDamage(v float64) {
	g.state.BaseDamage = setParam(g, "base_damage", g.state.BaseDamageRange, g.state.BaseDamage, v)
}

// SetProjectileSpeed sets projectile speed in units per second
func (g *FireGate) SetProjectileSpeed(v float64) {
	g.state.ProjectileSpeed = setParam(g, "projectile_speed", g.state.ProjectileSpeedRange, g.state.ProjectileSpeed, v)
}

// SetLifetime sets projectile lifetime
func (g *FireGate) SetLifetime(v time.Duration) {
	g.state.Lifetime = setParam(g, "lifetime", g.state.LifetimeRange, g.state.Lifetime, v)
}

func (g *FireGate) FireRate() float64          { return g.state.FireRate }
func (g *FireGate) BaseDamage() float64        { return g.state.BaseDamage }
func (g *FireGate) ProjectileSpeed() float64   { return g.state.ProjectileSpeed }
func (g *FireGate) Lifetime() time.Duration    { return g.state.Lifetime }
func (g *FireGate) State() component.FireState { return g.state }

// SetFireRateRange replaces the fire rate bounds and re-clamps the cached value
func (g *FireGate) SetFireRateRange(lo, hi, def float64) {
	g.state.FireRateRange, g.state.FireRate = setRange(g, "fire_rate", lo, hi, def, g.state.FireRate)
}

// SetBaseDamageRange replaces the base damage bounds and re-clamps the cached value
func (g *FireGate) SetBaseDamageRange(lo, hi, def float64) {
	g.state.BaseDamageRange, g.state.BaseDamage = setRange(g, "base_damage", lo, hi, def, g.state.BaseDamage)
}

// SetProjectileSpeedRange replaces the projectile speed bounds and re-clamps the cached value
func (g *FireGate) SetProjectileSpeedRange(lo, hi, def float64) {
	g.state.ProjectileSpeedRange, g.state.ProjectileSpeed = setRange(g, "projectile_speed", lo, hi, def, g.state.ProjectileSpeed)
}

// SetLifetimeRange replaces the lifetime bounds and re-clamps the cached value
func (g *FireGate) SetLifetimeRange(lo, hi, def time.Duration) {
	g.state.LifetimeRange, g.state.Lifetime = setRange(g, "lifetime", lo, hi, def, g.state.Lifetime)
}

// setParam clamps v into r, logs a correction and marks the cache dirty on change
func setParam[T cmp.Ordered](g *FireGate, name string, r component.Range[T], current, v T) T {
	applied := r.Default
	if v == v { // NaN falls back to the range default
		applied = r.Clamp(v)
	}
	if applied != v {
		g.logger.Warn("fire parameter clamped", "param", name, "requested", v, "applied", applied)
	}
	if applied != current {
		g.state.Dirty = true
	}
	return applied
}

// setRange normalizes a new range and re-clamps the current value into it
func setRange[T cmp.Ordered](g *FireGate, name string, lo, hi, def, current T) (component.Range[T], T) {
	r := component.Range[T]{Min: lo, Max: hi, Default: def}
	if r.Normalize() {
		g.logger.Warn("fire parameter range corrected",
			"param", name, "min", r.Min, "max", r.Max, "default", r.Default)
	}
	applied := r.Clamp(current)
	if applied != current {
		g.state.Dirty = true
	}
	return r, applied
}
