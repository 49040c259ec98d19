package arena

import (
	"log/slog"
	"math"
	"time"

	"github.com/lixenwraith/sentry/parameter"
	"github.com/lixenwraith/sentry/vmath"
)

// Clock supplies the launcher cooldown time base
type Clock interface {
	Now() time.Time
}

// Shot records one hitscan discharge
type Shot struct {
	At        time.Time
	Direction vmath.Vec3F
	Hit       *Dummy
	Killed    bool
}

// HitscanLauncher resolves each shot instantly along a ray against the world's dummies
// Reach is projectile speed times lifetime; cooldown is 1/fireRate
type HitscanLauncher struct {
	world     *World
	clock     Clock
	origin    vmath.Vec3F
	team      int
	hitRadius float64
	logger    *slog.Logger

	fireRate        float64
	baseDamage      float64
	projectileSpeed float64
	lifetime        time.Duration

	lastShot time.Time
	fired    bool
	shots    []Shot
}

// NewHitscanLauncher creates a ready launcher at origin that ignores dummies of team
func NewHitscanLauncher(world *World, clock Clock, origin vmath.Vec3F, team int, logger *slog.Logger) *HitscanLauncher {
	if logger == nil {
		logger = slog.Default()
	}
	return &HitscanLauncher{
		world:     world,
		clock:     clock,
		origin:    origin,
		team:      team,
		hitRadius: parameter.SandboxHitRadius,
		logger:    logger.With("component", "launcher"),

		fireRate:        parameter.FireRateDefault,
		baseDamage:      parameter.BaseDamageDefault,
		projectileSpeed: parameter.ProjectileSpeedDefault,
		lifetime:        parameter.ProjectileLifetimeDefault,
	}
}

func (l *HitscanLauncher) FireRate() float64                  { return l.fireRate }
func (l *HitscanLauncher) SetFireRate(shotsPerSecond float64) { l.fireRate = shotsPerSecond }
func (l *HitscanLauncher) BaseDamage() float64                { return l.baseDamage }
func (l *HitscanLauncher) SetBaseDamage(damage float64)       { l.baseDamage = damage }
func (l *HitscanLauncher) ProjectileSpeed() float64           { return l.projectileSpeed }
func (l *HitscanLauncher) SetProjectileSpeed(speed float64)   { l.projectileSpeed = speed }
func (l *HitscanLauncher) Lifetime() time.Duration            { return l.lifetime }
func (l *HitscanLauncher) SetLifetime(d time.Duration)        { l.lifetime = d }

// Cooldown returns the minimum interval between shots
func (l *HitscanLauncher) Cooldown() time.Duration {
	if l.fireRate <= 0 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(float64(time.Second) / l.fireRate)
}

// Reach returns the maximum hit distance
func (l *HitscanLauncher) Reach() float64 {
	return l.projectileSpeed * l.lifetime.Seconds()
}

// CanFire implements core.Launcher
func (l *HitscanLauncher) CanFire() bool {
	if !l.fired {
		return true
	}
	return l.clock.Now().Sub(l.lastShot) >= l.Cooldown()
}

// Fire implements core.Launcher; a miss is still a successful discharge
func (l *HitscanLauncher) Fire(direction vmath.Vec3F) bool {
	if !l.CanFire() {
		return false
	}
	dir := vmath.V3FNormalize(direction)
	if vmath.V3FMagSq(dir) == 0 {
		l.logger.Warn("fire with zero direction")
		return false
	}

	now := l.clock.Now()
	l.lastShot = now
	l.fired = true

	shot := Shot{At: now, Direction: dir}
	if hit := l.trace(dir); hit != nil {
		shot.Hit = hit
		shot.Killed = hit.Damage(l.baseDamage)
		l.logger.Debug("shot hit", "target", hit.ID(), "health", hit.Health(), "killed", shot.Killed)
	}
	l.shots = append(l.shots, shot)
	return true
}

// trace returns the nearest live hostile within hitRadius of the ray, or nil
// Dummies are columns, so the ray is resolved on the horizontal plane
func (l *HitscanLauncher) trace(dir vmath.Vec3F) *Dummy {
	flat := vmath.V3FNormalize(vmath.V3FFlat(dir))
	if vmath.V3FMagSq(flat) == 0 {
		return nil
	}
	reach := l.Reach()
	var hit *Dummy
	best := math.Inf(1)
	for _, d := range l.world.Dummies() {
		if !d.IsAlive() || d.TeamID() == l.team {
			continue
		}
		toDummy := vmath.V3FFlat(vmath.V3FSub(d.Position(), l.origin))
		along := vmath.V3FDot(toDummy, flat)
		if along < 0 || along > reach || along >= best {
			continue
		}
		lateralSq := vmath.V3FMagSq(toDummy) - along*along
		if lateralSq <= l.hitRadius*l.hitRadius {
			hit = d
			best = along
		}
	}
	return hit
}

// Shots returns every discharge so far
func (l *HitscanLauncher) Shots() []Shot {
	return l.shots
}
