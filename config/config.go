package config

import (
	"math"
	"time"

	"github.com/lixenwraith/sentry/engine"
	"github.com/lixenwraith/sentry/vmath"
)

// Config mirrors the TOML layout of a turret file
// Values are not validated here; the turret components clamp on apply
type Config struct {
	Turret    TurretSection    `toml:"turret"`
	Sector    SectorSection    `toml:"sector"`
	Rotation  RotationSection  `toml:"rotation"`
	Targeting TargetingSection `toml:"targeting"`
	Fire      FireSection      `toml:"fire"`
}

// TurretSection places the turret and sets its cadence
type TurretSection struct {
	Team          int        `toml:"team"`
	Position      [3]float64 `toml:"position"`
	MountYaw      float64    `toml:"mount_yaw"`
	ReloadSeconds float64    `toml:"reload_seconds"`
}

// SectorSection is the detection geometry
type SectorSection struct {
	SectorAngle     float64 `toml:"sector_angle"`
	DetectionRadius float64 `toml:"detection_radius"`
	ScanMin         float64 `toml:"scan_min"`
	ScanMax         float64 `toml:"scan_max"`
	PollSeconds     float64 `toml:"poll_seconds"`
}

// RotationSection is the actuator tuning
type RotationSection struct {
	Speed float64 `toml:"speed"`
}

// TargetingSection is the target selection tuning
type TargetingSection struct {
	HysteresisThreshold float64 `toml:"hysteresis_threshold"`
	LossTimeoutSeconds  float64 `toml:"loss_timeout_seconds"`
}

// FireSection holds the launcher parameters and the aim gate
type FireSection struct {
	Rate            float64 `toml:"rate"`
	BaseDamage      float64 `toml:"base_damage"`
	ProjectileSpeed float64 `toml:"projectile_speed"`
	LifetimeSeconds float64 `toml:"lifetime_seconds"`
	AimingTolerance float64 `toml:"aiming_tolerance"`
	AccuracyGating  bool    `toml:"accuracy_gating"`
}

// Default returns the configuration equivalent to engine.DefaultSettings
func Default() Config {
	return FromSettings(engine.DefaultSettings())
}

// FromSettings converts live turret settings back into file form
func FromSettings(s engine.Settings) Config {
	return Config{
		Turret: TurretSection{
			Team:          s.Team,
			Position:      [3]float64{s.Origin.X, s.Origin.Y, s.Origin.Z},
			MountYaw:      s.MountYaw,
			ReloadSeconds: s.ReloadDuration.Seconds(),
		},
		Sector: SectorSection{
			SectorAngle:     s.SectorAngle,
			DetectionRadius: s.DetectionRadius,
			ScanMin:         s.ScanMin,
			ScanMax:         s.ScanMax,
			PollSeconds:     s.PollInterval.Seconds(),
		},
		Rotation: RotationSection{
			Speed: s.RotationSpeed,
		},
		Targeting: TargetingSection{
			HysteresisThreshold: s.HysteresisThreshold,
			LossTimeoutSeconds:  s.TargetLossTimeout.Seconds(),
		},
		Fire: FireSection{
			Rate:            s.FireRate,
			BaseDamage:      s.BaseDamage,
			ProjectileSpeed: s.ProjectileSpeed,
			LifetimeSeconds: s.Lifetime.Seconds(),
			AimingTolerance: s.AimingTolerance,
			AccuracyGating:  s.AccuracyGating,
		},
	}
}

// Settings converts the file form into turret settings
func (c Config) Settings() engine.Settings {
	def := engine.DefaultSettings()
	return engine.Settings{
		Team:     c.Turret.Team,
		Origin:   vmath.Vec3F{X: c.Turret.Position[0], Y: c.Turret.Position[1], Z: c.Turret.Position[2]},
		MountYaw: c.Turret.MountYaw,

		SectorAngle:     c.Sector.SectorAngle,
		DetectionRadius: c.Sector.DetectionRadius,
		ScanMin:         c.Sector.ScanMin,
		ScanMax:         c.Sector.ScanMax,
		PollInterval:    seconds(c.Sector.PollSeconds, def.PollInterval),

		RotationSpeed: c.Rotation.Speed,

		HysteresisThreshold: c.Targeting.HysteresisThreshold,
		TargetLossTimeout:   seconds(c.Targeting.LossTimeoutSeconds, def.TargetLossTimeout),

		FireRate:        c.Fire.Rate,
		BaseDamage:      c.Fire.BaseDamage,
		ProjectileSpeed: c.Fire.ProjectileSpeed,
		Lifetime:        seconds(c.Fire.LifetimeSeconds, def.Lifetime),
		AimingTolerance: c.Fire.AimingTolerance,
		AccuracyGating:  c.Fire.AccuracyGating,

		ReloadDuration: seconds(c.Turret.ReloadSeconds, def.ReloadDuration),
	}
}

// seconds converts float seconds to a duration rounded to the nearest microsecond
// NaN and non-positive input yield def
func seconds(s float64, def time.Duration) time.Duration {
	if math.IsNaN(s) || s <= 0 {
		return def
	}
	d := time.Duration(math.Round(s * float64(time.Second)))
	return d.Round(time.Microsecond)
}
