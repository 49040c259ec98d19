package engine

import (
	"time"

	"github.com/lixenwraith/sentry/parameter"
	"github.com/lixenwraith/sentry/vmath"
)

// Settings is the full numeric configuration of one turret
// Values are passed through the component setters, which clamp and log corrections
type Settings struct {
	Team     int
	Origin   vmath.Vec3F
	MountYaw float64

	SectorAngle     float64
	DetectionRadius float64
	ScanMin         float64
	ScanMax         float64
	PollInterval    time.Duration

	RotationSpeed float64

	HysteresisThreshold float64
	TargetLossTimeout   time.Duration

	FireRate        float64
	BaseDamage      float64
	ProjectileSpeed float64
	Lifetime        time.Duration
	AimingTolerance float64
	AccuracyGating  bool

	ReloadDuration time.Duration
}

// DefaultSettings returns the compiled-in defaults for a turret at the world origin facing +Z
func DefaultSettings() Settings {
	return Settings{
		SectorAngle:         parameter.SectorAngleDefault,
		DetectionRadius:     parameter.DetectionRadiusDefault,
		ScanMin:             parameter.ScanMinDefault,
		ScanMax:             parameter.ScanMaxDefault,
		PollInterval:        parameter.DetectionPollInterval,
		RotationSpeed:       parameter.RotationSpeedDefault,
		HysteresisThreshold: parameter.HysteresisThresholdDefault,
		TargetLossTimeout:   parameter.TargetLossTimeoutDefault,
		FireRate:            parameter.FireRateDefault,
		BaseDamage:          parameter.BaseDamageDefault,
		ProjectileSpeed:     parameter.ProjectileSpeedDefault,
		Lifetime:            parameter.ProjectileLifetimeDefault,
		AimingTolerance:     parameter.AimingToleranceDefault,
		AccuracyGating:      true,
		ReloadDuration:      parameter.ReloadDurationDefault,
	}
}
