package event

import (
	"github.com/lixenwraith/sentry/core"
	"github.com/lixenwraith/sentry/vmath"
)

// StateChangedPayload carries a phase transition
// Phases are passed by name so the event package stays below engine
type StateChangedPayload struct {
	From string
	To   string
}

// TargetPayload carries a target change, either side may be nil
type TargetPayload struct {
	Previous core.Entity
	Current  core.Entity
	Priority float64
	Manual   bool
}

// FiredPayload carries a fire attempt
type FiredPayload struct {
	Target    core.Entity
	Direction vmath.Vec3F
	Success   bool
	Immediate bool
}

// RotationPayload carries the angle the actuator settled on
type RotationPayload struct {
	Angle float64
}

// SettingsPayload is a snapshot of sector configuration after a mutation
type SettingsPayload struct {
	SectorAngle      float64
	HalfAngle        float64
	DetectionRadius  float64
	ScanMin          float64
	ScanMax          float64
	EffectiveScanMin float64
	EffectiveScanMax float64
}
