package core

import "github.com/lixenwraith/sentry/vmath"

// OverlapListener receives coarse volume membership changes
type OverlapListener interface {
	OnEnter(e Entity)
	OnExit(e Entity)
}

// Volume is a coarse overlap region owned by a QueryProvider
type Volume interface {
	// Resize changes the volume radius; membership changes are reported through the listener
	Resize(radius float64)
	// Close stops notifications and releases the volume
	Close()
}

// QueryProvider is the broad-phase service reporting which entities overlap a volume
type QueryProvider interface {
	OpenVolume(center vmath.Vec3F, radius float64, listener OverlapListener) Volume
}

// Pivot is the orientation target driven by the rotation actuator
// Yaw is local to the turret mount, in degrees
type Pivot interface {
	SetYaw(yaw float64)
}
