package parameter

import "time"

// Turret coordinator timing
const (
	// ReloadDurationDefault is the cooldown enforced after every fire attempt
	ReloadDurationDefault = 500 * time.Millisecond

	// ReloadDurationMin bounds reload from below so the cadence never collapses to zero
	ReloadDurationMin = 10 * time.Millisecond

	// ReloadDurationMax bounds reload from above
	ReloadDurationMax = 30 * time.Second

	// MaxDeltaTime caps a single tick's dt so a stalled host cannot teleport the head
	MaxDeltaTime = 250 * time.Millisecond
)

// Sandbox host
const (
	// SandboxTickInterval is the host loop interval (~60 FPS)
	SandboxTickInterval = 16 * time.Millisecond

	// SandboxArenaRadius is the half-extent of the sandbox arena in scene units
	SandboxArenaRadius = 30.0

	// SandboxDummySpeed is the walking speed of sandbox dummies in units per second
	SandboxDummySpeed = 2.5

	// SandboxDummyHealth is the starting health of sandbox dummies
	SandboxDummyHealth = 40.0

	// SandboxHitRadius is the lateral distance within which a hitscan ray hits a dummy
	SandboxHitRadius = 0.75
)
