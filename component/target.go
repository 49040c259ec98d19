package component

import (
	"time"

	"github.com/lixenwraith/sentry/core"
)

// TargetState holds the targeter's selection
type TargetState struct {
	// Current is nil when no target is held
	Current core.Entity
	// Manual is true while an external override pins Current
	Manual bool
	// LossTimer counts down after Current became invalid, zero when idle
	LossTimer time.Duration
	// Losing is true between a target loss and the next acquisition or reset
	Losing bool
}

// HasTarget reports whether a target is held
func (s *TargetState) HasTarget() bool {
	return s.Current != nil
}
