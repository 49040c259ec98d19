package component

import (
	"time"

	"github.com/lixenwraith/sentry/core"
)

// DetectionState holds the two-phase sensing sets of a sector detector
// Detected is always a subset of Registered
type DetectionState struct {
	// Registered holds entities inside the coarse overlap volume, keyed by id
	Registered map[core.EntityID]core.Entity
	// Order keeps registration order so filtering is deterministic
	Order []core.EntityID

	// Detected is the last filtered list, in registration order
	Detected []core.Entity
	// DetectedSet indexes Detected for membership checks
	DetectedSet map[core.EntityID]struct{}

	NextFilterTime time.Time
}

// NewDetectionState creates empty sets
func NewDetectionState() DetectionState {
	return DetectionState{
		Registered:  make(map[core.EntityID]core.Entity),
		DetectedSet: make(map[core.EntityID]struct{}),
	}
}
