package parameter

import "time"

// Target selection
const (
	// PriorityScale is the numerator of the default distance priority (scale / distance)
	PriorityScale = 1000.0

	// PriorityMax is the sentinel priority of a candidate at near-zero distance
	PriorityMax = 1e9

	// PriorityMinDistance is the distance below which PriorityMax applies
	PriorityMinDistance = 1e-3

	// HysteresisThresholdDefault is the factor a challenger's priority must exceed over the current target
	HysteresisThresholdDefault = 1.2

	// HysteresisThresholdMin disables hysteresis (any strictly better challenger wins)
	HysteresisThresholdMin = 1.0

	// HysteresisThresholdMax caps switching resistance
	HysteresisThresholdMax = 10.0

	// TargetLossTimeoutDefault is the grace period after target loss before a forced rescan
	TargetLossTimeoutDefault = 500 * time.Millisecond

	// TargetLossTimeoutMax caps the loss grace period
	TargetLossTimeoutMax = 10 * time.Second
)
