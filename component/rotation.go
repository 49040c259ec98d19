package component

// RotationMode selects the actuator behavior
type RotationMode uint8

const (
	// RotationIdle holds the current angle
	RotationIdle RotationMode = iota
	// RotationSingle moves to TargetAngle and stops
	RotationSingle
	// RotationContinuous sweeps between ContinuousMin and ContinuousMax
	RotationContinuous
)

func (m RotationMode) String() string {
	switch m {
	case RotationIdle:
		return "idle"
	case RotationSingle:
		return "single"
	case RotationContinuous:
		return "continuous"
	default:
		return "unknown"
	}
}

// ScanDirection is the sweep direction in continuous mode
type ScanDirection int8

const (
	ScanForward  ScanDirection = 1  // toward ContinuousMax
	ScanBackward ScanDirection = -1 // toward ContinuousMin
)

// RotationState holds the actuator angles in degrees, normalized to (-180, 180]
type RotationState struct {
	CurrentAngle float64
	TargetAngle  float64
	Mode         RotationMode

	ContinuousMin float64
	ContinuousMax float64
	Direction     ScanDirection
}

// IsContinuous reports whether a sweep is running
func (s *RotationState) IsContinuous() bool {
	return s.Mode == RotationContinuous
}
