package engine

// Phase is the turret state machine phase
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseScanning
	PhaseTargeting
	PhaseFiring
	PhaseReloading
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseScanning:
		return "Scanning"
	case PhaseTargeting:
		return "Targeting"
	case PhaseFiring:
		return "Firing"
	case PhaseReloading:
		return "Reloading"
	default:
		return "Unknown"
	}
}

// validTransitions lists the phases reachable from each phase
// Every phase may drop to Idle on deactivation or emergency stop
var validTransitions = map[Phase][]Phase{
	PhaseIdle:      {PhaseScanning},
	PhaseScanning:  {PhaseTargeting, PhaseIdle},
	PhaseTargeting: {PhaseScanning, PhaseFiring, PhaseIdle},
	PhaseFiring:    {PhaseReloading, PhaseIdle},
	PhaseReloading: {PhaseTargeting, PhaseScanning, PhaseIdle},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}
