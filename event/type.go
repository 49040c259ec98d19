package event

// EventType represents the type of turret event
type EventType int

const (
	// EventNone is the zero value, never dispatched
	EventNone EventType = iota

	// === Coordinator Event ===

	// EventStateChanged signals a phase transition
	// Trigger: Turret transition | Payload: *StateChangedPayload
	EventStateChanged

	// EventTargetAcquired signals a new current target (first lock or switch)
	// Trigger: Turret relaying Targeter | Payload: *TargetPayload
	EventTargetAcquired

	// EventTargetLost signals the current target was dropped without replacement
	// Trigger: Turret relaying Targeter | Payload: *TargetPayload
	EventTargetLost

	// EventFired signals a fire attempt, successful or not
	// Trigger: Turret Firing phase, FireImmediate | Payload: *FiredPayload
	EventFired

	// === Component Event ===

	// EventTargetChanged signals any change of the Targeter's current target
	// Trigger: Targeter | Consumer: Turret | Payload: *TargetPayload
	EventTargetChanged

	// EventRotationComplete signals the actuator reached its single-rotation target
	// Trigger: RotationActuator | Consumer: Turret | Payload: *RotationPayload
	EventRotationComplete

	// EventSettingsChanged signals a sector configuration mutation
	// Trigger: SectorConfig setters | Consumer: SectorDetector, Turret | Payload: *SettingsPayload
	EventSettingsChanged

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventNone:             "None",
	EventStateChanged:     "StateChanged",
	EventTargetAcquired:   "TargetAcquired",
	EventTargetLost:       "TargetLost",
	EventFired:            "Fired",
	EventTargetChanged:    "TargetChanged",
	EventRotationComplete: "RotationComplete",
	EventSettingsChanged:  "SettingsChanged",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventNames[t]
}

// Event is a dispatched notification
type Event struct {
	Type    EventType
	Payload any
}
