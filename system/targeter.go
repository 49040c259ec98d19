package system

import (
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/sentry/component"
	"github.com/lixenwraith/sentry/core"
	"github.com/lixenwraith/sentry/event"
	"github.com/lixenwraith/sentry/parameter"
	"github.com/lixenwraith/sentry/status"
	"github.com/lixenwraith/sentry/vmath"
)

// PriorityFunc scores a candidate seen from origin; higher wins
type PriorityFunc func(origin vmath.Vec3F, e core.Entity) float64

// DistancePriority scores by inverse horizontal distance
// Candidates closer than PriorityMinDistance get PriorityMax
func DistancePriority(origin vmath.Vec3F, e core.Entity) float64 {
	dist := vmath.FlatDist(origin, e.Position())
	if dist < parameter.PriorityMinDistance {
		return parameter.PriorityMax
	}
	return parameter.PriorityScale / dist
}

// Targeter selects and holds one target from the detector's filtered list
// A held target is only replaced by a challenger whose priority beats it by the hysteresis
// factor, so two near-equal candidates do not flip the aim every poll
type Targeter struct {
	detector *SectorDetector
	bus      *event.Bus
	logger   *slog.Logger

	team        int
	priority    PriorityFunc
	threshold   float64
	lossTimeout time.Duration

	enabled bool
	state   component.TargetState

	// Telemetry
	statSwitches *atomic.Int64
	statPriority *status.Float
}

// NewTargeter creates a disabled targeter for a turret on team
func NewTargeter(detector *SectorDetector, bus *event.Bus, team int, reg *status.Registry, logger *slog.Logger) *Targeter {
	if bus == nil {
		bus = event.NewBus()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Targeter{
		detector:    detector,
		bus:         bus,
		logger:      logger.With("component", "targeter"),
		team:        team,
		priority:    DistancePriority,
		threshold:   parameter.HysteresisThresholdDefault,
		lossTimeout: parameter.TargetLossTimeoutDefault,

		statSwitches: reg.Ints.Get("targeter.switches"),
		statPriority: reg.Floats.Get("targeter.priority"),
	}
}

// SetPriorityFunc replaces the scoring function, nil restores DistancePriority
func (t *Targeter) SetPriorityFunc(fn PriorityFunc) {
	if fn == nil {
		fn = DistancePriority
	}
	t.priority = fn
}

// SetHysteresisThreshold sets the factor a challenger must exceed, clamped to [1, 10]
func (t *Targeter) SetHysteresisThreshold(threshold float64) {
	applied := threshold
	if math.IsNaN(applied) {
		applied = parameter.HysteresisThresholdDefault
	}
	applied = vmath.Clamp(applied, parameter.HysteresisThresholdMin, parameter.HysteresisThresholdMax)
	if applied != threshold {
		t.logger.Warn("hysteresis threshold clamped", "requested", threshold, "applied", applied)
	}
	t.threshold = applied
}

// SetLossTimeout sets the grace period between target loss and LossExpired
// Non-positive input restores the default
func (t *Targeter) SetLossTimeout(timeout time.Duration) {
	applied := timeout
	if applied <= 0 {
		applied = parameter.TargetLossTimeoutDefault
	}
	applied = min(applied, parameter.TargetLossTimeoutMax)
	if applied != timeout {
		t.logger.Warn("target loss timeout clamped", "requested", timeout, "applied", applied)
	}
	t.lossTimeout = applied
}

func (t *Targeter) HysteresisThreshold() float64 { return t.threshold }
func (t *Targeter) LossTimeout() time.Duration   { return t.lossTimeout }
func (t *Targeter) Enabled() bool                { return t.enabled }
func (t *Targeter) Team() int                    { return t.team }

// Enable starts automatic targeting
func (t *Targeter) Enable() {
	t.enabled = true
}

// Disable stops targeting and drops any target
func (t *Targeter) Disable() {
	t.enabled = false
	t.ClearTarget()
}

// Priority scores e from the detector origin
func (t *Targeter) Priority(e core.Entity) float64 {
	return t.priority(t.detector.Origin(), e)
}

// SelectBestTarget returns the highest priority live hostile in the detected list
// Ties keep the earlier registered candidate
func (t *Targeter) SelectBestTarget() (core.Entity, float64) {
	var best core.Entity
	bestPriority := math.Inf(-1)
	for _, e := range t.detector.GetDetected() {
		if !core.IsHostile(e, t.team) {
			continue
		}
		if p := t.Priority(e); p > bestPriority {
			best = e
			bestPriority = p
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, bestPriority
}

// IsValid reports whether e may be held as a target in the current mode
func (t *Targeter) IsValid(e core.Entity) bool {
	if !core.IsHostile(e, t.team) {
		return false
	}
	return t.state.Manual || t.detector.Contains(e.ID())
}

// Tick validates the held target, runs the loss countdown and, in automatic mode,
// re-selects with hysteresis
func (t *Targeter) Tick(dt time.Duration) {
	if !t.enabled {
		return
	}

	if t.state.Losing && t.state.Current == nil && t.state.LossTimer > 0 {
		t.state.LossTimer = max(t.state.LossTimer-dt, 0)
	}

	if t.state.Current != nil && !t.IsValid(t.state.Current) {
		previous := t.state.Current
		manual := t.state.Manual
		t.state.Current = nil
		t.state.Manual = false
		t.state.Losing = true
		t.state.LossTimer = t.lossTimeout
		t.logger.Debug("target invalidated", "target", previous.ID(), "manual", manual)
		t.publish(previous, nil, 0, manual)
	}

	if t.state.Manual {
		return
	}

	best, bestPriority := t.SelectBestTarget()
	if best == nil {
		return
	}

	current := t.state.Current
	if current == nil {
		t.acquire(nil, best, bestPriority)
		return
	}
	if best.ID() == current.ID() {
		t.statPriority.Set(bestPriority)
		return
	}

	currentPriority := t.Priority(current)
	if currentPriority*t.threshold < bestPriority {
		t.logger.Debug("target switch",
			"from", current.ID(), "from_priority", currentPriority,
			"to", best.ID(), "to_priority", bestPriority)
		t.statSwitches.Add(1)
		t.acquire(current, best, bestPriority)
	}
}

func (t *Targeter) acquire(previous, next core.Entity, priority float64) {
	t.state.Current = next
	t.state.Losing = false
	t.state.LossTimer = 0
	t.statPriority.Set(priority)
	t.publish(previous, next, priority, t.state.Manual)
}

// SetManualTarget pins e as the target until ClearManualTarget
// Rejected when targeting is disabled or e is not a live hostile
func (t *Targeter) SetManualTarget(e core.Entity) bool {
	if !t.enabled {
		t.logger.Warn("manual target ignored, targeting disabled")
		return false
	}
	if !core.IsHostile(e, t.team) {
		t.logger.Warn("manual target ignored, not a live hostile")
		return false
	}
	previous := t.state.Current
	t.state.Manual = true
	if previous != nil && previous.ID() == e.ID() {
		return true
	}
	t.acquire(previous, e, t.Priority(e))
	return true
}

// ClearManualTarget returns to automatic mode and re-selects immediately
// The held target is replaced by the best candidate without hysteresis
func (t *Targeter) ClearManualTarget() bool {
	if !t.state.Manual {
		return false
	}
	t.state.Manual = false

	previous := t.state.Current
	best, bestPriority := t.SelectBestTarget()
	switch {
	case best == nil && previous == nil:
	case best == nil:
		t.state.Current = nil
		t.state.Losing = true
		t.state.LossTimer = t.lossTimeout
		t.publish(previous, nil, 0, false)
	case previous == nil || previous.ID() != best.ID():
		t.acquire(previous, best, bestPriority)
	}
	return true
}

// ClearTarget drops the target and resets the loss countdown
func (t *Targeter) ClearTarget() {
	previous := t.state.Current
	manual := t.state.Manual
	t.state = component.TargetState{}
	t.statPriority.Set(0)
	if previous != nil {
		t.publish(previous, nil, 0, manual)
	}
}

// CurrentTarget returns the held target or nil
func (t *Targeter) CurrentTarget() core.Entity {
	return t.state.Current
}

// HasValidTarget reports whether a target is held and still valid
func (t *Targeter) HasValidTarget() bool {
	return t.state.Current != nil && t.IsValid(t.state.Current)
}

// IsManual reports whether a manual override is active
func (t *Targeter) IsManual() bool {
	return t.state.Manual
}

// LossExpired reports whether a lost target has stayed lost for the full timeout
func (t *Targeter) LossExpired() bool {
	return t.state.Losing && t.state.Current == nil && t.state.LossTimer <= 0
}

// Losing reports whether a target was lost and nothing replaced it yet
func (t *Targeter) Losing() bool {
	return t.state.Losing
}

// LossTimer returns the remaining loss grace period
func (t *Targeter) LossTimer() time.Duration {
	return t.state.LossTimer
}

func (t *Targeter) publish(previous, current core.Entity, priority float64, manual bool) {
	t.bus.Publish(event.Event{
		Type: event.EventTargetChanged,
		Payload: &event.TargetPayload{
			Previous: previous,
			Current:  current,
			Priority: priority,
			Manual:   manual,
		},
	})
}
