package system

import (
	"log/slog"
	"math"
	"time"

	"github.com/lixenwraith/sentry/component"
	"github.com/lixenwraith/sentry/core"
	"github.com/lixenwraith/sentry/event"
	"github.com/lixenwraith/sentry/parameter"
	"github.com/lixenwraith/sentry/status"
	"github.com/lixenwraith/sentry/vmath"
)

// lowestAngle is the smallest representable angle inside (-180, 180]
var lowestAngle = math.Nextafter(-180, 0)

// RotationActuator drives a pivot at bounded angular speed
// Single mode rotates to one angle along the shortest path and reports completion;
// continuous mode sweeps back and forth between two bounds until stopped
type RotationActuator struct {
	pivot  core.Pivot
	bus    *event.Bus
	logger *slog.Logger

	origin   vmath.Vec3F
	mountYaw float64
	speed    float64

	state component.RotationState

	warnedNoPivot bool

	// Telemetry
	statAngle *status.Float
	statMode  *status.Text
}

// NewRotationActuator creates an idle actuator at local angle 0
// origin and mountYaw place the pivot in the world; speed is degrees per second
func NewRotationActuator(
	pivot core.Pivot,
	bus *event.Bus,
	origin vmath.Vec3F,
	mountYaw float64,
	speed float64,
	reg *status.Registry,
	logger *slog.Logger,
) *RotationActuator {
	if bus == nil {
		bus = event.NewBus()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	a := &RotationActuator{
		pivot:    pivot,
		bus:      bus,
		logger:   logger.With("component", "rotation"),
		origin:   origin,
		mountYaw: vmath.NormalizeDeg(mountYaw),
		speed:    parameter.RotationSpeedDefault,

		statAngle: reg.Floats.Get("rotation.angle"),
		statMode:  reg.Strings.Get("rotation.mode"),
	}
	a.SetRotationSpeed(speed)
	a.statMode.Set(a.state.Mode.String())
	return a
}

func (a *RotationActuator) bound() bool {
	if a.pivot != nil {
		return true
	}
	if !a.warnedNoPivot {
		a.warnedNoPivot = true
		a.logger.Warn("no pivot bound, rotation commands ignored")
	}
	return false
}

// HasPivot reports whether an orientation target is bound
func (a *RotationActuator) HasPivot() bool {
	return a.pivot != nil
}

// SetRotationSpeed sets the maximum angular speed in degrees per second
func (a *RotationActuator) SetRotationSpeed(degreesPerSecond float64) {
	applied := degreesPerSecond
	if math.IsNaN(applied) {
		applied = parameter.RotationSpeedDefault
	}
	applied = vmath.Clamp(applied, parameter.RotationSpeedMin, parameter.RotationSpeedMax)
	if applied != degreesPerSecond {
		a.logger.Warn("rotation speed clamped", "requested", degreesPerSecond, "applied", applied)
	}
	a.speed = applied
}

// RotationSpeed returns the angular speed in degrees per second
func (a *RotationActuator) RotationSpeed() float64 {
	return a.speed
}

// RotateTo starts a single rotation to the local angle, replacing any sweep
func (a *RotationActuator) RotateTo(angle float64) {
	if !a.bound() {
		return
	}
	a.state.TargetAngle = vmath.NormalizeDeg(angle)
	a.setMode(component.RotationSingle)
}

// StartContinuousRotation sweeps between lo and hi, heading for hi first
// Bounds are taken linearly (no wrap) and kept inside (-180, 180]
func (a *RotationActuator) StartContinuousRotation(lo, hi float64) {
	if !a.bound() {
		return
	}
	lo = vmath.Clamp(lo, lowestAngle, 180)
	hi = vmath.Clamp(hi, lowestAngle, 180)
	if lo > hi {
		lo, hi = hi, lo
	}
	a.state.ContinuousMin = lo
	a.state.ContinuousMax = hi
	a.state.Direction = component.ScanForward
	a.state.TargetAngle = hi
	a.setMode(component.RotationContinuous)
}

// SetContinuousBounds moves a running sweep onto new bounds
// The sweep direction is kept while the head is inside them; otherwise the sweep restarts
func (a *RotationActuator) SetContinuousBounds(lo, hi float64) {
	if !a.bound() {
		return
	}
	lo = vmath.Clamp(lo, lowestAngle, 180)
	hi = vmath.Clamp(hi, lowestAngle, 180)
	if lo > hi {
		lo, hi = hi, lo
	}
	cur := a.state.CurrentAngle
	if !a.state.IsContinuous() || cur < lo || cur > hi {
		a.StartContinuousRotation(lo, hi)
		return
	}
	a.state.ContinuousMin = lo
	a.state.ContinuousMax = hi
	if a.state.Direction == component.ScanForward {
		a.state.TargetAngle = hi
	} else {
		a.state.TargetAngle = lo
	}
}

// StopRotation halts and freezes the target at the current angle
func (a *RotationActuator) StopRotation() {
	if !a.bound() {
		return
	}
	a.state.TargetAngle = a.state.CurrentAngle
	a.setMode(component.RotationIdle)
}

func (a *RotationActuator) setMode(mode component.RotationMode) {
	a.state.Mode = mode
	a.statMode.Set(mode.String())
}

// Update advances rotation by at most speed*dt degrees
func (a *RotationActuator) Update(dt time.Duration) {
	if a.pivot == nil || dt <= 0 {
		return
	}
	step := a.speed * dt.Seconds()

	switch a.state.Mode {
	case component.RotationSingle:
		delta := vmath.DeltaDeg(a.state.CurrentAngle, a.state.TargetAngle)
		if math.Abs(delta) <= step {
			a.setAngle(a.state.TargetAngle)
			a.setMode(component.RotationIdle)
			a.bus.Publish(event.Event{
				Type:    event.EventRotationComplete,
				Payload: &event.RotationPayload{Angle: a.state.CurrentAngle},
			})
			return
		}
		a.setAngle(vmath.NormalizeDeg(a.state.CurrentAngle + math.Copysign(step, delta)))

	case component.RotationContinuous:
		goal := a.state.ContinuousMax
		if a.state.Direction == component.ScanBackward {
			goal = a.state.ContinuousMin
		}
		// Linear motion toward the bound, never past it
		move := vmath.Clamp(goal-a.state.CurrentAngle, -step, step)
		a.setAngle(a.state.CurrentAngle + move)

		if math.Abs(goal-a.state.CurrentAngle) <= parameter.ScanArrivalEpsilon {
			a.state.Direction = -a.state.Direction
			if a.state.Direction == component.ScanForward {
				a.state.TargetAngle = a.state.ContinuousMax
			} else {
				a.state.TargetAngle = a.state.ContinuousMin
			}
		}
	}
}

func (a *RotationActuator) setAngle(angle float64) {
	a.state.CurrentAngle = vmath.NormalizeDeg(angle)
	a.pivot.SetYaw(a.state.CurrentAngle)
	a.statAngle.Set(a.state.CurrentAngle)
}

// GetForwardDirection returns the world-space horizontal forward of the pivot
func (a *RotationActuator) GetForwardDirection() vmath.Vec3F {
	return vmath.YawToDirection(a.mountYaw + a.state.CurrentAngle)
}

// GetAngleToTarget returns the unsigned remaining angle to the target angle
func (a *RotationActuator) GetAngleToTarget() float64 {
	return math.Abs(vmath.DeltaDeg(a.state.CurrentAngle, a.state.TargetAngle))
}

// YawTo returns the local angle that faces point; false when point is straight above or below
func (a *RotationActuator) YawTo(point vmath.Vec3F) (float64, bool) {
	dir, ok := vmath.FlatDirection(a.origin, point)
	if !ok {
		return a.state.CurrentAngle, false
	}
	return vmath.NormalizeDeg(vmath.DirectionToYaw(dir) - a.mountYaw), true
}

// AimErrorTo returns the unsigned angle between the current heading and point
func (a *RotationActuator) AimErrorTo(point vmath.Vec3F) float64 {
	yaw, ok := a.YawTo(point)
	if !ok {
		return 0
	}
	return math.Abs(vmath.DeltaDeg(a.state.CurrentAngle, yaw))
}

func (a *RotationActuator) CurrentAngle() float64                { return a.state.CurrentAngle }
func (a *RotationActuator) TargetAngle() float64                 { return a.state.TargetAngle }
func (a *RotationActuator) Mode() component.RotationMode         { return a.state.Mode }
func (a *RotationActuator) Direction() component.ScanDirection   { return a.state.Direction }
func (a *RotationActuator) IsContinuous() bool                   { return a.state.IsContinuous() }
func (a *RotationActuator) IsRotating() bool                     { return a.state.Mode != component.RotationIdle }
func (a *RotationActuator) MountYaw() float64                    { return a.mountYaw }
func (a *RotationActuator) Origin() vmath.Vec3F                  { return a.origin }
func (a *RotationActuator) ContinuousBounds() (float64, float64) { return a.state.ContinuousMin, a.state.ContinuousMax }
