package system

import (
	"math"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/sentry/component"
	"github.com/lixenwraith/sentry/core/mocks"
	"github.com/lixenwraith/sentry/event"
	"github.com/lixenwraith/sentry/vmath"
)

func newActuator(t *testing.T, speed float64) (*RotationActuator, *event.Bus) {
	ctrl := gomock.NewController(t)
	pivot := mocks.NewMockPivot(ctrl)
	pivot.EXPECT().SetYaw(gomock.Any()).AnyTimes()
	bus := event.NewBus()
	return NewRotationActuator(pivot, bus, vmath.Vec3F{}, 0, speed, nil, discard), bus
}

func TestContinuousScanSymmetry(t *testing.T) {
	a, _ := newActuator(t, 180)
	a.StartContinuousRotation(-20, 20)

	const dt = 16 * time.Millisecond
	step := 180 * dt.Seconds()

	var reversals []float64
	lastDir := a.Direction()
	prev := a.CurrentAngle()
	lo, hi := 0.0, 0.0
	for i := 0; i < 400; i++ {
		a.Update(dt)
		angle := a.CurrentAngle()
		if angle > 20+1e-9 || angle < -20-1e-9 {
			t.Fatalf("Tick %d: angle %v left the sweep bounds", i, angle)
		}
		if math.Abs(angle-prev) > step+1e-9 {
			t.Fatalf("Tick %d: moved %v, more than one step", i, math.Abs(angle-prev))
		}
		if dir := a.Direction(); dir != lastDir {
			reversals = append(reversals, angle)
			lastDir = dir
		}
		lo, hi = min(lo, angle), max(hi, angle)
		prev = angle
	}

	if len(reversals) < 4 {
		t.Fatalf("Expected several reversals, got %v", reversals)
	}
	if !approx(reversals[0], 20) || !approx(reversals[1], -20) {
		t.Errorf("Expected first reversals at +20 then -20, got %v", reversals[:2])
	}
	if !approx(lo, -20) || !approx(hi, 20) {
		t.Errorf("Expected sweep to cover [-20, 20], got [%v, %v]", lo, hi)
	}
	if !a.IsContinuous() {
		t.Error("Expected actuator still sweeping")
	}
}

func TestContinuousBoundsNormalized(t *testing.T) {
	a, _ := newActuator(t, 120)
	a.StartContinuousRotation(300, -300)
	lo, hi := a.ContinuousBounds()
	if lo <= -180 || hi != 180 {
		t.Errorf("Expected bounds inside (-180, 180], got [%v, %v]", lo, hi)
	}
	if a.TargetAngle() != hi || a.Direction() != component.ScanForward {
		t.Error("Expected sweep to head for the upper bound first")
	}
}

func TestRotateToShortestPath(t *testing.T) {
	a, bus := newActuator(t, 100)
	rec := record(bus, event.EventRotationComplete)

	a.RotateTo(170)
	for i := 0; i < 20 && a.IsRotating(); i++ {
		a.Update(100 * time.Millisecond)
	}
	if a.CurrentAngle() != 170 {
		t.Fatalf("Expected 170, got %v", a.CurrentAngle())
	}

	a.RotateTo(-170)
	a.Update(100 * time.Millisecond)
	if a.CurrentAngle() != 180 {
		t.Errorf("Expected to cross 180 on the short path, got %v", a.CurrentAngle())
	}
	a.Update(100 * time.Millisecond)
	if a.CurrentAngle() != -170 || a.Mode() != component.RotationIdle {
		t.Errorf("Expected arrival at -170 and idle, got %v in %s", a.CurrentAngle(), a.Mode())
	}

	if n := rec.count(event.EventRotationComplete); n != 2 {
		t.Errorf("Expected 2 completion events, got %d", n)
	}
	p := rec.events[1].Payload.(*event.RotationPayload)
	if p.Angle != -170 {
		t.Errorf("Expected completion at -170, got %v", p.Angle)
	}
}

func TestRotateToReplacesSweep(t *testing.T) {
	a, _ := newActuator(t, 90)
	a.StartContinuousRotation(-45, 45)
	a.Update(100 * time.Millisecond)
	a.RotateTo(-30)
	if a.Mode() != component.RotationSingle || a.TargetAngle() != -30 {
		t.Errorf("Expected single rotation to -30, got %s to %v", a.Mode(), a.TargetAngle())
	}
}

func TestSetContinuousBounds(t *testing.T) {
	a, _ := newActuator(t, 90)
	a.StartContinuousRotation(-20, 20)
	for a.Direction() == component.ScanForward {
		a.Update(16 * time.Millisecond)
	}
	a.Update(100 * time.Millisecond)

	a.SetContinuousBounds(-40, 40)
	if a.Direction() != component.ScanBackward || a.TargetAngle() != -40 {
		t.Errorf("Expected direction kept toward -40, got %d toward %v", a.Direction(), a.TargetAngle())
	}

	// Head outside the new bounds restarts the sweep
	a.SetContinuousBounds(15, 30)
	if a.Direction() != component.ScanForward || a.TargetAngle() != 30 {
		t.Errorf("Expected a restart toward 30, got %d toward %v", a.Direction(), a.TargetAngle())
	}
	lo, hi := a.ContinuousBounds()
	if lo != 15 || hi != 30 {
		t.Errorf("Expected bounds [15, 30], got [%v, %v]", lo, hi)
	}

	// Not sweeping: starts one
	a.StopRotation()
	a.SetContinuousBounds(-10, 10)
	if !a.IsContinuous() {
		t.Error("Expected a sweep to start")
	}
}

func TestStopRotationFreezes(t *testing.T) {
	a, _ := newActuator(t, 90)
	a.RotateTo(90)
	a.Update(100 * time.Millisecond)
	a.StopRotation()
	angle := a.CurrentAngle()
	a.Update(time.Second)
	if a.CurrentAngle() != angle || a.TargetAngle() != angle || a.IsRotating() {
		t.Errorf("Expected frozen at %v, got %v", angle, a.CurrentAngle())
	}
}

func TestPivotReceivesAngles(t *testing.T) {
	ctrl := gomock.NewController(t)
	pivot := mocks.NewMockPivot(ctrl)
	a := NewRotationActuator(pivot, nil, vmath.Vec3F{}, 0, 100, nil, discard)

	gomock.InOrder(
		pivot.EXPECT().SetYaw(10.0),
		pivot.EXPECT().SetYaw(15.0),
	)
	a.RotateTo(15)
	a.Update(100 * time.Millisecond)
	a.Update(100 * time.Millisecond)
}

func TestNoPivotIgnoresCommands(t *testing.T) {
	a := NewRotationActuator(nil, nil, vmath.Vec3F{}, 0, 100, nil, discard)
	a.RotateTo(45)
	a.StartContinuousRotation(-10, 10)
	a.Update(time.Second)
	if a.IsRotating() || a.CurrentAngle() != 0 || a.HasPivot() {
		t.Error("Expected commands ignored without a pivot")
	}
}

func TestMountYawAndAim(t *testing.T) {
	ctrl := gomock.NewController(t)
	pivot := mocks.NewMockPivot(ctrl)
	a := NewRotationActuator(pivot, nil, vmath.Vec3F{}, 90, 100, nil, discard)

	forward := a.GetForwardDirection()
	if !approx(forward.X, 1) || !approx(forward.Z, 0) {
		t.Errorf("Expected mount yaw 90 to face +X, got %+v", forward)
	}

	yaw, ok := a.YawTo(vmath.Vec3F{Z: 10})
	if !ok || !approx(yaw, -90) {
		t.Errorf("Expected local yaw -90 toward +Z, got %v ok=%v", yaw, ok)
	}
	if got := a.AimErrorTo(vmath.Vec3F{X: 10}); !approx(got, 0) {
		t.Errorf("Expected no aim error toward +X, got %v", got)
	}
	if _, ok := a.YawTo(vmath.Vec3F{Y: 5}); ok {
		t.Error("Expected no yaw for a point straight above")
	}
}

func TestRotationSpeedClamp(t *testing.T) {
	a, _ := newActuator(t, 0)
	if a.RotationSpeed() != 1 {
		t.Errorf("Expected speed clamped to 1, got %v", a.RotationSpeed())
	}
	a.SetRotationSpeed(5000)
	if a.RotationSpeed() != 1440 {
		t.Errorf("Expected speed clamped to 1440, got %v", a.RotationSpeed())
	}
}
