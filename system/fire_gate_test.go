package system

import (
	"math"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/sentry/core/mocks"
	"github.com/lixenwraith/sentry/vmath"
)

func expectPush(l *mocks.MockLauncher, rate, damage, speed float64, lifetime time.Duration) {
	l.EXPECT().SetFireRate(rate)
	l.EXPECT().SetBaseDamage(damage)
	l.EXPECT().SetProjectileSpeed(speed)
	l.EXPECT().SetLifetime(lifetime)
}

func TestMisalignedFireRejectedRegardlessOfReadiness(t *testing.T) {
	for _, ready := range []bool{true, false} {
		ctrl := gomock.NewController(t)
		launcher := mocks.NewMockLauncher(ctrl)
		launcher.EXPECT().CanFire().Return(ready).AnyTimes()
		// No Fire and no parameter push may happen

		g := NewFireGate(launcher, fixedHeading{Z: 1}, nil, discard)
		g.SetAimingTolerance(5)

		if g.ExecuteFire(atYaw(30, 1)) {
			t.Errorf("ready=%v: expected misaligned fire rejected", ready)
		}
		if g.CanFireInDirection(atYaw(30, 1)) {
			t.Errorf("ready=%v: expected CanFireInDirection false", ready)
		}
	}
}

func TestAlignedFirePushesThenFires(t *testing.T) {
	ctrl := gomock.NewController(t)
	launcher := mocks.NewMockLauncher(ctrl)
	g := NewFireGate(launcher, fixedHeading{Z: 1}, nil, discard)

	dir := atYaw(3, 1)
	launcher.EXPECT().CanFire().Return(true)
	gomock.InOrder(
		launcher.EXPECT().SetFireRate(2.0),
		launcher.EXPECT().Fire(dir).Return(true),
	)
	launcher.EXPECT().SetBaseDamage(10.0)
	launcher.EXPECT().SetProjectileSpeed(40.0)
	launcher.EXPECT().SetLifetime(2 * time.Second)

	if !g.ExecuteFire(dir) {
		t.Error("Expected aligned ready fire to succeed")
	}
}

func TestNotReadyRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	launcher := mocks.NewMockLauncher(ctrl)
	launcher.EXPECT().CanFire().Return(false)

	g := NewFireGate(launcher, fixedHeading{Z: 1}, nil, discard)
	if g.ExecuteFire(vmath.Vec3F{Z: 1}) {
		t.Error("Expected fire rejected while the launcher is not ready")
	}
}

func TestLauncherFailureReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	launcher := mocks.NewMockLauncher(ctrl)
	g := NewFireGate(launcher, fixedHeading{Z: 1}, nil, discard)
	expectPush(launcher, 2, 10, 40, 2*time.Second)
	launcher.EXPECT().CanFire().Return(true)
	launcher.EXPECT().Fire(gomock.Any()).Return(false)

	if g.ExecuteFire(vmath.Vec3F{Z: 1}) {
		t.Error("Expected launcher failure to propagate")
	}
}

func TestDirtyBatchPushedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	launcher := mocks.NewMockLauncher(ctrl)
	g := NewFireGate(launcher, fixedHeading{Z: 1}, nil, discard)

	expectPush(launcher, 2, 10, 40, 2*time.Second)
	if !g.Sync() {
		t.Fatal("Expected initial defaults pushed")
	}
	if g.Sync() {
		t.Error("Expected clean cache to skip the push")
	}

	g.SetFireRate(5)
	g.SetFireRate(6)
	g.SetBaseDamage(25)
	expectPush(launcher, 6, 25, 40, 2*time.Second)
	if !g.Sync() {
		t.Fatal("Expected dirty cache pushed")
	}
	if g.Sync() || g.Dirty() {
		t.Error("Expected a single push per batch")
	}

	// Re-setting the same value does not dirty the cache
	g.SetFireRate(6)
	if g.Dirty() {
		t.Error("Expected unchanged value to leave the cache clean")
	}
}

func TestParameterClamping(t *testing.T) {
	g := NewFireGate(nil, fixedHeading{Z: 1}, nil, discard)

	g.SetFireRate(100)
	if g.FireRate() != 20 {
		t.Errorf("Expected fire rate clamped to 20, got %v", g.FireRate())
	}
	g.SetBaseDamage(math.NaN())
	if g.BaseDamage() != 10 {
		t.Errorf("Expected NaN damage to fall back to 10, got %v", g.BaseDamage())
	}
	g.SetLifetime(time.Millisecond)
	if g.Lifetime() != 100*time.Millisecond {
		t.Errorf("Expected lifetime clamped to 100ms, got %v", g.Lifetime())
	}
	g.SetAimingTolerance(0)
	if g.AimingTolerance() != 0.1 {
		t.Errorf("Expected tolerance clamped to 0.1, got %v", g.AimingTolerance())
	}
}

func TestRangeChangeReclamps(t *testing.T) {
	g := NewFireGate(nil, fixedHeading{Z: 1}, nil, discard)
	g.Sync()

	g.SetFireRateRange(10, 1, 50)
	r := g.State().FireRateRange
	if r.Min != 1 || r.Max != 10 || r.Default != 10 {
		t.Errorf("Expected normalized range [1, 10] default 10, got %+v", r)
	}
	if g.FireRate() != 2 {
		t.Errorf("Expected fire rate 2 kept, got %v", g.FireRate())
	}

	g.SetFireRateRange(5, 10, 7)
	if g.FireRate() != 5 || !g.Dirty() {
		t.Errorf("Expected fire rate re-clamped to 5 and dirty, got %v", g.FireRate())
	}
}

func TestAlignmentMeasuresFullAngle(t *testing.T) {
	g := NewFireGate(nil, fixedHeading{Z: 1}, nil, discard)
	g.SetAimingTolerance(5)

	tests := []struct {
		name string
		dir  vmath.Vec3F
		want bool
	}{
		{"straight ahead", vmath.Vec3F{Z: 1}, true},
		{"slightly raised", vmath.Vec3F{Y: math.Tan(vmath.DegToRad(4)), Z: 1}, true},
		{"steep elevation ahead", vmath.Vec3F{Y: 10, Z: 1}, false},
		{"straight below", vmath.Vec3F{Y: -1}, false},
		{"zero direction", vmath.Vec3F{}, false},
	}
	for _, tt := range tests {
		if got := g.Aligned(tt.dir); got != tt.want {
			t.Errorf("%s: expected aligned=%v, got %v", tt.name, tt.want, got)
		}
	}

	g.SetAccuracyGating(false)
	if !g.Aligned(vmath.Vec3F{Z: -1}) {
		t.Error("Expected any direction aligned with gating disabled")
	}
}

func TestElevatedFireRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	launcher := mocks.NewMockLauncher(ctrl)
	launcher.EXPECT().CanFire().Return(true).AnyTimes()
	// No Fire may happen

	g := NewFireGate(launcher, fixedHeading{Z: 1}, nil, discard)
	g.SetAimingTolerance(5)
	if g.ExecuteFire(vmath.Vec3F{Y: 10, Z: 1}) {
		t.Error("Expected fire 84 degrees above forward to be rejected")
	}
}

func TestNoLauncher(t *testing.T) {
	g := NewFireGate(nil, fixedHeading{Z: 1}, nil, discard)
	if g.HasLauncher() || g.Ready() || g.Sync() || g.ExecuteFire(vmath.Vec3F{Z: 1}) {
		t.Error("Expected a gate without launcher to refuse everything")
	}
}
