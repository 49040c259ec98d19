package system

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/sentry/core/mocks"
	"github.com/lixenwraith/sentry/event"
	"github.com/lixenwraith/sentry/vmath"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newDetector(bus *event.Bus) (*SectorConfig, *SectorDetector) {
	if bus == nil {
		bus = event.NewBus()
	}
	config := NewSectorConfig(bus, discard, 45, 15, -90, 90)
	d := NewSectorDetector(config, bus, fixedHeading{Z: 1}, vmath.Vec3F{}, 100*time.Millisecond, nil, discard)
	return config, d
}

func TestSectorMembership(t *testing.T) {
	_, d := newDetector(nil)

	tests := []struct {
		name string
		pos  vmath.Vec3F
		want bool
	}{
		{"ahead inside range", atYaw(0, 10), true},
		{"30 degrees off", atYaw(30, 10), false},
		{"just inside half angle", atYaw(22, 10), true},
		{"mirror side", atYaw(-22, 10), true},
		{"beyond radius", atYaw(0, 16), false},
		{"on radius", atYaw(0, 15), true},
		{"behind", atYaw(180, 5), false},
		{"high above ahead", vmath.Vec3F{Y: 100, Z: 10}, true},
		{"at the origin", vmath.Vec3F{Y: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.IsDetected(tt.pos); got != tt.want {
				t.Errorf("Expected detected=%v for %+v, got %v", tt.want, tt.pos, got)
			}
		})
	}
}

func TestFilterPassThrottle(t *testing.T) {
	_, d := newDetector(nil)
	e := newStub(1, atYaw(0, 10))
	d.RegisterCandidate(e)

	if !d.Tick(t0) {
		t.Fatal("Expected first tick to run a filter pass")
	}
	if !d.Contains(e.ID()) {
		t.Fatal("Expected entity ahead to be detected")
	}

	// Moves out between passes, stays detected until the next pass
	e.pos = atYaw(90, 10)
	if d.Tick(t0.Add(50 * time.Millisecond)) {
		t.Error("Expected tick before the interval to skip filtering")
	}
	if !d.Contains(e.ID()) {
		t.Error("Expected stale detection until the next pass")
	}
	if !d.Tick(t0.Add(100 * time.Millisecond)) {
		t.Error("Expected tick at the interval to run a pass")
	}
	if d.Contains(e.ID()) {
		t.Error("Expected entity outside the sector to be filtered out")
	}
}

func TestRegistrationOrderAndPurge(t *testing.T) {
	_, d := newDetector(nil)
	a := newStub(1, atYaw(5, 12))
	b := newStub(1, atYaw(-5, 4))
	c := newStub(1, atYaw(0, 8))

	d.RegisterCandidate(a)
	d.RegisterCandidate(b)
	d.RegisterCandidate(a) // duplicate ignored
	d.RegisterCandidate(c)
	d.Tick(t0)

	got := d.GetDetected()
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Fatalf("Expected registration order a,b,c, got %d entries", len(got))
	}
	if d.GetClosest() != b {
		t.Error("Expected b to be closest")
	}

	b.alive = false
	d.ForceRefresh()
	d.Tick(t0.Add(time.Millisecond))
	if d.Registered() != 2 || d.Contains(b.ID()) {
		t.Errorf("Expected dead entity purged, registered=%d", d.Registered())
	}

	d.UnregisterCandidate(a)
	if d.Contains(a.ID()) || d.Registered() != 1 {
		t.Error("Expected unregister to drop the entity from both sets immediately")
	}
	d.UnregisterCandidate(a) // unknown is ignored
}

func TestDeadEntityNotRegistered(t *testing.T) {
	_, d := newDetector(nil)
	e := newStub(1, atYaw(0, 5))
	e.alive = false
	d.RegisterCandidate(e)
	d.RegisterCandidate(nil)
	if d.Registered() != 0 {
		t.Errorf("Expected no registrations, got %d", d.Registered())
	}
}

func TestSettingsChangeForcesRefresh(t *testing.T) {
	bus := event.NewBus()
	config, d := newDetector(bus)
	e := newStub(1, atYaw(30, 10))
	d.RegisterCandidate(e)

	d.Tick(t0)
	if d.Contains(e.ID()) {
		t.Fatal("Expected 30 degrees off to be outside a 45 degree sector")
	}

	if !config.SetSectorAngle(90) {
		t.Fatal("Expected sector angle 90 to be accepted")
	}
	if !d.Tick(t0.Add(time.Millisecond)) {
		t.Error("Expected settings change to force the next pass")
	}
	if !d.Contains(e.ID()) {
		t.Error("Expected entity inside the widened sector")
	}
}

func TestAttachResizeDetach(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockQueryProvider(ctrl)
	volume := mocks.NewMockVolume(ctrl)

	bus := event.NewBus()
	config, d := newDetector(bus)

	provider.EXPECT().OpenVolume(vmath.Vec3F{}, 15.0, d).Return(volume)
	if !d.Attach(provider) {
		t.Fatal("Expected attach to succeed")
	}

	volume.EXPECT().Resize(25.0)
	config.SetDetectionRadius(25)

	e := newStub(1, atYaw(0, 5))
	d.OnEnter(e)
	if d.Registered() != 1 {
		t.Errorf("Expected OnEnter to register, got %d", d.Registered())
	}
	d.OnExit(e)
	if d.Registered() != 0 {
		t.Errorf("Expected OnExit to unregister, got %d", d.Registered())
	}

	volume.EXPECT().Close()
	d.Detach()
}

func TestAttachFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockQueryProvider(ctrl)
	_, d := newDetector(nil)

	if d.Attach(nil) {
		t.Error("Expected attach to nil provider to fail")
	}
	provider.EXPECT().OpenVolume(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	if d.Attach(provider) {
		t.Error("Expected attach to fail when no volume is returned")
	}
}
