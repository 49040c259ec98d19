package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/sentry/core"
	"github.com/lixenwraith/sentry/event"
	"github.com/lixenwraith/sentry/vmath"
)

type targetRig struct {
	bus      *event.Bus
	detector *SectorDetector
	targeter *Targeter
	rec      *recorder
	now      time.Time
}

func newTargetRig() *targetRig {
	bus := event.NewBus()
	_, d := newDetector(bus)
	r := &targetRig{
		bus:      bus,
		detector: d,
		targeter: NewTargeter(d, bus, 0, nil, discard),
		rec:      record(bus, event.EventTargetChanged),
		now:      t0,
	}
	r.targeter.Enable()
	return r
}

// tick runs a forced filter pass then the targeter
func (r *targetRig) tick(dt time.Duration) {
	r.now = r.now.Add(dt)
	r.detector.ForceRefresh()
	r.detector.Tick(r.now)
	r.targeter.Tick(dt)
}

func fixedPriority(values map[core.EntityID]float64) PriorityFunc {
	return func(_ vmath.Vec3F, e core.Entity) float64 { return values[e.ID()] }
}

func TestDistancePriority(t *testing.T) {
	e := newStub(1, vmath.Vec3F{X: 3, Y: 50, Z: 4})
	if got := DistancePriority(vmath.Vec3F{}, e); !approx(got, 200) {
		t.Errorf("Expected 1000/5 = 200, got %v", got)
	}
	e.pos = vmath.Vec3F{Y: 2}
	if got := DistancePriority(vmath.Vec3F{}, e); got != 1e9 {
		t.Errorf("Expected sentinel priority at zero distance, got %v", got)
	}
}

func TestHysteresis(t *testing.T) {
	r := newTargetRig()
	current := newStub(1, atYaw(-5, 10))
	challenger := newStub(1, atYaw(5, 10))
	values := map[core.EntityID]float64{current.ID(): 100}
	r.targeter.SetPriorityFunc(fixedPriority(values))

	r.detector.RegisterCandidate(current)
	r.tick(16 * time.Millisecond)
	if r.targeter.CurrentTarget() != current {
		t.Fatal("Expected first candidate to be acquired")
	}

	// 1.1x does not beat a 1.2 threshold
	values[challenger.ID()] = 110
	r.detector.RegisterCandidate(challenger)
	r.tick(16 * time.Millisecond)
	if r.targeter.CurrentTarget() != current {
		t.Error("Expected current target kept against a 1.1x challenger")
	}

	// 1.3x does
	values[challenger.ID()] = 130
	r.tick(16 * time.Millisecond)
	if r.targeter.CurrentTarget() != challenger {
		t.Error("Expected switch to a 1.3x challenger")
	}

	if n := r.rec.count(event.EventTargetChanged); n != 2 {
		t.Errorf("Expected 2 target change events, got %d", n)
	}
	last := r.rec.events[1].Payload.(*event.TargetPayload)
	if last.Previous != current || last.Current != challenger || last.Priority != 130 {
		t.Errorf("Expected switch payload current->challenger at 130, got %+v", last)
	}
}

func TestFriendliesIgnored(t *testing.T) {
	r := newTargetRig()
	r.detector.RegisterCandidate(newStub(0, atYaw(0, 5)))
	r.tick(16 * time.Millisecond)
	if r.targeter.CurrentTarget() != nil {
		t.Error("Expected friendly entity never targeted")
	}
}

func TestDisabledTargeterIdle(t *testing.T) {
	r := newTargetRig()
	r.targeter.Disable()
	e := newStub(1, atYaw(0, 5))
	r.detector.RegisterCandidate(e)
	r.tick(16 * time.Millisecond)

	if r.targeter.CurrentTarget() != nil {
		t.Error("Expected no target while disabled")
	}
	if r.targeter.SetManualTarget(e) {
		t.Error("Expected manual target rejected while disabled")
	}
}

func TestManualOverride(t *testing.T) {
	r := newTargetRig()
	auto := newStub(1, atYaw(0, 8))
	behind := newStub(1, atYaw(180, 6))
	r.detector.RegisterCandidate(auto)
	r.detector.RegisterCandidate(behind)
	r.tick(16 * time.Millisecond)

	if !r.targeter.SetManualTarget(behind) {
		t.Fatal("Expected manual target accepted")
	}
	r.tick(16 * time.Millisecond)
	if r.targeter.CurrentTarget() != behind || !r.targeter.IsManual() {
		t.Error("Expected manual target held outside the sector")
	}

	if !r.targeter.ClearManualTarget() {
		t.Fatal("Expected clear to report an active override")
	}
	if r.targeter.CurrentTarget() != auto || r.targeter.IsManual() {
		t.Error("Expected immediate re-selection of the detected candidate")
	}
	if r.targeter.ClearManualTarget() {
		t.Error("Expected second clear to be a no-op")
	}

	friendly := newStub(0, atYaw(0, 3))
	if r.targeter.SetManualTarget(friendly) {
		t.Error("Expected friendly manual target rejected")
	}
}

func TestManualTargetDeathClearsOverride(t *testing.T) {
	r := newTargetRig()
	e := newStub(1, atYaw(180, 6))
	r.targeter.SetManualTarget(e)

	e.alive = false
	r.tick(16 * time.Millisecond)
	if r.targeter.CurrentTarget() != nil || r.targeter.IsManual() {
		t.Error("Expected dead manual target dropped and override cleared")
	}
	if !r.targeter.Losing() {
		t.Error("Expected loss countdown started")
	}
}

func TestTargetLossTimeout(t *testing.T) {
	r := newTargetRig()
	e := newStub(1, atYaw(0, 8))
	r.detector.RegisterCandidate(e)
	r.tick(16 * time.Millisecond)

	e.alive = false
	r.tick(16 * time.Millisecond)
	if r.targeter.HasValidTarget() {
		t.Fatal("Expected target invalidated")
	}
	if r.targeter.LossTimer() != 500*time.Millisecond || r.targeter.LossExpired() {
		t.Errorf("Expected full 500ms grace, got %v", r.targeter.LossTimer())
	}

	r.tick(200 * time.Millisecond)
	if r.targeter.LossExpired() {
		t.Error("Expected loss not expired after 200ms")
	}
	r.tick(300 * time.Millisecond)
	if !r.targeter.LossExpired() {
		t.Errorf("Expected loss expired after 500ms, timer %v", r.targeter.LossTimer())
	}

	lost := r.rec.events[len(r.rec.events)-1].Payload.(*event.TargetPayload)
	if lost.Previous != e || lost.Current != nil {
		t.Errorf("Expected loss payload e->nil, got %+v", lost)
	}
}

func TestNewCandidateCancelsLoss(t *testing.T) {
	r := newTargetRig()
	a := newStub(1, atYaw(0, 8))
	r.detector.RegisterCandidate(a)
	r.tick(16 * time.Millisecond)
	a.alive = false
	r.tick(16 * time.Millisecond)

	b := newStub(1, atYaw(10, 9))
	r.detector.RegisterCandidate(b)
	r.tick(16 * time.Millisecond)
	if r.targeter.CurrentTarget() != b || r.targeter.Losing() {
		t.Error("Expected new candidate acquired and loss cleared")
	}
}

func TestThresholdClamp(t *testing.T) {
	r := newTargetRig()
	r.targeter.SetHysteresisThreshold(0.5)
	if r.targeter.HysteresisThreshold() != 1 {
		t.Errorf("Expected threshold clamped to 1, got %v", r.targeter.HysteresisThreshold())
	}
	for _, d := range []time.Duration{0, -time.Second} {
		r.targeter.SetLossTimeout(d)
		if r.targeter.LossTimeout() != 500*time.Millisecond {
			t.Errorf("SetLossTimeout(%v): expected default 500ms, got %v", d, r.targeter.LossTimeout())
		}
	}
	r.targeter.SetLossTimeout(time.Minute)
	if r.targeter.LossTimeout() != 10*time.Second {
		t.Errorf("Expected loss timeout capped at 10s, got %v", r.targeter.LossTimeout())
	}
}
