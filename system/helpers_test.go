package system

import (
	"log/slog"
	"math"

	"github.com/lixenwraith/sentry/core"
	"github.com/lixenwraith/sentry/event"
	"github.com/lixenwraith/sentry/vmath"
)

var discard = slog.New(slog.DiscardHandler)

// stubEntity is a mutable entity for scenario tests
type stubEntity struct {
	id    core.EntityID
	team  int
	pos   vmath.Vec3F
	alive bool
}

func newStub(team int, pos vmath.Vec3F) *stubEntity {
	return &stubEntity{id: core.NewEntityID(), team: team, pos: pos, alive: true}
}

func (e *stubEntity) ID() core.EntityID     { return e.id }
func (e *stubEntity) IsAlive() bool         { return e.alive }
func (e *stubEntity) TeamID() int           { return e.team }
func (e *stubEntity) Position() vmath.Vec3F { return e.pos }

// fixedHeading points the detector along a constant direction
type fixedHeading vmath.Vec3F

func (h fixedHeading) GetForwardDirection() vmath.Vec3F { return vmath.Vec3F(h) }

// atYaw places a point at horizontal distance dist and world yaw degrees from the origin
func atYaw(yaw, dist float64) vmath.Vec3F {
	return vmath.V3FScale(vmath.YawToDirection(yaw), dist)
}

// recorder collects bus events of the given types
type recorder struct {
	events []event.Event
}

func record(bus *event.Bus, types ...event.EventType) *recorder {
	r := &recorder{}
	for _, t := range types {
		bus.Subscribe(t, func(ev event.Event) { r.events = append(r.events, ev) })
	}
	return r
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
