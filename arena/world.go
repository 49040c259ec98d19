package arena

import (
	"bytes"
	"log/slog"
	"slices"
	"time"

	"github.com/lixenwraith/sentry/core"
	"github.com/lixenwraith/sentry/vmath"
)

// World owns the dummies and reports overlaps with open volumes
// Volumes are vertical cylinders, matching the detector which ignores height
// Membership is re-evaluated on Step and when a volume opens or resizes
type World struct {
	bound   float64
	logger  *slog.Logger
	dummies []*Dummy
	volumes []*volume
}

// NewWorld creates an empty arena of half-extent bound; bound <= 0 disables edge bouncing
func NewWorld(bound float64, logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.Default()
	}
	return &World{
		bound:  bound,
		logger: logger.With("component", "arena"),
	}
}

// Bound returns the arena half-extent
func (w *World) Bound() float64 { return w.bound }

// Spawn adds a dummy and reports it to overlapping volumes
func (w *World) Spawn(team int, position, velocity vmath.Vec3F, health float64) *Dummy {
	d := NewDummy(team, position, velocity, health)
	w.dummies = append(w.dummies, d)
	w.refresh()
	return d
}

// Dummies returns all live dummies in spawn order
func (w *World) Dummies() []*Dummy {
	return w.dummies
}

// Step walks every dummy, removes the dead and refreshes volume membership
func (w *World) Step(dt time.Duration) {
	seconds := dt.Seconds()
	for _, d := range w.dummies {
		d.step(seconds, w.bound)
	}
	w.refresh()
}

// Reap removes dead dummies and reports their exit; returns the number removed
func (w *World) Reap() int {
	before := len(w.dummies)
	w.dummies = slices.DeleteFunc(w.dummies, func(d *Dummy) bool { return !d.IsAlive() })
	removed := before - len(w.dummies)
	if removed > 0 {
		w.refresh()
	}
	return removed
}

// ClosestHostile returns the live dummy nearest to point that is not on team, or nil
func (w *World) ClosestHostile(point vmath.Vec3F, team int) *Dummy {
	var closest *Dummy
	var best float64
	for _, d := range w.dummies {
		if !core.IsHostile(d, team) {
			continue
		}
		if distSq := vmath.FlatDistSq(point, d.Position()); closest == nil || distSq < best {
			closest = d
			best = distSq
		}
	}
	return closest
}

// OpenVolume implements core.QueryProvider
// Entities already inside are reported before OpenVolume returns
func (w *World) OpenVolume(center vmath.Vec3F, radius float64, listener core.OverlapListener) core.Volume {
	if listener == nil {
		w.logger.Warn("volume opened without listener")
		return nil
	}
	v := &volume{
		world:    w,
		center:   center,
		radius:   radius,
		listener: listener,
		inside:   make(map[core.EntityID]*Dummy),
	}
	w.volumes = append(w.volumes, v)
	v.refresh(w.dummies)
	return v
}

// Volumes returns the number of open volumes
func (w *World) Volumes() int {
	return len(w.volumes)
}

func (w *World) refresh() {
	for _, v := range w.volumes {
		v.refresh(w.dummies)
	}
}

// volume is an unbounded vertical cylinder around a fixed center
type volume struct {
	world    *World
	center   vmath.Vec3F
	radius   float64
	listener core.OverlapListener
	inside   map[core.EntityID]*Dummy
	closed   bool
}

func (v *volume) Resize(radius float64) {
	if v.closed {
		return
	}
	v.radius = radius
	v.refresh(v.world.dummies)
}

func (v *volume) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.world.volumes = slices.DeleteFunc(v.world.volumes, func(o *volume) bool { return o == v })
	clear(v.inside)
}

// refresh reports exits before enters so a listener never sees a stale entity twice
func (v *volume) refresh(dummies []*Dummy) {
	radiusSq := v.radius * v.radius
	present := make(map[core.EntityID]struct{}, len(dummies))
	var entered []*Dummy
	for _, d := range dummies {
		if !d.IsAlive() {
			continue
		}
		if vmath.FlatDistSq(d.Position(), v.center) > radiusSq {
			continue
		}
		present[d.ID()] = struct{}{}
		if _, ok := v.inside[d.ID()]; !ok {
			entered = append(entered, d)
		}
	}

	var exited []*Dummy
	for id, d := range v.inside {
		if _, ok := present[id]; !ok {
			exited = append(exited, d)
		}
	}
	// Map order is random, keep notifications deterministic
	slices.SortFunc(exited, func(a, b *Dummy) int { return bytes.Compare(a.id[:], b.id[:]) })

	for _, d := range exited {
		delete(v.inside, d.ID())
		v.listener.OnExit(d)
	}
	for _, d := range entered {
		v.inside[d.ID()] = d
		v.listener.OnEnter(d)
	}
}
