package system

import (
	"log/slog"
	"math"
	"slices"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/sentry/component"
	"github.com/lixenwraith/sentry/core"
	"github.com/lixenwraith/sentry/event"
	"github.com/lixenwraith/sentry/parameter"
	"github.com/lixenwraith/sentry/status"
	"github.com/lixenwraith/sentry/vmath"
)

// Heading supplies the current world-space forward direction
type Heading interface {
	GetForwardDirection() vmath.Vec3F
}

// SectorDetector tracks entities in the coarse overlap volume and filters them down to
// those inside the configured sector
// Registration is event driven (provider enter/exit); filtering is polled at a fixed
// wall-clock interval independent of tick rate
type SectorDetector struct {
	config   *SectorConfig
	heading  Heading
	origin   vmath.Vec3F
	interval time.Duration
	logger   *slog.Logger

	state component.DetectionState

	// Cached thresholds, refreshed on settings change
	radiusSq float64
	cosHalf  float64

	volume core.Volume

	// Telemetry
	statRegistered *atomic.Int64
	statDetected   *atomic.Int64
	statPasses     *atomic.Int64
}

// NewSectorDetector creates a detector bound to config and the bus that carries its changes
// heading may be nil, forward then defaults to +Z
func NewSectorDetector(
	config *SectorConfig,
	bus *event.Bus,
	heading Heading,
	origin vmath.Vec3F,
	interval time.Duration,
	reg *status.Registry,
	logger *slog.Logger,
) *SectorDetector {
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	if interval <= 0 {
		interval = parameter.DetectionPollInterval
	}
	interval = min(max(interval, parameter.DetectionPollIntervalMin), parameter.DetectionPollIntervalMax)

	d := &SectorDetector{
		config:   config,
		heading:  heading,
		origin:   origin,
		interval: interval,
		logger:   logger.With("component", "sector_detector"),
		state:    component.NewDetectionState(),

		statRegistered: reg.Ints.Get("detector.registered"),
		statDetected:   reg.Ints.Get("detector.detected"),
		statPasses:     reg.Ints.Get("detector.passes"),
	}
	d.refreshThresholds()

	if bus != nil {
		bus.Subscribe(event.EventSettingsChanged, d.onSettingsChanged)
	}
	return d
}

func (d *SectorDetector) refreshThresholds() {
	r := d.config.DetectionRadius()
	d.radiusSq = r * r
	d.cosHalf = math.Cos(vmath.DegToRad(d.config.HalfAngle()))
}

func (d *SectorDetector) onSettingsChanged(ev event.Event) {
	d.refreshThresholds()
	if d.volume != nil {
		d.volume.Resize(d.config.DetectionRadius())
	}
	// Geometry changed, next Tick filters regardless of schedule
	d.ForceRefresh()
}

// Attach opens the coarse volume on provider; enter/exit notifications feed the registered set
func (d *SectorDetector) Attach(provider core.QueryProvider) bool {
	if provider == nil {
		d.logger.Error("no query provider to attach")
		return false
	}
	if d.volume != nil {
		d.volume.Close()
	}
	d.volume = provider.OpenVolume(d.origin, d.config.DetectionRadius(), d)
	if d.volume == nil {
		d.logger.Error("query provider returned no volume")
		return false
	}
	return true
}

// Detach closes the coarse volume and forgets every candidate
func (d *SectorDetector) Detach() {
	if d.volume != nil {
		d.volume.Close()
		d.volume = nil
	}
	d.Clear()
}

// Clear empties both sets
func (d *SectorDetector) Clear() {
	d.state = component.NewDetectionState()
	d.publishCounts()
}

// OnEnter implements core.OverlapListener
func (d *SectorDetector) OnEnter(e core.Entity) { d.RegisterCandidate(e) }

// OnExit implements core.OverlapListener
func (d *SectorDetector) OnExit(e core.Entity) { d.UnregisterCandidate(e) }

// RegisterCandidate adds e to the registered set; repeated and dead entities are ignored
func (d *SectorDetector) RegisterCandidate(e core.Entity) {
	if e == nil || !e.IsAlive() {
		return
	}
	id := e.ID()
	if _, ok := d.state.Registered[id]; ok {
		return
	}
	d.state.Registered[id] = e
	d.state.Order = append(d.state.Order, id)
	d.statRegistered.Store(int64(len(d.state.Order)))
}

// UnregisterCandidate removes e from both sets; unknown entities are ignored
func (d *SectorDetector) UnregisterCandidate(e core.Entity) {
	if e == nil {
		return
	}
	d.remove(e.ID())
	d.publishCounts()
}

func (d *SectorDetector) remove(id core.EntityID) {
	if _, ok := d.state.Registered[id]; !ok {
		return
	}
	delete(d.state.Registered, id)
	if i := slices.Index(d.state.Order, id); i >= 0 {
		d.state.Order = slices.Delete(d.state.Order, i, i+1)
	}
	if _, ok := d.state.DetectedSet[id]; ok {
		delete(d.state.DetectedSet, id)
		d.state.Detected = slices.DeleteFunc(d.state.Detected, func(e core.Entity) bool {
			return e.ID() == id
		})
	}
}

// ForceRefresh makes the next Tick run a filter pass
func (d *SectorDetector) ForceRefresh() {
	d.state.NextFilterTime = time.Time{}
}

// Tick runs a filter pass when due and reports whether one ran
func (d *SectorDetector) Tick(now time.Time) bool {
	if now.Before(d.state.NextFilterTime) {
		return false
	}
	d.state.NextFilterTime = now.Add(d.interval)

	// Purge dead entries before filtering
	for i := 0; i < len(d.state.Order); {
		id := d.state.Order[i]
		if e := d.state.Registered[id]; e == nil || !e.IsAlive() {
			d.remove(id)
			continue
		}
		i++
	}

	d.state.Detected = d.state.Detected[:0]
	clear(d.state.DetectedSet)
	forward := d.forward()
	for _, id := range d.state.Order {
		e := d.state.Registered[id]
		if d.inside(e.Position(), forward) {
			d.state.Detected = append(d.state.Detected, e)
			d.state.DetectedSet[id] = struct{}{}
		}
	}

	d.statPasses.Add(1)
	d.publishCounts()
	return true
}

func (d *SectorDetector) forward() vmath.Vec3F {
	if d.heading == nil {
		return vmath.Vec3F{Z: 1}
	}
	return vmath.V3FNormalize(vmath.V3FFlat(d.heading.GetForwardDirection()))
}

// inside applies the range test on squared horizontal distance, then the angle test as a
// dot product against cos(halfAngle); no square root for out-of-range entities, no inverse trig
func (d *SectorDetector) inside(p vmath.Vec3F, forward vmath.Vec3F) bool {
	toEntity := vmath.V3FFlat(vmath.V3FSub(p, d.origin))
	distSq := vmath.V3FMagSq(toEntity)
	if distSq > d.radiusSq {
		return false
	}
	// Directly above or below the turret: no horizontal direction, treat as inside
	if distSq < vmath.FlatEpsilonSq {
		return true
	}
	dir := vmath.V3FScale(toEntity, 1/math.Sqrt(distSq))
	return vmath.V3FDot(dir, forward) >= d.cosHalf
}

// IsDetected reports whether point p lies inside the sector at the current heading
func (d *SectorDetector) IsDetected(p vmath.Vec3F) bool {
	return d.inside(p, d.forward())
}

// GetDetected returns the last filtered list; callers must not modify it
func (d *SectorDetector) GetDetected() []core.Entity {
	return d.state.Detected
}

// Contains reports whether the entity with id was in the last filtered list
func (d *SectorDetector) Contains(id core.EntityID) bool {
	_, ok := d.state.DetectedSet[id]
	return ok
}

// GetClosest returns the detected entity with the smallest horizontal distance, or nil
func (d *SectorDetector) GetClosest() core.Entity {
	var closest core.Entity
	best := math.MaxFloat64
	for _, e := range d.state.Detected {
		if distSq := vmath.FlatDistSq(d.origin, e.Position()); distSq < best {
			best = distSq
			closest = e
		}
	}
	return closest
}

// Registered returns the size of the registered set
func (d *SectorDetector) Registered() int {
	return len(d.state.Order)
}

// Origin returns the sensing origin
func (d *SectorDetector) Origin() vmath.Vec3F {
	return d.origin
}

// Interval returns the filter poll interval
func (d *SectorDetector) Interval() time.Duration {
	return d.interval
}

func (d *SectorDetector) publishCounts() {
	d.statRegistered.Store(int64(len(d.state.Order)))
	d.statDetected.Store(int64(len(d.state.Detected)))
}
