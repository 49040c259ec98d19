package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/sentry/component"
	"github.com/lixenwraith/sentry/core"
	"github.com/lixenwraith/sentry/event"
	"github.com/lixenwraith/sentry/parameter"
	"github.com/lixenwraith/sentry/status"
	"github.com/lixenwraith/sentry/system"
	"github.com/lixenwraith/sentry/vmath"
)

var (
	ErrMissingLauncher      = errors.New("no launcher bound")
	ErrMissingQueryProvider = errors.New("no query provider bound")
	ErrMissingPivot         = errors.New("no pivot bound")
	ErrVolumeUnavailable    = errors.New("query provider returned no volume")
)

// Deps are the host collaborators injected at construction
type Deps struct {
	Launcher core.Launcher
	Query    core.QueryProvider
	Pivot    core.Pivot

	Logger *slog.Logger
	Status *status.Registry
}

// Turret owns the sub-components of one turret and drives them through the
// Idle/Scanning/Targeting/Firing/Reloading cycle
// Not safe for concurrent use; the host calls every method from its tick goroutine
type Turret struct {
	bus    *event.Bus
	logger *slog.Logger
	status *status.Registry

	sector   *system.SectorConfig
	detector *system.SectorDetector
	targeter *system.Targeter
	rotation *system.RotationActuator
	fire     *system.FireGate

	phase          Phase
	phaseTime      time.Duration
	reloadDuration time.Duration
	reloadTimer    time.Duration
	aimSettled     bool

	err error

	// Telemetry
	statPhase       *status.Text
	statTransitions *atomic.Int64
	statAttempts    *atomic.Int64
}

// New builds a turret from settings and collaborators
// A missing collaborator leaves the turret permanently inert; Err reports why
func New(settings Settings, deps Deps) *Turret {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	reg := deps.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	bus := event.NewBus()

	t := &Turret{
		bus:    bus,
		logger: logger.With("component", "turret"),
		status: reg,

		statPhase:       reg.Strings.Get("turret.phase"),
		statTransitions: reg.Ints.Get("turret.transitions"),
		statAttempts:    reg.Ints.Get("turret.attempts"),
	}

	t.sector = system.NewSectorConfig(bus, logger,
		settings.SectorAngle, settings.DetectionRadius, settings.ScanMin, settings.ScanMax)
	t.rotation = system.NewRotationActuator(deps.Pivot, bus,
		settings.Origin, settings.MountYaw, settings.RotationSpeed, reg, logger)
	t.detector = system.NewSectorDetector(t.sector, bus, t.rotation,
		settings.Origin, settings.PollInterval, reg, logger)
	t.targeter = system.NewTargeter(t.detector, bus, settings.Team, reg, logger)
	t.targeter.SetHysteresisThreshold(settings.HysteresisThreshold)
	t.targeter.SetLossTimeout(settings.TargetLossTimeout)
	t.fire = system.NewFireGate(deps.Launcher, t.rotation, reg, logger)
	t.fire.SetFireRate(settings.FireRate)
	t.fire.SetBaseDamage(settings.BaseDamage)
	t.fire.SetProjectileSpeed(settings.ProjectileSpeed)
	t.fire.SetLifetime(settings.Lifetime)
	t.fire.SetAimingTolerance(settings.AimingTolerance)
	t.fire.SetAccuracyGating(settings.AccuracyGating)
	t.SetReloadDuration(settings.ReloadDuration)

	var missing []error
	if deps.Launcher == nil {
		missing = append(missing, ErrMissingLauncher)
	}
	if deps.Query == nil {
		missing = append(missing, ErrMissingQueryProvider)
	}
	if deps.Pivot == nil {
		missing = append(missing, ErrMissingPivot)
	}
	if err := errors.Join(missing...); err != nil {
		t.err = fmt.Errorf("turret inert: %w", err)
	} else if !t.detector.Attach(deps.Query) {
		t.err = fmt.Errorf("turret inert: %w", ErrVolumeUnavailable)
	}
	if t.err != nil {
		t.logger.Error("turret constructed without collaborators", "error", t.err)
	}

	bus.Subscribe(event.EventTargetChanged, t.onTargetChanged)
	bus.Subscribe(event.EventRotationComplete, t.onRotationComplete)
	bus.Subscribe(event.EventSettingsChanged, t.onSettingsChanged)

	t.statPhase.Set(t.phase.String())
	return t
}

// Err returns the construction error of an inert turret, nil otherwise
func (t *Turret) Err() error { return t.err }

// Inert reports whether the turret is missing a collaborator and ignores all commands
func (t *Turret) Inert() bool { return t.err != nil }

// Phase returns the current state machine phase
func (t *Turret) Phase() Phase { return t.phase }

// Active reports whether the turret is out of Idle
func (t *Turret) Active() bool { return t.phase != PhaseIdle }

// Subscribe registers an observer for one event type
func (t *Turret) Subscribe(eventType event.EventType, fn event.Handler) event.Subscription {
	return t.bus.Subscribe(eventType, fn)
}

// Unsubscribe removes an observer registered with Subscribe
func (t *Turret) Unsubscribe(sub event.Subscription) {
	t.bus.Unsubscribe(sub)
}

// Sub-components, exposed for hosts and tests that need finer control
func (t *Turret) Sector() *system.SectorConfig       { return t.sector }
func (t *Turret) Detector() *system.SectorDetector   { return t.detector }
func (t *Turret) Targeter() *system.Targeter         { return t.targeter }
func (t *Turret) Rotation() *system.RotationActuator { return t.rotation }
func (t *Turret) FireGate() *system.FireGate         { return t.fire }
func (t *Turret) Status() *status.Registry           { return t.status }
func (t *Turret) ReloadDuration() time.Duration      { return t.reloadDuration }
func (t *Turret) ReloadRemaining() time.Duration     { return t.reloadTimer }

// Update advances the turret by dt
// Per tick: detection, targeting, then rotation and fire, then phase transitions
func (t *Turret) Update(dt time.Duration, now time.Time) {
	if t.err != nil {
		return
	}
	dt = min(max(dt, 0), parameter.MaxDeltaTime)

	if t.phase == PhaseIdle {
		t.fire.Sync()
		return
	}
	t.phaseTime += dt

	t.detector.Tick(now)
	// May move Scanning to Targeting through onTargetChanged
	t.targeter.Tick(dt)

	switch t.phase {
	case PhaseScanning:
		t.rotation.Update(dt)
		t.fire.Sync()

	case PhaseTargeting:
		t.fire.Sync()
		if !t.targeter.HasValidTarget() {
			t.holdAim()
			if t.targeter.LossExpired() || !t.targeter.Losing() {
				t.enterScanning()
			}
			return
		}
		target := t.targeter.CurrentTarget()
		t.track(target, dt)
		if t.aimed(target) && t.fire.Ready() {
			t.transition(PhaseFiring)
		}

	case PhaseFiring:
		t.fire.Sync()
		if t.targeter.HasValidTarget() {
			t.attempt(t.targeter.CurrentTarget(), false)
		}
		t.startReload()

	case PhaseReloading:
		t.fire.Sync()
		if t.targeter.HasValidTarget() {
			t.track(t.targeter.CurrentTarget(), dt)
		}
		t.reloadTimer = max(t.reloadTimer-dt, 0)
		if t.reloadTimer > 0 {
			return
		}
		if t.targeter.HasValidTarget() {
			t.transition(PhaseTargeting)
		} else {
			t.enterScanning()
		}
	}
}

// SetActive switches the turret on into Scanning or off into Idle
// Returns false if the turret is inert
func (t *Turret) SetActive(active bool) bool {
	if !active {
		t.stop("deactivated")
		return true
	}
	if t.err != nil {
		t.logger.Warn("activation ignored, turret is inert", "error", t.err)
		return false
	}
	if t.phase != PhaseIdle {
		return true
	}
	t.targeter.Enable()
	t.detector.ForceRefresh()
	t.enterScanning()
	return true
}

// EmergencyStop halts rotation, drops the target and returns to Idle immediately
func (t *Turret) EmergencyStop() {
	t.stop("emergency stop")
}

func (t *Turret) stop(reason string) {
	t.rotation.StopRotation()
	t.targeter.Disable()
	t.reloadTimer = 0
	t.aimSettled = false
	if t.phase == PhaseIdle {
		return
	}
	t.logger.Info("turret stopping", "reason", reason)
	t.transition(PhaseIdle)
}

// SetManualTarget pins e as the target until ClearManualTarget
func (t *Turret) SetManualTarget(e core.Entity) bool {
	if t.phase == PhaseIdle {
		t.logger.Warn("manual target ignored, turret is idle")
		return false
	}
	return t.targeter.SetManualTarget(e)
}

// ClearManualTarget returns to automatic targeting
func (t *Turret) ClearManualTarget() bool {
	if t.phase == PhaseIdle {
		t.logger.Warn("clear manual target ignored, turret is idle")
		return false
	}
	return t.targeter.ClearManualTarget()
}

// FireImmediate attempts a shot at the current target without waiting for the aim to settle
// The turret passes through Firing as for a scheduled shot; the fire gate still applies
// and any attempt starts a reload
func (t *Turret) FireImmediate() bool {
	if t.phase != PhaseTargeting {
		t.logger.Warn("fire immediate ignored", "phase", t.phase)
		return false
	}
	if !t.targeter.HasValidTarget() {
		t.logger.Warn("fire immediate ignored, no valid target")
		return false
	}
	t.transition(PhaseFiring)
	ok := t.attempt(t.targeter.CurrentTarget(), true)
	t.startReload()
	return ok
}

// Upgrade surface, each forwarded to the owning component

func (t *Turret) UpgradeFireRate(shotsPerSecond float64)     { t.fire.SetFireRate(shotsPerSecond) }
func (t *Turret) UpgradeDamage(damage float64)               { t.fire.SetBaseDamage(damage) }
func (t *Turret) UpgradeProjectileSpeed(speed float64)       { t.fire.SetProjectileSpeed(speed) }
func (t *Turret) UpgradeProjectileLifetime(d time.Duration)  { t.fire.SetLifetime(d) }
func (t *Turret) UpgradeRotationSpeed(degreesPerSec float64) { t.rotation.SetRotationSpeed(degreesPerSec) }
func (t *Turret) SetAimingTolerance(degrees float64)         { t.fire.SetAimingTolerance(degrees) }

// UpgradeDetectionRange sets the detection radius; false if rejected
func (t *Turret) UpgradeDetectionRange(radius float64) bool {
	return t.sector.SetDetectionRadius(radius)
}

// SetSectorAngle sets the full sector angle; false if rejected
func (t *Turret) SetSectorAngle(degrees float64) bool {
	return t.sector.SetSectorAngle(degrees)
}

// SetScanBounds sets the nominal scan bounds; a running sweep moves onto the new bounds
func (t *Turret) SetScanBounds(scanMin, scanMax float64) bool {
	return t.sector.SetScanBounds(scanMin, scanMax)
}

// SetReloadDuration sets the cooldown after each fire attempt
func (t *Turret) SetReloadDuration(d time.Duration) {
	applied := d
	if applied <= 0 {
		applied = parameter.ReloadDurationDefault
	}
	applied = min(max(applied, parameter.ReloadDurationMin), parameter.ReloadDurationMax)
	if applied != d {
		t.logger.Warn("reload duration clamped", "requested", d, "applied", applied)
	}
	t.reloadDuration = applied
}

func (t *Turret) enterScanning() {
	t.aimSettled = false
	t.rotation.StartContinuousRotation(t.sector.EffectiveScanMin(), t.sector.EffectiveScanMax())
	if t.phase != PhaseScanning {
		t.transition(PhaseScanning)
	}
}

func (t *Turret) enterTargeting(target core.Entity) {
	t.aimSettled = false
	if yaw, ok := t.rotation.YawTo(target.Position()); ok {
		t.rotation.RotateTo(yaw)
	} else {
		t.rotation.StopRotation()
	}
	t.transition(PhaseTargeting)
}

func (t *Turret) startReload() {
	t.reloadTimer = t.reloadDuration
	t.transition(PhaseReloading)
}

// track re-commands the aim when the target moved, then steps the actuator
func (t *Turret) track(target core.Entity, dt time.Duration) {
	if yaw, ok := t.rotation.YawTo(target.Position()); ok {
		retarget := t.rotation.Mode() == component.RotationContinuous ||
			math.Abs(vmath.DeltaDeg(t.rotation.TargetAngle(), yaw)) > parameter.ScanArrivalEpsilon
		if retarget {
			t.aimSettled = false
			t.rotation.RotateTo(yaw)
		}
	}
	t.rotation.Update(dt)
}

// holdAim freezes a single rotation in place while the target is missing
func (t *Turret) holdAim() {
	if t.rotation.Mode() == component.RotationSingle {
		t.rotation.StopRotation()
	}
}

func (t *Turret) aimed(target core.Entity) bool {
	return t.rotation.AimErrorTo(target.Position()) <= t.fire.AimingTolerance()
}

// attempt fires at target and notifies observers; returns launcher success
func (t *Turret) attempt(target core.Entity, immediate bool) bool {
	dir := t.fireDirection(target)
	ok := t.fire.ExecuteFire(dir)
	t.statAttempts.Add(1)
	t.bus.Publish(event.Event{
		Type: event.EventFired,
		Payload: &event.FiredPayload{
			Target:    target,
			Direction: dir,
			Success:   ok,
			Immediate: immediate,
		},
	})
	return ok
}

// fireDirection is the horizontal bearing from the pivot to the target
// The pivot only yaws, so elevated targets are engaged along their bearing;
// a target straight above or below gets the current forward
func (t *Turret) fireDirection(target core.Entity) vmath.Vec3F {
	dir, ok := vmath.FlatDirection(t.rotation.Origin(), target.Position())
	if !ok {
		return t.rotation.GetForwardDirection()
	}
	return dir
}

// transition validates and applies a phase change, logging and notifying observers
func (t *Turret) transition(to Phase) bool {
	from := t.phase
	if !CanTransition(from, to) {
		t.logger.Warn("invalid phase transition", "from", from, "to", to)
		return false
	}
	t.phase = to
	t.phaseTime = 0
	t.statPhase.Set(to.String())
	t.statTransitions.Add(1)
	t.logger.Info("phase transition", "from", from, "to", to)
	t.bus.Publish(event.Event{
		Type:    event.EventStateChanged,
		Payload: &event.StateChangedPayload{From: from.String(), To: to.String()},
	})
	return true
}

// onTargetChanged relays target changes as acquired/lost and starts targeting from a scan
func (t *Turret) onTargetChanged(ev event.Event) {
	p, ok := ev.Payload.(*event.TargetPayload)
	if !ok {
		return
	}
	if p.Current != nil {
		t.bus.Publish(event.Event{Type: event.EventTargetAcquired, Payload: p})
		if t.phase == PhaseScanning {
			t.enterTargeting(p.Current)
		}
		return
	}
	if p.Previous != nil {
		t.aimSettled = false
		t.bus.Publish(event.Event{Type: event.EventTargetLost, Payload: p})
	}
}

func (t *Turret) onRotationComplete(event.Event) {
	if t.phase == PhaseTargeting || t.phase == PhaseReloading {
		t.aimSettled = true
	}
}

// onSettingsChanged moves a running sweep onto new effective bounds
// A change that leaves the bounds alone, such as a radius upgrade, does not touch the sweep
func (t *Turret) onSettingsChanged(ev event.Event) {
	if t.phase != PhaseScanning {
		return
	}
	p, ok := ev.Payload.(*event.SettingsPayload)
	if !ok {
		return
	}
	lo, hi := t.rotation.ContinuousBounds()
	if t.rotation.IsContinuous() && lo == p.EffectiveScanMin && hi == p.EffectiveScanMax {
		return
	}
	t.rotation.SetContinuousBounds(p.EffectiveScanMin, p.EffectiveScanMax)
}

// Settings reconstructs the live configuration from the components, including every
// clamp and upgrade applied since construction
func (t *Turret) Settings() Settings {
	return Settings{
		Team:     t.targeter.Team(),
		Origin:   t.rotation.Origin(),
		MountYaw: t.rotation.MountYaw(),

		SectorAngle:     t.sector.SectorAngle(),
		DetectionRadius: t.sector.DetectionRadius(),
		ScanMin:         t.sector.ScanMin(),
		ScanMax:         t.sector.ScanMax(),
		PollInterval:    t.detector.Interval(),

		RotationSpeed: t.rotation.RotationSpeed(),

		HysteresisThreshold: t.targeter.HysteresisThreshold(),
		TargetLossTimeout:   t.targeter.LossTimeout(),

		FireRate:        t.fire.FireRate(),
		BaseDamage:      t.fire.BaseDamage(),
		ProjectileSpeed: t.fire.ProjectileSpeed(),
		Lifetime:        t.fire.Lifetime(),
		AimingTolerance: t.fire.AimingTolerance(),
		AccuracyGating:  t.fire.AccuracyGating(),

		ReloadDuration: t.reloadDuration,
	}
}

// Snapshot is a read-only view of the turret for HUDs and logs
type Snapshot struct {
	Phase     Phase
	PhaseTime time.Duration
	Inert     bool

	Angle        float64
	TargetAngle  float64
	RotationMode component.RotationMode

	Target     core.Entity
	Manual     bool
	AimSettled bool
	LossTimer  time.Duration

	Registered int
	Detected   int

	Settings        event.SettingsPayload
	RotationSpeed   float64
	FireRate        float64
	BaseDamage      float64
	ProjectileSpeed float64
	AimingTolerance float64
	ReloadRemaining time.Duration
	LauncherReady   bool
}

// Snapshot captures the current turret state
func (t *Turret) Snapshot() Snapshot {
	return Snapshot{
		Phase:     t.phase,
		PhaseTime: t.phaseTime,
		Inert:     t.err != nil,

		Angle:        t.rotation.CurrentAngle(),
		TargetAngle:  t.rotation.TargetAngle(),
		RotationMode: t.rotation.Mode(),

		Target:     t.targeter.CurrentTarget(),
		Manual:     t.targeter.IsManual(),
		AimSettled: t.aimSettled,
		LossTimer:  t.targeter.LossTimer(),

		Registered: t.detector.Registered(),
		Detected:   len(t.detector.GetDetected()),

		Settings:        t.sector.Settings(),
		RotationSpeed:   t.rotation.RotationSpeed(),
		FireRate:        t.fire.FireRate(),
		BaseDamage:      t.fire.BaseDamage(),
		ProjectileSpeed: t.fire.ProjectileSpeed(),
		AimingTolerance: t.fire.AimingTolerance(),
		ReloadRemaining: t.reloadTimer,
		LauncherReady:   t.fire.Ready(),
	}
}
