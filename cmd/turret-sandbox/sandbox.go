package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sentry/arena"
	"github.com/lixenwraith/sentry/audio"
	"github.com/lixenwraith/sentry/config"
	"github.com/lixenwraith/sentry/engine"
	"github.com/lixenwraith/sentry/parameter"
	"github.com/lixenwraith/sentry/vmath"
)

// Upgrade steps applied by the sandbox keys
const (
	rangeStep         = 2.5
	upgradeMultiplier = 1.25
)

// sandbox is one turret at the arena centre with walking dummies around it
type sandbox struct {
	configPath string
	logger     *slog.Logger
	rng        *rand.Rand

	world    *arena.World
	launcher *arena.HitscanLauncher
	pivot    *arena.Pivot
	turret   *engine.Turret
	player   *audio.CuePlayer

	team     int
	hostiles int
	kills    int
	message  string
}

// newSandbox wires a turret from cfg into a fresh arena populated with hostiles
// and a pair of friendly dummies
func newSandbox(cfg config.Config, configPath string, hostiles int, clock arena.Clock,
	player *audio.CuePlayer, seed uint64, logger *slog.Logger) (*sandbox, error) {
	settings := cfg.Settings()

	s := &sandbox{
		configPath: configPath,
		logger:     logger,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		world:      arena.NewWorld(parameter.SandboxArenaRadius, logger),
		pivot:      &arena.Pivot{},
		player:     player,
		team:       settings.Team,
		hostiles:   max(hostiles, 0),
	}
	s.launcher = arena.NewHitscanLauncher(s.world, clock, settings.Origin, settings.Team, logger)

	for range s.hostiles {
		s.spawn(s.team + 1)
	}
	for range 2 {
		s.spawn(s.team)
	}

	s.turret = engine.New(settings, engine.Deps{
		Launcher: s.launcher,
		Query:    s.world,
		Pivot:    s.pivot,
		Logger:   logger,
	})
	if err := s.turret.Err(); err != nil {
		return nil, err
	}
	if player != nil {
		player.Attach(s.turret)
	}
	s.message = "space to activate"
	return s, nil
}

// spawn places a dummy on a random point of the outer ring walking in a random direction
func (s *sandbox) spawn(team int) *arena.Dummy {
	bound := s.world.Bound()
	dist := bound * (0.4 + 0.5*s.rng.Float64())
	pos := vmath.V3FScale(vmath.YawToDirection(s.rng.Float64()*360-180), dist)
	vel := vmath.V3FScale(vmath.YawToDirection(s.rng.Float64()*360-180), parameter.SandboxDummySpeed)
	return s.world.Spawn(team, pos, vel, parameter.SandboxDummyHealth)
}

// liveHostiles counts dummies not on the turret's team
func (s *sandbox) liveHostiles() int {
	n := 0
	for _, d := range s.world.Dummies() {
		if d.IsAlive() && d.TeamID() != s.team {
			n++
		}
	}
	return n
}

// step advances the arena then the turret, reaps kills and keeps the hostile count topped up
func (s *sandbox) step(dt time.Duration, now time.Time) {
	s.world.Step(dt)
	s.turret.Update(dt, now)

	if n := s.world.Reap(); n > 0 {
		s.kills += n
		s.logger.Info("dummies destroyed", "count", n, "kills", s.kills)
	}
	for s.liveHostiles() < s.hostiles {
		s.spawn(s.team + 1)
	}
}

// handleKey applies one key press; false means quit
func (s *sandbox) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false

	case ' ':
		active := !s.turret.Active()
		s.turret.SetActive(active)
		if active {
			s.message = "turret active"
		} else {
			s.message = "turret idle"
		}

	case 'm':
		target := s.world.ClosestHostile(s.turret.Rotation().Origin(), s.team)
		if target == nil {
			s.message = "no hostile to pin"
			return true
		}
		if s.turret.SetManualTarget(target) {
			s.message = "manual target " + target.ID().String()[:8]
		} else {
			s.message = "manual target refused"
		}

	case 'c':
		if s.turret.ClearManualTarget() {
			s.message = "manual target cleared"
		} else {
			s.message = "no manual target"
		}

	case 'f':
		if s.turret.FireImmediate() {
			s.message = "fired"
		} else {
			s.message = "fire immediate refused or dry"
		}

	case 'e':
		s.turret.EmergencyStop()
		s.message = "emergency stop"

	case '+', '=':
		s.adjustRange(rangeStep)

	case '-':
		s.adjustRange(-rangeStep)

	case 'r':
		s.turret.UpgradeRotationSpeed(s.turret.Rotation().RotationSpeed() * upgradeMultiplier)
		s.message = fmt.Sprintf("rotation speed %.0f deg/s", s.turret.Rotation().RotationSpeed())

	case 't':
		s.turret.UpgradeFireRate(s.turret.FireGate().FireRate() * upgradeMultiplier)
		s.message = fmt.Sprintf("fire rate %.2f/s", s.turret.FireGate().FireRate())

	case 's':
		s.hostiles++
		s.spawn(s.team + 1)
		s.message = fmt.Sprintf("%d hostiles", s.hostiles)

	case 'w':
		if err := config.FromSettings(s.turret.Settings()).Save(s.configPath); err != nil {
			s.logger.Warn("config write failed", "path", s.configPath, "error", err)
			s.message = "write failed: " + err.Error()
		} else {
			s.message = "wrote " + s.configPath
		}
	}
	return true
}

func (s *sandbox) adjustRange(delta float64) {
	radius := s.turret.Sector().DetectionRadius() + delta
	if s.turret.UpgradeDetectionRange(radius) {
		s.message = fmt.Sprintf("detection range %.1f", s.turret.Sector().DetectionRadius())
	} else {
		s.message = "detection range rejected"
	}
}

// headingTip returns the world point the barrel indicator is drawn to
func (s *sandbox) headingTip() vmath.Vec3F {
	r := s.turret.Rotation()
	reach := math.Min(s.turret.Sector().DetectionRadius(), s.world.Bound())
	return vmath.V3FAdd(r.Origin(), vmath.V3FScale(r.GetForwardDirection(), reach))
}
