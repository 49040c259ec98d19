package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/sentry/engine"
	"github.com/lixenwraith/sentry/vmath"
)

const (
	hudWidth = 38

	// shotFlash is how long a shot ray stays on screen
	shotFlash = 120 * time.Millisecond
)

var (
	styleDefault  = tcell.StyleDefault
	styleSector   = tcell.StyleDefault.Background(tcell.NewRGBColor(28, 40, 28))
	styleBarrel   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleTurret   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHostile  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleTarget   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true).Reverse(true)
	styleFriendly = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleShot     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 160, 50))
	styleEdge     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHeading  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
)

// viewport maps arena units to map cells; a cell is twice as tall as it is wide
type viewport struct {
	width, height int
	sx, sz        float64
}

func newViewport(width, height int, bound float64) viewport {
	v := viewport{width: max(width, 1), height: max(height, 1)}
	if bound <= 0 {
		bound = 1
	}
	v.sz = float64(v.height-1) / (2 * bound)
	v.sx = 2 * v.sz
	if 2*bound*v.sx > float64(v.width-1) {
		v.sx = float64(v.width-1) / (2 * bound)
		v.sz = v.sx / 2
	}
	return v
}

// toCell returns the map cell of p, +Z pointing up
func (v viewport) toCell(p vmath.Vec3F) (int, int, bool) {
	x := v.width/2 + int(math.Round(p.X*v.sx))
	y := v.height/2 - int(math.Round(p.Z*v.sz))
	return x, y, x >= 0 && x < v.width && y >= 0 && y < v.height
}

// toWorld returns the world point at the centre of cell (x, y)
func (v viewport) toWorld(x, y int) vmath.Vec3F {
	if v.sx == 0 || v.sz == 0 {
		return vmath.Vec3F{}
	}
	return vmath.Vec3F{
		X: float64(x-v.width/2) / v.sx,
		Z: float64(v.height/2-y) / v.sz,
	}
}

// draw renders the arena on the left and the HUD on the right
func draw(scr tcell.Screen, s *sandbox, now time.Time) {
	scr.Clear()
	w, h := scr.Size()
	mapW := max(w-hudWidth-1, 10)
	mapH := max(h-1, 5)
	vp := newViewport(mapW, mapH, s.world.Bound())

	drawArena(scr, s, vp, now)

	snap := s.turret.Snapshot()
	for i, line := range hudLines(s, snap) {
		if i >= h-1 {
			break
		}
		style := styleHUD
		if i == 0 {
			style = styleHeading
		}
		putText(scr, mapW+1, i, fitColumn(line, hudWidth), style)
	}
	putText(scr, 0, h-1, fitColumn(s.message, w), styleDefault)
	scr.Show()
}

func drawArena(scr tcell.Screen, s *sandbox, vp viewport, now time.Time) {
	detector := s.turret.Detector()
	for y := 0; y < vp.height; y++ {
		for x := 0; x < vp.width; x++ {
			if detector.IsDetected(vp.toWorld(x, y)) {
				scr.SetContent(x, y, ' ', nil, styleSector)
			}
		}
	}

	bound := s.world.Bound()
	for _, corner := range []vmath.Vec3F{{X: -bound, Z: bound}, {X: bound, Z: bound}, {X: -bound, Z: -bound}, {X: bound, Z: -bound}} {
		if x, y, ok := vp.toCell(corner); ok {
			scr.SetContent(x, y, '+', nil, styleEdge)
		}
	}

	origin := s.turret.Rotation().Origin()
	drawRay(scr, vp, origin, s.headingTip(), '·', styleBarrel)

	if shots := s.launcher.Shots(); len(shots) > 0 {
		last := shots[len(shots)-1]
		if now.Sub(last.At) < shotFlash {
			reach := math.Min(s.launcher.Reach(), 2*bound)
			if last.Hit != nil {
				reach = vmath.V3FMag(vmath.V3FSub(last.Hit.Position(), origin))
			}
			drawRay(scr, vp, origin, vmath.V3FAdd(origin, vmath.V3FScale(last.Direction, reach)), '*', styleShot)
		}
	}

	target := s.turret.Targeter().CurrentTarget()
	for _, d := range s.world.Dummies() {
		if !d.IsAlive() {
			continue
		}
		x, y, ok := vp.toCell(d.Position())
		if !ok {
			continue
		}
		switch {
		case target != nil && d.ID() == target.ID():
			scr.SetContent(x, y, 'X', nil, styleTarget)
		case d.TeamID() == s.team:
			scr.SetContent(x, y, 'o', nil, styleFriendly)
		default:
			scr.SetContent(x, y, 'x', nil, styleHostile)
		}
	}

	if x, y, ok := vp.toCell(origin); ok {
		scr.SetContent(x, y, 'T', nil, styleTurret)
	}
}

// drawRay plots glyph along from..to, skipping the origin cell
func drawRay(scr tcell.Screen, vp viewport, from, to vmath.Vec3F, glyph rune, style tcell.Style) {
	fx, fy, _ := vp.toCell(from)
	tx, ty, _ := vp.toCell(to)
	steps := max(abs(tx-fx), abs(ty-fy))
	for i := 1; i <= steps; i++ {
		p := vmath.V3FLerp(from, to, float64(i)/float64(steps))
		if x, y, ok := vp.toCell(p); ok {
			scr.SetContent(x, y, glyph, nil, style)
		}
	}
}

// hudLines renders the turret snapshot, the key help and the telemetry registry
func hudLines(s *sandbox, snap engine.Snapshot) []string {
	target := "none"
	if snap.Target != nil {
		dist := vmath.FlatDist(s.turret.Rotation().Origin(), snap.Target.Position())
		target = fmt.Sprintf("%s @ %.1f", snap.Target.ID().String()[:8], dist)
		if snap.Manual {
			target += " (manual)"
		}
	}
	audio := "on"
	if s.player == nil || s.player.Muted() {
		audio = "muted"
	}

	lines := []string{
		fmt.Sprintf("TURRET  %s", snap.Phase),
		fmt.Sprintf("angle      %7.1f -> %.1f", snap.Angle, snap.TargetAngle),
		fmt.Sprintf("mode       %s", snap.RotationMode),
		fmt.Sprintf("target     %s", target),
		fmt.Sprintf("aim        settled=%t", snap.AimSettled),
		fmt.Sprintf("seen       %d / %d registered", snap.Detected, snap.Registered),
		fmt.Sprintf("sector     %.0f deg r=%.1f", snap.Settings.SectorAngle, snap.Settings.DetectionRadius),
		fmt.Sprintf("sweep      [%.1f, %.1f]", snap.Settings.EffectiveScanMin, snap.Settings.EffectiveScanMax),
		fmt.Sprintf("rotation   %.0f deg/s", snap.RotationSpeed),
		fmt.Sprintf("fire       %.2f/s dmg %.0f", snap.FireRate, snap.BaseDamage),
		fmt.Sprintf("reload     %v ready=%t", snap.ReloadRemaining.Round(time.Millisecond), snap.LauncherReady),
		fmt.Sprintf("kills      %d  audio %s", s.kills, audio),
		"",
		"spc on/off  m pin  c unpin  f fire",
		"e stop  +/- range  r rot  t rate",
		"s spawn  w write config  q quit",
		"",
	}
	return append(lines, s.turret.Status().Lines()...)
}

// fitColumn truncates or pads s to exactly width display columns
func fitColumn(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// putText writes s from (x, y), advancing by each rune's display width
func putText(scr tcell.Screen, x, y int, s string, style tcell.Style) {
	sw, _ := scr.Size()
	for _, r := range s {
		if x >= sw {
			break
		}
		scr.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
