package arena

import (
	"github.com/lixenwraith/sentry/core"
	"github.com/lixenwraith/sentry/vmath"
)

// Dummy is a walking target that bounces off the arena edge
type Dummy struct {
	id       core.EntityID
	team     int
	position vmath.Vec3F
	velocity vmath.Vec3F
	health   float64
}

// NewDummy creates a live dummy
func NewDummy(team int, position, velocity vmath.Vec3F, health float64) *Dummy {
	return &Dummy{
		id:       core.NewEntityID(),
		team:     team,
		position: position,
		velocity: velocity,
		health:   health,
	}
}

func (d *Dummy) ID() core.EntityID     { return d.id }
func (d *Dummy) IsAlive() bool         { return d.health > 0 }
func (d *Dummy) TeamID() int           { return d.team }
func (d *Dummy) Position() vmath.Vec3F { return d.position }
func (d *Dummy) Velocity() vmath.Vec3F { return d.velocity }
func (d *Dummy) Health() float64       { return d.health }

// SetPosition teleports the dummy
func (d *Dummy) SetPosition(p vmath.Vec3F) { d.position = p }

// SetVelocity changes walking velocity in units per second
func (d *Dummy) SetVelocity(v vmath.Vec3F) { d.velocity = v }

// Damage subtracts amount and reports whether this hit killed the dummy
func (d *Dummy) Damage(amount float64) bool {
	if !d.IsAlive() || amount <= 0 {
		return false
	}
	d.health -= amount
	return d.health <= 0
}

// Kill drops health to zero
func (d *Dummy) Kill() { d.health = 0 }

// step walks the dummy for seconds, reflecting off the square arena of half-extent bound
func (d *Dummy) step(seconds, bound float64) {
	if !d.IsAlive() {
		return
	}
	d.position = vmath.V3FAdd(d.position, vmath.V3FScale(d.velocity, seconds))
	if bound <= 0 {
		return
	}
	d.position.X, d.velocity.X = reflect(d.position.X, d.velocity.X, bound)
	d.position.Z, d.velocity.Z = reflect(d.position.Z, d.velocity.Z, bound)
}

func reflect(p, v, bound float64) (float64, float64) {
	switch {
	case p > bound:
		return 2*bound - p, -abs(v)
	case p < -bound:
		return -2*bound - p, abs(v)
	default:
		return p, v
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
