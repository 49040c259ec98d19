package arena

// Pivot records the yaw commanded by the turret
type Pivot struct {
	yaw   float64
	calls int
}

// SetYaw implements core.Pivot
func (p *Pivot) SetYaw(yaw float64) {
	p.yaw = yaw
	p.calls++
}

// Yaw returns the last commanded yaw
func (p *Pivot) Yaw() float64 { return p.yaw }

// Calls returns the number of SetYaw calls
func (p *Pivot) Calls() int { return p.calls }
