package audio

// Cue is a short sound tied to a turret event
type Cue uint8

const (
	CueAcquired Cue = iota
	CueFired
	CueDryFire
	CueLost
	cueCount
)

var cueNames = [cueCount]string{
	CueAcquired: "acquired",
	CueFired:    "fired",
	CueDryFire:  "dry_fire",
	CueLost:     "lost",
}

func (c Cue) String() string {
	if c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}
