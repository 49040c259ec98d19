package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// wave is the shape of a cue voice
type wave uint8

const (
	waveSine wave = iota
	waveSquare
	waveSaw
	waveNoise
)

// voice is one cue layer: a wave gliding linearly from one frequency to another,
// with a linear fade in over attack samples and a fade out over the last release samples
type voice struct {
	wave     wave
	from, to float64
	rate     beep.SampleRate

	total   int
	attack  int
	release int

	phase float64
	pos   int
}

func newVoice(w wave, from, to float64, d, attack, release time.Duration, rate beep.SampleRate) *voice {
	total := rate.N(d)
	return &voice{
		wave:    w,
		from:    from,
		to:      to,
		rate:    rate,
		total:   total,
		attack:  min(rate.N(attack), total),
		release: min(rate.N(release), total),
	}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.pos >= v.total {
			return i, i > 0
		}
		s := v.sample() * v.gain()
		samples[i][0] = s
		samples[i][1] = s

		freq := v.from + (v.to-v.from)*float64(v.pos)/float64(v.total)
		v.phase += freq / float64(v.rate)
		v.phase -= math.Floor(v.phase)
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

func (v *voice) sample() float64 {
	switch v.wave {
	case waveSquare:
		if v.phase < 0.5 {
			return 1
		}
		return -1
	case waveSaw:
		return 2 * (v.phase - 0.5)
	case waveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * v.phase)
	}
}

func (v *voice) gain() float64 {
	g := 1.0
	if v.pos < v.attack {
		g = float64(v.pos) / float64(v.attack)
	}
	if left := v.total - v.pos; left < v.release {
		g = min(g, float64(left)/float64(v.release))
	}
	return g
}

// newVolume scales s linearly; math.Log2(0) is -Inf, so zero volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue timings
const (
	acquiredDuration = 120 * time.Millisecond
	firedDuration    = 90 * time.Millisecond
	dryFireDuration  = 80 * time.Millisecond
	lostDuration     = 200 * time.Millisecond
	cueAttack        = 5 * time.Millisecond
)

// CueDuration returns the playing time of a cue
func CueDuration(c Cue) time.Duration {
	switch c {
	case CueAcquired:
		return acquiredDuration
	case CueFired:
		return firedDuration
	case CueDryFire:
		return dryFireDuration
	case CueLost:
		return lostDuration
	default:
		return 0
	}
}

// NewCueStreamer synthesises the sound of c at volume vol in [0, 1]
func NewCueStreamer(c Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	d := CueDuration(c)
	var s beep.Streamer
	switch c {
	case CueAcquired:
		// Rising chirp
		s = newVoice(waveSine, 660, 990, d, cueAttack, d/2, rate)
	case CueFired:
		// Noise crack over a low thump
		crack := newVoice(waveNoise, 0, 0, d, time.Millisecond, d-time.Millisecond, rate)
		thump := newVoice(waveSine, 140, 60, d, time.Millisecond, d/2, rate)
		s = beep.Mix(newVolume(crack, 0.5), newVolume(thump, 0.5))
	case CueDryFire:
		// Short click-buzz
		s = newVoice(waveSaw, 120, 120, d, cueAttack, d/2, rate)
	case CueLost:
		// Falling sweep
		s = newVoice(waveSquare, 660, 330, d, cueAttack, d/2, rate)
	default:
		return beep.Silence(0)
	}
	return newVolume(beep.Take(rate.N(d), s), vol)
}
