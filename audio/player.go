package audio

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sentry/event"
)

const (
	sampleRate = beep.SampleRate(48000)

	// cueVolume is the linear volume of every cue
	cueVolume = 0.4
)

// Subscriber is the event surface a CuePlayer listens on
type Subscriber interface {
	Subscribe(eventType event.EventType, fn event.Handler) event.Subscription
}

// CuePlayer plays synthesised cues for turret events through the system speaker
// Without an audio device it degrades to silent mode; requests are still counted
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	logger      *slog.Logger
	initialized bool

	muted     atomic.Bool
	requested [cueCount]atomic.Int64
}

// NewCuePlayer creates an uninitialized player
func NewCuePlayer(logger *slog.Logger) *CuePlayer {
	if logger == nil {
		logger = slog.Default()
	}
	return &CuePlayer{
		mixer:  &beep.Mixer{},
		logger: logger.With("component", "audio"),
	}
}

// Initialize opens the speaker; a failure leaves the player silent and is returned
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		p.logger.Warn("speaker unavailable, cues are silent", "error", err)
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all cues
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// SetMuted silences playback without losing request counts
func (p *CuePlayer) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Muted reports the mute state
func (p *CuePlayer) Muted() bool {
	return p.muted.Load()
}

// Requested returns how many times c was requested
func (p *CuePlayer) Requested(c Cue) int64 {
	if c >= cueCount {
		return 0
	}
	return p.requested[c].Load()
}

// Play mixes c into the output; safe to call before Initialize
func (p *CuePlayer) Play(c Cue) {
	if c >= cueCount {
		return
	}
	p.requested[c].Add(1)
	if p.muted.Load() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := NewCueStreamer(c, sampleRate, cueVolume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Attach maps turret events to cues
func (p *CuePlayer) Attach(s Subscriber) {
	s.Subscribe(event.EventTargetAcquired, func(event.Event) { p.Play(CueAcquired) })
	s.Subscribe(event.EventTargetLost, func(event.Event) { p.Play(CueLost) })
	s.Subscribe(event.EventFired, func(ev event.Event) {
		if fp, ok := ev.Payload.(*event.FiredPayload); ok && fp.Success {
			p.Play(CueFired)
			return
		}
		p.Play(CueDryFire)
	})
}
