// Package audio plays short synthesized feedback sounds through gopxl/beep.
//
// Playback is fire-and-forget: Play hands a sound to a buffered queue and
// returns at once. A full queue drops the sound. If the audio backend cannot
// be initialized the player stays silent for the life of the process.
package audio

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/catch-arcade/internal/config"
)

// DefaultQueueSize is the number of sounds that may wait for playback.
const DefaultQueueSize = 16

// ErrDisabled is returned by Start when audio is turned off in the config.
var ErrDisabled = errors.New("audio: disabled by config")

// Output is the device sounds are sent to.
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
}

// speakerOutput plays through the system speaker.
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (speakerOutput) Play(s beep.Streamer) {
	speaker.Play(s)
}

// Option configures a Player.
type Option func(*Player)

// WithOutput replaces the system speaker.
func WithOutput(out Output) Option {
	return func(p *Player) { p.out = out }
}

// WithQueueSize sets the playback queue capacity.
func WithQueueSize(n int) Option {
	return func(p *Player) {
		if n > 0 {
			p.queueSize = n
		}
	}
}

// WithLogger sets the logger used for backend failures.
func WithLogger(l *log.Logger) Option {
	return func(p *Player) { p.logger = l }
}

// Player queues and plays feedback sounds.
type Player struct {
	cfg       config.AudioConfig
	rate      beep.SampleRate
	out       Output
	logger    *log.Logger
	queueSize int

	mu    sync.RWMutex // Guards queue sends against Close
	queue chan Sound
	wg    sync.WaitGroup
	once  sync.Once

	running atomic.Bool
	muted   atomic.Bool
	played  atomic.Uint64
	dropped atomic.Uint64
}

// New creates a stopped player. Call Start before Play.
func New(cfg config.AudioConfig, opts ...Option) *Player {
	p := &Player{
		cfg:       cfg,
		rate:      beep.SampleRate(cfg.SampleRate),
		out:       speakerOutput{},
		logger:    log.Default(),
		queueSize: DefaultQueueSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start initializes the output device and launches the playback goroutine.
// A failing device leaves the player silent; the error is logged at warn
// level and returned for information only.
func (p *Player) Start() error {
	if p.running.Load() {
		return nil
	}
	if !p.cfg.Enabled {
		return ErrDisabled
	}

	if err := p.out.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio unavailable, continuing without sound", "err", err)
		return fmt.Errorf("audio: init output: %w", err)
	}

	p.queue = make(chan Sound, p.queueSize)
	p.running.Store(true)
	p.wg.Add(1)
	go p.run()
	p.logger.Debug("audio started", "sample_rate", int(p.rate), "volume", p.cfg.Volume)
	return nil
}

func (p *Player) run() {
	defer p.wg.Done()
	for s := range p.queue {
		if st := s.Streamer(p.rate, p.cfg.Volume); st != nil {
			p.out.Play(st)
			p.played.Add(1)
		}
	}
}

// Play queues a sound without blocking. It reports false when the sound was
// dropped because the player is silent, muted or its queue is full.
func (p *Player) Play(s Sound) bool {
	if p.muted.Load() {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.running.Load() {
		return false
	}
	select {
	case p.queue <- s:
		return true
	default:
		p.dropped.Add(1)
		return false
	}
}

// Close stops the playback goroutine after the queued sounds are handed to
// the output. Play after Close is a no-op.
func (p *Player) Close() {
	p.once.Do(func() {
		p.mu.Lock()
		if !p.running.CompareAndSwap(true, false) {
			p.mu.Unlock()
			return
		}
		close(p.queue)
		p.mu.Unlock()
		p.wg.Wait()
	})
}

// ToggleMute flips the mute flag and reports whether sound is now muted.
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return muted
}

// SetMuted sets the mute flag.
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Muted reports whether sound is muted.
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Available reports whether the output device is running.
func (p *Player) Available() bool {
	return p.running.Load()
}

// Stats returns how many sounds were played and dropped.
func (p *Player) Stats() (played, dropped uint64) {
	return p.played.Load(), p.dropped.Load()
}
