package audio

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/catch-arcade/internal/config"
)

// fakeOutput records streamers instead of playing them.
type fakeOutput struct {
	initErr error
	block   chan struct{} // Play waits on it when non-nil

	mu      sync.Mutex
	streams []beep.Streamer
}

func (f *fakeOutput) Init(beep.SampleRate, int) error { return f.initErr }

func (f *fakeOutput) Play(s beep.Streamer) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	f.streams = append(f.streams, s)
	f.mu.Unlock()
}

func (f *fakeOutput) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.streams)
}

func testAudioConfig() config.AudioConfig {
	return config.AudioConfig{Enabled: true, Volume: 0.5, SampleRate: 44100}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestPlayerPlaysQueuedSounds(t *testing.T) {
	out := &fakeOutput{}
	p := New(testAudioConfig(), WithOutput(out), WithLogger(quietLogger()))
	if err := p.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	for _, s := range []Sound{SoundHit, SoundLifeGained, SoundGameOver} {
		if !p.Play(s) {
			t.Errorf("Play(%s) dropped", s)
		}
	}
	p.Close()

	if out.count() != 3 {
		t.Errorf("Expected 3 streams, got %d", out.count())
	}
	played, dropped := p.Stats()
	if played != 3 || dropped != 0 {
		t.Errorf("Stats() = %d/%d, want 3/0", played, dropped)
	}
}

func TestPlayerInitFailureIsSilent(t *testing.T) {
	out := &fakeOutput{initErr: errors.New("no device")}
	p := New(testAudioConfig(), WithOutput(out), WithLogger(quietLogger()))

	if err := p.Start(); err == nil {
		t.Fatal("Expected Start to report the init failure")
	}
	if p.Available() {
		t.Error("Player should be unavailable after init failure")
	}

	done := make(chan struct{})
	go func() {
		for range 1000 {
			p.Play(SoundHit)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Play blocked on a silent player")
	}

	p.Close()
	if out.count() != 0 {
		t.Errorf("Silent player produced %d streams", out.count())
	}
}

func TestPlayerDisabledByConfig(t *testing.T) {
	cfg := testAudioConfig()
	cfg.Enabled = false
	p := New(cfg, WithOutput(&fakeOutput{}), WithLogger(quietLogger()))

	if err := p.Start(); !errors.Is(err, ErrDisabled) {
		t.Errorf("Start() error = %v, want ErrDisabled", err)
	}
	if p.Play(SoundHit) {
		t.Error("Disabled player accepted a sound")
	}
}

func TestPlayerDropsWhenQueueFull(t *testing.T) {
	out := &fakeOutput{block: make(chan struct{})}
	p := New(testAudioConfig(), WithOutput(out), WithQueueSize(2), WithLogger(quietLogger()))
	if err := p.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	// One sound may be held by the blocked output, two more fill the queue.
	accepted := 0
	for range 10 {
		if p.Play(SoundHit) {
			accepted++
		}
	}
	if accepted > 3 {
		t.Errorf("Accepted %d sounds, queue should cap at 3", accepted)
	}
	if _, dropped := p.Stats(); dropped == 0 {
		t.Error("Expected dropped sounds")
	}

	close(out.block)
	p.Close()
}

func TestPlayerMute(t *testing.T) {
	out := &fakeOutput{}
	p := New(testAudioConfig(), WithOutput(out), WithLogger(quietLogger()))
	if err := p.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if !p.ToggleMute() || !p.Muted() {
		t.Error("Expected muted after toggle")
	}
	if p.Play(SoundHit) {
		t.Error("Muted player accepted a sound")
	}

	p.SetMuted(false)
	if !p.Play(SoundHit) {
		t.Error("Unmuted player dropped a sound")
	}
	p.Close()

	if out.count() != 1 {
		t.Errorf("Expected 1 stream, got %d", out.count())
	}
}

func TestPlayerPlayAfterClose(t *testing.T) {
	p := New(testAudioConfig(), WithOutput(&fakeOutput{}), WithLogger(quietLogger()))
	if err := p.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	p.Close()
	p.Close()

	if p.Play(SoundGameOver) {
		t.Error("Closed player accepted a sound")
	}
}
