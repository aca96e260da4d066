package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns the sample count.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream never ended")
	return total
}

func TestSoundsAreFinite(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, s := range []Sound{SoundHit, SoundLifeGained, SoundGameOver} {
		t.Run(s.String(), func(t *testing.T) {
			st := s.Streamer(rate, 0.8)
			if st == nil {
				t.Fatal("expected a streamer")
			}
			got := drain(t, st)

			want := 0
			for _, n := range sounds[s] {
				want += rate.N(n.length)
			}
			if got != want {
				t.Errorf("streamed %d samples, want %d", got, want)
			}
		})
	}
}

func TestSoundDuration(t *testing.T) {
	if got := SoundGameOver.Duration(); got != 820*time.Millisecond {
		t.Errorf("game over duration = %v, want 820ms", got)
	}
	if Sound(99).Streamer(44100, 1) != nil {
		t.Error("unknown sound should have no streamer")
	}
	if Sound(99).String() != "unknown" {
		t.Error("unknown sound name")
	}
}

func TestWaveSample(t *testing.T) {
	tests := []struct {
		wave  Wave
		phase float64
		want  float64
	}{
		{WaveSine, 0, 0},
		{WaveSine, 0.25, 1},
		{WaveSquare, 0.1, 1},
		{WaveSquare, 0.6, -1},
		{WaveSaw, 0, -1},
		{WaveSaw, 0.75, 0.5},
	}
	for _, tt := range tests {
		if got := tt.wave.sample(tt.phase); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("wave %d at %.2f = %f, want %f", tt.wave, tt.phase, got, tt.want)
		}
	}
}

func TestToneShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	// Zero frequency keeps a square wave at a constant 1.0.
	tn := newTone(note{freq: 0, wave: WaveSquare, length: 100 * time.Millisecond,
		attack: 10 * time.Millisecond, release: 20 * time.Millisecond}, rate)

	buf := make([][2]float64, 128)
	n, ok := tn.Stream(buf)
	if n != 100 || !ok {
		t.Fatalf("Stream() = %d, %v, want 100, true", n, ok)
	}

	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", buf[0][0])
	}
	if buf[50][0] != 1 || buf[50][1] != 1 {
		t.Errorf("sustain should be full volume on both channels, got %v", buf[50])
	}
	if buf[99][0] <= 0 || buf[99][0] >= buf[80][0] {
		t.Errorf("release should fade out: %f then %f", buf[80][0], buf[99][0])
	}

	if n, ok := tn.Stream(buf); n != 0 || ok {
		t.Errorf("finished tone Stream() = %d, %v, want 0, false", n, ok)
	}
	if tn.Err() != nil {
		t.Errorf("Err() = %v", tn.Err())
	}
}

func TestSilentVolume(t *testing.T) {
	st := SoundHit.Streamer(44100, 0)
	buf := make([][2]float64, 64)
	n, _ := st.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("sample %d = %f, want silence", i, buf[i][0])
		}
	}
}
