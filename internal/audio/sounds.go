package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Sound identifies one feedback effect.
type Sound uint8

const (
	SoundHit        Sound = iota // Life lost
	SoundLifeGained              // Bonus life
	SoundGameOver                // Round ended
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundLifeGained:
		return "life_gained"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Wave defines oscillator wave shapes.
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// note is one shaped tone in a sound.
type note struct {
	freq    float64
	wave    Wave
	length  time.Duration
	attack  time.Duration
	release time.Duration
}

// Each sound is a short sequence of notes.
var sounds = map[Sound][]note{
	SoundHit: {
		{freq: 110, wave: WaveSaw, length: 140 * time.Millisecond, attack: 5 * time.Millisecond, release: 90 * time.Millisecond},
	},
	SoundLifeGained: {
		{freq: 987.77, wave: WaveSquare, length: 80 * time.Millisecond, attack: 5 * time.Millisecond, release: 30 * time.Millisecond},
		{freq: 1318.51, wave: WaveSquare, length: 180 * time.Millisecond, attack: 5 * time.Millisecond, release: 120 * time.Millisecond},
	},
	SoundGameOver: {
		{freq: 440, wave: WaveSine, length: 200 * time.Millisecond, attack: 10 * time.Millisecond, release: 60 * time.Millisecond},
		{freq: 349.23, wave: WaveSine, length: 200 * time.Millisecond, attack: 10 * time.Millisecond, release: 60 * time.Millisecond},
		{freq: 261.63, wave: WaveSine, length: 420 * time.Millisecond, attack: 10 * time.Millisecond, release: 300 * time.Millisecond},
	},
}

// Duration returns how long the sound plays.
func (s Sound) Duration() time.Duration {
	var d time.Duration
	for _, n := range sounds[s] {
		d += n.length
	}
	return d
}

// Streamer builds a fresh finite streamer for the sound, scaled by volume.
// Unknown sounds yield nil.
func (s Sound) Streamer(rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := sounds[s]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(n, rate))
	}
	return newVolume(beep.Seq(parts...), volume)
}

// sample returns the wave value at phase, which runs from 0 to 1 per cycle.
func (w Wave) sample(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// tone streams one note, fading in over its attack and out over its release.
type tone struct {
	wave    Wave
	step    float64 // Phase advance per sample
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

func newTone(n note, rate beep.SampleRate) *tone {
	return &tone{
		wave:    n.wave,
		step:    n.freq / float64(rate),
		total:   rate.N(n.length),
		attack:  rate.N(n.attack),
		release: rate.N(n.release),
	}
}

// gain is the envelope level at sample i.
func (t *tone) gain(i int) float64 {
	g := 1.0
	if i < t.attack {
		g = float64(i) / float64(t.attack)
	}
	if left := t.total - i; left < t.release {
		g = math.Min(g, float64(left)/float64(t.release))
	}
	return g
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := min(len(samples), t.total-t.pos)
	for i := range n {
		v := t.wave.sample(t.phase) * t.gain(t.pos)
		samples[i] = [2]float64{v, v}
		t.phase = math.Mod(t.phase+t.step, 1)
		t.pos++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// newVolume scales s linearly. math.Log2(0) is -Inf, so zero becomes silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
