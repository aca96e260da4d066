package catch

import (
	"github.com/vovakirdan/catch-arcade/internal/config"
	"github.com/vovakirdan/catch-arcade/internal/core"
)

// Paddle is the player's catcher. X is the horizontal center; Y is the bottom edge.
type Paddle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Speed  float64 // Units per second
}

// NewPaddle creates a paddle centered in the play area.
func NewPaddle(player config.PlayerConfig, playW float64) Paddle {
	return Paddle{
		X:      playW / 2,
		Y:      player.Y,
		Width:  player.Width,
		Height: player.Height,
		Speed:  player.Speed,
	}
}

// Box returns the paddle's collision rectangle.
func (p Paddle) Box() core.Box {
	return core.NewBox(p.X-p.Width/2, p.Y, p.Width, p.Height)
}

// Motion moves the paddle by a fixed step per movement tick.
// The step is an assumed duration, not measured, so paddle speed follows the
// movement tick rate rather than wall-clock time.
type Motion struct {
	Step  float64
	playW float64
}

// NewMotion creates a motion controller for a play area width.
func NewMotion(step, playW float64) Motion {
	return Motion{Step: step, playW: playW}
}

// Apply moves p according to the held directions and clamps it inside the
// play area. Holding both directions cancels out.
func (m Motion) Apply(p *Paddle, left, right bool) {
	if left {
		p.X -= p.Speed * m.Step
	}
	if right {
		p.X += p.Speed * m.Step
	}
	p.X = core.ClampF(p.X, p.Width/2, m.playW-p.Width/2)
}
