package catch

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/catch-arcade/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	GroundChar = '─'
)

// viewport maps y-up play-area units onto the screen rows between the HUD
// line and the ground line.
type viewport struct {
	sx, sy    float64
	playH     float64
	top, rows int
	cols      int
}

func newViewport(dst *core.Screen, playW, playH float64) viewport {
	rows := dst.Height() - 2
	if rows < 1 {
		rows = 1
	}
	return viewport{
		sx:    float64(dst.Width()) / playW,
		sy:    float64(rows) / playH,
		playH: playH,
		top:   1,
		rows:  rows,
		cols:  dst.Width(),
	}
}

// cells converts a box to the screen rectangle it covers, clipped to the field.
// Boxes outside the field yield an empty rectangle.
func (v viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	x1 := int(math.Ceil(b.Right()*v.sx)) - 1
	y0 := int(math.Floor((v.playH - b.Top()) * v.sy))
	y1 := int(math.Ceil((v.playH-b.Y)*v.sy)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	x0 = core.Clamp(x0, 0, v.cols)
	x1 = core.Clamp(x1, -1, v.cols-1)
	y0 = core.Clamp(y0, 0, v.rows)
	y1 = core.Clamp(y1, -1, v.rows-1)
	if x1 < x0 || y1 < y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, v.top+y0, x1-x0+1, y1-y0+1)
}

// Render draws the current game state to the screen.
// The play area is scaled to the screen, so any terminal size shows the whole field.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := newViewport(dst, g.cfg.PlayArea.Width, g.cfg.PlayArea.Height)

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar)

	if g.session.State != StateHome {
		for _, e := range g.pool.entities {
			dst.DrawRect(v.cells(e.Box()), e.Kind.Glyph(), e.Kind.Color())
		}
	}
	dst.DrawRect(v.cells(g.paddle.Box()), PaddleChar, core.ColorCyan)

	g.drawHUD(dst)

	s := g.session
	switch s.State {
	case StateHome:
		drawOverlay(dst,
			"CATCH THE FALLING BLOCKS",
			fmt.Sprintf("Catch %c blocks, dodge %c bombs", KindNormal.Glyph(), KindBomb.Glyph()),
			"Press Space to start",
		)
	case StatePaused:
		drawOverlay(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		drawOverlay(dst,
			"GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d", s.Score, s.HighScore),
			"Press R to restart",
		)
	}
}

// drawHUD writes score, lives, best score and bonus progress on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	hud := fmt.Sprintf(" Score: %d  Lives: %d  Best: %d  Bonus: %d/%d ",
		s.Score, s.Lives, s.HighScore, s.BonusCatches, s.bonusEvery)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	lives := core.ColorGreen
	switch {
	case s.Lives <= 1:
		lives = core.ColorBrightRed
	case s.Lives <= 2:
		lives = core.ColorYellow
	}
	label := fmt.Sprintf(" Score: %d  Lives: ", s.Score)
	dst.DrawTextColored(utf8.RuneCountInString(label), 0, fmt.Sprint(s.Lives), lives)
}

// drawOverlay draws a message box in the center of the screen.
// The first line is the title; the rest are separated from it by a blank row.
func drawOverlay(dst *core.Screen, title string, lines ...string) {
	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = core.Max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, core.ColorYellow)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-utf8.RuneCountInString(l))/2, boxY+3+i, l)
	}
}
