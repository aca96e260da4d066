package catch

import "github.com/vovakirdan/catch-arcade/internal/core"

// Kind tags a falling entity.
type Kind uint8

const (
	KindNormal Kind = iota // Catch for points, miss costs a life
	KindBomb               // Catch costs a life, miss is harmless
)

// effect is the change one outcome applies to the session.
type effect struct {
	score int  // Points added
	lives int  // Lives added (negative = lost)
	bonus bool // Counts toward the bonus life
}

// kindInfo is the per-kind lookup row used by the resolver and renderer.
type kindInfo struct {
	name   string
	glyph  rune
	color  core.Color
	caught effect
	missed effect
}

var kinds = [...]kindInfo{
	KindNormal: {
		name:   "normal",
		glyph:  '■',
		color:  core.ColorGreen,
		caught: effect{score: 1, bonus: true},
		missed: effect{lives: -1},
	},
	KindBomb: {
		name:   "bomb",
		glyph:  '●',
		color:  core.ColorRed,
		caught: effect{lives: -1},
	},
}

func (k Kind) info() kindInfo {
	if int(k) < len(kinds) {
		return kinds[k]
	}
	return kinds[KindNormal]
}

// String returns the kind name.
func (k Kind) String() string {
	return k.info().name
}

// Glyph returns the rune used to draw the kind.
func (k Kind) Glyph() rune {
	return k.info().glyph
}

// Color returns the display color of the kind.
func (k Kind) Color() core.Color {
	return k.info().color
}

// Entity is a falling square. Only Y changes after spawn.
type Entity struct {
	ID        uint64
	X         float64 // Left edge
	Y         float64 // Bottom edge, y-up
	Size      float64
	FallSpeed float64 // Units per second
	Kind      Kind
}

// Box returns the entity's collision square.
func (e Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.Size, e.Size)
}

// Below reports whether the entity has fully left the bottom of the play area.
func (e Entity) Below() bool {
	return e.Y+e.Size < 0
}
