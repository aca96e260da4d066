package catch

import "math"

// Snapshot captures everything that determines future simulation ticks.
type Snapshot struct {
	Tick         uint64
	State        State
	Score        int
	Lives        int
	HighScore    int
	BonusCatches int
	SpawnTimer   float64
	PaddleX      float64
	Entities     []Entity
	Round        RoundStats
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.ticks,
		State:        g.session.State,
		Score:        g.session.Score,
		Lives:        g.session.Lives,
		HighScore:    g.session.HighScore,
		BonusCatches: g.session.BonusCatches,
		SpawnTimer:   g.session.SpawnTimer,
		PaddleX:      g.paddle.X,
		Entities:     g.pool.Entities(),
		Round:        g.session.Round,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BonusCatches) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.SpawnTimer)
	h = h*31 + math.Float64bits(snap.PaddleX)

	for _, e := range snap.Entities {
		h = h*31 + e.ID
		h = h*31 + uint64(e.Kind)
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
		h = h*31 + math.Float64bits(e.FallSpeed)
	}

	h = h*31 + uint64(snap.Round.Catches)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Round.Misses)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Round.BombsCaught) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Round.BombsDodged) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Round.LivesGained) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Round.Elapsed)
	return h
}
