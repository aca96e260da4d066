package catch

import (
	"math/rand"

	"github.com/vovakirdan/catch-arcade/internal/config"
)

// Spawner decides when to drop a new entity and what it looks like.
type Spawner struct {
	rng        *rand.Rand
	cfg        config.EntityConfig
	difficulty config.Difficulty
	playW      float64
	playH      float64
}

// NewSpawner creates a spawner with a seeded RNG.
func NewSpawner(seed int64, cfg config.CatchConfig) *Spawner {
	return &Spawner{
		rng:        rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness
		cfg:        cfg.Entities,
		difficulty: config.NewDifficulty(cfg.Spawn, cfg.Entities),
		playW:      cfg.PlayArea.Width,
		playH:      cfg.PlayArea.Height,
	}
}

// Reseed restarts the RNG sequence.
func (s *Spawner) Reseed(seed int64) {
	s.rng.Seed(seed)
}

// Threshold returns the spawn timer value that triggers a spawn at this score.
func (s *Spawner) Threshold(interval float64, score int) float64 {
	return s.difficulty.SpawnThreshold(interval, score)
}

// Update accumulates dt into the session's spawn timer and returns a new
// entity once the timer reaches the threshold. The timer restarts at zero
// and any overshoot is discarded, so at most one entity spawns per call.
func (s *Spawner) Update(sess *Session, dt float64) (Entity, bool) {
	sess.SpawnTimer += dt
	if sess.SpawnTimer < s.Threshold(sess.SpawnInterval, sess.Score) {
		return Entity{}, false
	}
	sess.SpawnTimer = 0
	return s.next(sess.Score), true
}

// next rolls a new entity positioned just above the visible play area.
func (s *Spawner) next(score int) Entity {
	size := s.cfg.Size
	e := Entity{
		X:         s.rng.Float64() * (s.playW - size),
		Y:         s.playH,
		Size:      size,
		FallSpeed: s.cfg.MinFallSpeed + s.rng.Float64()*(s.cfg.MaxFallSpeed-s.cfg.MinFallSpeed) + s.difficulty.FallSpeedBonus(score),
		Kind:      KindNormal,
	}
	if s.rng.Float64() < s.cfg.BombChance {
		e.Kind = KindBomb
	}
	return e
}
