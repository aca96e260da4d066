package catch

import "github.com/vovakirdan/catch-arcade/internal/config"

// RoundStats counts what happened during one round.
type RoundStats struct {
	Catches     int     // Normal entities caught
	Misses      int     // Normal entities that left the play area
	BombsCaught int     // Bombs that hit the paddle
	BombsDodged int     // Bombs that left the play area
	LivesGained int     // Bonus lives awarded
	Elapsed     float64 // Seconds spent in Playing
}

// Session holds score, lives and the state of the current game.
// It is created once per process; Start reinitializes everything but HighScore.
type Session struct {
	Score         int
	Lives         int
	HighScore     int
	BonusCatches  int // Normal catches since the last bonus life, always below BonusEvery
	SpawnTimer    float64
	SpawnInterval float64
	State         State
	Round         RoundStats

	startLives int
	bonusEvery int
}

// NewSession creates a session on the home screen with full lives.
func NewSession(cfg config.SessionConfig, spawnInterval float64) *Session {
	s := &Session{
		State:      StateHome,
		startLives: cfg.Lives,
		bonusEvery: cfg.BonusEvery,
	}
	s.SpawnInterval = spawnInterval
	s.reset()
	return s
}

// BonusEvery returns how many normal catches earn a life.
func (s *Session) BonusEvery() int {
	return s.bonusEvery
}

func (s *Session) reset() {
	s.Score = 0
	s.Lives = s.startLives
	s.BonusCatches = 0
	s.SpawnTimer = 0
	s.Round = RoundStats{}
}

// apply adds an outcome effect and reports whether a bonus life was granted.
// The bonus life and the counter reset happen together, so BonusCatches is
// never observed at BonusEvery.
func (s *Session) apply(e effect) (lifeGained bool) {
	s.Score += e.score
	s.Lives += e.lives
	if s.Lives < 0 {
		s.Lives = 0
	}
	if e.bonus {
		s.BonusCatches++
		if s.BonusCatches >= s.bonusEvery {
			s.Lives++
			s.BonusCatches = 0
			s.Round.LivesGained++
			lifeGained = true
		}
	}
	return lifeGained
}
