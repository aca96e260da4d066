package catch

// State is the top-level game mode.
type State uint8

const (
	StateHome State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateHome:
		return "home"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Start begins a new round from Home or GameOver.
// Everything but HighScore is reinitialized. It reports whether the state changed.
func (s *Session) Start() bool {
	if s.State != StateHome && s.State != StateGameOver {
		return false
	}
	s.reset()
	s.State = StatePlaying
	return true
}

// TogglePause switches between Playing and Paused. Other states ignore it.
func (s *Session) TogglePause() bool {
	switch s.State {
	case StatePlaying:
		s.State = StatePaused
	case StatePaused:
		s.State = StatePlaying
	default:
		return false
	}
	return true
}

// Active reports whether the simulation should advance.
func (s *Session) Active() bool {
	return s.State == StatePlaying
}

// endRound moves Playing to GameOver and folds the score into HighScore.
// It reports false if the round had already ended.
func (s *Session) endRound() bool {
	if s.State != StatePlaying {
		return false
	}
	s.State = StateGameOver
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	return true
}
