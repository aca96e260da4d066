package config

// Difficulty derives spawn cadence and fall speed from the current score.
type Difficulty struct {
	perPoint      float64
	speedPerPoint float64
}

// NewDifficulty creates a difficulty curve from the spawn and entity settings.
func NewDifficulty(spawn SpawnConfig, entities EntityConfig) Difficulty {
	return Difficulty{
		perPoint:      spawn.DifficultyPerPoint,
		speedPerPoint: entities.SpeedPerPoint,
	}
}

// Factor returns the spawn frequency multiplier, 1 + score*perPoint.
// It is at least 1 for any non-negative score.
func (d Difficulty) Factor(score int) float64 {
	return 1.0 + float64(score)*d.perPoint
}

// SpawnThreshold returns the seconds that must accumulate before the next spawn.
func (d Difficulty) SpawnThreshold(interval float64, score int) float64 {
	return interval / d.Factor(score)
}

// FallSpeedBonus returns the speed added to every new entity at this score.
func (d Difficulty) FallSpeedBonus(score int) float64 {
	return float64(score) * d.speedPerPoint
}
