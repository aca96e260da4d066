package catch

// EventType identifies feedback emitted by the simulation.
type EventType uint8

const (
	EventHit         EventType = iota // A life was lost
	EventLifeGained                   // Bonus life awarded
	EventGameOver                     // Lives reached zero
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventHit:
		return "hit"
	case EventLifeGained:
		return "life_gained"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single piece of feedback for audio and logging.
type Event struct {
	Type  EventType
	Kind  Kind // Entity that caused the event; meaningless for EventGameOver
	Score int  // Score right after the event
	Lives int  // Lives right after the event
}
