package catch

import "github.com/vovakirdan/catch-arcade/internal/core"

// Outcome is the classification of one entity against the paddle.
type Outcome uint8

const (
	OutcomeNone  Outcome = iota // Still falling
	OutcomeCatch                // Touching the paddle
	OutcomeMiss                 // Fully below the play area
)

// Classify decides what happens to an entity this tick. A catch wins over a
// miss, although a paddle resting above y=0 makes both impossible at once.
func Classify(paddle core.Box, e Entity) Outcome {
	switch {
	case paddle.Overlaps(e.Box()):
		return OutcomeCatch
	case e.Below():
		return OutcomeMiss
	default:
		return OutcomeNone
	}
}

// Resolve classifies every active entity, applies the outcomes to the session
// and removes the resolved entities once the scan is done.
//
// If lives reach zero the round ends on the spot: remaining entities are left
// untouched for this tick and a single EventGameOver closes the event list.
// Outside Playing nothing is resolved.
func Resolve(sess *Session, pool *Pool, paddle core.Box) []Event {
	if !sess.Active() {
		return nil
	}

	var events []Event
	for i := 0; i < pool.Len(); i++ {
		e := pool.At(i)
		outcome := Classify(paddle, e)
		if outcome == OutcomeNone || !pool.Schedule(i) {
			continue
		}

		var eff effect
		if outcome == OutcomeCatch {
			eff = e.Kind.info().caught
			if e.Kind == KindBomb {
				sess.Round.BombsCaught++
			} else {
				sess.Round.Catches++
			}
		} else {
			eff = e.Kind.info().missed
			if e.Kind == KindBomb {
				sess.Round.BombsDodged++
			} else {
				sess.Round.Misses++
			}
		}

		if sess.apply(eff) {
			events = append(events, Event{Type: EventLifeGained, Kind: e.Kind, Score: sess.Score, Lives: sess.Lives})
		}
		if eff.lives < 0 {
			events = append(events, Event{Type: EventHit, Kind: e.Kind, Score: sess.Score, Lives: sess.Lives})
		}

		if sess.Lives == 0 {
			if sess.endRound() {
				events = append(events, Event{Type: EventGameOver, Kind: e.Kind, Score: sess.Score, Lives: 0})
			}
			break
		}
	}
	pool.Flush()
	return events
}
