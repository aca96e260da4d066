package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone         Action = iota
	ActionStart               // Space/Enter - begin a round from the home screen
	ActionTogglePause         // P/Esc - pause or resume while playing
	ActionRestart             // R/Space - new round from home or game over
	ActionLeftHeld            // Left/A pressed or repeating
	ActionLeftReleased        // Left released (only from backends that report it)
	ActionRightHeld           // Right/D pressed or repeating
	ActionRightReleased       // Right released
	ActionQuit                // Q, Ctrl+C - terminate immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionTogglePause:
		return "TogglePause"
	case ActionRestart:
		return "Restart"
	case ActionLeftHeld:
		return "LeftHeld"
	case ActionLeftReleased:
		return "LeftReleased"
	case ActionRightHeld:
		return "RightHeld"
	case ActionRightReleased:
		return "RightReleased"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// MoveLatch holds the left/right "held" flags written by the input side and
// read by the movement tick.
//
// Terminals report key presses (and auto-repeat) but never releases, so a held
// flag also carries a deadline: without a refreshing press it releases itself.
// The first press waits RepeatDelay, long enough for the terminal to start
// repeating; each repeat then extends the hold by Window. A zero Window
// disables expiry.
type MoveLatch struct {
	Window      time.Duration
	RepeatDelay time.Duration

	left, right           bool
	leftUntil, rightUntil time.Time
}

// NewMoveLatch creates a latch whose held flags expire repeatDelay after the
// first press and window after each repeat. A repeatDelay shorter than window
// is raised to window.
func NewMoveLatch(window, repeatDelay time.Duration) *MoveLatch {
	return &MoveLatch{Window: window, RepeatDelay: max(window, repeatDelay)}
}

// Apply updates the latch from a movement action. Other actions are ignored.
func (l *MoveLatch) Apply(a Action, now time.Time) {
	switch a {
	case ActionLeftHeld:
		l.leftUntil = l.deadline(l.left && !now.After(l.leftUntil), now)
		l.left = true
	case ActionLeftReleased:
		l.left = false
	case ActionRightHeld:
		l.rightUntil = l.deadline(l.right && !now.After(l.rightUntil), now)
		l.right = true
	case ActionRightReleased:
		l.right = false
	}
}

// deadline returns when a press at now stops counting as held.
func (l *MoveLatch) deadline(repeat bool, now time.Time) time.Time {
	if repeat {
		return now.Add(l.Window)
	}
	return now.Add(l.RepeatDelay)
}

// Held returns the current left and right flags, releasing any that expired.
func (l *MoveLatch) Held(now time.Time) (left, right bool) {
	if l.Window > 0 {
		if l.left && now.After(l.leftUntil) {
			l.left = false
		}
		if l.right && now.After(l.rightUntil) {
			l.right = false
		}
	}
	return l.left, l.right
}

// Release drops both flags.
func (l *MoveLatch) Release() {
	l.left = false
	l.right = false
}
