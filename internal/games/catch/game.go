// Package catch implements the falling-blocks catching game.
// The paddle at the bottom of the play area catches normal blocks for points
// and has to avoid bombs; letting a normal block fall past costs a life.
package catch

import (
	"github.com/vovakirdan/catch-arcade/internal/config"
	"github.com/vovakirdan/catch-arcade/internal/core"
)

// Game wires the session, spawner, entity pool and paddle together.
// It is not safe for concurrent use; the platform serializes every call.
type Game struct {
	cfg     config.CatchConfig
	session *Session
	pool    *Pool
	spawner *Spawner
	paddle  Paddle
	motion  Motion
	ticks   uint64
}

// TickResult reports what one simulation tick did.
type TickResult struct {
	Events  []Event
	Spawned bool
	State   State
}

// New creates a game on the home screen.
func New(cfg config.CatchConfig, rc core.RuntimeConfig) *Game {
	return &Game{
		cfg:     cfg,
		session: NewSession(cfg.Session, cfg.Spawn.Interval),
		pool:    NewPool(),
		spawner: NewSpawner(rc.Seed, cfg),
		paddle:  NewPaddle(cfg.Player, cfg.PlayArea.Width),
		motion:  NewMotion(cfg.Player.MoveStep, cfg.PlayArea.Width),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "catch"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Catch the Falling Blocks"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.CatchConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() State {
	return g.session.State
}

// Session returns a copy of the session for read-only use.
func (g *Game) Session() Session {
	return *g.session
}

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle {
	return g.paddle
}

// Entities returns a copy of the active entities.
func (g *Game) Entities() []Entity {
	return g.pool.Entities()
}

// HandleAction applies a state-changing action and reports whether the state changed.
// Movement and quit actions are handled by the platform and ignored here.
func (g *Game) HandleAction(a core.Action) bool {
	switch a {
	case core.ActionStart, core.ActionRestart:
		if !g.session.Start() {
			return false
		}
		// The paddle keeps its position between rounds.
		g.pool.Clear()
		g.ticks = 0
		return true
	case core.ActionTogglePause:
		return g.session.TogglePause()
	default:
		return false
	}
}

// Tick advances the simulation by dt seconds: spawn, fall, then resolve.
// Nothing happens outside Playing.
func (g *Game) Tick(dt float64) TickResult {
	if !g.session.Active() {
		return TickResult{State: g.session.State}
	}
	if dt < 0 {
		dt = 0
	}
	g.ticks++
	g.session.Round.Elapsed += dt

	var res TickResult
	if e, ok := g.spawner.Update(g.session, dt); ok {
		g.pool.Add(e)
		res.Spawned = true
	}
	g.pool.Advance(dt)
	res.Events = Resolve(g.session, g.pool, g.paddle.Box())
	res.State = g.session.State
	return res
}

// MoveTick moves the paddle one fixed step. It does nothing outside Playing.
func (g *Game) MoveTick(left, right bool) bool {
	if !g.session.Active() {
		return false
	}
	before := g.paddle.X
	g.motion.Apply(&g.paddle, left, right)
	return g.paddle.X != before
}
