// Package invaders implements the invader shooter simulation.
// The player moves along the bottom row and fires upward at invaders that
// spawn at random columns and descend one row at a time.
package invaders

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// SpawnChance is the per-tick probability that a new invader appears.
const SpawnChance = 0.01

// Option customizes a Game at construction.
type Option func(*Game)

// WithSpawnChance overrides the per-tick spawn probability.
func WithSpawnChance(p float64) Option {
	return func(g *Game) {
		g.spawnChance = p
	}
}

// WithPlayer replaces the default player.
func WithPlayer(p *Player) Option {
	return func(g *Game) {
		g.player = p
	}
}

// WithInvader places an invader before the first tick.
func WithInvader(x, y int) Option {
	return func(g *Game) {
		g.spawnAt(x, y)
	}
}

// Game owns the player and the invaders and advances them tick by tick.
type Game struct {
	player      *Player
	invaders    []*Invader
	rng         *rand.Rand
	spawnChance float64
	spawned     int // Invaders created so far
	kills       int // Invaders destroyed by shots
	landed      int // Invaders that reached the bottom
	ticks       int
	outcome     core.Outcome
}

// New creates a game. A zero seed picks one from the clock.
func New(cfg core.RuntimeConfig, opts ...Option) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		player:      NewPlayer(),
		rng:         rand.New(rand.NewSource(seed)),
		spawnChance: SpawnChance,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Player returns the player.
func (g *Game) Player() *Player { return g.player }

// Invaders returns the invaders currently in play.
func (g *Game) Invaders() []*Invader { return g.invaders }

// Outcome returns the round state.
func (g *Game) Outcome() core.Outcome { return g.outcome }

// Ticks returns how many ticks have been simulated.
func (g *Game) Ticks() int { return g.ticks }

// Kills returns how many invaders were shot down.
func (g *Game) Kills() int { return g.kills }

// Spawned returns how many invaders have entered play.
func (g *Game) Spawned() int { return g.spawned }

// Landed returns how many invaders reached the bottom row.
func (g *Game) Landed() int { return g.landed }

// Step advances the simulation by one tick of the given elapsed time,
// applying intents in the order they arrived.
func (g *Game) Step(elapsed time.Duration, intents []core.Intent) core.StepResult {
	res := core.StepResult{Outcome: g.outcome}
	if g.outcome.Over() {
		return res
	}
	g.ticks++

	res.Spawned = g.maybeSpawn()

	for _, in := range intents {
		switch in {
		case core.IntentMoveLeft:
			g.player.MoveLeft()
		case core.IntentMoveRight:
			g.player.MoveRight()
		case core.IntentShoot:
			if g.player.Shoot() {
				res.Cues = append(res.Cues, core.CuePew)
			}
		case core.IntentQuit:
			g.outcome = core.OutcomeQuit
			res.Outcome = g.outcome
			res.Cues = append(res.Cues, core.CueLose)
			return res
		}
	}

	g.player.Update(elapsed)
	for _, inv := range g.invaders {
		inv.Update(elapsed)
	}

	if hit := detectPlayerHit(g.player, g.invaders); hit.Kind == PlayerHit {
		g.player.Explode()
		g.invaders[hit.Invader].Explode()
		res.Cues = append(res.Cues, core.CueExplode)
	}

	for _, hit := range detectShotHits(g.player.shots, g.invaders) {
		g.player.shots[hit.Shot].Explode()
		g.invaders[hit.Invader].Explode()
		res.Cues = append(res.Cues, core.CueExplode)
		res.Kills++
	}
	g.kills += res.Kills

	g.player.reapShots()
	g.reapInvaders()

	// A round is only won once invaders have entered play and been shot down,
	// so the empty field before the first spawn never counts.
	switch {
	case g.player.Dead():
		g.outcome = core.OutcomeLost
		res.Cues = append(res.Cues, core.CueLose)
	case len(g.invaders) == 0 && g.kills > 0:
		g.outcome = core.OutcomeWon
		res.Cues = append(res.Cues, core.CueWin)
	}

	res.Outcome = g.outcome
	return res
}

// maybeSpawn rolls for a new invader at a random column on the top row.
func (g *Game) maybeSpawn() bool {
	if g.rng.Float64() >= g.spawnChance {
		return false
	}
	g.spawnAt(g.rng.Intn(core.NumCols), 0)
	return true
}

// spawnAt adds an invader at the given cell.
func (g *Game) spawnAt(x, y int) *Invader {
	inv := NewInvader(x, y)
	g.invaders = append(g.invaders, inv)
	g.spawned++
	return inv
}

// reapInvaders drops dead invaders, preserving order.
func (g *Game) reapInvaders() {
	kept := g.invaders[:0]
	for _, inv := range g.invaders {
		if !inv.Dead() {
			kept = append(kept, inv)
			continue
		}
		if inv.Landed() {
			g.landed++
		}
	}
	for i := len(kept); i < len(g.invaders); i++ {
		g.invaders[i] = nil
	}
	g.invaders = kept
}

// Render clears dst and draws the player, then shots, then invaders.
func (g *Game) Render(dst *core.Frame) {
	dst.Clear()
	dst.Draw(g.player)
	for _, s := range g.player.shots {
		dst.Draw(s)
	}
	for _, inv := range g.invaders {
		dst.Draw(inv)
	}
}

// Frame renders the current state into a newly allocated frame.
func (g *Game) Frame() *core.Frame {
	f := core.NewFrame()
	g.Render(f)
	return f
}
