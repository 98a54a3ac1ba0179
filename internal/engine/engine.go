// Package engine drives one game session: it polls input, steps the
// simulation, forwards audio cues and hands finished frames to the render
// worker running on its own goroutine.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/render"
)

// Session bundles the collaborators of a single game.
type Session struct {
	Input  core.IntentSource
	Output render.Output
	Audio  core.CueSink // nil discards cues
	Logger *log.Logger  // nil discards logs
	Config core.RuntimeConfig

	// Now and Sleep default to the wall clock; tests replace them.
	Now   func() time.Time
	Sleep func(time.Duration)

	// MaxTicks ends the session as quit after this many ticks, 0 = unlimited.
	MaxTicks int

	// GameOptions are passed through to the simulation.
	GameOptions []invaders.Option
}

// Result summarizes a finished session.
type Result struct {
	Outcome  core.Outcome
	Ticks    int
	Frames   int
	Spawned  int
	Kills    int
	Landed   int
	Duration time.Duration
}

// Summary describes the finished round in one line.
func (r Result) Summary() string {
	return fmt.Sprintf("%s after %s: %d ticks, %d invaders, %d destroyed, %d landed",
		r.Outcome, r.Duration.Round(time.Millisecond), r.Ticks, r.Spawned, r.Kills, r.Landed)
}

type nopSink struct{}

func (nopSink) Play(core.Cue) {}

func (s *Session) defaults() {
	if s.Audio == nil {
		s.Audio = nopSink{}
	}
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	if s.Now == nil {
		s.Now = time.Now
	}
	if s.Sleep == nil {
		s.Sleep = time.Sleep
	}
}

// Run plays one round to completion. It returns when the round is won, lost
// or quit, when ctx is cancelled, or when a collaborator fails. Every frame
// produced before returning has been rendered by then.
func Run(ctx context.Context, s Session) (Result, error) {
	if s.Input == nil || s.Output == nil {
		return Result{}, errors.New("engine: session needs input and output")
	}
	s.defaults()

	game := invaders.New(s.Config, s.GameOptions...)
	queue := render.NewFrameQueue()
	worker := render.NewWorker(s.Output, queue, s.Logger)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(worker.Run)

	start := s.Now()
	s.Logger.Info("session started", "tick_rate", s.Config.TickRate, "seed", s.Config.Seed)
	s.Audio.Play(core.CueStartup)

	loopErr := loop(gctx, s, game, queue, start)

	queue.Close()
	renderErr := group.Wait()

	res := Result{
		Outcome:  game.Outcome(),
		Ticks:    game.Ticks(),
		Frames:   worker.Frames(),
		Spawned:  game.Spawned(),
		Kills:    game.Kills(),
		Landed:   game.Landed(),
		Duration: s.Now().Sub(start),
	}
	if res.Outcome == core.OutcomeRunning {
		res.Outcome = core.OutcomeQuit
	}

	s.Logger.Info("session ended",
		"outcome", res.Outcome,
		"ticks", res.Ticks,
		"frames", res.Frames,
		"kills", res.Kills,
	)

	switch {
	case loopErr != nil:
		return res, loopErr
	case renderErr != nil:
		return res, fmt.Errorf("render: %w", renderErr)
	}
	return res, nil
}

// loop runs ticks on the calling goroutine until the round ends.
func loop(ctx context.Context, s Session, game *invaders.Game, queue *render.FrameQueue, start time.Time) error {
	interval := s.Config.TickInterval()
	last := start

	for {
		select {
		case <-ctx.Done():
			// Parent cancellation ends the round quietly; a render failure
			// is reported by the worker itself.
			return nil
		default:
		}

		intents, err := s.Input.Drain()
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		now := s.Now()
		elapsed := now.Sub(last)
		last = now

		res := game.Step(elapsed, intents)
		for _, cue := range res.Cues {
			s.Audio.Play(cue)
		}
		if res.Spawned {
			s.Logger.Debug("invader spawned", "tick", game.Ticks(), "active", len(game.Invaders()))
		}
		if res.Kills > 0 {
			s.Logger.Debug("invader destroyed", "tick", game.Ticks(), "total", game.Kills())
		}

		if res.Outcome == core.OutcomeQuit {
			return nil
		}

		frame := core.NewFrame()
		game.Render(frame)
		if err := queue.Send(frame); err != nil {
			// The worker closed the queue after failing; it reports why.
			return nil
		}

		if res.Outcome.Over() {
			return nil
		}
		if s.MaxTicks > 0 && game.Ticks() >= s.MaxTicks {
			return nil
		}

		s.Sleep(interval)
	}
}
