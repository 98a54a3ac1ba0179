package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// scriptedInput returns one batch of intents per Drain call.
type scriptedInput struct {
	batches [][]core.Intent
	calls   int
	failAt  int // return an error on this call, 0 = never
}

func (s *scriptedInput) Drain() ([]core.Intent, error) {
	s.calls++
	if s.failAt > 0 && s.calls == s.failAt {
		return nil, errors.New("tty gone")
	}
	if s.calls-1 < len(s.batches) {
		return s.batches[s.calls-1], nil
	}
	return nil, nil
}

type screenOutput struct {
	screen  *core.Frame
	cursor  []bool
	flushes int
	failOn  int
}

func newScreenOutput() *screenOutput {
	return &screenOutput{screen: core.NewFrame()}
}

func (o *screenOutput) WriteCell(row, col int, cell core.Cell) {
	o.screen.SetCell(col, row, cell)
}

func (o *screenOutput) SetCursorVisible(v bool) { o.cursor = append(o.cursor, v) }

func (o *screenOutput) Flush() error {
	o.flushes++
	if o.failOn > 0 && o.flushes == o.failOn {
		return errors.New("write: broken pipe")
	}
	return nil
}

type cueLog []core.Cue

func (c *cueLog) Play(cue core.Cue) { *c = append(*c, cue) }

func (c cueLog) has(want core.Cue) bool {
	for _, cue := range c {
		if cue == want {
			return true
		}
	}
	return false
}

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func baseSession(in core.IntentSource, out *screenOutput, cues *cueLog) Session {
	return Session{
		Input:       in,
		Output:      out,
		Audio:       cues,
		Config:      core.RuntimeConfig{TickRate: 60, Seed: 1},
		Now:         fakeClock(10 * time.Millisecond),
		Sleep:       func(time.Duration) {},
		GameOptions: []invaders.Option{invaders.WithSpawnChance(0)},
	}
}

func TestRunQuit(t *testing.T) {
	in := &scriptedInput{batches: [][]core.Intent{nil, {core.IntentMoveLeft}, {core.IntentQuit}}}
	out := newScreenOutput()
	var cues cueLog

	res, err := Run(context.Background(), baseSession(in, out, &cues))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != core.OutcomeQuit {
		t.Errorf("outcome = %s, expected quit", res.Outcome)
	}
	if res.Ticks != 3 {
		t.Errorf("ticks = %d, expected 3", res.Ticks)
	}
	if res.Frames != 2 {
		t.Errorf("frames = %d, expected 2 (the quit tick renders nothing)", res.Frames)
	}
	if len(cues) != 2 || cues[0] != core.CueStartup || cues[1] != core.CueLose {
		t.Errorf("cues = %v, expected [startup lose]", cues)
	}

	// Player moved one column left from the centre
	if out.screen.Get(core.NumCols/2-1, core.NumRows-1) != invaders.PlayerChar {
		t.Errorf("player not drawn where expected:\n%s", out.screen)
	}
	if len(out.cursor) != 2 || out.cursor[0] || !out.cursor[1] {
		t.Errorf("cursor toggles = %v, expected hide then show", out.cursor)
	}
}

func TestRunWin(t *testing.T) {
	in := &scriptedInput{batches: [][]core.Intent{{core.IntentShoot}}}
	out := newScreenOutput()
	var cues cueLog

	s := baseSession(in, out, &cues)
	s.GameOptions = append(s.GameOptions, invaders.WithInvader(core.NumCols/2, 5))

	res, err := Run(context.Background(), s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != core.OutcomeWon {
		t.Fatalf("outcome = %s, expected won", res.Outcome)
	}
	if res.Frames != res.Ticks {
		t.Errorf("frames = %d, ticks = %d: every tick should be rendered", res.Frames, res.Ticks)
	}
	if res.Kills != 1 {
		t.Errorf("kills = %d, expected 1", res.Kills)
	}
	for _, want := range []core.Cue{core.CueStartup, core.CuePew, core.CueExplode, core.CueWin} {
		if !cues.has(want) {
			t.Errorf("missing cue %q in %v", want, cues)
		}
	}

	expected := core.NewFrame()
	invaders.NewPlayer().Draw(expected)
	if !out.screen.Equal(expected) {
		t.Errorf("final screen should only show the player:\n%s", out.screen)
	}
}

func TestRunInputError(t *testing.T) {
	in := &scriptedInput{failAt: 4}
	out := newScreenOutput()
	var cues cueLog

	res, err := Run(context.Background(), baseSession(in, out, &cues))
	if err == nil || !strings.Contains(err.Error(), "tty gone") {
		t.Fatalf("Run() error = %v, expected input failure", err)
	}
	if res.Frames != 3 {
		t.Errorf("frames = %d, expected the 3 frames produced before the fault", res.Frames)
	}
	if len(out.cursor) == 0 || !out.cursor[len(out.cursor)-1] {
		t.Error("cursor should be restored after an input fault")
	}
}

func TestRunOutputError(t *testing.T) {
	// Keep the player moving so every frame differs from the last
	in := &scriptedInput{}
	for i := 0; i < 10; i++ {
		in.batches = append(in.batches, []core.Intent{core.IntentMoveLeft})
	}
	out := newScreenOutput()
	out.failOn = 3
	var cues cueLog

	s := baseSession(in, out, &cues)
	s.MaxTicks = 1000

	_, err := Run(context.Background(), s)
	if err == nil || !strings.Contains(err.Error(), "broken pipe") {
		t.Fatalf("Run() error = %v, expected render failure", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := &scriptedInput{}
	out := newScreenOutput()
	var cues cueLog

	s := baseSession(in, out, &cues)
	ticks := 0
	s.Sleep = func(time.Duration) {
		ticks++
		if ticks == 5 {
			cancel()
		}
	}

	res, err := Run(ctx, s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != core.OutcomeQuit {
		t.Errorf("outcome = %s, expected quit", res.Outcome)
	}
	if res.Ticks != 5 || res.Frames != 5 {
		t.Errorf("ticks=%d frames=%d, expected 5 and 5", res.Ticks, res.Frames)
	}
}

func TestRunMaxTicks(t *testing.T) {
	in := &scriptedInput{}
	out := newScreenOutput()
	var cues cueLog

	s := baseSession(in, out, &cues)
	s.MaxTicks = 10

	res, err := Run(context.Background(), s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Ticks != 10 || res.Outcome != core.OutcomeQuit {
		t.Errorf("ticks=%d outcome=%s, expected 10 and quit", res.Ticks, res.Outcome)
	}
}

func TestRunRequiresCollaborators(t *testing.T) {
	if _, err := Run(context.Background(), Session{}); err == nil {
		t.Error("expected an error without input and output")
	}
}

func TestResultSummary(t *testing.T) {
	got := Result{
		Outcome:  core.OutcomeWon,
		Ticks:    600,
		Spawned:  3,
		Kills:    3,
		Duration: 10*time.Second + 400*time.Microsecond,
	}.Summary()
	expected := "won after 10s: 600 ticks, 3 invaders, 3 destroyed, 0 landed"
	if got != expected {
		t.Errorf("Summary() = %q, expected %q", got, expected)
	}
}
