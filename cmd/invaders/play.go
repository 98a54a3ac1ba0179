package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/engine"
	"github.com/vovakirdan/tui-invaders/internal/platform/audio"
	"github.com/vovakirdan/tui-invaders/internal/platform/terminal"
	"github.com/vovakirdan/tui-invaders/internal/render"
)

const audioDrainTimeout = 3 * time.Second

var (
	flagBackend string
	flagNoSound bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round in this terminal",
	Long: `Start a round in the current terminal.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Space/Enter  - Shoot
  Q/Esc        - Quit

Backends:
  tcell  - Full-screen terminal via tcell (default)
  ansi   - Raw mode and plain ANSI escapes

Examples:
  invaders play
  invaders play --seed 42
  invaders play --backend ansi --no-sound
  invaders play --log-file invaders.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tcell", "Terminal backend: tcell or ansi")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound cues")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is busy)")
}

// terminalIO is an opened backend plus its teardown.
type terminalIO struct {
	input  core.IntentSource
	output render.Output
	close  func() error
}

func runPlay(cmd *cobra.Command, _ []string) {
	res, err := playRound(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(res.Summary())
}

// playRound runs one round and tears everything down before returning, so
// the caller may exit straight away.
func playRound(cmd *cobra.Command) (engine.Result, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return engine.Result{}, err
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flagNoSound {
		cfg.Audio.Enabled = false
	}

	logger, closeLog, err := newFileLogger(cfg)
	if err != nil {
		return engine.Result{}, err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sink core.CueSink = audio.Nop{}
	var player *audio.Player
	if cfg.Audio.Enabled {
		player, err = audio.NewPlayer(audio.Options{
			SoundDir: cfg.Audio.SoundDir,
			Volume:   cfg.Audio.Volume,
			Logger:   logger,
		})
		if err != nil {
			// Non-fatal, the game runs without sound
			logger.Warn("audio disabled", "err", err)
		} else {
			sink = player
		}
	}

	tio, err := openTerminal(ctx, flagBackend)
	if err != nil {
		if player != nil {
			player.Close()
		}
		logger.Error("open terminal", "backend", flagBackend, "err", err)
		return engine.Result{}, err
	}

	res, runErr := engine.Run(ctx, engine.Session{
		Input:  tio.input,
		Output: tio.output,
		Audio:  sink,
		Logger: logger,
		Config: cfg.Runtime(),
	})

	closeErr := tio.close()
	if player != nil {
		player.Wait(audioDrainTimeout)
		player.Close()
	}

	if runErr == nil {
		runErr = closeErr
	}
	if runErr != nil {
		return res, fmt.Errorf("running game: %w", runErr)
	}
	return res, nil
}

// openTerminal prepares the chosen backend and checks the playfield fits.
func openTerminal(ctx context.Context, backend string) (*terminalIO, error) {
	switch backend {
	case "tcell":
		scr, err := terminal.OpenScreen()
		if err != nil {
			return nil, err
		}
		if err := terminal.CheckSize(scr.Size()); err != nil {
			scr.Close()
			return nil, err
		}
		return &terminalIO{
			input:  scr,
			output: scr,
			close: func() error {
				scr.Close()
				return nil
			},
		}, nil

	case "ansi":
		w, h, err := terminal.Size(int(os.Stdout.Fd()))
		if err != nil {
			return nil, err
		}
		if err := terminal.CheckSize(w, h); err != nil {
			return nil, err
		}
		restore, err := terminal.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			return nil, err
		}
		out := terminal.NewStream(os.Stdout, lipgloss.DefaultRenderer())
		if err := out.EnterAltScreen(); err != nil {
			_ = restore()
			return nil, err
		}
		keys := terminal.NewKeyReader(ctx, os.Stdin)
		return &terminalIO{
			input:  keys,
			output: out,
			close: func() error {
				keys.Close()
				exitErr := out.ExitAltScreen()
				if err := restore(); err != nil {
					return err
				}
				return exitErr
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown backend %q (expected tcell or ansi)", backend)
}

// newFileLogger logs to cfg.Log.File, or nowhere when it is empty.
func newFileLogger(cfg config.Config) (*log.Logger, func(), error) {
	if cfg.Log.File == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           cfg.LogLevel(),
	})
	return logger, func() { f.Close() }, nil
}
