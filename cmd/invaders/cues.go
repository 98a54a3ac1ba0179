package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/audio"
)

var flagExportDir string

var cuesCmd = &cobra.Command{
	Use:   "cues [cue...]",
	Short: "Preview or export the sound cues",
	Long: `Play sound cues through the speaker, or write them as WAV files.

Cues: startup, pew, explode, lose, win. With no arguments every cue is
played in order. Files exported with --export can be edited and placed in
audio.sound_dir to replace the built-in sounds.

Examples:
  invaders cues
  invaders cues pew explode
  invaders cues --export ./sounds`,
	Run: runCues,
}

func init() {
	cuesCmd.Flags().StringVar(&flagExportDir, "export", "", "Write the built-in cues as WAV files to this directory")
}

func runCues(cmd *cobra.Command, args []string) {
	if flagExportDir != "" {
		written, err := audio.Export(flagExportDir, audio.SampleRate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, path := range written {
			fmt.Println(path)
		}
		return
	}

	cues, err := parseCues(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: cfg.LogLevel()})
	player, err := audio.NewPlayer(audio.Options{
		SoundDir: cfg.Audio.SoundDir,
		Volume:   cfg.Audio.Volume,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer player.Close()

	for _, cue := range cues {
		fmt.Println(cue)
		player.Play(cue)
		player.Wait(audioDrainTimeout)
		time.Sleep(200 * time.Millisecond)
	}
}

// parseCues validates cue names; none means all of them.
func parseCues(args []string) ([]core.Cue, error) {
	if len(args) == 0 {
		return core.AllCues(), nil
	}
	known := make(map[core.Cue]bool)
	for _, c := range core.AllCues() {
		known[c] = true
	}
	cues := make([]core.Cue, 0, len(args))
	for _, a := range args {
		c := core.Cue(a)
		if !known[c] {
			return nil, fmt.Errorf("unknown cue %q", a)
		}
		cues = append(cues, c)
	}
	return cues, nil
}
