package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// LoadSamples reads <dir>/<cue>.wav for every cue. Missing files are
// skipped; the synthesized sound is used for those cues.
func LoadSamples(dir string, rate beep.SampleRate) (map[core.Cue]*beep.Buffer, error) {
	out := make(map[core.Cue]*beep.Buffer)
	if dir == "" {
		return out, nil
	}
	for _, cue := range core.AllCues() {
		path := filepath.Join(dir, string(cue)+".wav")
		buf, err := loadWAV(path, rate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out[cue] = buf
	}
	return out, nil
}

func loadWAV(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(4, format.SampleRate, rate, streamer)
	}
	format.SampleRate = rate
	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}

// Export writes the synthesized cues to <dir>/<cue>.wav so they can be
// edited and loaded back as samples.
func Export(dir string, rate beep.SampleRate) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	format := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	var written []string
	for _, cue := range core.AllCues() {
		path := filepath.Join(dir, string(cue)+".wav")
		f, err := os.Create(path)
		if err != nil {
			return written, err
		}
		err = wav.Encode(f, Synth(rate, cue), format)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return written, fmt.Errorf("encode %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
