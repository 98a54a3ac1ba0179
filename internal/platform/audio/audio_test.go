package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// drain streams s to exhaustion and returns the number of samples and the
// peak amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("sample %v is not finite", v)
				}
				peak = math.Max(peak, math.Abs(v))
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer did not finish")
	return 0, 0
}

func TestSynthCuesAreFinite(t *testing.T) {
	for _, cue := range core.AllCues() {
		t.Run(string(cue), func(t *testing.T) {
			n, peak := drain(t, Synth(SampleRate, cue))
			if n == 0 {
				t.Error("cue produced no samples")
			}
			if n > SampleRate.N(2*time.Second) {
				t.Errorf("cue is %d samples, expected under two seconds", n)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak amplitude = %f, expected in (0, 1]", peak)
			}
		})
	}
}

func TestSynthUnknownCueIsSilent(t *testing.T) {
	n, _ := drain(t, Synth(SampleRate, core.Cue("move")))
	if n != 0 {
		t.Errorf("unknown cue produced %d samples", n)
	}
}

func TestBankVolume(t *testing.T) {
	_, loud := drain(t, NewBank(SampleRate, 1, nil).Streamer(core.CueWin))
	_, quiet := drain(t, NewBank(SampleRate, 0.25, nil).Streamer(core.CueWin))
	_, muted := drain(t, NewBank(SampleRate, 0, nil).Streamer(core.CueWin))

	if quiet >= loud {
		t.Errorf("quiet peak %f should be below loud peak %f", quiet, loud)
	}
	if muted != 0 {
		t.Errorf("muted peak = %f, expected 0", muted)
	}
}

func writeWAV(t *testing.T, path string, rate beep.SampleRate, d time.Duration) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	format := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, tone(rate, 440, d), format); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestLoadSamples(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, "pew.wav"), SampleRate, 100*time.Millisecond)
	writeWAV(t, filepath.Join(dir, "win.wav"), SampleRate/2, 100*time.Millisecond)

	samples, err := LoadSamples(dir, SampleRate)
	if err != nil {
		t.Fatalf("LoadSamples: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("loaded %d samples, expected 2", len(samples))
	}
	if got := samples[core.CuePew].Len(); got != SampleRate.N(100*time.Millisecond) {
		t.Errorf("pew has %d samples, expected %d", got, SampleRate.N(100*time.Millisecond))
	}
	if samples[core.CueWin].Len() == 0 {
		t.Error("resampled win sample is empty")
	}

	n, _ := drain(t, NewBank(SampleRate, 1, samples).Streamer(core.CuePew))
	if n != samples[core.CuePew].Len() {
		t.Errorf("bank streamed %d samples, expected the loaded sample", n)
	}
}

func TestLoadSamplesMissingDir(t *testing.T) {
	samples, err := LoadSamples(filepath.Join(t.TempDir(), "nope"), SampleRate)
	if err != nil {
		t.Fatalf("missing dir should not fail: %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("expected no samples, got %d", len(samples))
	}
}

func TestLoadSamplesCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "explode.wav"), []byte("not a wav"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSamples(dir, SampleRate); err == nil {
		t.Error("expected error for corrupt sample")
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	var sink core.CueSink = &r
	sink.Play(core.CueStartup)
	sink.Play(core.CuePew)

	got := r.Cues()
	if len(got) != 2 || got[0] != core.CueStartup || got[1] != core.CuePew {
		t.Errorf("Cues() = %v", got)
	}
	got[0] = core.CueLose
	if r.Cues()[0] != core.CueStartup {
		t.Error("Cues() should return a copy")
	}

	Nop{}.Play(core.CueWin)
}

func TestExportRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sounds")
	written, err := Export(dir, SampleRate)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(written) != len(core.AllCues()) {
		t.Fatalf("wrote %d files, expected %d", len(written), len(core.AllCues()))
	}

	samples, err := LoadSamples(dir, SampleRate)
	if err != nil {
		t.Fatalf("LoadSamples: %v", err)
	}
	for _, cue := range core.AllCues() {
		want, _ := drain(t, Synth(SampleRate, cue))
		buf, ok := samples[cue]
		if !ok {
			t.Errorf("%s was not loaded back", cue)
			continue
		}
		if buf.Len() != want {
			t.Errorf("%s has %d samples, expected %d", cue, buf.Len(), want)
		}
	}
}

func TestPendingCuesDrain(t *testing.T) {
	var p pendingCues
	if !p.wait(time.Millisecond) {
		t.Fatal("wait with nothing pending should return at once")
	}

	p.add()
	p.add()
	p.done()
	if p.wait(10 * time.Millisecond) {
		t.Fatal("wait returned with a cue still pending")
	}

	go p.done()
	if !p.wait(2 * time.Second) {
		t.Fatal("wait did not see the last cue finish")
	}

	p.done() // extra completion is ignored
	if !p.wait(time.Millisecond) {
		t.Error("count went negative")
	}
}

func TestPendingCuesRelease(t *testing.T) {
	var p pendingCues
	p.add()
	p.add()
	if p.wait(10 * time.Millisecond) {
		t.Fatal("wait returned with cues pending")
	}

	woke := make(chan bool, 1)
	go func() { woke <- p.wait(5 * time.Second) }()
	p.release()

	select {
	case ok := <-woke:
		if !ok {
			t.Error("waiter timed out instead of being released")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("release did not wake the waiter")
	}

	p.done()
	if !p.wait(time.Millisecond) {
		t.Error("late callback after release should be ignored")
	}

	p.add()
	if p.wait(time.Millisecond) {
		t.Error("a new cue after release should be tracked again")
	}
}
