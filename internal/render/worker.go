package render

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Worker drains a FrameQueue into a Renderer. It owns the Output for its
// whole lifetime, including cursor visibility.
type Worker struct {
	renderer *Renderer
	out      Output
	queue    *FrameQueue
	logger   *log.Logger
	frames   int
}

// NewWorker creates a worker rendering frames from queue onto out.
func NewWorker(out Output, queue *FrameQueue, logger *log.Logger) *Worker {
	return &Worker{
		renderer: NewRenderer(out),
		out:      out,
		queue:    queue,
		logger:   logger,
	}
}

// Run hides the cursor, paints a blank screen, then renders queued frames in
// order until the queue is closed and drained. The cursor is shown again on
// return. An output error stops the worker and closes the queue.
func (w *Worker) Run() (err error) {
	w.out.SetCursorVisible(false)
	defer func() {
		w.out.SetCursorVisible(true)
		if flushErr := w.out.Flush(); err == nil && flushErr != nil {
			err = flushErr
		}
		if err != nil {
			w.queue.Close()
		}
		w.logger.Debug("render worker stopped", "frames", w.frames, "writes", w.renderer.Writes())
	}()

	if _, err := w.renderer.Draw(core.NewFrame(), true); err != nil {
		return err
	}

	for {
		f, ok := w.queue.Receive()
		if !ok {
			return nil
		}
		if _, err := w.renderer.Draw(f, false); err != nil {
			return err
		}
		w.frames++
	}
}

// Frames returns how many queued frames have been rendered.
// Only meaningful after Run has returned.
func (w *Worker) Frames() int {
	return w.frames
}
