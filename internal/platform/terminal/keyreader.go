package terminal

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// keyModel is a renderless Bubble Tea model that only turns key messages
// into intents.
type keyModel struct {
	intents *IntentBuffer
}

func (m keyModel) Init() tea.Cmd {
	return nil
}

func (m keyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	// Printable keys from one read arrive batched in a single message.
	if key.Type == tea.KeyRunes && !key.Alt {
		for _, r := range key.Runes {
			m.intents.Push(MapKey(string(r)))
		}
		return m, nil
	}
	m.intents.Push(MapKey(key.String()))
	return m, nil
}

func (m keyModel) View() string {
	return ""
}

// KeyReader decodes key presses from a byte stream using Bubble Tea's input
// parser. It never touches the output side; rendering is left to a Stream.
type KeyReader struct {
	intents *IntentBuffer
	program *tea.Program
	done    chan struct{}
}

// NewKeyReader starts decoding r. The caller is responsible for putting a
// local terminal into raw mode first. Reading stops when ctx ends or Close
// is called.
func NewKeyReader(ctx context.Context, r io.Reader) *KeyReader {
	intents := NewIntentBuffer()
	p := tea.NewProgram(
		keyModel{intents: intents},
		tea.WithContext(ctx),
		tea.WithInput(r),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)

	kr := &KeyReader{
		intents: intents,
		program: p,
		done:    make(chan struct{}),
	}
	go func() {
		defer close(kr.done)
		_, err := p.Run()
		if err != nil && ctx.Err() == nil && !errors.Is(err, tea.ErrProgramKilled) {
			intents.Fail(err)
		}
	}()
	return kr
}

// Drain implements core.IntentSource.
func (k *KeyReader) Drain() ([]core.Intent, error) {
	return k.intents.Drain()
}

// Close stops the decoder and waits for it to exit.
func (k *KeyReader) Close() {
	k.program.Kill()
	<-k.done
}
