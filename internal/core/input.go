package core

// Intent is a discrete user action, abstracted from physical key presses.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentShoot
	IntentQuit
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	case IntentShoot:
		return "Shoot"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IntentSource supplies the intents buffered since the previous tick.
// Drain never blocks; it returns them in arrival order. A non-nil error means
// the input channel is broken and the session must end.
type IntentSource interface {
	Drain() ([]Intent, error)
}
