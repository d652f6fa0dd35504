package game

import "fmt"

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrValidation rejects malformed setup input; the session stays in setup
	ErrValidation GameError = "invalid setup"

	// ErrPhaseComplete is a control signal: every player in the cycle has had a turn
	ErrPhaseComplete GameError = "phase complete"

	// ErrIllegalAction rejects an input without changing any state
	ErrIllegalAction GameError = "illegal action"

	// ErrWrongPhase is an illegal action attempted in the wrong phase
	ErrWrongPhase GameError = "not allowed in the current phase"

	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilRegistry      GameError = "role registry cannot be nil"
	ErrNilShuffler      GameError = "shuffler cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

func illegal(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrIllegalAction}, args...)...)
}

// wrongPhase wraps both ErrIllegalAction and ErrWrongPhase
func wrongPhase(op string, phase fmt.Stringer) error {
	return fmt.Errorf("%w: %w: %s during %s", ErrIllegalAction, ErrWrongPhase, op, phase)
}
