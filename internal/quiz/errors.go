package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidModuleIndex is returned by StartModule for an index outside
	// the bank.
	ErrInvalidModuleIndex = errors.New("invalid module index")

	// ErrUnknownOption is returned by Select when the option does not belong
	// to the current question.
	ErrUnknownOption = errors.New("option is not part of the current question")

	// ErrAlreadyAnswered is returned by Select once the current question has
	// an answer. The first answer stands until Advance.
	ErrAlreadyAnswered = errors.New("question already answered")

	// ErrIllegalTransition marks an operation called in a state that does not
	// allow it. Match with errors.Is; the concrete type is *TransitionError.
	ErrIllegalTransition = errors.New("illegal state transition")
)

// TransitionError reports which operation was attempted in which state.
type TransitionError struct {
	Op       string
	Phase    Phase
	Answered bool
}

func (e *TransitionError) Error() string {
	if e.Phase == PhasePlaying {
		state := "unanswered"
		if e.Answered {
			state = "answered"
		}
		return fmt.Sprintf("%s: %v while %s/%s", e.Op, ErrIllegalTransition, e.Phase, state)
	}
	return fmt.Sprintf("%s: %v while %s", e.Op, ErrIllegalTransition, e.Phase)
}

// Is reports whether target is ErrIllegalTransition.
func (e *TransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}
