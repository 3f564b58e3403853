package shell

import "fmt"

// State is the interactive loop's position in its lifecycle.
type State int

const (
	// StateIdle is the state before Run starts the loop.
	StateIdle State = iota
	// StateAwaitingInput means the shell is blocked on the prompt.
	StateAwaitingInput
	// StateProcessing means a request is being dispatched.
	StateProcessing
	// StateDisplayingResult means the last request's output is being printed.
	StateDisplayingResult
	// StateTerminated is the final state.
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingInput:
		return "awaiting-input"
	case StateProcessing:
		return "processing"
	case StateDisplayingResult:
		return "displaying-result"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// canTransition reports whether moving between two states is legal.
// Processing always passes through displaying-result, on success and
// failure alike. Commands like history and stats print from
// awaiting-input without entering processing at all.
func canTransition(from, to State) bool {
	switch from {
	case StateIdle:
		return to == StateAwaitingInput
	case StateAwaitingInput:
		return to == StateProcessing || to == StateTerminated
	case StateProcessing:
		return to == StateDisplayingResult
	case StateDisplayingResult:
		return to == StateAwaitingInput
	default:
		return false
	}
}
