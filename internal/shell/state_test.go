package shell

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "idle"},
		{StateAwaitingInput, "awaiting-input"},
		{StateProcessing, "processing"},
		{StateDisplayingResult, "displaying-result"},
		{StateTerminated, "terminated"},
		{State(99), "state(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from State
		to   State
		want bool
	}{
		{"start", StateIdle, StateAwaitingInput, true},
		{"begin processing", StateAwaitingInput, StateProcessing, true},
		{"quit", StateAwaitingInput, StateTerminated, true},
		{"finish processing", StateProcessing, StateDisplayingResult, true},
		{"back to prompt", StateDisplayingResult, StateAwaitingInput, true},

		{"idle cannot process", StateIdle, StateProcessing, false},
		{"idle cannot terminate", StateIdle, StateTerminated, false},
		{"prompt cannot display", StateAwaitingInput, StateDisplayingResult, false},
		{"processing cannot skip display", StateProcessing, StateAwaitingInput, false},
		{"processing cannot terminate", StateProcessing, StateTerminated, false},
		{"display cannot terminate", StateDisplayingResult, StateTerminated, false},
		{"display cannot reprocess", StateDisplayingResult, StateProcessing, false},
		{"terminated is final", StateTerminated, StateAwaitingInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("canTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
