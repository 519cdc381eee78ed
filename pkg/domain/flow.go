package domain

import "fmt"

// Target is the destination of a transition. An empty FlowID stays within the
// current flow. A non-empty FlowID delegates the session to another flow
// (router dispatch): the engine re-homes the session at that flow's initial
// state.
type Target struct {
	FlowID  string
	StateID string
}

// Generator computes the terminal result for a session from its accepted
// input history. Generators must not mutate global state; they may consult
// the immutable reference data they were built with.
type Generator func(s Session) (Outcome, error)

// State describes one position in a flow's state graph.
type State struct {
	// Prompt renders the display text for a non-terminal state. It receives
	// the session so it can echo already-collected input.
	Prompt func(s Session) string

	// Final renders the display text for a terminal state from s.Result.
	Final func(s Session) string

	// Terminal marks a sink state. Terminal states accept no further input.
	Terminal bool

	// Auto marks an interstitial that advances without user input (the loan
	// "processing" screen). The host decides when to resolve it.
	Auto bool

	// Validate checks raw input before it is accepted. A nil Validate
	// accepts anything. The returned error text becomes Session.LastError.
	Validate func(input string) error

	// Next maps accepted input to the transition target. For Auto states it
	// is called with input "".
	Next func(s Session, input string) Target

	// Outcome is invoked when the session transitions into this state, if
	// the state is terminal.
	Outcome Generator
}

// Flow is an immutable menu definition, shared process-wide by all sessions.
// No session may mutate a Flow.
type Flow struct {
	ID      string
	Initial string
	States  map[string]State
}

// State looks up a state descriptor. StateEnded is implicitly declared in
// every flow.
func (f *Flow) State(id string) (State, bool) {
	if id == StateEnded {
		return State{Terminal: true}, true
	}
	st, ok := f.States[id]
	return st, ok
}

// Validate checks the structural invariants of the definition: the initial
// state exists, non-terminal states can transition, and terminal states can
// render.
func (f *Flow) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("flow has no id")
	}
	if _, ok := f.States[f.Initial]; !ok {
		return fmt.Errorf("flow %s: initial state %q not declared", f.ID, f.Initial)
	}
	for id, st := range f.States {
		if st.Terminal {
			if st.Final == nil {
				return fmt.Errorf("flow %s: terminal state %q has no final text", f.ID, id)
			}
			continue
		}
		if st.Next == nil {
			return fmt.Errorf("flow %s: state %q has no transition", f.ID, id)
		}
		if !st.Auto && st.Prompt == nil {
			return fmt.Errorf("flow %s: state %q has no prompt", f.ID, id)
		}
	}
	return nil
}
