package domain

import "time"

// StateEnded is the universal terminal state forced by an explicit
// "end session" action. It is implicitly declared in every flow.
const StateEnded = "ended"

// Session represents the snapshot of one dial-in. The engine treats sessions
// as immutable values: every operation returns a new snapshot rather than
// mutating in place, so replay and "try again" need no undo logic.
type Session struct {
	// ID is an opaque identifier, stable for the lifetime of the dial-in.
	ID string `json:"id"`

	// FlowID names the Flow governing this session.
	FlowID string `json:"flow_id"`

	// CurrentStateID is the session's position within the flow's state set,
	// or StateEnded after an explicit end.
	CurrentStateID string `json:"current_state_id"`

	// Inputs holds the raw input strings accepted so far, in submission
	// order. Rejected input is never recorded here.
	Inputs []string `json:"inputs,omitempty"`

	// Result is populated exactly once, when the session transitions into a
	// terminal state, and never mutated afterward.
	Result *Outcome `json:"result,omitempty"`

	// LastError carries an advisory message after rejected input. It is
	// display metadata, not a Go error: the session did not advance.
	LastError string `json:"last_error,omitempty"`

	// History tracks the state ids visited, for inspection and debugging.
	History []string `json:"history,omitempty"`

	StartedAt time.Time `json:"started_at"`
}

// NewSession creates a clean session at a flow's initial state.
func NewSession(id, flowID, initialStateID string, now time.Time) *Session {
	return &Session{
		ID:             id,
		FlowID:         flowID,
		CurrentStateID: initialStateID,
		History:        []string{initialStateID},
		StartedAt:      now,
	}
}

// Clone returns a deep copy so the caller can derive a new snapshot without
// aliasing the slices of the old one.
func (s *Session) Clone() *Session {
	c := *s
	c.Inputs = append([]string(nil), s.Inputs...)
	c.History = append([]string(nil), s.History...)
	if s.Result != nil {
		r := *s.Result
		c.Result = &r
	}
	return &c
}

// LastInput returns the most recently accepted input, or "" for a fresh
// session.
func (s *Session) LastInput() string {
	if len(s.Inputs) == 0 {
		return ""
	}
	return s.Inputs[len(s.Inputs)-1]
}
