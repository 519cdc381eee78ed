package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSessionStart EventType = "session_start"
	EventInput        EventType = "input"
	EventInvalidInput EventType = "invalid_input"
	EventSessionEnd   EventType = "session_end"
)

// SessionEvent describes one engine occurrence for observability hooks.
type SessionEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
	FlowID    string    `json:"flow_id"`
	StateID   string    `json:"state_id"`
	Input     string    `json:"input,omitempty"`
	Outcome   string    `json:"outcome,omitempty"` // OutcomeKind, session_end only
}

// LifecycleHooks defines callbacks for engine observability. Hooks run
// synchronously on the engine's call path and must be fast; nil hooks are
// skipped.
type LifecycleHooks struct {
	OnSessionStart func(context.Context, *SessionEvent)
	OnInput        func(context.Context, *SessionEvent)
	OnInvalidInput func(context.Context, *SessionEvent)
	OnSessionEnd   func(context.Context, *SessionEvent)
}
