package domain

import "errors"

// ErrUnknownFlow is returned when a flow ID is not present in the registry.
// It indicates a configuration or programmer error, not user input.
var ErrUnknownFlow = errors.New("unknown flow")

// ErrUnknownState is returned when a session points at a state its flow does
// not declare.
var ErrUnknownState = errors.New("unknown state")

// ErrSessionEnded is returned when input is submitted to a session already in
// a terminal state. Recovery is to reset or start a new session.
var ErrSessionEnded = errors.New("session ended")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")
