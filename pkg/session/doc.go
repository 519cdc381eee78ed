/*
Package session orchestrates concurrent access to persisted session
snapshots.

The Manager serializes operations per session ID with reference-counted
in-process locks, and optionally coordinates across replicas through a
distributed locker. Gateways retry callbacks, so two requests for the same
session may overlap; everything else in the engine is free of shared state.
*/
package session
