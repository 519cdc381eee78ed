/*
Package domain contains the core domain models for the AfriSecure USSD engine.

It defines the fundamental entities of a menu-driven feature-phone session,
such as Flows, States, and the Session snapshot. This package is kept pure and
free of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Flow: An immutable menu definition (states, prompts, transition rules).
  - State: One position in a flow (prompt, validation, transition, outcome).
  - Session: The runtime snapshot of one dial-in (current state, inputs, result).
  - Outcome: The terminal result of a session (balance, loan decision, report
    reference, tip content).
*/
package domain
