package ports

import (
	"context"

	"github.com/afrisecure/ussd/pkg/domain"
)

// SessionEngine is the driving surface of the session state machine. Host
// shells (gateway HTTP adapter, interactive CLI) consume this and nothing
// else; sessions are immutable snapshots and the engine never retains them.
type SessionEngine interface {
	// Start creates a fresh session at a flow's initial state.
	// Fails with domain.ErrUnknownFlow for unregistered flows.
	Start(ctx context.Context, flowID string) (*domain.Session, error)

	// Submit applies one raw user input. Invalid input is not an error: the
	// returned snapshot keeps its state and carries LastError for display.
	// Fails with domain.ErrSessionEnded on terminal sessions.
	Submit(ctx context.Context, s *domain.Session, rawInput string) (*domain.Session, error)

	// Advance resolves auto (interstitial) states, such as the loan
	// "processing" screen. It is a no-op on settled sessions.
	Advance(ctx context.Context, s *domain.Session) (*domain.Session, error)

	// Reset returns a fresh session for the same flow and ID, discarding
	// collected input and results.
	Reset(ctx context.Context, s *domain.Session) (*domain.Session, error)

	// End forces the universal terminal state, independent of the flow's own
	// terminal states.
	End(ctx context.Context, s *domain.Session) *domain.Session

	// Render derives the display text for a snapshot: "CON ..." while the
	// session continues, "END ..." once it is terminal. Pure; calling it
	// twice on the same snapshot yields identical text.
	Render(s *domain.Session) (string, error)
}
