// Package runtime implements the session engine: the state-transition core
// that drives one USSD session through its flow's state graph, one input at a
// time. Sessions are treated as immutable snapshots; every operation returns
// a new value, which keeps the machine testable independent of any host shell
// and makes "try again" a plain restart.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/afrisecure/ussd/internal/logging"
	"github.com/afrisecure/ussd/pkg/domain"
	"github.com/afrisecure/ussd/pkg/flows"
	"github.com/afrisecure/ussd/pkg/ports"
)

// Engine drives sessions through the registered flows. It holds no session
// state of its own; hosts own the snapshots.
type Engine struct {
	registry *flows.Registry
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	now      func() time.Time
	newID    func() string
}

var _ ports.SessionEngine = (*Engine)(nil)

// maxAutoHops caps automatic transitions per Advance call. The built-in flows
// chain at most one; a misdeclared pack flow must not spin forever.
const maxAutoHops = 8

// Option configures the Engine.
type Option func(*Engine)

// WithLogger configures a logger for engine events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithHooks installs observability callbacks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) { e.hooks = hooks }
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDFunc overrides session ID minting (tests).
func WithIDFunc(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// New creates an engine over the given flow registry.
func New(registry *flows.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		logger:   logging.NewNop(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start creates a fresh session at the flow's initial state.
func (e *Engine) Start(ctx context.Context, flowID string) (*domain.Session, error) {
	flow, err := e.registry.Get(flowID)
	if err != nil {
		return nil, err
	}

	s := domain.NewSession(e.newID(), flow.ID, flow.Initial, e.now())
	e.logger.Debug("session started", "session_id", s.ID, "flow", flow.ID)
	e.emit(ctx, e.hooks.OnSessionStart, domain.EventSessionStart, s, "")
	return s, nil
}

// Submit applies one raw user input to the session.
//
// Invalid input is part of normal interactive flow, not an error: the
// returned snapshot keeps its state and inputs, and carries the advisory
// message in LastError. Structural misuse (terminal session, automatic
// state) is returned as an error.
func (e *Engine) Submit(ctx context.Context, s *domain.Session, rawInput string) (*domain.Session, error) {
	flow, st, err := e.resolve(s)
	if err != nil {
		return nil, err
	}
	if st.Terminal {
		return nil, fmt.Errorf("%w: session %s is terminal at %q", domain.ErrSessionEnded, s.ID, s.CurrentStateID)
	}
	if st.Auto {
		return nil, fmt.Errorf("state %q of flow %s expects no input; advance the session instead", s.CurrentStateID, s.FlowID)
	}

	if st.Validate != nil {
		if verr := st.Validate(rawInput); verr != nil {
			next := s.Clone()
			next.LastError = verr.Error()
			e.logger.Debug("input rejected", "session_id", s.ID, "flow", s.FlowID, "state", s.CurrentStateID, "reason", verr.Error())
			e.emit(ctx, e.hooks.OnInvalidInput, domain.EventInvalidInput, next, rawInput)
			return next, nil
		}
	}

	next := s.Clone()
	next.LastError = ""
	next.Inputs = append(next.Inputs, rawInput)
	e.emit(ctx, e.hooks.OnInput, domain.EventInput, next, rawInput)

	return e.apply(ctx, next, flow, st.Next(*next, rawInput))
}

// Advance resolves automatic interstitial states (the loan "processing"
// screen) until the session settles on an input-gated or terminal state. It
// is a no-op on settled sessions, so a pending advance against a snapshot
// that was since reset or ended is harmless.
func (e *Engine) Advance(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	cur := s
	for hop := 0; hop < maxAutoHops; hop++ {
		flow, st, err := e.resolve(cur)
		if err != nil {
			return nil, err
		}
		if !st.Auto {
			return cur, nil
		}
		cur, err = e.apply(ctx, cur.Clone(), flow, st.Next(*cur, ""))
		if err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("flow %s: automatic states loop at %q", cur.FlowID, cur.CurrentStateID)
}

// Reset returns a fresh session for the same flow and ID, discarding all
// collected input and results.
func (e *Engine) Reset(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	flow, err := e.registry.Get(s.FlowID)
	if err != nil {
		return nil, err
	}
	next := domain.NewSession(s.ID, flow.ID, flow.Initial, e.now())
	e.logger.Debug("session reset", "session_id", s.ID, "flow", flow.ID)
	e.emit(ctx, e.hooks.OnSessionStart, domain.EventSessionStart, next, "")
	return next, nil
}

// End forces the universal terminal state, independent of the flow's own
// terminal states. Ending an already-terminal session is a no-op.
func (e *Engine) End(ctx context.Context, s *domain.Session) *domain.Session {
	if _, st, err := e.resolve(s); err == nil && st.Terminal {
		return s
	}
	next := s.Clone()
	next.CurrentStateID = domain.StateEnded
	next.LastError = ""
	next.History = append(next.History, domain.StateEnded)
	e.logger.Debug("session ended by host", "session_id", s.ID, "flow", s.FlowID)
	e.emit(ctx, e.hooks.OnSessionEnd, domain.EventSessionEnd, next, "")
	return next
}

// apply moves the session to the transition target, delegating to another
// flow when the target names one, and computes the outcome on terminal entry.
func (e *Engine) apply(ctx context.Context, next *domain.Session, flow *domain.Flow, target domain.Target) (*domain.Session, error) {
	if target.FlowID != "" && target.FlowID != flow.ID {
		sub, err := e.registry.Get(target.FlowID)
		if err != nil {
			return nil, fmt.Errorf("flow %s delegates to unregistered flow: %w", flow.ID, err)
		}
		// The sub-flow's input positions start fresh; the dispatch digit
		// belongs to the router, not to it.
		next.FlowID = sub.ID
		next.CurrentStateID = sub.Initial
		next.Inputs = nil
		next.History = append(next.History, sub.ID+"/"+sub.Initial)
		e.logger.Debug("session delegated", "session_id", next.ID, "from", flow.ID, "to", sub.ID)
		return next, nil
	}

	st, ok := flow.States[target.StateID]
	if !ok {
		return nil, fmt.Errorf("%w: flow %s has no state %q", domain.ErrUnknownState, flow.ID, target.StateID)
	}

	next.CurrentStateID = target.StateID
	next.History = append(next.History, target.StateID)

	if st.Terminal && next.Result == nil && st.Outcome != nil {
		outcome, err := st.Outcome(*next)
		if err != nil {
			return nil, fmt.Errorf("outcome for %s/%s: %w", flow.ID, target.StateID, err)
		}
		next.Result = &outcome
		e.logger.Debug("session completed", "session_id", next.ID, "flow", flow.ID, "state", target.StateID, "outcome", string(outcome.Kind))
		e.emit(ctx, e.hooks.OnSessionEnd, domain.EventSessionEnd, next, "")
	}
	return next, nil
}

// resolve looks up the session's flow and current state descriptor.
func (e *Engine) resolve(s *domain.Session) (*domain.Flow, domain.State, error) {
	flow, err := e.registry.Get(s.FlowID)
	if err != nil {
		return nil, domain.State{}, err
	}
	st, ok := flow.State(s.CurrentStateID)
	if !ok {
		return nil, domain.State{}, fmt.Errorf("%w: flow %s has no state %q", domain.ErrUnknownState, s.FlowID, s.CurrentStateID)
	}
	return flow, st, nil
}

func (e *Engine) emit(ctx context.Context, fn func(context.Context, *domain.SessionEvent), typ domain.EventType, s *domain.Session, input string) {
	if fn == nil {
		return
	}
	ev := &domain.SessionEvent{
		Timestamp: e.now(),
		Type:      typ,
		SessionID: s.ID,
		FlowID:    s.FlowID,
		StateID:   s.CurrentStateID,
		Input:     input,
	}
	if typ == domain.EventSessionEnd && s.Result != nil {
		ev.Outcome = string(s.Result.Kind)
	}
	fn(ctx, ev)
}
