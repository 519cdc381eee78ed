package flows

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/afrisecure/ussd/pkg/domain"
)

// Flow IDs of the built-in menus.
const (
	FlowRouter  = "router"
	FlowBalance = "balance"
	FlowLoan    = "loan"
	FlowReport  = "report"
	FlowTips    = "tips"
)

// Rand is the randomness source for non-deterministic outcomes (the loan
// approval draw). Injectable so tests can force both decisions.
type Rand interface {
	Float64() float64
}

type stdRand struct{}

func (stdRand) Float64() float64 { return rand.Float64() }

// Options configures the built-in flows.
type Options struct {
	// Rand drives the loan approval draw. Defaults to math/rand/v2.
	Rand Rand

	// Now supplies timestamps. Defaults to time.Now.
	Now func() time.Time

	// ApprovalRate is the loan approval probability. Defaults to 0.70.
	ApprovalRate float64
}

func (o Options) withDefaults() Options {
	if o.Rand == nil {
		o.Rand = stdRand{}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.ApprovalRate == 0 {
		o.ApprovalRate = 0.70
	}
	return o
}

// Registry holds the immutable menu definitions, keyed by flow ID.
type Registry struct {
	flows map[string]*domain.Flow
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{flows: make(map[string]*domain.Flow)}
}

// Default builds a registry with the five built-in AfriSecure flows.
func Default(opts Options) *Registry {
	opts = opts.withDefaults()

	r := NewRegistry()
	// Built-ins are statically known to validate; Register is still used so
	// a broken edit fails loudly at startup.
	for _, f := range []*domain.Flow{
		Router(),
		Balance(),
		Loan(opts),
		Report(opts),
		Tips(),
	} {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}
	return r
}

// Register validates and adds a flow. Registering a duplicate ID is an error.
func (r *Registry) Register(f *domain.Flow) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("invalid flow: %w", err)
	}
	if _, exists := r.flows[f.ID]; exists {
		return fmt.Errorf("flow %s already registered", f.ID)
	}
	r.flows[f.ID] = f
	return nil
}

// Get returns the flow for an ID, or domain.ErrUnknownFlow.
func (r *Registry) Get(flowID string) (*domain.Flow, error) {
	f, ok := r.flows[flowID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownFlow, flowID)
	}
	return f, nil
}

// IDs returns the registered flow IDs, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.flows))
	for id := range r.flows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
