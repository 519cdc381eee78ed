// Package ussd is the high-level entry point for the AfriSecure USSD engine.
//
// It wires the built-in menu flows to the session runtime and exposes the
// driving surface hosts consume: Start, Submit, Advance, Reset, End, Render.
package ussd

import (
	"log/slog"

	"github.com/afrisecure/ussd/internal/runtime"
	"github.com/afrisecure/ussd/pkg/domain"
	"github.com/afrisecure/ussd/pkg/flows"
	"github.com/afrisecure/ussd/pkg/ports"
)

// Version is reported by the CLI.
const Version = "0.3.0"

// Service bundles the session engine with its flow registry.
type Service struct {
	Engine   ports.SessionEngine
	Registry *flows.Registry
}

// Option defines a functional option for configuring the Service.
type Option func(*builder)

type builder struct {
	flowOpts flows.Options
	extra    []*domain.Flow
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// WithFlowOptions configures the built-in flows (randomness source, clock,
// loan approval rate).
func WithFlowOptions(opts flows.Options) Option {
	return func(b *builder) { b.flowOpts = opts }
}

// WithFlows registers additional flows alongside the built-ins (e.g. loaded
// flow packs).
func WithFlows(extra ...*domain.Flow) Option {
	return func(b *builder) { b.extra = append(b.extra, extra...) }
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(b *builder) { b.hooks = hooks }
}

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(b *builder) { b.logger = logger }
}

// New initializes the service with the built-in AfriSecure flows.
func New(opts ...Option) (*Service, error) {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}

	registry := flows.Default(b.flowOpts)
	for _, f := range b.extra {
		if err := registry.Register(f); err != nil {
			return nil, err
		}
	}

	var engineOpts []runtime.Option
	if b.logger != nil {
		engineOpts = append(engineOpts, runtime.WithLogger(b.logger))
	}
	engineOpts = append(engineOpts, runtime.WithHooks(b.hooks))

	return &Service{
		Engine:   runtime.New(registry, engineOpts...),
		Registry: registry,
	}, nil
}
