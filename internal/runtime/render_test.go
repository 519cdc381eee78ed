package runtime_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afrisecure/ussd/pkg/flows"
)

func TestRender_Prompt(t *testing.T) {
	engine := newEngine(t, alwaysApprove)
	ctx := context.Background()

	s, err := engine.Start(ctx, flows.FlowRouter)
	require.NoError(t, err)

	screen, err := engine.Render(s)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(screen, "CON "))
	assert.Contains(t, screen, "Welcome to AfriSecure Finance")
	assert.Contains(t, screen, "1. View Balance")
	assert.NotContains(t, screen, "Invalid input")
}

func TestRender_InvalidInputBanner(t *testing.T) {
	engine := newEngine(t, alwaysApprove)
	ctx := context.Background()

	s, err := engine.Start(ctx, flows.FlowLoan)
	require.NoError(t, err)
	s, err = engine.Submit(ctx, s, "10")
	require.NoError(t, err)

	screen, err := engine.Render(s)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(screen, "CON Invalid input: "))
	// The original prompt follows the banner so the user can retry.
	assert.Contains(t, screen, "Enter loan amount (ZAR):")

	// A subsequent valid input clears the banner.
	s, err = engine.Submit(ctx, s, "100")
	require.NoError(t, err)
	screen, err = engine.Render(s)
	require.NoError(t, err)
	assert.NotContains(t, screen, "Invalid input")
}

func TestRender_Idempotent(t *testing.T) {
	engine := newEngine(t, alwaysApprove)
	ctx := context.Background()

	s, err := engine.Start(ctx, flows.FlowTips)
	require.NoError(t, err)
	s, err = engine.Submit(ctx, s, "2")
	require.NoError(t, err)

	first, err := engine.Render(s)
	require.NoError(t, err)
	second, err := engine.Render(s)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "END "))
}

func TestRender_ForcedEnd(t *testing.T) {
	engine := newEngine(t, alwaysApprove)
	ctx := context.Background()

	s, err := engine.Start(ctx, flows.FlowBalance)
	require.NoError(t, err)
	ended := engine.End(ctx, s)

	screen, err := engine.Render(ended)
	require.NoError(t, err)
	assert.Equal(t, "END Session ended.\n\nThank you for using AfriSecure Finance.", screen)
}
