package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afrisecure/ussd/pkg/domain"
)

func TestSession_Clone(t *testing.T) {
	s := domain.NewSession("s1", "balance", "pin", time.Now())
	s.Inputs = []string{"1234"}
	s.Result = &domain.Outcome{Kind: domain.OutcomeBalance, Balance: &domain.BalanceResult{AvailableCents: 42000}}

	c := s.Clone()
	require.Equal(t, s, c)

	c.Inputs = append(c.Inputs, "9")
	c.History = append(c.History, "result")
	c.Result.Kind = domain.OutcomeNotice

	assert.Equal(t, []string{"1234"}, s.Inputs)
	assert.Equal(t, []string{"pin"}, s.History)
	assert.Equal(t, domain.OutcomeBalance, s.Result.Kind)
}

func TestSession_LastInput(t *testing.T) {
	s := domain.NewSession("s1", "loan", "amount", time.Now())
	assert.Equal(t, "", s.LastInput())

	s.Inputs = []string{"500", "1"}
	assert.Equal(t, "1", s.LastInput())
}

func TestFlow_StateEndedImplicit(t *testing.T) {
	f := &domain.Flow{ID: "f", Initial: "a", States: map[string]domain.State{}}

	st, ok := f.State(domain.StateEnded)
	require.True(t, ok)
	assert.True(t, st.Terminal)

	_, ok = f.State("missing")
	assert.False(t, ok)
}

func TestFlow_Validate(t *testing.T) {
	prompt := func(domain.Session) string { return "pick" }
	next := func(domain.Session, string) domain.Target { return domain.Target{StateID: "done"} }
	final := func(domain.Session) string { return "bye" }

	valid := &domain.Flow{
		ID:      "f",
		Initial: "menu",
		States: map[string]domain.State{
			"menu": {Prompt: prompt, Next: next},
			"done": {Terminal: true, Final: final},
		},
	}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name string
		flow *domain.Flow
		want string
	}{
		{
			name: "missing id",
			flow: &domain.Flow{Initial: "menu", States: map[string]domain.State{"menu": {Prompt: prompt, Next: next}}},
			want: "no id",
		},
		{
			name: "undeclared initial",
			flow: &domain.Flow{ID: "f", Initial: "nope", States: map[string]domain.State{"menu": {Prompt: prompt, Next: next}}},
			want: "initial state",
		},
		{
			name: "non-terminal without transition",
			flow: &domain.Flow{ID: "f", Initial: "menu", States: map[string]domain.State{"menu": {Prompt: prompt}}},
			want: "no transition",
		},
		{
			name: "non-terminal without prompt",
			flow: &domain.Flow{ID: "f", Initial: "menu", States: map[string]domain.State{"menu": {Next: next}}},
			want: "no prompt",
		},
		{
			name: "terminal without final text",
			flow: &domain.Flow{ID: "f", Initial: "menu", States: map[string]domain.State{"menu": {Terminal: true}}},
			want: "no final text",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.flow.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestFlow_ValidateAutoState(t *testing.T) {
	// Auto states need a transition but no prompt is required.
	f := &domain.Flow{
		ID:      "f",
		Initial: "work",
		States: map[string]domain.State{
			"work": {Auto: true, Next: func(domain.Session, string) domain.Target { return domain.Target{StateID: "done"} }},
			"done": {Terminal: true, Final: func(domain.Session) string { return "bye" }},
		},
	}
	assert.NoError(t, f.Validate())
}
