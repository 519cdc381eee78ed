package flows

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afrisecure/ussd/pkg/domain"
)

func TestDigitsExactly(t *testing.T) {
	check := digitsExactly(4)

	for _, ok := range []string{"0000", "1234", "9999"} {
		assert.NoError(t, check(ok), ok)
	}
	for _, bad := range []string{"", "123", "12345", "12a4", "12.4", " 123", "一二三四"} {
		assert.Error(t, check(bad), bad)
	}
}

func TestIntBetween(t *testing.T) {
	check := intBetween(50, 5000)

	cases := []struct {
		input string
		ok    bool
	}{
		{"50", true},
		{"5000", true},
		{"420", true},
		{"49", false},
		{"5001", false},
		{"0", false},
		{"-100", false},
		{"500.5", false},
		{"abc", false},
		{"", false},
	}
	for _, tc := range cases {
		err := check(tc.input)
		if tc.ok {
			assert.NoError(t, err, tc.input)
		} else {
			assert.Error(t, err, tc.input)
		}
	}
}

func TestOneOf(t *testing.T) {
	check := oneOf("1", "2", "3")

	assert.NoError(t, check("2"))
	for _, bad := range []string{"0", "4", "11", "", "one"} {
		assert.Error(t, check(bad), bad)
	}
}

func TestFormatRand(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{42000, "R 420.00"},
		{-5000, "-R 50.00"},
		{0, "R 0.00"},
		{5, "R 0.05"},
		{100, "R 1.00"},
		{123456789, "R 1234567.89"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatRand(tc.cents))
	}
}

func TestDefault_RegistersBuiltins(t *testing.T) {
	r := Default(Options{})

	assert.Equal(t, []string{FlowBalance, FlowLoan, FlowReport, FlowRouter, FlowTips}, r.IDs())

	for _, id := range r.IDs() {
		f, err := r.Get(id)
		require.NoError(t, err)
		require.NoError(t, f.Validate())
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("airtime")
	assert.ErrorIs(t, err, domain.ErrUnknownFlow)
}

func TestRegistry_RejectsDuplicate(t *testing.T) {
	r := Default(Options{})

	err := r.Register(Balance())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestNewReferenceID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ref := newReferenceID()
		require.Len(t, ref, 10)
		assert.True(t, strings.HasPrefix(ref, "#ASF"))
		for _, r := range ref[4:] {
			assert.True(t, r >= '0' && r <= '9', ref)
		}
		seen[ref] = true
	}
	// Collisions in 50 draws over a million-value space would point at a
	// broken derivation.
	assert.Greater(t, len(seen), 45)
}

func TestTipTopics_MatchMenu(t *testing.T) {
	require.Len(t, tipTopics, 3)
	for digit, topic := range tipTopics {
		assert.Contains(t, tipsPrompt, digit+". "+topic.Title)
		assert.NotEmpty(t, topic.Content)
	}
}

func TestReportCategories_MatchMenu(t *testing.T) {
	require.Len(t, reportCategories, 3)
	for digit, category := range reportCategories {
		assert.Contains(t, reportPrompt, digit+". "+category)
	}
}
