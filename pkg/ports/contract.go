package ports

import (
	"context"
	"testing"
	"time"

	"github.com/afrisecure/ussd/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSessionStoreContract runs a suite of tests to verify that a SessionStore
// implementation adheres to the defined interface contract.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	sessionID := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		s := domain.NewSession(sessionID, "balance", "pin", time.Now())
		s.Inputs = []string{"1234"}
		s.Result = &domain.Outcome{
			Kind:    domain.OutcomeBalance,
			Balance: &domain.BalanceResult{AvailableCents: 42000, LastTxCents: -5000, LastTxKind: "Transfer"},
		}

		err := store.Save(ctx, sessionID, s)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, s.FlowID, loaded.FlowID)
		assert.Equal(t, s.CurrentStateID, loaded.CurrentStateID)
		assert.Equal(t, []string{"1234"}, loaded.Inputs)
		require.NotNil(t, loaded.Result)
		assert.Equal(t, domain.OutcomeBalance, loaded.Result.Kind)
		require.NotNil(t, loaded.Result.Balance)
		assert.Equal(t, int64(42000), loaded.Result.Balance.AvailableCents)
	})

	t.Run("Load returns a copy", func(t *testing.T) {
		s := domain.NewSession(sessionID, "loan", "amount", time.Now())
		require.NoError(t, store.Save(ctx, sessionID, s))

		a, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		a.Inputs = append(a.Inputs, "500")
		a.CurrentStateID = "processing"

		b, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Empty(t, b.Inputs, "mutating a loaded snapshot must not leak into the store")
		assert.Equal(t, "amount", b.CurrentStateID)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.NewSession(sessionID, "router", "main", time.Now()))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, domain.NewSession(id1, "router", "main", time.Now()))
		_ = store.Save(ctx, id2, domain.NewSession(id2, "router", "main", time.Now()))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
