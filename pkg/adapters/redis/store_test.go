package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisAdapter "github.com/afrisecure/ussd/pkg/adapters/redis"
	"github.com/afrisecure/ussd/pkg/domain"
	"github.com/afrisecure/ussd/pkg/ports"
)

func newTestStore(t *testing.T, opts ...redisAdapter.Option) (*redisAdapter.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisAdapter.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunSessionStoreContract(t, store)
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	store, mr := newTestStore(t, redisAdapter.WithPrefix("test:sessions:"))
	ctx := context.Background()

	s := domain.NewSession("abc", "router", "main", time.Now())
	require.NoError(t, store.Save(ctx, "abc", s))

	assert.True(t, mr.Exists("test:sessions:abc"))
	assert.False(t, mr.Exists("ussd:session:abc"))
}

func TestRedisStore_TTL(t *testing.T) {
	store, mr := newTestStore(t, redisAdapter.WithTTL(10*time.Minute))
	ctx := context.Background()

	s := domain.NewSession("expiring", "loan", "amount", time.Now())
	require.NoError(t, store.Save(ctx, "expiring", s))

	ttl := mr.TTL("ussd:session:expiring")
	assert.Equal(t, 10*time.Minute, ttl)

	// Past the TTL the session is gone and List no longer reports it.
	mr.FastForward(11 * time.Minute)

	_, err := store.Load(ctx, "expiring")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	sessions, err := store.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, sessions, "expiring")
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	s := domain.NewSession("rt", "report", "selection", time.Now().UTC().Truncate(time.Second))
	s.Inputs = []string{"2"}
	s.CurrentStateID = "submitted"
	s.History = append(s.History, "submitted")
	s.Result = &domain.Outcome{
		Kind:   domain.OutcomeReport,
		Report: &domain.ReportResult{ReferenceID: "#ASF000042", Category: "Unauthorized Transaction"},
	}

	require.NoError(t, store.Save(ctx, "rt", s))
	loaded, err := store.Load(ctx, "rt")
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}
