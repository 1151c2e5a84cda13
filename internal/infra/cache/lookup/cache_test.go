package lookup

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCache(rdb, time.Minute), mr
}

func TestCache_SetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	clients := []domain.Client{{ID: 3, FirstName: "Ivan", LastName: "Petrov", Phone: "+79990001122"}}
	require.NoError(t, c.Set(ctx, KeyClients, clients))

	var got []domain.Client
	require.NoError(t, c.Get(ctx, KeyClients, &got))
	assert.Equal(t, clients, got)
}

func TestCache_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	var got []domain.Client
	err := c.Get(context.Background(), KeyClients, &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_TTLExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, KeyProviders, []domain.Provider{{ID: 5}}))
	mr.FastForward(2 * time.Minute)

	var got []domain.Provider
	err := c.Get(ctx, KeyProviders, &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestServicesKey(t *testing.T) {
	active := true
	category := "HAIRCUT"

	assert.Equal(t, "lookup:services:any:any", ServicesKey(nil, nil))
	assert.Equal(t, "lookup:services:true:any", ServicesKey(&active, nil))
	assert.Equal(t, "lookup:services:true:HAIRCUT", ServicesKey(&active, &category))
}

func TestCache_DeleteServices(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	active := true
	require.NoError(t, c.Set(ctx, ServicesKey(&active, nil), []domain.Service{{ID: 7}}))
	require.NoError(t, c.Set(ctx, ServicesKey(nil, nil), []domain.Service{{ID: 7}}))
	require.NoError(t, c.Set(ctx, KeyClients, []domain.Client{{ID: 3}}))

	require.NoError(t, c.DeleteServices(ctx))

	var services []domain.Service
	assert.ErrorIs(t, c.Get(ctx, ServicesKey(&active, nil), &services), ErrCacheMiss)
	assert.ErrorIs(t, c.Get(ctx, ServicesKey(nil, nil), &services), ErrCacheMiss)

	// Ключи других справочников не затронуты
	var clients []domain.Client
	require.NoError(t, c.Get(ctx, KeyClients, &clients))
}
