package directory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarkyangjw/schedulease-web/internal/infra/cache/lookup"
	"github.com/clarkyangjw/schedulease-web/internal/integrations/schedcore"
	"github.com/clarkyangjw/schedulease-web/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type memCache struct {
	values      map[string][]byte
	unavailable bool
	deleted     []string
	svcFlushes  int
}

func newMemCache() *memCache {
	return &memCache{values: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string, out interface{}) error {
	if c.unavailable {
		return lookup.ErrCacheUnavailable
	}
	raw, ok := c.values[key]
	if !ok {
		return lookup.ErrCacheMiss
	}
	return json.Unmarshal(raw, out)
}

func (c *memCache) Set(_ context.Context, key string, value interface{}) error {
	if c.unavailable {
		return lookup.ErrCacheUnavailable
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = raw
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.values, key)
		c.deleted = append(c.deleted, key)
	}
	return nil
}

func (c *memCache) DeleteServices(context.Context) error {
	c.svcFlushes++
	for key := range c.values {
		delete(c.values, key)
	}
	return nil
}

type fakeSchedCore struct {
	SchedCoreClient

	listClientCalls  int
	listServiceCalls int
	clients          []schedcore.Client
	services         []schedcore.Service
	err              error

	lastServiceReq *schedcore.SaveServiceRequest
}

func (f *fakeSchedCore) ListClients(context.Context) ([]schedcore.Client, error) {
	f.listClientCalls++
	return f.clients, f.err
}

func (f *fakeSchedCore) ListServices(_ context.Context, _ *bool, _ *string) ([]schedcore.Service, error) {
	f.listServiceCalls++
	return f.services, f.err
}

func (f *fakeSchedCore) CreateService(_ context.Context, req *schedcore.SaveServiceRequest) (*schedcore.Service, error) {
	f.lastServiceReq = req
	return &schedcore.Service{ID: 7, Name: req.Name, Category: req.Category, Duration: req.Duration, IsActive: req.IsActive}, nil
}

func (f *fakeSchedCore) CreateClient(_ context.Context, req *schedcore.SaveClientRequest) (*schedcore.Client, error) {
	return &schedcore.Client{ID: 3, FirstName: req.FirstName, LastName: req.LastName, Phone: req.Phone}, nil
}

func TestClients_CacheMissThenHit(t *testing.T) {
	core := &fakeSchedCore{clients: []schedcore.Client{{ID: 1, FirstName: "Anna"}}}
	cache := newMemCache()
	svc := NewService(core, cache, nopLogger{})
	ctx := context.Background()

	first, err := svc.Clients(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, core.listClientCalls)

	second, err := svc.Clients(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, core.listClientCalls)
}

func TestClients_CacheUnavailableFallsThrough(t *testing.T) {
	core := &fakeSchedCore{clients: []schedcore.Client{{ID: 1}}}
	cache := newMemCache()
	cache.unavailable = true
	svc := NewService(core, cache, nopLogger{})

	clients, err := svc.Clients(context.Background())

	require.NoError(t, err)
	assert.Len(t, clients, 1)
	assert.Equal(t, 1, core.listClientCalls)
}

func TestCreateClient_InvalidatesListCache(t *testing.T) {
	core := &fakeSchedCore{clients: []schedcore.Client{{ID: 1}}}
	cache := newMemCache()
	svc := NewService(core, cache, nopLogger{})
	ctx := context.Background()

	_, err := svc.Clients(ctx)
	require.NoError(t, err)

	_, err = svc.CreateClient(ctx, ClientInput{FirstName: "Ivan", LastName: "Petrov", Phone: "+700"})
	require.NoError(t, err)

	assert.Contains(t, cache.deleted, lookup.KeyClients)

	_, err = svc.Clients(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, core.listClientCalls)
}

func TestCreateClient_Validation(t *testing.T) {
	svc := NewService(&fakeSchedCore{}, newMemCache(), nopLogger{})

	_, err := svc.CreateClient(context.Background(), ClientInput{FirstName: " ", LastName: "P", Phone: "1"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestServices_FilterVariantsCachedSeparately(t *testing.T) {
	core := &fakeSchedCore{services: []schedcore.Service{{ID: 7, Category: "HAIRCUT"}}}
	cache := newMemCache()
	svc := NewService(core, cache, nopLogger{})
	ctx := context.Background()

	_, err := svc.Services(ctx, ServicesFilter{})
	require.NoError(t, err)
	_, err = svc.Services(ctx, ServicesFilter{ActiveOnly: ptr.Ptr(true), Category: ptr.Ptr("HAIRCUT")})
	require.NoError(t, err)
	assert.Equal(t, 2, core.listServiceCalls)

	_, err = svc.Services(ctx, ServicesFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, core.listServiceCalls)
}

func TestServices_RejectsUnknownCategory(t *testing.T) {
	core := &fakeSchedCore{}
	svc := NewService(core, newMemCache(), nopLogger{})

	_, err := svc.Services(context.Background(), ServicesFilter{Category: ptr.Ptr("YOGA")})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, core.listServiceCalls)
}

func TestCreateService_FlushesAllServiceVariants(t *testing.T) {
	core := &fakeSchedCore{services: []schedcore.Service{{ID: 7, Category: "HAIRCUT"}}}
	cache := newMemCache()
	svc := NewService(core, cache, nopLogger{})
	ctx := context.Background()

	_, err := svc.Services(ctx, ServicesFilter{})
	require.NoError(t, err)

	_, err = svc.CreateService(ctx, ServiceInput{Name: "Cut", Category: "HAIRCUT", Duration: 30, IsActive: true})
	require.NoError(t, err)

	assert.Equal(t, 1, cache.svcFlushes)
}

func TestCreateService_ValidatesDurationAndPrice(t *testing.T) {
	svc := NewService(&fakeSchedCore{}, newMemCache(), nopLogger{})
	ctx := context.Background()

	_, err := svc.CreateService(ctx, ServiceInput{Name: "Cut", Category: "HAIRCUT", Duration: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateService(ctx, ServiceInput{Name: "Cut", Category: "HAIRCUT", Duration: 30, Price: ptr.Ptr(-1.0)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClients_UpstreamErrorsMapped(t *testing.T) {
	core := &fakeSchedCore{err: schedcore.ErrUnavailable}
	svc := NewService(core, newMemCache(), nopLogger{})

	_, err := svc.Clients(context.Background())

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}
