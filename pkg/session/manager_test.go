package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/wilayah/internal/cascade"
	"github.com/aretw0/wilayah/pkg/adapters/memory"
	"github.com/aretw0/wilayah/pkg/adapters/redis"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/aretw0/wilayah/pkg/ports"
	"github.com/aretw0/wilayah/pkg/session"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowStore simulates latency to provoke lost updates if locking is missing.
type slowStore struct {
	mu   sync.Mutex
	data map[string]domain.Selection
}

func (s *slowStore) Save(ctx context.Context, sessionID string, sel domain.Selection) error {
	time.Sleep(2 * time.Millisecond)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		s.data = make(map[string]domain.Selection)
	}
	s.data[sessionID] = sel
	return nil
}

func (s *slowStore) Load(ctx context.Context, sessionID string) (domain.Selection, error) {
	time.Sleep(2 * time.Millisecond)
	s.mu.Lock()
	defer s.mu.Unlock()
	if sel, ok := s.data[sessionID]; ok {
		return sel, nil
	}
	return domain.Selection{}, domain.ErrSessionNotFound
}

func (s *slowStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

func (s *slowStore) List(ctx context.Context) ([]string, error) { return nil, nil }

// countingEngine increments the province id on every apply so lost updates show up.
type countingEngine struct{}

func (countingEngine) Apply(ctx context.Context, sel domain.Selection, action domain.Action) (domain.Selection, error) {
	next := sel.Province.ID + 1
	return domain.Selection{Province: domain.Some(next)}, nil
}

func (countingEngine) View(ctx context.Context, sel domain.Selection) (domain.View, error) {
	return domain.View{Selection: sel}, nil
}

func (countingEngine) Dataset() *domain.Dataset { return nil }

var _ ports.SelectionEngine = countingEngine{}

func TestManager_ApplySerialises(t *testing.T) {
	mgr := session.NewManager(&slowStore{}, countingEngine{})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := mgr.Apply(ctx, "race", domain.Action{Type: domain.ActionReset})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	sel, err := mgr.Load(ctx, "race")
	require.NoError(t, err)
	assert.Equal(t, domain.RegionID(20), sel.Province.ID, "every apply must observe the previous one")
}

func jabar() *domain.Dataset {
	return &domain.Dataset{
		Provinces: []domain.Province{{ID: 1, Name: "Jawa Barat"}},
		Regencies: []domain.Regency{{ID: 10, Name: "Bandung", ProvinceID: 1}},
		Districts: []domain.District{{ID: 100, Name: "Coblong", RegencyID: 10}},
	}
}

func TestManager_ApplyCascade(t *testing.T) {
	engine := cascade.NewEngine(cascade.WithDataset(jabar()))
	mgr := session.NewManager(memory.NewStore(), engine)
	ctx := context.Background()

	_, after, err := mgr.Apply(ctx, "s1", domain.Action{Type: domain.ActionSetProvince, ID: domain.Some(1)})
	require.NoError(t, err)
	assert.Equal(t, domain.Selection{Province: domain.Some(1)}, after)

	_, _, err = mgr.Apply(ctx, "s1", domain.Action{Type: domain.ActionSetRegency, ID: domain.Some(10)})
	require.NoError(t, err)
	_, _, err = mgr.Apply(ctx, "s1", domain.Action{Type: domain.ActionSetDistrict, ID: domain.Some(100)})
	require.NoError(t, err)

	before, after, err := mgr.Apply(ctx, "s1", domain.Action{Type: domain.ActionSetProvince, ID: domain.Some(1)})
	require.NoError(t, err)
	assert.True(t, before.District.Valid)
	assert.Equal(t, domain.Selection{Province: domain.Some(1)}, after)

	stored, err := mgr.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, after, stored)
}

func TestManager_NewSessionStaysReachable(t *testing.T) {
	engine := cascade.NewEngine(cascade.WithDataset(jabar()))
	store := memory.NewStore()
	mgr := session.NewManager(store, engine)
	ctx := context.Background()

	_, after, err := mgr.Apply(ctx, "fresh", domain.Action{Type: domain.ActionSetRegency, ID: domain.Some(10)})
	require.NoError(t, err)
	assert.Equal(t, domain.Selection{}, after)

	require.NoError(t, mgr.Save(ctx, "orphan", domain.Selection{Province: domain.Some(1), District: domain.Some(100)}))
	stored, err := store.Load(ctx, "orphan")
	require.NoError(t, err)
	assert.Equal(t, domain.Selection{Province: domain.Some(1)}, stored)
}

func TestManager_ApplyUnknownActionKeepsSession(t *testing.T) {
	engine := cascade.NewEngine(cascade.WithDataset(jabar()))
	store := memory.NewStore()
	mgr := session.NewManager(store, engine)
	ctx := context.Background()

	require.NoError(t, mgr.Save(ctx, "s1", domain.Selection{Province: domain.Some(1)}))

	_, _, err := mgr.Apply(ctx, "s1", domain.Action{Type: "teleport"})
	assert.ErrorIs(t, err, domain.ErrUnknownAction)

	stored, err := mgr.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.Selection{Province: domain.Some(1)}, stored)
}

func TestManager_LoadOrEmpty(t *testing.T) {
	mgr := session.NewManager(memory.NewStore(), nil)
	sel, err := mgr.LoadOrEmpty(context.Background(), "missing")
	require.NoError(t, err)
	assert.True(t, sel.IsEmpty())

	_, _, err = mgr.Apply(context.Background(), "missing", domain.Action{Type: domain.ActionReset})
	assert.Error(t, err)
}

func TestManager_DistributedLock(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redis.NewFromClient(client)
	locker := redis.NewLocker(client, redis.DefaultPrefix)
	engine := cascade.NewEngine(cascade.WithDataset(jabar()))
	mgr := session.NewManager(store, engine, session.WithLocker(locker), session.WithLockTTL(time.Second))
	ctx := context.Background()

	_, after, err := mgr.Apply(ctx, "dist", domain.Action{Type: domain.ActionSetProvince, ID: domain.Some(1)})
	require.NoError(t, err)
	assert.Equal(t, domain.Some(1), after.Province)
	assert.False(t, mr.Exists(redis.DefaultPrefix+"lock:dist"), "lock must be released after apply")
}

type failingLocker struct{}

func (failingLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	return nil, errors.New("boom")
}

func TestManager_LockFailure(t *testing.T) {
	mgr := session.NewManager(memory.NewStore(), nil, session.WithLocker(failingLocker{}))
	err := mgr.Save(context.Background(), "x", domain.Selection{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "distributed lock")
}
