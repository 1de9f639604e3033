package cascade_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/wilayah/internal/cascade"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	ds  *domain.Dataset
	err error
}

func (s stubLoader) Load(ctx context.Context) (*domain.Dataset, error) {
	return s.ds, s.err
}

func TestEngine_Unavailable(t *testing.T) {
	eng := cascade.NewEngine()
	assert.False(t, eng.Available())

	sel := domain.Selection{Province: domain.Some(1)}
	v, err := eng.View(context.Background(), sel)
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
	assert.Equal(t, sel, v.Selection)
	assert.Nil(t, v.Regencies, "no derivation against a missing dataset")
}

func TestEngine_LoadKeepsPreviousOnError(t *testing.T) {
	ctx := context.Background()
	var loaded []domain.Stats
	var failures []error
	eng := cascade.NewEngine(cascade.WithLifecycleHooks(domain.LifecycleHooks{
		OnDatasetLoaded: func(ctx context.Context, e *domain.DatasetEvent) {
			loaded = append(loaded, e.Stats)
		},
		OnDatasetError: func(ctx context.Context, err error) {
			failures = append(failures, err)
		},
	}))

	require.NoError(t, eng.Load(ctx, stubLoader{ds: jabar()}))
	assert.True(t, eng.Available())

	err := eng.Load(ctx, stubLoader{err: errors.New("connection refused")})
	assert.Error(t, err)
	assert.Equal(t, jabar(), eng.Dataset())

	err = eng.Load(ctx, stubLoader{})
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)

	require.Len(t, loaded, 1)
	assert.Equal(t, 2, loaded[0].Provinces)
	assert.Len(t, failures, 2)
}

func TestEngine_ApplyHooks(t *testing.T) {
	ctx := context.Background()
	var changes, resets []*domain.SelectionEvent
	eng := cascade.NewEngine(
		cascade.WithDataset(jabar()),
		cascade.WithLifecycleHooks(domain.LifecycleHooks{
			OnSelectionChange: func(ctx context.Context, e *domain.SelectionEvent) { changes = append(changes, e) },
			OnReset:           func(ctx context.Context, e *domain.SelectionEvent) { resets = append(resets, e) },
		}),
	)

	sel, err := eng.Apply(ctx, domain.Selection{}, domain.Action{Type: domain.ActionSetProvince, ID: domain.Some(1)})
	require.NoError(t, err)
	sel, err = eng.Apply(ctx, sel, domain.Action{Type: domain.ActionSetRegency, ID: domain.Some(10)})
	require.NoError(t, err)
	_, err = eng.Apply(ctx, sel, domain.Action{Type: domain.ActionReset})
	require.NoError(t, err)

	require.Len(t, changes, 2)
	assert.Equal(t, domain.LevelRegency, changes[1].Level)
	assert.True(t, changes[1].After.Regency.Is(10))

	require.Len(t, resets, 1)
	assert.Equal(t, domain.EventReset, resets[0].Type)
	assert.True(t, resets[0].After.IsEmpty())

	_, err = eng.Apply(ctx, sel, domain.Action{Type: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
	assert.Len(t, changes, 2, "failed actions do not fire hooks")
}

func TestEngine_View(t *testing.T) {
	eng := cascade.NewEngine(cascade.WithDataset(jabar()))
	v, err := eng.View(context.Background(), domain.Selection{Province: domain.Some(1), Regency: domain.Some(10)})
	require.NoError(t, err)
	assert.Len(t, v.Provinces, 2)
	assert.Len(t, v.Regencies, 2)
	assert.Len(t, v.Districts, 2)
	require.NotNil(t, v.Regency)
	assert.Equal(t, "Bandung", v.Regency.Name)
	assert.Nil(t, v.District)
}
