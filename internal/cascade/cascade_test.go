package cascade_test

import (
	"math/rand"
	"testing"

	"github.com/aretw0/wilayah/internal/cascade"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachable enumerates one selection per reachable state plus a few id variations.
func reachable() []domain.Selection {
	return []domain.Selection{
		{},
		{Province: domain.Some(1)},
		{Province: domain.Some(1), Regency: domain.Some(10)},
		{Province: domain.Some(1), Regency: domain.Some(10), District: domain.Some(100)},
		{Province: domain.Some(2), Regency: domain.Some(20), District: domain.Some(200)},
		{Province: domain.Some(99), Regency: domain.Some(999), District: domain.Some(9999)},
	}
}

func TestSetProvince_ClearsChildren(t *testing.T) {
	for _, sel := range reachable() {
		for _, id := range []domain.NullID{domain.None(), domain.Some(1), domain.Some(2), domain.Some(404)} {
			got := cascade.SetProvince(sel, id)
			assert.Equal(t, id, got.Province)
			assert.False(t, got.Regency.Valid, "regency must be cleared from %+v", sel)
			assert.False(t, got.District.Valid, "district must be cleared from %+v", sel)
		}
	}
}

func TestSetRegency_ClearsDistrict(t *testing.T) {
	for _, sel := range reachable() {
		if !sel.Province.Valid {
			continue
		}
		got := cascade.SetRegency(sel, domain.Some(11))
		assert.Equal(t, sel.Province, got.Province, "province is untouched")
		assert.True(t, got.Regency.Is(11))
		assert.False(t, got.District.Valid)
	}
}

func TestSetDistrict_NoCascade(t *testing.T) {
	sel := domain.Selection{Province: domain.Some(1), Regency: domain.Some(10)}
	got := cascade.SetDistrict(sel, domain.Some(101))
	assert.Equal(t, domain.Selection{Province: domain.Some(1), Regency: domain.Some(10), District: domain.Some(101)}, got)

	got = cascade.SetDistrict(got, domain.None())
	assert.Equal(t, sel, got)
}

func TestSetWithoutParent_IsIgnored(t *testing.T) {
	assert.Equal(t, domain.Selection{}, cascade.SetRegency(domain.Selection{}, domain.Some(10)))

	sel := domain.Selection{Province: domain.Some(1)}
	assert.Equal(t, sel, cascade.SetDistrict(sel, domain.Some(100)))
	assert.Equal(t, domain.Selection{}, cascade.SetDistrict(domain.Selection{}, domain.Some(100)))
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Selection
		want domain.Selection
	}{
		{name: "empty", in: domain.Selection{}, want: domain.Selection{}},
		{name: "regency without province", in: domain.Selection{Regency: domain.Some(10), District: domain.Some(100)}, want: domain.Selection{}},
		{name: "district without regency", in: domain.Selection{Province: domain.Some(1), District: domain.Some(100)}, want: domain.Selection{Province: domain.Some(1)}},
		{name: "full", in: domain.Selection{Province: domain.Some(1), Regency: domain.Some(10), District: domain.Some(100)}, want: domain.Selection{Province: domain.Some(1), Regency: domain.Some(10), District: domain.Some(100)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cascade.Settle(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Reachable())
		})
	}
}

func TestApply_SettlesIncomingSelection(t *testing.T) {
	orphan := domain.Selection{Regency: domain.Some(10), District: domain.Some(100)}
	got, err := cascade.Apply(orphan, domain.Action{Type: domain.ActionSetDistrict, ID: domain.Some(101)})
	require.NoError(t, err)
	assert.Equal(t, domain.Selection{}, got)

	got, err = cascade.Apply(domain.Selection{Province: domain.Some(1), District: domain.Some(100)},
		domain.Action{Type: domain.ActionSetRegency, ID: domain.Some(10)})
	require.NoError(t, err)
	assert.Equal(t, domain.Selection{Province: domain.Some(1), Regency: domain.Some(10)}, got)
}

func TestReset(t *testing.T) {
	for _, sel := range reachable() {
		got, err := cascade.Apply(sel, domain.Action{Type: domain.ActionReset, ID: domain.Some(5)})
		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
		assert.Equal(t, cascade.Reset(), got)
	}
}

func TestApply_UnknownAction(t *testing.T) {
	sel := domain.Selection{Province: domain.Some(1)}
	got, err := cascade.Apply(sel, domain.Action{Type: "jump"})
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
	assert.Equal(t, sel, got, "selection is unchanged on error")
}

// Random walks over the four actions never leave the reachable states.
func TestApply_RandomWalkStaysReachable(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	types := []domain.ActionType{
		domain.ActionSetProvince,
		domain.ActionSetRegency,
		domain.ActionSetDistrict,
		domain.ActionReset,
	}

	sel := domain.Selection{}
	for i := 0; i < 2000; i++ {
		typ := types[rng.Intn(len(types))]
		id := domain.None()
		if rng.Intn(5) > 0 {
			id = domain.Some(domain.RegionID(rng.Intn(4)))
		}
		var err error
		sel, err = cascade.Apply(sel, domain.Action{Type: typ, ID: id})
		require.NoError(t, err)
		require.True(t, sel.Reachable(), "step %d produced %+v", i, sel)
	}
}
