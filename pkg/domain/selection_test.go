package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullID_JSON(t *testing.T) {
	sel := Selection{Province: Some(32), Regency: Some(3273)}

	b, err := json.Marshal(sel)
	require.NoError(t, err)
	assert.JSONEq(t, `{"province":32,"regency":3273,"district":null}`, string(b))

	var back Selection
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, sel, back)
}

func TestNullID_UnmarshalInvalid(t *testing.T) {
	var n NullID
	err := json.Unmarshal([]byte(`"abc"`), &n)
	assert.Error(t, err)
}

func TestSelection_Reachable(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want bool
	}{
		{"empty", Selection{}, true},
		{"province", Selection{Province: Some(1)}, true},
		{"province and regency", Selection{Province: Some(1), Regency: Some(10)}, true},
		{"full", Selection{Province: Some(1), Regency: Some(10), District: Some(100)}, true},
		{"regency without province", Selection{Regency: Some(10)}, false},
		{"district without regency", Selection{Province: Some(1), District: Some(100)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.Reachable())
		})
	}
}

func TestSelection_Depth(t *testing.T) {
	assert.Equal(t, Level(""), Selection{}.Depth())
	assert.Equal(t, LevelProvince, Selection{Province: Some(1)}.Depth())
	assert.Equal(t, LevelDistrict, Selection{Province: Some(1), Regency: Some(2), District: Some(3)}.Depth())
	assert.True(t, Selection{}.IsEmpty())
}

func TestAction_Validate(t *testing.T) {
	assert.NoError(t, Action{Type: ActionReset}.Validate())
	assert.ErrorIs(t, Action{Type: "jump"}.Validate(), ErrUnknownAction)

	a, err := SetAction(LevelRegency, Some(10))
	require.NoError(t, err)
	assert.Equal(t, ActionSetRegency, a.Type)
	assert.Equal(t, LevelRegency, a.Level())

	_, err = SetAction("village", Some(1))
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestView_Breadcrumb(t *testing.T) {
	v := View{
		Province: &Province{ID: 1, Name: "Jawa Barat"},
		District: &District{ID: 100, Name: "Coblong", RegencyID: 10},
	}
	// District without a resolved regency is not reachable from the crumb trail.
	crumbs := v.Breadcrumb()
	require.Len(t, crumbs, 1)
	assert.Equal(t, "Jawa Barat", crumbs[0].Name)

	v.Regency = &Regency{ID: 10, Name: "Bandung", ProvinceID: 1}
	crumbs = v.Breadcrumb()
	require.Len(t, crumbs, 3)
	assert.Equal(t, LevelDistrict, crumbs[2].Level)
}

func TestDataset_Lookup(t *testing.T) {
	ds := &Dataset{
		Provinces: []Province{{ID: 1, Name: "Jawa Barat"}},
		Regencies: []Regency{{ID: 10, Name: "Bandung", ProvinceID: 1}},
	}
	p, ok := ds.Province(1)
	assert.True(t, ok)
	assert.Equal(t, "Jawa Barat", p.Name)

	_, ok = ds.District(100)
	assert.False(t, ok)

	var nilDS *Dataset
	_, ok = nilDS.Regency(10)
	assert.False(t, ok)
	assert.Equal(t, Stats{}, nilDS.Stats())
}

func TestLevelLabels(t *testing.T) {
	assert.Equal(t, "Pilih Provinsi", LevelProvince.Placeholder())
	assert.Equal(t, "Pilih Kota/Kabupaten", LevelRegency.Placeholder())
	assert.Equal(t, "Pilih Kecamatan", LevelDistrict.Placeholder())
	assert.Equal(t, "PROVINSI", LevelProvince.CardLabel())
	assert.Equal(t, "KOTA / KABUPATEN", LevelRegency.CardLabel())
	assert.Equal(t, "KECAMATAN", LevelDistrict.CardLabel())
}
