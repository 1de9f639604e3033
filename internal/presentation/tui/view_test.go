package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/wilayah/internal/presentation/tui"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func view() domain.View {
	return domain.View{
		Selection: domain.Selection{Province: domain.Some(1), Regency: domain.Some(10)},
		Provinces: []domain.Province{{ID: 1, Name: "Jawa Barat"}, {ID: 2, Name: "Jawa Tengah"}},
		Regencies: []domain.Regency{{ID: 10, Name: "Kota Bandung", ProvinceID: 1}},
		Districts: []domain.District{{ID: 100, Name: "Coblong", RegencyID: 10}},
		Province:  &domain.Province{ID: 1, Name: "Jawa Barat"},
		Regency:   &domain.Regency{ID: 10, Name: "Kota Bandung", ProvinceID: 1},
	}
}

func TestBreadcrumb(t *testing.T) {
	assert.Equal(t, "Indonesia › Jawa Barat › Kota Bandung", tui.Breadcrumb(view()))
	assert.Equal(t, "Indonesia", tui.Breadcrumb(domain.View{}))
}

func TestMarkdown(t *testing.T) {
	md := tui.Markdown(view())
	assert.Contains(t, md, "## PROVINSI\n\nJawa Barat")
	assert.Contains(t, md, "## KOTA / KABUPATEN\n\nKota Bandung")
	assert.NotContains(t, md, "KECAMATAN")

	empty := tui.Markdown(domain.View{})
	assert.Contains(t, empty, "Belum ada wilayah")
}

func TestOptions(t *testing.T) {
	md := tui.Options(view(), domain.LevelProvince)
	assert.Contains(t, md, "0. _Pilih Provinsi_")
	assert.Contains(t, md, "2. Jawa Tengah")

	id, ok := tui.OptionID(view(), domain.LevelProvince, 2)
	require.True(t, ok)
	assert.Equal(t, domain.RegionID(2), id)

	_, ok = tui.OptionID(view(), domain.LevelDistrict, 2)
	assert.False(t, ok)
	_, ok = tui.OptionID(view(), domain.LevelDistrict, 0)
	assert.False(t, ok)
}

func TestRenderers(t *testing.T) {
	out, err := tui.Plain("# x")
	require.NoError(t, err)
	assert.Equal(t, "# x", out)

	out, err = tui.NewStyledRenderer("notty")(tui.Markdown(view()))
	require.NoError(t, err)
	assert.Contains(t, out, "Kota Bandung")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf)
	assert.Greater(t, strings.Count(buf.String(), "\n"), 4)
}
