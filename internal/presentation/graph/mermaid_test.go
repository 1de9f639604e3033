package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/wilayah/internal/presentation/graph"
	"github.com/aretw0/wilayah/pkg/domain"
)

func dataset() *domain.Dataset {
	return &domain.Dataset{
		Provinces: []domain.Province{{ID: 32, Name: "Jawa Barat"}, {ID: 33, Name: "Jawa Tengah"}},
		Regencies: []domain.Regency{
			{ID: 3273, Name: "Kota Bandung", ProvinceID: 32},
			{ID: 3374, Name: "Kota Semarang", ProvinceID: 33},
		},
		Districts: []domain.District{
			{ID: 327301, Name: "Coblong", RegencyID: 3273},
			{ID: 337401, Name: "Tembalang", RegencyID: 3374},
		},
	}
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		opts     graph.Options
		overlay  *graph.GraphOverlay
		contains []string
		excludes []string
	}{
		{
			name: "Level Shapes",
			contains: []string{
				"graph TD",
				`root(("Indonesia"))`,
				`p_32["Jawa Barat"]`,
				`r_3273("Kota Bandung")`,
				`d_327301(["Coblong"])`,
				"root --> p_32",
				"p_32 --> r_3273",
				"r_3273 --> d_327301",
			},
		},
		{
			name:     "Province Scope",
			opts:     graph.Options{Province: domain.Some(33)},
			contains: []string{"p_33", "r_3374", "d_337401"},
			excludes: []string{"p_32", "r_3273", "d_327301"},
		},
		{
			name:     "Depth Limit",
			opts:     graph.Options{Depth: domain.LevelRegency},
			contains: []string{"r_3273", "r_3374"},
			excludes: []string{"d_327301", "Coblong"},
		},
		{
			name: "Selection Overlay",
			overlay: &graph.GraphOverlay{Selection: domain.Selection{
				Province: domain.Some(32),
				Regency:  domain.Some(3273),
			}},
			contains: []string{
				"classDef current",
				"class root visited;",
				"class p_32 visited;",
				"class r_3273 current;",
			},
			excludes: []string{"class d_327301"},
		},
		{
			name:     "Empty Overlay",
			overlay:  &graph.GraphOverlay{},
			contains: []string{"classDef visited"},
			excludes: []string{"class root visited;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(dataset(), tt.opts, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("expected output to not contain %q, got:\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestGenerateMermaid_NilDataset(t *testing.T) {
	got := graph.GenerateMermaid(nil, graph.Options{}, nil)
	if strings.TrimSpace(got) != "graph TD\n    root((\"Indonesia\"))" {
		t.Errorf("unexpected output for nil dataset:\n%s", got)
	}
}

func TestGenerateMermaid_EscapesQuotes(t *testing.T) {
	ds := &domain.Dataset{Provinces: []domain.Province{{ID: 1, Name: `Daerah "Istimewa"`}}}
	got := graph.GenerateMermaid(ds, graph.Options{}, nil)
	if !strings.Contains(got, `p_1["Daerah 'Istimewa'"]`) {
		t.Errorf("quotes not escaped:\n%s", got)
	}
}
