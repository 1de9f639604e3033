package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/wilayah/pkg/domain"
)

// Options scopes the exported tree.
type Options struct {
	// Province limits the tree to one province when set.
	Province domain.NullID
	// Depth is the deepest level drawn; empty means districts.
	Depth domain.Level
}

// GraphOverlay marks the current selection on the tree.
type GraphOverlay struct {
	Selection domain.Selection
}

// GenerateMermaid produces a Mermaid flowchart of the region hierarchy.
// Shapes follow the level:
// - Root: ((Circle))
// - Province: [Rectangle]
// - Regency: (Rounded)
// - District: ([Stadium])
// Ancestors of the selection are styled "visited", its deepest level "current".
func GenerateMermaid(ds *domain.Dataset, opts Options, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString("    root((\"Indonesia\"))\n")
	if ds == nil {
		return sb.String()
	}

	depth := levelRank(opts.Depth)
	drawn := make(map[string]bool)

	for _, p := range ds.Provinces {
		if opts.Province.Valid && p.ID != opts.Province.ID {
			continue
		}
		pid := nodeID(domain.LevelProvince, p.ID)
		drawn[pid] = true
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", pid, escapeLabel(p.Name)))
		sb.WriteString(fmt.Sprintf("    root --> %s\n", pid))
	}

	if depth >= 1 {
		for _, r := range ds.Regencies {
			parent := nodeID(domain.LevelProvince, r.ProvinceID)
			if !drawn[parent] {
				continue
			}
			rid := nodeID(domain.LevelRegency, r.ID)
			drawn[rid] = true
			sb.WriteString(fmt.Sprintf("    %s(\"%s\")\n", rid, escapeLabel(r.Name)))
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", parent, rid))
		}
	}

	if depth >= 2 {
		for _, d := range ds.Districts {
			parent := nodeID(domain.LevelRegency, d.RegencyID)
			if !drawn[parent] {
				continue
			}
			did := nodeID(domain.LevelDistrict, d.ID)
			drawn[did] = true
			sb.WriteString(fmt.Sprintf("    %s([\"%s\"])\n", did, escapeLabel(d.Name)))
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", parent, did))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast on either theme.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		var path []string
		for _, level := range domain.Levels {
			id := overlay.Selection.Get(level)
			if !id.Valid {
				break
			}
			n := nodeID(level, id.ID)
			if !drawn[n] {
				break
			}
			path = append(path, n)
		}
		if len(path) > 0 {
			sb.WriteString("    class root visited;\n")
			for i, n := range path {
				class := "visited"
				if i == len(path)-1 {
					class = "current"
				}
				sb.WriteString(fmt.Sprintf("    class %s %s;\n", n, class))
			}
		}
	}

	return sb.String()
}

func levelRank(l domain.Level) int {
	switch l {
	case domain.LevelProvince:
		return 0
	case domain.LevelRegency:
		return 1
	default:
		return 2
	}
}

// nodeID prefixes ids with their level since the levels share a number space.
func nodeID(level domain.Level, id domain.RegionID) string {
	s := fmt.Sprintf("%s_%d", level[:1], id)
	return sanitizeMermaidID(s)
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "n")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
