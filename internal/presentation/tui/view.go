// Package tui renders the selection view for terminals.
package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/wilayah/pkg/domain"
)

// Breadcrumb formats the trail "Indonesia › Province › Regency › District".
func Breadcrumb(v domain.View) string {
	parts := []string{domain.RootName}
	for _, c := range v.Breadcrumb() {
		parts = append(parts, c.Name)
	}
	return strings.Join(parts, " › ")
}

// Markdown renders the breadcrumb and one detail entry per resolved level.
func Markdown(v domain.View) string {
	var sb strings.Builder
	sb.WriteString("# Wilayah\n\n")
	sb.WriteString(fmt.Sprintf("**%s**\n\n", Breadcrumb(v)))

	crumbs := v.Breadcrumb()
	if len(crumbs) == 0 {
		sb.WriteString("_Belum ada wilayah yang dipilih._\n")
		return sb.String()
	}
	for _, c := range crumbs {
		sb.WriteString(fmt.Sprintf("## %s\n\n%s `#%d`\n\n", c.Level.CardLabel(), c.Name, c.ID))
	}
	return sb.String()
}

// Options renders the candidate list for level as a numbered markdown list,
// numbered from 1, preceded by the placeholder as entry 0.
func Options(v domain.View, level domain.Level) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("### %s\n\n", level.Label()))
	sb.WriteString(fmt.Sprintf("0. _%s_\n", level.Placeholder()))
	for i, name := range OptionNames(v, level) {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, name))
	}
	return sb.String()
}

// OptionNames lists the names offered at level, in dataset order.
func OptionNames(v domain.View, level domain.Level) []string {
	var names []string
	switch level {
	case domain.LevelProvince:
		for _, p := range v.Provinces {
			names = append(names, p.Name)
		}
	case domain.LevelRegency:
		for _, r := range v.Regencies {
			names = append(names, r.Name)
		}
	case domain.LevelDistrict:
		for _, d := range v.Districts {
			names = append(names, d.Name)
		}
	}
	return names
}

// OptionID returns the id of the n-th (1-based) option at level.
func OptionID(v domain.View, level domain.Level, n int) (domain.RegionID, bool) {
	i := n - 1
	switch level {
	case domain.LevelProvince:
		if i >= 0 && i < len(v.Provinces) {
			return v.Provinces[i].ID, true
		}
	case domain.LevelRegency:
		if i >= 0 && i < len(v.Regencies) {
			return v.Regencies[i].ID, true
		}
	case domain.LevelDistrict:
		if i >= 0 && i < len(v.Districts) {
			return v.Districts[i].ID, true
		}
	}
	return 0, false
}
