package web

import (
	"strconv"

	"github.com/aretw0/wilayah/pkg/domain"
)

// PageData is the template model of the filter page.
type PageData struct {
	Title   string
	Heading string
	Root    string
	Fields  []Field
	Crumbs  []domain.Crumb
	Cards   []Card
}

// Field is one dropdown. Each dropdown is its own GET form carrying only its
// ancestors, so choosing a value never resubmits stale descendants.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Disabled    bool
	Hidden      []Hidden
	Options     []SelectOption
}

// Hidden is an ancestor value carried by a field's form.
type Hidden struct {
	Name  string
	Value string
}

// SelectOption is one dropdown entry.
type SelectOption struct {
	ID       domain.RegionID
	Name     string
	Selected bool
}

// Card is one entry of the detail panel.
type Card struct {
	Level domain.Level
	Label string
	Name  string
}

// NewPageData builds the template model for v.
func NewPageData(v domain.View, heading string) PageData {
	sel := v.Selection
	data := PageData{
		Title:   "Wilayah",
		Heading: heading,
		Root:    domain.RootName,
		Crumbs:  v.Breadcrumb(),
	}

	province := Field{
		Name:        string(domain.LevelProvince),
		Label:       domain.LevelProvince.Label(),
		Placeholder: domain.LevelProvince.Placeholder(),
	}
	for _, p := range v.Provinces {
		province.Options = append(province.Options, SelectOption{ID: p.ID, Name: p.Name, Selected: sel.Province.Is(p.ID)})
	}

	regency := Field{
		Name:        string(domain.LevelRegency),
		Label:       domain.LevelRegency.Label(),
		Placeholder: domain.LevelRegency.Placeholder(),
		Disabled:    !sel.Province.Valid,
		Hidden:      hidden(sel, domain.LevelProvince),
	}
	for _, r := range v.Regencies {
		regency.Options = append(regency.Options, SelectOption{ID: r.ID, Name: r.Name, Selected: sel.Regency.Is(r.ID)})
	}

	district := Field{
		Name:        string(domain.LevelDistrict),
		Label:       domain.LevelDistrict.Label(),
		Placeholder: domain.LevelDistrict.Placeholder(),
		Disabled:    !sel.Regency.Valid,
		Hidden:      hidden(sel, domain.LevelProvince, domain.LevelRegency),
	}
	for _, d := range v.Districts {
		district.Options = append(district.Options, SelectOption{ID: d.ID, Name: d.Name, Selected: sel.District.Is(d.ID)})
	}

	data.Fields = []Field{province, regency, district}

	for _, c := range data.Crumbs {
		data.Cards = append(data.Cards, Card{Level: c.Level, Label: c.Level.CardLabel(), Name: c.Name})
	}
	return data
}

func hidden(sel domain.Selection, levels ...domain.Level) []Hidden {
	var out []Hidden
	for _, l := range levels {
		if id := sel.Get(l); id.Valid {
			out = append(out, Hidden{Name: string(l), Value: strconv.FormatInt(int64(id.ID), 10)})
		}
	}
	return out
}
