package domain

// View is the presentation contract: the current Selection, the option lists for
// each dropdown and the records resolved from the selected ids.
//
// A nil resolved record means "nothing selected at that level", either because the
// level is unset or because the id did not resolve against the dataset.
type View struct {
	Selection Selection  `json:"selection"`
	Provinces []Province `json:"provinces"`
	Regencies []Regency  `json:"regencies"`
	Districts []District `json:"districts"`

	Province *Province `json:"province,omitempty"`
	Regency  *Regency  `json:"regency,omitempty"`
	District *District `json:"district,omitempty"`
}

// Crumb is one entry of a breadcrumb trail.
type Crumb struct {
	Level Level    `json:"level"`
	ID    RegionID `json:"id"`
	Name  string   `json:"name"`
}

// Breadcrumb returns the resolved records from the root down to the deepest resolved level.
func (v View) Breadcrumb() []Crumb {
	var out []Crumb
	if v.Province == nil {
		return out
	}
	out = append(out, Crumb{Level: LevelProvince, ID: v.Province.ID, Name: v.Province.Name})
	if v.Regency == nil {
		return out
	}
	out = append(out, Crumb{Level: LevelRegency, ID: v.Regency.ID, Name: v.Regency.Name})
	if v.District == nil {
		return out
	}
	out = append(out, Crumb{Level: LevelDistrict, ID: v.District.ID, Name: v.District.Name})
	return out
}
