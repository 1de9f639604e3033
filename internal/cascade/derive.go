package cascade

import "github.com/aretw0/wilayah/pkg/domain"

// RegencyOptions returns the regencies of the given province in dataset order.
// Duplicates in the source pass through. The result is empty (never nil) when
// provinceID is unset or matches nothing.
func RegencyOptions(ds *domain.Dataset, provinceID domain.NullID) []domain.Regency {
	out := []domain.Regency{}
	if ds == nil || !provinceID.Valid {
		return out
	}
	for _, r := range ds.Regencies {
		if r.ProvinceID == provinceID.ID {
			out = append(out, r)
		}
	}
	return out
}

// DistrictOptions returns the districts of the given regency in dataset order.
func DistrictOptions(ds *domain.Dataset, regencyID domain.NullID) []domain.District {
	out := []domain.District{}
	if ds == nil || !regencyID.Valid {
		return out
	}
	for _, d := range ds.Districts {
		if d.RegencyID == regencyID.ID {
			out = append(out, d)
		}
	}
	return out
}

// Resolved holds the records matching a Selection. A nil field is unresolved.
type Resolved struct {
	Province *domain.Province
	Regency  *domain.Regency
	District *domain.District
}

// Resolve looks up the selected records for display.
//
// A level resolves only if its parent resolved and the record actually belongs
// to that parent. Stale ids (for example after a dataset reload) and
// inconsistent ids coming from a hand-edited URL therefore render as
// "nothing selected at that level" instead of showing a regency from another province.
func Resolve(ds *domain.Dataset, sel domain.Selection) Resolved {
	var res Resolved
	if ds == nil || !sel.Province.Valid {
		return res
	}

	p, ok := ds.Province(sel.Province.ID)
	if !ok {
		return res
	}
	res.Province = &p

	if !sel.Regency.Valid {
		return res
	}
	r, ok := ds.Regency(sel.Regency.ID)
	if !ok || r.ProvinceID != p.ID {
		return res
	}
	res.Regency = &r

	if !sel.District.Valid {
		return res
	}
	d, ok := ds.District(sel.District.ID)
	if !ok || d.RegencyID != r.ID {
		return res
	}
	res.District = &d
	return res
}

// BuildView assembles the presentation contract for sel.
// Provinces is the static top-level list and is shared with the dataset.
func BuildView(ds *domain.Dataset, sel domain.Selection) domain.View {
	res := Resolve(ds, sel)
	v := domain.View{
		Selection: sel,
		Provinces: []domain.Province{},
		Regencies: RegencyOptions(ds, sel.Province),
		Districts: DistrictOptions(ds, sel.Regency),
		Province:  res.Province,
		Regency:   res.Regency,
		District:  res.District,
	}
	if ds != nil && ds.Provinces != nil {
		v.Provinces = ds.Provinces
	}
	return v
}
