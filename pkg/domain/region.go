package domain

import "strconv"

// RegionID identifies a record within its level.
// Ids are only unique per level: a Province and a Regency may share an id.
type RegionID int64

// String returns the decimal form used in query parameters.
func (id RegionID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Level is a depth in the administrative hierarchy.
type Level string

const (
	LevelProvince Level = "province"
	LevelRegency  Level = "regency"
	LevelDistrict Level = "district"
)

// Levels lists the hierarchy from the root down.
var Levels = []Level{LevelProvince, LevelRegency, LevelDistrict}

// Province is a top-level region. It has no parent.
type Province struct {
	ID   RegionID `json:"id" yaml:"id"`
	Name string   `json:"name" yaml:"name"`
}

// Regency is a city or regency (Kota/Kabupaten) inside a Province.
type Regency struct {
	ID         RegionID `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	ProvinceID RegionID `json:"province_id" yaml:"province_id"`
}

// District is a district (Kecamatan) inside a Regency.
type District struct {
	ID        RegionID `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	RegencyID RegionID `json:"regency_id" yaml:"regency_id"`
}

// Dataset is the full hierarchy as loaded from the static source.
// It is treated as read-only once loaded and may be shared between goroutines.
type Dataset struct {
	Provinces []Province `json:"provinces" yaml:"provinces"`
	Regencies []Regency  `json:"regencies" yaml:"regencies"`
	Districts []District `json:"districts" yaml:"districts"`
}

// Province returns the first province with the given id.
func (d *Dataset) Province(id RegionID) (Province, bool) {
	if d == nil {
		return Province{}, false
	}
	for _, p := range d.Provinces {
		if p.ID == id {
			return p, true
		}
	}
	return Province{}, false
}

// Regency returns the first regency with the given id.
func (d *Dataset) Regency(id RegionID) (Regency, bool) {
	if d == nil {
		return Regency{}, false
	}
	for _, r := range d.Regencies {
		if r.ID == id {
			return r, true
		}
	}
	return Regency{}, false
}

// District returns the first district with the given id.
func (d *Dataset) District(id RegionID) (District, bool) {
	if d == nil {
		return District{}, false
	}
	for _, dist := range d.Districts {
		if dist.ID == id {
			return dist, true
		}
	}
	return District{}, false
}

// Stats summarises the size of a dataset.
type Stats struct {
	Provinces int `json:"provinces"`
	Regencies int `json:"regencies"`
	Districts int `json:"districts"`
}

// Stats returns the record count per level.
func (d *Dataset) Stats() Stats {
	if d == nil {
		return Stats{}
	}
	return Stats{
		Provinces: len(d.Provinces),
		Regencies: len(d.Regencies),
		Districts: len(d.Districts),
	}
}
