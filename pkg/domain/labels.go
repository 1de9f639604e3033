package domain

import "strings"

// RootName heads every breadcrumb.
const RootName = "Indonesia"

// Label is the field label shown next to the level's dropdown.
func (l Level) Label() string {
	switch l {
	case LevelProvince:
		return "Provinsi"
	case LevelRegency:
		return "Kota/Kabupaten"
	case LevelDistrict:
		return "Kecamatan"
	}
	return string(l)
}

// Placeholder is the dropdown entry meaning "unset".
func (l Level) Placeholder() string {
	return "Pilih " + l.Label()
}

// CardLabel is the heading of the level's detail card.
func (l Level) CardLabel() string {
	if l == LevelRegency {
		return "KOTA / KABUPATEN"
	}
	return strings.ToUpper(l.Label())
}
