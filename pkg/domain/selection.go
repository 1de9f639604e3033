package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NullID is a RegionID that may be unset, in the manner of sql.NullInt64.
// The zero value is unset.
type NullID struct {
	ID    RegionID
	Valid bool
}

// Some returns a set NullID holding id.
func Some(id RegionID) NullID {
	return NullID{ID: id, Valid: true}
}

// None returns an unset NullID.
func None() NullID {
	return NullID{}
}

// Is reports whether n is set and equal to id.
func (n NullID) Is(id RegionID) bool {
	return n.Valid && n.ID == id
}

// String returns the decimal id, or an empty string when unset.
func (n NullID) String() string {
	if !n.Valid {
		return ""
	}
	return n.ID.String()
}

// MarshalJSON encodes an unset id as null.
func (n NullID) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(int64(n.ID))
}

// UnmarshalJSON accepts null or an integer.
func (n *NullID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = NullID{}
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("region id: %w", err)
	}
	*n = Some(RegionID(v))
	return nil
}

// Selection is the user's current position in the hierarchy.
//
// Reachable selections satisfy: Regency set implies Province set, and
// District set implies Regency set. The cascade operations keep it that way.
type Selection struct {
	Province NullID `json:"province"`
	Regency  NullID `json:"regency"`
	District NullID `json:"district"`
}

// IsEmpty reports whether nothing is selected.
func (s Selection) IsEmpty() bool {
	return !s.Province.Valid && !s.Regency.Valid && !s.District.Valid
}

// Depth returns the deepest selected level, or an empty Level when nothing is selected.
func (s Selection) Depth() Level {
	switch {
	case s.District.Valid:
		return LevelDistrict
	case s.Regency.Valid:
		return LevelRegency
	case s.Province.Valid:
		return LevelProvince
	default:
		return ""
	}
}

// Reachable reports whether s is one of the four states the cascade can produce.
func (s Selection) Reachable() bool {
	if s.Regency.Valid && !s.Province.Valid {
		return false
	}
	if s.District.Valid && !s.Regency.Valid {
		return false
	}
	return true
}

// Get returns the id selected at the given level.
func (s Selection) Get(level Level) NullID {
	switch level {
	case LevelProvince:
		return s.Province
	case LevelRegency:
		return s.Regency
	case LevelDistrict:
		return s.District
	}
	return NullID{}
}
