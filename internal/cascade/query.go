package cascade

import (
	"strconv"
	"strings"

	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/aretw0/wilayah/pkg/ports"
)

// Query parameter keys. Each holds the decimal id when set and is absent when unset.
const (
	ParamProvince = "province"
	ParamRegency  = "regency"
	ParamDistrict = "district"
)

// ParseID parses a query value. Empty or non-integer values are unset.
func ParseID(raw string) domain.NullID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.None()
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return domain.None()
	}
	return domain.Some(domain.RegionID(v))
}

// Decode reads a Selection from the store.
// The result is always reachable: a regency without a province and a district
// without a regency are dropped, as is everything below a dropped level.
func Decode(store ports.ParamStore) domain.Selection {
	var sel domain.Selection
	if raw, ok := store.Get(ParamProvince); ok {
		sel.Province = ParseID(raw)
	}
	if !sel.Province.Valid {
		return sel
	}
	if raw, ok := store.Get(ParamRegency); ok {
		sel.Regency = ParseID(raw)
	}
	if !sel.Regency.Valid {
		return sel
	}
	if raw, ok := store.Get(ParamDistrict); ok {
		sel.District = ParseID(raw)
	}
	return sel
}

// Encode writes sel to the store, deleting the keys of unset levels.
// Only the reachable prefix of sel is written, so the keys always satisfy
// regency => province and district => regency.
func Encode(sel domain.Selection, store ports.ParamStore) {
	sel = Settle(sel)
	put(store, ParamProvince, sel.Province)
	put(store, ParamRegency, sel.Regency)
	put(store, ParamDistrict, sel.District)
}

func put(store ports.ParamStore, key string, id domain.NullID) {
	if !id.Valid {
		store.Delete(key)
		return
	}
	store.Set(key, id.ID.String())
}

// Normalized reports whether the raw store content already equals the encoding of
// its decoded Selection. Hosts redirect when it does not, so the address bar never
// shows a district without its regency.
func Normalized(store ports.ParamStore) bool {
	sel := Decode(store)
	for _, level := range domain.Levels {
		raw, present := store.Get(string(level))
		want := sel.Get(level)
		if present != want.Valid {
			return false
		}
		if present && raw != want.ID.String() {
			return false
		}
	}
	return true
}
