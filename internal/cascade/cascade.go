// Package cascade implements the region selection state machine: the three
// set operations with their cascading clears, reset, and the derivations a
// presentation layer renders from a Selection.
package cascade

import (
	"fmt"

	"github.com/aretw0/wilayah/pkg/domain"
)

// SetProvince selects id (or clears the province when id is unset).
// Regency and district are always cleared: they belonged to the previous province.
func SetProvince(sel domain.Selection, id domain.NullID) domain.Selection {
	return domain.Selection{Province: id}
}

// SetRegency selects id and clears the district.
// The id is not checked against the current province; callers offer only
// options derived from it. Without a province there is nothing to pick a
// regency from, so sel is returned settled but otherwise unchanged.
func SetRegency(sel domain.Selection, id domain.NullID) domain.Selection {
	sel = Settle(sel)
	if !sel.Province.Valid {
		return sel
	}
	sel.Regency = id
	sel.District = domain.None()
	return sel
}

// SetDistrict selects id. It is the leaf level, so nothing cascades.
// Without a regency the call is ignored like SetRegency without a province.
func SetDistrict(sel domain.Selection, id domain.NullID) domain.Selection {
	sel = Settle(sel)
	if !sel.Regency.Valid {
		return sel
	}
	sel.District = id
	return sel
}

// Settle drops the levels of sel that have no parent: a regency without a
// province, a district without a regency, and everything below them.
// Selections arriving from clients or stores are settled before use.
func Settle(sel domain.Selection) domain.Selection {
	if !sel.Province.Valid {
		return domain.Selection{}
	}
	if !sel.Regency.Valid {
		sel.District = domain.None()
	}
	return sel
}

// Reset returns the initial, empty selection.
func Reset() domain.Selection {
	return domain.Selection{}
}

// Apply dispatches a typed action to the matching operation.
// The incoming selection is settled first, so the result is always reachable.
func Apply(sel domain.Selection, action domain.Action) (domain.Selection, error) {
	sel = Settle(sel)
	switch action.Type {
	case domain.ActionSetProvince:
		return SetProvince(sel, action.ID), nil
	case domain.ActionSetRegency:
		return SetRegency(sel, action.ID), nil
	case domain.ActionSetDistrict:
		return SetDistrict(sel, action.ID), nil
	case domain.ActionReset:
		return Reset(), nil
	}
	return sel, fmt.Errorf("%w: %q", domain.ErrUnknownAction, action.Type)
}
