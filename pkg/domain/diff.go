package domain

// SelectionDiff represents the changes between two selections.
// It is designed to be serialized to JSON for partial updates on the client.
type SelectionDiff struct {
	// Changed holds the new value of every level that differs, in hierarchy order.
	// An unset level is encoded as null.
	Changed map[Level]NullID `json:"changed"`

	// Cleared lists the levels that were set before and are unset now.
	// Levels cleared by a cascade appear here as well as in Changed.
	Cleared []Level `json:"cleared,omitempty"`
}

// Diff calculates the difference between oldSel and newSel.
// It returns nil when both selections are equal.
func Diff(oldSel, newSel Selection) *SelectionDiff {
	diff := &SelectionDiff{Changed: make(map[Level]NullID)}

	for _, level := range Levels {
		before, after := oldSel.Get(level), newSel.Get(level)
		if before == after {
			continue
		}
		diff.Changed[level] = after
		if before.Valid && !after.Valid {
			diff.Cleared = append(diff.Cleared, level)
		}
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *SelectionDiff) IsEmpty() bool {
	return d == nil || len(d.Changed) == 0
}
