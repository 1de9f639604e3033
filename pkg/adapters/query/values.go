// Package query adapts url.Values to ports.ParamStore.
package query

import (
	"net/url"
	"sort"
	"strings"
)

// hierarchy keys are encoded first and in this order; anything else follows sorted.
var hierarchy = []string{"province", "regency", "district"}

// Values is a ports.ParamStore over a parsed query string.
// Only the first value of a repeated key is visible through Get.
type Values url.Values

// New returns an empty store.
func New() Values {
	return Values(url.Values{})
}

// FromURL copies the query of u into a new store.
func FromURL(u *url.URL) Values {
	if u == nil {
		return New()
	}
	return Values(u.Query())
}

// Parse parses a raw query string such as "province=1&regency=10".
// A leading "?" is ignored.
func Parse(raw string) (Values, error) {
	v, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return nil, err
	}
	return Values(v), nil
}

// Get implements ports.ParamStore.
func (v Values) Get(key string) (string, bool) {
	vs, ok := v[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Set implements ports.ParamStore.
func (v Values) Set(key, value string) {
	v[key] = []string{value}
}

// Delete implements ports.ParamStore.
func (v Values) Delete(key string) {
	delete(v, key)
}

// Encode renders the store as a query string without the leading "?".
// Hierarchy keys come first, root to leaf, so URLs read like the breadcrumb.
func (v Values) Encode() string {
	var sb strings.Builder
	write := func(key string) {
		for _, val := range v[key] {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(url.QueryEscape(key))
			sb.WriteByte('=')
			sb.WriteString(url.QueryEscape(val))
		}
	}

	seen := make(map[string]bool, len(hierarchy))
	for _, key := range hierarchy {
		seen[key] = true
		write(key)
	}

	rest := make([]string, 0, len(v))
	for key := range v {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		write(key)
	}
	return sb.String()
}
