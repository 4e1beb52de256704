// Package identity implements the pure attribute-reconciliation core: it
// merges identity attributes from heterogeneous sources (session claims,
// stored profile, tenant attribute cache, request-scoped fallbacks) into one
// bag, resolves the authoritative business name and subscription tier from
// historically inconsistent key spellings, derives avatar initials, and
// guards against cross-tenant cache leakage.
//
// Everything in this package is a pure function: no I/O, no clocks, no
// global state. Source gathering is the caller's job.
package identity

import (
	"fmt"
	"strings"
)

// Source is one raw attribute bag, e.g. decoded JWT claims, a profile row
// flattened to a map, or the cached attribute namespace of a tenant.
type Source map[string]any

// Bag is the flattened candidate record produced by Adapt. Each key holds the
// value contributed by the highest-priority source that had an acceptable
// value for it. Multiple historical spellings of the same logical field
// coexist as separate keys; resolvers probe spellings in priority order.
type Bag map[string]string

// Adapt flattens the given sources into a single Bag. Sources are listed in
// priority order (claims first); for every key the first acceptable value
// wins. Nil sources are treated as empty. Adapt never fails.
func Adapt(sources ...Source) Bag {
	bag := make(Bag)
	for _, source := range sources {
		for key, raw := range source {
			if _, taken := bag[key]; taken {
				continue
			}
			value, ok := stringify(raw)
			if !ok || !Acceptable(value) {
				continue
			}
			bag[key] = value
		}
	}

	return bag
}

// Lookup probes the given key spellings in order and returns the first
// acceptable value found in the bag.
func (b Bag) Lookup(keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := b[key]; ok && Acceptable(value) {
			return value, true
		}
	}

	return "", false
}

// Acceptable reports whether a candidate value may be used at all. Upstream
// systems have historically serialized absent JavaScript values as the
// literal strings "undefined" and "null"; those are treated as missing.
func Acceptable(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	switch strings.ToLower(trimmed) {
	case "undefined", "null":
		return false
	}

	return true
}

// stringify converts a raw source value into its candidate string form.
// Nils and aggregates are not candidates; scalars are formatted as-is.
func stringify(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	case bool:
		return fmt.Sprintf("%t", v), true
	case float64, float32:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", v), "0"), "."), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), true
	default:
		return "", false
	}
}
