package engine

import "strings"

// Ship identifier (hull number) handling. Two matching policies exist on
// purpose and must not be merged:
//
//   - ShipInSet: exact case-insensitive membership, used by the curated
//     ship-set facet where the set is enumerated from the data itself.
//   - MatchShip/MatchAnyShip: bidirectional containment, used only for
//     personalization, where the user may have typed a prefix (H3200) of
//     the full hull number (H3200A) or vice versa.
//
// Both share NormalizeShip.

// NormalizeShip trims surrounding whitespace and uppercases.
func NormalizeShip(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// SplitShipList splits a comma-separated identifier list into normalized
// tokens. Empty tokens are dropped; duplicates are kept (matching is
// existential, so they are harmless).
func SplitShipList(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	var tokens []string
	for _, part := range strings.Split(csv, ",") {
		if t := NormalizeShip(part); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// MatchShip reports whether two identifiers refer to the same hull:
// equal after normalization, or one contains the other.
func MatchShip(candidate, reference string) bool {
	a := NormalizeShip(candidate)
	b := NormalizeShip(reference)
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// MatchAnyShip reports whether any candidate matches any reference under
// MatchShip. An empty side never matches: a record that declares no
// ships must not pass a ship-based personalization filter.
func MatchAnyShip(candidates, references []string) bool {
	for _, c := range candidates {
		for _, r := range references {
			if MatchShip(c, r) {
				return true
			}
		}
	}
	return false
}

// ShipInSet reports whether any of the record's ship tokens is exactly
// (case-insensitively) one of the selected ships.
func ShipInSet(tokens []string, selected map[string]bool) bool {
	for _, t := range tokens {
		if selected[NormalizeShip(t)] {
			return true
		}
	}
	return false
}

// NewShipSet builds a normalized lookup set from selected ship values.
func NewShipSet(ships []string) map[string]bool {
	if len(ships) == 0 {
		return nil
	}
	set := make(map[string]bool, len(ships))
	for _, s := range ships {
		if t := NormalizeShip(s); t != "" {
			set[t] = true
		}
	}
	return set
}
