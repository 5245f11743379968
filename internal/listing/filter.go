package listing

import "strings"

// Filters is the client-visible filter state of one browse page. An empty
// string, nil pointer or empty slice means "no constraint from this filter",
// never "match nothing".
type Filters struct {
	// Search is a free-text term matched (normalized) as a substring
	// against the item's searchable fields, OR across fields.
	Search string

	// Single-value categorical filters, exact equality.
	Zone     string
	Category string

	// PriceTier matches the raw numeric field. Used by single-type browse
	// pages; an item with a nil tier never matches.
	PriceTier *int

	// PriceBadge matches the rendered "$" badge string. Used by unified
	// search, where the check is "badge present among the result's badges".
	// Not equivalent to PriceTier when the tier is nil vs zero.
	PriceBadge string

	Stars *int

	// Multi-select: OR within the set, AND with everything else.
	Cuisines []string
	Types    []Type
}

// searchFields is the fixed per-item list of fields the search term is
// matched against.
func searchFields(it Item) []string {
	fields := []string{it.Name, it.Category, it.Zone, it.City}
	fields = append(fields, it.Cuisines...)
	return fields
}

// matchesSearch applies the normalized substring check, OR across fields.
// A blank term (after trim) constrains nothing.
func matchesSearch(term string, fields []string) bool {
	needle := Normalize(strings.TrimSpace(term))
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(Normalize(f), needle) {
			return true
		}
	}
	return false
}

// Matches reports whether an item is visible under f. All set filters are
// ANDed together.
func (f Filters) Matches(it Item) bool {
	if !matchesSearch(f.Search, searchFields(it)) {
		return false
	}
	if f.Zone != "" && it.Zone != f.Zone {
		return false
	}
	if f.Category != "" && it.Category != f.Category {
		return false
	}
	if f.PriceTier != nil {
		if it.PriceTier == nil || *it.PriceTier != *f.PriceTier {
			return false
		}
	}
	if f.Stars != nil {
		if it.Stars == nil || *it.Stars != *f.Stars {
			return false
		}
	}
	if len(f.Cuisines) > 0 && !anyInSet(it.Cuisines, f.Cuisines) {
		return false
	}
	if len(f.Types) > 0 && !typeInSet(it.Type, f.Types) {
		return false
	}
	return true
}

func anyInSet(values, selected []string) bool {
	for _, v := range values {
		for _, s := range selected {
			if v == s {
				return true
			}
		}
	}
	return false
}

func typeInSet(t Type, selected []Type) bool {
	for _, s := range selected {
		if t == s {
			return true
		}
	}
	return false
}
