package listing

import "sort"

// Options holds the derived dropdown value sets of one browse page: the
// distinct, non-empty, sorted values present in the source array. Derived
// from the fetched items, not the filtered result, so selecting a value
// never removes it from its own dropdown.
type Options struct {
	Zones      []string `json:"zones"`
	Categories []string `json:"categories"`
	Cuisines   []string `json:"cuisines"`
	PriceTiers []int    `json:"priceTiers"`
	Stars      []int    `json:"stars"`
}

// DeriveOptions computes the filter option sets for a source item array.
// String sets sort locale-aware ascending, numeric sets numerically.
func DeriveOptions(items []Item) Options {
	zones := map[string]struct{}{}
	categories := map[string]struct{}{}
	cuisines := map[string]struct{}{}
	tiers := map[int]struct{}{}
	stars := map[int]struct{}{}

	for _, it := range items {
		if it.Zone != "" {
			zones[it.Zone] = struct{}{}
		}
		if it.Category != "" {
			categories[it.Category] = struct{}{}
		}
		for _, c := range it.Cuisines {
			if c != "" {
				cuisines[c] = struct{}{}
			}
		}
		if it.PriceTier != nil {
			tiers[*it.PriceTier] = struct{}{}
		}
		if it.Stars != nil {
			stars[*it.Stars] = struct{}{}
		}
	}

	return Options{
		Zones:      sortedStrings(zones),
		Categories: sortedStrings(categories),
		Cuisines:   sortedStrings(cuisines),
		PriceTiers: sortedInts(tiers),
		Stars:      sortedInts(stars),
	}
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	SortOptionStrings(out)
	return out
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
