package listing

import (
	"sort"
	"strings"
)

// Result is the common shape every type maps into for unified search.
// Identity across types is the (Type, ID) pair. Badges is a denormalized,
// unordered list of short display tags whose membership rules are
// type-specific but whose shape is uniform, which lets one predicate treat a
// "$$ badge present" check identically regardless of source type.
type Result struct {
	ID          string `json:"id"`
	Type        Type   `json:"type"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Zone        string `json:"zone,omitempty"`
	City        string `json:"city,omitempty"`
	Image       string `json:"image"`
	Badges      []string `json:"badges"`
	DetailURL   string `json:"detailUrl"`
	Highlighted bool   `json:"isHighlighted"`
	Stars       *int   `json:"stars,omitempty"`
}

// MapItem converts one item into the common result shape.
func MapItem(it Item, lang string) Result {
	return Result{
		ID:          it.ID,
		Type:        it.Type,
		Title:       it.Name,
		Subtitle:    subtitleFor(it, lang),
		Zone:        it.Zone,
		City:        it.City,
		Image:       ImageOrPlaceholder(it),
		Badges:      badgesFor(it, lang),
		DetailURL:   "/" + string(it.Type) + "/" + it.ID,
		Highlighted: it.Featured,
		Stars:       it.Stars,
	}
}

// MapItems converts a whole per-type array, preserving order.
func MapItems(items []Item, lang string) []Result {
	out := make([]Result, 0, len(items))
	for _, it := range items {
		out = append(out, MapItem(it, lang))
	}
	return out
}

func subtitleFor(it Item, lang string) string {
	switch it.Type {
	case TypeEvent:
		if label := DateRangeLabel(it.StartDate, it.EndDate, it.AllDay, lang); label != NoData {
			return label
		}
	case TypeGallery:
		if it.OpeningDate != nil {
			return it.OpeningDate.Format(dateLayout)
		}
	}
	if it.Category != "" {
		return it.Category
	}
	return strings.Join(it.Cuisines, ", ")
}

func badgesFor(it Item, lang string) []string {
	badges := []string{}
	if b := PriceBadge(it.PriceTier); b != NoData {
		badges = append(badges, b)
	}
	if it.Category != "" {
		badges = append(badges, it.Category)
	}
	badges = append(badges, it.Cuisines...)
	if b := OutletBadge(it.OutletCount, lang); b != NoData {
		badges = append(badges, b)
	}
	return badges
}

// MatchesResult is the unified-search predicate. The search term also
// matches the localized type label, and the price filter checks the badge
// string, not the raw tier.
func MatchesResult(r Result, f Filters, lang string) bool {
	fields := []string{r.Title, r.Subtitle, r.Zone, r.City, TypeLabel(r.Type, lang)}
	if !matchesSearch(f.Search, fields) {
		return false
	}
	if f.Zone != "" && r.Zone != f.Zone {
		return false
	}
	if f.PriceBadge != "" && !hasBadge(r.Badges, f.PriceBadge) {
		return false
	}
	if len(f.Types) > 0 && !typeInSet(r.Type, f.Types) {
		return false
	}
	return true
}

func hasBadge(badges []string, badge string) bool {
	for _, b := range badges {
		if b == badge {
			return true
		}
	}
	return false
}

// SortResults orders unified results: highlighted first, then stars
// descending, then title ascending. Stable for full ties, which preserves
// the fixed type concatenation order.
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Highlighted != b.Highlighted {
			return a.Highlighted
		}
		ra, rb := ratingKey(a.Stars), ratingKey(b.Stars)
		if ra != rb {
			return ra > rb
		}
		return CompareNames(a.Title, b.Title) < 0
	})
}

// UnifiedPage is one page of cross-type search results.
type UnifiedPage struct {
	Results    []Result `json:"results"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	TotalPages int      `json:"totalPages"`
}

// ApplyResults runs filter, sort and paginate over the concatenated
// cross-type result set.
func ApplyResults(results []Result, f Filters, lang string, page, pageSize int) UnifiedPage {
	visible := make([]Result, 0, len(results))
	for _, r := range results {
		if MatchesResult(r, f, lang) {
			visible = append(visible, r)
		}
	}

	SortResults(visible)

	pageResults, totalPages := PaginateSlice(visible, page, pageSize)

	return UnifiedPage{
		Results:    pageResults,
		Total:      len(visible),
		Page:       page,
		TotalPages: totalPages,
	}
}
