package listing

import "time"

// ResultPage is one page of a filtered, sorted single-type listing.
type ResultPage struct {
	Items      []Item `json:"items"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
}

// Apply runs the full browse pipeline over a source array: filter, sort,
// paginate. The function is pure: items is not mutated and the same inputs
// always produce the same page, so the surrounding layer only decides when
// to recompute.
func Apply(items []Item, f Filters, page, pageSize int, now time.Time) ResultPage {
	visible := make([]Item, 0, len(items))
	for _, it := range items {
		if f.Matches(it) {
			visible = append(visible, it)
		}
	}

	SortItems(visible, now)

	pageItems, totalPages := PaginateSlice(visible, page, pageSize)

	return ResultPage{
		Items:      pageItems,
		Total:      len(visible),
		Page:       page,
		TotalPages: totalPages,
	}
}
