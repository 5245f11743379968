package listing

import (
	"sort"
	"time"
)

// SortItems orders items in place for display. The sort is stable: full ties
// keep their original array order.
//
// General types (food, drink, lodging, shopping): featured first, then
// rating descending, then name ascending.
//
// Chronological types (events, galleries): date-status priority (current,
// upcoming, past, dateless) regardless of the featured flag, then the date
// key. Events order by start date ascending. Galleries order by opening date
// ascending inside the upcoming bucket but descending inside current and
// past, so the soonest-next and the most-recently-opened both surface first.
func SortItems(items []Item, now time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return lessItem(items[i], items[j], now)
	})
}

func lessItem(a, b Item, now time.Time) bool {
	if Chronological(a.Type) && Chronological(b.Type) {
		return lessChronological(a, b, now)
	}
	return lessGeneral(a, b)
}

func lessGeneral(a, b Item) bool {
	if a.Featured != b.Featured {
		return a.Featured
	}
	ra, rb := ratingKey(a.Stars), ratingKey(b.Stars)
	if ra != rb {
		return ra > rb
	}
	return CompareNames(a.Name, b.Name) < 0
}

// ratingKey treats missing or sub-1 ratings as zero so dataless items sort
// last within their featured bucket.
func ratingKey(stars *int) int {
	if stars == nil || *stars < 1 {
		return 0
	}
	return *stars
}

func lessChronological(a, b Item, now time.Time) bool {
	sa, sb := itemStatus(a, now), itemStatus(b, now)
	if sa != sb {
		return sa < sb
	}

	da, db := sortDate(a), sortDate(b)
	if da != nil && db != nil && !da.Equal(*db) {
		if dateAscending(a.Type, sa) {
			return da.Before(*db)
		}
		return da.After(*db)
	}

	return CompareNames(a.Name, b.Name) < 0
}

func sortDate(it Item) *time.Time {
	if it.Type == TypeGallery {
		return it.OpeningDate
	}
	return it.StartDate
}

// dateAscending picks the date direction within a status bucket. Events are
// always soonest-first. Galleries flip to descending for current and past,
// so the most recently opened exhibition leads.
func dateAscending(t Type, status DateStatus) bool {
	if t != TypeGallery {
		return true
	}
	return status == StatusUpcoming
}
