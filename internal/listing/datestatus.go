package listing

import "time"

// DateStatus classifies a time-bound item relative to now. The numeric order
// is the sort priority: current listings surface first, then upcoming, then
// past, then dateless.
type DateStatus int

const (
	StatusCurrent DateStatus = iota
	StatusUpcoming
	StatusPast
	StatusNone
)

// currentWindow is how long after its date an item still counts as
// "current" before falling into "past".
const currentWindow = 60 * 24 * time.Hour

// StatusOf classifies a date: future is upcoming, within the last 60 days is
// current, older is past, nil is dateless.
func StatusOf(t *time.Time, now time.Time) DateStatus {
	if t == nil {
		return StatusNone
	}
	if t.After(now) {
		return StatusUpcoming
	}
	if now.Sub(*t) <= currentWindow {
		return StatusCurrent
	}
	return StatusPast
}

// itemStatus picks the date field that drives ordering for chronological
// types: events run on StartDate, galleries on OpeningDate.
func itemStatus(it Item, now time.Time) DateStatus {
	switch it.Type {
	case TypeEvent:
		return StatusOf(it.StartDate, now)
	case TypeGallery:
		return StatusOf(it.OpeningDate, now)
	default:
		return StatusNone
	}
}

func (s DateStatus) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusUpcoming:
		return "upcoming"
	case StatusPast:
		return "past"
	default:
		return "none"
	}
}
