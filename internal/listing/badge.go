package listing

import (
	"fmt"
	"strings"
	"time"
)

// NoData is the explicit "no data" marker rendered when a tier or rating is
// absent or below 1. Never an empty string of zero symbols.
const NoData = "-"

// maxBadgeSymbols caps rendered symbol runs; raw values above it are clamped
// for display, never rejected.
const maxBadgeSymbols = 5

func symbolBadge(value *int, symbol string) string {
	if value == nil || *value < 1 {
		return NoData
	}
	n := *value
	if n > maxBadgeSymbols {
		n = maxBadgeSymbols
	}
	return strings.Repeat(symbol, n)
}

// PriceBadge renders a price tier as repeated "$" symbols ("$$" for tier 2).
func PriceBadge(tier *int) string {
	return symbolBadge(tier, "$")
}

// StarsBadge renders a rating as repeated "★" symbols.
func StarsBadge(stars *int) string {
	return symbolBadge(stars, "★")
}

var allDayLabels = map[string]string{
	LangES: "Todo el día",
	LangEN: "All day",
	LangPT: "O dia todo",
}

const dateLayout = "02/01/2006"

// DateRangeLabel formats an event's date span for display badges.
func DateRangeLabel(start, end *time.Time, allDay bool, lang string) string {
	if start == nil && end == nil {
		return NoData
	}

	var label string
	switch {
	case start != nil && end != nil && !start.Equal(*end):
		label = fmt.Sprintf("%s – %s", start.Format(dateLayout), end.Format(dateLayout))
	case start != nil:
		label = start.Format(dateLayout)
	default:
		label = end.Format(dateLayout)
	}

	if allDay {
		label += " · " + allDayLabels[NormalizeLang(lang)]
	}
	return label
}

var outletLabels = map[string]string{
	LangES: "%d locales",
	LangEN: "%d stores",
	LangPT: "%d lojas",
}

// OutletBadge renders a shopping center's store count.
func OutletBadge(count *int, lang string) string {
	if count == nil || *count < 1 {
		return NoData
	}
	return fmt.Sprintf(outletLabels[NormalizeLang(lang)], *count)
}
