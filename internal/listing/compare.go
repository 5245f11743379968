package listing

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// The app's base locale drives every user-visible string ordering (filter
// dropdowns, name tie-breaks). collate.Collator is not safe for concurrent
// use, so all access goes through the mutex.
var (
	collMu   sync.Mutex
	collator = collate.New(language.Spanish, collate.IgnoreCase)
)

// CompareNames orders two display strings locale-aware, case-insensitive.
func CompareNames(a, b string) int {
	collMu.Lock()
	defer collMu.Unlock()
	return collator.CompareString(a, b)
}

// SortOptionStrings sorts filter option values ascending, locale-aware.
func SortOptionStrings(vals []string) {
	collMu.Lock()
	defer collMu.Unlock()
	collator.SortStrings(vals)
}
