package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 12))
	assert.Equal(t, 1, TotalPages(1, 12))
	assert.Equal(t, 1, TotalPages(12, 12))
	assert.Equal(t, 2, TotalPages(13, 12))
	assert.Equal(t, 3, TotalPages(25, 12))
	assert.Equal(t, 5, TotalPages(50, 10))
}

func TestPaginateSliceBounds(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, total := PaginateSlice(items, 1, 2)
	assert.Equal(t, []int{1, 2}, page)
	assert.Equal(t, 3, total)

	page, _ = PaginateSlice(items, 3, 2)
	assert.Equal(t, []int{5}, page)

	page, _ = PaginateSlice(items, 4, 2)
	assert.Empty(t, page)

	page, _ = PaginateSlice(items, 0, 2)
	assert.Empty(t, page)
}

// Concatenating all pages reproduces the full array exactly, for any page
// size >= 1.
func TestPaginationCompleteness(t *testing.T) {
	items := make([]string, 37)
	for i := range items {
		items[i] = fmt.Sprintf("item-%02d", i)
	}

	for _, pageSize := range []int{1, 2, 5, 10, 12, 37, 50} {
		totalPages := TotalPages(len(items), pageSize)

		var joined []string
		for p := 1; p <= totalPages; p++ {
			page, got := PaginateSlice(items, p, pageSize)
			require.Equal(t, totalPages, got)
			joined = append(joined, page...)
		}

		assert.Equal(t, items, joined, "pageSize=%d", pageSize)
	}
}
