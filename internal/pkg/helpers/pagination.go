package helpers

import (
	"math"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based

	// PageWindowSize is the maximum number of numbered page buttons the
	// public listing pages render at once.
	PageWindowSize = 5
)

// PaginationInfo describes one page of a client-visible listing.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int   `json:"totalItems"`
	Pages       []int `json:"pages"`
}

// NormalizePage clamps page and size into their valid ranges.
func NormalizePage(page, size int) (int, int) {
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}
	return page, size
}

// SliceIndices converts a 1-based page into start/end indices over a
// slice of totalItems elements. Out-of-range pages yield an empty range.
func SliceIndices(page, size, totalItems int) (start, end int) {
	page, size = NormalizePage(page, size)

	start = (page - 1) * size
	end = start + size

	if start >= totalItems {
		return totalItems, totalItems
	}
	if end > totalItems {
		end = totalItems
	}
	return start, end
}

// NewPaginationInfo builds pagination metadata for a listing.
func NewPaginationInfo(totalItems, page, size int) PaginationInfo {
	page, size = NormalizePage(page, size)

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	} else if page == 1 {
		totalPages = 1
	}

	current := page
	if totalPages > 0 && current > totalPages {
		current = totalPages
	}

	return PaginationInfo{
		CurrentPage: current,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
		Pages:       PageWindow(current, totalPages),
	}
}

// PageWindow returns the sliding window of numbered page buttons: at
// most PageWindowSize consecutive pages centered on current, clamped to
// [1, totalPages].
func PageWindow(current, totalPages int) []int {
	if totalPages < 1 {
		return []int{}
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	start := current - PageWindowSize/2
	if start < 1 {
		start = 1
	}
	end := start + PageWindowSize - 1
	if end > totalPages {
		end = totalPages
		if end-PageWindowSize+1 > 0 {
			start = end - PageWindowSize + 1
		} else {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
