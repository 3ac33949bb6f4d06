package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	t.Run("defaults on zero values", func(t *testing.T) {
		page, size := NormalizePage(0, 0)
		assert.Equal(t, DefaultPage, page)
		assert.Equal(t, DefaultPageSize, size)
	})

	t.Run("clamps oversized page size", func(t *testing.T) {
		_, size := NormalizePage(1, MaxPageSize+1)
		assert.Equal(t, DefaultPageSize, size)
	})

	t.Run("keeps valid values", func(t *testing.T) {
		page, size := NormalizePage(3, 25)
		assert.Equal(t, 3, page)
		assert.Equal(t, 25, size)
	})
}

func TestSliceIndices(t *testing.T) {
	t.Run("first page", func(t *testing.T) {
		start, end := SliceIndices(1, 10, 25)
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
	})

	t.Run("partial last page", func(t *testing.T) {
		start, end := SliceIndices(3, 10, 25)
		assert.Equal(t, 20, start)
		assert.Equal(t, 25, end)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		start, end := SliceIndices(9, 10, 25)
		assert.Equal(t, start, end)
	})
}

func TestPageWindow(t *testing.T) {
	t.Run("short listings show every page", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, PageWindow(1, 3))
	})

	t.Run("window is capped at five buttons", func(t *testing.T) {
		for current := 1; current <= 20; current++ {
			pages := PageWindow(current, 20)
			assert.LessOrEqual(t, len(pages), PageWindowSize)
		}
	})

	t.Run("window centers on the current page", func(t *testing.T) {
		assert.Equal(t, []int{8, 9, 10, 11, 12}, PageWindow(10, 20))
	})

	t.Run("window clamps at the start", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5}, PageWindow(1, 20))
		assert.Equal(t, []int{1, 2, 3, 4, 5}, PageWindow(2, 20))
	})

	t.Run("window clamps at the end", func(t *testing.T) {
		assert.Equal(t, []int{16, 17, 18, 19, 20}, PageWindow(20, 20))
		assert.Equal(t, []int{16, 17, 18, 19, 20}, PageWindow(19, 20))
	})

	t.Run("current page is always inside its window", func(t *testing.T) {
		for total := 1; total <= 12; total++ {
			for current := 1; current <= total; current++ {
				assert.Contains(t, PageWindow(current, total), current)
			}
		}
	})

	t.Run("no pages yields an empty window", func(t *testing.T) {
		assert.Empty(t, PageWindow(1, 0))
	})
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("computes total pages with remainder", func(t *testing.T) {
		info := NewPaginationInfo(25, 1, 10)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, 25, info.TotalItems)
		assert.Equal(t, []int{1, 2, 3}, info.Pages)
	})

	t.Run("empty listing still reports page one", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, 1, info.TotalPages)
	})

	t.Run("current page is clamped to the last page", func(t *testing.T) {
		info := NewPaginationInfo(25, 9, 10)
		assert.Equal(t, 3, info.CurrentPage)
	})
}
