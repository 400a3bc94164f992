package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		rowCount int
		pageSize int
		expected int
	}{
		{name: "empty collection still has one page", rowCount: 0, pageSize: 50, expected: 1},
		{name: "single row", rowCount: 1, pageSize: 50, expected: 1},
		{name: "exactly one full page", rowCount: 50, pageSize: 50, expected: 1},
		{name: "one over a page boundary", rowCount: 51, pageSize: 50, expected: 2},
		{name: "one thousand rows at fifty per page", rowCount: 1000, pageSize: 50, expected: 20},
		{name: "one thousand and one rows", rowCount: 1001, pageSize: 50, expected: 21},
		{name: "page size one", rowCount: 7, pageSize: 1, expected: 7},
		{name: "degenerate page size falls back to one page", rowCount: 10, pageSize: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalPages(tt.rowCount, tt.pageSize))
		})
	}
}

func TestTotalPagesCeilingProperty(t *testing.T) {
	// totalPages == max(1, ceil(R/P)) for all R >= 0 at P=50.
	const pageSize = 50
	for rowCount := 0; rowCount <= 500; rowCount++ {
		expected := (rowCount + pageSize - 1) / pageSize
		if expected < 1 {
			expected = 1
		}
		assert.Equal(t, expected, TotalPages(rowCount, pageSize), "rowCount=%d", rowCount)
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		requested  int
		totalPages int
		expected   int
	}{
		{name: "in range stays put", requested: 3, totalPages: 5, expected: 3},
		{name: "below range clamps to first", requested: 0, totalPages: 5, expected: 1},
		{name: "negative clamps to first", requested: -10, totalPages: 5, expected: 1},
		{name: "above range clamps to last", requested: 9, totalPages: 5, expected: 5},
		{name: "far above range clamps to last", requested: 1000, totalPages: 20, expected: 20},
		{name: "boundaries are valid", requested: 5, totalPages: 5, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampPage(tt.requested, tt.totalPages))
		})
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		pageSize      int
		rowCount      int
		expectedStart int
		expectedEnd   int
	}{
		{name: "first page full", page: 1, pageSize: 50, rowCount: 1000, expectedStart: 1, expectedEnd: 50},
		{name: "second page full", page: 2, pageSize: 50, rowCount: 1000, expectedStart: 51, expectedEnd: 100},
		{name: "last page full", page: 20, pageSize: 50, rowCount: 1000, expectedStart: 951, expectedEnd: 1000},
		{name: "partial last page", page: 21, pageSize: 50, rowCount: 1001, expectedStart: 1001, expectedEnd: 1001},
		{name: "end truncated to row count", page: 1, pageSize: 50, rowCount: 7, expectedStart: 1, expectedEnd: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Window(tt.page, tt.pageSize, tt.rowCount)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
		})
	}

	t.Run("empty collection yields empty window", func(t *testing.T) {
		start, end := Window(1, 50, 0)
		assert.Greater(t, start, end)
	})
}

func TestNextPrevPage(t *testing.T) {
	t.Run("next advances", func(t *testing.T) {
		assert.Equal(t, 2, NextPage(1, 20))
	})
	t.Run("next saturates at last page", func(t *testing.T) {
		assert.Equal(t, 20, NextPage(20, 20))
	})
	t.Run("prev retreats", func(t *testing.T) {
		assert.Equal(t, 1, PrevPage(2))
	})
	t.Run("prev saturates at first page", func(t *testing.T) {
		assert.Equal(t, 1, PrevPage(1))
	})
}

func TestMetaFor(t *testing.T) {
	t.Run("middle page has both neighbors", func(t *testing.T) {
		meta := MetaFor(2, 50, 1000)
		assert.Equal(t, 2, meta.CurrentPage)
		assert.Equal(t, 20, meta.TotalPages)
		assert.Equal(t, 1000, meta.TotalRows)
		assert.True(t, meta.HasPrevious)
		assert.True(t, meta.HasNext)
	})

	t.Run("out of range page is clamped before summary", func(t *testing.T) {
		meta := MetaFor(99, 50, 100)
		assert.Equal(t, 2, meta.CurrentPage)
		assert.False(t, meta.HasNext)
		assert.True(t, meta.HasPrevious)
	})

	t.Run("empty collection", func(t *testing.T) {
		meta := MetaFor(1, 50, 0)
		assert.Equal(t, 1, meta.CurrentPage)
		assert.Equal(t, 1, meta.TotalPages)
		assert.False(t, meta.HasPrevious)
		assert.False(t, meta.HasNext)
	})
}
