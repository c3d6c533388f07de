package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"second page", 2, 10, 10, 10},
		{"custom size", 3, 25, 50, 25},
		{"zero page defaults to first", 0, 10, 0, 10},
		{"negative page defaults to first", -5, 10, 0, 10},
		{"zero size defaults", 1, 0, 0, DefaultPageSize},
		{"oversized page size capped", 1, 500, 0, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("exact pages", func(t *testing.T) {
		info := NewPaginationInfo(30, 2, 10)
		assert.Equal(t, 2, info.CurrentPage)
		assert.Equal(t, 10, info.PageSize)
		assert.Equal(t, int64(30), info.TotalItems)
		assert.Equal(t, 3, info.TotalPages)
	})

	t.Run("partial last page", func(t *testing.T) {
		info := NewPaginationInfo(31, 1, 10)
		assert.Equal(t, 4, info.TotalPages)
	})

	t.Run("no items", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, 1, info.TotalPages)
		assert.Equal(t, int64(0), info.TotalItems)
	})

	t.Run("page beyond range clamps", func(t *testing.T) {
		info := NewPaginationInfo(10, 9, 10)
		assert.Equal(t, 1, info.CurrentPage)
	})
}
