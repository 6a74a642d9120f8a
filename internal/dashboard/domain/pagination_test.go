package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name                 string
		total, size, page    int
		start, end           int
		hasPrevious, hasNext bool
		empty                bool
		totalPages           int
	}{
		{"first page", 45, 20, 1, 0, 20, false, true, false, 3},
		{"middle page", 45, 20, 2, 20, 40, true, true, false, 3},
		{"last page clamps end", 45, 20, 3, 40, 45, true, false, false, 3},
		{"past the end", 45, 20, 4, 60, 60, true, false, true, 3},
		{"exact fit", 40, 20, 2, 20, 40, true, false, false, 2},
		{"no records", 0, 20, 1, 0, 0, false, false, true, 0},
		{"offset overflows int", 45, 20, math.MaxInt, 45, 45, true, false, true, 3},
		{"huge page size", 45, math.MaxInt, 1, 0, 45, false, false, false, 1},
		{"huge page size second page", 45, math.MaxInt, 2, math.MaxInt, math.MaxInt, true, false, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Paginate(tt.total, tt.size, tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.start, w.Start)
			assert.Equal(t, tt.end, w.End)
			assert.Equal(t, tt.hasPrevious, w.HasPrevious)
			assert.Equal(t, tt.hasNext, w.HasNext)
			assert.Equal(t, tt.empty, w.Empty)
			assert.Equal(t, tt.totalPages, w.TotalPages)
			assert.Equal(t, tt.page, w.Page, "page number is never clamped")
		})
	}
}

func TestPaginate_InvalidParameters(t *testing.T) {
	tests := []struct {
		name              string
		total, size, page int
		want              error
	}{
		{"zero page size", 10, 0, 1, ErrInvalidPageSize},
		{"zero page", 10, 5, 0, ErrInvalidPage},
		{"negative total", -1, 5, 1, ErrNegativeTotal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Paginate(tt.total, tt.size, tt.page)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPageOf(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	w, err := Paginate(len(items), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, PageOf(items, w))

	w, err = Paginate(len(items), 2, 4)
	require.NoError(t, err)
	assert.Nil(t, PageOf(items, w))
}

func TestPageOf_HugePage(t *testing.T) {
	items := make([]int, 45)

	w, err := Paginate(len(items), 20, math.MaxInt)
	require.NoError(t, err)
	assert.True(t, w.Empty)
	assert.NotPanics(t, func() {
		assert.Nil(t, PageOf(items, w))
	})
	assert.Nil(t, PageOf(items, Window{Start: -20, End: 0}))
}
