package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastPageFor(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		perPage int
		want    int
	}{
		{name: "empty collection", total: 0, perPage: 15, want: 1},
		{name: "exactly one page", total: 15, perPage: 15, want: 1},
		{name: "one over", total: 16, perPage: 15, want: 2},
		{name: "twenty items", total: 20, perPage: 15, want: 2},
		{name: "fifty items", total: 50, perPage: 15, want: 4},
		{name: "invalid per page uses default", total: 30, perPage: 0, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LastPageFor(tt.total, tt.perPage))
		})
	}
}

func TestSlice_TwentyItems(t *testing.T) {
	items := make([]int, 20)
	for i := range items {
		items[i] = i + 1
	}

	first := Slice(items, 1, 15)
	require.NoError(t, first.Validate())
	assert.Len(t, first.Data, 15)
	assert.Equal(t, 2, first.LastPage)
	assert.Equal(t, 20, first.Total)
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrevious())

	second := Slice(items, 2, 15)
	require.NoError(t, second.Validate())
	assert.Equal(t, []int{16, 17, 18, 19, 20}, second.Data)
	assert.False(t, second.HasNext())
	assert.True(t, second.HasPrevious())
}

func TestSlice_PastEnd(t *testing.T) {
	got := Slice([]string{"a"}, 3, 15)
	assert.True(t, got.IsEmpty())
	assert.Equal(t, 3, got.CurrentPage)
	assert.Equal(t, 1, got.LastPage)
}

func TestValidate(t *testing.T) {
	bad := Response[int]{Data: []int{1}, CurrentPage: 3, LastPage: 2, PerPage: 15, Total: 20}
	assert.Error(t, bad.Validate())

	overfull := Response[int]{Data: []int{1, 2, 3}, CurrentPage: 1, LastPage: 1, PerPage: 2, Total: 3}
	assert.Error(t, overfull.Validate())

	empty := Response[int]{CurrentPage: 1, LastPage: 1, PerPage: 15, Total: 0}
	assert.NoError(t, empty.Validate())
}
