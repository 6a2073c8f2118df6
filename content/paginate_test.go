package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginateTotalPages(t *testing.T) {
	tests := []struct {
		items, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{3, 2, 2},
		{25, 5, 5},
	}
	for _, tt := range tests {
		got := Paginate(seq(tt.items), 1, tt.size).TotalPages
		assert.Equal(t, tt.want, got, "TotalPages(%d items, size %d)", tt.items, tt.size)
	}
}

func TestPaginatePartitionsItems(t *testing.T) {
	for _, n := range []int{0, 1, 7, 10, 23} {
		for _, size := range []int{1, 3, 10} {
			items := seq(n)
			first := Paginate(items, 1, size)
			var joined []int
			for page := 1; page <= first.TotalPages; page++ {
				p := Paginate(items, page, size)
				assert.NotEmpty(t, p.Items)
				assert.LessOrEqual(t, len(p.Items), size)
				joined = append(joined, p.Items...)
			}
			if n == 0 {
				assert.Empty(t, joined)
				continue
			}
			assert.Equal(t, items, joined, "pages of %d items (size %d) must partition them", n, size)
		}
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	items := seq(5)
	for _, page := range []int{0, -1, 4, 100} {
		p := Paginate(items, page, 2)
		assert.NotNil(t, p.Items)
		assert.Empty(t, p.Items, "page %d", page)
		assert.Equal(t, 3, p.TotalPages)
	}
}

func TestPaginateDefaultSize(t *testing.T) {
	p := Paginate(seq(25), 1, 0)
	assert.Equal(t, DefaultPageSize, p.Size)
	assert.Len(t, p.Items, DefaultPageSize)
	assert.Equal(t, 3, p.TotalPages)
}

func TestPaginateItemsCannotGrowIntoNextPage(t *testing.T) {
	items := seq(4)
	p := Paginate(items, 1, 2)
	_ = append(p.Items, 99)
	assert.Equal(t, 2, items[2])
}

func TestPageNavigation(t *testing.T) {
	p := Paginate(seq(30), 2, 10)
	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.Equal(t, 1, p.Prev())
	assert.Equal(t, 3, p.Next())

	last := Paginate(seq(30), 3, 10)
	assert.False(t, last.HasNext())

	first := Paginate(seq(30), 1, 10)
	assert.False(t, first.HasPrev())

	past := Paginate(seq(30), 9, 10)
	assert.True(t, past.HasPrev())
	assert.Equal(t, 3, past.Prev(), "a page past the end points back at the last page")
	assert.False(t, past.HasNext())

	assert.False(t, Paginate(seq(0), 2, 10).HasPrev(), "an empty sequence has nothing to go back to")
	assert.False(t, Paginate(seq(30), -4, 10).HasPrev())
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		current, total int
		want           []int
	}{
		{1, 1, nil},
		{1, 3, []int{1, 2, 3}},
		{1, 10, []int{1, 2, 3, 4, 5}},
		{5, 10, []int{3, 4, 5, 6, 7}},
		{10, 10, []int{6, 7, 8, 9, 10}},
		{9, 10, []int{6, 7, 8, 9, 10}},
		{42, 10, []int{6, 7, 8, 9, 10}},
	}
	for _, tt := range tests {
		p := Paginate(seq(tt.total), tt.current, 1)
		assert.Equal(t, tt.want, p.Window(5), "Window(current=%d, total=%d)", tt.current, tt.total)
	}
}
