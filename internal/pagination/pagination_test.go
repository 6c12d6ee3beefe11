package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tcases := []struct {
		name     string
		page     string
		limit    string
		expected Params
	}{
		{name: "empty input uses defaults", page: "", limit: "", expected: Params{Page: 1, Limit: 10}},
		{name: "valid values pass through", page: "3", limit: "25", expected: Params{Page: 3, Limit: 25}},
		{name: "garbage falls back to defaults", page: "abc", limit: "x", expected: Params{Page: 1, Limit: 10}},
		{name: "zero and negative fall back", page: "0", limit: "-5", expected: Params{Page: 1, Limit: 10}},
		{name: "limit is capped", page: "1", limit: "5000", expected: Params{Page: 1, Limit: 100}},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Parse(tc.page, tc.limit))
		})
	}
}

func TestOffset(t *testing.T) {
	// Page k of size n starts at row (k-1)*n.
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 50, Params{Page: 11, Limit: 5}.Offset())
}

func TestNewPage(t *testing.T) {
	items := []string{"a", "b", "c"}

	page := NewPage(items, 23, Params{Page: 2, Limit: 10})
	assert.Equal(t, items, page.Items)
	assert.Equal(t, int64(23), page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNextPage)
	assert.True(t, page.HasPrevPage)

	last := NewPage(items, 23, Params{Page: 3, Limit: 10})
	assert.False(t, last.HasNextPage)
	assert.True(t, last.HasPrevPage)

	first := NewPage(items, 23, Params{Page: 1, Limit: 10})
	assert.True(t, first.HasNextPage)
	assert.False(t, first.HasPrevPage)

	exact := NewPage(items, 20, Params{Page: 2, Limit: 10})
	assert.Equal(t, 2, exact.TotalPages)
	assert.False(t, exact.HasNextPage)
}

func TestNewPageEmpty(t *testing.T) {
	page := NewPage[string](nil, 0, Params{Page: 1, Limit: 10})
	// nil items must serialize as [], never null.
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
	assert.False(t, page.HasNextPage)
	assert.False(t, page.HasPrevPage)
}
