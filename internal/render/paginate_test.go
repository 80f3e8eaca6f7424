package render

import (
	"testing"

	"github.com/spangleswebx/backoffice/internal/document/domain"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	cases := []struct {
		items int
		pages int
	}{
		{0, 1},
		{1, 1},
		{12, 1},
		{13, 2},
		{24, 2},
		{25, 3},
		{30, 3},
	}
	for _, tc := range cases {
		items := make([]domain.LineItem, tc.items)
		pages := Paginate(items)
		assert.Len(t, pages, tc.pages, "items=%d", tc.items)
		assert.Equal(t, tc.pages, PageCount(tc.items), "items=%d", tc.items)

		total := 0
		for _, p := range pages {
			assert.LessOrEqual(t, len(p), RowsPerPage)
			total += len(p)
		}
		assert.Equal(t, tc.items, total)
	}
}
