// Package render holds the layout rules shared by both document
// renderers so the vector and rasterized outputs paginate identically.
package render

import "github.com/spangleswebx/backoffice/internal/document/domain"

// RowsPerPage is the fixed item count per output page.
const RowsPerPage = 12

// Paginate chunks items into fixed-size pages. An empty document still
// yields one empty page.
func Paginate(items []domain.LineItem) [][]domain.LineItem {
	if len(items) == 0 {
		return [][]domain.LineItem{{}}
	}
	var pages [][]domain.LineItem
	for start := 0; start < len(items); start += RowsPerPage {
		end := start + RowsPerPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[start:end])
	}
	return pages
}

// PageCount reports how many pages Paginate will produce for n items.
func PageCount(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + RowsPerPage - 1) / RowsPerPage
}
