package grid

// Pure pagination derivations. Every function here is a function of its
// arguments only: no hidden state, no side effects. That is what makes
// pagination correctness testable independent of the store and of
// rendering.

// TotalPages returns the page count for rowCount rows at pageSize rows
// per page: ceil(rowCount/pageSize), with a minimum of one page so an
// empty collection still has a current page to stand on.
func TotalPages(rowCount, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	pages := rowCount / pageSize
	if rowCount%pageSize > 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	return pages
}

// ClampPage snaps a requested page into [1, totalPages]. Out-of-range
// requests are not errors; they land on the nearest valid page.
func ClampPage(requested, totalPages int) int {
	if requested < 1 {
		return 1
	}
	if requested > totalPages {
		return totalPages
	}
	return requested
}

// Window returns the inclusive 1-based sequence-index range shown on
// the given page. When rowCount is zero the window is empty, signalled
// by end < start.
func Window(page, pageSize, rowCount int) (start, end int) {
	if rowCount == 0 || pageSize < 1 {
		return 1, 0
	}
	start = (page-1)*pageSize + 1
	end = page * pageSize
	if end > rowCount {
		end = rowCount
	}
	if start > end {
		return 1, 0
	}
	return start, end
}

// NextPage advances by one page, saturating at totalPages.
func NextPage(current, totalPages int) int {
	if current+1 > totalPages {
		return totalPages
	}
	return current + 1
}

// PrevPage retreats by one page, saturating at 1.
func PrevPage(current int) int {
	if current-1 < 1 {
		return 1
	}
	return current - 1
}

// PageMeta summarizes pagination state for a snapshot.
type PageMeta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalRows   int  `json:"total_rows"   yaml:"total_rows"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// MetaFor derives the pagination summary for a page over rowCount rows.
// The page is clamped before the summary is computed, so the result is
// always internally consistent.
func MetaFor(page, pageSize, rowCount int) PageMeta {
	totalPages := TotalPages(rowCount, pageSize)
	current := ClampPage(page, totalPages)
	return PageMeta{
		CurrentPage: current,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalRows:   rowCount,
		HasPrevious: current > 1,
		HasNext:     current < totalPages,
	}
}
