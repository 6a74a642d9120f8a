package domain

import "math"

// Window is the visible slice of an ordered collection for one page.
// Start and End are half open indexes into the collection.
type Window struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalCount  int  `json:"total_count"`
	TotalPages  int  `json:"total_pages"`
	Start       int  `json:"start"`
	End         int  `json:"end"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
	// Empty means there is nothing to show on this page, including pages past the last one
	Empty bool `json:"empty"`
}

// Paginate computes the window for a 1-based page. A page past the end is an empty
// window, not an error; the page number itself is never clamped.
func Paginate(totalCount, pageSize, currentPage int) (Window, error) {
	if totalCount < 0 {
		return Window{}, NewValidationError("total count", ErrNegativeTotal)
	}
	if pageSize <= 0 {
		return Window{}, NewValidationError("page size", ErrInvalidPageSize)
	}
	if currentPage < 1 {
		return Window{}, NewValidationError("page", ErrInvalidPage)
	}

	totalPages := totalCount / pageSize
	if totalCount%pageSize != 0 {
		totalPages++
	}
	w := Window{
		Page:        currentPage,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
	if currentPage > totalPages {
		// past the end: report where the page would start, or the end of the
		// collection when that offset does not fit in an int
		w.Start = totalCount
		if currentPage-1 <= math.MaxInt/pageSize {
			w.Start = (currentPage - 1) * pageSize
		}
		w.End = w.Start
		w.Empty = true
		return w, nil
	}
	w.Start = (currentPage - 1) * pageSize
	w.End = w.Start + min(pageSize, totalCount-w.Start)
	return w, nil
}

// PageOf returns the part of items covered by w, nil for an empty window
func PageOf[T any](items []T, w Window) []T {
	if w.Empty || w.Start < 0 || w.Start >= len(items) {
		return nil
	}
	return items[w.Start:min(w.End, len(items))]
}
