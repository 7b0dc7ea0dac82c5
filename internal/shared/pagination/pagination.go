// Package pagination defines the paginated list envelope shared by every
// collection endpoint.
package pagination

import "fmt"

// DefaultPerPage matches the backend's page size when none is requested.
const DefaultPerPage = 15

// Response is the wire shape {data, current_page, last_page, per_page, total}.
type Response[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

func (r *Response[T]) HasNext() bool {
	return r.CurrentPage < r.LastPage
}

func (r *Response[T]) HasPrevious() bool {
	return r.CurrentPage > 1
}

func (r *Response[T]) IsEmpty() bool {
	return len(r.Data) == 0
}

// Validate checks the envelope invariants.
func (r *Response[T]) Validate() error {
	if r.Total > 0 && r.CurrentPage > r.LastPage {
		return fmt.Errorf("current page %d exceeds last page %d", r.CurrentPage, r.LastPage)
	}
	if r.PerPage > 0 && len(r.Data) > r.PerPage {
		return fmt.Errorf("page holds %d items, per_page is %d", len(r.Data), r.PerPage)
	}
	return nil
}

// LastPageFor returns ceil(total/perPage), never less than 1.
func LastPageFor(total, perPage int) int {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	last := (total + perPage - 1) / perPage
	if last < 1 {
		return 1
	}
	return last
}

// Slice cuts one page out of items and builds the envelope around it.
func Slice[T any](items []T, page, perPage int) Response[T] {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}
	total := len(items)
	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	data := make([]T, end-start)
	copy(data, items[start:end])

	return Response[T]{
		Data:        data,
		CurrentPage: page,
		LastPage:    LastPageFor(total, perPage),
		PerPage:     perPage,
		Total:       total,
	}
}
