// Package listing holds paginated list state and the controller that drives
// it from an admin screen.
package listing

import (
	"slices"

	"github.com/onlyfix/admin/internal/shared/pagination"
)

// State is one screen's view of a paginated collection.
type State[T any] struct {
	Items       []T
	CurrentPage int
	LastPage    int
	Total       int
	Busy        bool
	Error       string
}

// InitialState is an empty first page.
func InitialState[T any]() State[T] {
	return State[T]{Items: []T{}, CurrentPage: 1, LastPage: 1}
}

func (s State[T]) HasNext() bool {
	return s.CurrentPage < s.LastPage
}

func (s State[T]) HasPrevious() bool {
	return s.CurrentPage > 1
}

func (s State[T]) IsEmpty() bool {
	return len(s.Items) == 0
}

// Action is an input to Reduce.
type Action interface {
	isAction()
}

// LoadStarted marks a request in flight and clears the previous error.
type LoadStarted struct{}

// PageLoaded replaces the items wholesale with a fetched page.
type PageLoaded[T any] struct {
	Page pagination.Response[T]
}

// LoadFailed ends a request with a message for the error banner.
type LoadFailed struct {
	Message string
}

// ItemReplaced swaps one item, e.g. after a workflow action. With Match set
// the item is located by Match on the current page and Index is ignored.
type ItemReplaced[T any] struct {
	Index int
	Match func(T) bool
	Item  T
}

// ItemRemoved drops one item and decrements the total. Match works as for
// ItemReplaced.
type ItemRemoved[T any] struct {
	Index int
	Match func(T) bool
}

// PageChanged moves the page cursor before a load.
type PageChanged struct {
	Page int
}

// ActionFinished ends a request that does not reload the page.
type ActionFinished struct{}

func (LoadStarted) isAction()     {}
func (PageLoaded[T]) isAction()   {}
func (LoadFailed) isAction()      {}
func (ItemReplaced[T]) isAction() {}
func (ItemRemoved[T]) isAction()  {}
func (PageChanged) isAction()     {}
func (ActionFinished) isAction()  {}

// Reduce returns the state after applying action. It never mutates s.
// Out-of-range indices and unmatched items leave the items unchanged.
func Reduce[T any](s State[T], action Action) State[T] {
	switch a := action.(type) {
	case LoadStarted:
		s.Busy = true
		s.Error = ""
	case PageLoaded[T]:
		s.Items = append([]T{}, a.Page.Data...)
		s.CurrentPage = max(a.Page.CurrentPage, 1)
		s.LastPage = max(a.Page.LastPage, 1)
		s.Total = a.Page.Total
		s.Busy = false
		s.Error = ""
	case LoadFailed:
		s.Busy = false
		s.Error = a.Message
	case ItemReplaced[T]:
		i := position(s.Items, a.Index, a.Match)
		if i < 0 {
			s.Busy = false
			return s
		}
		items := append([]T{}, s.Items...)
		items[i] = a.Item
		s.Items = items
		s.Busy = false
	case ItemRemoved[T]:
		i := position(s.Items, a.Index, a.Match)
		if i < 0 {
			s.Busy = false
			return s
		}
		items := make([]T, 0, len(s.Items)-1)
		items = append(items, s.Items[:i]...)
		s.Items = append(items, s.Items[i+1:]...)
		s.Total = max(s.Total-1, 0)
		s.Busy = false
	case PageChanged:
		s.CurrentPage = max(a.Page, 1)
	case ActionFinished:
		s.Busy = false
	}
	return s
}

func position[T any](items []T, index int, match func(T) bool) int {
	if match != nil {
		return slices.IndexFunc(items, match)
	}
	if index < 0 || index >= len(items) {
		return -1
	}
	return index
}
