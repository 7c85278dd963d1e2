// Package filter derives a category-restricted view of a fixed item list.
package filter

import (
	"errors"
	"fmt"
)

// All is the wildcard category; selecting it shows every item.
const All = "All"

// ErrUnknownCategory is returned when the active category is set to a label
// that was not declared at construction.
var ErrUnknownCategory = errors.New("filter: unknown category")

// Filter holds an active category over a fixed list of items.
// It is not safe for concurrent use.
type Filter[T any] struct {
	categories []string
	declared   map[string]struct{}
	items      []T
	categoryOf func(T) string
	active     string
}

// New creates a filter with All active. The All sentinel may appear in
// categories; it is never treated as a declared category.
func New[T any](categories []string, items []T, categoryOf func(T) string) *Filter[T] {
	f := &Filter[T]{
		declared:   make(map[string]struct{}, len(categories)),
		items:      append([]T(nil), items...),
		categoryOf: categoryOf,
		active:     All,
	}
	for _, c := range categories {
		if c == All {
			continue
		}
		if _, dup := f.declared[c]; dup {
			continue
		}
		f.declared[c] = struct{}{}
		f.categories = append(f.categories, c)
	}
	return f
}

// SetActive selects category c. Undeclared labels are rejected and leave the
// current selection untouched.
func (f *Filter[T]) SetActive(c string) error {
	if c != All {
		if _, ok := f.declared[c]; !ok {
			return fmt.Errorf("set %q: %w", c, ErrUnknownCategory)
		}
	}
	f.active = c
	return nil
}

// Active returns the selected category.
func (f *Filter[T]) Active() string {
	return f.active
}

// Categories returns All followed by the declared categories in order.
func (f *Filter[T]) Categories() []string {
	out := make([]string, 0, len(f.categories)+1)
	out = append(out, All)
	return append(out, f.categories...)
}

// Filtered returns the items matching the active category in their original
// order. The result is computed on every call and owned by the caller.
func (f *Filter[T]) Filtered() []T {
	if f.active == All {
		return append([]T(nil), f.items...)
	}
	out := make([]T, 0, len(f.items))
	for _, it := range f.items {
		if f.categoryOf(it) == f.active {
			out = append(out, it)
		}
	}
	return out
}

// Count returns how many items fall in category c (all items for All).
func (f *Filter[T]) Count(c string) int {
	if c == All {
		return len(f.items)
	}
	n := 0
	for _, it := range f.items {
		if f.categoryOf(it) == c {
			n++
		}
	}
	return n
}
