// Package carousel holds a cursor into a fixed, non-empty list that moves
// cyclically. It knows nothing about rendering; callers compare the index
// before and after a move to decide which way to animate.
package carousel

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a carousel is built from an empty list.
	ErrEmpty = errors.New("carousel: no items")
	// ErrOutOfRange is returned by GoTo for an index outside [0, Len()).
	ErrOutOfRange = errors.New("carousel: index out of range")
)

// Carousel is a cyclic cursor over a fixed list of items.
// It is not safe for concurrent use; the owning view serializes calls.
type Carousel[T any] struct {
	items []T
	index int
}

// New creates a carousel positioned at the first item.
func New[T any](items []T) (*Carousel[T], error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	return &Carousel[T]{items: append([]T(nil), items...)}, nil
}

// Next advances one item, wrapping from the last item to the first.
func (c *Carousel[T]) Next() int {
	return c.step(1)
}

// Previous retreats one item, wrapping from the first item to the last.
func (c *Carousel[T]) Previous() int {
	return c.step(-1)
}

func (c *Carousel[T]) step(delta int) int {
	n := len(c.items)
	c.index = ((c.index+delta)%n + n) % n
	return c.index
}

// GoTo jumps to index i. Out-of-range requests are rejected rather than
// clamped so a stale caller (e.g. an indicator drawn for a different list
// length) shows up as an error instead of a silently wrong slide.
func (c *Carousel[T]) GoTo(i int) error {
	if i < 0 || i >= len(c.items) {
		return fmt.Errorf("goto %d of %d: %w", i, len(c.items), ErrOutOfRange)
	}
	c.index = i
	return nil
}

// Current returns the item under the cursor.
func (c *Carousel[T]) Current() T {
	return c.items[c.index]
}

// Index returns the cursor position.
func (c *Carousel[T]) Index() int {
	return c.index
}

// Len returns the number of items.
func (c *Carousel[T]) Len() int {
	return len(c.items)
}

// Items returns a copy of the underlying list.
func (c *Carousel[T]) Items() []T {
	return append([]T(nil), c.items...)
}
