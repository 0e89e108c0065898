// Package chain provides an immutable, append-only list that shares structure between versions.
package chain

import "iter"

type node[T any] struct {
	parent *node[T]
	val    T
}

// List is a persistent list.
// Appending returns a new List and never modifies the original, so many Lists may safely share a common prefix.
// The zero value is an empty List.
type List[T any] struct {
	tail *node[T]
	size int
}

// Append returns a new List with val added to the end.
func (l List[T]) Append(val T) List[T] {
	return List[T]{tail: &node[T]{parent: l.tail, val: val}, size: l.size + 1}
}

func (l List[T]) Len() int {
	return l.size
}

// All iterates the List from first to last element.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range l.Slice() {
			if !yield(val) {
				return
			}
		}
	}
}

// Slice copies the List into a new slice, first element first.
func (l List[T]) Slice() []T {
	if l.size == 0 {
		return nil
	}
	elements := make([]T, l.size)
	i := l.size - 1
	for n := l.tail; n != nil; n = n.parent {
		elements[i] = n.val
		i--
	}
	return elements
}

// Any reports whether match returns true for any element.
func (l List[T]) Any(match func(T) bool) bool {
	for n := l.tail; n != nil; n = n.parent {
		if match(n.val) {
			return true
		}
	}
	return false
}
