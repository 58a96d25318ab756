// Package plist implements a persistent singly-linked list. Lists are
// immutable values: Prepend returns a new list whose tail is shared with
// the old one, and nothing is ever mutated through a shared reference, so
// shared ownership here carries no aliasing hazard.
package plist

import "iter"

type node[T any] struct {
	elem T
	next *node[T]
}

// List is an immutable list value. The zero value is the empty list.
type List[T any] struct {
	head *node[T]
	size int
}

func New[T any]() List[T] {
	return List[T]{}
}

func (l List[T]) Len() int { return l.size }

// Prepend returns a new list with v at the front. The receiver is unchanged
// and becomes the new list's shared suffix.
func (l List[T]) Prepend(v T) List[T] {
	return List[T]{head: &node[T]{elem: v, next: l.head}, size: l.size + 1}
}

// Head returns the front element, or false if the list is empty.
func (l List[T]) Head() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	return l.head.elem, true
}

// Tail returns the list without its front element. The tail of the empty
// list is the empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return l
	}
	return List[T]{head: l.head.next, size: l.size - 1}
}

// All iterates front to back.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}
