// Package stack implements a singly-linked stack with exclusive ownership:
// every node has exactly one owner, so there is no aliasing to police and
// no teardown obligation beyond letting the chain go.
package stack

import "iter"

type node[T any] struct {
	elem T
	next *node[T]
}

type Stack[T any] struct {
	head *node[T]
	size int
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Len() int { return s.size }

// Push puts v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.head = &node[T]{elem: v, next: s.head}
	s.size++
}

// Pop removes and returns the top element, or false if empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.head == nil {
		return zero, false
	}
	n := s.head
	s.head = n.next
	n.next = nil
	s.size--
	return n.elem, true
}

// Peek returns the top element without removing it, or false if empty.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if s.head == nil {
		return zero, false
	}
	return s.head.elem, true
}

// PeekMut applies fn to the top element in place. Returns false if empty.
func (s *Stack[T]) PeekMut(fn func(*T)) bool {
	if s.head == nil {
		return false
	}
	fn(&s.head.elem)
	return true
}

// All iterates the stack top-down without consuming it.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// IntoAll consumes the stack top-down, popping as it yields.
func (s *Stack[T]) IntoAll() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
