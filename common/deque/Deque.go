// Package deque implements a doubly-linked deque whose nodes are jointly
// owned through reference-counted cells. Adjacent nodes own each other (a
// node's next link and its successor's prev link both count as owners), so
// either traversal direction keeps the chain alive — and dropping the deque
// without Drain leaves the internal nodes in a live ownership cycle. Node
// contents are reached through runtime-checked borrows; conflicting access
// panics instead of corrupting the links.
package deque

import "github.com/minhle92/list-playground/common/cell"

type node[T any] struct {
	elem T
	// Owning links. nil marks the ends of the chain.
	next, prev *cell.Cell[node[T]]
}

// Deque holds owning links to both endpoints. Empty means both are nil.
type Deque[T any] struct {
	head, tail *cell.Cell[node[T]]
}

func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// PushFront inserts v at the front of the deque.
func (d *Deque[T]) PushFront(v T) {
	n := cell.New(node[T]{elem: v})
	if d.head == nil {
		d.tail = n.Retain()
		d.head = n
		return
	}
	old := d.head
	m := old.BorrowMut()
	nd := m.Value()
	nd.prev = n.Retain()
	m.Set(nd)
	m.Release()

	// Ownership of old moves from the head slot into n's next link.
	m = n.BorrowMut()
	nd = m.Value()
	nd.next = old
	m.Set(nd)
	m.Release()

	d.head = n
}

// PushBack inserts v at the back of the deque.
func (d *Deque[T]) PushBack(v T) {
	n := cell.New(node[T]{elem: v})
	if d.tail == nil {
		d.head = n.Retain()
		d.tail = n
		return
	}
	old := d.tail
	m := old.BorrowMut()
	nd := m.Value()
	nd.next = n.Retain()
	m.Set(nd)
	m.Release()

	m = n.BorrowMut()
	nd = m.Value()
	nd.prev = old
	m.Set(nd)
	m.Release()

	d.tail = n
}

// PopFront detaches the front node and moves its value out. The second
// return is false on an empty deque.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.head == nil {
		return zero, false
	}
	old := d.head
	d.head = nil

	m := old.BorrowMut()
	nd := m.Value()
	next := nd.next
	nd.next = nil
	m.Set(nd)
	m.Release()

	if next != nil {
		// Severing the new head's prev link drops old's second owner.
		nm := next.BorrowMut()
		nnd := nm.Value()
		nnd.prev.Release()
		nnd.prev = nil
		nm.Set(nnd)
		nm.Release()
		d.head = next
	} else {
		d.tail.Release()
		d.tail = nil
	}
	// Every other link is gone; Unwrap asserts sole ownership.
	return old.Unwrap().elem, true
}

// PopBack detaches the back node and moves its value out. The second return
// is false on an empty deque.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.tail == nil {
		return zero, false
	}
	old := d.tail
	d.tail = nil

	m := old.BorrowMut()
	nd := m.Value()
	prev := nd.prev
	nd.prev = nil
	m.Set(nd)
	m.Release()

	if prev != nil {
		pm := prev.BorrowMut()
		pnd := pm.Value()
		pnd.next.Release()
		pnd.next = nil
		pm.Set(pnd)
		pm.Release()
		d.tail = prev
	} else {
		d.head.Release()
		d.head = nil
	}
	return old.Unwrap().elem, true
}

// PeekFront returns a shared view of the front value or false if empty.
// The view must be released; while held, exclusive access to the front node
// panics.
func (d *Deque[T]) PeekFront() (*View[T], bool) {
	if d.head == nil {
		return nil, false
	}
	return &View[T]{ref: d.head.Borrow()}, true
}

// PeekBack returns a shared view of the back value or false if empty.
func (d *Deque[T]) PeekBack() (*View[T], bool) {
	if d.tail == nil {
		return nil, false
	}
	return &View[T]{ref: d.tail.Borrow()}, true
}

// PeekFrontMut returns an exclusive view of the front value or false if
// empty. The view must be released; while held, any other access to the
// front node panics.
func (d *Deque[T]) PeekFrontMut() (*ViewMut[T], bool) {
	if d.head == nil {
		return nil, false
	}
	return &ViewMut[T]{ref: d.head.BorrowMut()}, true
}

// PeekBackMut returns an exclusive view of the back value or false if empty.
func (d *Deque[T]) PeekBackMut() (*ViewMut[T], bool) {
	if d.tail == nil {
		return nil, false
	}
	return &ViewMut[T]{ref: d.tail.BorrowMut()}, true
}

// Drain pops from the front until the deque is empty, releasing every node
// deterministically. Required teardown: the mutual next/prev ownership means
// simply dropping the deque leaves internal nodes owned by their neighbors.
func (d *Deque[T]) Drain() {
	for {
		if _, ok := d.PopFront(); !ok {
			return
		}
	}
}

// View is a scoped read-only view of one element.
type View[T any] struct {
	ref *cell.Ref[node[T]]
}

func (v *View[T]) Value() T { return v.ref.Value().elem }
func (v *View[T]) Release() { v.ref.Release() }

// ViewMut is a scoped exclusive view of one element.
type ViewMut[T any] struct {
	ref *cell.RefMut[node[T]]
}

func (v *ViewMut[T]) Value() T { return v.ref.Value().elem }

func (v *ViewMut[T]) Set(elem T) {
	nd := v.ref.Value()
	nd.elem = elem
	v.ref.Set(nd)
}

func (v *ViewMut[T]) Release() { v.ref.Release() }
