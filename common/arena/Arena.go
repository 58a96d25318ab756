// Package arena implements a doubly-linked deque whose nodes live in one
// growable slice and link to each other by index. Absence is -1. Freed
// slots are recycled through a free list before the slice grows, so a hot
// deque stops allocating. Indices are stable handles: recycling a slot is
// independent of anything else referencing its index, which removes the
// need for reference counts or borrow flags entirely.
package arena

const none = -1

type slot[T any] struct {
	elem       T
	next, prev int32
}

// Deque is an index-linked double-ended queue. The zero value is not ready
// for use; call New.
type Deque[T any] struct {
	slots      []slot[T]
	head, tail int32
	free       int32 // head of the free list, chained through next
	size       int
}

func New[T any]() *Deque[T] {
	return &Deque[T]{head: none, tail: none, free: none}
}

func (d *Deque[T]) Len() int { return d.size }

// alloc takes a slot from the free list or grows the slice.
func (d *Deque[T]) alloc(v T) int32 {
	if d.free != none {
		idx := d.free
		d.free = d.slots[idx].next
		d.slots[idx] = slot[T]{elem: v, next: none, prev: none}
		return idx
	}
	d.slots = append(d.slots, slot[T]{elem: v, next: none, prev: none})
	return int32(len(d.slots) - 1)
}

// release pushes a slot onto the free list, clearing the element so the
// slice does not pin stale values.
func (d *Deque[T]) release(idx int32) {
	var zero T
	d.slots[idx] = slot[T]{elem: zero, next: d.free, prev: none}
	d.free = idx
}

// PushFront inserts v at the front of the deque.
func (d *Deque[T]) PushFront(v T) {
	idx := d.alloc(v)
	if d.head == none {
		d.head, d.tail = idx, idx
	} else {
		d.slots[idx].next = d.head
		d.slots[d.head].prev = idx
		d.head = idx
	}
	d.size++
}

// PushBack inserts v at the back of the deque.
func (d *Deque[T]) PushBack(v T) {
	idx := d.alloc(v)
	if d.tail == none {
		d.head, d.tail = idx, idx
	} else {
		d.slots[idx].prev = d.tail
		d.slots[d.tail].next = idx
		d.tail = idx
	}
	d.size++
}

// PopFront removes and returns the front element, or false if empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.head == none {
		return zero, false
	}
	idx := d.head
	next := d.slots[idx].next
	if next == none {
		d.head, d.tail = none, none
	} else {
		d.slots[next].prev = none
		d.head = next
	}
	v := d.slots[idx].elem
	d.release(idx)
	d.size--
	return v, true
}

// PopBack removes and returns the back element, or false if empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.tail == none {
		return zero, false
	}
	idx := d.tail
	prev := d.slots[idx].prev
	if prev == none {
		d.head, d.tail = none, none
	} else {
		d.slots[prev].next = none
		d.tail = prev
	}
	v := d.slots[idx].elem
	d.release(idx)
	d.size--
	return v, true
}

// PeekFront returns the front element, or false if empty.
func (d *Deque[T]) PeekFront() (T, bool) {
	var zero T
	if d.head == none {
		return zero, false
	}
	return d.slots[d.head].elem, true
}

// PeekBack returns the back element, or false if empty.
func (d *Deque[T]) PeekBack() (T, bool) {
	var zero T
	if d.tail == none {
		return zero, false
	}
	return d.slots[d.tail].elem, true
}

// PeekFrontMut returns a pointer to the front element for in-place update,
// or false if empty. The pointer stays valid until the element is popped;
// pushes may grow the slice, so do not hold it across mutations.
func (d *Deque[T]) PeekFrontMut() (*T, bool) {
	if d.head == none {
		return nil, false
	}
	return &d.slots[d.head].elem, true
}

// PeekBackMut returns a pointer to the back element for in-place update, or
// false if empty.
func (d *Deque[T]) PeekBackMut() (*T, bool) {
	if d.tail == none {
		return nil, false
	}
	return &d.slots[d.tail].elem, true
}
