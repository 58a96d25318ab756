package deque

// IntoIter consumes a deque from both ends. Next and NextBack are two
// cursors converging on the same chain: each delegates to the corresponding
// pop, so exhaustion and the deque's own emptiness share one source of
// truth and the cursors can never cross, duplicate, or skip an element.
type IntoIter[T any] struct {
	d *Deque[T]
}

// IntoIter takes ownership of the deque's contents. The deque is drained as
// the iterator is consumed and must not be used directly afterwards.
func (d *Deque[T]) IntoIter() *IntoIter[T] {
	return &IntoIter[T]{d: d}
}

// Next yields the front element, or false once all elements are consumed.
// Exhaustion is idempotent.
func (it *IntoIter[T]) Next() (T, bool) {
	return it.d.PopFront()
}

// NextBack yields the back element, or false once all elements are
// consumed. Exhaustion is idempotent.
func (it *IntoIter[T]) NextBack() (T, bool) {
	return it.d.PopBack()
}
