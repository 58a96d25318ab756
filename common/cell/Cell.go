// Package cell provides a reference-counted box with runtime borrow
// checking. A Cell stays alive while at least one owning handle designates
// it; its contents are reached through scoped shared or exclusive borrows
// that conflict loudly instead of aliasing silently. Everything here is
// single-threaded: counters are plain ints, no atomics, no locks.
package cell

import "fmt"

// BorrowError is the panic value raised when a borrow request conflicts
// with an outstanding borrow on the same cell.
type BorrowError struct {
	Requested string // "shared" or "exclusive"
	Held      string // what is currently outstanding
}

func (e *BorrowError) Error() string {
	if e.Held == "released" {
		return fmt.Sprintf("cell: %s through a released borrow", e.Requested)
	}
	return fmt.Sprintf("cell: %s rejected, %s borrow outstanding", e.Requested, e.Held)
}

// OwnershipError is the panic value raised on owner-count misuse: releasing
// a dead cell, touching a dead cell, or unwrapping a cell that still has
// other owners.
type OwnershipError struct {
	Op     string
	Owners int
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("cell: %s on cell with %d owners", e.Op, e.Owners)
}

// liveCells counts cells created and not yet released by their last owner.
// Test hook for leak detection; GC activity never changes it.
var liveCells int

// Live returns the number of cells whose owner count has not reached zero.
func Live() int { return liveCells }

type Cell[T any] struct {
	value T
	// owners is the number of handles that keep this cell alive.
	owners int
	// borrows is 0 when free, n>0 with n shared borrows, -1 when
	// exclusively borrowed.
	borrows int
	dead    bool
}

// New allocates a cell holding v with a single owner.
func New[T any](v T) *Cell[T] {
	liveCells++
	return &Cell[T]{value: v, owners: 1}
}

// Retain registers one more owner and returns c for assignment into the new
// owning slot.
func (c *Cell[T]) Retain() *Cell[T] {
	if c.dead {
		panic(&OwnershipError{Op: "retain", Owners: 0})
	}
	c.owners++
	return c
}

// Release drops one owner. When the last owner releases, the cell dies and
// the live counter decrements. Releasing the last owner while the contents
// are still borrowed would dangle the borrow, so it panics instead.
func (c *Cell[T]) Release() {
	if c.dead {
		panic(&OwnershipError{Op: "release", Owners: 0})
	}
	if c.owners == 1 && c.borrows != 0 {
		panic(&BorrowError{Requested: "release of last owner", Held: c.heldKind()})
	}
	c.owners--
	if c.owners == 0 {
		c.dead = true
		liveCells--
	}
}

// Borrow takes a shared view of the contents. Any number of shared borrows
// may coexist; an outstanding exclusive borrow makes this panic.
func (c *Cell[T]) Borrow() *Ref[T] {
	if c.dead {
		panic(&OwnershipError{Op: "borrow", Owners: 0})
	}
	if c.borrows < 0 {
		panic(&BorrowError{Requested: "shared borrow", Held: "exclusive"})
	}
	c.borrows++
	return &Ref[T]{c: c}
}

// BorrowMut takes the exclusive view of the contents. Panics if any borrow,
// shared or exclusive, is outstanding.
func (c *Cell[T]) BorrowMut() *RefMut[T] {
	if c.dead {
		panic(&OwnershipError{Op: "borrow_mut", Owners: 0})
	}
	if c.borrows != 0 {
		panic(&BorrowError{Requested: "exclusive borrow", Held: c.heldKind()})
	}
	c.borrows = -1
	return &RefMut[T]{c: c}
}

// Unwrap consumes the cell and moves the value out. The caller must be the
// sole owner and nothing may be borrowed; anything else is an ownership bug
// and panics rather than duplicating the value.
func (c *Cell[T]) Unwrap() T {
	if c.dead {
		panic(&OwnershipError{Op: "unwrap", Owners: 0})
	}
	if c.borrows != 0 {
		panic(&BorrowError{Requested: "unwrap", Held: c.heldKind()})
	}
	if c.owners != 1 {
		panic(&OwnershipError{Op: "unwrap", Owners: c.owners})
	}
	c.owners = 0
	c.dead = true
	liveCells--
	return c.value
}

func (c *Cell[T]) heldKind() string {
	if c.borrows < 0 {
		return "exclusive"
	}
	return "shared"
}

// Ref is a scoped shared view. It must be released exactly once.
type Ref[T any] struct {
	c        *Cell[T]
	released bool
}

func (r *Ref[T]) Value() T {
	if r.released {
		panic(&BorrowError{Requested: "read", Held: "released"})
	}
	return r.c.value
}

func (r *Ref[T]) Release() {
	if r.released {
		panic(&BorrowError{Requested: "release", Held: "released"})
	}
	r.released = true
	r.c.borrows--
}

// RefMut is a scoped exclusive view. It must be released exactly once.
type RefMut[T any] struct {
	c        *Cell[T]
	released bool
}

func (r *RefMut[T]) Value() T {
	if r.released {
		panic(&BorrowError{Requested: "read", Held: "released"})
	}
	return r.c.value
}

func (r *RefMut[T]) Set(v T) {
	if r.released {
		panic(&BorrowError{Requested: "write", Held: "released"})
	}
	r.c.value = v
}

func (r *RefMut[T]) Release() {
	if r.released {
		panic(&BorrowError{Requested: "release", Held: "released"})
	}
	r.released = true
	r.c.borrows = 0
}
