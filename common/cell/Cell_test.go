package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverFrom(fn func()) (v any) {
	defer func() { v = recover() }()
	fn()
	return nil
}

func TestRetainRelease(t *testing.T) {
	base := Live()
	c := New(42)
	require.Equal(t, base+1, Live())

	c.Retain()
	c.Release()
	require.Equal(t, base+1, Live(), "one owner left, cell must stay alive")

	c.Release()
	require.Equal(t, base, Live(), "last owner released, cell must die")

	require.IsType(t, &OwnershipError{}, recoverFrom(func() { c.Release() }))
	require.IsType(t, &OwnershipError{}, recoverFrom(func() { c.Borrow() }))
	require.IsType(t, &OwnershipError{}, recoverFrom(func() { c.Retain() }))
}

func TestSharedBorrows(t *testing.T) {
	c := New("v")
	defer c.Release()

	r1 := c.Borrow()
	r2 := c.Borrow()
	assert.Equal(t, "v", r1.Value())
	assert.Equal(t, "v", r2.Value())

	// exclusive access is rejected while shared views are out
	require.IsType(t, &BorrowError{}, recoverFrom(func() { c.BorrowMut() }))

	r1.Release()
	r2.Release()

	m := c.BorrowMut()
	m.Set("w")
	m.Release()

	r := c.Borrow()
	assert.Equal(t, "w", r.Value())
	r.Release()
}

func TestExclusiveBorrow(t *testing.T) {
	c := New(1)
	defer c.Release()

	m := c.BorrowMut()
	require.IsType(t, &BorrowError{}, recoverFrom(func() { c.Borrow() }))
	require.IsType(t, &BorrowError{}, recoverFrom(func() { c.BorrowMut() }))
	m.Release()

	// double release of a view
	require.IsType(t, &BorrowError{}, recoverFrom(func() { m.Release() }))
}

func TestReleaseWhileBorrowed(t *testing.T) {
	c := New(1)
	r := c.Borrow()
	require.IsType(t, &BorrowError{}, recoverFrom(func() { c.Release() }))
	r.Release()
	c.Release()
}

func TestUnwrap(t *testing.T) {
	base := Live()
	c := New(7)
	assert.Equal(t, 7, c.Unwrap())
	require.Equal(t, base, Live())
	require.IsType(t, &OwnershipError{}, recoverFrom(func() { c.Borrow() }))
}

func TestUnwrapRejectsSharedOwnership(t *testing.T) {
	c := New(7)
	c.Retain()
	err := recoverFrom(func() { c.Unwrap() })
	require.IsType(t, &OwnershipError{}, err)
	assert.Equal(t, 2, err.(*OwnershipError).Owners)

	c.Release()
	r := c.Borrow()
	require.IsType(t, &BorrowError{}, recoverFrom(func() { c.Unwrap() }))
	r.Release()

	assert.Equal(t, 7, c.Unwrap())
}
