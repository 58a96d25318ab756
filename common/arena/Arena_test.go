package arena

import (
	"testing"

	"github.com/emirpasic/gods/v2/lists/doublylinkedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle92/list-playground/common/workload"
)

func TestEmpty(t *testing.T) {
	d := New[int]()
	assert.Equal(t, 0, d.Len())
	_, ok := d.PopFront()
	assert.False(t, ok)
	_, ok = d.PopBack()
	assert.False(t, ok)
	_, ok = d.PeekFront()
	assert.False(t, ok)
	_, ok = d.PeekBack()
	assert.False(t, ok)
}

func TestPopOrderDuality(t *testing.T) {
	d := New[int]()
	for _, v := range []int{1, 2, 3} {
		d.PushFront(v)
	}
	assert.Equal(t, 3, d.Len())
	for _, want := range []int{3, 2, 1} {
		got, ok := d.PopFront()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	for _, v := range []int{1, 2, 3} {
		d.PushFront(v)
	}
	for _, want := range []int{1, 2, 3} {
		got, ok := d.PopBack()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, d.Len())
}

func TestMixedEnds(t *testing.T) {
	d := New[int]()
	d.PushFront(7)
	d.PushBack(8)
	d.PushFront(9)

	f, ok := d.PeekFront()
	require.True(t, ok)
	assert.Equal(t, 9, f)
	b, ok := d.PeekBack()
	require.True(t, ok)
	assert.Equal(t, 8, b)

	got := []int{}
	for {
		v, ok := d.PopFront()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{9, 7, 8}, got)
}

func TestPeekMutWritesInPlace(t *testing.T) {
	d := New[int]()
	d.PushFront(30)
	d.PushFront(20)

	p, ok := d.PeekFrontMut()
	require.True(t, ok)
	*p = 100

	v, ok := d.PeekFront()
	require.True(t, ok)
	assert.Equal(t, 100, v)

	q, ok := d.PeekBackMut()
	require.True(t, ok)
	*q = 42
	v, ok = d.PopBack()
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestFreeListRecycling(t *testing.T) {
	d := New[int]()
	const width = 8
	for round := 0; round < 100; round++ {
		for i := 0; i < width; i++ {
			d.PushBack(i)
		}
		for i := 0; i < width; i++ {
			_, ok := d.PopFront()
			require.True(t, ok)
		}
	}
	assert.Equal(t, 0, d.Len())
	assert.LessOrEqual(t, len(d.slots), width, "freed slots must be recycled, not appended")
}

func TestRandomOpsAgainstModel(t *testing.T) {
	d := New[int]()
	model := doublylinkedlist.New[int]()

	for _, op := range workload.Sequence("arena-props", 2000) {
		switch op.Kind {
		case workload.PushFront:
			d.PushFront(op.Value)
			model.Prepend(op.Value)
		case workload.PushBack:
			d.PushBack(op.Value)
			model.Append(op.Value)
		case workload.PopFront:
			got, ok := d.PopFront()
			want, wok := model.Get(0)
			require.Equal(t, wok, ok)
			if ok {
				require.Equal(t, want, got)
				model.Remove(0)
			}
		case workload.PopBack:
			got, ok := d.PopBack()
			want, wok := model.Get(model.Size() - 1)
			require.Equal(t, wok, ok)
			if ok {
				require.Equal(t, want, got)
				model.Remove(model.Size() - 1)
			}
		}
		require.Equal(t, model.Size(), d.Len())
	}
}
