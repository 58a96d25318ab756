// Package workload derives reproducible streams of deque operations from a
// seed string. The same seed always yields the same stream, which makes
// randomized property tests and bench runs replayable.
package workload

import (
	"encoding/binary"

	"github.com/aviddiviner/go-murmur"

	"github.com/minhle92/list-playground/utils/hashkit"
)

type Kind int

const (
	PushFront Kind = iota
	PushBack
	PopFront
	PopBack
)

func (k Kind) String() string {
	switch k {
	case PushFront:
		return "push_front"
	case PushBack:
		return "push_back"
	case PopFront:
		return "pop_front"
	case PopBack:
		return "pop_back"
	}
	return "unknown"
}

type Op struct {
	Kind  Kind
	Value int // payload for pushes, ignored by pops
}

// Sequence derives n operations from seed. Kinds come from a seeded murmur32
// stream, payloads from murmur64, both keyed on the op index, so streams for
// different seeds diverge immediately.
func Sequence(seed string, n int) []Op {
	h := murmur.New32(hashkit.Jenkins([]byte(seed)))
	ops := make([]Op, n)
	var buf [8]byte
	for i := range ops {
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		h.Reset()
		h.Write([]byte(seed))
		h.Write(buf[:])
		k := h.Sum32()
		ops[i] = Op{
			Kind:  Kind(k % 4),
			Value: int(hashkit.Murmur64(append(buf[:], seed...)) >> 1),
		}
	}
	return ops
}
