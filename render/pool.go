// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import "github.com/halvard/rendercore/internal/bitm"

// Pool is a fixed-capacity allocator of uniform-size slots
// for resource type T, with a parallel trailer of
// backend-private bytes appended to every slot.
//
// A slot's index is its stable handle: it does not change
// for the lifetime of the value stored there, and is not
// reused until Destroy is called for that index. Pool is
// not itself safe for concurrent use; the FrontendContext
// serializes access to its pools with a single mutex.
type Pool[T any] struct {
	slots       []T
	trailer     []byte
	trailerSize int
	used        bitm.Bitm[uint32]
	size        int
	capacity    int
}

// NewPool creates a Pool with room for exactly capacity
// values of T, each with a trailer of trailerSize bytes.
func NewPool[T any](capacity, trailerSize int) *Pool[T] {
	if capacity <= 0 {
		panic("render: pool capacity must be positive")
	}
	p := &Pool[T]{
		slots:       make([]T, capacity),
		trailer:     make([]byte, capacity*trailerSize),
		trailerSize: trailerSize,
		capacity:    capacity,
	}
	p.used.Grow((capacity + 31) / 32)
	return p
}

// Create allocates a slot and returns its index together
// with a pointer to the (zero-valued) slot. The caller is
// responsible for fully initializing the value; Pool does
// not zero slots on Destroy/Create boundaries beyond what
// the zero value of T already provides.
//
// It panics if the pool's capacity has been exhausted:
// exceeding a pool's capacity is a programmer error with
// no recovery path.
func (p *Pool[T]) Create() (index int, val *T) {
	if p.size >= p.capacity {
		panic("render: pool capacity exceeded")
	}
	i, ok := p.used.Search()
	if !ok || i >= p.capacity {
		panic("render: pool capacity exceeded")
	}
	p.used.Set(i)
	p.size++
	var zero T
	p.slots[i] = zero
	clear(p.Trailer(i))
	return i, &p.slots[i]
}

// Destroy returns the slot at index to the pool, making it
// available for reuse by a subsequent Create call.
// It panics if index does not currently identify a live slot.
func (p *Pool[T]) Destroy(index int) {
	if index < 0 || index >= p.capacity || !p.used.IsSet(index) {
		panic("render: destroying a pool slot that is not in use")
	}
	p.used.Unset(index)
	p.size--
}

// At returns a pointer to the value stored at index.
// The caller must ensure that index identifies a live slot.
func (p *Pool[T]) At(index int) *T { return &p.slots[index] }

// Trailer returns the backend-private byte range following
// the slot at index.
func (p *Pool[T]) Trailer(index int) []byte {
	return p.trailer[index*p.trailerSize : (index+1)*p.trailerSize]
}

// Capacity returns the total number of slots in the pool.
func (p *Pool[T]) Capacity() int { return p.capacity }

// Size returns the number of slots currently in use.
func (p *Pool[T]) Size() int { return p.size }

// All returns an iterator over the pool's live slots, in
// index order.
func (p *Pool[T]) All() func(yield func(index int, val *T) bool) {
	return func(yield func(index int, val *T) bool) {
		for i := 0; i < p.capacity; i++ {
			if !p.used.IsSet(i) {
				continue
			}
			if !yield(i, &p.slots[i]) {
				return
			}
		}
	}
}
