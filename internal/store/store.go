package store

import (
	"github.com/eHammarstrom/cevtib/internal/mem"
)

// Stats tracks buffer allocation metrics.
type Stats struct {
	BlocksReserved uint64 // Current: blocks held by the allocation
	Reallocs       uint64 // Historical: number of reallocations performed
}

// Buffer is an exclusively owned, resizable run of blocks of type B.
//
// The zero value is not usable; create one with Alloc.
type Buffer[B mem.Unsigned] struct {
	blocks []B
	stats  Stats
}

// Alloc reserves zero-initialized storage for the given number of blocks.
// The block count must be positive.
func Alloc[B mem.Unsigned](blocks int) *Buffer[B] {
	if blocks <= 0 {
		panic("store: allocation of non-positive block count")
	}

	data := mem.AllocBlocks[B](blocks)
	if data == nil {
		panic("store: unable to allocate block storage")
	}

	return &Buffer[B]{
		blocks: data,
		stats:  Stats{BlocksReserved: uint64(blocks)},
	}
}

// Len returns the number of blocks currently reserved.
func (b *Buffer[B]) Len() int {
	return len(b.blocks)
}

// Load returns the block at index i. The index must satisfy 0 <= i < Len.
func (b *Buffer[B]) Load(i int) B {
	return b.blocks[i]
}

// Store writes the block at index i. The index must satisfy 0 <= i < Len.
func (b *Buffer[B]) Store(i int, v B) {
	b.blocks[i] = v
}

// Realloc resizes the reservation to the given block count, preserving the
// content of the overlapping range. The block count must be positive.
//
// Content beyond the old reservation is not guaranteed to be zeroed.
func (b *Buffer[B]) Realloc(blocks int) {
	if blocks <= 0 {
		panic("store: reallocation to non-positive block count")
	}
	if b.blocks == nil {
		panic("store: reallocation after release")
	}

	data := mem.ReallocBlocks(b.blocks, blocks)
	if data == nil {
		panic("store: unable to reallocate block storage")
	}

	b.blocks = data
	b.stats.BlocksReserved = uint64(blocks)
	b.stats.Reallocs++
}

// Release frees the reservation. It must be called exactly once; a second
// call panics, and the Buffer must not be used afterwards.
func (b *Buffer[B]) Release() {
	if b.blocks == nil {
		panic("store: double release of block storage")
	}

	b.blocks = nil
	b.stats.BlocksReserved = 0
}

// Stats returns a snapshot of the allocation metrics.
func (b *Buffer[B]) Stats() Stats {
	return b.stats
}
