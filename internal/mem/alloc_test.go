package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	for _, size := range []int{1, 7, 64, 100, 4096} {
		buf := AllocAligned(size)

		assert.Equal(t, size, len(buf))
		assert.Zero(t, uintptr(unsafe.Pointer(&buf[0]))%Alignment)
	}
}

func TestAllocAlignedZero(t *testing.T) {
	assert.Nil(t, AllocAligned(0))
}

func TestAllocBlocks(t *testing.T) {
	blocks := AllocBlocks[uint64](16)

	assert.Equal(t, 16, len(blocks))
	assert.Zero(t, uintptr(unsafe.Pointer(&blocks[0]))%Alignment)

	for _, b := range blocks {
		assert.Zero(t, b)
	}
}

func TestAllocBlocksNonPositive(t *testing.T) {
	assert.Nil(t, AllocBlocks[uint8](0))
	assert.Nil(t, AllocBlocks[uint8](-1))
}

func TestReallocBlocksPreservesOverlap(t *testing.T) {
	old := AllocBlocks[uint32](4)
	for i := range old {
		old[i] = uint32(i + 1)
	}

	grown := ReallocBlocks(old, 8)
	assert.Equal(t, 8, len(grown))
	for i := 0; i < 4; i++ {
		assert.Equal(t, uint32(i+1), grown[i])
	}

	shrunk := ReallocBlocks(grown, 2)
	assert.Equal(t, []uint32{1, 2}, shrunk)
}

func TestBitWidth(t *testing.T) {
	assert.Equal(t, 8, BitWidth[uint8]())
	assert.Equal(t, 16, BitWidth[uint16]())
	assert.Equal(t, 32, BitWidth[uint32]())
	assert.Equal(t, 64, BitWidth[uint64]())
}
