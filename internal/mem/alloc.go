package mem

import (
	"unsafe"
)

// Unsigned is the set of fixed-width unsigned integer types usable as a
// packed storage block.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Alignment is the byte alignment of every block allocation (64 bytes).
const Alignment = 64

// BitWidth returns the number of bits in the block type B.
func BitWidth[B Unsigned]() int {
	var z B
	return int(unsafe.Sizeof(z)) * 8
}

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure
// alignment. The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size == 0 {
		return nil
	}

	// Allocate size + alignment so an aligned offset always exists within
	// the buffer, at most Alignment-1 bytes in.
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocBlocks allocates a zero-initialized slice of n blocks of type B with
// 64-byte alignment. It returns nil when n is not positive.
func AllocBlocks[B Unsigned](n int) []B {
	if n <= 0 {
		return nil
	}

	var z B
	byteSlice := AllocAligned(n * int(unsafe.Sizeof(z)))

	// Safe because AllocAligned guarantees 64-byte alignment, which covers
	// the alignment of every unsigned integer type.
	ptr := unsafe.Pointer(&byteSlice[0]) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*B)(ptr), n)    //nolint:gosec // unsafe is required for memory alignment
}

// ReallocBlocks allocates a fresh slice of n blocks and copies the overlap
// from old into it. Content beyond the overlap is not guaranteed to be
// zeroed by this contract, even though the Go allocator happens to zero it;
// callers must not rely on zero-fill after growth.
func ReallocBlocks[B Unsigned](old []B, n int) []B {
	fresh := AllocBlocks[B](n)
	copy(fresh, old)
	return fresh
}
