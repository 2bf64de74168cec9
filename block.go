package cevtib

// Block is the set of fixed-width unsigned integer types usable as the
// packed storage unit of a Vector. The block width determines how many bits
// each allocated element holds.
type Block interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// blockIndex returns the index of the block holding bit i.
//
// Addressing performs no bounds checking; callers guarantee the resulting
// block index is within the allocation before dereferencing.
func blockIndex(i, bitsPerBlock int) int {
	return i / bitsPerBlock
}

// bitOffset returns the position of bit i within its block.
func bitOffset(i, bitsPerBlock int) int {
	return i % bitsPerBlock
}

// blockMask returns the mask selecting bit i within its block.
func blockMask[B Block](i, bitsPerBlock int) B {
	return B(1) << bitOffset(i, bitsPerBlock)
}
