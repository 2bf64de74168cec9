package fixed

const wordBits = 64

// BitVec is a fixed-capacity bit vector backed by 64-bit words.
type BitVec []uint64

// New creates a zeroed BitVec with room for at least size bits, rounded up
// to whole words.
func New(size int) BitVec {
	if size <= 0 {
		return nil
	}

	words := size / wordBits
	if words*wordBits < size {
		words++
	}

	return BitVec(make([]uint64, words))
}

// FromBlocks wraps caller-owned word storage without allocating. The BitVec
// shares the storage; mutations are visible to the caller.
func FromBlocks(blocks []uint64) BitVec {
	return BitVec(blocks)
}

// Len returns the capacity in bits.
func (bv BitVec) Len() int {
	return len(bv) * wordBits
}

// Test returns true if the bit at pos is set. The position must satisfy
// 0 <= pos < Len().
func (bv BitVec) Test(pos int) bool {
	return bv[pos>>6]&(1<<(pos&63)) != 0
}

// Set sets the bit at pos. The position must satisfy 0 <= pos < Len().
func (bv BitVec) Set(pos int) {
	bv[pos>>6] |= 1 << (pos & 63)
}

// Unset clears the bit at pos. The position must satisfy 0 <= pos < Len().
func (bv BitVec) Unset(pos int) {
	bv[pos>>6] &^= 1 << (pos & 63)
}

// Clear zeroes every bit.
func (bv BitVec) Clear() {
	for i := range bv {
		bv[i] = 0
	}
}
