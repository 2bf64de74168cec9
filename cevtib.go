package cevtib

import (
	"fmt"
	"strings"

	"github.com/eHammarstrom/cevtib/internal/mem"
	"github.com/eHammarstrom/cevtib/internal/store"
)

// DefaultInitialBlocks is the block reservation made by New when no capacity
// option is given. Starting at two blocks leaves growth headroom before the
// first reallocation.
const DefaultInitialBlocks = 2

// Vector is a growable, bit-packed boolean sequence backed by an exclusively
// owned allocation of blocks of type B.
//
// The zero value is not usable; create one with New. A Vector is not safe
// for concurrent use.
type Vector[B Block] struct {
	buf          *store.Buffer[B]
	length       int
	bitsPerBlock int
	shrinkOnPop  bool
	logger       *Logger
}

// New creates an empty Vector with a non-zero initial block reservation.
//
// Every addressable bit of the initial reservation reads as false. Fatal
// conditions (allocation failure) panic; see the package documentation for
// the error model.
func New[B Block](optFns ...Option) *Vector[B] {
	opts := options{
		initialBlocks: DefaultInitialBlocks,
		logger:        NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	bitsPerBlock := mem.BitWidth[B]()

	blocks := opts.initialBlocks
	if opts.capacityHint > 0 {
		blocks = (opts.capacityHint + bitsPerBlock - 1) / bitsPerBlock
	}

	return &Vector[B]{
		buf:          store.Alloc[B](blocks),
		bitsPerBlock: bitsPerBlock,
		shrinkOnPop:  opts.shrinkOnPop,
		logger:       opts.logger,
	}
}

// Len returns the number of logical bits in the vector.
func (v *Vector[B]) Len() int {
	return v.length
}

// Cap returns the total number of addressable bits across all allocated
// blocks. It is always a whole multiple of the block width.
func (v *Vector[B]) Cap() int {
	return v.buf.Len() * v.bitsPerBlock
}

// GetUnchecked reads the bit at index i without checking it against the
// length. The index must satisfy 0 <= i < Cap(); bits at or beyond Len()
// are addressable but carry no logical meaning.
func (v *Vector[B]) GetUnchecked(i int) bool {
	block := v.buf.Load(blockIndex(i, v.bitsPerBlock))
	return block&blockMask[B](i, v.bitsPerBlock) != 0
}

// Get returns the bit at index i, reporting whether the index is covered by
// the current length. The report distinguishes "no such bit" from a bit
// that is false.
func (v *Vector[B]) Get(i int) (bool, bool) {
	if i < 0 || i >= v.length {
		return false, false
	}

	return v.GetUnchecked(i), true
}

// SetUnchecked writes the bit at index i, leaving the length untouched. The
// index must satisfy 0 <= i < Cap().
func (v *Vector[B]) SetUnchecked(i int, val bool) {
	bi := blockIndex(i, v.bitsPerBlock)
	mask := blockMask[B](i, v.bitsPerBlock)

	if val {
		v.buf.Store(bi, v.buf.Load(bi)|mask)
	} else {
		v.buf.Store(bi, v.buf.Load(bi)&^mask)
	}
}

// Set writes the bit at index i. It returns ErrOutOfBounds when i is not
// covered by the current length. Set never extends the length; only Push
// does.
func (v *Vector[B]) Set(i int, val bool) error {
	if i < 0 || i >= v.length {
		return fmt.Errorf("%w: index %d with length %d", ErrOutOfBounds, i, v.length)
	}

	v.SetUnchecked(i, val)

	return nil
}

// Push appends a bit to the vector, doubling the block reservation first
// when the length has reached capacity. Push never fails.
func (v *Vector[B]) Push(val bool) {
	if v.length >= v.Cap() {
		v.Grow()
	}

	v.length++

	if err := v.Set(v.length-1, val); err != nil {
		// Cannot happen: the length was just extended over the target index.
		panic("cevtib: push target out of bounds")
	}
}

// Pop removes and returns the last bit, reporting false when the vector is
// empty. The bit value is read before any shrink runs, so an enabled
// shrink-on-pop policy never invalidates the returned value.
func (v *Vector[B]) Pop() (bool, bool) {
	if v.length == 0 {
		return false, false
	}

	v.length--
	val := v.GetUnchecked(v.length)

	if v.shrinkOnPop {
		if spare := v.buf.Len() - v.usedBlocks(); spare >= 2 {
			v.resize(-(spare - 1))
		}
	}

	return val, true
}

// Grow doubles the block reservation. The length is unaffected.
func (v *Vector[B]) Grow() {
	v.resize(v.buf.Len())
}

// ShrinkBlocksBy removes n whole blocks from the reservation. If the new
// capacity falls below the current length, the length is clamped down to it
// and the discarded bits are gone; there is no recovery. A shrink that would
// leave no blocks panics.
func (v *Vector[B]) ShrinkBlocksBy(n int) {
	v.resize(-n)
}

// resize changes the reservation by a relative number of blocks, clamping
// the length when the new capacity falls below it.
func (v *Vector[B]) resize(change int) {
	oldBlocks := v.buf.Len()

	newBlocks := oldBlocks + change
	if newBlocks <= 0 {
		panic("cevtib: resize to non-positive block count")
	}

	v.buf.Realloc(newBlocks)

	if v.length > v.Cap() {
		v.length = v.Cap()
	}

	v.logger.LogResize(oldBlocks, newBlocks, v.length)
}

// usedBlocks returns the number of blocks covered by the current length.
func (v *Vector[B]) usedBlocks() int {
	return (v.length + v.bitsPerBlock - 1) / v.bitsPerBlock
}

// Stats returns a snapshot of the storage allocation metrics.
func (v *Vector[B]) Stats() Stats {
	s := v.buf.Stats()

	return Stats{
		BlocksReserved: s.BlocksReserved,
		Reallocs:       s.Reallocs,
	}
}

// Close releases the owned storage. It must be called at most once, and the
// Vector must not be used afterwards; a second Close panics.
func (v *Vector[B]) Close() {
	v.logger.LogRelease(v.buf.Len())
	v.buf.Release()
	v.length = 0
}

// String renders the logical content as '1' and '0' characters in index
// order with no separators, independent of the block width or the storage
// layout.
func (v *Vector[B]) String() string {
	var sb strings.Builder
	sb.Grow(v.length)

	for bit := range v.Bits() {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// Stats tracks storage allocation metrics for a Vector.
type Stats struct {
	BlocksReserved uint64 // Current: blocks held by the allocation
	Reallocs       uint64 // Historical: number of reallocations performed
}
