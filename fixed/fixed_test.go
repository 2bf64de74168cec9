package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoundsUpToWords(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		wantBits int
	}{
		{"Zero", 0, 0},
		{"SubWord", 1, 64},
		{"ExactWord", 64, 64},
		{"WordPlusOne", 65, 128},
		{"TwoWords", 128, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bv := New(tt.size)
			assert.Equal(t, tt.wantBits, bv.Len())
		})
	}
}

func TestSetTestUnset(t *testing.T) {
	bv := New(128)

	bv.Set(0)
	bv.Set(63)
	bv.Set(64)
	bv.Set(127)

	assert.True(t, bv.Test(0))
	assert.True(t, bv.Test(63))
	assert.True(t, bv.Test(64))
	assert.True(t, bv.Test(127))
	assert.False(t, bv.Test(1))
	assert.False(t, bv.Test(100))

	bv.Unset(64)
	assert.False(t, bv.Test(64))
	assert.True(t, bv.Test(63))
}

func TestClear(t *testing.T) {
	bv := New(256)

	for i := 0; i < bv.Len(); i += 3 {
		bv.Set(i)
	}
	bv.Clear()

	for i := 0; i < bv.Len(); i++ {
		require.False(t, bv.Test(i))
	}
}

func TestFromBlocksSharesStorage(t *testing.T) {
	blocks := make([]uint64, 2)
	bv := FromBlocks(blocks)

	require.Equal(t, 128, bv.Len())

	bv.Set(65)
	assert.Equal(t, uint64(2), blocks[1])

	blocks[0] = 1
	assert.True(t, bv.Test(0))
}
