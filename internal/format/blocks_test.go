package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prot "github.com/harlequix/hamenc/protocol"
)

func TestChunkCountAndPadding(t *testing.T) {
	tests := []struct {
		bits    int
		chunks  int
		padding int
	}{
		{1, 1, 25},
		{3, 1, 23},
		{25, 1, 1},
		{26, 1, 0},
		{27, 2, 25},
		{52, 2, 0},
		{53, 3, 25},
		{260, 10, 0},
	}
	for _, tt := range tests {
		input := []byte(strings.Repeat("1", tt.bits))
		blocks := Chunk(input)

		assert.Len(t, blocks, tt.chunks, "%d bits", tt.bits)
		assert.Equal(t, tt.chunks, ChunkCount(tt.bits))
		assert.Equal(t, tt.padding, PaddingFor(tt.bits))
		assert.Equal(t, tt.padding, blocks[len(blocks)-1].Padding())
	}
}

func TestChunkShortInput(t *testing.T) {
	blocks := Chunk([]byte("101"))
	require.Len(t, blocks, 1)
	assert.Equal(t, "10100000000000000000000000", blocks[0].String())
	assert.Equal(t, 23, blocks[0].Padding())
}

func TestChunkFullBlock(t *testing.T) {
	blocks := Chunk([]byte(strings.Repeat("1", 26)))
	require.Len(t, blocks, 1)
	assert.Equal(t, strings.Repeat("1", 26), blocks[0].String())
	assert.Equal(t, 0, blocks[0].Padding())
}

func TestChunkConcatenation(t *testing.T) {
	for _, n := range []int{1, 7, 26, 51, 52, 100} {
		var input []byte
		for i := 0; i < n; i++ {
			input = append(input, "0110100"[i%7])
		}
		blocks := Chunk(input)

		var joined bytes.Buffer
		for _, block := range blocks {
			require.Equal(t, prot.DataBits, block.Len())
			joined.Write(block.GetBits())
		}
		want := string(input) + strings.Repeat("0", PaddingFor(n))
		assert.Equal(t, want, joined.String(), "%d bits", n)
	}
}

func TestChunkDoesNotAliasInput(t *testing.T) {
	input := []byte(strings.Repeat("1", 26))
	blocks := Chunk(input)
	blocks[0].SetBit(0, '0')
	assert.Equal(t, byte('1'), input[0])
}

func TestChunkEmpty(t *testing.T) {
	assert.Empty(t, Chunk(nil))
	assert.Equal(t, 0, ChunkCount(0))
}
