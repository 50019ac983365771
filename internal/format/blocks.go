package format

import (
	"github.com/harlequix/hamenc/internal/encoding"
	prot "github.com/harlequix/hamenc/protocol"
)

// Block is one 26-bit data block. The last block of a stream may end in
// padding zeros.
type Block struct {
	field   []byte
	padding int
}

// NewBlock returns an all-zero block.
func NewBlock() *Block {
	return &Block{
		field: encoding.Zeros(prot.DataBits),
	}
}

// Fill copies bits into the front of the block. Whatever is left over stays
// zero and is counted as padding.
func (b *Block) Fill(bits []byte) {
	n := copy(b.field, bits)
	for i := n; i < len(b.field); i++ {
		b.field[i] = encoding.ZERO
	}
	b.padding = len(b.field) - n
}

func (b *Block) SetBit(offset int, value byte) {
	b.field[offset] = value
}

func (b *Block) GetBits() []byte {
	return b.field
}

func (b *Block) Len() int {
	return len(b.field)
}

// Padding is the number of trailing zeros added by Fill.
func (b *Block) Padding() int {
	return b.padding
}

func (b *Block) String() string {
	return string(b.field)
}

// Chunk splits bits into consecutive 26-bit blocks starting at offsets 0, 26,
// 52, ... The final block is right-padded with zeros. No bit is dropped or
// reordered. An empty input yields no blocks.
func Chunk(bits []byte) []*Block {
	blocks := make([]*Block, 0, ChunkCount(len(bits)))
	for index := 0; index < len(bits); index += prot.DataBits {
		end := index + prot.DataBits
		if end > len(bits) {
			end = len(bits)
		}
		block := NewBlock()
		block.Fill(bits[index:end])
		blocks = append(blocks, block)
	}
	return blocks
}

// ChunkCount is ceil(n/26).
func ChunkCount(n int) int {
	return (n + prot.DataBits - 1) / prot.DataBits
}

// PaddingFor is the number of zeros appended to a stream of n bits.
func PaddingFor(n int) int {
	return (prot.DataBits - n%prot.DataBits) % prot.DataBits
}
