package encoding

import (
	"github.com/pkg/errors"

	prot "github.com/harlequix/hamenc/protocol"
)

var (
	ErrInvalidBlockLength    = errors.New("invalid block length")
	ErrInvalidCodewordLength = errors.New("invalid codeword length")
)

// places maps every parity position to the other positions of its parity
// group, i.e. all pos != p in 1..31 with pos&p != 0.
var places map[int][]int

func init() {
	places = make(map[int][]int)
	for _, p := range prot.ParityPositions {
		for pos := 1; pos <= prot.CodeBits; pos++ {
			if pos != p && pos&p != 0 {
				places[p] = append(places[p], pos)
			}
		}
	}
}

// IsParityPosition reports whether the 1-indexed codeword position pos holds
// a parity bit. Those are exactly the powers of two inside the codeword.
func IsParityPosition(pos int) bool {
	return pos >= 1 && pos <= prot.CodeBits && pos&(pos-1) == 0
}

// PlaceData lays a 26-bit block out over a fresh 31-bit codeword. Data bits
// fill the non-parity positions in ascending order, so block[0] lands on
// position 3, block[1] on 5, block[2] on 6 and so on. Parity positions are
// left at '0'.
func PlaceData(block []byte) ([]byte, error) {
	if len(block) != prot.DataBits {
		return nil, errors.Wrapf(ErrInvalidBlockLength, "got %d bits, want %d", len(block), prot.DataBits)
	}
	if err := ValidateBits(block); err != nil {
		return nil, err
	}
	codeword := make([]byte, prot.CodeBits)
	next := 0
	for pos := 1; pos <= prot.CodeBits; pos++ {
		if IsParityPosition(pos) {
			codeword[pos-1] = ZERO
			continue
		}
		codeword[pos-1] = block[next]
		next++
	}
	return codeword, nil
}

// ParityBit returns the bit that makes the parity group of p even, given a
// codeword with its data bits in place. The bit currently stored at p is not
// read, and no other parity position belongs to the group, so the result does
// not depend on which parity bits were already filled in.
func ParityBit(codeword []byte, p int) byte {
	odd := false
	for _, pos := range places[p] {
		if isSet(codeword[pos-1]) {
			odd = !odd
		}
	}
	return bitOf(odd)
}

// EncodeHamming31 maps one 26-bit block to its 31-bit Hamming codeword.
func EncodeHamming31(block []byte) ([]byte, error) {
	codeword, err := PlaceData(block)
	if err != nil {
		return nil, err
	}
	parity := make([]byte, len(prot.ParityPositions))
	for i, p := range prot.ParityPositions {
		parity[i] = ParityBit(codeword, p)
	}
	for i, p := range prot.ParityPositions {
		codeword[p-1] = parity[i]
	}
	return codeword, nil
}

// ExtractData returns the 26 data bits of a codeword in position order.
// Parity is not checked.
func ExtractData(codeword []byte) ([]byte, error) {
	if len(codeword) != prot.CodeBits {
		return nil, errors.Wrapf(ErrInvalidCodewordLength, "got %d bits, want %d", len(codeword), prot.CodeBits)
	}
	if err := ValidateBits(codeword); err != nil {
		return nil, err
	}
	out := make([]byte, 0, prot.DataBits)
	for pos := 1; pos <= prot.CodeBits; pos++ {
		if !IsParityPosition(pos) {
			out = append(out, codeword[pos-1])
		}
	}
	return out, nil
}

// CheckParity returns the parity positions whose group does not XOR to zero.
// An empty result means the codeword is consistent.
func CheckParity(codeword []byte) ([]int, error) {
	if len(codeword) != prot.CodeBits {
		return nil, errors.Wrapf(ErrInvalidCodewordLength, "got %d bits, want %d", len(codeword), prot.CodeBits)
	}
	if err := ValidateBits(codeword); err != nil {
		return nil, err
	}
	var failed []int
	for _, p := range prot.ParityPositions {
		if ParityBit(codeword, p) != codeword[p-1] {
			failed = append(failed, p)
		}
	}
	return failed, nil
}
