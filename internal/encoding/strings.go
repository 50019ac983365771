package encoding

import (
	"github.com/pkg/errors"
)

// ASCII bit values. Bitstreams, blocks and codewords are kept as readable
// '0'/'1' bytes end to end.
const ONE byte = 49
const ZERO byte = 48

var ErrInvalidBitValue = errors.New("invalid bit value")

// FilterBits returns the '0' and '1' characters of input in their original
// order. Everything else is dropped.
func FilterBits(input []byte) []byte {
	out := make([]byte, 0, len(input))
	for _, c := range input {
		if c == ONE || c == ZERO {
			out = append(out, c)
		}
	}
	return out
}

// ValidateBits fails on the first byte that is not '0' or '1'.
func ValidateBits(bits []byte) error {
	for i, c := range bits {
		if c != ONE && c != ZERO {
			return errors.Wrapf(ErrInvalidBitValue, "%q at offset %d", c, i)
		}
	}
	return nil
}

// Zeros returns n '0' bits.
func Zeros(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = ZERO
	}
	return out
}

func isSet(bit byte) bool {
	return bit == ONE
}

func bitOf(set bool) byte {
	if set {
		return ONE
	}
	return ZERO
}
