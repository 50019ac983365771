package protocol

// Hamming(31,26) code parameters.
const (
	DataBits   int = 26
	CodeBits   int = 31
	ParityBits int = CodeBits - DataBits
)

// ParityPositions are the 1-indexed codeword positions holding parity bits,
// in the order they are computed.
var ParityPositions = []int{1, 2, 4, 8, 16}
