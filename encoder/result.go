package encoder

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/jinzhu/copier"
	"golang.org/x/crypto/sha3"

	prot "github.com/harlequix/hamenc/protocol"
)

const digestLen = 16

// Result holds the codewords of one Encode call in block order, plus the
// numbers needed to describe it.
type Result struct {
	Codewords    [][]byte
	OriginalBits int
	Chunks       int
	Padding      int
}

// Summary is the human readable part of a Result.
type Summary struct {
	OriginalBits int
	Chunks       int
	Padding      int
	Digest       string
}

// Summary copies the counters out of r. The digest is only computed when
// withDigest is set.
func (r *Result) Summary(withDigest bool) (Summary, error) {
	var summary Summary
	if err := copier.Copy(&summary, r); err != nil {
		return Summary{}, err
	}
	if withDigest {
		summary.Digest = r.Fingerprint()
	}
	return summary, nil
}

// Fingerprint is a SHAKE-256 hash of the newline-terminated codeword stream,
// i.e. of exactly what WriteTo emits.
func (r *Result) Fingerprint() string {
	hasher := sha3.NewShake256()
	r.WriteTo(hasher)
	out := make([]byte, digestLen)
	hasher.Read(out)
	return hex.EncodeToString(out)
}

// WriteTo writes one codeword per line.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, codeword := range r.Codewords {
		written, err := bw.Write(codeword)
		n += int64(written)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// Lines renders the summary the way the CLI prints it.
func (s Summary) Lines() []string {
	lines := []string{
		fmt.Sprintf("Original length: %d bits", s.OriginalBits),
		fmt.Sprintf("Chunks (%d bits each): %d", prot.DataBits, s.Chunks),
		fmt.Sprintf("Padding added to last chunk: %d bits", s.Padding),
	}
	if s.Digest != "" {
		lines = append(lines, fmt.Sprintf("Digest: %s", s.Digest))
	}
	return lines
}
