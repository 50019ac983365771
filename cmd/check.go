package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/harlequix/hamenc/internal/encoding"
)

var ErrParityMismatch = errors.New("codewords failed the parity check")

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Verify that a file holds well-formed Hamming(31,26) codewords",
	Long: `check reads codewords, one per line, and reports every line that is not
31 binary digits or whose parity groups do not XOR to zero. Blank lines are
skipped. It exits non-zero if any line fails.`,
	Args: cobra.ExactArgs(1),
	RunE: check,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func check(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrapf(err, "reading codeword file %s", args[0])
	}
	defer f.Close()
	return checkCodewords(f, cmd.OutOrStdout())
}

func checkCodewords(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	checked, invalid, lineNo := 0, 0, 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		checked++
		failed, err := encoding.CheckParity([]byte(line))
		switch {
		case err != nil:
			invalid++
			fmt.Fprintf(w, "line %d: %v\n", lineNo, err)
		case len(failed) > 0:
			invalid++
			fmt.Fprintf(w, "line %d: parity groups %v do not match\n", lineNo, failed)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading codewords")
	}
	logger.WithField("checked", checked).WithField("invalid", invalid).Debug("check done")
	fmt.Fprintf(w, "Checked %d codewords, %d invalid\n", checked, invalid)
	if invalid > 0 {
		return errors.Wrapf(ErrParityMismatch, "%d of %d", invalid, checked)
	}
	return nil
}
