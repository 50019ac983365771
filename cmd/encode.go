package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harlequix/hamenc/encoder"
	"github.com/harlequix/hamenc/internal/encoding"
)

var (
	bitsArg    string
	inputFile  string
	outputFile string
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&bitsArg, "bits", "", "binary string to encode")
	flags.StringVar(&inputFile, "file", "", "path to a file containing binary digits")
	flags.StringVar(&outputFile, "out", "", "write codewords to this file, one per line")
	flags.Int("workers", 1, "number of goroutines encoding blocks")
	flags.Bool("digest", false, "print a SHAKE-256 digest of the codeword stream")

	viper.BindPFlag("workers", flags.Lookup("workers"))
	viper.BindPFlag("digest", flags.Lookup("digest"))
	rootCmd.MarkFlagsMutuallyExclusive("bits", "file")
	rootCmd.MarkFlagsOneRequired("bits", "file")
}

type encodeOptions struct {
	Bits    string
	UseBits bool
	File    string
	Out     string
}

func encode(cmd *cobra.Command, args []string) error {
	config, err := encoder.NewConfig()
	if err != nil {
		return errors.Wrap(err, "reading encoder config")
	}
	opts := encodeOptions{
		Bits:    bitsArg,
		UseBits: cmd.Flags().Changed("bits"),
		File:    inputFile,
		Out:     outputFile,
	}
	return runEncode(cmd.Context(), opts, config, cmd.OutOrStdout())
}

func runEncode(ctx context.Context, opts encodeOptions, config encoder.Config, stdout io.Writer) error {
	bits, err := readInput(opts)
	if err != nil {
		return err
	}
	result, err := encoder.New(config).Encode(ctx, bits)
	if err != nil {
		return err
	}
	summary, err := result.Summary(config.Digest)
	if err != nil {
		return err
	}

	if opts.Out != "" {
		if err := writeCodewords(opts.Out, result); err != nil {
			return err
		}
		printLines(stdout, summary.Lines())
		fmt.Fprintf(stdout, "Codewords written to %s\n", opts.Out)
		return nil
	}
	printLines(stdout, summary.Lines())
	fmt.Fprintln(stdout, "Codewords:")
	_, err = result.WriteTo(stdout)
	return err
}

// readInput returns the effective bitstream: --bits or the file contents,
// stripped of everything but '0' and '1'.
func readInput(opts encodeOptions) ([]byte, error) {
	if opts.UseBits {
		bits := encoding.FilterBits([]byte(opts.Bits))
		if len(bits) == 0 {
			return nil, errors.Wrap(encoder.ErrEmptyInput, "--bits argument must contain at least one binary digit (0 or 1)")
		}
		return bits, nil
	}
	content, err := os.ReadFile(opts.File)
	if err != nil {
		return nil, errors.Wrapf(err, "reading input file %s", opts.File)
	}
	bits := encoding.FilterBits(content)
	logger.WithField("file", opts.File).WithField("bytes", len(content)).WithField("bits", len(bits)).Debug("read input")
	if len(bits) == 0 {
		return nil, errors.Wrapf(encoder.ErrEmptyInput, "input file %s", opts.File)
	}
	return bits, nil
}

func writeCodewords(path string, result *encoder.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "writing output file %s", path)
	}
	if _, err := result.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing output file %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "writing output file %s", path)
	}
	return nil
}

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
