// Package encoder turns a bitstream into Hamming(31,26) codewords: it chunks
// the input into 26-bit blocks and encodes every block, inline or on a pool
// of workers, keeping the codewords in block order.
package encoder

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/harlequix/hamenc/internal/encoding"
	"github.com/harlequix/hamenc/internal/format"
	log "github.com/harlequix/hamenc/log"
)

var ErrEmptyInput = errors.New("no binary digits in input")

type Encoder struct {
	config Config
	logger *log.Logger
}

func New(config Config) *Encoder {
	return &Encoder{
		config: config.normalize(),
		logger: log.NewLogger("Encoder"),
	}
}

// Encode chunks bits and encodes every block. bits must already be filtered
// down to '0'/'1'; anything else fails with encoding.ErrInvalidBitValue.
// Nothing is returned unless every block encoded.
func (e *Encoder) Encode(ctx context.Context, bits []byte) (*Result, error) {
	if len(bits) == 0 {
		return nil, ErrEmptyInput
	}
	blocks := format.Chunk(bits)
	e.logger.WithField("bits", len(bits)).WithField("blocks", len(blocks)).WithField("workers", e.config.Workers).Debug("encoding")

	var codewords [][]byte
	var err error
	if e.config.Workers == 1 || len(blocks) == 1 {
		codewords, err = e.encodeInline(ctx, blocks)
	} else {
		codewords, err = e.encodeParallel(ctx, blocks)
	}
	if err != nil {
		return nil, err
	}

	result := &Result{
		Codewords:    codewords,
		OriginalBits: len(bits),
		Chunks:       len(blocks),
		Padding:      format.PaddingFor(len(bits)),
	}
	e.logger.WithField("chunks", result.Chunks).WithField("padding", result.Padding).Debug("encoded")
	return result, nil
}

func (e *Encoder) encodeBlock(index int, block *format.Block) ([]byte, error) {
	codeword, err := encoding.EncodeHamming31(block.GetBits())
	if err != nil {
		return nil, errors.Wrapf(err, "block %d", index)
	}
	e.logger.WithField("block", index).WithField("data", block.String()).WithField("codeword", string(codeword)).Trace("encoded block")
	return codeword, nil
}

func (e *Encoder) encodeInline(ctx context.Context, blocks []*format.Block) ([][]byte, error) {
	codewords := make([][]byte, len(blocks))
	for i, block := range blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		codeword, err := e.encodeBlock(i, block)
		if err != nil {
			return nil, err
		}
		codewords[i] = codeword
	}
	return codewords, nil
}

type blockError struct {
	index int
	err   error
}

// encodeParallel hands block indices to a fixed set of workers. Each worker
// writes only to the slots of the indices it receives, so the output keeps
// block order without any further coordination.
func (e *Encoder) encodeParallel(ctx context.Context, blocks []*format.Block) ([][]byte, error) {
	workers := e.config.Workers
	if workers > len(blocks) {
		workers = len(blocks)
	}
	codewords := make([][]byte, len(blocks))
	tasks := make(chan int)
	failures := make(chan blockError, workers)

	var wg sync.WaitGroup
	for id := 0; id < workers; id++ {
		wg.Add(1)
		go e.encodeWorker(id, blocks, codewords, tasks, failures, &wg)
	}

dispatch:
	for i := range blocks {
		select {
		case <-ctx.Done():
			break dispatch
		case tasks <- i:
		}
	}
	close(tasks)
	wg.Wait()
	close(failures)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Report the earliest failing block, same as the inline path would.
	var first *blockError
	for failure := range failures {
		failure := failure
		if first == nil || failure.index < first.index {
			first = &failure
		}
	}
	if first != nil {
		return nil, first.err
	}
	return codewords, nil
}

// encodeWorker keeps draining tasks after its first failure so the
// dispatcher never blocks; it reports at most one failure.
func (e *Encoder) encodeWorker(id int, blocks []*format.Block, codewords [][]byte, tasks <-chan int, failures chan<- blockError, wg *sync.WaitGroup) {
	defer wg.Done()
	e.logger.WithField("ID", id).Trace("worker started")
	failed := false
	for i := range tasks {
		if failed {
			continue
		}
		codeword, err := e.encodeBlock(i, blocks[i])
		if err != nil {
			failures <- blockError{index: i, err: err}
			failed = true
			continue
		}
		codewords[i] = codeword
	}
}
