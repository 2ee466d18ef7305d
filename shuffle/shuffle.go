// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package shuffle implements a deterministic shuffle of 1..N driven by a 256-bit
// entropy value. The output matches the Solidity implementation that draws
// indices from keccak256(abi.encode(uint256)) hash chains.
package shuffle

import (
	"context"
	"math"
	"time"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/vechain/detshuffle/entropy"
	"github.com/vechain/detshuffle/log"
	"github.com/vechain/detshuffle/word"
)

// MaxSize is the largest sequence Shuffle accepts.
const MaxSize = math.MaxInt32

// how many iterations run between two checks of the context
const checkInterval = 1 << 12

// ErrInvalidSize is returned when size is negative or exceeds MaxSize.
var ErrInvalidSize = errors.New("invalid size")

var logger = log.WithContext("pkg", "shuffle")

// Step describes one swap, reported to the tracer before it is applied.
type Step struct {
	Iteration int
	Random    *uint256.Int
	LastItem  int
	Selected  int
}

// Option configures a Shuffler.
type Option func(*Shuffler)

// WithHasher replaces the Keccak-256 hash. Only Keccak-256 agrees with the
// on-chain implementation.
func WithHasher(h word.Hasher) Option {
	return func(s *Shuffler) {
		s.hash = h
	}
}

// WithTracer sets a function called with every swap.
func WithTracer(fn func(Step)) Option {
	return func(s *Shuffler) {
		s.trace = fn
	}
}

// Shuffler produces deterministic permutations. It is immutable and safe for
// concurrent use.
type Shuffler struct {
	hash  word.Hasher
	trace func(Step)
}

// New creates a Shuffler using Keccak-256 unless overridden.
func New(opts ...Option) *Shuffler {
	s := &Shuffler{hash: word.Keccak256}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultShuffler = New()

// Shuffle returns the permutation of 1..size selected by seed.
func Shuffle(seed entropy.Entropy, size int) ([]int, error) {
	return defaultShuffler.Shuffle(seed, size)
}

// ShuffleHex parses the entropy string (see entropy.Parse) and shuffles.
func ShuffleHex(s string, size int) ([]int, error) {
	seed, err := entropy.Parse(s)
	if err != nil {
		metricErrors().AddWithLabel(1, map[string]string{"kind": "invalid_entropy"})
		return nil, err
	}
	return Shuffle(seed, size)
}

// Shuffle returns the permutation of 1..size selected by seed.
func (s *Shuffler) Shuffle(seed entropy.Entropy, size int) ([]int, error) {
	return s.ShuffleContext(context.Background(), seed, size)
}

// ShuffleContext is Shuffle with cancellation, which only matters for very
// large sizes.
//
// The loop stops one swap short of the textbook Fisher-Yates and takes the
// index mod lastItem rather than lastItem+1. Index 0 is never chosen as a
// target on its own, it keeps whatever is left. Both must stay as they are to
// agree with the contract.
func (s *Shuffler) ShuffleContext(ctx context.Context, seed entropy.Entropy, size int) ([]int, error) {
	if size < 0 || size > MaxSize {
		metricErrors().AddWithLabel(1, map[string]string{"kind": "invalid_size"})
		return nil, errors.Wrapf(ErrInvalidSize, "size %d not in [0, %d]", size, MaxSize)
	}
	if err := ctx.Err(); err != nil {
		metricErrors().AddWithLabel(1, map[string]string{"kind": "canceled"})
		return nil, errors.Wrap(err, "shuffle")
	}

	start := time.Now()
	result := make([]int, size)
	for i := range result {
		result[i] = i + 1
	}

	if size > 2 {
		stream := NewStream(s.hash, seed.Word())
		lastItem := size - 1

		for i := 1; i < size-1; i++ {
			if i%checkInterval == 0 {
				if err := ctx.Err(); err != nil {
					metricErrors().AddWithLabel(1, map[string]string{"kind": "canceled"})
					return nil, errors.Wrapf(err, "shuffle interrupted at iteration %d", i)
				}
			}

			// lastItem >= 2 here
			selected := int(stream.Intn(uint64(lastItem)))
			if s.trace != nil {
				s.trace(Step{
					Iteration: i,
					Random:    stream.Current(),
					LastItem:  lastItem,
					Selected:  selected,
				})
			}
			result[lastItem], result[selected] = result[selected], result[lastItem]

			lastItem--
			stream.Next()
		}
	}

	metricCount().Add(1)
	metricSize().Observe(int64(size))
	logger.Debug("shuffled", "entropy", seed.AbbrevString(), "size", size, "elapsed", time.Since(start))
	return result, nil
}
