// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package shuffle

import (
	"github.com/holiman/uint256"
	"github.com/vechain/detshuffle/word"
)

// Stream is a hash based random generator. Its first value is H(seed), and
// every following value is H(previous), where each word is hashed in its
// 32-byte ABI encoding.
type Stream struct {
	hash    word.Hasher
	current uint256.Int
	buf     [word.Size]byte
}

// NewStream creates a stream positioned at H(seed).
func NewStream(hash word.Hasher, seed *uint256.Int) *Stream {
	s := &Stream{
		hash:    hash,
		current: *seed,
	}
	s.Next()
	return s
}

// Derive returns H(w). It is both the first step from a seed and every
// subsequent step of a Stream.
func Derive(hash word.Hasher, w *uint256.Int) *uint256.Int {
	return word.Hash(hash, w)
}

// Next advances the stream by one hash.
func (s *Stream) Next() {
	s.current.WriteToArray32(&s.buf)
	h := s.hash(s.buf[:])
	s.current.SetBytes32(h[:])
}

// Current returns a copy of the current value.
func (s *Stream) Current() *uint256.Int {
	return s.current.Clone()
}

// Intn returns the current value mod n, in [0, n), without advancing.
// panic if n == 0
func (s *Stream) Intn(n uint64) uint64 {
	if n == 0 {
		panic("n must > 0")
	}
	var m, r uint256.Int
	m.SetUint64(n)
	return r.Mod(&s.current, &m).Uint64()
}
