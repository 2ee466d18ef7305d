// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package word defines how 256-bit words are encoded and hashed, so that values
// computed off-chain match keccak256(abi.encode(uint256)) in Solidity.
package word

import (
	"github.com/holiman/uint256"
)

// Size is the length in bytes of an encoded word.
const Size = 32

// Hasher maps arbitrary input to a 32-byte digest.
type Hasher func(data ...[]byte) [Size]byte

// Encode returns the fixed-width big-endian form of w, which is also the ABI
// encoding of a single uint256.
func Encode(w *uint256.Int) (enc [Size]byte) {
	w.WriteToArray32(&enc)
	return
}

// Decode reads a 32-byte big-endian digest back into a word.
func Decode(enc [Size]byte) *uint256.Int {
	return new(uint256.Int).SetBytes32(enc[:])
}

// Hash computes h(Encode(w)) and returns it as a new word.
func Hash(h Hasher, w *uint256.Int) *uint256.Int {
	enc := Encode(w)
	return Decode(h(enc[:]))
}
