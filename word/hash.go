// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package word

import (
	"hash"
	"sync"

	"github.com/ethereum/go-ethereum/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

var (
	_ Hasher = Keccak256
	_ Hasher = Blake2b
)

// keccakState wraps sha3.state. Read is used instead of Sum since it avoids
// copying the internal state.
type keccakState interface {
	hash.Hash
	Read([]byte) (int, error)
}

type keccak256 struct {
	state keccakState
	out   [Size]byte
}

var keccak256Pool = sync.Pool{
	New: func() any {
		return &keccak256{
			state: sha3.NewLegacyKeccak256().(keccakState),
		}
	},
}

// Keccak256 computes the legacy Keccak-256 digest, the keccak256 builtin of the EVM.
func Keccak256(data ...[]byte) (h [Size]byte) {
	hasher := keccak256Pool.Get().(*keccak256)

	for _, b := range data {
		hasher.state.Write(b)
	}
	hasher.state.Read(hasher.out[:])
	h = hasher.out

	hasher.state.Reset()
	keccak256Pool.Put(hasher)
	return
}

// Blake2b computes the blake2b-256 digest.
func Blake2b(data ...[]byte) [Size]byte {
	if len(data) == 1 {
		return blake2b.Sum256(data[0])
	}
	hasher, _ := blake2b.New256(nil)
	for _, b := range data {
		hasher.Write(b)
	}
	var h [Size]byte
	hasher.Sum(h[:0])
	return h
}
