// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package word

import (
	"math/rand/v2"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMatchesABI(t *testing.T) {
	uint256Type, err := abi.NewType("uint256", "", nil)
	require.NoError(t, err)
	args := abi.Arguments{{Type: uint256Type}}

	rng := rand.New(rand.NewPCG(7, 0)) //#nosec G404
	words := []*uint256.Int{
		uint256.NewInt(0),
		uint256.NewInt(1),
		uint256.NewInt(0xff),
		new(uint256.Int).SetAllOne(),
	}
	for range 32 {
		words = append(words, &uint256.Int{rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64()})
	}

	for _, w := range words {
		packed, err := args.Pack(w.ToBig())
		require.NoError(t, err)
		enc := Encode(w)
		assert.Equal(t, packed, enc[:], w.Hex())
		assert.True(t, w.Eq(Decode(enc)))
	}
}

func TestKeccak256(t *testing.T) {
	tests := []struct {
		name string
		data [][]byte
		want string
	}{
		{"empty", nil, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"zero word", [][]byte{make([]byte, Size)}, "0x290decd9548b62a8d60345a988386fc84ba6bc95484008f6362f93160ef3e563"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Keccak256(tt.data...)
			assert.Equal(t, tt.want, hexutil.Encode(h[:]))
		})
	}

	multi := Keccak256([]byte("multi"), []byte("ple"), []byte("data"))
	assert.Equal(t, crypto.Keccak256([]byte("multipledata")), multi[:])
}

func TestBlake2b(t *testing.T) {
	h := Blake2b(make([]byte, Size))
	assert.Equal(t, "0x89eb0d6a8a691dae2cd15ed0369931ce0a949ecafa5c3f93f8121833646e15c3", hexutil.Encode(h[:]))

	assert.Equal(t, Blake2b([]byte("multipledata")), Blake2b([]byte("multi"), []byte("ple"), []byte("data")))
	assert.NotEqual(t, Keccak256([]byte("data")), Blake2b([]byte("data")))
}

func TestHash(t *testing.T) {
	first := Hash(Keccak256, new(uint256.Int))
	assert.Equal(t, "0x290decd9548b62a8d60345a988386fc84ba6bc95484008f6362f93160ef3e563", first.Hex())

	second := Hash(Keccak256, first)
	assert.Equal(t, "0x510e4e770828ddbf7f7b00ab00a9f6adaf81c0dc9cc85f1f8249c256942d61d9", second.Hex())

	// input is not modified
	assert.True(t, first.Eq(uint256.MustFromHex("0x290decd9548b62a8d60345a988386fc84ba6bc95484008f6362f93160ef3e563")))
}

func BenchmarkHash(b *testing.B) {
	w := uint256.NewInt(42)
	b.Run("keccak", func(b *testing.B) {
		for b.Loop() {
			w = Hash(Keccak256, w)
		}
	})
	b.Run("blake2b", func(b *testing.B) {
		for b.Loop() {
			w = Hash(Blake2b, w)
		}
	})
}
