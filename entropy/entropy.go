// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package entropy parses the externally supplied 256-bit randomness (usually a
// VRF output) that seeds a shuffle.
package entropy

import (
	"encoding"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/vechain/detshuffle/word"
)

// ErrInvalidEntropyEncoding is returned when a value cannot be read as a 256-bit unsigned integer.
var ErrInvalidEntropyEncoding = errors.New("invalid entropy encoding")

var (
	_ encoding.TextMarshaler   = Entropy{}
	_ encoding.TextUnmarshaler = (*Entropy)(nil)
)

// Entropy is a 256-bit seed value.
type Entropy struct {
	w uint256.Int
}

// FromWord wraps a word as entropy.
func FromWord(w *uint256.Int) Entropy {
	return Entropy{w: *w}
}

// FromBytes reads exactly 32 big-endian bytes.
func FromBytes(b []byte) (Entropy, error) {
	if len(b) != word.Size {
		return Entropy{}, errors.Wrapf(ErrInvalidEntropyEncoding, "want %d bytes, got %d", word.Size, len(b))
	}
	var e Entropy
	e.w.SetBytes32(b)
	return e, nil
}

// Parse reads a 0x-prefixed hex string of at most 64 digits, or a decimal string.
func Parse(s string) (Entropy, error) {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return parseHex(s[2:])
	}
	return parseDecimal(s)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Entropy {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

func parseHex(digits string) (Entropy, error) {
	switch {
	case len(digits) == 0:
		return Entropy{}, errors.Wrap(ErrInvalidEntropyEncoding, "empty hex string")
	case len(digits) > word.Size*2:
		return Entropy{}, errors.Wrapf(ErrInvalidEntropyEncoding, "hex string has %d digits, max %d", len(digits), word.Size*2)
	}
	b, err := hexutil.Decode("0x" + strings.Repeat("0", word.Size*2-len(digits)) + digits)
	if err != nil {
		return Entropy{}, errors.Wrap(ErrInvalidEntropyEncoding, err.Error())
	}
	return FromBytes(b)
}

func parseDecimal(digits string) (Entropy, error) {
	if len(digits) == 0 {
		return Entropy{}, errors.Wrap(ErrInvalidEntropyEncoding, "empty string")
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return Entropy{}, errors.Wrapf(ErrInvalidEntropyEncoding, "unexpected character %q", c)
		}
	}
	w, err := uint256.FromDecimal(digits)
	if err != nil {
		return Entropy{}, errors.Wrap(ErrInvalidEntropyEncoding, err.Error())
	}
	return FromWord(w), nil
}

// Word returns a copy of the value as a 256-bit integer.
func (e Entropy) Word() *uint256.Int {
	return e.w.Clone()
}

// Bytes32 returns the ABI encoding of the value.
func (e Entropy) Bytes32() [word.Size]byte {
	return word.Encode(&e.w)
}

// IsZero returns if the value is zero.
func (e Entropy) IsZero() bool {
	return e.w.IsZero()
}

// String returns the 0x-prefixed, 64 digit hex form.
func (e Entropy) String() string {
	b := e.Bytes32()
	return hexutil.Encode(b[:])
}

// AbbrevString returns abbrev string presentation.
func (e Entropy) AbbrevString() string {
	s := e.String()
	return s[:10] + "…" + s[len(s)-8:]
}

// MarshalText implements encoding.TextMarshaler.
func (e Entropy) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Entropy) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
