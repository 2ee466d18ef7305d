// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package shuffle

import "github.com/vechain/detshuffle/entropy"

// Permute returns a new slice where out[i] = items[perm[i]-1] and perm is the
// permutation of 1..len(items) selected by seed. items is left untouched.
func Permute[T any](seed entropy.Entropy, items []T) ([]T, error) {
	return PermuteWith(defaultShuffler, seed, items)
}

// PermuteWith is Permute using the given Shuffler.
func PermuteWith[T any](s *Shuffler, seed entropy.Entropy, items []T) ([]T, error) {
	perm, err := s.Shuffle(seed, len(items))
	if err != nil {
		return nil, err
	}
	out := make([]T, len(items))
	for i, p := range perm {
		out[i] = items[p-1]
	}
	return out, nil
}
