// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package magic provides reusable utility types and functions used to
// generate magic hash tables for any sliding piece.
//
// Blocker masks are 64-bit bitboards so there are too many permutations
// to exhaustively hash, but the blockers relevant to a given origin
// square are few in number. A magic number mask*magic>>shift is a
// perfect hash function over that square's permutations; the simplest
// way to find one is to generate random sparse magics and test them.
package magic

import (
	"weakgo/internal/util"
	"weakgo/pkg/bitboard"
	"weakgo/pkg/square"
)

// seeds are PRNG seeds, indexed by rank, tuned to find a valid magic
// quickly for each square; taken from the Stockfish chess engine.
var seeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// MoveFunc computes a sliding piece's move bitboard from a square given
// a blocker bitboard. When mask is true it must instead return the
// blocker mask for that square (the movegen squares with board edges
// cleared, since an edge blocker is always "occupied" and carries no
// information).
type MoveFunc func(s square.Square, occ bitboard.Board, mask bool) bitboard.Board

// Magic is a single square's magic hash entry.
type Magic struct {
	Number      uint64
	BlockerMask bitboard.Board
	Shift       byte
}

// Index computes the table index for a given occupancy.
func (m Magic) Index(occ bitboard.Board) uint64 {
	occ &= m.BlockerMask
	return (uint64(occ) * m.Number) >> m.Shift
}

// Table is a magic hash table for one sliding piece type.
type Table struct {
	MaxMaskN int
	Magics   [square.N]Magic
	Moves    [square.N][]bitboard.Board
}

// Probe returns the attack bitboard for a slider on s given occ.
func (t *Table) Probe(s square.Square, occ bitboard.Board) bitboard.Board {
	return t.Moves[s][t.Magics[s].Index(occ)]
}

// Populate fills in the magic numbers and move tables for every square
// by trial and error, using fn to generate reference attack sets.
func (t *Table) Populate(fn MoveFunc) {
	var rand util.PRNG

	for s := square.A1; s <= square.H8; s++ {
		m := &t.Magics[s]

		m.BlockerMask = fn(s, bitboard.Empty, true)
		bitCount := m.BlockerMask.Count()
		m.Shift = byte(64 - bitCount)

		permutationsN := 1 << bitCount
		permutations := make([]bitboard.Board, permutationsN)
		blockers := bitboard.Empty
		for i := 0; blockers != bitboard.Empty || i == 0; i++ {
			permutations[i] = blockers
			blockers = (blockers - m.BlockerMask) & m.BlockerMask
		}

		rand.Seed(seeds[s.Rank()])

	searchMagic:
		for {
			m.Number = rand.SparseUint64()

			t.Moves[s] = make([]bitboard.Board, t.MaxMaskN)

			for i := 0; i < permutationsN; i++ {
				blockers := permutations[i]
				index := m.Index(blockers)
				attacks := fn(s, blockers, false)

				if t.Moves[s][index] != bitboard.Empty && t.Moves[s][index] != attacks {
					continue searchMagic
				}

				t.Moves[s][index] = attacks
			}

			break
		}
	}
}
