// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

package attacks

import (
	"weakgo/pkg/bitboard"
	"weakgo/pkg/square"
)

// bishop computes a bishop's attack set from s given occ along both of
// its diagonals. See rook for the mask parameter's meaning.
func bishop(s square.Square, occ bitboard.Board, mask bool) bitboard.Board {
	diagonalMask := bitboard.Diagonals[s.Diagonal()]
	diagonalAttack := hyperbola(s, occ, diagonalMask)

	antiDiagonalMask := bitboard.AntiDiagonals[s.AntiDiagonal()]
	antiDiagonalAttack := hyperbola(s, occ, antiDiagonalMask)

	attacks := diagonalAttack | antiDiagonalAttack
	if mask {
		edges := bitboard.Ranks[square.Rank1] | bitboard.Ranks[square.Rank8] |
			bitboard.Files[square.FileA] | bitboard.Files[square.FileH]
		attacks &^= edges
	}

	return attacks
}

// Bishop returns the bishop attack set from s given the occupied
// squares.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	return BishopTable.Probe(s, occ)
}
