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

// rook computes a rook's attack set from s given occ using the
// hyperbola quintessence trick along its rank and file. When mask is
// true, edge squares are cleared since they never carry new blocker
// information (used only to build the magic blocker mask).
func rook(s square.Square, occ bitboard.Board, mask bool) bitboard.Board {
	fileMask := bitboard.Files[s.File()]
	fileAttacks := hyperbola(s, occ, fileMask)

	rankMask := bitboard.Ranks[s.Rank()]
	rankAttacks := hyperbola(s, occ, rankMask)

	if mask {
		fileAttacks &^= bitboard.Ranks[square.Rank1] | bitboard.Ranks[square.Rank8]
		rankAttacks &^= bitboard.Files[square.FileA] | bitboard.Files[square.FileH]
	}

	return fileAttacks | rankAttacks
}

// Rook returns the rook attack set from s given the occupied squares.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	return RookTable.Probe(s, occ)
}
