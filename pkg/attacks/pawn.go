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
	"weakgo/pkg/piece"
	"weakgo/pkg/square"
)

// pawnAttacksFrom generates the diagonal capture set of a pawn of the
// given side standing on s, ignoring whether a capturable piece is
// actually there.
func pawnAttacksFrom(s square.Square, side piece.Side) bitboard.Board {
	single := bitboard.Squares[s]

	var up bitboard.Board
	switch side {
	case piece.White:
		up = single.North()
	case piece.Black:
		up = single.South()
	default:
		panic("pawn attacks from: bad side")
	}

	return up.East() | up.West()
}
