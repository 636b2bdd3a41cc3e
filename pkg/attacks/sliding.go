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
	"math/bits"

	"weakgo/pkg/bitboard"
	"weakgo/pkg/square"
)

// hyperbola computes a slider's attack set along the line given by mask
// (a rank, file, or diagonal through s) using the o^(o-2r) hyperbola
// quintessence trick. It is used only to populate the magic tables at
// init time; lookups at runtime go through the magic hash instead.
func hyperbola(s square.Square, occ, mask bitboard.Board) bitboard.Board {
	r := bitboard.Squares[s]
	o := occ & mask
	return ((o - 2*r) ^ reverseBoard(reverseBoard(o)-2*reverseBoard(r))) & mask
}

func reverseBoard(b bitboard.Board) bitboard.Board {
	return bitboard.Board(bits.Reverse64(uint64(b)))
}
