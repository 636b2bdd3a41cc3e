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
	"weakgo/internal/util"
	"weakgo/pkg/bitboard"
	"weakgo/pkg/square"
)

// Distance[from][to] is the Chebyshev (king-move) distance between two
// squares: the larger of their file and rank distances.
var Distance [square.N][square.N]int

// Between[from][to] is the bitboard of squares strictly between from
// and to if they share a rank, file, or diagonal, and empty otherwise.
var Between [square.N][square.N]bitboard.Board

// CanSlideAttack[from][to] reports whether a queen on from would attack
// to on an empty board, i.e. whether the two squares share a rank,
// file, or diagonal.
var CanSlideAttack [square.N][square.N]bool

// initGeometry fills in Distance, Between and CanSlideAttack. It runs
// once at package init, after the magic tables (it needs Queen to be
// probeable on an empty board).
func initGeometry() {
	for from := square.A1; from <= square.H8; from++ {
		for to := square.A1; to <= square.H8; to++ {
			fileDist := util.Abs(int(from.File()) - int(to.File()))
			rankDist := util.Abs(int(from.Rank()) - int(to.Rank()))
			Distance[from][to] = util.Max(fileDist, rankDist)
		}

		queenThreats := Queen(from, bitboard.Empty)

		for to := square.A1; to <= square.H8; to++ {
			if !queenThreats.IsSet(to) {
				continue
			}

			CanSlideAttack[from][to] = true

			delta := (int(to) - int(from)) / Distance[from][to]
			for pos := int(from) + delta; pos != int(to); pos += delta {
				Between[from][to].Set(square.Square(pos))
			}
		}
	}
}

// Aligned reports whether a, b and c all lie on one common rank, file,
// or diagonal. It is used by the legality filter to check whether a
// pinned piece is moving along the line to its king.
func Aligned(a, b, c square.Square) bool {
	return (a.File() == b.File() && b.File() == c.File()) ||
		(a.Rank() == b.Rank() && b.Rank() == c.Rank()) ||
		(a.Diagonal() == b.Diagonal() && b.Diagonal() == c.Diagonal()) ||
		(a.AntiDiagonal() == b.AntiDiagonal() && b.AntiDiagonal() == c.AntiDiagonal())
}
