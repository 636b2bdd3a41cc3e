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

// Package attacks precomputes and exposes attack bitboards for every
// piece type: fully precomputed leaper tables for the king, knight and
// pawns, and magic-bitboard hash tables for the rook and bishop (a
// queen's attacks are the union of the two).
package attacks

import (
	"weakgo/pkg/bitboard"
	"weakgo/pkg/piece"
	"weakgo/pkg/square"
)

// King, Knight and Pawn hold the fully precomputed leaper attack sets,
// one entry per origin square (and, for pawns, per side).
var (
	King   [square.N]bitboard.Board
	Knight [square.N]bitboard.Board
	Pawn   [piece.NSide][square.N]bitboard.Board
)

func init() {
	for s := square.A1; s <= square.H8; s++ {
		King[s] = kingAttacksFrom(s)
		Knight[s] = knightAttacksFrom(s)
		Pawn[piece.White][s] = pawnAttacksFrom(s, piece.White)
		Pawn[piece.Black][s] = pawnAttacksFrom(s, piece.Black)
	}

	RookTable.Populate(rook)
	BishopTable.Populate(bishop)

	initGeometry()
}

// board accumulates a leaper's attack set square by square, discarding
// any target that would wrap off an edge of the board.
type board struct {
	origin square.Square
	board  bitboard.Board
}

// addAttack adds the square offset by (fileOffset, rankOffset) from the
// origin to the attack set, unless doing so would wrap around a file or
// rank edge.
func (b *board) addAttack(fileOffset, rankOffset int) {
	attackFile := int(b.origin.File()) + fileOffset
	attackRank := int(b.origin.Rank()) + rankOffset

	if attackFile < int(square.FileA) || attackFile > int(square.FileH) ||
		attackRank < int(square.Rank1) || attackRank > int(square.Rank8) {
		return
	}

	b.board.Set(square.From(square.File(attackFile), square.Rank(attackRank)))
}

// PawnPush returns the single-step push targets of the given pawns.
func PawnPush(pawns bitboard.Board, side piece.Side) bitboard.Board {
	switch side {
	case piece.White:
		return pawns.North()
	case piece.Black:
		return pawns.South()
	default:
		panic("pawn push: bad side")
	}
}

// PawnsLeft returns the left-hand diagonal capture targets of the given
// pawns (the a-file side from White's perspective).
func PawnsLeft(pawns bitboard.Board, side piece.Side) bitboard.Board {
	switch side {
	case piece.White:
		return pawns.North().West()
	case piece.Black:
		return pawns.South().West()
	default:
		panic("pawns left: bad side")
	}
}

// PawnsRight returns the right-hand diagonal capture targets of the
// given pawns (the h-file side from White's perspective).
func PawnsRight(pawns bitboard.Board, side piece.Side) bitboard.Board {
	switch side {
	case piece.White:
		return pawns.North().East()
	case piece.Black:
		return pawns.South().East()
	default:
		panic("pawns right: bad side")
	}
}
