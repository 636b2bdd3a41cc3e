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

// Package castling provides types for tracking and updating castling
// rights, modelled as the 2x2 [side][king-side|queen-side] matrix of
// the specification, packed into a single byte.
package castling

import (
	"weakgo/pkg/piece"
	"weakgo/pkg/square"
)

// Rights represents the current castling rights of a position.
// [Black Queen-side][Black King-side][White Queen-side][White King-side]
type Rights byte

// NewRights creates a new Rights from the given FEN castling field.
//
//	White King-side:  K
//	White Queen-side: Q
//	Black King-side:  k
//	Black Queen-side: q
//
// The string "-" represents None.
func NewRights(r string) Rights {
	var rights Rights

	if r == "-" {
		return None
	}

	if r != "" && r[0] == 'K' {
		r = r[1:]
		rights |= WhiteKingside
	}

	if r != "" && r[0] == 'Q' {
		r = r[1:]
		rights |= WhiteQueenside
	}

	if r != "" && r[0] == 'k' {
		r = r[1:]
		rights |= BlackKingside
	}

	if r != "" && r[0] == 'q' {
		rights |= BlackQueenside
	}

	return rights
}

const (
	WhiteKingside  Rights = 1 << 0
	WhiteQueenside Rights = 1 << 1
	BlackKingside  Rights = 1 << 2
	BlackQueenside Rights = 1 << 3

	None Rights = 0

	White Rights = WhiteKingside | WhiteQueenside
	Black Rights = BlackKingside | BlackQueenside

	Kingside  Rights = WhiteKingside | BlackKingside
	Queenside Rights = WhiteQueenside | BlackQueenside

	All Rights = White | Black

	N = 16
)

// Has reports whether the given single right (or combination of
// rights) is entirely present.
func (c Rights) Has(r Rights) bool {
	return c&r == r
}

// Lost returns the rights present in c but not in after, i.e. the delta
// that a move removed. This is the value the history stack records so
// that Unmove can restore exactly the rights a move took away.
func (c Rights) Lost(after Rights) Rights {
	return c &^ after
}

// Restore re-adds a previously lost set of rights.
func (c Rights) Restore(lost Rights) Rights {
	return c | lost
}

func (c Rights) String() string {
	var str string

	if c&WhiteKingside != 0 {
		str += "K"
	}

	if c&WhiteQueenside != 0 {
		str += "Q"
	}

	if c&BlackKingside != 0 {
		str += "k"
	}

	if c&BlackQueenside != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}

	return str
}

// RookMove describes the source and target squares and the piece
// identity of the rook that accompanies a king's castling move.
type RookMove struct {
	From, To square.Square
	Rook     piece.Piece
}

// Rooks is indexed by the king's target square during a castling move
// and gives the matching rook's source, target, and identity. Entries
// for squares that are never a castling king-target hold the zero
// value.
var Rooks = [square.N]RookMove{
	square.G1: {From: square.H1, To: square.F1, Rook: piece.WhiteRook},
	square.C1: {From: square.A1, To: square.D1, Rook: piece.WhiteRook},
	square.G8: {From: square.H8, To: square.F8, Rook: piece.BlackRook},
	square.C8: {From: square.A8, To: square.D8, Rook: piece.BlackRook},
}

// RightUpdates is indexed by a moved-from or moved-to square and gives
// the rights that must be cleared because of that move: moving the a1
// rook (or capturing on a1) forfeits White's queen-side rights, moving
// the king forfeits both of its side's rights, and so on. Squares not
// occupied by a rook or king in their starting position carry None.
var RightUpdates = [square.N]Rights{
	square.A1: WhiteQueenside,
	square.E1: White,
	square.H1: WhiteKingside,

	square.A8: BlackQueenside,
	square.E8: Black,
	square.H8: BlackKingside,
}
