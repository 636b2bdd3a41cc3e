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

// Package piece implements representations of chess pieces and sides,
// and related utility functions.
//
// The King, Queen, Rook, Knight, Bishop, and Pawn are represented by the
// K, Q, R, N, B, and P strings respectively, with uppercase for White and
// lower case for Black.
//
// The strings w and b are used for the White and Black sides respectively.
package piece

// NewSide creates an instance of Side from the given id.
func NewSide(id string) Side {
	switch id {
	case "w":
		return White
	case "b":
		return Black
	default:
		panic("new side: invalid side id")
	}
}

// Side represents one of the two sides of a chess game. Side is binary
// by design: many formulas exploit White==0, Black==1, e.g. the back
// rank offset side*56 and the pawn push direction (1-2*side)*8.
type Side int

// the two sides of a chess game
const (
	White Side = iota
	Black

	NSide = 2
)

// Other returns the side's opponent.
func (s Side) Other() Side {
	return s ^ Black
}

// String converts a Side to its string representation.
func (s Side) String() string {
	switch s {
	case Black:
		return "b"
	case White:
		return "w"
	default:
		panic("side string: invalid side")
	}
}

// New creates a Piece from a Type and a Side.
func New(t Type, s Side) Piece {
	return Piece(s<<3) + Piece(t)
}

// NewFromString creates an instance of Piece from the given piece id.
func NewFromString(id string) Piece {
	switch id {
	case "K":
		return WhiteKing
	case "Q":
		return WhiteQueen
	case "R":
		return WhiteRook
	case "N":
		return WhiteKnight
	case "B":
		return WhiteBishop
	case "P":
		return WhitePawn
	case "k":
		return BlackKing
	case "q":
		return BlackQueen
	case "r":
		return BlackRook
	case "n":
		return BlackKnight
	case "b":
		return BlackBishop
	case "p":
		return BlackPawn
	default:
		panic("new piece: invalid piece id")
	}
}

// Type represents a chess piece's type, ignoring side. Missing stands
// in for the absence of a piece and is used as the Type of NoPiece; the
// remaining values double as dense array indices (Pawn..King).
type Type int

// the piece types
const (
	Missing Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	NType = 7
)

func (t Type) String() string {
	return Piece(t | 8).String()
}

// Piece represents a chess piece, packing its Side into bit 3 and its
// Type into bits 0-2.
type Piece int

const (
	NoPiece Piece = 0

	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Pawn) + 1
	WhiteBishop Piece = Piece(Pawn) + 2
	WhiteRook   Piece = Piece(Pawn) + 3
	WhiteQueen  Piece = Piece(Pawn) + 4
	WhiteKing   Piece = Piece(Pawn) + 5

	BlackPawn   Piece = Piece(Pawn) + 8
	BlackKnight Piece = Piece(Pawn) + 9
	BlackBishop Piece = Piece(Pawn) + 10
	BlackRook   Piece = Piece(Pawn) + 11
	BlackQueen  Piece = Piece(Pawn) + 12
	BlackKing   Piece = Piece(Pawn) + 13

	N = 16
)

// Promotions lists the piece types a pawn may promote to, in the order
// the move generator should try them.
var Promotions = []Type{
	Queen, Rook, Bishop, Knight,
}

// String converts a Piece into its string representation.
func (p Piece) String() string {
	pieces := [...]string{
		NoPiece:     " ",
		WhitePawn:   "P",
		WhiteKnight: "N",
		WhiteBishop: "B",
		WhiteRook:   "R",
		WhiteQueen:  "Q",
		WhiteKing:   "K",
		BlackPawn:   "p",
		BlackKnight: "n",
		BlackBishop: "b",
		BlackRook:   "r",
		BlackQueen:  "q",
		BlackKing:   "k",
	}

	return pieces[p]
}

// Type returns the piece type of the given Piece.
func (p Piece) Type() Type {
	if p == NoPiece {
		return Missing
	}
	return Type(p & 7)
}

// Side returns the side of the given Piece.
func (p Piece) Side() Side {
	if p == NoPiece {
		panic("side of piece: can't find side of NoPiece")
	}

	return Side(p >> 3)
}

// Is checks if the type of the given Piece matches the given type.
func (p Piece) Is(target Type) bool {
	return p.Type() == target
}

// IsSide checks if the side of the given Piece matches the given Side.
func (p Piece) IsSide(target Side) bool {
	return p.Side() == target
}
