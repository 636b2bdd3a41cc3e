// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Package move declares the packed Move representation and its Type tag.
package move

import (
	"weakgo/pkg/piece"
	"weakgo/pkg/square"
)

// Move represents a chess move: source and target squares, the moving
// piece type, the move's Type tag, and whether it is a capture.
//
// Format: MSB -> LSB
// [19 capture bool 19][18 Type 15][14 piece 12][11 target 6][5 source 0]
type Move uint32

// Null represents a "do nothing" move, used for returning errors.
const Null Move = 0

const (
	sourceWidth = 6
	targetWidth = 6
	pieceWidth  = 3
	typeWidth   = 4

	sourceOffset  = 0
	targetOffset  = sourceOffset + sourceWidth
	pieceOffset   = targetOffset + targetWidth
	typeOffset    = pieceOffset + pieceWidth
	captureOffset = typeOffset + typeWidth

	sourceMask = (1 << sourceWidth) - 1
	targetMask = (1 << targetWidth) - 1
	pieceMask  = (1 << pieceWidth) - 1
	typeMask   = (1 << typeWidth) - 1
)

// Type tags the kind of a move, distinguishing the ones that need
// special handling in DoMove/Unmove from an ordinary Normal move.
type Type int

const (
	Normal Type = iota
	CastleKing
	CastleQueen
	EnPassant
	PromoteKnight
	PromoteBishop
	PromoteRook
	PromoteQueen
)

// Promotion maps a promoted-to piece type to its move Type tag.
func Promotion(t piece.Type) Type {
	switch t {
	case piece.Knight:
		return PromoteKnight
	case piece.Bishop:
		return PromoteBishop
	case piece.Rook:
		return PromoteRook
	case piece.Queen:
		return PromoteQueen
	default:
		panic("move promotion: not a promotion type")
	}
}

// PromotedType returns the piece type a PromoteX move Type promotes to.
func (t Type) PromotedType() piece.Type {
	switch t {
	case PromoteKnight:
		return piece.Knight
	case PromoteBishop:
		return piece.Bishop
	case PromoteRook:
		return piece.Rook
	case PromoteQueen:
		return piece.Queen
	default:
		panic("promoted type: not a promotion move")
	}
}

// IsPromotion reports whether t is one of the four PromoteX tags.
func (t Type) IsPromotion() bool {
	return t >= PromoteKnight
}

// New creates a Move from its constituent fields.
func New(from, to square.Square, p piece.Type, t Type, capture bool) Move {
	m := Move(from) << sourceOffset
	m |= Move(to) << targetOffset
	m |= Move(p) << pieceOffset
	m |= Move(t) << typeOffset
	if capture {
		m |= 1 << captureOffset
	}
	return m
}

// From returns the move's source square.
func (m Move) From() square.Square {
	return square.Square((m >> sourceOffset) & sourceMask)
}

// To returns the move's target square.
func (m Move) To() square.Square {
	return square.Square((m >> targetOffset) & targetMask)
}

// Piece returns the type of the piece being moved (before promotion).
func (m Move) Piece() piece.Type {
	return piece.Type((m >> pieceOffset) & pieceMask)
}

// Type returns the move's Type tag.
func (m Move) Type() Type {
	return Type((m >> typeOffset) & typeMask)
}

// IsCapture reports whether the move captures a piece, including
// en-passant and promotion captures.
func (m Move) IsCapture() bool {
	return (m>>captureOffset)&1 != 0
}

// IsCastle reports whether the move is a king- or queen-side castle.
func (m Move) IsCastle() bool {
	t := m.Type()
	return t == CastleKing || t == CastleQueen
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Type() == EnPassant
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Type().IsPromotion()
}

// IsQuiet reports whether the move is neither a capture nor a
// promotion, i.e. it does not materially change the position.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// String converts the move to its long algebraic notation form, e.g.
// "e2e4", "e1g1" (castling), "d7d8q" (promotion), "0000" (null).
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.Type().PromotedType().String()
	}
	return s
}
