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

// Package game implements the board state, check/pin summary, move
// generator and make/unmake machinery of a chess position.
package game

import (
	"weakgo/internal/unreachable"
	"weakgo/pkg/bitboard"
	"weakgo/pkg/piece"
	"weakgo/pkg/square"
)

// ChessSet holds, for each side, one bitboard per piece type plus a
// per-side occupancy and the combined occupancy of both sides.
//
// Invariant: Occupancy[s] == bit-OR of Boards[s][Pawn..King]; Combined
// == Occupancy[White] | Occupancy[Black]; Occupancy[White] and
// Occupancy[Black] are disjoint; exactly one king bit is set per side.
type ChessSet struct {
	Boards    [piece.NSide][piece.NType]bitboard.Board
	Occupancy [piece.NSide]bitboard.Board
	Combined  bitboard.Board

	// Kings caches each side's king square so callers don't have to
	// scan Boards[s][King] on every check/pin computation.
	Kings [piece.NSide]square.Square
}

// NewChessSet returns an empty ChessSet with no pieces placed.
func NewChessSet() ChessSet {
	return ChessSet{
		Kings: [piece.NSide]square.Square{square.None, square.None},
	}
}

// PlacePiece places p on s. The caller must ensure s is empty; placing
// onto an occupied square leaves the two piece boards inconsistent.
func (c *ChessSet) PlacePiece(p piece.Piece, s square.Square) {
	side := p.Side()
	t := p.Type()

	c.Boards[side][t].Set(s)
	if t == piece.King {
		c.Kings[side] = s
	}
}

// RemovePiece removes p from s. The caller must ensure p actually
// occupies s.
func (c *ChessSet) RemovePiece(p piece.Piece, s square.Square) {
	c.Boards[p.Side()][p.Type()].Unset(s)
}

// PieceAt scans side's six piece boards and returns the piece
// occupying s, or piece.NoPiece if side has no piece there.
func (c *ChessSet) PieceAt(side piece.Side, s square.Square) piece.Piece {
	for t := piece.Pawn; t <= piece.King; t++ {
		if c.Boards[side][t].IsSet(s) {
			return piece.New(t, side)
		}
	}
	return piece.NoPiece
}

// AnyPieceAt returns the piece occupying s regardless of side, or
// piece.NoPiece if the square is empty.
func (c *ChessSet) AnyPieceAt(s square.Square) piece.Piece {
	if p := c.PieceAt(piece.White, s); p != piece.NoPiece {
		return p
	}
	if p := c.PieceAt(piece.Black, s); p != piece.NoPiece {
		return p
	}
	return piece.NoPiece
}

// UpdateOccupancies recomputes Occupancy and Combined from the six
// piece boards of each side. Callers must invoke this after any batch
// of PlacePiece/RemovePiece calls before relying on occupancy data.
func (c *ChessSet) UpdateOccupancies() {
	for side := piece.White; side <= piece.Black; side++ {
		var occ bitboard.Board
		for t := piece.Pawn; t <= piece.King; t++ {
			occ |= c.Boards[side][t]
		}
		c.Occupancy[side] = occ
	}
	c.Combined = c.Occupancy[piece.White] | c.Occupancy[piece.Black]
}

// Pawns, Knights, Bishops, Rooks, Queens and King return the bitboard
// of the given side's pieces of that type.

func (c *ChessSet) Pawns(s piece.Side) bitboard.Board   { return c.Boards[s][piece.Pawn] }
func (c *ChessSet) Knights(s piece.Side) bitboard.Board { return c.Boards[s][piece.Knight] }
func (c *ChessSet) Bishops(s piece.Side) bitboard.Board { return c.Boards[s][piece.Bishop] }
func (c *ChessSet) Rooks(s piece.Side) bitboard.Board   { return c.Boards[s][piece.Rook] }
func (c *ChessSet) Queens(s piece.Side) bitboard.Board  { return c.Boards[s][piece.Queen] }
func (c *ChessSet) King(s piece.Side) bitboard.Board    { return c.Boards[s][piece.King] }

// checkKingCounts panics (via the unreachable diagnostic) unless each
// side has exactly one king. RecalculateCheckStats calls it, so
// NewGame and the FEN parser catch corrupt positions early.
func (c *ChessSet) checkKingCounts() {
	for side := piece.White; side <= piece.Black; side++ {
		if c.Boards[side][piece.King].Count() != 1 {
			unreachable.Unreachable("chess set: side %v does not have exactly one king", side)
		}
	}
}
