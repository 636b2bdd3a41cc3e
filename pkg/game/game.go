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

package game

import (
	"weakgo/pkg/castling"
	"weakgo/pkg/move"
	"weakgo/pkg/piece"
	"weakgo/pkg/square"
)

// MaxPly bounds the history stack: no legal game, including the
// quiescence extension of a search, is expected to exceed it.
const MaxPly = 1024

// HistoryEntry records everything Unmove needs to reverse a single
// move: the move itself, any piece it captured, the castling rights it
// took away, the en-passant square it replaced, and the CheckStats of
// the position before it was played.
type HistoryEntry struct {
	Move            move.Move
	CapturedPiece   piece.Piece
	LostRights      castling.Rights
	PriorEnPassant  square.Square
	PriorCheckStats CheckStats
}

// Game owns a ChessSet, castling rights, en-passant square, side to
// move, the derived CheckStats, and a move history stack. It is
// mutated in place by DoMove/Unmove; search never copies a Game.
type Game struct {
	ChessSet        ChessSet
	CastlingRights  castling.Rights
	EnPassantSquare square.Square
	SideToMove      piece.Side
	CheckStats      CheckStats

	History [MaxPly]HistoryEntry
	Ply     int
}

// NewEmptyGame returns a Game with no pieces placed, White to move, and
// no castling rights. Callers (typically the FEN parser) are
// responsible for placing pieces, calling RecalculateCheckStats, and
// setting castling rights/en-passant square/side to move afterwards.
func NewEmptyGame() *Game {
	g := &Game{
		EnPassantSquare: square.None,
		SideToMove:      piece.White,
	}
	g.ChessSet = NewChessSet()
	return g
}

// NewGame returns a Game set up in the standard chess starting
// position, White to move, with all four castling rights available.
func NewGame() *Game {
	g := NewEmptyGame()

	back := [8]piece.Type{
		piece.Rook, piece.Knight, piece.Bishop, piece.Queen,
		piece.King, piece.Bishop, piece.Knight, piece.Rook,
	}

	for file := square.FileA; file <= square.FileH; file++ {
		g.ChessSet.PlacePiece(piece.New(back[file], piece.White), square.From(file, square.Rank1))
		g.ChessSet.PlacePiece(piece.New(piece.Pawn, piece.White), square.From(file, square.Rank2))
		g.ChessSet.PlacePiece(piece.New(piece.Pawn, piece.Black), square.From(file, square.Rank7))
		g.ChessSet.PlacePiece(piece.New(back[file], piece.Black), square.From(file, square.Rank8))
	}

	g.ChessSet.UpdateOccupancies()
	g.CastlingRights = castling.All
	g.RecalculateCheckStats()

	return g
}

// RecalculateCheckStats rebuilds CheckStats from scratch, including a
// freshly re-scanned CheckSources. Unlike DoMove's incremental fast
// path, this always does the full attacker scan, so it is safe to call
// from the FEN parser or anywhere else a position is built up directly
// rather than reached by playing a move.
func (g *Game) RecalculateCheckStats() {
	g.ChessSet.checkKingCounts()
	g.CheckStats = recalculateCheckStats(&g.ChessSet, g.SideToMove)
	g.CheckStats.CheckSources = allAttackersTo(&g.ChessSet, g.CheckStats.DefendedKing, g.ChessSet.Combined) &
		g.ChessSet.Occupancy[g.SideToMove.Other()]
}
