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
	"weakgo/internal/unreachable"
	"weakgo/pkg/attacks"
	"weakgo/pkg/bitboard"
	"weakgo/pkg/castling"
	"weakgo/pkg/move"
	"weakgo/pkg/piece"
	"weakgo/pkg/square"
)

// DoMove applies m, which must be a legal move in the current
// position, updating the ChessSet, castling rights, en-passant square,
// CheckStats, side to move, and pushing a HistoryEntry that Unmove can
// use to reverse it.
func (g *Game) DoMove(m move.Move) {
	if m == move.Null {
		unreachable.Unreachable("do move: null move")
	}

	us := g.SideToMove
	them := us.Other()
	set := &g.ChessSet

	entry := &g.History[g.Ply]
	entry.Move = m
	entry.PriorEnPassant = g.EnPassantSquare
	entry.PriorCheckStats = g.CheckStats
	entry.CapturedPiece = piece.NoPiece

	checks := givesCheck(set, g.CheckStats, m)

	from := m.From()
	to := m.To()
	p := m.Piece()

	g.EnPassantSquare = square.None

	switch m.Type() {
	case move.CastleKing, move.CastleQueen:
		rook := castling.Rooks[to]
		set.RemovePiece(piece.New(piece.King, us), from)
		set.PlacePiece(piece.New(piece.King, us), to)
		set.RemovePiece(rook.Rook, rook.From)
		set.PlacePiece(rook.Rook, rook.To)

	case move.EnPassant:
		captureSq := square.From(to.File(), from.Rank())
		captured := set.PieceAt(them, captureSq)
		if captured.Type() != piece.Pawn {
			unreachable.Unreachable("do move: en passant target %v is not a pawn", captureSq)
		}
		entry.CapturedPiece = captured
		set.RemovePiece(captured, captureSq)

		set.RemovePiece(piece.New(piece.Pawn, us), from)
		set.PlacePiece(piece.New(piece.Pawn, us), to)

	default: // Normal, PromoteKnight, PromoteBishop, PromoteRook, PromoteQueen
		if m.IsCapture() {
			captured := set.PieceAt(them, to)
			if captured == piece.NoPiece {
				unreachable.Unreachable("do move: no piece at %v to capture", to)
			}
			entry.CapturedPiece = captured
			set.RemovePiece(captured, to)
		}

		destType := p
		if m.IsPromotion() {
			destType = m.Type().PromotedType()
		} else if p == piece.Pawn && isDoublePush(from, to) {
			g.EnPassantSquare = square.Square((int(from) + int(to)) / 2)
		}

		set.RemovePiece(piece.New(p, us), from)
		set.PlacePiece(piece.New(destType, us), to)
	}

	set.UpdateOccupancies()

	newRights := g.CastlingRights &^ (castling.RightUpdates[from] | castling.RightUpdates[to])
	entry.LostRights = g.CastlingRights.Lost(newRights)
	g.CastlingRights = newRights

	var checkSources bitboard.Board
	if checks {
		checkSources = checkSourcesAfter(set, entry.PriorCheckStats, m, us)
	}

	g.SideToMove = them
	g.CheckStats = recalculateCheckStats(set, them)
	g.CheckStats.CheckSources = checkSources

	g.Ply++
}

// isDoublePush reports whether a pawn move from `from` to `to` is a
// two-square push.
func isDoublePush(from, to square.Square) bool {
	diff := int(to) - int(from)
	return diff == 16 || diff == -16
}

// checkSourcesAfter computes, for a move already known to give check,
// the bitboard of mover's pieces now checking the opponent's king.
// Direct and discovered checks are derived from the pre-move
// CheckStats without a fresh attacker scan; castling and en-passant,
// whose occupancy changes are not expressible that way, fall back to a
// full re-scan.
func checkSourcesAfter(set *ChessSet, prior CheckStats, m move.Move, us piece.Side) bitboard.Board {
	king := prior.AttackedKing
	to := m.To()
	from := m.From()

	switch m.Type() {
	case move.CastleKing, move.CastleQueen, move.EnPassant:
		return allAttackersTo(set, king, set.Combined) & set.Occupancy[us]

	default: // Normal, PromoteKnight, PromoteBishop, PromoteRook, PromoteQueen
		p := m.Piece()
		destType := p
		if m.IsPromotion() {
			destType = m.Type().PromotedType()
		}

		var checks bitboard.Board
		direct := prior.CheckSquares[destType].IsSet(to)
		if m.IsPromotion() {
			// A promoted piece may check along a line through the
			// square its pawn just vacated, which the pre-move
			// CheckSquares still treat as occupied.
			switch destType {
			case piece.Knight:
				direct = attacks.Knight[to].IsSet(king)
			case piece.Bishop:
				direct = attacks.Bishop(to, set.Combined).IsSet(king)
			case piece.Rook:
				direct = attacks.Rook(to, set.Combined).IsSet(king)
			case piece.Queen:
				direct = (attacks.Bishop(to, set.Combined) | attacks.Rook(to, set.Combined)).IsSet(king)
			}
		}
		if direct {
			checks |= bitboard.Squares[to]
		}

		// The comparison below is against the piece that vacated
		// `from` (always a pawn for promotions), not the piece it
		// became: a discovered check comes from a slider left behind,
		// so it only collapses into the direct-check case above when
		// the vacating piece was itself that kind of slider.
		if prior.Discovered.IsSet(from) {
			if p != piece.Rook {
				checks |= attacks.Rook(king, set.Combined) & (set.Rooks(us) | set.Queens(us))
			}
			if p != piece.Bishop {
				checks |= attacks.Bishop(king, set.Combined) & (set.Bishops(us) | set.Queens(us))
			}
		}

		return checks
	}
}

// Unmove reverses the last move played, restoring piece positions, the
// captured piece (if any), prior en-passant square, prior CheckStats,
// and castling rights, in the exact inverse order of DoMove.
func (g *Game) Unmove() {
	if g.Ply == 0 {
		unreachable.Unreachable("unmove: no move to undo")
	}

	g.Ply--
	entry := &g.History[g.Ply]
	m := entry.Move

	// Toggle side to move before any piece manipulation, mirroring the
	// mover's perspective DoMove used to build this entry.
	g.SideToMove = g.SideToMove.Other()
	us := g.SideToMove
	set := &g.ChessSet

	from := m.From()
	to := m.To()
	p := m.Piece()

	switch m.Type() {
	case move.CastleKing, move.CastleQueen:
		rook := castling.Rooks[to]
		set.RemovePiece(piece.New(piece.King, us), to)
		set.PlacePiece(piece.New(piece.King, us), from)
		set.RemovePiece(rook.Rook, rook.To)
		set.PlacePiece(rook.Rook, rook.From)

	case move.EnPassant:
		set.RemovePiece(piece.New(piece.Pawn, us), to)
		set.PlacePiece(piece.New(piece.Pawn, us), from)

		captureSq := square.From(to.File(), from.Rank())
		set.PlacePiece(entry.CapturedPiece, captureSq)

	default: // Normal, PromoteKnight, PromoteBishop, PromoteRook, PromoteQueen
		destType := p
		if m.IsPromotion() {
			destType = m.Type().PromotedType()
		}

		set.RemovePiece(piece.New(destType, us), to)
		set.PlacePiece(piece.New(p, us), from)

		if m.IsCapture() {
			set.PlacePiece(entry.CapturedPiece, to)
		}
	}

	set.UpdateOccupancies()

	g.CheckStats = entry.PriorCheckStats
	g.EnPassantSquare = entry.PriorEnPassant
	g.CastlingRights = g.CastlingRights.Restore(entry.LostRights)
}
