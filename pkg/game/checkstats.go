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
	"weakgo/pkg/move"
	"weakgo/pkg/piece"
	"weakgo/pkg/square"
)

// CheckStats is the derived check/pin summary of a position, computed
// from the perspective of the side to move: the side to move is "our"
// side below, and the opponent (the side that just moved) holds
// AttackedKing.
type CheckStats struct {
	// AttackedKing is the opponent's king square: the one our pieces
	// may be giving check to.
	AttackedKing square.Square

	// DefendedKing is our own king square.
	DefendedKing square.Square

	// CheckSources is the bitboard of the *opponent's* pieces
	// currently giving check to DefendedKing, our own king: it names
	// the checkers the side to move must capture or block. Maintained
	// incrementally by DoMove, not by recalculateCheckStats, since the
	// source value comes from the mover's CheckSquares/Discovered
	// *before* the turn toggles.
	CheckSources bitboard.Board

	// Discovered is the bitboard of our pieces that, if moved, would
	// uncover a check on AttackedKing delivered by one of our sliders.
	Discovered bitboard.Board

	// Pinned is the bitboard of our pieces pinned to DefendedKing by
	// an opposing slider.
	Pinned bitboard.Board

	// CheckSquares[t] is the bitboard of squares from which a piece of
	// type t, if it were ours, would directly check AttackedKing given
	// the current occupancy. Indexed Pawn..Queen; King is left empty,
	// since a king can never give check to another king.
	CheckSquares [piece.NType]bitboard.Board
}

// recalculateCheckStats computes a fresh CheckStats for the side to
// move (mover) against its opponent, per spec.md §4.D. CheckSources is
// left at its zero value: DoMove fills it in separately, using either
// the incremental fast path or a full re-scan (see givesCheck).
func recalculateCheckStats(set *ChessSet, mover piece.Side) CheckStats {
	opponent := mover.Other()

	king := set.Kings[opponent]
	ourKing := set.Kings[mover]

	var stats CheckStats
	stats.AttackedKing = king
	stats.DefendedKing = ourKing

	stats.Discovered = pinnedPieces(set, mover, king) & set.Occupancy[mover]
	stats.Pinned = pinnedPieces(set, opponent, ourKing) & set.Occupancy[mover]

	occ := set.Combined
	stats.CheckSquares[piece.Pawn] = attacks.Pawn[opponent][king]
	stats.CheckSquares[piece.Knight] = attacks.Knight[king]
	stats.CheckSquares[piece.Bishop] = attacks.Bishop(king, occ)
	stats.CheckSquares[piece.Rook] = attacks.Rook(king, occ)
	stats.CheckSquares[piece.Queen] = stats.CheckSquares[piece.Bishop] | stats.CheckSquares[piece.Rook]

	return stats
}

// pinnedPieces finds, among side's sliders aligned with target on an
// empty board, every case where exactly one piece sits between the
// slider and target; that piece is added to the returned bitboard.
// Pieces of either colour are returned, so callers mask the result:
// side = mover with target = opponent king gives "our pieces that would
// reveal a check if moved", and side = opponent with target = our king
// gives "our pieces pinned to our own king".
func pinnedPieces(set *ChessSet, side piece.Side, target square.Square) bitboard.Board {
	var pinned bitboard.Board

	blockers := set.Combined

	rookish := (set.Rooks(side) | set.Queens(side)) & attacks.Rook(target, bitboard.Empty)
	for rookish != bitboard.Empty {
		from := rookish.Pop()
		between := attacks.Between[target][from] & blockers
		if between.Count() == 1 {
			pinned |= between
		}
	}

	bishopish := (set.Bishops(side) | set.Queens(side)) & attacks.Bishop(target, bitboard.Empty)
	for bishopish != bitboard.Empty {
		from := bishopish.Pop()
		between := attacks.Between[target][from] & blockers
		if between.Count() == 1 {
			pinned |= between
		}
	}

	return pinned
}

// allAttackersTo returns every piece of either side attacking s given
// occupancy occ. It is the full re-scan fallback used by castling and
// en-passant check detection, where the incremental fast path in
// givesCheck cannot be trusted.
func allAttackersTo(set *ChessSet, s square.Square, occ bitboard.Board) bitboard.Board {
	var attackers bitboard.Board

	attackers |= attacks.Pawn[piece.Black][s] & set.Pawns(piece.White)
	attackers |= attacks.Pawn[piece.White][s] & set.Pawns(piece.Black)

	knights := set.Knights(piece.White) | set.Knights(piece.Black)
	attackers |= attacks.Knight[s] & knights

	king := set.King(piece.White) | set.King(piece.Black)
	attackers |= attacks.King[s] & king

	bishops := set.Bishops(piece.White) | set.Bishops(piece.Black) |
		set.Queens(piece.White) | set.Queens(piece.Black)
	attackers |= attacks.Bishop(s, occ) & bishops

	rooks := set.Rooks(piece.White) | set.Rooks(piece.Black) |
		set.Queens(piece.White) | set.Queens(piece.Black)
	attackers |= attacks.Rook(s, occ) & rooks

	return attackers
}

// givesCheck reports whether playing m (not yet applied) would put the
// opponent's king (stats.AttackedKing) in check, using only
// precomputed data available before the move is made. It mirrors
// original_source/game.c's GivesCheck, the incremental check-source
// fast path spec.md §4.F step 5 calls for.
func givesCheck(set *ChessSet, stats CheckStats, m move.Move) bool {
	from := m.From()
	to := m.To()
	p := m.Piece()

	// Direct check: moving piece lands where it would check the king.
	if stats.CheckSquares[p].IsSet(to) {
		return true
	}

	// Discovered check: a pinned slider's blocker moves out of the way.
	if stats.Discovered.IsSet(from) {
		switch p {
		case piece.Pawn, piece.King:
			// A pawn or king can move along the very ray it was
			// blocking, which does not reveal the check.
			if !attacks.Aligned(from, to, stats.AttackedKing) {
				return true
			}
		default:
			return true
		}
	}

	if m.Type() == move.Normal {
		return false
	}

	king := stats.AttackedKing
	occNoFrom := set.Combined &^ bitboard.Squares[from]

	switch m.Type() {
	case move.PromoteKnight:
		return attacks.Knight[to].IsSet(king)
	case move.PromoteRook:
		return attacks.Rook(to, occNoFrom).IsSet(king)
	case move.PromoteBishop:
		return attacks.Bishop(to, occNoFrom).IsSet(king)
	case move.PromoteQueen:
		return (attacks.Rook(to, occNoFrom) | attacks.Bishop(to, occNoFrom)).IsSet(king)

	case move.EnPassant:
		captureSquare := square.From(to.File(), from.Rank())
		occ := (occNoFrom &^ bitboard.Squares[captureSquare]) | bitboard.Squares[to]

		return enPassantGivesCheck(set, occ, king)

	case move.CastleKing, move.CastleQueen:
		rm := castleRookMove(m.Type(), from)
		occ := (occNoFrom &^ bitboard.Squares[rm.from]) | bitboard.Squares[rm.to] | bitboard.Squares[to]
		return attacks.Rook(rm.to, occ).IsSet(king)

	default:
		unreachable.Unreachable("gives check: unrecognised move type %v", m.Type())
		return false
	}
}

// enPassantGivesCheck re-checks only the sliding attackers, since an
// en-passant capture can never itself deliver a leaper (pawn/knight)
// discovered check beyond what the direct/discovered fast paths above
// already catch; occ already has both pawns removed and the mover
// placed on the target square.
func enPassantGivesCheck(set *ChessSet, occ bitboard.Board, king square.Square) bool {
	// The side that just moved is determined by which king we're
	// attacking into: AttackedKing belongs to the opponent, so "our"
	// sliders are whichever side is not occupying AttackedKing.
	for side := piece.White; side <= piece.Black; side++ {
		if set.King(side).IsSet(king) {
			continue
		}
		rookish := set.Rooks(side) | set.Queens(side)
		bishopish := set.Bishops(side) | set.Queens(side)
		if attacks.Rook(king, occ)&rookish != bitboard.Empty {
			return true
		}
		if attacks.Bishop(king, occ)&bishopish != bitboard.Empty {
			return true
		}
	}
	return false
}

// rookMove describes the rook displacement accompanying a castle.
type rookMove struct {
	from, to square.Square
}

// castleRookMove returns the rook source/target squares for the
// castling move starting at kingFrom, derived the same way as
// pkg/castling.Rooks but keyed by the king's *origin*, since givesCheck
// runs before the move is applied and only has From/To of the king.
func castleRookMove(t move.Type, kingFrom square.Square) rookMove {
	rank := kingFrom.Rank()
	switch t {
	case move.CastleKing:
		return rookMove{from: square.From(square.FileH, rank), to: square.From(square.FileF, rank)}
	case move.CastleQueen:
		return rookMove{from: square.From(square.FileA, rank), to: square.From(square.FileD, rank)}
	default:
		unreachable.Unreachable("castle rook move: not a castling type %v", t)
		return rookMove{}
	}
}
