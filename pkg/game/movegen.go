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
	"weakgo/pkg/attacks"
	"weakgo/pkg/bitboard"
	"weakgo/pkg/castling"
	"weakgo/pkg/move"
	"weakgo/pkg/piece"
	"weakgo/pkg/square"
)

// AllMoves generates every legal move of the side to move into buf.
func AllMoves(buf *move.List, g *Game) {
	generateMoves(buf, g, false)
}

// AllCaptures generates every legal capturing move (including
// en-passant and capturing promotions) of the side to move into buf.
// Used by quiescence search.
func AllCaptures(buf *move.List, g *Game) {
	generateMoves(buf, g, true)
}

// generateMoves is the shared entry point behind AllMoves/AllCaptures.
func generateMoves(buf *move.List, g *Game, capturesOnly bool) {
	set := &g.ChessSet
	us := g.SideToMove
	stats := &g.CheckStats

	kingSq := stats.DefendedKing
	checkerCount := stats.CheckSources.Count()

	seen := seenSquares(set, us.Other())

	appendKingMoves(buf, set, us, kingSq, seen, capturesOnly)

	if checkerCount >= 2 {
		// double check: only the king can move
		return
	}

	var checkMask bitboard.Board
	if checkerCount == 1 {
		checker := stats.CheckSources.FirstOne()
		checkMask = stats.CheckSources | attacks.Between[kingSq][checker]
	} else {
		checkMask = bitboard.Universe

		// castling is only possible outside of check, and is never a
		// capture
		if !capturesOnly {
			appendCastlingMoves(buf, g, seen)
		}
	}

	appendKnightMoves(buf, set, us, stats.Pinned, checkMask, capturesOnly)
	appendSliderMoves(buf, set, us, piece.Bishop, stats.Pinned, checkMask, kingSq, capturesOnly)
	appendSliderMoves(buf, set, us, piece.Rook, stats.Pinned, checkMask, kingSq, capturesOnly)
	appendSliderMoves(buf, set, us, piece.Queen, stats.Pinned, checkMask, kingSq, capturesOnly)
	appendPawnMoves(buf, g, checkMask, capturesOnly)
}

// seenSquares returns every square attacked by side `by`, excluding the
// opposing king as a sliding-ray blocker (so a king cannot step along
// the very ray it was blocking and call itself safe).
func seenSquares(set *ChessSet, by piece.Side) bitboard.Board {
	them := by.Other()
	blockers := set.Combined &^ set.King(them)

	seen := attacks.PawnsLeft(set.Pawns(by), by) | attacks.PawnsRight(set.Pawns(by), by)

	for knights := set.Knights(by); knights != bitboard.Empty; {
		seen |= attacks.Knight[knights.Pop()]
	}
	for bishops := set.Bishops(by) | set.Queens(by); bishops != bitboard.Empty; {
		seen |= attacks.Bishop(bishops.Pop(), blockers)
	}
	for rooks := set.Rooks(by) | set.Queens(by); rooks != bitboard.Empty; {
		seen |= attacks.Rook(rooks.Pop(), blockers)
	}

	seen |= attacks.King[set.Kings[by]]

	return seen
}

func appendKingMoves(buf *move.List, set *ChessSet, us piece.Side, kingSq square.Square, seen bitboard.Board, capturesOnly bool) {
	targets := attacks.King[kingSq] &^ (set.Occupancy[us] | seen)
	if capturesOnly {
		targets &= set.Occupancy[us.Other()]
	}

	for targets != bitboard.Empty {
		to := targets.Pop()
		buf.Add(move.New(kingSq, to, piece.King, move.Normal, set.Occupancy[us.Other()].IsSet(to)))
	}
}

func appendCastlingMoves(buf *move.List, g *Game, seen bitboard.Board) {
	set := &g.ChessSet
	us := g.SideToMove
	rank := square.Rank1
	kingside, queenside := castling.WhiteKingside, castling.WhiteQueenside
	if us == piece.Black {
		rank = square.Rank8
		kingside, queenside = castling.BlackKingside, castling.BlackQueenside
	}

	kingFrom := square.From(square.FileE, rank)
	occ := set.Combined

	if g.CastlingRights.Has(kingside) {
		travel := bitboard.Squares[square.From(square.FileF, rank)] | bitboard.Squares[square.From(square.FileG, rank)]
		if occ&travel == bitboard.Empty && seen&(bitboard.Squares[kingFrom]|travel) == bitboard.Empty {
			buf.Add(move.New(kingFrom, square.From(square.FileG, rank), piece.King, move.CastleKing, false))
		}
	}

	if g.CastlingRights.Has(queenside) {
		empty := bitboard.Squares[square.From(square.FileB, rank)] |
			bitboard.Squares[square.From(square.FileC, rank)] |
			bitboard.Squares[square.From(square.FileD, rank)]
		notSeen := bitboard.Squares[square.From(square.FileC, rank)] | bitboard.Squares[square.From(square.FileD, rank)]
		if occ&empty == bitboard.Empty && seen&(bitboard.Squares[kingFrom]|notSeen) == bitboard.Empty {
			buf.Add(move.New(kingFrom, square.From(square.FileC, rank), piece.King, move.CastleQueen, false))
		}
	}
}

func appendKnightMoves(buf *move.List, set *ChessSet, us piece.Side, pinned, checkMask bitboard.Board, capturesOnly bool) {
	// a pinned knight can never move without exposing its king
	knights := set.Knights(us) &^ pinned
	target := checkMask &^ set.Occupancy[us]
	if capturesOnly {
		target &= set.Occupancy[us.Other()]
	}

	for knights != bitboard.Empty {
		from := knights.Pop()
		targets := attacks.Knight[from] & target
		serialize(buf, set, us, piece.Knight, from, targets)
	}
}

func appendSliderMoves(buf *move.List, set *ChessSet, us piece.Side, t piece.Type, pinned, checkMask bitboard.Board, kingSq square.Square, capturesOnly bool) {
	var pieces bitboard.Board
	switch t {
	case piece.Bishop:
		pieces = set.Bishops(us)
	case piece.Rook:
		pieces = set.Rooks(us)
	case piece.Queen:
		pieces = set.Queens(us)
	}

	target := checkMask &^ set.Occupancy[us]
	if capturesOnly {
		target &= set.Occupancy[us.Other()]
	}

	for pieces != bitboard.Empty {
		from := pieces.Pop()

		var attack bitboard.Board
		switch t {
		case piece.Bishop:
			attack = attacks.Bishop(from, set.Combined)
		case piece.Rook:
			attack = attacks.Rook(from, set.Combined)
		case piece.Queen:
			attack = attacks.Queen(from, set.Combined)
		}

		targets := attack & target
		if pinned.IsSet(from) {
			targets = filterAligned(targets, from, kingSq)
		}

		serialize(buf, set, us, t, from, targets)
	}
}

// filterAligned keeps only the targets that lie on the line through
// from and kingSq, the only legal destinations for a pinned piece.
func filterAligned(targets bitboard.Board, from, kingSq square.Square) bitboard.Board {
	var kept bitboard.Board
	for candidates := targets; candidates != bitboard.Empty; {
		to := candidates.Pop()
		if attacks.Aligned(from, to, kingSq) {
			kept.Set(to)
		}
	}
	return kept
}

func serialize(buf *move.List, set *ChessSet, us piece.Side, t piece.Type, from square.Square, targets bitboard.Board) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		buf.Add(move.New(from, to, t, move.Normal, set.Occupancy[us.Other()].IsSet(to)))
	}
}

func appendPawnMoves(buf *move.List, g *Game, checkMask bitboard.Board, capturesOnly bool) {
	set := &g.ChessSet
	us := g.SideToMove
	them := us.Other()
	kingSq := g.CheckStats.DefendedKing
	pinned := g.CheckStats.Pinned

	var promotionRank, doublePushRank bitboard.Board
	var forward int
	if us == piece.White {
		promotionRank = bitboard.Ranks[square.Rank8]
		doublePushRank = bitboard.Ranks[square.Rank3]
		forward = 8
	} else {
		promotionRank = bitboard.Ranks[square.Rank1]
		doublePushRank = bitboard.Ranks[square.Rank6]
		forward = -8
	}

	pawns := set.Pawns(us)
	captureTarget := set.Occupancy[them] & checkMask

	// diagonal captures: for each pinned pawn, only keep the capture if
	// it stays aligned with the king; simplest to do per-candidate.
	leftCaptures := attacks.PawnsLeft(pawns, us) & captureTarget
	rightCaptures := attacks.PawnsRight(pawns, us) & captureTarget

	addPawnCaptures(buf, us, leftCaptures, forward-1, promotionRank, pinned, kingSq)
	addPawnCaptures(buf, us, rightCaptures, forward+1, promotionRank, pinned, kingSq)

	if !capturesOnly {
		pushTarget := checkMask &^ set.Combined

		singlePush := attacks.PawnPush(pawns, us) &^ set.Combined
		doublePush := attacks.PawnPush(singlePush&doublePushRank, us) & pushTarget
		singlePush &= pushTarget

		addPawnPushes(buf, us, singlePush, forward, promotionRank, pinned, kingSq)
		addPawnPushes(buf, us, doublePush, 2*forward, bitboard.Empty, pinned, kingSq)
	}

	appendEnPassant(buf, g, pawns, checkMask)
}

func addPawnCaptures(buf *move.List, us piece.Side, targets bitboard.Board, delta int, promotionRank bitboard.Board, pinned bitboard.Board, kingSq square.Square) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		from := square.Square(int(to) - delta)

		if pinned.IsSet(from) && !attacks.Aligned(from, to, kingSq) {
			continue
		}

		if promotionRank.IsSet(to) {
			for _, t := range piece.Promotions {
				buf.Add(move.New(from, to, piece.Pawn, move.Promotion(t), true))
			}
		} else {
			buf.Add(move.New(from, to, piece.Pawn, move.Normal, true))
		}
	}
}

func addPawnPushes(buf *move.List, us piece.Side, targets bitboard.Board, delta int, promotionRank bitboard.Board, pinned bitboard.Board, kingSq square.Square) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		from := square.Square(int(to) - delta)

		if pinned.IsSet(from) && !attacks.Aligned(from, to, kingSq) {
			continue
		}

		if promotionRank != bitboard.Empty && promotionRank.IsSet(to) {
			for _, t := range piece.Promotions {
				buf.Add(move.New(from, to, piece.Pawn, move.Promotion(t), false))
			}
		} else {
			buf.Add(move.New(from, to, piece.Pawn, move.Normal, false))
		}
	}
}

// appendEnPassant handles the en-passant capture separately: besides
// the ordinary pin filter, removing both the moving and captured pawn
// can expose a horizontal rook/queen pin that the single-square Pinned
// bitboard cannot express, so it needs a dedicated re-attack test.
func appendEnPassant(buf *move.List, g *Game, pawns bitboard.Board, checkMask bitboard.Board) {
	set := &g.ChessSet
	us := g.SideToMove
	them := us.Other()

	if g.EnPassantSquare == square.None {
		return
	}

	to := g.EnPassantSquare
	var capturedSquare square.Square
	if us == piece.White {
		capturedSquare = to - 8
	} else {
		capturedSquare = to + 8
	}

	epMask := bitboard.Squares[to] | bitboard.Squares[capturedSquare]
	if checkMask&epMask == bitboard.Empty {
		return
	}

	kingSq := g.CheckStats.DefendedKing

	candidates := attacks.Pawn[them][to] & pawns
	for candidates != bitboard.Empty {
		from := candidates.Pop()

		occ := (set.Combined &^ (bitboard.Squares[from] | bitboard.Squares[capturedSquare])) | bitboard.Squares[to]

		rookish := (set.Rooks(them) | set.Queens(them)) & attacks.Rook(kingSq, occ)
		bishopish := (set.Bishops(them) | set.Queens(them)) & attacks.Bishop(kingSq, occ)
		if rookish != bitboard.Empty || bishopish != bitboard.Empty {
			continue
		}

		buf.Add(move.New(from, to, piece.Pawn, move.EnPassant, true))
	}
}
