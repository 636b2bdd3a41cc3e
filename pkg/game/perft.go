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
	"weakgo/pkg/bitboard"
	"weakgo/pkg/move"
)

// PerftStats is the category breakdown produced by PerftFull.
type PerftStats struct {
	Count      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	Checkmates uint64
}

// IsInCheck reports whether the side to move's king is currently
// attacked.
func (g *Game) IsInCheck() bool {
	return g.CheckStats.CheckSources != bitboard.Empty
}

// Checkmated reports whether the side to move has no legal moves and
// is in check.
func (g *Game) Checkmated() bool {
	var buf move.List
	AllMoves(&buf, g)
	return buf.Len() == 0 && g.IsInCheck()
}

// Stalemated reports whether the side to move has no legal moves and
// is not in check.
func (g *Game) Stalemated() bool {
	var buf move.List
	AllMoves(&buf, g)
	return buf.Len() == 0 && !g.IsInCheck()
}

// Perft counts the number of leaf nodes in the game tree rooted at the
// current position, to the given depth. It is the fast variant used to
// validate raw move counts.
func Perft(g *Game, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var buf move.List
	AllMoves(&buf, g)

	if depth == 1 {
		return uint64(buf.Len())
	}

	var count uint64
	for i := 0; i < buf.Len(); i++ {
		g.DoMove(buf.At(i))
		count += Perft(g, depth-1)
		g.Unmove()
	}
	return count
}

// PerftFull is Perft with the category breakdown of spec.md's
// PerftStats: every leaf move is individually classified by capture,
// en-passant, castle, promotion, and whether it gives check or mate.
func PerftFull(g *Game, depth int) PerftStats {
	if depth <= 0 {
		unreachable.Unreachable("perft full: invalid depth %d", depth)
	}

	var stats PerftStats

	var buf move.List
	AllMoves(&buf, g)

	for i := 0; i < buf.Len(); i++ {
		m := buf.At(i)

		if depth == 1 {
			stats.Count++
			if m.IsCapture() {
				stats.Captures++
			}
			switch m.Type() {
			case move.CastleKing, move.CastleQueen:
				stats.Castles++
			case move.EnPassant:
				stats.EnPassants++
			case move.PromoteKnight, move.PromoteBishop, move.PromoteRook, move.PromoteQueen:
				stats.Promotions++
			case move.Normal:
			default:
				unreachable.Unreachable("perft full: unrecognised move type %v", m.Type())
			}

			g.DoMove(m)
			if g.IsInCheck() {
				stats.Checks++
				if g.Checkmated() {
					stats.Checkmates++
				}
			}
			g.Unmove()

			continue
		}

		g.DoMove(m)
		sub := PerftFull(g, depth-1)
		g.Unmove()

		stats.Count += sub.Count
		stats.Captures += sub.Captures
		stats.EnPassants += sub.EnPassants
		stats.Castles += sub.Castles
		stats.Promotions += sub.Promotions
		stats.Checks += sub.Checks
		stats.Checkmates += sub.Checkmates
	}

	return stats
}
