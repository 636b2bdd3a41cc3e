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

// Package eval implements the static position evaluator: material
// count plus a central-control bonus, with terminal adjustments for
// checkmate and stalemate. Scores are always from the perspective of
// the side to move, so search can negate them at each ply without
// tracking which side is White.
package eval

import (
	"math"

	"weakgo/pkg/attacks"
	"weakgo/pkg/bitboard"
	"weakgo/pkg/config"
	"weakgo/pkg/game"
	"weakgo/pkg/piece"
	"weakgo/pkg/square"
)

// Eval is a centipawn-scaled position score, from the perspective of
// the side to move.
type Eval int

// Inf bounds the Eval range, standing in for the root search window's
// +-infinity. It is kept well below math.MaxInt32 so that negating and
// adding small terms to it (as search's alpha/beta bounds do) never
// overflows.
const Inf Eval = math.MaxInt32 / 2

// material is the centipawn weight of each piece type, indexed
// Pawn..King; King is unused since it is never captured. It starts at
// config.Default's weights and can be retuned at runtime by
// ApplyWeights.
var material = weightsOf(config.Default.Eval)

// DefaultWeights returns the hardcoded material weights of
// config.Default, whatever ApplyWeights has since set, for callers (tests) that want to
// restore or inspect them without reaching into pkg/config directly.
func DefaultWeights() config.Eval {
	return config.Default.Eval
}

// ApplyWeights retunes the evaluator's material table from a loaded
// config.Eval, letting a TOML file (see pkg/config) override the
// hardcoded defaults without a rebuild.
func ApplyWeights(w config.Eval) {
	material = weightsOf(w)
}

func weightsOf(w config.Eval) [piece.NType]Eval {
	var m [piece.NType]Eval
	m[piece.Pawn] = Eval(w.Pawn)
	m[piece.Knight] = Eval(w.Knight)
	m[piece.Bishop] = Eval(w.Bishop)
	m[piece.Rook] = Eval(w.Rook)
	m[piece.Queen] = Eval(w.Queen)
	return m
}

// checkmatePenalty and stalematePenalty are subtracted from the side
// to move's score when it has no legal moves, per spec.md's terminal
// adjustment: a side with no moves is worse off in check (it has lost)
// than stalemated (a draw).
const (
	checkmatePenalty Eval = 13500
	stalematePenalty Eval = 7200
)

// centreSquares is the 16-square block (files c-f, ranks 3-6) formed
// by expanding the four centre squares (d4, d5, e4, e5) by one ring in
// every direction.
var centreSquares bitboard.Board

func init() {
	for file := square.FileC; file <= square.FileF; file++ {
		for rank := square.Rank3; rank <= square.Rank6; rank++ {
			centreSquares |= bitboard.Squares[square.From(file, rank)]
		}
	}
}

// Evaluate returns the static score of g from the perspective of the
// side to move, following original_source/eval.c's material-plus-
// centre-control formula.
func Evaluate(g *game.Game) Eval {
	us := g.SideToMove
	them := us.Other()

	score := materialAndCentre(g, us) - materialAndCentre(g, them)

	if g.Checkmated() {
		return score - checkmatePenalty
	}
	if g.Stalemated() {
		return score - stalematePenalty
	}

	return score
}

// materialAndCentre sums side's material plus its centre-control
// bonus: the number of centreSquares bits attacked by each of side's
// pieces (Pawn..Queen; the king is excluded, matching the C source's
// loop bounds). The bonus is disabled entirely in sparse positions
// (occupancy <= 10 pieces), where central control matters less than
// the endgame technique it would otherwise distort.
func materialAndCentre(g *game.Game, side piece.Side) Eval {
	set := &g.ChessSet
	occ := set.Combined

	var centreMult Eval
	if occ.Count() > 10 {
		centreMult = 1
	}

	var score Eval
	for t := piece.Pawn; t <= piece.Queen; t++ {
		pieces := set.Boards[side][t]
		score += Eval(pieces.Count()) * material[t]

		for bb := pieces; bb != bitboard.Empty; {
			from := bb.Pop()
			score += Eval(centreAttacks(t, from, side, occ).Count()) * centreMult
		}
	}

	return score
}

// centreAttacks returns the attack set of a piece of type t and side
// side standing on from, given occupancy occ, restricted to
// centreSquares.
func centreAttacks(t piece.Type, from square.Square, side piece.Side, occ bitboard.Board) bitboard.Board {
	var attacked bitboard.Board
	switch t {
	case piece.Pawn:
		attacked = attacks.Pawn[side][from]
	case piece.Knight:
		attacked = attacks.Knight[from]
	case piece.Bishop:
		attacked = attacks.Bishop(from, occ)
	case piece.Rook:
		attacked = attacks.Rook(from, occ)
	case piece.Queen:
		attacked = attacks.Rook(from, occ) | attacks.Bishop(from, occ)
	}
	return attacked & centreSquares
}
