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

// Package search implements a fixed-depth negamax search with
// quiescence extension, grounded directly on original_source/search.c.
// Unlike the engine this spec was distilled from, it carries no
// transposition table, principal-variation null-window search, or
// aspiration windows: every node is searched fully, and node counting
// plus the iterative-deepening wall-clock loop are the only search
// features carried over.
package search

import (
	"weakgo/internal/unreachable"
	"weakgo/pkg/eval"
	"weakgo/pkg/game"
	"weakgo/pkg/move"
)

// Context runs a search against a single Game and accumulates the node
// count across the whole tree walked by Search. Score holds the root
// score of the last completed Search call, for callers (IterSearch's
// reporting) that want it without changing Search's two-value return.
type Context struct {
	Game  *game.Game
	Nodes uint64
	Score eval.Eval
}

// NewContext returns a Context ready to search g.
func NewContext(g *game.Game) *Context {
	return &Context{Game: g}
}

// Search finds the best move in the current position by fixed-depth
// negamax from the root, mirroring original_source/search.c's Search:
// every root move is tried in turn and the one with the highest
// negated child score wins. It panics if the position has no legal
// moves, since callers are expected to check game.Game.Checkmated/
// Stalemated before calling Search.
func (c *Context) Search(depth int) (move.Move, uint64) {
	c.Nodes = 0

	var moves move.List
	game.AllMoves(&moves, c.Game)
	if moves.Len() == 0 {
		unreachable.Unreachable("search: no legal move in the current position")
	}

	best := moves.At(0)
	max := -eval.Inf

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)

		c.Game.DoMove(m)
		val := -c.negaMax(-eval.Inf, eval.Inf, depth-1)
		c.Game.Unmove()

		if val > max {
			max = val
			best = m
		}
	}

	c.Score = max
	return best, c.Nodes
}
