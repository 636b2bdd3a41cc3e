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

package search

import (
	"weakgo/pkg/eval"
	"weakgo/pkg/game"
	"weakgo/pkg/move"
)

// negaMax searches the current position to the given depth, returning
// a score from the perspective of the side to move, per
// original_source/search.c's negaMax. depth == 0 hands off to
// quiescence; a position with no legal moves is scored directly by
// eval.Evaluate, which detects checkmate and stalemate itself.
func (c *Context) negaMax(alpha, beta eval.Eval, depth int) eval.Eval {
	c.Nodes++

	if depth == 0 {
		return c.quiesce(alpha, beta)
	}

	var moves move.List
	game.AllMoves(&moves, c.Game)
	if moves.Len() == 0 {
		return eval.Evaluate(c.Game)
	}

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)

		c.Game.DoMove(m)
		val := -c.negaMax(-beta, -alpha, depth-1)
		c.Game.Unmove()

		if val >= beta {
			return val // fail-high
		}
		if val > alpha {
			alpha = val
		}
	}

	return alpha
}
