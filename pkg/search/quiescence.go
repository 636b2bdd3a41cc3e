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

// quiesce searches only captures beyond the nominal search depth,
// ground on original_source/search.c's quiesce. It stand-pats at every
// node (a side is never forced to capture) and recurses through
// captures only, which guarantees termination: each recursive call
// strictly reduces the material on the board.
//
// original_source/search.c's quiesce has a fail-soft bug: on raising
// alpha it writes `val = alpha` instead of `alpha = val`, which
// silently discards the improved score. That is fixed here: alpha is
// assigned from val, not the other way around.
func (c *Context) quiesce(alpha, beta eval.Eval) eval.Eval {
	c.Nodes++

	standPat := eval.Evaluate(c.Game)
	if standPat >= beta {
		return beta
	}
	if alpha < standPat {
		alpha = standPat
	}

	var captures move.List
	game.AllCaptures(&captures, c.Game)

	for i := 0; i < captures.Len(); i++ {
		m := captures.At(i)

		c.Game.DoMove(m)
		val := -c.quiesce(-beta, -alpha)
		c.Game.Unmove()

		if val >= beta {
			return beta
		}
		if val > alpha {
			alpha = val
		}
	}

	return alpha
}
