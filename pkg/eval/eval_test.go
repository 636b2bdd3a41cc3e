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

package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weakgo/pkg/eval"
	"weakgo/pkg/game"
)

func TestStartingPositionIsBalanced(t *testing.T) {
	g := game.NewGame()
	assert.Equal(t, eval.Eval(0), eval.Evaluate(g), "symmetric starting material should score as equal")
}

func TestMaterialAdvantageFavoursSideWithMore(t *testing.T) {
	// White has an extra queen; it is White to move.
	g := game.NewGameFromFEN("4k3/8/8/8/8/8/8/R2QK3 w - - 0 1")
	score := eval.Evaluate(g)
	assert.Greater(t, score, eval.Eval(0), "side to move with a material edge should score positively")
}

func TestMaterialAdvantageFlipsSignForOpponent(t *testing.T) {
	// Same position, but Black to move: the extra White queen should
	// now be scored against the side to move.
	g := game.NewGameFromFEN("4k3/8/8/8/8/8/8/R2QK3 b - - 0 1")
	score := eval.Evaluate(g)
	assert.Less(t, score, eval.Eval(0), "side to move facing a material deficit should score negatively")
}

func TestCheckmateScoresWorseThanStalemate(t *testing.T) {
	mate := game.NewGameFromFEN("R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1")
	assert.True(t, mate.Checkmated())
	// Black has 300 of pawns against White's 800; 13500 more comes
	// off for being mated.
	assert.Equal(t, eval.Eval(-14000), eval.Evaluate(mate))

	stale := game.NewGameFromFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	assert.True(t, stale.Stalemated())
	// Black is a queen (900) down; 7200 more comes off for stalemate.
	assert.Equal(t, eval.Eval(-8100), eval.Evaluate(stale))

	assert.Less(t, eval.Evaluate(mate), eval.Evaluate(stale),
		"being mated must score worse than being stalemated")
}

func TestApplyWeightsRetunesMaterial(t *testing.T) {
	t.Cleanup(func() {
		eval.ApplyWeights(eval.DefaultWeights())
	})

	g := game.NewGameFromFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	before := eval.Evaluate(g)

	heavy := eval.DefaultWeights()
	heavy.Pawn = 1000
	eval.ApplyWeights(heavy)

	after := eval.Evaluate(g)
	assert.Greater(t, after, before, "raising the pawn weight should raise a position with an extra pawn")
}
