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

package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"weakgo/pkg/game"
	"weakgo/pkg/search"
)

// TestSearchFindsMateInOne is spec.md §8 scenario 6: a back-rank mate
// one move away. Search at depth 2 must play the mating rook move and
// report a score whose magnitude exceeds 10000.
func TestSearchFindsMateInOne(t *testing.T) {
	g := game.NewGameFromFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")

	ctx := search.NewContext(g)
	best, nodes := ctx.Search(2)

	assert.Equal(t, "a1a8", best.String())
	assert.Greater(t, nodes, uint64(0))
	assert.Greater(t, int(ctx.Score), 10000, "mate score magnitude should exceed 10000")
}

// TestSearchPanicsWithoutLegalMoves guards Search's documented
// precondition: callers must check Checkmated/Stalemated first.
func TestSearchPanicsWithoutLegalMoves(t *testing.T) {
	g := game.NewGameFromFEN("R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1")
	assert.True(t, g.Checkmated())

	ctx := search.NewContext(g)
	assert.Panics(t, func() { ctx.Search(1) })
}

// TestIterSearchRespectsBudget checks that IterSearch returns a move
// and does not run substantially past its wall-clock budget.
func TestIterSearchRespectsBudget(t *testing.T) {
	g := game.NewGame()
	ctx := search.NewContext(g)

	start := time.Now()
	best := search.IterSearch(ctx, 50*time.Millisecond, nil)
	elapsed := time.Since(start)

	assert.NotEqual(t, "0000", best.String())
	// Depth 1 always completes regardless of budget; generous slack
	// avoids flakiness on a loaded CI machine.
	assert.Less(t, elapsed, 2*time.Second)
}

// TestQuiesceTerminatesOnQuietPosition exercises quiescence's
// termination property (spec.md §8): a position with no captures
// available stand-pats immediately rather than recursing forever.
func TestQuiesceTerminatesOnQuietPosition(t *testing.T) {
	g := game.NewGame()
	ctx := search.NewContext(g)

	_, nodes := ctx.Search(1)
	assert.Greater(t, nodes, uint64(0))
}
