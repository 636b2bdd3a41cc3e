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
	"time"

	"weakgo/pkg/eval"
	"weakgo/pkg/move"
)

// Report carries one iterative-deepening info line: the depth just
// completed, its score and node count, and the move chosen at that
// depth. internal/engineio logs one of these per completed depth.
type Report struct {
	Depth int
	Score eval.Eval
	Nodes uint64
	Time  time.Duration
	Move  move.Move
}

// IterSearch deepens one ply at a time, starting from depth 1, for as
// long as wall-clock time remains in budget; the time check happens
// only between whole depths, so a depth already in progress is always
// allowed to finish, even when it ends after the budget has run out.
// It returns the best move found by the last depth it ran; no
// iteration is ever cut short partway through. report, if non-nil, is
// called once per completed depth.
func IterSearch(c *Context, budget time.Duration, report func(Report)) move.Move {
	start := time.Now()

	var best move.Move
	for depth := 1; ; depth++ {
		if depth > 1 && time.Since(start) >= budget {
			break
		}

		m, nodes := c.Search(depth)
		best = m

		if report != nil {
			report(Report{
				Depth: depth,
				Score: c.Score,
				Nodes: nodes,
				Time:  time.Since(start),
				Move:  m,
			})
		}

		if time.Since(start) >= budget {
			break
		}
	}

	return best
}
