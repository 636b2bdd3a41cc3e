// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package move

// MaxMoves bounds the number of pseudo-legal moves any single chess
// position can have. No legal position is known to exceed it, so
// callers may preallocate a List on the stack and never reallocate.
const MaxMoves = 256

// List is a fixed-capacity move buffer. The move generator appends
// directly into a caller-provided List to avoid per-node heap
// allocations during search.
type List struct {
	moves [MaxMoves]Move
	n     int
}

// Add appends a move to the list. It panics if the list is full, which
// would indicate MaxMoves is too small for some reachable position.
func (l *List) Add(m Move) {
	if l.n >= MaxMoves {
		panic("move list: capacity exceeded")
	}
	l.moves[l.n] = m
	l.n++
}

// Len returns the number of moves currently in the list.
func (l *List) Len() int {
	return l.n
}

// At returns the ith move in the list.
func (l *List) At(i int) Move {
	return l.moves[i]
}

// Clear empties the list without releasing its backing array.
func (l *List) Clear() {
	l.n = 0
}

// Slice returns the populated portion of the list as a slice. The
// slice aliases the List's backing array and is invalidated by the
// next Clear or Add.
func (l *List) Slice() []Move {
	return l.moves[:l.n]
}
