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

// Package bitboard implements a 64-bit bitboard and related functions
// for manipulating them, using the little-endian rank-file mapping of
// pkg/square (a1 == bit 0, h8 == bit 63, north == left shift by 8).
package bitboard

import (
	"math/bits"

	"weakgo/pkg/square"
)

// Board is a 64-bit bitboard, one bit per square.
type Board uint64

// useful bitboard constants
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// Squares holds the singleton bitboard of each square, Squares[s] == 1<<s.
var Squares [square.N]Board

// Files holds the full-file bitboard for each file.
var Files [square.FileN]Board

// Ranks holds the full-rank bitboard for each rank.
var Ranks [square.RankN]Board

// Diagonals holds the a1-h8-parallel diagonal bitboard for each of the
// 15 diagonal indices, see square.Square.Diagonal.
var Diagonals [square.DiagonalN]Board

// AntiDiagonals holds the a8-h1-parallel diagonal bitboard for each of
// the 15 anti-diagonal indices, see square.Square.AntiDiagonal.
var AntiDiagonals [square.DiagonalN]Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		Squares[s] = Board(1) << s
		Files[s.File()] |= Squares[s]
		Ranks[s.Rank()] |= Squares[s]
		Diagonals[s.Diagonal()] |= Squares[s]
		AntiDiagonals[s.AntiDiagonal()] |= Squares[s]
	}
}

// String renders the bitboard as an 8x8 grid of 1s and 0s, rank 8 on
// top and file a on the left, matching how a board is usually drawn.
func (b Board) String() string {
	var str string
	for rank := square.Rank8; ; rank-- {
		for file := square.FileA; file <= square.FileH; file++ {
			if b.IsSet(square.From(file, rank)) {
				str += "1"
			} else {
				str += "0"
			}
			if file != square.FileH {
				str += " "
			}
		}
		str += "\n"
		if rank == square.Rank1 {
			break
		}
	}
	return str
}

// Count returns the number of set bits (population count) of b.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// North shifts every bit one rank towards rank 8.
func (b Board) North() Board {
	return b << 8
}

// South shifts every bit one rank towards rank 1.
func (b Board) South() Board {
	return b >> 8
}

// East shifts every bit one file towards file h, clearing any bit that
// would wrap around from file h to file a.
func (b Board) East() Board {
	return (b &^ Files[square.FileH]) << 1
}

// West shifts every bit one file towards file a, clearing any bit that
// would wrap around from file a to file h.
func (b Board) West() Board {
	return (b &^ Files[square.FileA]) >> 1
}

// Pop clears and returns the least-significant set square of b.
func (b *Board) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// FirstOne returns the least-significant set square of b without
// modifying it.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet reports whether the given square is set in the bitboard.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// Set sets the given square in the bitboard. Setting square.None is a
// no-op, which keeps callers that pass a possibly-absent en-passant
// square simple.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset clears the given square in the bitboard. Unsetting square.None
// is a no-op.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}
