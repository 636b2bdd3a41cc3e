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

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"weakgo/pkg/game"
	"weakgo/pkg/piece"
	"weakgo/pkg/square"
)

var (
	whitePiece = color.New(color.FgHiWhite, color.Bold).SprintFunc()
	blackPiece = color.New(color.FgHiCyan, color.Bold).SprintFunc()
)

// renderBoard draws g's position as an 8x8 grid, one rank per row from
// Rank8 down to Rank1, bordered the way the teacher's mailbox.Board
// String rank-by-rank grid loop was, but with White and Black pieces
// colorized instead of merely cased.
func renderBoard(g *game.Game) string {
	var b strings.Builder

	border := "+---+---+---+---+---+---+---+---+\n"

	for i := 0; i < square.RankN; i++ {
		rank := square.Rank(square.RankN - 1 - i)

		b.WriteString(border)
		b.WriteString("| ")
		for file := square.FileA; file <= square.FileH; file++ {
			p := g.ChessSet.AnyPieceAt(square.From(file, rank))
			b.WriteString(colorPiece(p))
			b.WriteString(" | ")
		}
		fmt.Fprintf(&b, "%d\n", rank+1)
	}
	b.WriteString(border)
	b.WriteString("  a   b   c   d   e   f   g   h\n")

	return b.String()
}

// colorPiece renders a single square's occupant: White pieces in bold
// white, Black pieces in bold cyan (legible against most terminal
// themes), and an empty square as a bare space.
func colorPiece(p piece.Piece) string {
	if p == piece.NoPiece {
		return " "
	}
	if p.Side() == piece.White {
		return whitePiece(p.String())
	}
	return blackPiece(p.String())
}
