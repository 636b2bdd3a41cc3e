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

package game

import (
	"strconv"
	"strings"

	"weakgo/internal/unreachable"
	"weakgo/pkg/castling"
	"weakgo/pkg/piece"
	"weakgo/pkg/square"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN builds a Game from a Forsyth-Edwards Notation string.
// Only the first four fields (piece placement, side to move, castling
// rights, en-passant target) feed the position itself; the half-move
// and full-move counters are ignored and not retained on Game, since
// search and make/unmake have no use for them here, so FEN always
// writes them back as "0 1".
func NewGameFromFEN(fen string) *Game {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		unreachable.Unreachable("new game from fen: too few fields in %q", fen)
	}

	g := NewEmptyGame()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != square.RankN {
		unreachable.Unreachable("new game from fen: expected 8 ranks, got %d", len(ranks))
	}

	for i, rankData := range ranks {
		rank := square.Rank(square.RankN - 1 - i)
		file := square.FileA

		for _, id := range rankData {
			if id >= '1' && id <= '8' {
				file += square.File(id - '0')
				continue
			}

			p := piece.NewFromString(string(id))
			g.ChessSet.PlacePiece(p, square.From(file, rank))
			file++
		}
	}
	g.ChessSet.UpdateOccupancies()

	g.SideToMove = piece.NewSide(fields[1])
	g.CastlingRights = castling.NewRights(fields[2])
	g.EnPassantSquare = square.New(fields[3])

	g.RecalculateCheckStats()

	return g
}

// FEN renders g's position as a Forsyth-Edwards Notation string. The
// half-move clock and full-move counter fields are always written as 0
// and 1, since Game tracks neither.
func (g *Game) FEN() string {
	var b strings.Builder

	for i := 0; i < square.RankN; i++ {
		rank := square.Rank(square.RankN - 1 - i)

		empty := 0
		for file := square.FileA; file <= square.FileH; file++ {
			p := g.ChessSet.AnyPieceAt(square.From(file, rank))
			if p == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(p.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank != square.Rank1 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	b.WriteString(g.SideToMove.String())
	b.WriteByte(' ')
	b.WriteString(g.CastlingRights.String())
	b.WriteByte(' ')
	b.WriteString(g.EnPassantSquare.String())
	b.WriteString(" 0 1")

	return b.String()
}
