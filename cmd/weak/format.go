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
	"weakgo/pkg/move"
	"weakgo/pkg/piece"
)

// formatMove renders m in the long algebraic form spec.md's external
// interface calls for: "[P]<from><'-'|'x'><to>[suffix]", with pawn
// moves omitting the piece letter and castling written as O-O/O-O-O.
// Unlike move.Move.String (the engine-internal UCI-style "e2e4" form
// used by internal/engineio), this is the REPL's external notation.
func formatMove(m move.Move) string {
	switch m.Type() {
	case move.CastleKing:
		return "O-O"
	case move.CastleQueen:
		return "O-O-O"
	}

	var s string
	if p := m.Piece(); p != piece.Pawn {
		s += pieceLetter(p)
	}

	s += m.From().String()
	if m.IsCapture() {
		s += "x"
	} else {
		s += "-"
	}
	s += m.To().String()

	switch m.Type() {
	case move.EnPassant:
		s += "ep"
	case move.PromoteKnight:
		s += "=N"
	case move.PromoteBishop:
		s += "=B"
	case move.PromoteRook:
		s += "=R"
	case move.PromoteQueen:
		s += "=Q"
	}

	return s
}

// pieceLetter gives the side-independent uppercase letter spec.md's
// notation prefixes a non-pawn move with; piece.Type.String returns a
// lowercase letter instead, which the external move format does not
// want.
func pieceLetter(t piece.Type) string {
	switch t {
	case piece.Knight:
		return "N"
	case piece.Bishop:
		return "B"
	case piece.Rook:
		return "R"
	case piece.Queen:
		return "Q"
	case piece.King:
		return "K"
	default:
		return ""
	}
}
