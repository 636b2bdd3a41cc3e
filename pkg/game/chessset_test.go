package game_test

import (
	"testing"

	"weakgo/pkg/bitboard"
	"weakgo/pkg/game"
	"weakgo/pkg/piece"
	"weakgo/pkg/square"
)

func TestChessSetOccupancyConsistency(t *testing.T) {
	g := game.NewGame()
	set := &g.ChessSet

	var white, black bitboard.Board
	for pt := piece.Pawn; pt <= piece.King; pt++ {
		white |= set.Boards[piece.White][pt]
		black |= set.Boards[piece.Black][pt]
	}

	if white != set.Occupancy[piece.White] {
		t.Errorf("white occupancy mismatch: got %v want %v", set.Occupancy[piece.White], white)
	}
	if black != set.Occupancy[piece.Black] {
		t.Errorf("black occupancy mismatch: got %v want %v", set.Occupancy[piece.Black], black)
	}
	if white&black != bitboard.Empty {
		t.Errorf("white and black occupancies overlap: %v", white&black)
	}
	if set.Combined != white|black {
		t.Errorf("combined occupancy mismatch: got %v want %v", set.Combined, white|black)
	}
}

func TestChessSetKingCount(t *testing.T) {
	g := game.NewGame()
	for side := piece.White; side <= piece.Black; side++ {
		if n := g.ChessSet.King(side).Count(); n != 1 {
			t.Errorf("side %v has %d kings, want 1", side, n)
		}
	}
}

func TestPieceAtRoundTrips(t *testing.T) {
	g := game.NewGameFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	e1 := g.ChessSet.PieceAt(piece.White, square.E1)
	if e1 != piece.WhiteKing {
		t.Errorf("e1 = %v, want white king", e1)
	}

	e4 := g.ChessSet.AnyPieceAt(square.E4)
	if e4 != piece.NoPiece {
		t.Errorf("e4 = %v, want empty", e4)
	}
}
