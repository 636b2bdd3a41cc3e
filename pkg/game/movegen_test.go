package game_test

import (
	"testing"

	"weakgo/pkg/game"
	"weakgo/pkg/move"
	"weakgo/pkg/piece"
)

func TestAllMovesStartingPositionCount(t *testing.T) {
	g := game.NewGame()

	var buf move.List
	game.AllMoves(&buf, g)

	if buf.Len() != 20 {
		t.Errorf("starting position has %d legal moves, want 20", buf.Len())
	}
}

// TestAllMovesNoDuplicates guards against the generator emitting the
// same (from, to, type) triple twice, which would double-count perft
// leaves without being caught by a raw move-count check.
func TestAllMovesNoDuplicates(t *testing.T) {
	fens := []string{
		game.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}

	for _, fen := range fens {
		g := game.NewGameFromFEN(fen)

		var buf move.List
		game.AllMoves(&buf, g)

		seen := make(map[move.Move]bool, buf.Len())
		for i := 0; i < buf.Len(); i++ {
			m := buf.At(i)
			if seen[m] {
				t.Errorf("%s: duplicate move %v", fen, m)
			}
			seen[m] = true
		}
	}
}

// TestPinnedPieceCannotMoveOffLine plants a bishop pinned to its own
// king along a diagonal and checks that none of the generated moves
// moves it off that diagonal.
func TestPinnedPieceCannotMoveOffLine(t *testing.T) {
	// White king on e1, White bishop on d2 pinned by a Black bishop on
	// a5; the White bishop may only move along the a5-e1 diagonal.
	g := game.NewGameFromFEN("4k3/8/8/b7/8/8/3B4/4K3 w - - 0 1")

	var buf move.List
	game.AllMoves(&buf, g)

	for i := 0; i < buf.Len(); i++ {
		m := buf.At(i)
		if m.Piece() != piece.Bishop {
			continue
		}
		// c3, b4, a5 and e1 lie on the pin diagonal; anything else
		// would expose the king.
		switch m.To().String() {
		case "c3", "b4", "a5", "e1":
		default:
			t.Errorf("pinned bishop moved off the pin line: %v", m)
		}
	}
}

// TestDoubleCheckOnlyKingMoves checks that when two pieces give check
// simultaneously, every generated move is a king move.
func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// Black king on e8 double-checked by a White rook on e5 (through
	// the e-file) and a White knight on d6.
	g := game.NewGameFromFEN("4k3/8/3N4/4R3/8/8/8/4K3 b - - 0 1")

	if !g.IsInCheck() {
		t.Fatalf("expected black king to be in check")
	}

	var buf move.List
	game.AllMoves(&buf, g)

	for i := 0; i < buf.Len(); i++ {
		if m := buf.At(i); m.Piece() != piece.King {
			t.Errorf("double check: non-king move generated: %v", m)
		}
	}
}
