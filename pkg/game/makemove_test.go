package game_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"weakgo/pkg/game"
	"weakgo/pkg/move"
)

// TestDoMoveUnmoveRoundTrip plays every legal move from a handful of
// positions and checks that Unmove restores the exact prior FEN and
// ChessSet, across several plies of recursion.
func TestDoMoveUnmoveRoundTrip(t *testing.T) {
	fens := []string{
		game.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp2ppp/8/2Ppp3/8/8/PP1PPPPP/RNBQKBNR w KQkq d6 0 3",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			g := game.NewGameFromFEN(fen)
			roundTrip(t, g, 3)
		})
	}
}

func roundTrip(t *testing.T, g *game.Game, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}

	before := g.FEN()
	beforeSet := g.ChessSet

	var buf move.List
	game.AllMoves(&buf, g)

	for i := 0; i < buf.Len(); i++ {
		m := buf.At(i)

		g.DoMove(m)
		roundTrip(t, g, depth-1)
		g.Unmove()

		if after := g.FEN(); after != before {
			t.Fatalf("unmove did not restore fen: before %q, after %q (move %v)", before, after, m)
		}
		if diff := cmp.Diff(beforeSet, g.ChessSet); diff != "" {
			t.Fatalf("unmove did not restore chess set (move %v):\n%s", m, diff)
		}
	}
}
