package game_test

import (
	"testing"

	"weakgo/pkg/game"
	"weakgo/pkg/move"
)

// TestCheckmateDetection plays the scholar's mate and checks that the
// terminal position is recognised as checkmate, not merely "in check".
func TestCheckmateDetection(t *testing.T) {
	g := game.NewGame()
	moves := []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7"}
	for _, alg := range moves {
		applyAlgebraic(t, g, alg)
	}

	if !g.IsInCheck() {
		t.Fatalf("scholar's mate: side to move should be in check")
	}
	if !g.Checkmated() {
		t.Errorf("scholar's mate: expected checkmate")
	}
	if g.Stalemated() {
		t.Errorf("scholar's mate: should not be reported as stalemate")
	}
}

// TestStalemateDetection uses a well-known stalemate position and
// checks it is recognised as stalemate, not checkmate.
func TestStalemateDetection(t *testing.T) {
	g := game.NewGameFromFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")

	if g.IsInCheck() {
		t.Fatalf("stalemate position: side to move should not be in check")
	}
	if !g.Stalemated() {
		t.Errorf("expected stalemate")
	}
	if g.Checkmated() {
		t.Errorf("should not be reported as checkmate")
	}
}

// applyAlgebraic finds and plays the legal move matching a long
// algebraic string (from-square + to-square, e.g. "e2e4").
func applyAlgebraic(t *testing.T, g *game.Game, alg string) {
	t.Helper()

	var buf move.List
	game.AllMoves(&buf, g)

	for i := 0; i < buf.Len(); i++ {
		m := buf.At(i)
		if m.From().String()+m.To().String() == alg {
			g.DoMove(m)
			return
		}
	}
	t.Fatalf("no legal move matches %q in position %q", alg, g.FEN())
}
