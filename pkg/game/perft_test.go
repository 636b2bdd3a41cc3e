package game_test

import (
	"testing"

	"weakgo/pkg/game"
)

func TestPerftInitialPosition(t *testing.T) {
	want := []uint64{20, 400, 8902, 197281, 4865609}

	for depth, w := range want {
		depth := depth + 1
		t.Run(depthName(depth), func(t *testing.T) {
			if testing.Short() && depth > 4 {
				t.Skip("skipping deep perft in short mode")
			}
			g := game.NewGame()
			if got := game.Perft(g, depth); got != w {
				t.Errorf("perft(%d) = %d, want %d", depth, got, w)
			}
		})
	}
}

func TestPerftKiwipete(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	want := []uint64{48, 2039, 97862}

	for depth, w := range want {
		depth := depth + 1
		t.Run(depthName(depth), func(t *testing.T) {
			g := game.NewGameFromFEN(fen)
			if got := game.Perft(g, depth); got != w {
				t.Errorf("perft(%d) = %d, want %d", depth, got, w)
			}
		})
	}
}

func TestPerftEndgamePositions(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []uint64
	}{
		{
			name: "position3",
			fen:  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			want: []uint64{14, 191, 2812},
		},
		{
			// spec.md §8 scenario 4, literal FEN and depth-3 count.
			name: "position4",
			fen:  "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2pP/R2Q1RK1 w kq - 0 1",
			want: []uint64{6, 264, 62379},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for depth, w := range test.want {
				depth := depth + 1
				g := game.NewGameFromFEN(test.fen)
				if got := game.Perft(g, depth); got != w {
					t.Errorf("perft(%d) = %d, want %d", depth, got, w)
				}
			}
		})
	}
}

func TestPerftFullMatchesPerft(t *testing.T) {
	for depth := 1; depth <= 3; depth++ {
		g := game.NewGameFromFEN(game.StartFEN)
		fast := game.Perft(g, depth)
		full := game.PerftFull(g, depth)
		if full.Count != fast {
			t.Errorf("depth %d: PerftFull.Count = %d, Perft = %d", depth, full.Count, fast)
		}
	}
}

func depthName(depth int) string {
	switch depth {
	case 1:
		return "depth1"
	case 2:
		return "depth2"
	case 3:
		return "depth3"
	case 4:
		return "depth4"
	case 5:
		return "depth5"
	default:
		return "depthN"
	}
}
