package bitboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weakgo/pkg/bitboard"
	"weakgo/pkg/square"
)

func TestSquaresAreSingletons(t *testing.T) {
	assert.Equal(t, bitboard.Board(1), bitboard.Squares[square.A1])
	assert.Equal(t, bitboard.Board(1)<<63, bitboard.Squares[square.H8])
}

func TestSetUnsetIsSet(t *testing.T) {
	var b bitboard.Board
	b.Set(square.E4)
	assert.True(t, b.IsSet(square.E4))
	assert.Equal(t, 1, b.Count())
	b.Unset(square.E4)
	assert.False(t, b.IsSet(square.E4))
	assert.Equal(t, 0, b.Count())
}

func TestNoneIsNoop(t *testing.T) {
	var b bitboard.Board
	b.Set(square.None)
	assert.Equal(t, bitboard.Empty, b)
}

func TestDirections(t *testing.T) {
	var b bitboard.Board
	b.Set(square.E4)
	assert.True(t, b.North().IsSet(square.E5))
	assert.True(t, b.South().IsSet(square.E3))
	assert.True(t, b.East().IsSet(square.F4))
	assert.True(t, b.West().IsSet(square.D4))
}

func TestFileWrapClears(t *testing.T) {
	var h, a bitboard.Board
	h.Set(square.H4)
	a.Set(square.A4)
	assert.Equal(t, bitboard.Empty, h.East())
	assert.Equal(t, bitboard.Empty, a.West())
}

func TestPop(t *testing.T) {
	var b bitboard.Board
	b.Set(square.C3)
	b.Set(square.F6)
	first := b.Pop()
	assert.Equal(t, square.C3, first)
	assert.Equal(t, 1, b.Count())
}

func TestFilesRanksDiagonals(t *testing.T) {
	assert.True(t, bitboard.Files[square.FileA].IsSet(square.A1))
	assert.True(t, bitboard.Files[square.FileA].IsSet(square.A8))
	assert.False(t, bitboard.Files[square.FileA].IsSet(square.B1))

	assert.True(t, bitboard.Ranks[square.Rank1].IsSet(square.A1))
	assert.True(t, bitboard.Ranks[square.Rank1].IsSet(square.H1))
	assert.False(t, bitboard.Ranks[square.Rank1].IsSet(square.A2))

	assert.True(t, bitboard.Diagonals[square.A1.Diagonal()].IsSet(square.H8))
	assert.True(t, bitboard.AntiDiagonals[square.A8.AntiDiagonal()].IsSet(square.H1))
}
