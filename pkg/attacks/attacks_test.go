package attacks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weakgo/pkg/attacks"
	"weakgo/pkg/bitboard"
	"weakgo/pkg/piece"
	"weakgo/pkg/square"
)

func TestKnightCorner(t *testing.T) {
	a1 := attacks.Knight[square.A1]
	assert.Equal(t, 2, a1.Count())
	assert.True(t, a1.IsSet(square.B3))
	assert.True(t, a1.IsSet(square.C2))
}

func TestKingCenter(t *testing.T) {
	assert.Equal(t, 8, attacks.King[square.E4].Count())
}

func TestPawnAttacksFromE4(t *testing.T) {
	white := attacks.Pawn[piece.White][square.E4]
	assert.True(t, white.IsSet(square.D5))
	assert.True(t, white.IsSet(square.F5))
	assert.Equal(t, 2, white.Count())

	black := attacks.Pawn[piece.Black][square.E4]
	assert.True(t, black.IsSet(square.D3))
	assert.True(t, black.IsSet(square.F3))
}

func TestRookOnEmptyBoard(t *testing.T) {
	a := attacks.Rook(square.A1, bitboard.Empty)
	assert.Equal(t, 14, a.Count())
	assert.True(t, a.IsSet(square.A8))
	assert.True(t, a.IsSet(square.H1))
}

func TestRookBlocked(t *testing.T) {
	var occ bitboard.Board
	occ.Set(square.A4)
	a := attacks.Rook(square.A1, occ)
	assert.True(t, a.IsSet(square.A4))
	assert.False(t, a.IsSet(square.A5))
}

func TestBishopOnEmptyBoard(t *testing.T) {
	a := attacks.Bishop(square.A1, bitboard.Empty)
	assert.True(t, a.IsSet(square.H8))
	assert.Equal(t, 7, a.Count())
}

func TestQueenIsRookPlusBishop(t *testing.T) {
	q := attacks.Queen(square.D4, bitboard.Empty)
	r := attacks.Rook(square.D4, bitboard.Empty)
	b := attacks.Bishop(square.D4, bitboard.Empty)
	assert.Equal(t, r|b, q)
}

func TestDistanceAndBetween(t *testing.T) {
	assert.Equal(t, 7, attacks.Distance[square.A1][square.H8])
	assert.True(t, attacks.Between[square.A1][square.A8].IsSet(square.A4))
	assert.False(t, attacks.Between[square.A1][square.A8].IsSet(square.A1))
	assert.Equal(t, bitboard.Empty, attacks.Between[square.A1][square.B3])
}

func TestCanSlideAttackAndAligned(t *testing.T) {
	assert.True(t, attacks.CanSlideAttack[square.A1][square.H8])
	assert.False(t, attacks.CanSlideAttack[square.A1][square.B3])
	assert.True(t, attacks.Aligned(square.A1, square.D4, square.H8))
	assert.False(t, attacks.Aligned(square.A1, square.B3, square.H8))
}
