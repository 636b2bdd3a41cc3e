package move_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weakgo/pkg/move"
	"weakgo/pkg/piece"
	"weakgo/pkg/square"
)

func TestRoundTrip(t *testing.T) {
	m := move.New(square.E2, square.E4, piece.Pawn, move.Normal, false)
	assert.Equal(t, square.E2, m.From())
	assert.Equal(t, square.E4, m.To())
	assert.Equal(t, piece.Pawn, m.Piece())
	assert.Equal(t, move.Normal, m.Type())
	assert.False(t, m.IsCapture())
	assert.Equal(t, "e2e4", m.String())
}

func TestPromotionString(t *testing.T) {
	m := move.New(square.D7, square.D8, piece.Pawn, move.Promotion(piece.Queen), false)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, "d7d8q", m.String())
}

func TestCastleAndEnPassantTags(t *testing.T) {
	king := move.New(square.E1, square.G1, piece.King, move.CastleKing, false)
	assert.True(t, king.IsCastle())
	assert.False(t, king.IsCapture())

	ep := move.New(square.E5, square.D6, piece.Pawn, move.EnPassant, true)
	assert.True(t, ep.IsEnPassant())
	assert.True(t, ep.IsCapture())
}

func TestNullMove(t *testing.T) {
	assert.Equal(t, "0000", move.Null.String())
}

func TestList(t *testing.T) {
	var l move.List
	l.Add(move.New(square.E2, square.E4, piece.Pawn, move.Normal, false))
	l.Add(move.New(square.G1, square.F3, piece.Knight, move.Normal, false))
	assert.Equal(t, 2, l.Len())
	assert.Len(t, l.Slice(), 2)
	l.Clear()
	assert.Equal(t, 0, l.Len())
}
