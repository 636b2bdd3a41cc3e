package piece_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weakgo/pkg/piece"
)

func TestNewAndAccessors(t *testing.T) {
	p := piece.New(piece.Knight, piece.Black)
	assert.Equal(t, piece.BlackKnight, p)
	assert.Equal(t, piece.Knight, p.Type())
	assert.Equal(t, piece.Black, p.Side())
	assert.True(t, p.Is(piece.Knight))
	assert.True(t, p.IsSide(piece.Black))
}

func TestNoPieceType(t *testing.T) {
	assert.Equal(t, piece.Missing, piece.NoPiece.Type())
	assert.Panics(t, func() { piece.NoPiece.Side() })
}

func TestStringRoundTrip(t *testing.T) {
	for _, id := range []string{"K", "Q", "R", "N", "B", "P", "k", "q", "r", "n", "b", "p"} {
		p := piece.NewFromString(id)
		assert.Equal(t, id, p.String())
	}
}

func TestSideOther(t *testing.T) {
	assert.Equal(t, piece.Black, piece.White.Other())
	assert.Equal(t, piece.White, piece.Black.Other())
}
