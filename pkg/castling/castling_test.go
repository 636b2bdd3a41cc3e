package castling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weakgo/pkg/castling"
	"weakgo/pkg/square"
)

func TestNewRights(t *testing.T) {
	assert.Equal(t, castling.All, castling.NewRights("KQkq"))
	assert.Equal(t, castling.None, castling.NewRights("-"))
	assert.Equal(t, castling.WhiteKingside|castling.BlackQueenside, castling.NewRights("Kq"))
}

func TestString(t *testing.T) {
	assert.Equal(t, "KQkq", castling.All.String())
	assert.Equal(t, "-", castling.None.String())
}

func TestLostAndRestore(t *testing.T) {
	before := castling.All
	after := before &^ castling.RightUpdates[square.E1]
	lost := before.Lost(after)
	assert.Equal(t, castling.White, lost)
	assert.Equal(t, before, after.Restore(lost))
}

func TestRightUpdatesKingMove(t *testing.T) {
	assert.Equal(t, castling.White, castling.RightUpdates[square.E1])
	assert.Equal(t, castling.Black, castling.RightUpdates[square.E8])
	assert.Equal(t, castling.WhiteKingside, castling.RightUpdates[square.H1])
	assert.Equal(t, castling.BlackQueenside, castling.RightUpdates[square.A8])
}
