package square_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weakgo/pkg/square"
)

func TestNewRoundTrip(t *testing.T) {
	for _, id := range []string{"a1", "h1", "a8", "h8", "e4", "d5"} {
		s := square.New(id)
		assert.Equal(t, id, s.String())
	}
}

func TestFileRank(t *testing.T) {
	s := square.New("e4")
	assert.Equal(t, square.FileE, s.File())
	assert.Equal(t, square.Rank4, s.Rank())
	assert.Equal(t, s, square.From(square.FileE, square.Rank4))
}

func TestNoneSquare(t *testing.T) {
	assert.Equal(t, square.None, square.New("-"))
	assert.Equal(t, "-", square.None.String())
}

func TestLittleEndianRankFileMapping(t *testing.T) {
	// a1 is square 0, h8 is square 63, and a square plus 8 is one rank north.
	assert.EqualValues(t, 0, square.A1)
	assert.EqualValues(t, 63, square.H8)
	assert.Equal(t, square.A2, square.A1+8)
}
