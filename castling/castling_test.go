package castling_test

import (
	"testing"

	"github.com/kestrelchess/core/castling"
	"github.com/kestrelchess/core/square"
	"github.com/stretchr/testify/assert"
)

func TestNewRightsParsing(t *testing.T) {
	assert.Equal(t, castling.All, castling.NewRights("KQkq"))
	assert.Equal(t, castling.None, castling.NewRights("-"))
	assert.Equal(t, castling.WhiteKingside|castling.BlackQueenside, castling.NewRights("Kq"))
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"-", "KQkq", "Kq", "k"} {
		assert.Equal(t, s, castling.NewRights(s).String())
	}
}

func TestRightUpdatesCoverHomeSquares(t *testing.T) {
	assert.Equal(t, castling.White, castling.RightUpdates[square.E1])
	assert.Equal(t, castling.WhiteQueenside, castling.RightUpdates[square.A1])
	assert.Equal(t, castling.WhiteKingside, castling.RightUpdates[square.H1])
	assert.Equal(t, castling.None, castling.RightUpdates[square.E4])
}

func TestRooksTable(t *testing.T) {
	rook := castling.Rooks[square.G1]
	assert.Equal(t, square.H1, rook.From)
	assert.Equal(t, square.F1, rook.To)
}
