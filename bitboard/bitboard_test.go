package bitboard_test

import (
	"testing"

	"github.com/kestrelchess/core/bitboard"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
	"github.com/stretchr/testify/assert"
)

func TestSetClear(t *testing.T) {
	b := bitboard.Empty
	b = b.Set(square.E4)
	assert.True(t, b.IsSet(square.E4))
	assert.False(t, b.IsSet(square.E5))

	b = b.Clear(square.E4)
	assert.False(t, b.IsSet(square.E4))
	assert.Equal(t, bitboard.Empty, b)
}

func TestClearAbsentIsNoop(t *testing.T) {
	b := bitboard.Squares[square.A1]
	assert.Equal(t, b, b.Clear(square.H8))
}

func TestPop(t *testing.T) {
	b := bitboard.Squares[square.D4] | bitboard.Squares[square.A1]
	first := b.Pop()
	assert.Equal(t, square.D4, first)
	assert.Equal(t, bitboard.Squares[square.A1], b)

	second := b.Pop()
	assert.Equal(t, square.A1, second)
	assert.Equal(t, bitboard.Empty, b)
}

func TestLSBOfEmptyIsNone(t *testing.T) {
	assert.Equal(t, square.None, bitboard.Empty.LSB())
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, bitboard.Empty.Count())
	assert.Equal(t, 64, bitboard.Universe.Count())
	assert.Equal(t, 2, (bitboard.Squares[square.A1] | bitboard.Squares[square.H8]).Count())
}

func TestDirectionsStayOnBoard(t *testing.T) {
	assert.Equal(t, bitboard.Empty, bitboard.Squares[square.A1].West())
	assert.Equal(t, bitboard.Empty, bitboard.Squares[square.H1].East())
	assert.Equal(t, bitboard.Empty, bitboard.Squares[square.A8].North())
	assert.Equal(t, bitboard.Empty, bitboard.Squares[square.A1].South())
}

func TestUpDownAreSideRelative(t *testing.T) {
	assert.Equal(t, bitboard.Squares[square.E4].North(), bitboard.Squares[square.E4].Up(piece.White))
	assert.Equal(t, bitboard.Squares[square.E4].South(), bitboard.Squares[square.E4].Down(piece.White))
}

func TestStringHasSixtyFourCells(t *testing.T) {
	s := bitboard.Universe.String()
	var ones int
	for _, r := range s {
		if r == '1' {
			ones++
		}
	}
	assert.Equal(t, 64, ones)
}
