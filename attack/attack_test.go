package attack_test

import (
	"testing"

	"github.com/kestrelchess/core/attack"
	"github.com/kestrelchess/core/bitboard"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
	"github.com/stretchr/testify/assert"
)

func TestRookOpenBoard(t *testing.T) {
	attacks := attack.Rook(square.D4, bitboard.Empty)
	assert.True(t, attacks.IsSet(square.D1))
	assert.True(t, attacks.IsSet(square.D8))
	assert.True(t, attacks.IsSet(square.A4))
	assert.True(t, attacks.IsSet(square.H4))
	assert.False(t, attacks.IsSet(square.E5))
}

func TestRookStopsAtBlocker(t *testing.T) {
	occ := bitboard.Squares[square.D6]
	attacks := attack.Rook(square.D4, occ)
	assert.True(t, attacks.IsSet(square.D5))
	assert.True(t, attacks.IsSet(square.D6))
	assert.False(t, attacks.IsSet(square.D7))
}

func TestBishopOpenBoard(t *testing.T) {
	attacks := attack.Bishop(square.D4, bitboard.Empty)
	assert.True(t, attacks.IsSet(square.A1))
	assert.True(t, attacks.IsSet(square.G7))
	assert.False(t, attacks.IsSet(square.D5))
}

func TestQueenIsUnionOfRookAndBishop(t *testing.T) {
	occ := bitboard.Squares[square.D6] | bitboard.Squares[square.F4]
	expected := attack.Rook(square.D4, occ) | attack.Bishop(square.D4, occ)
	assert.Equal(t, expected, attack.Queen(square.D4, occ))
}

func TestKnightCornerHasTwoTargets(t *testing.T) {
	assert.Equal(t, 2, attack.Knight[square.A1].Count())
}

func TestPawnAttacksAreDiagonalOnly(t *testing.T) {
	white := attack.Pawn[piece.White][square.E4]
	assert.True(t, white.IsSet(square.D5))
	assert.True(t, white.IsSet(square.F5))
	assert.False(t, white.IsSet(square.E5))
}

func TestBetweenIsEmptyWithoutSharedLine(t *testing.T) {
	assert.Equal(t, bitboard.Empty, attack.Between[square.A1][square.B3])
}

func TestBetweenExcludesEndpoints(t *testing.T) {
	between := attack.Between[square.A1][square.A8]
	assert.False(t, between.IsSet(square.A1))
	assert.False(t, between.IsSet(square.A8))
	assert.True(t, between.IsSet(square.A4))
	assert.Equal(t, 6, between.Count())
}

func TestMagicTableMatchesExhaustiveRayWalk(t *testing.T) {
	occupancies := []bitboard.Board{
		bitboard.Empty,
		bitboard.Squares[square.D1] | bitboard.Squares[square.D7] | bitboard.Squares[square.A4] | bitboard.Squares[square.G4],
		bitboard.Universe,
	}

	for sq := square.Square(0); sq < square.N; sq++ {
		for _, occ := range occupancies {
			assert.Equal(t, naiveRook(sq, occ), attack.Rook(sq, occ), "rook mismatch at %s", sq)
			assert.Equal(t, naiveBishop(sq, occ), attack.Bishop(sq, occ), "bishop mismatch at %s", sq)
		}
	}
}

// naiveRook and naiveBishop walk each ray one square at a time, the
// textbook algorithm the magic tables are a faster substitute for.

func naiveRook(s square.Square, occ bitboard.Board) bitboard.Board {
	return walk(s, occ, 1, 0) | walk(s, occ, -1, 0) | walk(s, occ, 0, 1) | walk(s, occ, 0, -1)
}

func naiveBishop(s square.Square, occ bitboard.Board) bitboard.Board {
	return walk(s, occ, 1, 1) | walk(s, occ, 1, -1) | walk(s, occ, -1, 1) | walk(s, occ, -1, -1)
}

func walk(s square.Square, occ bitboard.Board, dFile, dRank int) bitboard.Board {
	var attacks bitboard.Board
	file, rank := int(s.File()), int(s.Rank())

	for {
		file += dFile
		rank += dRank
		if file < 0 || file > 7 || rank < 0 || rank > 7 {
			break
		}
		to := square.New(square.File(file), square.Rank(rank))
		attacks = attacks.Set(to)
		if occ.IsSet(to) {
			break
		}
	}
	return attacks
}
