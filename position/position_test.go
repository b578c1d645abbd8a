package position_test

import (
	"testing"

	"github.com/kestrelchess/core/bitboard"
	"github.com/kestrelchess/core/castling"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/position"
	"github.com/kestrelchess/core/square"
	"github.com/stretchr/testify/assert"
)

func minimalKings() [piece.N]bitboard.Board {
	var bbs [piece.N]bitboard.Board
	bbs[piece.WhiteKing] = bitboard.Squares[square.E1]
	bbs[piece.BlackKing] = bitboard.Squares[square.E8]
	return bbs
}

func TestNewPopulatesMailboxAndKings(t *testing.T) {
	bbs := minimalKings()
	bbs[piece.WhiteRook] = bitboard.Squares[square.A1]

	pos := position.New(bbs, piece.White, castling.All, square.None, 0, 1)

	assert.Equal(t, piece.WhiteKing, pos.Mailbox[square.E1])
	assert.Equal(t, piece.WhiteRook, pos.Mailbox[square.A1])
	assert.Equal(t, piece.NoPiece, pos.Mailbox[square.D4])
	assert.Equal(t, square.E1, pos.Kings[piece.White])
	assert.Equal(t, square.E8, pos.Kings[piece.Black])
}

func TestNewPanicsOnOverlappingPieces(t *testing.T) {
	bbs := minimalKings()
	bbs[piece.WhiteRook] = bitboard.Squares[square.A1]
	bbs[piece.WhiteQueen] = bitboard.Squares[square.A1]

	assert.Panics(t, func() {
		position.New(bbs, piece.White, castling.All, square.None, 0, 1)
	})
}

func TestNewPanicsWithoutBothKings(t *testing.T) {
	var bbs [piece.N]bitboard.Board
	bbs[piece.WhiteKing] = bitboard.Squares[square.E1]

	assert.Panics(t, func() {
		position.New(bbs, piece.White, castling.All, square.None, 0, 1)
	})
}

func TestNewPanicsOnBackRankPawn(t *testing.T) {
	bbs := minimalKings()
	bbs[piece.WhitePawn] = bitboard.Squares[square.A8]

	assert.Panics(t, func() {
		position.New(bbs, piece.White, castling.All, square.None, 0, 1)
	})
}

func TestOccupiedUnionsAllPieces(t *testing.T) {
	bbs := minimalKings()
	pos := position.New(bbs, piece.White, castling.None, square.None, 0, 1)
	assert.Equal(t, bitboard.Squares[square.E1]|bitboard.Squares[square.E8], pos.Occupied())
}

func TestClearAndFillSquare(t *testing.T) {
	bbs := minimalKings()
	pos := position.New(bbs, piece.White, castling.None, square.None, 0, 1)

	pos.FillSquare(square.D4, piece.WhiteKnight)
	assert.Equal(t, piece.WhiteKnight, pos.Mailbox[square.D4])
	assert.True(t, pos.Pieces(piece.Knight, piece.White).IsSet(square.D4))

	pos.ClearSquare(square.D4)
	assert.Equal(t, piece.NoPiece, pos.Mailbox[square.D4])
	assert.Equal(t, bitboard.Empty, pos.Pieces(piece.Knight, piece.White))
}
