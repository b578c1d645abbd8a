// Package castling implements the castling-rights bitmask and the rook
// relocation tables used to apply a castling move (spec §4.6).
package castling

import (
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
)

// Rights is a 4-bit mask of the castling rights still available to both
// sides.
type Rights uint8

// the four individual rights and their unions.
const (
	WhiteKingside  Rights = 1 << 0
	WhiteQueenside Rights = 1 << 1
	BlackKingside  Rights = 1 << 2
	BlackQueenside Rights = 1 << 3

	None Rights = 0

	White Rights = WhiteKingside | WhiteQueenside
	Black Rights = BlackKingside | BlackQueenside

	Kingside  Rights = WhiteKingside | BlackKingside
	Queenside Rights = WhiteQueenside | BlackQueenside

	All Rights = White | Black

	// N is the number of distinct values Rights can take.
	N = 16
)

// NewRights parses a FEN castling-rights field, e.g. "KQkq" or "-".
func NewRights(s string) Rights {
	if s == "-" {
		return None
	}

	var r Rights
	for _, c := range s {
		switch c {
		case 'K':
			r |= WhiteKingside
		case 'Q':
			r |= WhiteQueenside
		case 'k':
			r |= BlackKingside
		case 'q':
			r |= BlackQueenside
		}
	}
	return r
}

// String renders r in FEN castling-field order, "-" if none remain.
func (r Rights) String() string {
	var str string

	if r&WhiteKingside != 0 {
		str += "K"
	}
	if r&WhiteQueenside != 0 {
		str += "Q"
	}
	if r&BlackKingside != 0 {
		str += "k"
	}
	if r&BlackQueenside != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}
	return str
}

// RightUpdates[s] is the set of rights to revoke because a move touched
// square s, either as its origin or target: a king or rook leaving its
// home square, or a rook being captured on its home square, each
// permanently forfeit the associated right. Squares that never carry
// meaning for castling hold None.
var RightUpdates [square.N]Rights

func init() {
	RightUpdates[square.E1] = White
	RightUpdates[square.A1] = WhiteQueenside
	RightUpdates[square.H1] = WhiteKingside
	RightUpdates[square.E8] = Black
	RightUpdates[square.A8] = BlackQueenside
	RightUpdates[square.H8] = BlackKingside
}

// RookMove describes the rook relocation that accompanies a king's
// castling move.
type RookMove struct {
	From, To square.Square
	Piece    piece.Piece
}

// Rooks is indexed by the king's target square and gives the matching
// rook relocation. Squares that are never a castling target hold the
// zero RookMove.
var Rooks = [square.N]RookMove{
	square.G1: {From: square.H1, To: square.F1, Piece: piece.WhiteRook},
	square.C1: {From: square.A1, To: square.D1, Piece: piece.WhiteRook},
	square.G8: {From: square.H8, To: square.F8, Piece: piece.BlackRook},
	square.C8: {From: square.A8, To: square.D8, Piece: piece.BlackRook},
}
