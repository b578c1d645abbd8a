package attack

import (
	"github.com/kestrelchess/core/bitboard"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
)

// Pawn[side][s] is the set of squares a pawn of the given side standing
// on s attacks (diagonal captures only, not the push square).
var Pawn [piece.SideN][square.N]bitboard.Board

// Knight[s] is the set of squares a knight on s attacks.
var Knight [square.N]bitboard.Board

// King[s] is the set of squares a king on s attacks.
var King [square.N]bitboard.Board

func init() {
	for s := square.Square(0); s < square.N; s++ {
		Pawn[piece.White][s] = pawnAttacksFrom(s, piece.White)
		Pawn[piece.Black][s] = pawnAttacksFrom(s, piece.Black)
		Knight[s] = knightAttacksFrom(s)
		King[s] = kingAttacksFrom(s)
	}
}

func pawnAttacksFrom(s square.Square, side piece.Side) bitboard.Board {
	up := bitboard.Squares[s].Up(side)
	return up.East() | up.West()
}

// knightAttacksFrom generates an attack bitboard containing every square
// a knight can move to from the given square.
func knightAttacksFrom(from square.Square) bitboard.Board {
	knight := bitboard.Squares[from]

	north := knight.North().North()
	south := knight.South().South()
	east := knight.East().East()
	west := knight.West().West()

	attacks := north.East() | north.West()
	attacks |= south.East() | south.West()
	attacks |= east.North() | east.South()
	attacks |= west.North() | west.South()

	return attacks
}

// kingAttacksFrom generates an attack bitboard containing every square a
// king can move to from the given square.
func kingAttacksFrom(from square.Square) bitboard.Board {
	king := bitboard.Squares[from]

	north := king.North()
	south := king.South()
	east := king.East()
	west := king.West()

	attacks := north | south | east | west
	attacks |= north.East() | north.West()
	attacks |= south.East() | south.West()

	return attacks
}
