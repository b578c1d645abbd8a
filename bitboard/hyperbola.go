package bitboard

import (
	"math/bits"

	"github.com/kestrelchess/core/square"
)

// Hyperbola computes a slider's attack set along the given mask (a file,
// rank, diagonal, or anti-diagonal) given the square it slides from and
// the full occupancy, using the o-2r trick (Hyperbola Quintessence).
// https://www.chessprogramming.org/Hyperbola_Quintessence
//
// This is the "naive attack set" spec §4.3's magic construction protocol
// calls for: an O(1) substitute for walking each ray square by square
// until a blocker or the board edge is hit.
func Hyperbola(s square.Square, occ, mask Board) Board {
	r := Squares[s]
	o := occ & mask
	return ((o - 2*r) ^ reverse(reverse(o)-2*reverse(r))) & mask
}

func reverse(b Board) Board {
	return Board(bits.Reverse64(uint64(b)))
}
