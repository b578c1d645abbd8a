package attack

import (
	"github.com/kestrelchess/core/bitboard"
	"github.com/kestrelchess/core/square"
)

// Between[s1][s2] is the set of squares strictly between s1 and s2 along
// a shared rank, file, diagonal, or anti-diagonal, exclusive of both
// endpoints. It is Empty if s1 and s2 don't share a line, including when
// s1 == s2. movegen uses this to build the check mask (the squares that
// block a single checking slider) and the pin masks.
var Between [square.N][square.N]bitboard.Board

func init() {
	for s1 := square.Square(0); s1 < square.N; s1++ {
		for s2 := square.Square(0); s2 < square.N; s2++ {
			var line bitboard.Board

			switch {
			case s1.File() == s2.File():
				line = bitboard.Files[s1.File()]
			case s1.Rank() == s2.Rank():
				line = bitboard.Ranks[s1.Rank()]
			case s1.Diagonal() == s2.Diagonal():
				line = bitboard.Diagonals[s1.Diagonal()]
			case s1.AntiDiagonal() == s2.AntiDiagonal():
				line = bitboard.AntiDiagonals[s1.AntiDiagonal()]
			default:
				continue
			}

			occ := bitboard.Squares[s1] | bitboard.Squares[s2]
			Between[s1][s2] = bitboard.Hyperbola(s1, occ, line) & bitboard.Hyperbola(s2, occ, line)
		}
	}
}
