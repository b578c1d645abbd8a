package bitboard

import "github.com/kestrelchess/core/square"

// file bitboards.
const (
	FileA Board = 0x0101010101010101
	FileB Board = 0x0202020202020202
	FileC Board = 0x0404040404040404
	FileD Board = 0x0808080808080808
	FileE Board = 0x1010101010101010
	FileF Board = 0x2020202020202020
	FileG Board = 0x4040404040404040
	FileH Board = 0x8080808080808080
)

// Files indexes the file bitboards by square.File.
var Files = [square.FileN]Board{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// rank bitboards, rank 8 first to match the square numbering.
const (
	Rank8 Board = 0x00000000000000ff
	Rank7 Board = 0x000000000000ff00
	Rank6 Board = 0x0000000000ff0000
	Rank5 Board = 0x00000000ff000000
	Rank4 Board = 0x000000ff00000000
	Rank3 Board = 0x0000ff0000000000
	Rank2 Board = 0x00ff000000000000
	Rank1 Board = 0xff00000000000000
)

// Ranks indexes the rank bitboards by square.Rank.
var Ranks = [square.RankN]Board{Rank8, Rank7, Rank6, Rank5, Rank4, Rank3, Rank2, Rank1}

// Diagonals and AntiDiagonals index every NE-SW diagonal and NW-SE
// anti-diagonal by square.Square.Diagonal / AntiDiagonal. They are
// derived once at init time by accumulating every square that reports
// the same diagonal index, rather than hand-transcribed as in the
// teacher, since the accumulation is both shorter and harder to
// transcribe incorrectly.
var Diagonals [square.DiagonalN]Board
var AntiDiagonals [square.AntiDiagonalN]Board

// castling masks. F1G1, C1D1, F8G8 and C8D8 are the squares the king
// passes over or lands on, tested for attacks (and, kingside, for
// occupancy) by the castling legality check (spec §4.6); B1C1D1 and
// B8C8D8 are the queenside squares between king and rook, tested only
// for occupancy.
// Square indices: A1..H1 = 56..63, A8..H8 = 0..7.
const (
	F1G1   Board = 1<<61 | 1<<62
	C1D1   Board = 1<<58 | 1<<59
	B1C1D1 Board = 1<<57 | 1<<58 | 1<<59
	F8G8   Board = 1<<5 | 1<<6
	C8D8   Board = 1<<2 | 1<<3
	B8C8D8 Board = 1<<1 | 1<<2 | 1<<3
)

func init() {
	for s := square.Square(0); s < square.N; s++ {
		Diagonals[s.Diagonal()] |= Squares[s]
		AntiDiagonals[s.AntiDiagonal()] |= Squares[s]
	}
}
