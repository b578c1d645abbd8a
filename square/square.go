// Package square declares constants representing every square on a
// chessboard, and related geometry used to classify pairs of squares as
// sharing a rank, file, diagonal, or anti-diagonal.
//
// Squares are numbered rank-major starting from rank 8, file A to file H,
// so A8 is 0 and H1 is 63. Any consistent numbering works as long as every
// precomputed table in this module is generated against it.
package square

// Square represents a single square on a chessboard.
type Square int8

// None represents the absence of a square, used for an empty en passant
// target or a missing king.
const None Square = -1

// constants representing every square on the board.
const (
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 56, 57, 58, 59, 60, 61, 62, 63
)

// N is the number of squares on a chessboard.
const N = 64

// New builds a Square from a file and a rank.
func New(file File, rank Rank) Square {
	return Square(int(rank)<<3 | int(file))
}

// String converts a square into its algebraic notation, e.g. "e4". The
// null square converts to "-".
func (s Square) String() string {
	if s == None {
		return "-"
	}
	return s.File().String() + s.Rank().String()
}

// NewFromString parses a square in algebraic notation, e.g. "e4" ->
// E4. "-" parses to None.
func NewFromString(id string) Square {
	if id == "-" {
		return None
	}
	return New(FileFrom(id), RankFrom(id[1:]))
}

// File returns the file the square lies on.
func (s Square) File() File {
	return File(s) & 7
}

// Rank returns the rank the square lies on.
func (s Square) Rank() Rank {
	return Rank(s) >> 3
}

// Diagonal returns the index of the a1-h8-style (NE-SW) diagonal the
// square lies on. Squares on the same diagonal share this value.
func (s Square) Diagonal() Diagonal {
	return 14 - Diagonal(s.Rank()) - Diagonal(s.File())
}

// AntiDiagonal returns the index of the h1-a8-style (NW-SE) diagonal the
// square lies on. Squares on the same anti-diagonal share this value.
func (s Square) AntiDiagonal() AntiDiagonal {
	return 7 - AntiDiagonal(s.Rank()) + AntiDiagonal(s.File())
}
