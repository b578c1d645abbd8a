// Package piece implements the Side, PieceType, and ChessPiece values
// used throughout the move generator.
package piece

// Side represents one of the two players.
type Side uint8

// the two sides.
const (
	White Side = iota
	Black
)

// SideN is the number of sides.
const SideN = 2

// Other returns the opposing side, the involution spec §3 calls for.
func (s Side) Other() Side {
	return s ^ 1
}

// String converts a Side to "w" or "b".
func (s Side) String() string {
	if s == White {
		return "w"
	}
	return "b"
}

// SideFromString parses "w" or "b".
func SideFromString(id string) Side {
	switch id {
	case "w":
		return White
	case "b":
		return Black
	default:
		panic("piece: bad side " + id)
	}
}

// Type represents the kind of a chess piece, independent of side. The
// ordering matches the stable ChessPiece index spec §3 assigns:
// K=0, Q=1, N=2, B=3, R=4, P=5.
type Type int8

const (
	King Type = iota
	Queen
	Knight
	Bishop
	Rook
	Pawn
)

// TypeN is the number of piece types.
const TypeN = 6

func (t Type) String() string {
	const toStr = "kqnbrp"
	return string(toStr[t])
}

// Piece is a colored chess piece, addressed by the stable 0..11 index
// spec §3 defines: white K, Q, N, B, R, P occupy 0..5, black the same
// order at 6..11.
type Piece int8

// NoPiece marks an empty mailbox square; it falls outside the 0..11
// range so it can never alias a real (side, type) pair.
const NoPiece Piece = -1

// the twelve colored pieces, in spec's stable index order.
const (
	WhiteKing Piece = iota
	WhiteQueen
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhitePawn

	BlackKing
	BlackQueen
	BlackKnight
	BlackBishop
	BlackRook
	BlackPawn
)

// N is the number of colored pieces.
const N = 12

// New packs a type and side into their stable Piece index.
func New(t Type, s Side) Piece {
	return Piece(s)*Piece(TypeN) + Piece(t)
}

// NewFromString parses a single FEN piece letter.
func NewFromString(id string) Piece {
	switch id {
	case "K":
		return WhiteKing
	case "Q":
		return WhiteQueen
	case "R":
		return WhiteRook
	case "N":
		return WhiteKnight
	case "B":
		return WhiteBishop
	case "P":
		return WhitePawn
	case "k":
		return BlackKing
	case "q":
		return BlackQueen
	case "r":
		return BlackRook
	case "n":
		return BlackKnight
	case "b":
		return BlackBishop
	case "p":
		return BlackPawn
	default:
		panic("piece: invalid piece id " + id)
	}
}

// Type returns the piece's type.
func (p Piece) Type() Type {
	return Type(p % Piece(TypeN))
}

// Side returns the piece's side.
func (p Piece) Side() Side {
	return Side(p / Piece(TypeN))
}

// String converts a Piece to its FEN letter, uppercase for white, "-"
// for NoPiece.
func (p Piece) String() string {
	if p == NoPiece {
		return "-"
	}
	s := p.Type().String()
	if p.Side() == White {
		return string(s[0] - 'a' + 'A')
	}
	return s
}
