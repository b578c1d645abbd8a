// Package move declares the 16-bit packed Move value used throughout the
// move generator (spec §6).
package move

import "github.com/kestrelchess/core/square"

// Move is a packed chess move.
//
// Format: MSB -> LSB
// [15 kind Kind 14][13 promo Promotion 12][11 target square.Square 6][05 origin square.Square 00]
type Move uint16

// Null is the zero move, "do nothing". It decodes as a Normal move from
// A8 to A8 and is never produced by Generate.
const Null Move = 0

const (
	originWidth = 6
	targetWidth = 6
	promoWidth  = 2
	kindWidth   = 2

	originOffset = 0
	targetOffset = originOffset + originWidth
	promoOffset  = targetOffset + targetWidth
	kindOffset   = promoOffset + promoWidth

	originMask = (1 << originWidth) - 1
	targetMask = (1 << targetWidth) - 1
	promoMask  = (1 << promoWidth) - 1
	kindMask   = (1 << kindWidth) - 1
)

// Kind distinguishes the four move shapes spec §6 defines.
type Kind uint8

const (
	Normal Kind = iota
	Castle
	EnPassant
	Promotion
)

// Promo identifies the piece type a pawn promotes to. It is only
// meaningful when Kind is Promotion.
type Promo uint8

const (
	Knight Promo = iota
	Bishop
	Rook
	Queen
)

// String converts a Promo to its lowercase algebraic letter.
func (p Promo) String() string {
	return string("nbrq"[p&promoMask])
}

// New packs a Normal move from origin to target.
func New(origin, target square.Square) Move {
	return encode(origin, target, Normal, 0)
}

// NewCastle packs a castling move; target is the king's destination
// square (spec §4.6 uses this to look up the rook relocation).
func NewCastle(origin, target square.Square) Move {
	return encode(origin, target, Castle, 0)
}

// NewEnPassant packs an en passant capture; target is the destination
// square of the capturing pawn, not the captured pawn's square.
func NewEnPassant(origin, target square.Square) Move {
	return encode(origin, target, EnPassant, 0)
}

// NewPromotion packs a pawn promotion to the given piece type.
func NewPromotion(origin, target square.Square, p Promo) Move {
	return encode(origin, target, Promotion, p)
}

func encode(origin, target square.Square, k Kind, p Promo) Move {
	m := Move(origin) << originOffset
	m |= Move(target) << targetOffset
	m |= Move(p) << promoOffset
	m |= Move(k) << kindOffset
	return m
}

// Origin returns the move's source square.
func (m Move) Origin() square.Square {
	return square.Square((m >> originOffset) & originMask)
}

// Target returns the move's destination square.
func (m Move) Target() square.Square {
	return square.Square((m >> targetOffset) & targetMask)
}

// Promotion returns the move's promotion piece type. It is only
// meaningful when Kind is Promotion.
func (m Move) Promotion() Promo {
	return Promo((m >> promoOffset) & promoMask)
}

// Kind returns the move's shape.
func (m Move) Kind() Kind {
	return Kind((m >> kindOffset) & kindMask)
}

// String converts a move to its long algebraic notation, e.g. "e2e4",
// "e1g1" (castle), "d7d8q" (promotion), "0000" (null).
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	s := m.Origin().String() + m.Target().String()
	if m.Kind() == Promotion {
		s += m.Promotion().String()
	}
	return s
}
