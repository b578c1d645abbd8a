// Package bitboard implements the 64-bit set-of-squares primitive (spec
// C2) and the geometry constants derived from it (spec C1).
package bitboard

import (
	"math/bits"

	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
)

// Board is a set of squares packed into a 64-bit mask: bit i is set iff
// square i is a member of the set.
type Board uint64

// Empty and Universe are the two degenerate bitboards.
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// Squares[s] is the singleton bitboard containing only s.
var Squares [square.N]Board

func init() {
	for s := square.Square(0); s < square.N; s++ {
		Squares[s] = 1 << uint(s)
	}
}

// String renders the board as an 8x8 grid of '1'/'0', rank 8 first.
func (b Board) String() string {
	buf := make([]byte, 0, 64+8)
	for s := square.A8; s <= square.H1; s++ {
		if b.IsSet(s) {
			buf = append(buf, '1')
		} else {
			buf = append(buf, '0')
		}
		if s.File() == square.FileH {
			buf = append(buf, '\n')
		} else {
			buf = append(buf, ' ')
		}
	}
	return string(buf)
}

// IsSet reports whether s is a member of b.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != Empty
}

// Set returns b with s added.
func (b Board) Set(s square.Square) Board {
	return b | Squares[s]
}

// Clear returns b with s removed. Clearing an absent square is a no-op,
// per spec's pop-bit contract.
func (b Board) Clear(s square.Square) Board {
	return b &^ Squares[s]
}

// Pop removes and returns the least-significant square of *b. The result
// is undefined if b is Empty; callers must guard the loop with b != Empty.
func (b *Board) Pop() square.Square {
	s := b.LSB()
	*b &= *b - 1
	return s
}

// LSB returns the least-significant set square of b, or square.None if b
// is Empty.
func (b Board) LSB() square.Square {
	if b == Empty {
		return square.None
	}
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// Count returns the number of set squares (popcount) in b.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// North shifts every square one rank towards rank 8 (up the board).
func (b Board) North() Board {
	return b >> 8
}

// South shifts every square one rank towards rank 1 (down the board).
func (b Board) South() Board {
	return b << 8
}

// East shifts every square one file towards file H, dropping wraps.
func (b Board) East() Board {
	return (b &^ FileH) << 1
}

// West shifts every square one file towards file A, dropping wraps.
func (b Board) West() Board {
	return (b &^ FileA) >> 1
}

// Up shifts b towards the far rank relative to the given side.
func (b Board) Up(s piece.Side) Board {
	if s == piece.White {
		return b.North()
	}
	return b.South()
}

// Down shifts b towards the near rank relative to the given side.
func (b Board) Down(s piece.Side) Board {
	if s == piece.White {
		return b.South()
	}
	return b.North()
}
