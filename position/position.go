// Package position implements the Position data model (spec §3): the
// set of piece bitboards and parallel mailbox that make up a single
// chess position, together with the invariants every externally-visible
// Position must satisfy.
package position

import (
	"fmt"

	"github.com/kestrelchess/core/bitboard"
	"github.com/kestrelchess/core/castling"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
)

// Position represents the state of a chessboard at a given point in a
// game. It carries no move history and no transposition hash; both are
// external concerns (spec §1 Non-goals).
type Position struct {
	PieceBBs [piece.N]bitboard.Board
	Mailbox  [square.N]piece.Piece

	Kings [piece.SideN]square.Square

	SideToMove      piece.Side
	CastlingRights  castling.Rights
	EnPassantTarget square.Square // square.None if unavailable

	// Checkers is the set of enemy pieces currently giving check to
	// SideToMove's king. New leaves it empty; movegen.Checkers computes
	// it, since doing so requires the attack tables and would otherwise
	// make this package depend on them.
	Checkers bitboard.Board

	HalfMoveClock int
	FullMoves     int
}

// New builds a Position from raw field values and validates it against
// spec §3's invariants, panicking (spec §7) on the first one violated.
// It recomputes the mailbox and king squares from the piece bitboards
// rather than trusting redundant caller-supplied copies. The Checkers
// field is left empty.
func New(
	pieceBBs [piece.N]bitboard.Board,
	sideToMove piece.Side,
	castlingRights castling.Rights,
	enPassantTarget square.Square,
	halfMoveClock, fullMoves int,
) Position {
	var pos Position
	pos.PieceBBs = pieceBBs
	pos.SideToMove = sideToMove
	pos.CastlingRights = castlingRights
	pos.EnPassantTarget = enPassantTarget
	pos.HalfMoveClock = halfMoveClock
	pos.FullMoves = fullMoves

	for s := range pos.Mailbox {
		pos.Mailbox[s] = piece.NoPiece
	}

	var seen bitboard.Board
	for p := piece.Piece(0); p < piece.N; p++ {
		bb := pieceBBs[p]
		if bb&seen != bitboard.Empty {
			panic(fmt.Sprintf("position: two pieces on %s", (bb & seen).LSB()))
		}
		seen |= bb

		for remaining := bb; remaining != bitboard.Empty; {
			s := remaining.Pop()
			pos.Mailbox[s] = p
			if p.Type() == piece.King {
				pos.Kings[p.Side()] = s
			}
		}
	}

	if pieceBBs[piece.WhiteKing].Count() != 1 {
		panic("position: missing or duplicate white king")
	}
	if pieceBBs[piece.BlackKing].Count() != 1 {
		panic("position: missing or duplicate black king")
	}

	pawns := pieceBBs[piece.WhitePawn] | pieceBBs[piece.BlackPawn]
	if pawns&(bitboard.Rank1|bitboard.Rank8) != bitboard.Empty {
		panic("position: pawn on back rank")
	}

	if enPassantTarget != square.None && pos.Mailbox[enPassantTarget] != piece.NoPiece {
		panic("position: en passant target is occupied")
	}

	return pos
}

// Occupied returns the set of every occupied square.
func (pos *Position) Occupied() bitboard.Board {
	var occ bitboard.Board
	for _, bb := range pos.PieceBBs {
		occ |= bb
	}
	return occ
}

// Side returns every square occupied by a piece of the given side.
func (pos *Position) Side(s piece.Side) bitboard.Board {
	var bb bitboard.Board
	for t := piece.Type(0); t < piece.TypeN; t++ {
		bb |= pos.PieceBBs[piece.New(t, s)]
	}
	return bb
}

// Pieces returns the bitboard of pieces of the given type and side.
func (pos *Position) Pieces(t piece.Type, s piece.Side) bitboard.Board {
	return pos.PieceBBs[piece.New(t, s)]
}

// ClearSquare removes whatever piece occupies s from every record. It is
// a no-op if s is already empty.
func (pos *Position) ClearSquare(s square.Square) {
	p := pos.Mailbox[s]
	if p == piece.NoPiece {
		return
	}
	pos.PieceBBs[p] = pos.PieceBBs[p].Clear(s)
	pos.Mailbox[s] = piece.NoPiece
}

// FillSquare places p on s, updating every record. s must be empty.
func (pos *Position) FillSquare(s square.Square, p piece.Piece) {
	pos.PieceBBs[p] = pos.PieceBBs[p].Set(s)
	pos.Mailbox[s] = p
	if p.Type() == piece.King {
		pos.Kings[p.Side()] = s
	}
}

// String renders the position as an 8x8 grid followed by its side to
// move and castling rights.
func (pos Position) String() string {
	s := "+---+---+---+---+---+---+---+---+\n"
	for rank := square.Rank(0); rank < square.RankN; rank++ {
		s += "| "
		for file := square.File(0); file < square.FileN; file++ {
			s += pos.Mailbox[square.New(file, rank)].String() + " | "
		}
		s += fmt.Sprintf("%d\n", 8-rank)
		s += "+---+---+---+---+---+---+---+---+\n"
	}
	s += "  a   b   c   d   e   f   g   h\n"
	s += fmt.Sprintf("side to move: %s, castling: %s, ep: %s\n",
		pos.SideToMove, pos.CastlingRights, pos.EnPassantTarget)
	return s
}
