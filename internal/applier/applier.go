// Package applier implements move application: the pure transformation
// of a Position by a Move. It exists to drive perft and the test suite;
// it is an external collaborator of the core (spec §6 item 5), not part
// of the generator itself, and keeps no history or undo stack.
package applier

import (
	"github.com/kestrelchess/core/attack"
	"github.com/kestrelchess/core/castling"
	"github.com/kestrelchess/core/move"
	"github.com/kestrelchess/core/movegen"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/position"
	"github.com/kestrelchess/core/square"
)

// Apply returns the position that results from playing m, assumed to be
// legal, in pos. It never mutates pos.
func Apply(pos position.Position, m move.Move) position.Position {
	next := pos

	us := pos.SideToMove
	them := us.Other()

	origin := m.Origin()
	target := m.Target()
	moving := pos.Mailbox[origin]

	next.EnPassantTarget = square.None

	switch m.Kind() {
	case move.Castle:
		rook := castling.Rooks[target]
		next.ClearSquare(rook.From)
		next.FillSquare(rook.To, rook.Piece)
		next.ClearSquare(origin)
		next.FillSquare(target, moving)

	case move.EnPassant:
		capturedSq := target - pawnDown(us)
		next.ClearSquare(capturedSq)
		next.ClearSquare(origin)
		next.FillSquare(target, moving)

	case move.Promotion:
		next.ClearSquare(target) // no-op unless capturing
		next.ClearSquare(origin)
		next.FillSquare(target, piece.New(promoType(m.Promotion()), us))

	default: // move.Normal
		if moving.Type() == piece.Pawn && target == origin+2*pawnDown(us) {
			epTarget := origin + pawnDown(us)
			if pos.Pieces(piece.Pawn, them)&attack.Pawn[us][epTarget] != 0 {
				next.EnPassantTarget = epTarget
			}
		}

		next.ClearSquare(target)
		next.ClearSquare(origin)
		next.FillSquare(target, moving)
	}

	next.CastlingRights &^= castling.RightUpdates[origin]
	next.CastlingRights &^= castling.RightUpdates[target]

	if moving.Type() == piece.Pawn || isCaptureOrEnPassant(pos, m) {
		next.HalfMoveClock = 0
	} else {
		next.HalfMoveClock++
	}

	next.SideToMove = them
	if them == piece.White {
		next.FullMoves++
	}

	next.Checkers = movegen.Checkers(&next)

	return next
}

func isCaptureOrEnPassant(pos position.Position, m move.Move) bool {
	if m.Kind() == move.EnPassant {
		return true
	}
	return pos.Mailbox[m.Target()] != piece.NoPiece
}

func pawnDown(s piece.Side) square.Square {
	if s == piece.White {
		return -8
	}
	return 8
}

func promoType(p move.Promo) piece.Type {
	switch p {
	case move.Queen:
		return piece.Queen
	case move.Rook:
		return piece.Rook
	case move.Bishop:
		return piece.Bishop
	default:
		return piece.Knight
	}
}
