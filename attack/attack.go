// Package attack implements spec C3, C4, and C5: precomputed attack
// tables for the leaper pieces, magic-bitboard-backed attack lookup for
// the sliders, and the between-squares ray table used to build check and
// pin masks.
package attack

import (
	"github.com/kestrelchess/core/bitboard"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
)

// Of returns the attack set of the given piece standing on s, given the
// full board occupancy. occ is ignored for the leaper pieces (pawn,
// knight, king), whose attack sets don't depend on blockers.
func Of(p piece.Piece, s square.Square, occ bitboard.Board) bitboard.Board {
	switch p.Type() {
	case piece.Pawn:
		return Pawn[p.Side()][s]
	case piece.Knight:
		return Knight[s]
	case piece.Bishop:
		return Bishop(s, occ)
	case piece.Rook:
		return Rook(s, occ)
	case piece.Queen:
		return Queen(s, occ)
	case piece.King:
		return King[s]
	default:
		panic("attack.Of: unknown piece type")
	}
}
