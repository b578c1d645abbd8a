// Package movegen implements the attack/pin/check analyzer (spec §4.5)
// and the legal move generator (spec §4.6) built on top of it.
package movegen

import (
	"github.com/kestrelchess/core/attack"
	"github.com/kestrelchess/core/bitboard"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/position"
	"github.com/kestrelchess/core/square"
)

// SquareAttackedBy reports whether side `by` attacks square s in pos. It
// uses the reverse-attack trick: a hypothetical piece of each type
// placed on s attacks the same squares a real piece of that type on s
// would, so s is attacked iff that hypothetical attack set intersects an
// enemy piece of the matching type.
func SquareAttackedBy(pos *position.Position, s square.Square, by piece.Side) bool {
	return SquareAttackedWithRemoved(pos, s, by, square.None)
}

// SquareAttackedWithRemoved is SquareAttackedBy, but treats the square
// `removed` as vacated first. King moves need this: a slider checking
// the king must still bar it from stepping further along the same ray,
// which requires recomputing the slider's attack set without the king
// occupying its current square.
func SquareAttackedWithRemoved(pos *position.Position, s square.Square, by piece.Side, removed square.Square) bool {
	occ := pos.Occupied()
	if removed != square.None {
		occ = occ.Clear(removed)
	}

	if attack.Pawn[by.Other()][s]&pos.Pieces(piece.Pawn, by) != bitboard.Empty {
		return true
	}
	if attack.Knight[s]&pos.Pieces(piece.Knight, by) != bitboard.Empty {
		return true
	}
	if attack.King[s]&pos.Pieces(piece.King, by) != bitboard.Empty {
		return true
	}

	queens := pos.Pieces(piece.Queen, by)
	if attack.Bishop(s, occ)&(pos.Pieces(piece.Bishop, by)|queens) != bitboard.Empty {
		return true
	}
	return attack.Rook(s, occ)&(pos.Pieces(piece.Rook, by)|queens) != bitboard.Empty
}

// Checkers returns the set of enemy pieces currently giving check to
// pos.SideToMove's king, found with the same reverse-attack trick.
func Checkers(pos *position.Position) bitboard.Board {
	us := pos.SideToMove
	them := us.Other()
	s := pos.Kings[us]
	occ := pos.Occupied()

	checkers := attack.Pawn[us][s] & pos.Pieces(piece.Pawn, them)
	checkers |= attack.Knight[s] & pos.Pieces(piece.Knight, them)

	queens := pos.Pieces(piece.Queen, them)
	checkers |= attack.Bishop(s, occ) & (pos.Pieces(piece.Bishop, them) | queens)
	checkers |= attack.Rook(s, occ) & (pos.Pieces(piece.Rook, them) | queens)

	return checkers
}

// state bundles the utility bitboards the generator needs. It is
// recomputed for every call to Generate and is never exposed; it is not
// part of the Position data model, only scratch space for generation.
type state struct {
	us, them piece.Side

	friends, enemies, occupied bitboard.Board

	target     bitboard.Board // squares a non-king piece may move to
	kingTarget bitboard.Board // squares the king may move to

	checkN    int
	checkMask bitboard.Board // Universe if not in check, see calculateCheckMask

	pinnedD  bitboard.Board
	pinnedHV bitboard.Board

	seenByEnemy bitboard.Board
}

func newState(pos *position.Position) *state {
	s := &state{
		us:   pos.SideToMove,
		them: pos.SideToMove.Other(),
	}

	s.friends = pos.Side(s.us)
	s.enemies = pos.Side(s.them)
	s.occupied = s.friends | s.enemies

	s.calculateCheckMask(pos)
	s.calculatePinMasks(pos)
	s.seenByEnemy = s.seenSquares(pos, s.them)

	s.target = ^s.friends & s.checkMask
	s.kingTarget = ^s.friends &^ s.seenByEnemy

	return s
}

// calculateCheckMask computes the number of checkers and the check-mask
// (spec §4.5): the set of squares a non-king piece may move to in order
// to resolve a single check. It is Universe when the side to move is
// not in check, and meaningless (never consulted) in double check.
func (s *state) calculateCheckMask(pos *position.Position) {
	kingSq := pos.Kings[s.us]
	occ := pos.Side(s.us) | pos.Side(s.them)

	pawns := pos.Pieces(piece.Pawn, s.them) & attack.Pawn[s.us][kingSq]
	knights := pos.Pieces(piece.Knight, s.them) & attack.Knight[kingSq]
	queens := pos.Pieces(piece.Queen, s.them)
	bishops := (pos.Pieces(piece.Bishop, s.them) | queens) & attack.Bishop(kingSq, occ)
	rooks := (pos.Pieces(piece.Rook, s.them) | queens) & attack.Rook(kingSq, occ)

	s.checkN = 0
	s.checkMask = bitboard.Empty

	// a pawn and a knight can never check simultaneously: neither is a
	// slider, so there is no discovered attack pairing them.
	switch {
	case pawns != bitboard.Empty:
		s.checkMask |= pawns
		s.checkN++
	case knights != bitboard.Empty:
		s.checkMask |= knights
		s.checkN++
	}

	if bishops != bitboard.Empty {
		bishopSq := bishops.LSB()
		s.checkMask |= attack.Between[kingSq][bishopSq] | bitboard.Squares[bishopSq]
		s.checkN++
	}

	if s.checkN < 2 && rooks != bitboard.Empty {
		if s.checkN == 0 && rooks.Count() > 1 {
			// two rook-type checkers with no prior checker: double check,
			// the check-mask itself is never consulted.
			s.checkN++
		} else {
			rookSq := rooks.LSB()
			s.checkMask |= attack.Between[kingSq][rookSq] | bitboard.Squares[rookSq]
			s.checkN++
		}
	}

	if s.checkN == 0 {
		s.checkMask = bitboard.Universe
	}
}

// calculatePinMasks computes the horizontal/vertical and diagonal
// pin-masks (spec §4.5's pin-data, aggregated across every pinned
// piece at once rather than queried square by square, since the
// generator needs the full picture up front).
func (s *state) calculatePinMasks(pos *position.Position) {
	kingSq := pos.Kings[s.us]
	friends := pos.Side(s.us)
	enemies := pos.Side(s.them)
	queens := pos.Pieces(piece.Queen, s.them)

	s.pinnedD = bitboard.Empty
	s.pinnedHV = bitboard.Empty

	// treat the king as a rook/bishop of its own; any enemy rook/queen or
	// bishop/queen its resulting ray reaches is a potential pinner, with
	// only enemy pieces (not friendly ones) as blockers.
	for rooks := (pos.Pieces(piece.Rook, s.them) | queens) & attack.Rook(kingSq, enemies); rooks != bitboard.Empty; {
		r := rooks.Pop()
		ray := attack.Between[kingSq][r] | bitboard.Squares[r]
		if (ray & friends).Count() == 1 {
			s.pinnedHV |= ray
		}
	}

	for bishops := (pos.Pieces(piece.Bishop, s.them) | queens) & attack.Bishop(kingSq, enemies); bishops != bitboard.Empty; {
		b := bishops.Pop()
		ray := attack.Between[kingSq][b] | bitboard.Squares[b]
		if (ray & friends).Count() == 1 {
			s.pinnedD |= ray
		}
	}
}

// seenSquares returns every square attacked by side `by`. The king of
// the opposing side is excluded from the blocker set: it must move away
// from a checking ray, so the squares beyond it are seen too.
func (s *state) seenSquares(pos *position.Position, by piece.Side) bitboard.Board {
	opponent := by.Other()
	blockers := s.occupied &^ pos.Pieces(piece.King, opponent)

	pawns := pos.Pieces(piece.Pawn, by)
	up := bitboard.Empty
	if by == piece.White {
		up = pawns.North()
	} else {
		up = pawns.South()
	}
	seen := up.East() | up.West()

	for knights := pos.Pieces(piece.Knight, by); knights != bitboard.Empty; {
		seen |= attack.Knight[knights.Pop()]
	}
	for bishops := pos.Pieces(piece.Bishop, by); bishops != bitboard.Empty; {
		seen |= attack.Bishop(bishops.Pop(), blockers)
	}
	for rooks := pos.Pieces(piece.Rook, by); rooks != bitboard.Empty; {
		seen |= attack.Rook(rooks.Pop(), blockers)
	}
	for queens := pos.Pieces(piece.Queen, by); queens != bitboard.Empty; {
		seen |= attack.Queen(queens.Pop(), blockers)
	}

	seen |= attack.King[pos.Kings[by]]
	return seen
}
