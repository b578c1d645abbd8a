package attack

import (
	"github.com/kestrelchess/core/attack/magic"
	"github.com/kestrelchess/core/bitboard"
	"github.com/kestrelchess/core/square"
)

// bishopMoves computes a bishop's attack set on s given occupancy occ. If
// mask is true, it instead returns the relevant-occupancy mask: the
// board edge never blocks a ray, so edge squares are never relevant.
func bishopMoves(s square.Square, occ bitboard.Board, mask bool) bitboard.Board {
	diagonal := bitboard.Hyperbola(s, occ, bitboard.Diagonals[s.Diagonal()])
	antiDiagonal := bitboard.Hyperbola(s, occ, bitboard.AntiDiagonals[s.AntiDiagonal()])

	attacks := diagonal | antiDiagonal
	if mask {
		attacks &^= bitboard.Rank1 | bitboard.Rank8 | bitboard.FileA | bitboard.FileH
	}
	return attacks
}

// rookMoves computes a rook's attack set on s given occupancy occ, with
// the same mask convention as bishopMoves.
func rookMoves(s square.Square, occ bitboard.Board, mask bool) bitboard.Board {
	file := bitboard.Hyperbola(s, occ, bitboard.Files[s.File()])
	rank := bitboard.Hyperbola(s, occ, bitboard.Ranks[s.Rank()])

	if mask {
		file &^= bitboard.Rank1 | bitboard.Rank8
		rank &^= bitboard.FileA | bitboard.FileH
	}
	return file | rank
}

// bishopTable and rookTable are built once at package init by exhaustive
// magic search (spec §4.3); 512 and 4096 are the largest per-square
// permutation counts among bishops and rooks respectively.
var bishopTable *magic.Table
var rookTable *magic.Table

func init() {
	bishopTable = magic.NewTable(512, bishopMoves)
	rookTable = magic.NewTable(4096, rookMoves)
}

// Bishop returns the attack set for a bishop on s given occupancy occ.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	return bishopTable.Probe(s, occ)
}

// Rook returns the attack set for a rook on s given occupancy occ.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	return rookTable.Probe(s, occ)
}

// Queen returns the attack set for a queen on s given occupancy occ, the
// union of a bishop's and a rook's attack sets from the same square.
func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Bishop(s, occ) | Rook(s, occ)
}
