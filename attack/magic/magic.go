// Package magic generates and probes magic hash tables for the sliding
// pieces (spec §4.3). A blocker mask has too many permutations to index
// directly, but the *relevant* blockers for a given square are few, so a
// magic multiplier turns (relevant-blockers * magic) >> shift into a
// perfect, contiguous hash over the attack table for that square.
package magic

import (
	"github.com/kestrelchess/core/bitboard"
	"github.com/kestrelchess/core/internal/util"
	"github.com/kestrelchess/core/square"
)

// seeds are PRNG seeds, taken from Stockfish, chosen because they find a
// valid magic for their rank quickly.
var seeds = [8]uint64{255, 16645, 15100, 12281, 32803, 55013, 10316, 728}

// MoveFunc computes a slider's attack set from a square given an
// occupancy. When mask is true, it must return the relevant-occupancy
// mask instead (the blocker squares that can affect the attack set),
// clipped away from the board edge.
type MoveFunc func(s square.Square, occ bitboard.Board, mask bool) bitboard.Board

// Magic holds one square's entry in a magic hash table.
type Magic struct {
	Number      uint64         // magic multiplier
	BlockerMask bitboard.Board // relevant-occupancy mask
	Shift       uint8          // 64 - popcount(BlockerMask)
}

// Index computes the table slot for the given occupancy.
func (m Magic) Index(occ bitboard.Board) uint64 {
	occ &= m.BlockerMask
	return (uint64(occ) * m.Number) >> m.Shift
}

// Table is a complete magic hash table for one sliding piece type.
type Table struct {
	Magics [square.N]Magic
	Attack [square.N][]bitboard.Board
}

// Probe returns the attack set for a slider on s given occupancy occ.
func (t *Table) Probe(s square.Square, occ bitboard.Board) bitboard.Board {
	return t.Attack[s][t.Magics[s].Index(occ)]
}

// NewTable builds a magic table by exhaustive random search. tableSize is
// the per-square table length (2^bits for the widest blocker mask of the
// piece, e.g. 4096 for a rook, 512 for a bishop). Construction re-derives
// the naive attack set for every occupancy permutation and checks each
// candidate magic against them: a candidate that hashes two different
// attack sets to the same slot is discarded and the search draws the
// next one, until a collision-free magic is found. NewTable never fails.
func NewTable(tableSize int, move MoveFunc) *Table {
	var t Table
	var rng util.PRNG

	for s := square.Square(0); s < square.N; s++ {
		m := &t.Magics[s]

		m.BlockerMask = move(s, bitboard.Empty, true)
		bitN := m.BlockerMask.Count()
		m.Shift = uint8(64 - bitN)

		permN := 1 << bitN
		occupancies := make([]bitboard.Board, permN)
		attacks := make([]bitboard.Board, permN)

		// enumerate every subset of the blocker mask via the
		// Carry-Rippler trick.
		blockers := bitboard.Empty
		for i := 0; i < permN; i++ {
			occupancies[i] = blockers
			attacks[i] = move(s, blockers, false)
			blockers = (blockers - m.BlockerMask) & m.BlockerMask
		}

		rng.Seed(seeds[s.Rank()])

	search:
		for {
			t.Attack[s] = make([]bitboard.Board, tableSize)
			m.Number = rng.SparseUint64()

			for i := 0; i < permN; i++ {
				index := m.Index(occupancies[i])
				if t.Attack[s][index] != bitboard.Empty && t.Attack[s][index] != attacks[i] {
					// hash collision between two distinct attack sets:
					// this magic is invalid, try another.
					continue search
				}
				t.Attack[s][index] = attacks[i]
			}

			break
		}
	}

	return &t
}
