// Package fen decodes Forsyth-Edwards Notation strings into the raw
// field values position.New accepts. Notation parsing is a spec
// Non-goal for the core itself (spec §1), but the test suite and the
// perft command both need a way to stand up a Position, so this lives
// as an external collaborator rather than part of position's API.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
package fen

import (
	"strconv"
	"strings"

	"github.com/kestrelchess/core/bitboard"
	"github.com/kestrelchess/core/castling"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/position"
	"github.com/kestrelchess/core/square"
)

// Startpos is the standard chess starting position.
const Startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN string into a Position. It panics on a malformed
// string; FEN supplied by a caller is assumed to already be
// well-formed, matching the core's panic-on-invariant-violation error
// model (spec §7).
func Decode(fen string) position.Position {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		panic("fen: expected 6 space separated fields, got " + strconv.Itoa(len(fields)))
	}

	var pieceBBs [piece.N]bitboard.Board

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != int(square.RankN) {
		panic("fen: expected 8 ranks in piece placement field")
	}

	for rankID, rankData := range ranks {
		file := square.FileA
		for _, r := range rankData {
			if r >= '1' && r <= '8' {
				file += square.File(r - '0')
				continue
			}

			s := square.New(file, square.Rank(rankID))
			p := piece.NewFromString(string(r))
			pieceBBs[p] = pieceBBs[p].Set(s)
			file++
		}
	}

	side := piece.SideFromString(fields[1])
	rights := castling.NewRights(fields[2])

	ep := square.None
	if fields[3] != "-" {
		ep = square.NewFromString(fields[3])
	}

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil {
		panic("fen: bad half-move clock " + fields[4])
	}
	fullMoves, err := strconv.Atoi(fields[5])
	if err != nil {
		panic("fen: bad full-move number " + fields[5])
	}

	return position.New(pieceBBs, side, rights, ep, halfMove, fullMoves)
}

// Encode renders pos back to a FEN string.
func Encode(pos *position.Position) string {
	var b strings.Builder

	for rank := square.Rank(0); rank < square.RankN; rank++ {
		empty := 0
		for file := square.File(0); file < square.FileN; file++ {
			p := pos.Mailbox[square.New(file, rank)]
			if p == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(p.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank != square.RankN-1 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	b.WriteString(pos.SideToMove.String())
	b.WriteByte(' ')
	b.WriteString(pos.CastlingRights.String())
	b.WriteByte(' ')
	b.WriteString(pos.EnPassantTarget.String())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(pos.HalfMoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(pos.FullMoves))

	return b.String()
}
