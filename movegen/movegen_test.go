package movegen_test

import (
	"testing"

	"github.com/kestrelchess/core/internal/applier"
	"github.com/kestrelchess/core/internal/fen"
	"github.com/kestrelchess/core/move"
	"github.com/kestrelchess/core/movegen"
	"github.com/kestrelchess/core/position"
	"github.com/stretchr/testify/assert"
)

func perft(pos position.Position, depth int) int {
	if depth == 0 {
		return 1
	}

	moves := movegen.Generate(&pos)
	if depth == 1 {
		return len(moves)
	}

	nodes := 0
	for _, m := range moves {
		nodes += perft(applier.Apply(pos, m), depth-1)
	}
	return nodes
}

func TestPerftStartpos(t *testing.T) {
	pos := fen.Decode(fen.Startpos)

	assert.Equal(t, 20, perft(pos, 1))
	assert.Equal(t, 400, perft(pos, 2))
	assert.Equal(t, 8902, perft(pos, 3))
	assert.Equal(t, 197281, perft(pos, 4))
}

func TestPerftStartposDepth1Breakdown(t *testing.T) {
	pos := fen.Decode(fen.Startpos)
	moves := movegen.Generate(&pos)

	pawns, knights := 0, 0
	for _, m := range moves {
		from := m.Origin()
		switch pos.Mailbox[from].Type().String() {
		case "p":
			pawns++
		case "n":
			knights++
		}
	}
	assert.Equal(t, 16, pawns)
	assert.Equal(t, 4, knights)
}

func TestPerftKiwipete(t *testing.T) {
	pos := fen.Decode("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	assert.Equal(t, 48, perft(pos, 1))
	assert.Equal(t, 2039, perft(pos, 2))
	assert.Equal(t, 97862, perft(pos, 3))
	assert.Equal(t, 4085603, perft(pos, 4))
}

func TestPerftPosition3(t *testing.T) {
	pos := fen.Decode("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")

	assert.Equal(t, 14, perft(pos, 1))
	assert.Equal(t, 191, perft(pos, 2))
	assert.Equal(t, 2812, perft(pos, 3))
	assert.Equal(t, 43238, perft(pos, 4))
}

func TestPerftPosition4(t *testing.T) {
	pos := fen.Decode("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")

	assert.Equal(t, 6, perft(pos, 1))
	assert.Equal(t, 264, perft(pos, 2))
	assert.Equal(t, 9467, perft(pos, 3))
	assert.Equal(t, 422333, perft(pos, 4))
}

func TestEnPassantExcludedByDiscoveredCheck(t *testing.T) {
	pos := fen.Decode("7k/8/8/KPp4r/8/8/8/8 w - c6 0 1")
	moves := movegen.Generate(&pos)

	for _, m := range moves {
		assert.NotEqual(t, move.EnPassant, m.Kind(), "en passant must be illegal: exposes king to rank check")
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// the e6 queen and the b5 bishop both check e8; the a6 rook could
	// capture the queen in a single check, but not in this double check.
	pos := fen.Decode("4k3/8/r3Q3/1B6/8/8/8/4K3 b - - 0 1")
	moves := movegen.Generate(&pos)

	assert.NotEmpty(t, moves)
	for _, m := range moves {
		assert.Equal(t, "k", pos.Mailbox[m.Origin()].Type().String())
	}
}

func TestCastlingBlockedWhenPathSeenByEnemy(t *testing.T) {
	pos := fen.Decode("r3k1r1/8/8/8/8/8/8/4K2R w K - 0 1")
	moves := movegen.Generate(&pos)

	for _, m := range moves {
		assert.NotEqual(t, move.Castle, m.Kind())
	}
}

func TestCastlingAllowedWhenPathClear(t *testing.T) {
	pos := fen.Decode("r3k2r/8/8/8/8/8/8/4K2R w K - 0 1")
	moves := movegen.Generate(&pos)

	found := false
	for _, m := range moves {
		if m.Kind() == move.Castle {
			found = true
		}
	}
	assert.True(t, found)
}

func TestPawnPromotionProducesFourMoves(t *testing.T) {
	pos := fen.Decode("8/P7/8/8/8/8/8/k6K w - - 0 1")
	moves := movegen.Generate(&pos)

	promotions := 0
	for _, m := range moves {
		if m.Kind() == move.Promotion {
			promotions++
		}
	}
	assert.Equal(t, 4, promotions)
}

func TestPinnedKnightHasNoMoves(t *testing.T) {
	// the e1 rook pins the e3 knight to the e8 king along the e-file.
	pos := fen.Decode("4k3/8/8/8/8/4n3/8/4R1K1 b - - 0 1")
	moves := movegen.Generate(&pos)

	for _, m := range moves {
		assert.NotEqual(t, "e3", m.Origin().String())
	}
}
