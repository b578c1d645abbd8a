// Command perft counts the leaf nodes of the legal move tree rooted at
// a position, to a fixed depth, and optionally breaks that count down
// by the first move played (a "divide"). It exists to exercise the
// generator against known-good node counts; it is tooling, not part of
// the generator's public interface (spec §1 Non-goals exclude a
// protocol front-end).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kestrelchess/core/internal/applier"
	"github.com/kestrelchess/core/internal/fen"
	"github.com/kestrelchess/core/movegen"
	"github.com/kestrelchess/core/position"
)

func main() {
	if err := Main(); err != nil {
		log.Fatal(err)
	}
}

func Main() error {
	fenFlag := flag.String("fen", fen.Startpos, "FEN of the position to search from")
	depth := flag.Int("depth", 5, "search depth in plys")
	divide := flag.Bool("divide", false, "break the node count down by first move")
	flag.Parse()

	if *depth < 0 {
		return fmt.Errorf("perft: depth must be non-negative, got %d", *depth)
	}

	pos := fen.Decode(*fenFlag)

	start := time.Now()
	var nodes int

	if *divide {
		nodes = runDivide(&pos, *depth)
	} else {
		nodes = perft(&pos, *depth)
	}

	elapsed := time.Since(start)
	log.Printf("depth %d: %d nodes in %s (%.0f nodes/sec)\n",
		*depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())

	return nil
}

func runDivide(pos *position.Position, depth int) int {
	var total int
	for _, m := range movegen.Generate(pos) {
		next := applier.Apply(*pos, m)
		n := perft(&next, depth-1)
		total += n
		fmt.Fprintf(os.Stdout, "%s: %d\n", m, n)
	}
	return total
}

// perft counts the leaves of the legal move tree rooted at pos at the
// given depth. Every move Generate returns is already legal (spec §4.6
// filters illegal king moves and pinned-piece moves during generation),
// so no post-move legality check is needed, unlike a pseudo-legal
// generator.
func perft(pos *position.Position, depth int) int {
	if depth == 0 {
		return 1
	}

	moves := movegen.Generate(pos)
	if depth == 1 {
		return len(moves)
	}

	var nodes int
	for _, m := range moves {
		next := applier.Apply(*pos, m)
		nodes += perft(&next, depth-1)
	}
	return nodes
}
