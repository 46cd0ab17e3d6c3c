// perftbench runs Perft from the command line and reports nodes/sec, for
// spot-checking move generation performance the way a test suite can't.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/nullmove/chessmcts/internal/board"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN of the position to run perft on")
	depth := flag.Int("depth", 5, "perft depth")
	flag.Parse()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN: %v", err)
	}

	start := time.Now()
	nodes := pos.Perft(*depth)
	elapsed := time.Since(start)

	nps := float64(nodes) / elapsed.Seconds()
	fmt.Printf("depth=%d nodes=%d elapsed=%s nps=%.0f\n", *depth, nodes, elapsed, nps)
}
