// mctsbench runs a root-parallel MCTS search from the command line and
// reports iterations/sec, for comparing thread counts and iteration budgets
// without going through the GUI.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/nullmove/chessmcts/internal/board"
	"github.com/nullmove/chessmcts/internal/mcts"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN of the position to search")
	iterations := flag.Int("iterations", 10000, "total playout budget")
	threads := flag.Int("threads", 0, "worker count (0 = runtime.GOMAXPROCS(0))")
	flag.Parse()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN: %v", err)
	}

	move, stats := mcts.SearchMultithreaded(pos, pos.SideToMove, *iterations, *threads)

	ips := float64(stats.Iterations) / stats.Elapsed.Seconds()
	fmt.Printf("move=%s iterations=%d threads=%d elapsed=%s ips=%.0f\n",
		move, stats.Iterations, stats.Threads, stats.Elapsed, ips)
}
