package mcts

import (
	"runtime"
	"sync"
	"time"

	"github.com/nullmove/chessmcts/internal/board"
)

// SearchMultithreaded runs root-parallel MCTS: threads workers each build an
// independent tree with iterations/threads playouts, then per-root-move
// visit counts are summed across trees and the move with the highest
// combined visits wins. threads <= 0 means "use runtime.GOMAXPROCS(0)".
func SearchMultithreaded(root *board.Position, color board.Color, iterations int, threads int) (board.Move, Stats) {
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads < 1 {
		threads = 1
	}

	start := time.Now()
	perWorker := iterations / threads
	if perWorker < 1 {
		perWorker = 1
	}

	results := make([]map[board.Move]rootStat, threads)
	var wg sync.WaitGroup
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			tree := NewTree(root, color)
			tree.Search(root, perWorker)
			results[worker] = tree.rootStats()
		}(i)
	}
	wg.Wait()

	combined := make(map[board.Move]rootStat)
	for _, r := range results {
		for move, stat := range r {
			agg := combined[move]
			agg.visits += stat.visits
			agg.wins += stat.wins
			combined[move] = agg
		}
	}

	best := board.NoMove
	var bestStat rootStat
	bestStat.visits = -1
	for move, stat := range combined {
		switch {
		case stat.visits > bestStat.visits:
			best, bestStat = move, stat
		case stat.visits == bestStat.visits && stat.visits > 0 && stat.wins/float64(stat.visits) > bestStat.wins/float64(bestStat.visits):
			best, bestStat = move, stat
		}
	}

	return best, Stats{
		Iterations: perWorker * threads,
		Threads:    threads,
		Elapsed:    time.Since(start),
	}
}
