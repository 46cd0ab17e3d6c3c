package mcts

import "time"

// Stats reports what a search run actually did, for display in the UI
// panel and for persistence via internal/storage.
type Stats struct {
	Iterations int
	Threads    int
	Elapsed    time.Duration
}

// GetStats returns the statistics for the tree's most recent Search call:
// total playouts (the root's visit count) and Threads = 1. Elapsed is not
// recorded by a single tree and is left zero.
func (t *Tree) GetStats() Stats {
	return Stats{
		Iterations: t.totalVisits(),
		Threads:    1,
	}
}
