package mcts

import "github.com/nullmove/chessmcts/internal/board"

// Agent is the move-selection boundary between a position and whatever
// decides what to play next. SearchAgent below is the only implementation;
// internal/ui handles human input itself and calls SearchMultithreaded
// directly rather than going through an Agent.
type Agent interface {
	SelectMove(pos *board.Position) board.Move
}

// SearchAgent is an Agent backed by root-parallel MCTS.
type SearchAgent struct {
	Iterations int
	Threads    int
}

// NewSearchAgent creates an agent that searches iterations playouts per
// move, spread across threads workers (threads <= 0 picks GOMAXPROCS).
func NewSearchAgent(iterations, threads int) *SearchAgent {
	return &SearchAgent{Iterations: iterations, Threads: threads}
}

// SelectMove runs SearchMultithreaded for the position's side to move and
// returns the chosen move, or board.NoMove if the position has none.
func (a *SearchAgent) SelectMove(pos *board.Position) board.Move {
	move, _ := SearchMultithreaded(pos, pos.SideToMove, a.Iterations, a.Threads)
	return move
}

// SearchWithStats runs the same search as SelectMove and returns the chosen
// move together with that search's Stats, for a caller that wants to report
// iteration counts, which SelectMove's return value does not carry.
func (a *SearchAgent) SearchWithStats(pos *board.Position) (board.Move, Stats) {
	return SearchMultithreaded(pos, pos.SideToMove, a.Iterations, a.Threads)
}
