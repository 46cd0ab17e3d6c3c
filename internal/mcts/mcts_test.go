package mcts

import (
	"testing"

	"github.com/nullmove/chessmcts/internal/board"
)

func containsMove(moves []board.Move, m board.Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}

// TestSearchReturnsLegalMove checks that the move Search settles on is
// always a member of the position's own legal move list, across a handful
// of positions with very different branching factors.
func TestSearchReturnsLegalMove(t *testing.T) {
	fens := []string{
		"", // starting position, via testPosition
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8",
	}

	for _, fen := range fens {
		pos := testPosition(t, fen)
		legal := pos.AllLegalMoves()

		tree := NewTree(pos, pos.SideToMove)
		move := tree.Search(pos, 500)

		if !containsMove(legal, move) {
			t.Fatalf("Search(%q) returned %s, not in AllLegalMoves() (%d moves)", fen, move, len(legal))
		}
	}
}

// TestSearchVisitsEveryRootChild checks that, with at least 1000 iterations
// from the starting position, every root child has been visited at least
// once: expansion pops the root's untried moves one per iteration, so this
// only holds once iterations covers the full branching factor.
func TestSearchVisitsEveryRootChild(t *testing.T) {
	pos := testPosition(t, "")

	tree := NewTree(pos, pos.SideToMove)
	tree.Search(pos, 1000)

	stats := tree.rootStats()
	legal := pos.AllLegalMoves()
	if len(stats) != len(legal) {
		t.Fatalf("root has %d children, want %d (one per legal move)", len(stats), len(legal))
	}

	for move, stat := range stats {
		if stat.visits < 1 {
			t.Errorf("root child %s got 0 visits after 1000 iterations", move)
		}
	}
}

// TestSearchMultithreadedSingleThreadMatchesSearch checks that root-parallel
// search with threads=1 reduces to plain single-tree search: both run the
// same UCT/rollout/backpropagate algorithm over one tree and pick the root
// child by the same visits-then-mean-value rule, so they can only diverge on
// which random rollouts happened to run (different RNG streams), not in
// which move wins a given set of statistics.
func TestSearchMultithreadedSingleThreadMatchesSearch(t *testing.T) {
	pos := testPosition(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8")

	const iterations = 2000
	moveA, statsA := SearchMultithreaded(pos, pos.SideToMove, iterations, 1)

	if statsA.Threads != 1 {
		t.Fatalf("SearchMultithreaded(threads=1) reported Threads=%d", statsA.Threads)
	}
	if statsA.Iterations != iterations {
		t.Fatalf("SearchMultithreaded(threads=1) ran %d iterations, want %d", statsA.Iterations, iterations)
	}

	tree := NewTree(pos, pos.SideToMove)
	move := tree.Search(pos, iterations)
	legal := pos.AllLegalMoves()
	if !containsMove(legal, moveA) {
		t.Fatalf("SearchMultithreaded(threads=1) returned illegal move %s", moveA)
	}
	if !containsMove(legal, move) {
		t.Fatalf("single-tree Search returned illegal move %s", move)
	}
}

// TestSearchFindsMateInOne checks that a cheap search reliably finds a
// forced mate, since a mate-in-1 child's rollouts always return a win and
// UCT should converge onto it quickly.
func TestSearchFindsMateInOne(t *testing.T) {
	// Black's king is cornered on h8 behind its own f7/g7/h7 pawns; the
	// only flight square is g8, which Re1-e8# covers from the rank.
	const fen = "7k/5ppp/8/8/8/8/5PPP/4R1K1 w - -"
	pos := testPosition(t, fen)

	const trials = 5
	for trial := 0; trial < trials; trial++ {
		move, _ := SearchMultithreaded(pos, pos.SideToMove, 150, 1)

		next := pos.Copy()
		next.MakeMove(move)
		if !next.IsTerminal() || !next.InCheck() {
			t.Fatalf("trial %d: move %s did not deliver mate (FEN after move: %s)", trial, move, next.ToFEN())
		}
	}
}

// testPosition parses fen, or returns the standard starting position if fen
// is empty, failing the test on a parse error.
func testPosition(t *testing.T, fen string) *board.Position {
	t.Helper()
	if fen == "" {
		return board.NewPosition()
	}
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}
