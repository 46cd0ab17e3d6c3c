// Package mcts implements a root-parallel Monte Carlo Tree Search over
// internal/board positions: UCT selection, random-rollout simulation, and
// visit-count-based move choice, following the same "build a tree by
// cloning positions rather than unmaking moves" approach board.Perft uses.
package mcts

import (
	"math"
	"math/rand"

	"github.com/nullmove/chessmcts/internal/board"
)

// explorationConstant is the c in the UCT formula w/n + c*sqrt(ln(N)/n).
const explorationConstant = math.Sqrt2

// rolloutDepthCap bounds a simulation's length in plies; reaching the cap
// without a terminal position counts as a draw.
const rolloutDepthCap = 100

// Tree owns one MCTS search tree rooted at a position. color records whose
// turn it is at the root — callers are expected to pass the position's own
// side to move, since every node's statistics are naturally relative to
// whoever is choosing among that node's children.
type Tree struct {
	root  *node
	color board.Color
	rng   *rand.Rand
}

// NewTree creates a tree rooted at root, searching on behalf of color.
func NewTree(root *board.Position, color board.Color) *Tree {
	return &Tree{
		root:  newNode(root.Copy(), board.NoMove, nil),
		color: color,
		rng:   rand.New(rand.NewSource(rand.Int63())),
	}
}

// Search builds a fresh tree rooted at pos, runs iterations playouts, and
// returns the move on the root edge leading to the most-visited child,
// breaking ties by higher mean value.
func (t *Tree) Search(pos *board.Position, iterations int) board.Move {
	t.root = newNode(pos.Copy(), board.NoMove, nil)

	for i := 0; i < iterations; i++ {
		t.playout()
	}

	return t.bestMove()
}

// playout performs one selection/expansion/simulation/backpropagation cycle.
func (t *Tree) playout() {
	n := t.root
	for !n.isLeaf() && len(n.children) > 0 {
		n = t.selectChild(n)
	}

	mover := n.pos.SideToMove.Other() // whoever moved into n, i.e. n's parent's mover

	if n.isTerminal() {
		t.backpropagate(n, terminalValue(n.pos, mover))
		return
	}

	if n.isLeaf() {
		n = n.expand()
		mover = n.pos.SideToMove.Other()
	}

	value := t.rollout(n.pos, mover)
	t.backpropagate(n, value)
}

// selectChild descends to the untried-exhausted child maximizing UCT.
func (t *Tree) selectChild(n *node) *node {
	best := n.children[0]
	bestUCT := math.Inf(-1)
	logParent := math.Log(float64(n.visits))

	for _, child := range n.children {
		if child.visits == 0 {
			return child
		}
		exploit := child.wins / float64(child.visits)
		explore := explorationConstant * math.Sqrt(logParent/float64(child.visits))
		uct := exploit + explore
		if uct > bestUCT {
			bestUCT = uct
			best = child
		}
	}
	return best
}

// rollout plays uniformly random legal moves from pos until a terminal
// position or the depth cap, and scores the outcome for mover — the color
// backpropagate will credit the leaf node with before flipping at each
// ancestor level on the way back to the root.
func (t *Tree) rollout(pos *board.Position, mover board.Color) float64 {
	cur := pos.Copy()
	for ply := 0; ply < rolloutDepthCap; ply++ {
		moves := cur.AllLegalMoves()
		if len(moves) == 0 {
			return terminalValue(cur, mover)
		}
		cur.MakeMove(moves[t.rng.Intn(len(moves))])
	}
	return 0.5 // depth cap reached: treat as a draw
}

// terminalValue scores a position with no legal moves for mover: a win if
// mover delivered checkmate, a loss if mover is the one checkmated, a draw
// on stalemate.
func terminalValue(pos *board.Position, mover board.Color) float64 {
	if !pos.InCheck() {
		return 0.5 // stalemate
	}
	if pos.SideToMove == mover {
		return 0.0 // mover is the one checkmated
	}
	return 1.0 // mover delivered checkmate
}

// backpropagate walks from n to the root, incrementing visit counts and
// adding value, flipping perspective at each level since w/n at a node is
// interpreted from the mover-at-parent's point of view.
func (t *Tree) backpropagate(n *node, value float64) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.visits++
		cur.wins += value
		value = 1 - value
	}
}

// bestMove returns the root child with the highest visit count, breaking
// ties by mean value.
func (t *Tree) bestMove() board.Move {
	if len(t.root.children) == 0 {
		return board.NoMove
	}

	best := t.root.children[0]
	for _, child := range t.root.children[1:] {
		if child.visits > best.visits {
			best = child
			continue
		}
		if child.visits == best.visits && child.visits > 0 {
			if child.wins/float64(child.visits) > best.wins/float64(best.visits) {
				best = child
			}
		}
	}
	return best.move
}

// rootStat is one root child's accumulated visit count and total value, the
// unit root-parallel workers exchange so their combined vote can use the
// same visits-then-mean-value tie-break as a single tree's bestMove.
type rootStat struct {
	visits int
	wins   float64
}

// rootStats returns each legal root move's visit count and summed value,
// for aggregation across root-parallel workers.
func (t *Tree) rootStats() map[board.Move]rootStat {
	stats := make(map[board.Move]rootStat, len(t.root.children))
	for _, child := range t.root.children {
		stats[child.move] = rootStat{visits: child.visits, wins: child.wins}
	}
	return stats
}

// totalVisits returns the root's total playout count.
func (t *Tree) totalVisits() int {
	return t.root.visits
}
