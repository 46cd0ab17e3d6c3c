//go:build chessdebug

package board

import "fmt"

// assertInvariants panics with an InvariantViolation if the position
// violates one of its structural invariants. Only compiled into the chessdebug build tag,
// since these checks are too expensive to pay on every MakeMove in a
// million-node perft or MCTS rollout.
func (p *Position) assertInvariants() {
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("board: invariant violation: %v", err))
	}
}
