package board

// AllLegalMoves returns every legal move for the side to move.
func (p *Position) AllLegalMoves() []Move {
	return p.legalMoves(NoSquare)
}

// LegalMoves returns the legal moves available to whatever piece (if any)
// of the side to move sits on sq.
func (p *Position) LegalMoves(sq Square) []Move {
	return p.legalMoves(sq)
}

// legalMoves generates pseudo-legal moves restricted to restrictTo (or all
// squares when restrictTo is NoSquare), then filters out any that leave
// the mover's own king attacked.
func (p *Position) legalMoves(restrictTo Square) []Move {
	var pseudo MoveList
	p.genPseudoLegalMoves(restrictTo, &pseudo)

	us := p.SideToMove
	legal := make([]Move, 0, pseudo.Len())
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		clone := p.Copy()
		clone.MakeMove(m)
		if !clone.isSquareAttacked(clone.KingSquare[us], us.Other()) {
			legal = append(legal, m)
		}
	}
	return legal
}
