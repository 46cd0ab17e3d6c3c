package board

// isSquareAttacked reports whether any byColor piece attacks sq. This
// reuses the pseudo-legal stepping tables: a square is
// attacked by a knight/king iff, placed on sq, that piece's step pattern
// would reach a square holding the real attacker (steps are symmetric, so
// this doesn't need a separate "attacks from" table). Sliding attacks walk
// the same rays genSlidingMoves does. Pawn attacks are diagonal only —
// pushes never threaten a square.
func (p *Position) isSquareAttacked(sq Square, byColor Color) bool {
	if p.pawnAttacksSquare(sq, byColor) {
		return true
	}

	file, rank := sq.File(), sq.Rank()
	for _, o := range knightOffsets {
		if !o.ok(file, rank) {
			continue
		}
		to := Square(int(sq) + o.delta)
		if piece := p.Board[to]; piece.Type() == Knight && piece.Color() == byColor {
			return true
		}
	}

	for _, o := range kingOffsets {
		if !o.ok(file, rank) {
			continue
		}
		to := Square(int(sq) + o.delta)
		if piece := p.Board[to]; piece.Type() == King && piece.Color() == byColor {
			return true
		}
	}

	if p.rayAttacksSquare(sq, byColor, rookDirections[:], Rook, Queen) {
		return true
	}
	if p.rayAttacksSquare(sq, byColor, bishopDirections[:], Bishop, Queen) {
		return true
	}

	return false
}

// pawnAttacksSquare reports whether a byColor pawn diagonally attacks sq.
func (p *Position) pawnAttacksSquare(sq Square, byColor Color) bool {
	file, rank := sq.File(), sq.Rank()

	// A white pawn attacks from one rank below, diagonally; a black pawn
	// attacks from one rank above.
	var attackerRank int
	if byColor == White {
		attackerRank = rank - 1
	} else {
		attackerRank = rank + 1
	}
	if attackerRank < 0 || attackerRank > 7 {
		return false
	}

	for _, df := range [2]int{-1, 1} {
		attackerFile := file + df
		if attackerFile < 0 || attackerFile > 7 {
			continue
		}
		attacker := NewSquare(attackerFile, attackerRank)
		if piece := p.Board[attacker]; piece.Type() == Pawn && piece.Color() == byColor {
			return true
		}
	}
	return false
}

// rayAttacksSquare walks each direction from sq outward and reports whether
// the first occupied square belongs to byColor and is one of wantA/wantB.
func (p *Position) rayAttacksSquare(sq Square, byColor Color, dirs []rayDirection, wantA, wantB PieceType) bool {
	for _, d := range dirs {
		cur := sq
		for !d.blocked(cur) {
			next := Square(int(cur) + d.delta)
			occupant := p.Board[next]
			if occupant == NoPiece {
				cur = next
				continue
			}
			if occupant.Color() == byColor && (occupant.Type() == wantA || occupant.Type() == wantB) {
				return true
			}
			break
		}
	}
	return false
}
