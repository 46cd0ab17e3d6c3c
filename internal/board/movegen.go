package board

// This file implements one pseudo-legal generator per piece type.
// Every offset is gated by an explicit file/rank predicate
// rather than a raw index bound — a bare `idx+1 < 64` check for an east
// step would wrap from the h-file onto the next rank's a-file, which is
// the single most common move-generator bug in this corpus.

// knightOffset pairs a knight jump with the file/rank precondition that
// keeps it from wrapping around the board edge.
type knightOffset struct {
	delta int
	ok    func(file, rank int) bool
}

var knightOffsets = [8]knightOffset{
	{17, func(f, r int) bool { return f < 7 && r < 6 }},
	{15, func(f, r int) bool { return f > 0 && r < 6 }},
	{10, func(f, r int) bool { return f < 6 && r < 7 }},
	{6, func(f, r int) bool { return f > 1 && r < 7 }},
	{-6, func(f, r int) bool { return f < 6 && r > 0 }},
	{-10, func(f, r int) bool { return f > 1 && r > 0 }},
	{-15, func(f, r int) bool { return f < 7 && r > 1 }},
	{-17, func(f, r int) bool { return f > 0 && r > 1 }},
}

// kingOffsets pairs a king step with its file/rank precondition.
var kingOffsets = [8]knightOffset{
	{8, func(f, r int) bool { return r < 7 }},
	{-8, func(f, r int) bool { return r > 0 }},
	{1, func(f, r int) bool { return f < 7 }},
	{-1, func(f, r int) bool { return f > 0 }},
	{9, func(f, r int) bool { return f < 7 && r < 7 }},
	{7, func(f, r int) bool { return f > 0 && r < 7 }},
	{-7, func(f, r int) bool { return f < 7 && r > 0 }},
	{-9, func(f, r int) bool { return f > 0 && r > 0 }},
}

// rayDirection is one of the four rook or four bishop ray directions. blocked
// reports whether stepping further in this direction from sq would wrap.
type rayDirection struct {
	delta   int
	blocked func(sq Square) bool
}

var rookDirections = [4]rayDirection{
	{8, func(sq Square) bool { return sq.Rank() == 7 }},  // north
	{-8, func(sq Square) bool { return sq.Rank() == 0 }}, // south
	{1, func(sq Square) bool { return sq.File() == 7 }},  // east
	{-1, func(sq Square) bool { return sq.File() == 0 }}, // west
}

var bishopDirections = [4]rayDirection{
	{9, func(sq Square) bool { return sq.File() == 7 || sq.Rank() == 7 }},  // north-east
	{7, func(sq Square) bool { return sq.File() == 0 || sq.Rank() == 7 }},  // north-west
	{-7, func(sq Square) bool { return sq.File() == 7 || sq.Rank() == 0 }}, // south-east
	{-9, func(sq Square) bool { return sq.File() == 0 || sq.Rank() == 0 }}, // south-west
}

var queenDirections = func() [8]rayDirection {
	var d [8]rayDirection
	copy(d[:4], rookDirections[:])
	copy(d[4:], bishopDirections[:])
	return d
}()

// genSlidingMoves walks each ray from sq outward, stopping at the first
// occupied square: a capture if it holds an enemy piece, otherwise the ray
// simply ends there without emitting a move onto it.
func (p *Position) genSlidingMoves(sq Square, us Color, dirs []rayDirection, ml *MoveList) {
	for _, d := range dirs {
		cur := sq
		for !d.blocked(cur) {
			next := Square(int(cur) + d.delta)
			occupant := p.Board[next]
			if occupant == NoPiece {
				ml.Add(NewMove(sq, next, Quiet))
				cur = next
				continue
			}
			if occupant.Color() != us {
				ml.Add(NewMove(sq, next, Capture))
			}
			break
		}
	}
}

func (p *Position) genKnightMoves(sq Square, us Color, ml *MoveList) {
	file, rank := sq.File(), sq.Rank()
	for _, o := range knightOffsets {
		if !o.ok(file, rank) {
			continue
		}
		to := Square(int(sq) + o.delta)
		occupant := p.Board[to]
		if occupant == NoPiece {
			ml.Add(NewMove(sq, to, Quiet))
		} else if occupant.Color() != us {
			ml.Add(NewMove(sq, to, Capture))
		}
	}
}

// genKingSteps generates the eight adjacent-square king moves. Castling is
// generated separately by genCastlingMoves since it depends on check and
// attacked-square conditions the plain step generator doesn't evaluate.
func (p *Position) genKingSteps(sq Square, us Color, ml *MoveList) {
	file, rank := sq.File(), sq.Rank()
	for _, o := range kingOffsets {
		if !o.ok(file, rank) {
			continue
		}
		to := Square(int(sq) + o.delta)
		occupant := p.Board[to]
		if occupant == NoPiece {
			ml.Add(NewMove(sq, to, Quiet))
		} else if occupant.Color() != us {
			ml.Add(NewMove(sq, to, Capture))
		}
	}
}

// pawnPromotions fans a push or capture landing on the final rank out into
// the four promotion moves: callers must see four
// distinct moves, never one with a "choose later" tag.
func pawnPromotions(from, to Square, capture bool, ml *MoveList) {
	kinds := [4]MoveType{PromotionKnight, PromotionBishop, PromotionRook, PromotionQueen}
	captureKinds := [4]MoveType{PromotionCaptureKnight, PromotionCaptureBishop, PromotionCaptureRook, PromotionCaptureQueen}
	for i := 0; i < 4; i++ {
		if capture {
			ml.Add(NewMove(from, to, captureKinds[i]))
		} else {
			ml.Add(NewMove(from, to, kinds[i]))
		}
	}
}

func (p *Position) genPawnMoves(sq Square, us Color, ml *MoveList) {
	file, rank := sq.File(), sq.Rank()

	var forward, startRank, promoRank, epRank int
	if us == White {
		forward, startRank, promoRank, epRank = 8, 1, 7, 4
	} else {
		forward, startRank, promoRank, epRank = -8, 6, 0, 3
	}

	// Single and double push.
	one := Square(int(sq) + forward)
	if p.Board[one] == NoPiece {
		if one.Rank() == promoRank {
			pawnPromotions(sq, one, false, ml)
		} else {
			ml.Add(NewMove(sq, one, Quiet))
		}
		if rank == startRank {
			two := Square(int(sq) + 2*forward)
			if p.Board[two] == NoPiece {
				ml.Add(NewMove(sq, two, DoublePawnPush))
			}
		}
	}

	// Diagonal captures, file-edge guarded.
	type capStep struct {
		delta   int
		allowed bool
	}
	steps := [2]capStep{
		{forward + 1, file < 7},
		{forward - 1, file > 0},
	}
	for _, st := range steps {
		if !st.allowed {
			continue
		}
		to := Square(int(sq) + st.delta)
		occupant := p.Board[to]
		if occupant != NoPiece && occupant.Color() != us {
			if to.Rank() == promoRank {
				pawnPromotions(sq, to, true, ml)
			} else {
				ml.Add(NewMove(sq, to, Capture))
			}
			continue
		}
		if rank == epRank && p.EnPassant == to {
			ml.Add(NewMove(sq, to, EnPassant))
		}
	}
}

// genCastlingMoves emits CastleKingside/CastleQueenside moves when every
// condition holds: the right is set, the path is clear, the
// king isn't in check, and neither the transit square nor the destination
// is attacked.
func (p *Position) genCastlingMoves(sq Square, us Color, ml *MoveList) {
	them := us.Other()
	var homeRank int
	if us == White {
		homeRank = 0
	} else {
		homeRank = 7
	}
	kingHome := NewSquare(4, homeRank)
	if sq != kingHome {
		return
	}
	if p.isSquareAttacked(kingHome, them) {
		return
	}

	if p.CastlingRights.CanCastle(us, true) {
		f := NewSquare(5, homeRank)
		g := NewSquare(6, homeRank)
		h := NewSquare(7, homeRank)
		rook := NewPiece(Rook, us)
		if p.Board[f] == NoPiece && p.Board[g] == NoPiece && p.Board[h] == rook {
			if !p.isSquareAttacked(f, them) && !p.isSquareAttacked(g, them) {
				ml.Add(NewMove(kingHome, g, CastleKingside))
			}
		}
	}
	if p.CastlingRights.CanCastle(us, false) {
		d := NewSquare(3, homeRank)
		c := NewSquare(2, homeRank)
		b := NewSquare(1, homeRank)
		a := NewSquare(0, homeRank)
		rook := NewPiece(Rook, us)
		if p.Board[d] == NoPiece && p.Board[c] == NoPiece && p.Board[b] == NoPiece && p.Board[a] == rook {
			if !p.isSquareAttacked(d, them) && !p.isSquareAttacked(c, them) {
				ml.Add(NewMove(kingHome, c, CastleQueenside))
			}
		}
	}
}

// genPseudoLegalMoves appends every pseudo-legal move for the piece on sq
// (or for every occupied square of the side to move when sq == NoSquare).
func (p *Position) genPseudoLegalMoves(restrictTo Square, ml *MoveList) {
	us := p.SideToMove
	for sq := Square(0); sq < 64; sq++ {
		if restrictTo != NoSquare && sq != restrictTo {
			continue
		}
		piece := p.Board[sq]
		if piece == NoPiece || piece.Color() != us {
			continue
		}
		switch piece.Type() {
		case Pawn:
			p.genPawnMoves(sq, us, ml)
		case Knight:
			p.genKnightMoves(sq, us, ml)
		case Bishop:
			p.genSlidingMoves(sq, us, bishopDirections[:], ml)
		case Rook:
			p.genSlidingMoves(sq, us, rookDirections[:], ml)
		case Queen:
			p.genSlidingMoves(sq, us, queenDirections[:], ml)
		case King:
			p.genKingSteps(sq, us, ml)
			p.genCastlingMoves(sq, us, ml)
		}
	}
}
