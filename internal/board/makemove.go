package board

// castlingClearMask maps a square to the castling rights lost when a piece
// leaves from, or is captured on, that square: the king/rook home squares.
var castlingClearMask = func() [64]CastlingRights {
	var m [64]CastlingRights
	m[E1] = WhiteKingSideCastle | WhiteQueenSideCastle
	m[E8] = BlackKingSideCastle | BlackQueenSideCastle
	m[H1] = WhiteKingSideCastle
	m[A1] = WhiteQueenSideCastle
	m[H8] = BlackKingSideCastle
	m[A8] = BlackQueenSideCastle
	return m
}()

// MakeMove mutates the position in place by applying m, which must be a
// move produced by AllLegalMoves/LegalMoves for this exact position —
// passing a stale or foreign move is undefined.
func (p *Position) MakeMove(m Move) {
	us := p.SideToMove
	them := us.Other()
	moving := p.Board[m.From]

	// 1. En passant removes the captured pawn from the square behind the
	// destination, not from the destination itself.
	if m.Kind == EnPassant {
		var capSq Square
		if us == White {
			capSq = Square(int(m.To) - 8)
		} else {
			capSq = Square(int(m.To) + 8)
		}
		p.removePiece(capSq)
	}

	captured := p.Board[m.To]

	// 2. Relocate the moving piece.
	p.movePiece(m.From, m.To)

	// 3. Promotion replaces the destination piece type.
	if m.Kind.IsPromotion() {
		p.setPiece(NewPiece(m.Kind.PromotionType(), us), m.To)
	}

	// 4. Castling also relocates the rook.
	if m.Kind.IsCastle() {
		homeRank := m.From.Rank()
		if m.Kind == CastleKingside {
			p.movePiece(NewSquare(7, homeRank), NewSquare(5, homeRank))
		} else {
			p.movePiece(NewSquare(0, homeRank), NewSquare(3, homeRank))
		}
	}

	// 5. Clear castling rights touched by this move: the mover's own
	// rights if a king or rook left home, and the victim's rights if a
	// rook was captured on its home square.
	p.CastlingRights &^= castlingClearMask[m.From]
	p.CastlingRights &^= castlingClearMask[m.To]

	// 6. En passant target tracks double pawn pushes only.
	if m.Kind == DoublePawnPush {
		if us == White {
			p.EnPassant = Square(int(m.From) + 8)
		} else {
			p.EnPassant = Square(int(m.From) - 8)
		}
	} else {
		p.EnPassant = NoSquare
	}

	// 7. Halfmove clock resets on pawn moves or captures; fullmove number
	// advances after Black moves.
	if moving.Type() == Pawn || captured != NoPiece || m.Kind == EnPassant {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}
	if us == Black {
		p.FullMoveNumber++
	}

	// 8. Flip the side to move.
	p.SideToMove = them

	p.assertInvariants()
}
