package board

import "testing"

// newBareBoard builds an otherwise-empty position with both kings parked
// out of the way, for edge-square regression scenarios.
func newBareBoard(turn Color) *Position {
	p := &Position{}
	p.Clear()
	p.SideToMove = turn
	p.setPiece(WhiteKing, E1)
	p.setPiece(BlackKing, E8)
	return p
}

// TestBlackPawnDoesNotWrapToRookFile is a board-edge regression: a black
// pawn on a3 has exactly one legal move, to a2, and must not wrap around
// the board edge to capture the rook on h1.
func TestBlackPawnDoesNotWrapToRookFile(t *testing.T) {
	pos := newBareBoard(Black)
	pos.setPiece(BlackPawn, A3)
	pos.setPiece(WhiteRook, H1)

	moves := pos.LegalMoves(A3)
	if len(moves) != 1 {
		t.Fatalf("expected exactly 1 legal move, got %d: %v", len(moves), moves)
	}
	if moves[0].To != A2 {
		t.Errorf("expected move to a2, got %s", moves[0])
	}
	for _, m := range moves {
		if m.To == H1 {
			t.Errorf("pawn illegally wrapped to capture h1: %s", m)
		}
	}
}

// TestWhitePawnDoesNotWrapToAFile mirrors the black-pawn regression: a
// white pawn on h3 has exactly one legal move, to h4, and cannot wrap
// around to the a-file.
func TestWhitePawnDoesNotWrapToAFile(t *testing.T) {
	pos := newBareBoard(White)
	pos.setPiece(WhitePawn, H3)

	moves := pos.LegalMoves(H3)
	if len(moves) != 1 {
		t.Fatalf("expected exactly 1 legal move, got %d: %v", len(moves), moves)
	}
	if moves[0].To != H4 {
		t.Errorf("expected move to h4, got %s", moves[0])
	}
	for _, m := range moves {
		if m.To.File() == 0 {
			t.Errorf("pawn illegally wrapped to the a-file: %s", m)
		}
	}
}

// TestEnPassantPin reproduces the classic horizontal-pin case: capturing
// en passant would expose the king, so the capture must not be legal even
// though it's pseudo-legal.
func TestEnPassantPin(t *testing.T) {
	// 8/8/8/8/k2Pp2R/8/8/4K3 b - d3
	pos := &Position{}
	pos.Clear()
	pos.SideToMove = Black
	pos.setPiece(BlackKing, A4)
	pos.setPiece(WhitePawn, D4)
	pos.setPiece(BlackPawn, E4)
	pos.setPiece(WhiteRook, H4)
	pos.setPiece(WhiteKing, E1)
	pos.EnPassant = D3

	moves := pos.AllLegalMoves()
	for _, m := range moves {
		if m.Kind == EnPassant {
			t.Errorf("en passant capture should be illegal under horizontal pin: %s", m)
		}
	}
}
