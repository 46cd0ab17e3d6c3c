package board

import "testing"

// TestPawnPromotionFanOut checks that a push onto the final rank is
// emitted as four distinct promotion moves.
func TestPawnPromotionFanOut(t *testing.T) {
	pos := newBareBoard(White)
	pos.setPiece(WhitePawn, G7)

	moves := pos.LegalMoves(G7)
	if len(moves) != 4 {
		t.Fatalf("expected 4 promotion moves, got %d: %v", len(moves), moves)
	}
	for _, m := range moves {
		if !m.IsPromotion() {
			t.Errorf("move %s should be a promotion", m)
		}
		if m.To != G8 {
			t.Errorf("expected promotion to g8, got %s", m)
		}
	}
}

// TestPawnPromotionApplies checks that MakeMove actually places the chosen
// promoted piece and clears the origin square.
func TestPawnPromotionApplies(t *testing.T) {
	pos := newBareBoard(White)
	pos.setPiece(WhitePawn, G7)

	pos.MakeMove(NewMove(G7, G8, PromotionQueen))

	if pos.Board[G8] != WhiteQueen {
		t.Errorf("expected white queen on g8, got %v", pos.Board[G8])
	}
	if pos.Board[G7] != NoPiece {
		t.Errorf("expected g7 to be empty, got %v", pos.Board[G7])
	}
}

// TestPawnPromotionCapture checks that a promoting capture is generated
// with the correct destination.
func TestPawnPromotionCapture(t *testing.T) {
	pos := newBareBoard(White)
	pos.setPiece(WhitePawn, G7)
	pos.setPiece(BlackRook, H8)

	moves := pos.LegalMoves(G7)
	foundCapture := false
	for _, m := range moves {
		if m.To == H8 {
			foundCapture = true
			if !m.IsCapture() {
				t.Errorf("move to h8 should be a capture: %s", m)
			}
		}
	}
	if !foundCapture {
		t.Errorf("expected a promotion-capture to h8, got %v", moves)
	}
}

// TestBlackPawnPromotion mirrors the white case for black's promotion rank.
func TestBlackPawnPromotion(t *testing.T) {
	pos := newBareBoard(Black)
	pos.setPiece(BlackPawn, B2)

	moves := pos.LegalMoves(B2)
	if len(moves) != 4 {
		t.Fatalf("expected 4 promotion moves, got %d: %v", len(moves), moves)
	}

	pos.MakeMove(NewMove(B2, B1, PromotionQueen))
	if pos.Board[B1] != BlackQueen {
		t.Errorf("expected black queen on b1, got %v", pos.Board[B1])
	}
}
