package board

import "testing"

// TestPerftStartingPosition checks move generation from the starting
// position against the canonical perft counts.
func TestPerftStartingPosition(t *testing.T) {
	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tc := range tests {
		pos := NewPosition()
		got := pos.Perft(tc.depth)
		if got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}

	if testing.Short() {
		t.Skip("skipping depth 5 in short mode")
	}
	pos := NewPosition()
	if got := pos.Perft(5); got != 4865609 {
		t.Errorf("perft(5) = %d, want 4865609", got)
	}
}

// TestPerftKiwipete exercises castling, en passant, and promotion all in
// one densely tactical position.
func TestPerftKiwipete(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -"

	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}

	for _, tc := range tests {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN: %v", err)
		}
		if got := pos.Perft(tc.depth); got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}

	if testing.Short() {
		t.Skip("skipping depth 4/5 in short mode")
	}
	pos, _ := ParseFEN(fen)
	if got := pos.Perft(4); got != 4085603 {
		t.Errorf("perft(4) = %d, want 4085603", got)
	}
	pos, _ = ParseFEN(fen)
	if got := pos.Perft(5); got != 193690690 {
		t.Errorf("perft(5) = %d, want 193690690", got)
	}
}

// TestPerftEndgame exercises en passant near the board edge.
func TestPerftEndgame(t *testing.T) {
	const fen = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8"

	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
	}

	for _, tc := range tests {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN: %v", err)
		}
		if got := pos.Perft(tc.depth); got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}

	if testing.Short() {
		t.Skip("skipping depth 5 in short mode")
	}
	pos, _ := ParseFEN(fen)
	if got := pos.Perft(5); got != 674624 {
		t.Errorf("perft(5) = %d, want 674624", got)
	}
}

// TestPerftComplexPromotions covers simultaneous promotion and
// promotion-capture fan-out for both colors.
func TestPerftComplexPromotions(t *testing.T) {
	const fen = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1"

	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}

	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 6},
		{2, 264},
		{3, 9467},
	}

	for _, tc := range tests {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN: %v", err)
		}
		if got := pos.Perft(tc.depth); got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}

	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := pos.Perft(4); got != 422333 {
		t.Errorf("perft(4) = %d, want 422333", got)
	}
}

// TestPerftMiddleGamePromotion covers a mid-game position with an
// available pawn promotion and both sides' pieces in motion.
func TestPerftMiddleGamePromotion(t *testing.T) {
	const fen = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R"

	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}

	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 44},
		{2, 1486},
	}

	for _, tc := range tests {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN: %v", err)
		}
		if got := pos.Perft(tc.depth); got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}

	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := pos.Perft(3); got != 62379 {
		t.Errorf("perft(3) = %d, want 62379", got)
	}
	pos, _ = ParseFEN(fen)
	if got := pos.Perft(4); got != 2103487 {
		t.Errorf("perft(4) = %d, want 2103487", got)
	}
}

// TestPerftSymmetrical covers a symmetrical middlegame with both sides
// castled.
func TestPerftSymmetrical(t *testing.T) {
	const fen = "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1"

	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}

	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 46},
		{2, 2079},
	}

	for _, tc := range tests {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN: %v", err)
		}
		if got := pos.Perft(tc.depth); got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}

	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := pos.Perft(3); got != 89890 {
		t.Errorf("perft(3) = %d, want 89890", got)
	}
	pos, _ = ParseFEN(fen)
	if got := pos.Perft(4); got != 3894594 {
		t.Errorf("perft(4) = %d, want 3894594", got)
	}
}
