package chess

import "testing"

func TestStartingPositionHasTwentyLegalMoves(t *testing.T) {
	pos := NewPosition()
	if got := len(GenerateLegal(pos)); got != 20 {
		t.Errorf("legal moves from start = %d, want 20", got)
	}
}

func TestCastlingRequiresEmptySquaresAndSafePassage(t *testing.T) {
	// White king e1, rook h1, nothing between: kingside castle legal.
	pos, err := FromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	found := false
	for _, m := range GenerateLegal(pos) {
		if m.Flag() == FlagCastle {
			found = true
		}
	}
	if !found {
		t.Error("expected kingside castle to be generated")
	}
}

func TestCastlingBlockedByAttackedTransitSquare(t *testing.T) {
	// Black rook on f8 controls f1, the square the white king crosses.
	pos, err := FromFEN("4kr2/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	for _, m := range GenerateLegal(pos) {
		if m.Flag() == FlagCastle {
			t.Errorf("castle through an attacked square should not be generated: %s", m.UCI())
		}
	}
}

func TestPawnPromotionEmitsFourMoves(t *testing.T) {
	pos, err := FromFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	count := 0
	seen := map[PieceType]bool{}
	for _, m := range GenerateLegal(pos) {
		if m.Flag() == FlagPromotion && m.From() == NewSquare(0, 6) {
			count++
			seen[m.Promoted()] = true
		}
	}
	if count != 4 {
		t.Fatalf("promotion moves from a7 = %d, want 4", count)
	}
	for _, pt := range []PieceType{Queen, Rook, Bishop, Knight} {
		if !seen[pt] {
			t.Errorf("missing promotion to %v", pt)
		}
	}
}

func TestPawnDoublePushOnlyFromStartRank(t *testing.T) {
	pos, err := FromFEN("4k3/8/8/8/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	from := NewSquare(4, 3) // e4, not the start rank
	for _, m := range GenerateLegal(pos) {
		if m.From() == from && (int(m.To())-int(from)) == 16 {
			t.Error("double push should not be available from a non-start rank")
		}
	}
}
