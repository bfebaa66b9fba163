package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// positionSnapshot copies every field make/unmake is responsible for,
// so cmp.Diff reports a useful mismatch instead of comparing pointer
// fields that always differ (the *History shared by both sides).
type positionSnapshot struct {
	Board      [64]Piece
	BB         [2][7]Bitboard
	King       [2]Square
	SideToMove Color
	State      State
}

func snapshot(pos *Position) positionSnapshot {
	return positionSnapshot{
		Board:      pos.board,
		BB:         pos.bb,
		King:       pos.king,
		SideToMove: pos.sideToMove,
		State:      pos.State,
	}
}

var fensUnderTest = []string{
	StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
}

func TestMakeUnmakeIsIdentity(t *testing.T) {
	for _, fen := range fensUnderTest {
		pos, err := FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN(%q): %v", fen, err)
		}
		before := snapshot(pos)
		for _, m := range GenerateLegal(pos) {
			saved := Make(pos, m)
			Unmake(pos, m, saved)
			after := snapshot(pos)
			if diff := cmp.Diff(before, after, cmp.AllowUnexported(State{})); diff != "" {
				t.Fatalf("fen=%q move=%s: unmake(make(pos)) != pos:\n%s", fen, m.UCI(), diff)
			}
		}
	}
}

func TestMakeKeepsIncrementalKeyConsistent(t *testing.T) {
	for _, fen := range fensUnderTest {
		pos, err := FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN(%q): %v", fen, err)
		}
		for _, m := range GenerateLegal(pos) {
			saved := Make(pos, m)
			if pos.State.Key != FullKey(pos) {
				t.Errorf("fen=%q move=%s: incremental key %#x != full_key %#x", fen, m.UCI(), pos.State.Key, FullKey(pos))
			}
			Unmake(pos, m, saved)
		}
	}
}

func TestMoveEncodingLaws(t *testing.T) {
	e2, e4 := NewSquare(4, 1), NewSquare(4, 3)
	m := NewMove(e2, e4)
	if m.From() != e2 || m.To() != e4 {
		t.Errorf("NewMove round trip: from=%v to=%v", m.From(), m.To())
	}
	a7, a8 := NewSquare(0, 6), A8
	promo := NewPromotionMove(a7, a8, Queen)
	if promo.Promoted() != Queen {
		t.Errorf("Promoted() = %v, want Queen", promo.Promoted())
	}
	if promo.From() != a7 || promo.To() != a8 {
		t.Errorf("promotion move from/to mismatch: from=%v to=%v", promo.From(), promo.To())
	}
}
