package chess

import "fmt"

// State is the reversible bundle make/unmake swap in and out of the
// position (spec.md §3). prevIndex threads through History.
type State struct {
	Key            uint64
	EPSquare       Square
	Castling       CastlingRights
	HalfmoveClock  int
	FullmoveNumber int
	Captured       Piece
	prevIndex      int
}

// Position is the mutable board: a mailbox for O(1) piece lookup by
// square and twelve bitboards (six piece types times two colors, plus
// the two per-color unions at index 0) for bit-parallel move
// generation. king[c] caches lsb(bb[c][King]) so check detection never
// needs a bitboard scan.
type Position struct {
	board      [64]Piece
	bb         [2][7]Bitboard // bb[c][0] = union of all of c's pieces
	king       [2]Square
	sideToMove Color
	State

	checkers Bitboard
	pinners  Bitboard
	blockers Bitboard

	hist *History
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	pos, err := FromFEN(StartFEN)
	if err != nil {
		panic("chess: corrupt built-in starting FEN: " + err.Error())
	}
	return pos
}

// Occupancy returns the union of every piece on the board.
func (pos *Position) Occupancy() Bitboard {
	return pos.bb[White][0] | pos.bb[Black][0]
}

// PieceAt returns the piece occupying sq, or NoPiece.
func (pos *Position) PieceAt(sq Square) Piece { return pos.board[sq] }

// SideToMove returns the color to move.
func (pos *Position) SideToMove() Color { return pos.sideToMove }

// KingSquare returns the square of c's king.
func (pos *Position) KingSquare(c Color) Square { return pos.king[c] }

// Checkers returns the side-to-move king's current attackers.
func (pos *Position) Checkers() Bitboard { return pos.checkers }

// InCheck reports whether the side to move is in check.
func (pos *Position) InCheck() bool { return pos.checkers != 0 }

// Key returns the incrementally-maintained Zobrist key.
func (pos *Position) Key() uint64 { return pos.State.Key }

// VerifyKey reports whether the incrementally-maintained key still
// agrees with a from-scratch recomputation. PosOK makes the same
// comparison as one of its invariant checks; hosts can call this after a
// suspicious sequence of make/unmake calls during development.
func (pos *Position) VerifyKey() bool {
	return pos.State.Key == FullKey(pos)
}

func (pos *Position) place(c Color, pt PieceType, sq Square) {
	p := MakePiece(c, pt)
	pos.board[sq] = p
	pos.bb[c][pt] |= SquareMask(sq)
	pos.bb[c][0] |= SquareMask(sq)
	if pt == King {
		pos.king[c] = sq
	}
}

func (pos *Position) remove(sq Square) Piece {
	p := pos.board[sq]
	if p == NoPiece {
		return NoPiece
	}
	c, pt := p.Color(), p.Type()
	pos.board[sq] = NoPiece
	pos.bb[c][pt] &^= SquareMask(sq)
	pos.bb[c][0] &^= SquareMask(sq)
	return p
}

// refreshCheckState recomputes checkers/pinners/blockers for the
// current side to move. Called after every make/unmake so legality
// filtering always sees up-to-date derived sets.
func (pos *Position) refreshCheckState() {
	setCheckersPinnersBlockers(pos)
}

// Clone returns a deep, independent copy of pos, including its own
// copy of the history. Used by tests that want to compare pre/post-make
// state without an explicit unmake.
func (pos *Position) Clone() *Position {
	cp := *pos
	cp.hist = nil
	if pos.hist != nil {
		h := *pos.hist
		h.states = append([]State(nil), pos.hist.states...)
		cp.hist = &h
	}
	return &cp
}

// String renders an ASCII board for debugging, rank 8 first.
func (pos *Position) String() string {
	s := ""
	for r := 7; r >= 0; r-- {
		s += fmt.Sprintf("%d ", r+1)
		for f := 0; f < 8; f++ {
			s += pos.board[NewSquare(f, r)].String() + " "
		}
		s += "\n"
	}
	s += "  a b c d e f g h\n"
	s += fmt.Sprintf("side=%s castle=%s ep=%s key=%016x\n",
		pos.sideToMove, pos.Castling, pos.EPSquare, pos.State.Key)
	return s
}
