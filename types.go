package chess

import "fmt"

// NOTE: Color, PieceType, Piece, Square and Move are all small integers
// whose numeric layout is depended upon by the bit tricks throughout
// this package. Changing a constant's value changes the wire format.

// Color is the side to move or the owner of a piece.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color. Colors are numbered so that
// flipping is a single XOR.
func (c Color) Other() Color {
	return c ^ 1
}

// String implements fmt.Stringer and returns the color's FEN letter.
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType is a kind of chess piece, independent of color.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// AllPieceTypes in the fixed order used by move generation (§4.4):
// king, sliders, knight, pawn.
var AllPieceTypes = [6]PieceType{King, Queen, Rook, Bishop, Knight, Pawn}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	}
	return ""
}

// Piece is a colored piece type, packed so that color = piece >> 3 and
// type = piece & 7 (spec.md §3). Zero is "empty".
type Piece uint8

// NoPiece is the empty-square sentinel.
const NoPiece Piece = 0

// MakePiece packs a color and type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(uint8(c)<<3 | uint8(pt))
}

// Color returns the piece's color. Only meaningful when p != NoPiece.
func (p Piece) Color() Color {
	return Color(p >> 3)
}

// Type returns the piece's type, or NoPieceType for NoPiece.
func (p Piece) Type() PieceType {
	return PieceType(p & 7)
}

func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	s := p.Type().String()
	if p.Color() == White {
		return upper(s)
	}
	return s
}

func upper(s string) string {
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

var pieceFENChars = map[byte]Piece{
	'P': MakePiece(White, Pawn), 'N': MakePiece(White, Knight),
	'B': MakePiece(White, Bishop), 'R': MakePiece(White, Rook),
	'Q': MakePiece(White, Queen), 'K': MakePiece(White, King),
	'p': MakePiece(Black, Pawn), 'n': MakePiece(Black, Knight),
	'b': MakePiece(Black, Bishop), 'r': MakePiece(Black, Rook),
	'q': MakePiece(Black, Queen), 'k': MakePiece(Black, King),
}

var fenCharsByPiece = func() map[Piece]byte {
	m := make(map[Piece]byte, len(pieceFENChars))
	for ch, p := range pieceFENChars {
		m[p] = ch
	}
	return m
}()

// Square is a board index in [0,63]: file in the low 3 bits, rank in
// bits 3-5. A1 = 0, H8 = 63.
type Square uint8

// SquareNone is the "no square" sentinel (en-passant absence, invalid
// lookups).
const SquareNone Square = 64

// NewSquare builds a square from 0-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank<<3 | file)
}

func (s Square) File() int { return int(s) & 7 }
func (s Square) Rank() int { return int(s) >> 3 }

func (s Square) String() string {
	if s == SquareNone {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(s.File()), '1'+byte(s.Rank()))
}

var squareNames = func() map[string]Square {
	m := make(map[string]Square, 64)
	for sq := Square(0); sq < 64; sq++ {
		m[sq.String()] = sq
	}
	return m
}()

// ParseSquare parses algebraic square notation ("e4"). Returns
// SquareNone and false on failure.
func ParseSquare(s string) (Square, bool) {
	sq, ok := squareNames[s]
	return sq, ok
}

// Named squares used by castling and pawn-rule logic.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// CastlingRights packs the four independent rights WK, WQ, BK, BQ into
// the low four bits.
type CastlingRights uint8

const (
	CastleWK CastlingRights = 1 << 0
	CastleWQ CastlingRights = 1 << 1
	CastleBK CastlingRights = 1 << 2
	CastleBQ CastlingRights = 1 << 3

	CastleNone CastlingRights = 0
	CastleAll  CastlingRights = CastleWK | CastleWQ | CastleBK | CastleBQ
)

// Has reports whether every bit in mask is set.
func (cr CastlingRights) Has(mask CastlingRights) bool {
	return cr&mask == mask
}

func (cr CastlingRights) String() string {
	if cr == CastleNone {
		return "-"
	}
	out := make([]byte, 0, 4)
	if cr.Has(CastleWK) {
		out = append(out, 'K')
	}
	if cr.Has(CastleWQ) {
		out = append(out, 'Q')
	}
	if cr.Has(CastleBK) {
		out = append(out, 'k')
	}
	if cr.Has(CastleBQ) {
		out = append(out, 'q')
	}
	return string(out)
}

// MoveFlag distinguishes the four move shapes the 16-bit Move encoding
// can represent.
type MoveFlag uint8

const (
	FlagNormal    MoveFlag = 0
	FlagEnPassant MoveFlag = 1
	FlagCastle    MoveFlag = 2
	FlagPromotion MoveFlag = 3
)

// Move is a 16-bit packed move (spec.md §3):
//
//	bits 0-5:   from square
//	bits 6-11:  to square
//	bits 12-13: promoted piece type minus Knight, meaningful only
//	            when flags == FlagPromotion
//	bits 14-15: flags
type Move uint16

// NullMove (from == to == A1) and NoMove (from == to == H8) never
// occur as legal moves; both are reserved sentinels.
const (
	NullMove Move = 0
	NoMove   Move = 0x0FFF // from=H8(63) to=H8(63), flags=0
)

// NewMove builds a plain (non-promotion, non-special) move.
func NewMove(from, to Square) Move {
	return Move(uint16(from) | uint16(to)<<6)
}

// NewMoveFlags builds a move carrying the given flag.
func NewMoveFlags(from, to Square, flag MoveFlag) Move {
	return Move(uint16(from) | uint16(to)<<6 | uint16(flag)<<14)
}

// NewPromotionMove builds a promotion move; pt must be one of
// Knight, Bishop, Rook, Queen.
func NewPromotionMove(from, to Square, pt PieceType) Move {
	offset := uint16(pt - Knight)
	return Move(uint16(from) | uint16(to)<<6 | offset<<12 | uint16(FlagPromotion)<<14)
}

func (m Move) From() Square { return Square(m & 0x3F) }
func (m Move) To() Square   { return Square((m >> 6) & 0x3F) }
func (m Move) Flag() MoveFlag {
	return MoveFlag(m >> 14)
}

// Promoted returns the promotion piece type, or NoPieceType if this
// isn't a promotion move.
func (m Move) Promoted() PieceType {
	if m.Flag() != FlagPromotion {
		return NoPieceType
	}
	return Knight + PieceType((m>>12)&3)
}

// UCI renders the move in long algebraic notation: "f1f2[q|r|b|n]".
// NullMove and NoMove have no UCI form and render as diagnostics only.
func (m Move) UCI() string {
	if m == NullMove {
		return "null"
	}
	if m == NoMove {
		return "none"
	}
	s := m.From().String() + m.To().String()
	if pt := m.Promoted(); pt != NoPieceType {
		s += pt.String()
	}
	return s
}

func (m Move) String() string {
	return m.UCI()
}
