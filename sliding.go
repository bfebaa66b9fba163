package chess

import "github.com/kvchess/chesscore/bitflip"

// Hyperbola-Quintessence sliding attack generation (spec.md §4.2). For
// a slider on square s along a line mask with occupancy o:
//
//	forward  = o - 2*mask(s)
//	reverse  = reverse(reverse(o) - 2*reverse(mask(s)))
//	attacks  = (forward ^ reverse) & line
//
// File, diagonal and antidiagonal attacks are computed this way on
// every call. Rank attacks instead use the precomputed 512-entry lookup in
// rankattacks.go, since reversing within a single byte is cheaper as
// a table than as a bit trick.

func hyperbolaQuintessence(sq Square, occ, mask Bitboard) Bitboard {
	o := uint64(occ) & uint64(mask)
	s := uint64(SquareMask(sq))
	forward := o - 2*s
	reverseO := bitflip.ByteSwap64(o)
	reverseS := bitflip.ByteSwap64(s)
	reverse := bitflip.ByteSwap64(reverseO - 2*reverseS)
	return Bitboard(forward^reverse) & mask
}

// FileAttacks returns the squares a rook-like slider on sq attacks
// along its file, given full board occupancy.
func FileAttacks(sq Square, occ Bitboard) Bitboard {
	return hyperbolaQuintessence(sq, occ, bbFile[sq])
}

// RankAttacksFrom returns the squares a rook-like slider on sq attacks
// along its rank, given full board occupancy.
func RankAttacksFrom(sq Square, occ Bitboard) Bitboard {
	return rankAttackFromOccupancy(sq, occ)
}

// DiagAttacks returns the squares a bishop-like slider on sq attacks
// along its a1-h8-direction diagonal.
func DiagAttacks(sq Square, occ Bitboard) Bitboard {
	return hyperbolaQuintessence(sq, occ, bbDiag[sq])
}

// AntiDiagAttacks returns the squares a bishop-like slider on sq
// attacks along its h1-a8-direction diagonal.
func AntiDiagAttacks(sq Square, occ Bitboard) Bitboard {
	return hyperbolaQuintessence(sq, occ, bbAnti[sq])
}

// BishopAttacks is diag XOR antidiag (the two never overlap beyond sq
// itself, which both functions exclude).
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	return DiagAttacks(sq, occ) | AntiDiagAttacks(sq, occ)
}

// RookAttacks is file XOR rank.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	return FileAttacks(sq, occ) | RankAttacksFrom(sq, occ)
}

// QueenAttacks is bishop XOR rook.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}

// KnightAttacks returns the fixed knight-move targets from sq.
func KnightAttacks(sq Square) Bitboard { return bbKnightAttacks[sq] }

// KingAttacks returns the fixed king-move targets from sq.
func KingAttacks(sq Square) Bitboard { return bbKingAttacks[sq] }

// PawnAttacks returns the diagonal capture squares for a pawn of
// color c standing on sq.
func PawnAttacks(c Color, sq Square) Bitboard { return bbPawnAttacks[c][sq] }
