package chess

// GeneratePseudoLegal appends every pseudo-legal move for the side to
// move to moves and returns the extended slice. Emission order is
// fixed (spec.md §4.4) so callers can diff move lists deterministically
// after a square-ascending sort: king, sliders, knights, pawn pushes
// (each pawn's single push directly followed by its double push), pawn
// captures (left then right), en-passant, castling.
func GeneratePseudoLegal(pos *Position, moves []Move) []Move {
	us := pos.sideToMove
	own := pos.bb[us][0]
	occ := pos.Occupancy()

	moves = genKingMoves(pos, us, own, occ, moves)
	if pos.checkers.Count() >= 2 {
		return moves
	}
	moves = genSliderMoves(pos, us, Bishop, own, occ, moves)
	moves = genSliderMoves(pos, us, Rook, own, occ, moves)
	moves = genSliderMoves(pos, us, Queen, own, occ, moves)
	moves = genKnightMoves(pos, us, own, moves)
	moves = genPawnPushes(pos, us, occ, moves)
	moves = genPawnCaptures(pos, us, own, occ, moves)
	moves = genEnPassant(pos, us, moves)
	moves = genCastling(pos, us, occ, moves)
	return moves
}

func genKingMoves(pos *Position, us Color, own, occ Bitboard, moves []Move) []Move {
	from := pos.king[us]
	targets := KingAttacks(from) &^ own
	for t := targets; t != 0; {
		to := t.PopLSB()
		moves = append(moves, NewMove(from, to))
	}
	return moves
}

func genSliderMoves(pos *Position, us Color, pt PieceType, own, occ Bitboard, moves []Move) []Move {
	for bb := pos.bb[us][pt]; bb != 0; {
		from := bb.PopLSB()
		var attacks Bitboard
		switch pt {
		case Bishop:
			attacks = BishopAttacks(from, occ)
		case Rook:
			attacks = RookAttacks(from, occ)
		case Queen:
			attacks = QueenAttacks(from, occ)
		}
		targets := attacks &^ own
		for t := targets; t != 0; {
			to := t.PopLSB()
			moves = append(moves, NewMove(from, to))
		}
	}
	return moves
}

func genKnightMoves(pos *Position, us Color, own Bitboard, moves []Move) []Move {
	for bb := pos.bb[us][Knight]; bb != 0; {
		from := bb.PopLSB()
		targets := KnightAttacks(from) &^ own
		for t := targets; t != 0; {
			to := t.PopLSB()
			moves = append(moves, NewMove(from, to))
		}
	}
	return moves
}

var promotionOrder = [4]PieceType{Queen, Rook, Bishop, Knight}

func emitPawnMove(moves []Move, from, to Square, promoteRank int) []Move {
	if to.Rank() == promoteRank {
		for _, pt := range promotionOrder {
			moves = append(moves, NewPromotionMove(from, to, pt))
		}
		return moves
	}
	return append(moves, NewMove(from, to))
}

func genPawnPushes(pos *Position, us Color, occ Bitboard, moves []Move) []Move {
	up := 8
	promoteRank := 7
	startRank := 1
	if us == Black {
		up = -8
		promoteRank = 0
		startRank = 6
	}
	for bb := pos.bb[us][Pawn]; bb != 0; {
		from := bb.PopLSB()
		to := Square(int(from) + up)
		if to >= 64 || occ.Occupied(to) {
			continue
		}
		moves = emitPawnMove(moves, from, to, promoteRank)
		if from.Rank() == startRank {
			to2 := Square(int(to) + up)
			if !occ.Occupied(to2) {
				moves = append(moves, NewMove(from, to2))
			}
		}
	}
	return moves
}

func genPawnCaptures(pos *Position, us Color, own, occ Bitboard, moves []Move) []Move {
	them := us.Other()
	enemy := pos.bb[them][0]
	promoteRank := 7
	if us == Black {
		promoteRank = 0
	}
	for bb := pos.bb[us][Pawn]; bb != 0; {
		from := bb.PopLSB()
		targets := PawnAttacks(us, from) & enemy
		for t := targets; t != 0; {
			to := t.PopLSB()
			moves = emitPawnMove(moves, from, to, promoteRank)
		}
	}
	return moves
}

func genEnPassant(pos *Position, us Color, moves []Move) []Move {
	if pos.EPSquare == SquareNone {
		return moves
	}
	attackers := PawnAttacks(us.Other(), pos.EPSquare) & pos.bb[us][Pawn]
	for a := attackers; a != 0; {
		from := a.PopLSB()
		moves = append(moves, NewMoveFlags(from, pos.EPSquare, FlagEnPassant))
	}
	return moves
}

func genCastling(pos *Position, us Color, occ Bitboard, moves []Move) []Move {
	if pos.InCheck() {
		return moves
	}
	them := us.Other()
	if us == White {
		if pos.Castling.Has(CastleWK) && !occ.Occupied(F1) && !occ.Occupied(G1) &&
			!squareAttacked(pos, occ, F1, them) {
			moves = append(moves, NewMoveFlags(E1, G1, FlagCastle))
		}
		if pos.Castling.Has(CastleWQ) && !occ.Occupied(D1) && !occ.Occupied(C1) && !occ.Occupied(B1) &&
			!squareAttacked(pos, occ, D1, them) {
			moves = append(moves, NewMoveFlags(E1, C1, FlagCastle))
		}
	} else {
		if pos.Castling.Has(CastleBK) && !occ.Occupied(F8) && !occ.Occupied(G8) &&
			!squareAttacked(pos, occ, F8, them) {
			moves = append(moves, NewMoveFlags(E8, G8, FlagCastle))
		}
		if pos.Castling.Has(CastleBQ) && !occ.Occupied(D8) && !occ.Occupied(C8) && !occ.Occupied(B8) &&
			!squareAttacked(pos, occ, D8, them) {
			moves = append(moves, NewMoveFlags(E8, C8, FlagCastle))
		}
	}
	return moves
}
