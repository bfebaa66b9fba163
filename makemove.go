package chess

// castleRookSquares returns the rook's from/to squares for a castle
// move whose king lands on kingTo.
func castleRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	case C8:
		return A8, D8
	}
	panic("chess: castleRookSquares: bad king destination square")
}

// Make applies m to pos and returns the pre-move reversible state the
// caller must hand back to Unmake (spec.md §4.6). Assumes m is legal
// in pos; callers must check IsLegal first.
func Make(pos *Position, m Move) State {
	saved := pos.State
	us := pos.sideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	flag := m.Flag()
	movingPiece := pos.board[from]
	movingType := movingPiece.Type()

	key := pos.State.Key
	key ^= zobristTurnKey
	key ^= zobristCastle[pos.Castling]
	key ^= zobristEP[epZobristSlot(pos.EPSquare)]

	halfmove := pos.HalfmoveClock + 1
	fullmove := pos.FullmoveNumber
	if us == Black {
		fullmove++
	}
	newEP := SquareNone

	var captured Piece
	switch flag {
	case FlagCastle:
		// Castling never captures.
	case FlagEnPassant:
		capSq := epCapturedPawnSquare(us, to)
		captured = pos.remove(capSq)
		key ^= zobristPieces[captured][capSq]
	default:
		captured = pos.board[to]
		if captured != NoPiece {
			key ^= zobristPieces[captured][to]
			pos.remove(to)
		}
	}
	if captured != NoPiece || movingType == Pawn {
		halfmove = 0
	}

	if flag == FlagCastle {
		rookFrom, rookTo := castleRookSquares(to)
		rook := pos.remove(rookFrom)
		key ^= zobristPieces[rook][rookFrom]
		pos.place(rook.Color(), rook.Type(), rookTo)
		key ^= zobristPieces[rook][rookTo]
	} else if movingType == Pawn {
		diff := int(to) - int(from)
		if diff == 16 || diff == -16 {
			transit := Square((int(from) + int(to)) / 2)
			if PawnAttacks(us, transit)&pos.bb[them][Pawn] != 0 {
				newEP = transit
			}
		}
	}

	key ^= zobristPieces[movingPiece][from]
	pos.remove(from)
	placedType := movingType
	if flag == FlagPromotion {
		placedType = m.Promoted()
	}
	pos.place(us, placedType, to)
	key ^= zobristPieces[MakePiece(us, placedType)][to]

	newCastling := pos.Castling
	if movingType == King {
		if us == White {
			newCastling &^= CastleWK | CastleWQ
		} else {
			newCastling &^= CastleBK | CastleBQ
		}
	}
	if from == A1 || to == A1 {
		newCastling &^= CastleWQ
	}
	if from == H1 || to == H1 {
		newCastling &^= CastleWK
	}
	if from == A8 || to == A8 {
		newCastling &^= CastleBQ
	}
	if from == H8 || to == H8 {
		newCastling &^= CastleBK
	}
	key ^= zobristCastle[newCastling]
	key ^= zobristEP[epZobristSlot(newEP)]

	pos.Castling = newCastling
	pos.EPSquare = newEP
	pos.HalfmoveClock = halfmove
	pos.FullmoveNumber = fullmove
	pos.Captured = captured
	pos.State.Key = key
	pos.sideToMove = them

	pos.refreshCheckState()

	idx := pos.hist.Push(pos.State)
	pos.State.prevIndex = idx

	return saved
}

// Unmake reverses m, restoring pos to the exact state it was in
// before the matching Make call. saved must be the State Make
// returned for this move.
func Unmake(pos *Position, m Move, saved State) {
	us := pos.sideToMove.Other()
	them := pos.sideToMove
	from, to := m.From(), m.To()
	flag := m.Flag()

	placed := pos.board[to]
	pos.remove(to)
	originalType := placed.Type()
	if flag == FlagPromotion {
		originalType = Pawn
	}
	pos.place(us, originalType, from)

	switch flag {
	case FlagCastle:
		rookFrom, rookTo := castleRookSquares(to)
		rook := pos.remove(rookTo)
		pos.place(rook.Color(), rook.Type(), rookFrom)
	case FlagEnPassant:
		capSq := epCapturedPawnSquare(us, to)
		pos.place(them, Pawn, capSq)
	default:
		if captured := pos.Captured; captured != NoPiece {
			pos.place(captured.Color(), captured.Type(), to)
		}
	}

	pos.State = saved
	pos.sideToMove = us
	pos.hist.Pop()
	pos.refreshCheckState()
}
