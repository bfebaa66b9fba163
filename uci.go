package chess

import "fmt"

var promotionLetters = map[byte]PieceType{
	'q': Queen, 'r': Rook, 'b': Bishop, 'n': Knight,
}

// ParseUCIMove resolves a UCI long-algebraic string ("e2e4", "e7e8q",
// "e1g1") against pos, filling in the capture/en-passant/castle/
// promotion flags a bare from/to pair can't carry. Returns NoMove and
// an error if the string is malformed or doesn't match any pseudo-
// legal move in pos — the boundary parser sanitizes, the core never
// guesses (spec.md §7).
func ParseUCIMove(pos *Position, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NoMove, fmt.Errorf("chess: malformed UCI move %q", s)
	}
	from, ok := ParseSquare(s[0:2])
	if !ok {
		return NoMove, fmt.Errorf("chess: malformed UCI move %q: bad from-square", s)
	}
	to, ok := ParseSquare(s[2:4])
	if !ok {
		return NoMove, fmt.Errorf("chess: malformed UCI move %q: bad to-square", s)
	}
	var wantPromo PieceType
	if len(s) == 5 {
		pt, ok := promotionLetters[s[4]]
		if !ok {
			return NoMove, fmt.Errorf("chess: malformed UCI move %q: bad promotion letter", s)
		}
		wantPromo = pt
	}

	candidates := GeneratePseudoLegal(pos, make([]Move, 0, 48))
	for _, m := range candidates {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Promoted() != wantPromo {
			continue
		}
		return m, nil
	}
	return NoMove, fmt.Errorf("chess: %q is not a pseudo-legal move in this position", s)
}
