package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPiecePacking(t *testing.T) {
	p := MakePiece(Black, Rook)
	assert.Equal(t, Black, p.Color())
	assert.Equal(t, Rook, p.Type())
	assert.Equal(t, "r", p.String())
}

func TestColorOther(t *testing.T) {
	assert.Equal(t, Black, White.Other())
	assert.Equal(t, White, Black.Other())
}

func TestSquareFileRank(t *testing.T) {
	sq := NewSquare(4, 3)
	assert.Equal(t, 4, sq.File())
	assert.Equal(t, 3, sq.Rank())
	assert.Equal(t, "e4", sq.String())

	parsed, ok := ParseSquare("e4")
	assert.True(t, ok)
	assert.Equal(t, sq, parsed)
}

func TestCastlingRightsString(t *testing.T) {
	assert.Equal(t, "-", CastleNone.String())
	assert.Equal(t, "KQkq", CastleAll.String())
}

func TestMoveUCIRendersPromotion(t *testing.T) {
	m := NewPromotionMove(NewSquare(0, 6), NewSquare(0, 7), Queen)
	assert.Equal(t, "a7a8q", m.UCI())
}
