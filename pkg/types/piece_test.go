package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePieceRoundTrip(t *testing.T) {
	p := MakePiece(White, Knight)
	assert.Equal(t, White, p.ColorOf())
	assert.Equal(t, Knight, p.TypeOf())
	assert.True(t, p.IsValid())

	p = MakePiece(Black, Queen)
	assert.Equal(t, Black, p.ColorOf())
	assert.Equal(t, Queen, p.TypeOf())
}

func TestMakePieceNoneType(t *testing.T) {
	assert.Equal(t, PieceNone, MakePiece(White, PtNone))
}

func TestPieceCharRoundTrip(t *testing.T) {
	for _, p := range []Piece{WKing, WPawn, WKnight, WBishop, WRook, WQueen,
		BKing, BPawn, BKnight, BBishop, BRook, BQueen} {
		c := p.Char()
		got, ok := PieceFromChar(c)
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}
}

func TestPieceFromCharRejectsJunk(t *testing.T) {
	_, ok := PieceFromChar(' ')
	assert.False(t, ok)
	_, ok = PieceFromChar('-')
	assert.False(t, ok)
	_, ok = PieceFromChar('z')
	assert.False(t, ok)
}

func TestPieceValueOf(t *testing.T) {
	assert.Equal(t, 900, WQueen.ValueOf())
	assert.Equal(t, 0, WKing.ValueOf())
}
