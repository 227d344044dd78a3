package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovePacksAndUnpacks(t *testing.T) {
	m := NewMove(SqE2, SqE4, WPawn, PieceNone, Normal, PtNone)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Piece(WPawn), m.MovedPiece())
	assert.Equal(t, PieceNone, m.CapturedPiece())
	assert.Equal(t, Normal, m.MoveType())
	assert.False(t, m.IsCapture())
	assert.Equal(t, "e2e4", m.StringUci())
}

func TestMoveCapture(t *testing.T) {
	m := NewMove(SqD4, SqE5, WPawn, BPawn, Normal, PtNone)
	assert.True(t, m.IsCapture())
	assert.Equal(t, Piece(BPawn), m.CapturedPiece())
}

func TestMovePromotion(t *testing.T) {
	m := NewMove(SqE7, SqE8, WPawn, PieceNone, Promotion, Queen)
	assert.Equal(t, Queen, m.PromotionType())
	assert.Equal(t, "e7e8q", m.StringUci())
}

func TestMoveNoneIsInvalid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.Equal(t, "no move", MoveNone.String())
}

func TestStringSanQuietAndCapture(t *testing.T) {
	quiet := NewMove(SqG1, SqF3, WKnight, PieceNone, Normal, PtNone)
	assert.Equal(t, "Nf3", quiet.StringSan())

	capture := NewMove(SqD4, SqE5, WPawn, BPawn, Normal, PtNone)
	assert.Equal(t, "dxe5", capture.StringSan())
}

func TestStringSanCastling(t *testing.T) {
	oo := NewMove(SqE1, SqG1, WKing, PieceNone, Castling, PtNone)
	assert.Equal(t, "O-O", oo.StringSan())

	ooo := NewMove(SqE1, SqC1, WKing, PieceNone, Castling, PtNone)
	assert.Equal(t, "O-O-O", ooo.StringSan())
}

func TestStringSanPromotion(t *testing.T) {
	m := NewMove(SqE7, SqE8, WPawn, PieceNone, Promotion, Queen)
	assert.Equal(t, "e8=Q", m.StringSan())
}
