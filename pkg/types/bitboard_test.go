package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPushPopHas(t *testing.T) {
	var b Bitboard
	b = b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.Equal(t, 1, b.PopCount())
	b = b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))
	assert.Equal(t, 0, b.PopCount())
}

func TestBitboardLsbMsb(t *testing.T) {
	b := SquareBb(SqA1) | SquareBb(SqH8)
	assert.Equal(t, SqA1, b.Lsb())
	assert.Equal(t, SqH8, b.Msb())
	assert.Equal(t, SqNone, Bitboard(0).Lsb())
	assert.Equal(t, SqNone, Bitboard(0).Msb())
}

func TestShiftBitboardEdges(t *testing.T) {
	fileH := SquareBb(SqH4)
	assert.Equal(t, Bitboard(0), ShiftBitboard(fileH, East))
	fileA := SquareBb(SqA4)
	assert.Equal(t, Bitboard(0), ShiftBitboard(fileA, West))
	assert.Equal(t, SquareBb(SqA5), ShiftBitboard(fileA, North))
}

func TestRookAttacksOpenBoard(t *testing.T) {
	att := GetAttacksBb(Rook, SqA1, BbZero)
	assert.Equal(t, 14, att.PopCount())
	assert.True(t, att.Has(SqA8))
	assert.True(t, att.Has(SqH1))
}

func TestRookAttacksBlocked(t *testing.T) {
	occ := SquareBb(SqA4)
	att := GetAttacksBb(Rook, SqA1, occ)
	assert.True(t, att.Has(SqA4))
	assert.False(t, att.Has(SqA5))
}

func TestBishopAttacksOpenBoard(t *testing.T) {
	att := GetAttacksBb(Bishop, SqD4, BbZero)
	assert.True(t, att.Has(SqA1))
	assert.True(t, att.Has(SqG7))
	assert.False(t, att.Has(SqD5))
}

func TestQueenAttacksCombinesRookAndBishop(t *testing.T) {
	queen := GetAttacksBb(Queen, SqD4, BbZero)
	rook := GetAttacksBb(Rook, SqD4, BbZero)
	bishop := GetAttacksBb(Bishop, SqD4, BbZero)
	assert.Equal(t, rook|bishop, queen)
}

func TestKnightAttacksCorner(t *testing.T) {
	att := GetPseudoAttacks(Knight, SqA1)
	assert.Equal(t, 2, att.PopCount())
	assert.True(t, att.Has(SqB3))
	assert.True(t, att.Has(SqC2))
}

func TestKingAttacksCenter(t *testing.T) {
	att := GetPseudoAttacks(King, SqE4)
	assert.Equal(t, 8, att.PopCount())
}

func TestPawnAttacks(t *testing.T) {
	att := GetPawnAttacks(White, SqE4)
	assert.True(t, att.Has(SqD5))
	assert.True(t, att.Has(SqF5))
	assert.Equal(t, 2, att.PopCount())
}

func TestIntermediate(t *testing.T) {
	between := Intermediate(SqA1, SqA4)
	assert.True(t, between.Has(SqA2))
	assert.True(t, between.Has(SqA3))
	assert.False(t, between.Has(SqA1))
	assert.False(t, between.Has(SqA4))
}
