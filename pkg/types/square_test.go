package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareRoundTrip(t *testing.T) {
	for f := FileA; f <= FileH; f++ {
		for r := Rank1; r <= Rank8; r++ {
			sq := MakeSquare(f, r)
			assert.Equal(t, f, sq.FileOf())
			assert.Equal(t, r, sq.RankOf())
		}
	}
}

func TestSquareOf(t *testing.T) {
	sq, ok := SquareOf("e4")
	require.True(t, ok)
	assert.Equal(t, SqE4, sq)
	assert.Equal(t, "e4", sq.String())

	_, ok = SquareOf("i9")
	assert.False(t, ok)
	_, ok = SquareOf("e")
	assert.False(t, ok)
}

func TestSquareToEdges(t *testing.T) {
	assert.Equal(t, SqNone, SqA1.To(West))
	assert.Equal(t, SqNone, SqA1.To(South))
	assert.Equal(t, SqB1, SqA1.To(East))
	assert.Equal(t, SqNone, SqH4.To(East))
	assert.Equal(t, SqA5, SqA4.To(North))
}

func TestSquareIsValid(t *testing.T) {
	assert.True(t, SqA1.IsValid())
	assert.True(t, SqH8.IsValid())
	assert.False(t, SqNone.IsValid())
}
