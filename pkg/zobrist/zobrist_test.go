package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/franckopp/chesscore/pkg/types"
)

func TestPieceSquareKeysAreDistinct(t *testing.T) {
	seen := make(map[Key]bool)
	for p := Piece(1); p < PieceLength; p++ {
		for s := SqA1; s < SqLength; s++ {
			k := PieceSquare(p, s)
			assert.False(t, seen[k], "duplicate key for piece %v square %v", p, s)
			seen[k] = true
		}
	}
}

func TestCastlingKeysAreStable(t *testing.T) {
	a := Castling(CastlingWhiteOO)
	b := Castling(CastlingWhiteOO)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, Castling(CastlingBlackOOO))
}

func TestSideToMoveIsNonZero(t *testing.T) {
	assert.NotEqual(t, Key(0), SideToMove())
}

func TestEnPassantFileKeysAreDistinct(t *testing.T) {
	seen := make(map[Key]bool)
	for f := FileA; f < FileLength; f++ {
		k := EnPassantFile(f)
		assert.False(t, seen[k])
		seen[k] = true
	}
}
