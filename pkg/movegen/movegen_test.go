package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franckopp/chesscore/pkg/position"

	. "github.com/franckopp/chesscore/pkg/types"
)

func countMoves(t *testing.T, fen string) int {
	t.Helper()
	pos, err := position.NewFromFen(fen)
	require.NoError(t, err)
	return LegalMoves(pos).Len()
}

func hasMoveTo(moves []Move, from, to Square) bool {
	for _, m := range moves {
		if m.From() == from && m.To() == to {
			return true
		}
	}
	return false
}

func TestStartPositionHas20Moves(t *testing.T) {
	assert.Equal(t, 20, countMoves(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"))
}

func TestPinnedPieceCannotLeaveLine(t *testing.T) {
	pos, err := position.NewFromFen("4k3/8/8/8/8/6b1/5P2/4K3 w - - 0 1")
	require.NoError(t, err)
	moves := LegalMoves(pos)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() == SqF2 {
			assert.Equal(t, SqG3, m.To(), "pinned pawn may only capture the pinning bishop")
		}
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	pos, err := position.NewFromFen("4k3/8/4r3/8/8/5n2/8/4K3 w - - 0 1")
	require.NoError(t, err)
	moves := LegalMoves(pos)
	for i := 0; i < moves.Len(); i++ {
		assert.Equal(t, Piece(WKing), moves.At(i).MovedPiece())
	}
}

func TestCheckMustBeBlockedOrCaptured(t *testing.T) {
	pos, err := position.NewFromFen("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	require.True(t, pos.HasCheck())
	moves := LegalMoves(pos)
	dests := make(map[Square]bool)
	for i := 0; i < moves.Len(); i++ {
		dests[moves.At(i).To()] = true
	}
	assert.True(t, dests[SqE2], "king should be able to capture the checking rook")
	assert.False(t, dests[SqD2], "d2 stays attacked by the rook along the second rank")
	assert.False(t, dests[SqF2], "f2 stays attacked by the rook along the second rank")
	assert.True(t, dests[SqD1] || dests[SqF1])
}

func TestCastlingAvailableWhenClear(t *testing.T) {
	pos, err := position.NewFromFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	moves := LegalMoves(pos)
	var ucis []string
	for i := 0; i < moves.Len(); i++ {
		ucis = append(ucis, moves.At(i).StringUci())
	}
	assert.Contains(t, ucis, "e1g1")
	assert.Contains(t, ucis, "e1c1")
}

func TestCastlingBlockedThroughCheck(t *testing.T) {
	pos, err := position.NewFromFen("r3k2r/8/8/8/8/7b/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	moves := LegalMoves(pos)
	var ucis []string
	for i := 0; i < moves.Len(); i++ {
		ucis = append(ucis, moves.At(i).StringUci())
	}
	assert.NotContains(t, ucis, "e1g1", "f1 is attacked by the bishop on h3")
	assert.Contains(t, ucis, "e1c1")
}

func TestEnPassantCapture(t *testing.T) {
	pos, err := position.NewFromFen("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	moves := LegalMoves(pos)
	found := false
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).MoveType() == EnPassant {
			found = true
		}
	}
	assert.True(t, found)
}

func TestEnPassantDiscoveredCheckForbidden(t *testing.T) {
	pos, err := position.NewFromFen("4k3/8/8/K2pP2r/8/8/8/8 w - d6 0 1")
	require.NoError(t, err)
	moves := LegalMoves(pos)
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, EnPassant, moves.At(i).MoveType(), "en passant would expose own king to the rook")
	}
}

func TestPromotionGeneratesFourMoves(t *testing.T) {
	pos, err := position.NewFromFen("8/4P3/8/8/8/8/8/4K2k w - - 0 1")
	require.NoError(t, err)
	moves := LegalMoves(pos)
	count := 0
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).From() == SqE7 {
			count++
		}
	}
	assert.Equal(t, 4, count)
}

func TestParseMoveFindsLegalMove(t *testing.T) {
	pos, err := position.NewFromFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	m, err := ParseMove(pos, "e2e4")
	require.NoError(t, err)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
}

func TestParseMoveRejectsIllegalText(t *testing.T) {
	pos, err := position.NewFromFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	_, err = ParseMove(pos, "e2e5")
	assert.Error(t, err)
}

func TestLegalCapturesAndNonCapturesPartitionLegalMoves(t *testing.T) {
	pos, err := position.NewFromFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, err)
	all := LegalMoves(pos)
	caps := LegalCaptures(pos)
	quiet := LegalNonCaptures(pos)
	assert.Equal(t, all.Len(), caps.Len()+quiet.Len())
	assert.True(t, caps.Len() > 0)
	for i := 0; i < caps.Len(); i++ {
		assert.True(t, caps.At(i).IsCapture())
	}
	for i := 0; i < quiet.Len(); i++ {
		assert.False(t, quiet.At(i).IsCapture())
	}
}

func TestHasLegalMoveFalseOnStalemate(t *testing.T) {
	pos, err := position.NewFromFen("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.False(t, HasLegalMove(pos))
	assert.False(t, pos.HasCheck())
}
