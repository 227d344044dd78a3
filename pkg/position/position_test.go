package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franckopp/chesscore/pkg/zobrist"

	. "github.com/franckopp/chesscore/pkg/types"
)

func TestNewIsStartPosition(t *testing.T) {
	p := New()
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, startFen, p.Fen())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		startFen,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/8/4K3/8 w - - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
	}
	for _, fen := range fens {
		p, err := NewFromFen(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.Fen())
	}
}

func TestFenRejectsMalformedBoard(t *testing.T) {
	_, err := NewFromFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1")
	assert.Error(t, err)

	_, err = NewFromFen("rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.Error(t, err)
}

func TestMakeUnmakeRestoresFenAndKey(t *testing.T) {
	p := New()
	key0 := p.ZobristKey()
	fen0 := p.Fen()

	m := NewMove(SqE2, SqE4, WPawn, PieceNone, Normal, PtNone)
	p.Make(m)
	assert.NotEqual(t, key0, p.ZobristKey())
	assert.Equal(t, Black, p.NextPlayer())
	assert.Equal(t, SqE3, p.EnPassantSquare())

	p.Unmake()
	assert.Equal(t, key0, p.ZobristKey())
	assert.Equal(t, fen0, p.Fen())
}

func TestMakeUnmakeCapture(t *testing.T) {
	p, err := NewFromFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, err)
	fen0 := p.Fen()
	key0 := p.ZobristKey()

	m := NewMove(SqE4, SqD5, WPawn, BPawn, Normal, PtNone)
	p.Make(m)
	assert.Equal(t, PieceNone, p.PieceAt(SqE4))
	assert.Equal(t, Piece(WPawn), p.PieceAt(SqD5))
	assert.Equal(t, 0, p.HalfMoveClock())

	p.Unmake()
	assert.Equal(t, fen0, p.Fen())
	assert.Equal(t, key0, p.ZobristKey())
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	p, err := NewFromFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	fen0 := p.Fen()
	key0 := p.ZobristKey()

	m := NewMove(SqE5, SqD6, WPawn, BPawn, EnPassant, PtNone)
	p.Make(m)
	assert.Equal(t, PieceNone, p.PieceAt(SqD5))
	assert.Equal(t, Piece(WPawn), p.PieceAt(SqD6))

	p.Unmake()
	assert.Equal(t, fen0, p.Fen())
	assert.Equal(t, key0, p.ZobristKey())
}

func TestMakeUnmakeCastling(t *testing.T) {
	p, err := NewFromFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	fen0 := p.Fen()
	key0 := p.ZobristKey()

	m := NewMove(SqE1, SqG1, WKing, PieceNone, Castling, PtNone)
	p.Make(m)
	assert.Equal(t, Piece(WKing), p.PieceAt(SqG1))
	assert.Equal(t, Piece(WRook), p.PieceAt(SqF1))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOO))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOOO))

	p.Unmake()
	assert.Equal(t, fen0, p.Fen())
	assert.Equal(t, key0, p.ZobristKey())
}

func TestMakeUnmakePromotion(t *testing.T) {
	p, err := NewFromFen("8/4P3/8/8/8/8/8/4K2k w - - 0 1")
	require.NoError(t, err)
	fen0 := p.Fen()
	key0 := p.ZobristKey()

	m := NewMove(SqE7, SqE8, WPawn, PieceNone, Promotion, Queen)
	p.Make(m)
	assert.Equal(t, Piece(WQueen), p.PieceAt(SqE8))

	p.Unmake()
	assert.Equal(t, fen0, p.Fen())
	assert.Equal(t, key0, p.ZobristKey())
}

func TestIsAttacked(t *testing.T) {
	p, err := NewFromFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	assert.True(t, p.IsAttacked(SqE3, White))
	assert.False(t, p.IsAttacked(SqE4, White))
}

func TestHasCheck(t *testing.T) {
	p, err := NewFromFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	assert.True(t, p.HasCheck())
}

func TestHasInsufficientMaterial(t *testing.T) {
	p, err := NewFromFen("8/8/4k3/8/8/8/4K3/8 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.HasInsufficientMaterial())

	p, err = NewFromFen("8/8/4k3/8/8/8/4KQ2/8 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.HasInsufficientMaterial())
}

func TestMakeNullUnmakeNullRestoresState(t *testing.T) {
	p := New()
	fen0 := p.Fen()
	key0 := p.ZobristKey()

	p.MakeNull()
	assert.Equal(t, Black, p.NextPlayer())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.NotEqual(t, key0, p.ZobristKey())

	p.UnmakeNull()
	assert.Equal(t, fen0, p.Fen())
	assert.Equal(t, key0, p.ZobristKey())
}

func TestClearResetsToDefinedState(t *testing.T) {
	p := New()
	p.Clear()
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, CastlingNone, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.HistoryLen())
	assert.Equal(t, zobrist.Key(0), p.ZobristKey())
	assert.Equal(t, PieceNone, p.PieceAt(SqE1))
}

func TestValidateAcceptsStartPosition(t *testing.T) {
	p := New()
	assert.NoError(t, p.Validate())
}

func TestValidateRejectsOpponentInCheck(t *testing.T) {
	p, err := NewFromFen("6k1/8/8/8/8/8/4r3/4K3 b - - 0 1")
	require.NoError(t, err)
	assert.Error(t, p.Validate())
}

func TestHasInsufficientMaterialSameColorBishops(t *testing.T) {
	p, err := NewFromFen("8/8/4kb2/8/8/8/4KB2/8 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.HasInsufficientMaterial())
}
