package movegen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franckopp/chesscore/pkg/position"
)

func runPerft(t *testing.T, fen string, depth int) uint64 {
	t.Helper()
	pos, err := position.NewFromFen(fen)
	require.NoError(t, err)
	var pf Perft
	pf.Run(pos, depth)
	return pf.Nodes
}

func TestPerftStartPosition(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	assert.Equal(t, uint64(20), runPerft(t, fen, 1))
	assert.Equal(t, uint64(400), runPerft(t, fen, 2))
	assert.Equal(t, uint64(8902), runPerft(t, fen, 3))
	assert.Equal(t, uint64(197281), runPerft(t, fen, 4))
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	assert.Equal(t, uint64(48), runPerft(t, fen, 1))
	assert.Equal(t, uint64(2039), runPerft(t, fen, 2))
	assert.Equal(t, uint64(97862), runPerft(t, fen, 3))
}

func TestPerftPosition3(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	assert.Equal(t, uint64(14), runPerft(t, fen, 1))
	assert.Equal(t, uint64(191), runPerft(t, fen, 2))
	assert.Equal(t, uint64(2812), runPerft(t, fen, 3))
}

func TestPerftPosition5(t *testing.T) {
	fen := "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	assert.Equal(t, uint64(44), runPerft(t, fen, 1))
	assert.Equal(t, uint64(1486), runPerft(t, fen, 2))
	assert.Equal(t, uint64(62379), runPerft(t, fen, 3))
}

func TestPerftDivideSumsToRun(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	pos, err := position.NewFromFen(fen)
	require.NoError(t, err)
	entries := Divide(pos, 3)
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	assert.Equal(t, uint64(8902), total)
}

func TestPerftParallelMatchesSerial(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	pos, err := position.NewFromFen(fen)
	require.NoError(t, err)
	result, err := PerftParallel(context.Background(), pos, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(8902), result.Nodes)
}
