/*
 * chesscore - a chess position / legal move generation core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package movegen

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/franckopp/chesscore/pkg/position"

	. "github.com/franckopp/chesscore/pkg/types"
)

// Perft counts leaf nodes of the legal move tree to a fixed depth - a
// correctness oracle for the generator, not a search. It also tallies
// the kind of move at each leaf's parent ply.
type Perft struct {
	Nodes            uint64
	Captures         uint64
	EnPassant        uint64
	Castles          uint64
	Promotions       uint64
	Checks           uint64
	Checkmates       uint64
	Duration         time.Duration
}

// Run counts leaf nodes reachable from pos in exactly depth plies.
func (pf *Perft) Run(pos *position.Position, depth int) {
	start := time.Now()
	*pf = Perft{}
	pf.walk(pos, depth)
	pf.Duration = time.Since(start)
}

func (pf *Perft) walk(pos *position.Position, depth int) {
	if depth == 0 {
		pf.Nodes++
		return
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			pf.Nodes++
			if m.IsCapture() {
				pf.Captures++
			}
			if m.MoveType() == EnPassant {
				pf.EnPassant++
			}
			if m.MoveType() == Castling {
				pf.Castles++
			}
			if m.MoveType() == Promotion {
				pf.Promotions++
			}
			pos.Make(m)
			if pos.HasCheck() {
				pf.Checks++
				if IsCheckmate(pos) {
					pf.Checkmates++
				}
			}
			pos.Unmake()
		}
		return
	}
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.Make(m)
		pf.walk(pos, depth-1)
		pos.Unmake()
	}
}

// NodesPerSecond returns the node rate of the last Run, or 0 if Duration
// is zero.
func (pf *Perft) NodesPerSecond() float64 {
	if pf.Duration <= 0 {
		return 0
	}
	return float64(pf.Nodes) / pf.Duration.Seconds()
}

// DivideEntry is one root move's leaf-node count under Divide.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide returns, for each legal root move, the number of leaf nodes
// reachable after playing it to depth-1 further plies - the standard
// per-root-move breakdown used to localize a generator bug against a
// reference perft count.
func Divide(pos *position.Position, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	moves := LegalMoves(pos)
	entries := make([]DivideEntry, 0, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.Make(m)
		var sub Perft
		sub.walk(pos, depth-1)
		pos.Unmake()
		entries = append(entries, DivideEntry{Move: m, Nodes: sub.Nodes})
	}
	return entries
}

// PerftParallel counts leaf nodes the same way Run does, but splits the
// root move list across goroutines - one independent Position copy per
// root move - and joins the partial counts with an errgroup.Group. This
// is the only place this module runs concurrently: every goroutine owns
// its own Position value and never touches another's.
func PerftParallel(ctx context.Context, pos *position.Position, depth int) (Perft, error) {
	if depth <= 0 {
		var pf Perft
		pf.Nodes = 1
		return pf, nil
	}

	start := time.Now()
	moves := LegalMoves(pos)

	var mu sync.Mutex
	var total Perft

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		fen := pos.Fen()
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			sub, err := position.NewFromFen(fen)
			if err != nil {
				return err
			}
			sub.Make(m)
			var pf Perft
			pf.walk(sub, depth-1)

			mu.Lock()
			total.Nodes += pf.Nodes
			total.Captures += pf.Captures
			total.EnPassant += pf.EnPassant
			total.Castles += pf.Castles
			total.Promotions += pf.Promotions
			total.Checks += pf.Checks
			total.Checkmates += pf.Checkmates
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Perft{}, err
	}
	total.Duration = time.Since(start)
	return total, nil
}
