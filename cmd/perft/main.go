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

// Command perft runs the move-tree correctness oracle from the command
// line: load a FEN (or the standard start position), walk it to a given
// depth, and report node counts, optionally divided by root move.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/franckopp/chesscore/internal/config"
	"github.com/franckopp/chesscore/pkg/movegen"
	"github.com/franckopp/chesscore/pkg/position"
)

func main() {
	config.Setup()

	fen := flag.String("fen", "", "FEN to start from (defaults to the standard start position)")
	depth := flag.Int("depth", config.Settings.Perft.Depth, "perft depth")
	divide := flag.Bool("divide", config.Settings.Perft.Divide, "print per-root-move leaf counts")
	parallel := flag.Bool("parallel", false, "split root moves across goroutines")
	cpuprofile := flag.Bool("cpuprofile", false, "write a CPU profile of the run to ./cpu.pprof")
	flag.Parse()

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	var pos *position.Position
	var err error
	if *fen == "" {
		pos = position.New()
	} else {
		pos, err = position.NewFromFen(*fen)
		if err != nil {
			fmt.Fprintln(os.Stderr, "chesscore: perft:", err)
			os.Exit(1)
		}
	}

	out := message.NewPrinter(language.English)

	if *divide {
		entries := movegen.Divide(pos, *depth)
		var total uint64
		for _, e := range entries {
			out.Printf("%-8s %d\n", e.Move.StringUci(), e.Nodes)
			total += e.Nodes
		}
		out.Printf("\ntotal: %d\n", total)
		return
	}

	if *parallel {
		result, err := movegen.PerftParallel(context.Background(), pos, *depth)
		if err != nil {
			fmt.Fprintln(os.Stderr, "chesscore: perft:", err)
			os.Exit(1)
		}
		report(out, result)
		return
	}

	var result movegen.Perft
	result.Run(pos, *depth)
	report(out, result)
}

func report(out *message.Printer, result movegen.Perft) {
	out.Printf("nodes:      %d\n", result.Nodes)
	out.Printf("captures:   %d\n", result.Captures)
	out.Printf("en passant: %d\n", result.EnPassant)
	out.Printf("castles:    %d\n", result.Castles)
	out.Printf("promotions: %d\n", result.Promotions)
	out.Printf("checks:     %d\n", result.Checks)
	out.Printf("checkmates: %d\n", result.Checkmates)
	out.Printf("time:       %s\n", result.Duration)
	out.Printf("nps:        %.0f\n", result.NodesPerSecond())
}
