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

package types

import "fmt"

// Square is one of the 64 board squares, A1..H8, plus a sentinel SqNone.
type Square int8

// Square constants, A1 through H8 in rank-major order, plus SqNone.
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength = SqNone
)

// IsValid reports whether s is one of the 64 board squares.
func (s Square) IsValid() bool {
	return s >= SqA1 && s < SqNone
}

// FileOf returns the file of s.
func (s Square) FileOf() File {
	return File(s & 7)
}

// RankOf returns the rank of s.
func (s Square) RankOf() Rank {
	return Rank(s >> 3)
}

// MakeSquare combines a file and rank into a Square.
func MakeSquare(f File, r Rank) Square {
	return Square(uint8(r)<<3 + uint8(f))
}

// SquareOf parses a two-character algebraic square such as "e4".
// ok is false if s is not a well-formed square string.
func SquareOf(s string) (sq Square, ok bool) {
	if len(s) != 2 {
		return SqNone, false
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone, false
	}
	return MakeSquare(File(f-'a'), Rank(r-'1')), true
}

// sqTo[square][orientation] is precomputed by init to give the neighbour
// square in a given direction, or SqNone if that neighbour is off the board.
var sqTo [SqLength][8]Square

func toPreCompute() {
	for s := SqA1; s < SqLength; s++ {
		for i, d := range Directions {
			sqTo[s][i] = computeTo(s, d)
		}
	}
}

func computeTo(s Square, d Direction) Square {
	t := Square(int8(s) + int8(d))
	if t < SqA1 || t >= SqLength {
		return SqNone
	}
	// reject wraps across the board edge by checking file distance
	fd := int(s.FileOf()) - int(t.FileOf())
	if fd < 0 {
		fd = -fd
	}
	if fd > 1 {
		return SqNone
	}
	return t
}

// To returns the neighbouring square in direction d, or SqNone if that
// would fall off the board.
func (s Square) To(d Direction) Square {
	for i, dd := range Directions {
		if dd == d {
			return sqTo[s][i]
		}
	}
	panic(fmt.Sprintf("invalid direction %v", d))
}

var squareLabels = [SqLength]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String renders the square in algebraic notation, e.g. "e4". Returns
// "-" for SqNone.
func (s Square) String() string {
	if s < SqA1 || s >= SqLength {
		return "-"
	}
	return squareLabels[s]
}
