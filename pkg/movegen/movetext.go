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
	"github.com/franckopp/chesscore/pkg/position"

	. "github.com/franckopp/chesscore/pkg/types"
)

// ParseMove looks up the legal move in pos whose long-algebraic text
// (e.g. "e2e4", "e7e8q") equals s, returning position.IllegalMoveError
// if none matches. This lives here rather than on Position itself
// because it needs the legal move list to validate against, and
// Position cannot import this package without a cycle.
func ParseMove(pos *position.Position, s string) (Move, error) {
	moves := LegalMoves(pos)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.StringUci() == s {
			return m, nil
		}
	}
	return MoveNone, &position.IllegalMoveError{Input: s}
}
