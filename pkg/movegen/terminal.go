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

import "github.com/franckopp/chesscore/pkg/position"

// fiftyMoveLimit is the half-move clock value at which the fifty-move
// rule lets either side claim a draw.
const fiftyMoveLimit = 100

// IsCheckmate reports whether the side to move is in check with no
// legal move available.
func IsCheckmate(pos *position.Position) bool {
	return pos.HasCheck() && !HasLegalMove(pos)
}

// IsStalemate reports whether the side to move is not in check but has
// no legal move available.
func IsStalemate(pos *position.Position) bool {
	return !pos.HasCheck() && !HasLegalMove(pos)
}

// IsDraw reports whether the position is drawn by the threefold
// repetition or fifty-move rule, excluding positions that are actually
// checkmate. HasInsufficientMaterial is a separate query a caller may
// combine with this one; it is not folded in here.
func IsDraw(pos *position.Position) bool {
	if IsCheckmate(pos) {
		return false
	}
	return pos.CheckRepetition(3) || pos.HalfMoveClock() >= fiftyMoveLimit
}

// IsTerminal reports whether the game is over in pos: checkmate,
// stalemate, or a claimable draw.
func IsTerminal(pos *position.Position) bool {
	return IsCheckmate(pos) || IsStalemate(pos) || IsDraw(pos)
}
