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

// CastlingRights is a bitmask of the four castling privileges.
type CastlingRights uint8

// CastlingRights constants.
const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1 << 0
	CastlingWhiteOOO CastlingRights = 1 << 1
	CastlingBlackOO  CastlingRights = 1 << 2
	CastlingBlackOOO CastlingRights = 1 << 3

	CastlingWhite = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack = CastlingBlackOO | CastlingBlackOOO
	CastlingAny   = CastlingWhite | CastlingBlack

	CastlingRightsLength = 16
)

// Has reports whether all bits of other are set in c.
func (c CastlingRights) Has(other CastlingRights) bool {
	return c&other == other
}

// Remove clears the bits of other from c and returns the result.
func (c CastlingRights) Remove(other CastlingRights) CastlingRights {
	return c &^ other
}

// Add sets the bits of other in c and returns the result.
func (c CastlingRights) Add(other CastlingRights) CastlingRights {
	return c | other
}

// String renders castling rights in FEN order, e.g. "KQkq", "Kq", or "-".
func (c CastlingRights) String() string {
	if c == CastlingNone {
		return "-"
	}
	s := make([]byte, 0, 4)
	if c.Has(CastlingWhiteOO) {
		s = append(s, 'K')
	}
	if c.Has(CastlingWhiteOOO) {
		s = append(s, 'Q')
	}
	if c.Has(CastlingBlackOO) {
		s = append(s, 'k')
	}
	if c.Has(CastlingBlackOOO) {
		s = append(s, 'q')
	}
	return string(s)
}
