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

// PieceType is the kind of a piece, independent of color.
type PieceType int8

// PieceType constants.
const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PtLength
)

// IsValid reports whether pt is one of the six piece kinds.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

var pieceTypeValue = [PtLength]int{0, 0, 100, 320, 330, 500, 900}

// ValueOf returns the static material value of this piece type in
// centipawns. Kings and the none-type are worth 0.
func (pt PieceType) ValueOf() int {
	return pieceTypeValue[pt]
}

const pieceTypeChars = "-KPNBRQ"

// Char returns a single upper-case letter for the piece type ('-' for none).
func (pt PieceType) Char() byte {
	return pieceTypeChars[pt]
}

var pieceTypeNames = [PtLength]string{"none", "king", "pawn", "knight", "bishop", "rook", "queen"}

// String returns the lower-case English name of the piece type.
func (pt PieceType) String() string {
	return pieceTypeNames[pt]
}
