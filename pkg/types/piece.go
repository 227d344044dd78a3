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

// Piece is a colored piece occupying a square: White/Black combined with
// a PieceType. The zero value is PieceNone.
type Piece int8

// Piece constants. White pieces occupy 1-6, Black pieces 9-14, mirroring
// PieceType values shifted by 8 for Black so ColorOf/TypeOf are cheap masks.
const blackOffset = 8

const (
	PieceNone Piece = 0

	WKing Piece = iota
	WPawn
	WKnight
	WBishop
	WRook
	WQueen
)

const (
	BKing Piece = WKing + blackOffset
	BPawn Piece = WPawn + blackOffset
	BKnight Piece = WKnight + blackOffset
	BBishop Piece = WBishop + blackOffset
	BRook Piece = WRook + blackOffset
	BQueen Piece = WQueen + blackOffset
)

// PieceLength is the size of an array indexable by every Piece value.
const PieceLength = 16

// MakePiece combines a color and a piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	if c == White {
		return Piece(pt)
	}
	return Piece(pt) + blackOffset
}

// ColorOf returns the color of the piece. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	if p >= blackOffset+1 {
		return Black
	}
	return White
}

// TypeOf returns the piece type, stripping color.
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return PtNone
	}
	if p > blackOffset {
		return PieceType(p - blackOffset)
	}
	return PieceType(p)
}

// IsValid reports whether p is a legal occupied-square value.
func (p Piece) IsValid() bool {
	t := p.TypeOf()
	return t.IsValid()
}

// ValueOf returns the static material value of the piece's type.
func (p Piece) ValueOf() int {
	return p.TypeOf().ValueOf()
}

const pieceChars = " KPNBRQ- kpnbrq-"

// Char returns a FEN-style letter for the piece (upper for White, lower
// for Black, ' ' for PieceNone).
func (p Piece) Char() byte {
	return pieceChars[p]
}

// PieceFromChar parses a single FEN piece letter. ok is false for an
// unrecognized letter.
func PieceFromChar(c byte) (p Piece, ok bool) {
	for i := 0; i < len(pieceChars); i++ {
		if pieceChars[i] == c && c != ' ' && c != '-' {
			return Piece(i), true
		}
	}
	return PieceNone, false
}

// String renders the piece the same way Char does, as a one-character string.
func (p Piece) String() string {
	return string(p.Char())
}
