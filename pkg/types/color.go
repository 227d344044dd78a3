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

// Color represents the side to move or the owner of a piece.
type Color uint8

// Color constants. There is no sentinel - every Color value is valid.
const (
	White       Color = 0
	Black       Color = 1
	ColorLength       = 2
)

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c <= Black
}

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ 1
}

// String returns "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// direction of pawn advance per color, North for White, South for Black.
var colorDirection = [ColorLength]Direction{North, South}

// Direction returns the direction pawns of this color advance toward.
func (c Color) Direction() Direction {
	return colorDirection[c]
}

// promotionRank per color - the rank a pawn of this color promotes on.
var promotionRank = [ColorLength]Rank{Rank8, Rank1}

// PromotionRank returns the rank on which a pawn of this color promotes.
func (c Color) PromotionRank() Rank {
	return promotionRank[c]
}

// pawnDoubleRank per color - the rank a pawn of this color lands on after
// its initial two-square advance.
var pawnDoubleRank = [ColorLength]Rank{Rank4, Rank5}

// PawnDoubleRank returns the rank reached by this color's initial
// two-square pawn advance.
func (c Color) PawnDoubleRank() Rank {
	return pawnDoubleRank[c]
}

// pawnBaseRank per color - the rank pawns of this color start on.
var pawnBaseRank = [ColorLength]Rank{Rank2, Rank7}

// PawnBaseRank returns the starting rank of this color's pawns.
func (c Color) PawnBaseRank() Rank {
	return pawnBaseRank[c]
}
