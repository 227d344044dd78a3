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

import (
	"math/bits"
	"strings"

	"github.com/franckopp/chesscore/internal/xmath"
)

// Bitboard is a 64-bit set of squares, one bit per Square.
type Bitboard uint64

// BbZero is the empty set.
const BbZero Bitboard = 0

// BbAll is the full board.
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

// file and rank masks, precomputed directly from their bit patterns.
const (
	FileABb Bitboard = 0x0101010101010101
	FileBBb Bitboard = FileABb << 1
	FileCBb Bitboard = FileABb << 2
	FileDBb Bitboard = FileABb << 3
	FileEBb Bitboard = FileABb << 4
	FileFBb Bitboard = FileABb << 5
	FileGBb Bitboard = FileABb << 6
	FileHBb Bitboard = FileABb << 7

	Rank1Bb Bitboard = 0xFF
	Rank2Bb Bitboard = Rank1Bb << (8 * 1)
	Rank3Bb Bitboard = Rank1Bb << (8 * 2)
	Rank4Bb Bitboard = Rank1Bb << (8 * 3)
	Rank5Bb Bitboard = Rank1Bb << (8 * 4)
	Rank6Bb Bitboard = Rank1Bb << (8 * 5)
	Rank7Bb Bitboard = Rank1Bb << (8 * 6)
	Rank8Bb Bitboard = Rank1Bb << (8 * 7)
)

var fileBb = [FileLength]Bitboard{FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb}
var rankBb = [RankLength]Bitboard{Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb, Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb}

// FileBb returns the bitboard of all squares on file f.
func FileBb(f File) Bitboard { return fileBb[f] }

// RankBb returns the bitboard of all squares on rank r.
func RankBb(r Rank) Bitboard { return rankBb[r] }

var sqBb [SqLength]Bitboard

func squareBitboardsPreCompute() {
	for s := SqA1; s < SqLength; s++ {
		sqBb[s] = 1 << uint(s)
	}
}

// SquareBb returns the single-bit bitboard for s.
func SquareBb(s Square) Bitboard {
	return sqBb[s]
}

// PushSquare returns b with s added.
func (b Bitboard) PushSquare(s Square) Bitboard {
	return b | sqBb[s]
}

// PopSquare returns b with s removed.
func (b Bitboard) PopSquare(s Square) Bitboard {
	return b &^ sqBb[s]
}

// Has reports whether s is a member of b.
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least-significant set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most-significant set square, or SqNone if b is empty.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb removes and returns the least-significant square of b.
func (b Bitboard) PopLsb() (Bitboard, Square) {
	s := b.Lsb()
	return b &^ sqBb[s], s
}

// ShiftBitboard shifts b one step in direction d, masking off squares
// that would wrap around a board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) << 9
	case Southeast:
		return (b &^ FileHBb) >> 7
	case Southwest:
		return (b &^ FileABb) >> 9
	case Northwest:
		return (b &^ FileABb) << 7
	default:
		return BbZero
	}
}

// squareDistance[s1][s2] is the Chebyshev distance between two squares.
var squareDistance [SqLength][SqLength]int

func squareDistancePreCompute() {
	for s1 := SqA1; s1 < SqLength; s1++ {
		for s2 := SqA1; s2 < SqLength; s2++ {
			squareDistance[s1][s2] = xmath.Max(fileDistance(s1, s2), rankDistance(s1, s2))
		}
	}
}

func fileDistance(s1, s2 Square) int {
	return xmath.Abs(int(s1.FileOf()) - int(s2.FileOf()))
}

func rankDistance(s1, s2 Square) int {
	return xmath.Abs(int(s1.RankOf()) - int(s2.RankOf()))
}

// FileDistance returns the absolute file distance between two squares.
func FileDistance(s1, s2 Square) int { return fileDistance(s1, s2) }

// RankDistance returns the absolute rank distance between two squares.
func RankDistance(s1, s2 Square) int { return rankDistance(s1, s2) }

// SquareDistance returns the Chebyshev (king-move) distance between two squares.
func SquareDistance(s1, s2 Square) int { return squareDistance[s1][s2] }

// nonSliderAttacks[pt][sq] holds precomputed attack sets for King and Knight.
var nonSliderAttacks [PtLength][SqLength]Bitboard

func nonSlidingAttacksPreCompute() {
	knightDirs := []struct{ df, dr int }{
		{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	for s := SqA1; s < SqLength; s++ {
		var king, knight Bitboard
		for _, d := range Directions {
			if t := s.To(d); t != SqNone {
				king = king.PushSquare(t)
			}
		}
		f, r := int(s.FileOf()), int(s.RankOf())
		for _, kd := range knightDirs {
			nf, nr := f+kd.df, r+kd.dr
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				continue
			}
			knight = knight.PushSquare(MakeSquare(File(nf), Rank(nr)))
		}
		nonSliderAttacks[King][s] = king
		nonSliderAttacks[Knight][s] = knight
	}
}

// GetPseudoAttacks returns the precomputed King or Knight attack set from sq.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return nonSliderAttacks[pt][sq]
}

// pawnAttacks[color][sq] holds the squares a pawn of color attacks from sq.
var pawnAttacks [ColorLength][SqLength]Bitboard

func pawnAttacksPreCompute() {
	for s := SqA1; s < SqLength; s++ {
		b := sqBb[s]
		pawnAttacks[White][s] = ShiftBitboard(b, Northeast) | ShiftBitboard(b, Northwest)
		pawnAttacks[Black][s] = ShiftBitboard(b, Southeast) | ShiftBitboard(b, Southwest)
	}
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// rays[orientation][sq] is the full-length ray from sq in that direction,
// not including sq itself, stopping at the board edge (blockers ignored).
var rays [8][SqLength]Bitboard

func raysPreCompute() {
	for s := SqA1; s < SqLength; s++ {
		for i, d := range Directions {
			cur := s
			var r Bitboard
			for {
				n := cur.To(d)
				if n == SqNone {
					break
				}
				r = r.PushSquare(n)
				cur = n
			}
			rays[i][s] = r
		}
	}
}

// Ray returns the precomputed full-length ray from sq in orientation o.
func Ray(o Orientation, sq Square) Bitboard {
	return rays[o][sq]
}

// slidingAttack computes a classical ray-scan attack set for a sliding
// piece from sq given the occupied set, stopping at (and including) the
// first blocker in each direction.
func slidingAttack(dirs []Direction, sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		cur := sq
		for {
			n := cur.To(d)
			if n == SqNone {
				break
			}
			attacks = attacks.PushSquare(n)
			if occupied.Has(n) {
				break
			}
			cur = n
		}
	}
	return attacks
}

var bishopDirs = []Direction{Northeast, Southeast, Southwest, Northwest}
var rookDirs = []Direction{North, East, South, West}

// GetAttacksBb returns the attack set of a sliding piece (Bishop, Rook or
// Queen) from sq given the current occupied set, using the magic-bitboard
// tables built at init time.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].attacks(occupied)
	case Rook:
		return rookMagics[sq].attacks(occupied)
	case Queen:
		return bishopMagics[sq].attacks(occupied) | rookMagics[sq].attacks(occupied)
	case King:
		return nonSliderAttacks[King][sq]
	case Knight:
		return nonSliderAttacks[Knight][sq]
	default:
		return BbZero
	}
}

// intermediate[s1][s2] is the set of squares strictly between s1 and s2 when
// they share a rank, file or diagonal; empty otherwise.
var intermediate [SqLength][SqLength]Bitboard

func intermediatePreCompute() {
	for s1 := SqA1; s1 < SqLength; s1++ {
		for i, d := range Directions {
			cur := s1
			var between Bitboard
			for {
				n := cur.To(d)
				if n == SqNone {
					break
				}
				intermediate[s1][n] = between
				between = between.PushSquare(n)
				cur = n
			}
			_ = i
		}
	}
}

// Intermediate returns the squares strictly between s1 and s2 along a
// shared rank, file or diagonal, or BbZero if they don't share one.
func Intermediate(s1, s2 Square) Bitboard {
	return intermediate[s1][s2]
}

// castlingRightsMask[sq] gives the castling rights invalidated when a
// piece moves from or to sq (rook home squares and king home squares).
var castlingRightsMask [SqLength]CastlingRights

func castleMasksPreCompute() {
	castlingRightsMask[SqE1] = CastlingWhite
	castlingRightsMask[SqH1] = CastlingWhiteOO
	castlingRightsMask[SqA1] = CastlingWhiteOOO
	castlingRightsMask[SqE8] = CastlingBlack
	castlingRightsMask[SqH8] = CastlingBlackOO
	castlingRightsMask[SqA8] = CastlingBlackOOO
}

// GetCastlingRights returns the castling rights invalidated by a move
// touching sq.
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRightsMask[sq]
}

// kingSideCastleMask / queenSideCastleMask are the squares that must be
// empty for the corresponding castle to be possible.
var kingSideCastleMask [ColorLength]Bitboard
var queenSideCastleMask [ColorLength]Bitboard

func castleEmptyMasksPreCompute() {
	kingSideCastleMask[White] = sqBb[SqF1] | sqBb[SqG1]
	queenSideCastleMask[White] = sqBb[SqB1] | sqBb[SqC1] | sqBb[SqD1]
	kingSideCastleMask[Black] = sqBb[SqF8] | sqBb[SqG8]
	queenSideCastleMask[Black] = sqBb[SqB8] | sqBb[SqC8] | sqBb[SqD8]
}

// KingSideCastleMask returns the squares that must be empty for c to
// castle king-side.
func KingSideCastleMask(c Color) Bitboard { return kingSideCastleMask[c] }

// QueenSideCastleMask returns the squares that must be empty for c to
// castle queen-side.
func QueenSideCastleMask(c Color) Bitboard { return queenSideCastleMask[c] }

// init runs the full precomputation pipeline in dependency order: square
// bitboards and neighbour lookups first, then the tables built from them.
func init() {
	squareBitboardsPreCompute()
	toPreCompute()
	pawnAttacksPreCompute()
	nonSlidingAttacksPreCompute()
	squareDistancePreCompute()
	raysPreCompute()
	intermediatePreCompute()
	castleMasksPreCompute()
	castleEmptyMasksPreCompute()
	initMagics()
}

// String renders b as a hex literal.
func (b Bitboard) String() string {
	return "0x" + strings.ToUpper(uintToHex(uint64(b)))
}

// StringBoard renders b as an 8x8 grid, rank 8 on top, '1' for occupied
// squares and '.' for empty ones - a debugging aid.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := int(FileA); f <= int(FileH); f++ {
			sq := MakeSquare(File(f), Rank(r))
			if b.Has(sq) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func uintToHex(v uint64) string {
	const hexDigits = "0123456789abcdef"
	if v == 0 {
		return "0"
	}
	var buf [16]byte
	i := 16
	for v > 0 {
		i--
		buf[i] = hexDigits[v&0xF]
		v >>= 4
	}
	return string(buf[i:])
}
