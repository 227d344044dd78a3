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

// Package zobrist holds the fixed random key tables used to incrementally
// fingerprint a position - one key per piece/square combination, one per
// castling-rights bitmask, one per en-passant file, and one for side to
// move.
package zobrist

import (
	. "github.com/franckopp/chesscore/pkg/types"
)

// Key is a 64-bit Zobrist fingerprint.
type Key uint64

var (
	pieceSquare   [PieceLength][SqLength]Key
	castling      [CastlingRightsLength]Key
	enPassantFile [FileLength]Key
	sideToMove    Key
)

// PieceSquare returns the key for a piece standing on sq.
func PieceSquare(p Piece, sq Square) Key {
	return pieceSquare[p][sq]
}

// Castling returns the key for a given castling-rights bitmask.
func Castling(c CastlingRights) Key {
	return castling[c]
}

// EnPassantFile returns the key for an en-passant capture available on f.
func EnPassantFile(f File) Key {
	return enPassantFile[f]
}

// SideToMove returns the key XORed in whenever it is Black's move.
func SideToMove() Key {
	return sideToMove
}

// xorshift64star, seeded once at package init - the same generator shape
// used to search for magic bitboard multipliers, reused here to fill
// fixed random key tables rather than to search for anything.
type prng struct {
	s uint64
}

func newPrng(seed uint64) *prng {
	return &prng{s: seed}
}

func (p *prng) next() Key {
	p.s ^= p.s >> 12
	p.s ^= p.s << 25
	p.s ^= p.s >> 27
	return Key(p.s * 2685821657736338717)
}

func init() {
	rng := newPrng(1070372)
	for p := Piece(0); p < PieceLength; p++ {
		for s := SqA1; s < SqLength; s++ {
			pieceSquare[p][s] = rng.next()
		}
	}
	for c := CastlingRights(0); c < CastlingRightsLength; c++ {
		castling[c] = rng.next()
	}
	for f := FileA; f < FileLength; f++ {
		enPassantFile[f] = rng.next()
	}
	sideToMove = rng.next()
}
