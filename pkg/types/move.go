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

// MoveType distinguishes the four ways a move changes the board beyond a
// plain piece relocation.
type MoveType uint8

// MoveType constants.
const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// Move is a packed description of a single ply: origin and destination
// square, the moved and captured piece, the move kind and (for
// promotions) the piece type promoted to. Unlike a from/to-only
// encoding, a Move carries everything needed to describe itself in text
// or undo it without consulting a board - this widens the teacher's
// 32-bit layout to 64 bits to fit the extra fields.
//
// Bit layout (LSB first):
//   0-5   to square      (6 bits)
//   6-11  from square    (6 bits)
//   12-15 moved piece    (4 bits)
//   16-19 captured piece (4 bits)
//   20-21 move type      (2 bits)
//   22-24 promotion type (3 bits)
type Move uint64

const (
	moveNone Move = 0

	toShift       = 0
	fromShift     = 6
	movedShift    = 12
	capturedShift = 16
	typeShift     = 20
	promoShift    = 22

	sqMask    = 0x3F
	pieceMask = 0xF
	typeMask  = 0x3
	ptMask    = 0x7
)

// MoveNone is the zero Move, used as a sentinel for "no move".
const MoveNone = moveNone

// NewMove packs a full move description into a Move.
func NewMove(from, to Square, moved, captured Piece, mt MoveType, promo PieceType) Move {
	m := Move(to&sqMask) << toShift
	m |= Move(from&sqMask) << fromShift
	m |= Move(moved&pieceMask) << movedShift
	m |= Move(captured&pieceMask) << capturedShift
	m |= Move(mt&typeMask) << typeShift
	m |= Move(promo&ptMask) << promoShift
	return m
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m >> toShift & sqMask)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m >> fromShift & sqMask)
}

// MovedPiece returns the piece that moved, as it stood on From() before
// the move.
func (m Move) MovedPiece() Piece {
	return Piece(m >> movedShift & pieceMask)
}

// CapturedPiece returns the piece captured by this move, or PieceNone.
func (m Move) CapturedPiece() Piece {
	return Piece(m >> capturedShift & pieceMask)
}

// MoveType returns the move's kind.
func (m Move) MoveType() MoveType {
	return MoveType(m >> typeShift & typeMask)
}

// PromotionType returns the piece type promoted to; PtNone for
// non-promotion moves.
func (m Move) PromotionType() PieceType {
	return PieceType(m >> promoShift & ptMask)
}

// IsCapture reports whether this move captures a piece (including
// en passant).
func (m Move) IsCapture() bool {
	return m.CapturedPiece() != PieceNone
}

// IsValid reports whether m has distinct, valid From/To squares.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// StringUci renders the move in UCI long-algebraic form, e.g. "e2e4" or
// "e7e8q" for a queen promotion.
func (m Move) StringUci() string {
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		s += string(lowerPieceTypeChar(m.PromotionType()))
	}
	return s
}

// String renders the move the same way StringUci does.
func (m Move) String() string {
	if m == MoveNone {
		return "no move"
	}
	return m.StringUci()
}

// StringSan renders the move in SAN-lite notation: "O-O"/"O-O-O" for
// castling, otherwise an optional piece letter (omitted for pawns), an
// optional origin file for pawn captures, "x" on any capture, the
// destination square, and a promotion suffix. Disambiguation and
// check/mate suffixes are not produced - the caller's move is assumed
// already unambiguous, e.g. because it came straight out of a legal
// move list with no same-type, same-destination sibling.
func (m Move) StringSan() string {
	if m.MoveType() == Castling {
		if m.To().FileOf() == FileG {
			return "O-O"
		}
		return "O-O-O"
	}

	pt := m.MovedPiece().TypeOf()
	var sb []byte
	if pt != Pawn {
		sb = append(sb, pt.Char())
	} else if m.IsCapture() {
		sb = append(sb, m.From().String()[0])
	}
	if m.IsCapture() {
		sb = append(sb, 'x')
	}
	sb = append(sb, m.To().String()...)
	if m.MoveType() == Promotion {
		sb = append(sb, '=', m.PromotionType().Char())
	}
	return string(sb)
}

func lowerPieceTypeChar(pt PieceType) byte {
	c := pt.Char()
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
