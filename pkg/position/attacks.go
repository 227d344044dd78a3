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

package position

import (
	. "github.com/franckopp/chesscore/pkg/types"
)

// IsAttacked reports whether sq is attacked by any piece of color by.
// Sliding attacks are computed by reversing the attack from sq outward
// through the current occupied set, then intersecting with by's pieces -
// the same technique a magic-bitboard slider uses to attack outward,
// applied backwards.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occupied := p.Occupied()

	if GetPawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0 {
		return true
	}
	if GetPseudoAttacks(Knight, sq)&p.piecesBb[by][Knight] != 0 {
		return true
	}
	if GetPseudoAttacks(King, sq)&p.piecesBb[by][King] != 0 {
		return true
	}
	if GetAttacksBb(Bishop, sq, occupied)&(p.piecesBb[by][Bishop]|p.piecesBb[by][Queen]) != 0 {
		return true
	}
	if GetAttacksBb(Rook, sq, occupied)&(p.piecesBb[by][Rook]|p.piecesBb[by][Queen]) != 0 {
		return true
	}
	return false
}

// Attackers returns the bitboard of all of by's pieces that attack sq
// given the current occupied set.
func (p *Position) Attackers(sq Square, by Color) Bitboard {
	occupied := p.Occupied()
	var att Bitboard
	att |= GetPawnAttacks(by.Flip(), sq) & p.piecesBb[by][Pawn]
	att |= GetPseudoAttacks(Knight, sq) & p.piecesBb[by][Knight]
	att |= GetPseudoAttacks(King, sq) & p.piecesBb[by][King]
	att |= GetAttacksBb(Bishop, sq, occupied) & (p.piecesBb[by][Bishop] | p.piecesBb[by][Queen])
	att |= GetAttacksBb(Rook, sq, occupied) & (p.piecesBb[by][Rook] | p.piecesBb[by][Queen])
	return att
}

// HasCheck reports whether the side to move's king is currently attacked.
func (p *Position) HasCheck() bool {
	return p.IsAttacked(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip())
}

// IsLegalMove applies m and verifies the mover's own king is not left in
// check, then undoes it. This is the position's correctness net: any
// faster move generator must agree with it, but it is not meant to be
// the generator's primary path - a make/unmake per candidate is too slow
// to use for every pseudo-legal move in a hot loop.
func (p *Position) IsLegalMove(m Move) bool {
	mover := p.nextPlayer

	if m.MoveType() == Castling {
		if p.IsAttacked(m.From(), mover.Flip()) {
			return false
		}
		var through Square
		switch m.To() {
		case SqG1:
			through = SqF1
		case SqC1:
			through = SqD1
		case SqG8:
			through = SqF8
		case SqC8:
			through = SqD8
		}
		if p.IsAttacked(through, mover.Flip()) {
			return false
		}
	}

	p.Make(m)
	legal := !p.IsAttacked(p.kingSquare[mover], mover.Flip())
	p.Unmake()
	return legal
}

// WasLegalMove reports whether the most recently Make'd move was legal,
// without performing its own make/unmake - use this right after Make
// when the caller already intends to keep or immediately Unmake the move.
func (p *Position) WasLegalMove(moverBeforeFlip Color) bool {
	return !p.IsAttacked(p.kingSquare[moverBeforeFlip], moverBeforeFlip.Flip())
}

// GivesCheck reports whether making m would put the opponent in check,
// computed statically (no make/unmake) - used by callers that want a
// check test without mutating the position, e.g. search extensions.
func (p *Position) GivesCheck(m Move) bool {
	mover := p.nextPlayer
	opp := mover.Flip()
	oppKing := p.kingSquare[opp]

	pt := m.MovedPiece().TypeOf()
	if m.MoveType() == Promotion {
		pt = m.PromotionType()
	}

	occupiedAfter := p.Occupied().PopSquare(m.From()).PushSquare(m.To())
	if m.MoveType() == EnPassant {
		capSq := m.To().To(oppositeDirection(mover))
		occupiedAfter = occupiedAfter.PopSquare(capSq)
	}

	switch pt {
	case Pawn:
		if GetPawnAttacks(mover, m.To()).Has(oppKing) {
			return true
		}
	case Knight:
		if GetPseudoAttacks(Knight, m.To()).Has(oppKing) {
			return true
		}
	case Bishop:
		if GetAttacksBb(Bishop, m.To(), occupiedAfter).Has(oppKing) {
			return true
		}
	case Rook:
		if GetAttacksBb(Rook, m.To(), occupiedAfter).Has(oppKing) {
			return true
		}
	case Queen:
		if GetAttacksBb(Queen, m.To(), occupiedAfter).Has(oppKing) {
			return true
		}
	case King:
		// a king move can only give check by discovery, handled below
	}

	// discovered check: does a slider behind From() now see the king
	// through the vacated square?
	if GetAttacksBb(Bishop, oppKing, occupiedAfter)&(p.piecesBb[mover][Bishop]|p.piecesBb[mover][Queen]) != 0 {
		return true
	}
	if GetAttacksBb(Rook, oppKing, occupiedAfter)&(p.piecesBb[mover][Rook]|p.piecesBb[mover][Queen]) != 0 {
		return true
	}
	return false
}

// HasInsufficientMaterial reports whether neither side has enough
// material remaining to deliver checkmate by any sequence of legal
// moves: K vs K, K+minor vs K, and K+bishop vs K+bishop of the same
// color square all qualify. This is not folded into IsDraw - a caller
// that wants it reflected in a terminal test must combine it explicitly.
func (p *Position) HasInsufficientMaterial() bool {
	for _, c := range []Color{White, Black} {
		if p.piecesBb[c][Pawn] != 0 || p.piecesBb[c][Rook] != 0 || p.piecesBb[c][Queen] != 0 {
			return false
		}
	}

	whiteMinors := p.piecesBb[White][Knight].PopCount() + p.piecesBb[White][Bishop].PopCount()
	blackMinors := p.piecesBb[Black][Knight].PopCount() + p.piecesBb[Black][Bishop].PopCount()

	if whiteMinors == 0 && blackMinors == 0 {
		return true
	}
	if whiteMinors+blackMinors == 1 {
		return true
	}
	if whiteMinors == 1 && blackMinors == 1 &&
		p.piecesBb[White][Bishop] != 0 && p.piecesBb[Black][Bishop] != 0 {
		return sameBishopSquareColor(p.piecesBb[White][Bishop].Lsb(), p.piecesBb[Black][Bishop].Lsb())
	}
	return false
}

func sameBishopSquareColor(a, b Square) bool {
	ca := (int(a.FileOf()) + int(a.RankOf())) % 2
	cb := (int(b.FileOf()) + int(b.RankOf())) % 2
	return ca == cb
}

// CheckRepetition reports whether the current position (by Zobrist key)
// has occurred at least reps times among irreversible-move-free history,
// walking backward in steps of two ply (so only positions with the same
// side to move are compared) and stopping at the most recent pawn move
// or capture.
func (p *Position) CheckRepetition(reps int) bool {
	count := 1
	lastIrreversible := len(p.history) - p.halfMoveClock
	if lastIrreversible < 0 {
		lastIrreversible = 0
	}
	for i := len(p.history) - 2; i >= lastIrreversible; i -= 2 {
		if p.history[i].zobristKey == p.zobristKey {
			count++
			if count >= reps {
				return true
			}
		}
	}
	return false
}
