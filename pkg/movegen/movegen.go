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

// Package movegen generates fully legal moves directly - king, pin and
// check aware - rather than generating pseudo-legal moves and filtering
// them one at a time with make/unmake. Position.IsLegalMove remains the
// correctness net this generator is checked against, not its algorithm.
package movegen

import (
	"github.com/franckopp/chesscore/internal/clog"
	"github.com/franckopp/chesscore/pkg/moveslice"
	"github.com/franckopp/chesscore/pkg/position"

	. "github.com/franckopp/chesscore/pkg/types"
)

var log = clog.Get("movegen")

// orientationAscending reports whether squares further along this ray
// from the origin have a higher Square index - true for N, E, NE, NW.
var orientationAscending = [8]bool{
	N: true, E: true, S: false, W: false,
	NE: true, SE: false, SW: false, NW: true,
}

var orientationIsDiagonal = [8]bool{
	N: false, E: false, S: false, W: false,
	NE: true, SE: true, SW: true, NW: true,
}

func nearest(b Bitboard, ascending bool) Square {
	if ascending {
		return b.Lsb()
	}
	return b.Msb()
}

// attackedSquares returns every square attacked by by's pieces, using
// occupied as the blocker set for sliding attacks - callers generating
// king moves pass the occupied set with the king itself removed, so a
// slider's attack correctly extends through the square the king is
// vacating.
func attackedSquares(pos *position.Position, by Color, occupied Bitboard) Bitboard {
	var att Bitboard
	pawns := pos.PiecesBb(by, Pawn)
	for pawns != 0 {
		var sq Square
		pawns, sq = pawns.PopLsb()
		att |= GetPawnAttacks(by, sq)
	}
	knights := pos.PiecesBb(by, Knight)
	for knights != 0 {
		var sq Square
		knights, sq = knights.PopLsb()
		att |= GetPseudoAttacks(Knight, sq)
	}
	att |= GetPseudoAttacks(King, pos.KingSquare(by))

	diag := pos.PiecesBb(by, Bishop) | pos.PiecesBb(by, Queen)
	for diag != 0 {
		var sq Square
		diag, sq = diag.PopLsb()
		att |= GetAttacksBb(Bishop, sq, occupied)
	}
	ortho := pos.PiecesBb(by, Rook) | pos.PiecesBb(by, Queen)
	for ortho != 0 {
		var sq Square
		ortho, sq = ortho.PopLsb()
		att |= GetAttacksBb(Rook, sq, occupied)
	}
	return att
}

// pinnedMasks maps a pinned piece's square to the set of squares it may
// still move or capture to: the line between the king and the pinner,
// including the pinner's square itself.
func pinnedMasks(pos *position.Position, us Color) map[Square]Bitboard {
	them := us.Flip()
	kingSq := pos.KingSquare(us)
	occupied := pos.Occupied()
	ownOcc := pos.OccupiedBy(us)

	pins := make(map[Square]Bitboard)
	for o := Orientation(0); o < 8; o++ {
		line := Ray(o, kingSq)
		blockers := line & occupied
		if blockers == 0 {
			continue
		}
		first := nearest(blockers, orientationAscending[o])
		if ownOcc&SquareBb(first) == 0 {
			continue // nearest blocker is an enemy piece - that's check/adjacency, not a pin
		}
		beyond := Ray(o, first) & occupied
		if beyond == 0 {
			continue
		}
		second := nearest(beyond, orientationAscending[o])
		if !pos.OccupiedBy(them).Has(second) {
			continue
		}
		pt := pos.PieceAt(second).TypeOf()
		slidesThisWay := pt == Queen || (orientationIsDiagonal[o] && pt == Bishop) || (!orientationIsDiagonal[o] && pt == Rook)
		if !slidesThisWay {
			continue
		}
		pins[first] = Intermediate(kingSq, second).PushSquare(second)
	}
	return pins
}

// LegalMoves generates every fully legal move available to the side to
// move in pos.
func LegalMoves(pos *position.Position) moveslice.MoveSlice {
	moves := moveslice.New(48)
	us := pos.NextPlayer()
	them := us.Flip()
	kingSq := pos.KingSquare(us)
	ownOcc := pos.OccupiedBy(us)
	occupied := pos.Occupied()

	occWithoutKing := occupied.PopSquare(kingSq)
	enemyAttacks := attackedSquares(pos, them, occWithoutKing)

	checkers := pos.Attackers(kingSq, them)
	numCheckers := checkers.PopCount()

	// king moves, always considered
	kingTargets := GetPseudoAttacks(King, kingSq) &^ ownOcc &^ enemyAttacks
	t := kingTargets
	for t != 0 {
		var to Square
		t, to = t.PopLsb()
		moves.PushBack(NewMove(kingSq, to, pos.PieceAt(kingSq), pos.PieceAt(to), Normal, PtNone))
	}

	if numCheckers >= 2 {
		return moves
	}

	var captureMask, pushMask Bitboard
	if numCheckers == 0 {
		captureMask = BbAll
		pushMask = BbAll
	} else {
		checkerSq := checkers.Lsb()
		captureMask = checkers
		pt := pos.PieceAt(checkerSq).TypeOf()
		if pt == Bishop || pt == Rook || pt == Queen {
			pushMask = Intermediate(kingSq, checkerSq)
		} else {
			pushMask = BbZero
		}
	}
	allowed := captureMask | pushMask

	pins := pinnedMasks(pos, us)

	generatePawnMoves(pos, us, allowed, pins, &moves)
	generatePieceMoves(pos, us, Knight, allowed, pins, &moves)
	generatePieceMoves(pos, us, Bishop, allowed, pins, &moves)
	generatePieceMoves(pos, us, Rook, allowed, pins, &moves)
	generatePieceMoves(pos, us, Queen, allowed, pins, &moves)

	if numCheckers == 0 {
		generateCastling(pos, us, them, &moves)
	}

	log.Debugf("generated %d legal moves for %v", moves.Len(), us)
	return moves
}

func generatePieceMoves(pos *position.Position, us Color, pt PieceType, allowed Bitboard, pins map[Square]Bitboard, moves *moveslice.MoveSlice) {
	occupied := pos.Occupied()
	ownOcc := pos.OccupiedBy(us)
	pieces := pos.PiecesBb(us, pt)
	for pieces != 0 {
		var from Square
		pieces, from = pieces.PopLsb()
		targets := GetAttacksBb(pt, from, occupied) &^ ownOcc
		targets &= allowed
		if mask, pinned := pins[from]; pinned {
			targets &= mask
		}
		tt := targets
		for tt != 0 {
			var to Square
			tt, to = tt.PopLsb()
			moves.PushBack(NewMove(from, to, pos.PieceAt(from), pos.PieceAt(to), Normal, PtNone))
		}
	}
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func generatePawnMoves(pos *position.Position, us Color, allowed Bitboard, pins map[Square]Bitboard, moves *moveslice.MoveSlice) {
	them := us.Flip()
	occupied := pos.Occupied()
	theirs := pos.OccupiedBy(them)
	pawns := pos.PiecesBb(us, Pawn)
	fwd := us.Direction()
	promoRank := us.PromotionRank()

	for p := pawns; p != 0; {
		var from Square
		p, from = p.PopLsb()
		mask, pinned := pins[from]
		if !pinned {
			mask = BbAll
		}

		one := from.To(fwd)
		if one != SqNone && !occupied.Has(one) {
			emitPawnMove(pos, moves, from, one, PieceNone, mask, allowed, promoRank)
			if from.RankOf() == us.PawnBaseRank() {
				two := one.To(fwd)
				if two != SqNone && !occupied.Has(two) && allowed.Has(two) && mask.Has(two) {
					moves.PushBack(NewMove(from, two, pos.PieceAt(from), PieceNone, Normal, PtNone))
				}
			}
		}

		for _, capDir := range pawnCaptureDirs(us) {
			to := from.To(capDir)
			if to == SqNone {
				continue
			}
			if theirs.Has(to) {
				emitPawnMove(pos, moves, from, to, pos.PieceAt(to), mask, allowed, promoRank)
			} else if to == pos.EnPassantSquare() {
				if mask.Has(to) {
					generateEnPassant(pos, moves, us, from, to)
				}
			}
		}
	}
}

func pawnCaptureDirs(us Color) []Direction {
	if us == White {
		return []Direction{Northeast, Northwest}
	}
	return []Direction{Southeast, Southwest}
}

func emitPawnMove(pos *position.Position, moves *moveslice.MoveSlice, from, to Square, captured Piece, pinMask, allowed Bitboard, promoRank Rank) {
	if !allowed.Has(to) || !pinMask.Has(to) {
		return
	}
	moved := pos.PieceAt(from)
	if to.RankOf() == promoRank {
		for _, pt := range promotionPieces {
			moves.PushBack(NewMove(from, to, moved, captured, Promotion, pt))
		}
		return
	}
	moves.PushBack(NewMove(from, to, moved, captured, Normal, PtNone))
}

// generateEnPassant appends the en-passant capture from 'from' if it
// does not leave the king in check - including the rare horizontal
// discovered-check case where capturing removes both the moving pawn
// and the captured pawn from the king's rank, exposing it to a rook or
// queen that neither pin detection nor the ordinary checker set catches
// (they are keyed on a single piece's square, not a simultaneous
// two-pawn removal).
func generateEnPassant(pos *position.Position, moves *moveslice.MoveSlice, us Color, from, to Square) {
	them := us.Flip()
	kingSq := pos.KingSquare(us)
	capSq := to.To(oppositePawnDir(us))
	capturedPawn := pos.PieceAt(capSq)

	occAfter := pos.Occupied().PopSquare(from).PopSquare(capSq).PushSquare(to)
	if GetAttacksBb(Rook, kingSq, occAfter)&(pos.PiecesBb(them, Rook)|pos.PiecesBb(them, Queen)) != 0 {
		return
	}
	if GetAttacksBb(Bishop, kingSq, occAfter)&(pos.PiecesBb(them, Bishop)|pos.PiecesBb(them, Queen)) != 0 {
		return
	}
	moves.PushBack(NewMove(from, to, pos.PieceAt(from), capturedPawn, EnPassant, PtNone))
}

func oppositePawnDir(us Color) Direction {
	if us == White {
		return South
	}
	return North
}

// generateCastling checks castling rights, that the squares between king
// and rook are empty, and that the king's current, passed-through and
// destination squares are not attacked - using the true occupied set
// (king still on its home square), since removing the king from the
// occupancy (done for ordinary king moves) would let a slider's ray
// falsely extend through it.
func generateCastling(pos *position.Position, us, them Color, moves *moveslice.MoveSlice) {
	rights := pos.CastlingRights()
	occupied := pos.Occupied()
	kingSq := pos.KingSquare(us)

	check := func(sq Square) bool { return pos.IsAttacked(sq, them) }

	if us == White {
		if rights.Has(CastlingWhiteOO) && occupied&KingSideCastleMask(White) == 0 &&
			!check(SqE1) && !check(SqF1) && !check(SqG1) {
			moves.PushBack(NewMove(kingSq, SqG1, pos.PieceAt(kingSq), PieceNone, Castling, PtNone))
		}
		if rights.Has(CastlingWhiteOOO) && occupied&QueenSideCastleMask(White) == 0 &&
			!check(SqE1) && !check(SqD1) && !check(SqC1) {
			moves.PushBack(NewMove(kingSq, SqC1, pos.PieceAt(kingSq), PieceNone, Castling, PtNone))
		}
	} else {
		if rights.Has(CastlingBlackOO) && occupied&KingSideCastleMask(Black) == 0 &&
			!check(SqE8) && !check(SqF8) && !check(SqG8) {
			moves.PushBack(NewMove(kingSq, SqG8, pos.PieceAt(kingSq), PieceNone, Castling, PtNone))
		}
		if rights.Has(CastlingBlackOOO) && occupied&QueenSideCastleMask(Black) == 0 &&
			!check(SqE8) && !check(SqD8) && !check(SqC8) {
			moves.PushBack(NewMove(kingSq, SqC8, pos.PieceAt(kingSq), PieceNone, Castling, PtNone))
		}
	}
}

// LegalCaptures returns the subset of LegalMoves that capture a piece.
func LegalCaptures(pos *position.Position) moveslice.MoveSlice {
	return LegalMoves(pos).Filter(func(m Move) bool { return m.IsCapture() })
}

// LegalNonCaptures returns the subset of LegalMoves that do not capture
// a piece. Together with LegalCaptures this partitions LegalMoves.
func LegalNonCaptures(pos *position.Position) moveslice.MoveSlice {
	return LegalMoves(pos).Filter(func(m Move) bool { return !m.IsCapture() })
}

// HasLegalMove reports whether the side to move has at least one legal
// move - used by terminal-state checks. It builds the full LegalMoves
// list and tests its length.
func HasLegalMove(pos *position.Position) bool {
	return LegalMoves(pos).Len() > 0
}
