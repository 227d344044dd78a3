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

// Package position implements board state: FEN I/O, make/unmake with a
// rolling Zobrist hash and undo history, and the attack/check/material
// queries that do not require generating a move list.
package position

import (
	"strconv"
	"strings"

	"github.com/franckopp/chesscore/internal/assertx"
	"github.com/franckopp/chesscore/internal/clog"
	"github.com/franckopp/chesscore/pkg/zobrist"

	. "github.com/franckopp/chesscore/pkg/types"
)

var log = clog.Get("position")

const startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// historyState is one undo record, pushed by Make and popped by Unmake.
type historyState struct {
	move            Move
	zobristKey      zobrist.Key
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
}

// Position is a full chess board state: piece placement, side to move,
// castling rights, en-passant target, move clocks and a rolling Zobrist
// hash, plus an undo history stack.
type Position struct {
	board      [SqLength]Piece
	piecesBb   [ColorLength][PtLength]Bitboard
	occupiedBb [ColorLength]Bitboard
	kingSquare [ColorLength]Square

	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color
	moveNumber      int

	zobristKey zobrist.Key

	history []historyState
}

// New returns the standard chess starting position.
func New() *Position {
	p, err := NewFromFen(startFen)
	if err != nil {
		panic("chesscore: malformed built-in start FEN: " + err.Error())
	}
	return p
}

// NewFromFen parses a 6-field FEN string into a Position.
func NewFromFen(fen string) (*Position, error) {
	p := &Position{enPassantSquare: SqNone}
	if err := p.setupFromFen(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color { return p.nextPlayer }

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en-passant target square, or
// SqNone if none is available.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// HalfMoveClock returns the number of half moves since the last capture
// or pawn move.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// ZobristKey returns the position's current rolling hash.
func (p *Position) ZobristKey() zobrist.Key { return p.zobristKey }

// PieceAt returns the piece occupying sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// Occupied returns the bitboard of all occupied squares.
func (p *Position) Occupied() Bitboard { return p.occupiedBb[White] | p.occupiedBb[Black] }

// OccupiedBy returns the bitboard of all squares occupied by c.
func (p *Position) OccupiedBy(c Color) Bitboard { return p.occupiedBb[c] }

// PiecesBb returns the bitboard of c's pieces of type pt.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }

// HistoryLen reports how many moves have been made since the position
// was created (via Make calls still standing, i.e. not yet Unmake'd).
func (p *Position) HistoryLen() int { return len(p.history) }

func (p *Position) putPiece(pc Piece, sq Square) {
	p.board[sq] = pc
	c := pc.ColorOf()
	pt := pc.TypeOf()
	p.piecesBb[c][pt] = p.piecesBb[c][pt].PushSquare(sq)
	p.occupiedBb[c] = p.occupiedBb[c].PushSquare(sq)
	if pt == King {
		p.kingSquare[c] = sq
	}
	p.zobristKey ^= zobrist.Key(zobrist.PieceSquare(pc, sq))
}

func (p *Position) removePiece(sq Square) {
	pc := p.board[sq]
	if pc == PieceNone {
		return
	}
	c := pc.ColorOf()
	pt := pc.TypeOf()
	p.piecesBb[c][pt] = p.piecesBb[c][pt].PopSquare(sq)
	p.occupiedBb[c] = p.occupiedBb[c].PopSquare(sq)
	p.board[sq] = PieceNone
	p.zobristKey ^= zobrist.Key(zobrist.PieceSquare(pc, sq))
}

func (p *Position) movePiece(from, to Square) {
	pc := p.board[from]
	p.removePiece(from)
	p.removePiece(to)
	p.putPiece(pc, to)
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare == SqNone {
		return
	}
	p.zobristKey ^= zobrist.Key(zobrist.EnPassantFile(p.enPassantSquare.FileOf()))
	p.enPassantSquare = SqNone
}

func (p *Position) invalidateCastlingRights(from, to Square) {
	lose := GetCastlingRights(from) | GetCastlingRights(to)
	if lose == CastlingNone {
		return
	}
	p.zobristKey ^= zobrist.Key(zobrist.Castling(p.castlingRights))
	p.castlingRights = p.castlingRights.Remove(lose)
	p.zobristKey ^= zobrist.Key(zobrist.Castling(p.castlingRights))
}

// Make applies m to the position, pushing an undo record. The caller is
// responsible for only ever calling Make with a legal move; Make itself
// performs no legality check.
func (p *Position) Make(m Move) {
	rec := historyState{
		move:            m,
		zobristKey:      p.zobristKey,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfMoveClock:   p.halfMoveClock,
	}
	p.history = append(p.history, rec)

	from, to := m.From(), m.To()
	moved := m.MovedPiece()
	mover := moved.ColorOf()

	p.clearEnPassant()

	if m.IsCapture() || moved.TypeOf() == Pawn {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	switch m.MoveType() {
	case Normal:
		if m.IsCapture() {
			p.removePiece(to)
		}
		p.movePiece(from, to)
		p.invalidateCastlingRights(from, to)
		if moved.TypeOf() == Pawn && RankDistance(from, to) == 2 {
			epSq := to.To(oppositeDirection(mover))
			p.enPassantSquare = epSq
			p.zobristKey ^= zobrist.Key(zobrist.EnPassantFile(epSq.FileOf()))
		}
	case Promotion:
		if m.IsCapture() {
			p.removePiece(to)
		}
		p.removePiece(from)
		p.putPiece(MakePiece(mover, m.PromotionType()), to)
		p.invalidateCastlingRights(from, to)
	case EnPassant:
		capSq := to.To(oppositeDirection(mover))
		p.removePiece(capSq)
		p.movePiece(from, to)
	case Castling:
		p.movePiece(from, to)
		switch to {
		case SqG1:
			p.movePiece(SqH1, SqF1)
		case SqC1:
			p.movePiece(SqA1, SqD1)
		case SqG8:
			p.movePiece(SqH8, SqF8)
		case SqC8:
			p.movePiece(SqA8, SqD8)
		}
		p.invalidateCastlingRights(from, to)
	}

	p.zobristKey ^= zobrist.Key(zobrist.SideToMove())
	p.nextPlayer = p.nextPlayer.Flip()
	if p.nextPlayer == White {
		p.moveNumber++
	}

	if assertx.DEBUG {
		err := p.Validate()
		assertx.Assert(err == nil, "position invalid after Make(%v): %v", m, err)
	}
}

// Unmake reverses the last move applied by Make. Calling Unmake with no
// preceding Make panics.
func (p *Position) Unmake() {
	n := len(p.history)
	if n == 0 {
		panic("chesscore: Unmake called with empty history")
	}
	rec := p.history[n-1]
	p.history = p.history[:n-1]
	m := rec.move

	p.nextPlayer = p.nextPlayer.Flip()
	if p.nextPlayer == Black {
		p.moveNumber--
	}

	from, to := m.From(), m.To()
	mover := m.MovedPiece().ColorOf()

	switch m.MoveType() {
	case Normal:
		p.board[to] = PieceNone
		p.piecesBb[mover][m.MovedPiece().TypeOf()] = p.piecesBb[mover][m.MovedPiece().TypeOf()].PopSquare(to)
		p.occupiedBb[mover] = p.occupiedBb[mover].PopSquare(to)
		p.board[from] = m.MovedPiece()
		p.piecesBb[mover][m.MovedPiece().TypeOf()] = p.piecesBb[mover][m.MovedPiece().TypeOf()].PushSquare(from)
		p.occupiedBb[mover] = p.occupiedBb[mover].PushSquare(from)
		if m.MovedPiece().TypeOf() == King {
			p.kingSquare[mover] = from
		}
		if m.IsCapture() {
			cap := m.CapturedPiece()
			capColor := cap.ColorOf()
			p.board[to] = cap
			p.piecesBb[capColor][cap.TypeOf()] = p.piecesBb[capColor][cap.TypeOf()].PushSquare(to)
			p.occupiedBb[capColor] = p.occupiedBb[capColor].PushSquare(to)
		}
	case Promotion:
		promoted := MakePiece(mover, m.PromotionType())
		p.piecesBb[mover][promoted.TypeOf()] = p.piecesBb[mover][promoted.TypeOf()].PopSquare(to)
		p.occupiedBb[mover] = p.occupiedBb[mover].PopSquare(to)
		p.board[to] = PieceNone
		p.board[from] = m.MovedPiece()
		p.piecesBb[mover][Pawn] = p.piecesBb[mover][Pawn].PushSquare(from)
		p.occupiedBb[mover] = p.occupiedBb[mover].PushSquare(from)
		if m.IsCapture() {
			cap := m.CapturedPiece()
			capColor := cap.ColorOf()
			p.board[to] = cap
			p.piecesBb[capColor][cap.TypeOf()] = p.piecesBb[capColor][cap.TypeOf()].PushSquare(to)
			p.occupiedBb[capColor] = p.occupiedBb[capColor].PushSquare(to)
		}
	case EnPassant:
		p.board[to] = PieceNone
		p.piecesBb[mover][Pawn] = p.piecesBb[mover][Pawn].PopSquare(to)
		p.occupiedBb[mover] = p.occupiedBb[mover].PopSquare(to)
		p.board[from] = m.MovedPiece()
		p.piecesBb[mover][Pawn] = p.piecesBb[mover][Pawn].PushSquare(from)
		p.occupiedBb[mover] = p.occupiedBb[mover].PushSquare(from)
		capSq := to.To(oppositeDirection(mover))
		cap := m.CapturedPiece()
		p.board[capSq] = cap
		p.piecesBb[cap.ColorOf()][Pawn] = p.piecesBb[cap.ColorOf()][Pawn].PushSquare(capSq)
		p.occupiedBb[cap.ColorOf()] = p.occupiedBb[cap.ColorOf()].PushSquare(capSq)
	case Castling:
		p.undoSimpleMove(to, from, mover, King)
		switch to {
		case SqG1:
			p.undoSimpleMove(SqF1, SqH1, mover, Rook)
		case SqC1:
			p.undoSimpleMove(SqD1, SqA1, mover, Rook)
		case SqG8:
			p.undoSimpleMove(SqF8, SqH8, mover, Rook)
		case SqC8:
			p.undoSimpleMove(SqD8, SqA8, mover, Rook)
		}
	}

	if m.MovedPiece().TypeOf() == King {
		p.kingSquare[mover] = from
	}

	p.zobristKey = rec.zobristKey
	p.castlingRights = rec.castlingRights
	p.enPassantSquare = rec.enPassantSquare
	p.halfMoveClock = rec.halfMoveClock
}

// MakeNull passes the move without touching a single piece: it clears
// any en-passant target, resets the halfmove clock, and flips the side
// to move - used by search code that wants to probe "what if I could
// skip a turn" without disturbing board state.
func (p *Position) MakeNull() {
	rec := historyState{
		move:            MoveNone,
		zobristKey:      p.zobristKey,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfMoveClock:   p.halfMoveClock,
	}
	p.history = append(p.history, rec)

	p.clearEnPassant()
	p.halfMoveClock = 0
	p.zobristKey ^= zobrist.Key(zobrist.SideToMove())
	p.nextPlayer = p.nextPlayer.Flip()
	if p.nextPlayer == White {
		p.moveNumber++
	}
}

// UnmakeNull reverses the most recent MakeNull.
func (p *Position) UnmakeNull() {
	n := len(p.history)
	if n == 0 {
		panic("chesscore: UnmakeNull called with empty history")
	}
	rec := p.history[n-1]
	p.history = p.history[:n-1]

	p.nextPlayer = p.nextPlayer.Flip()
	if p.nextPlayer == Black {
		p.moveNumber--
	}

	p.zobristKey = rec.zobristKey
	p.castlingRights = rec.castlingRights
	p.enPassantSquare = rec.enPassantSquare
	p.halfMoveClock = rec.halfMoveClock
}

// Clear resets p to a defined, empty state: no pieces, White to move,
// no castling rights, no en-passant target, zero clocks, empty history.
// This is the reset state setupFromFen leaves behind on a parse failure.
func (p *Position) Clear() {
	for s := SqA1; s < SqLength; s++ {
		p.board[s] = PieceNone
	}
	p.piecesBb = [ColorLength][PtLength]Bitboard{}
	p.occupiedBb = [ColorLength]Bitboard{}
	p.kingSquare = [ColorLength]Square{}
	p.castlingRights = CastlingNone
	p.enPassantSquare = SqNone
	p.halfMoveClock = 0
	p.nextPlayer = White
	p.moveNumber = 1
	p.zobristKey = 0
	p.history = p.history[:0]
}

// Threefold reports whether the current position has recurred at least
// twice before in the irreversible-move-free tail of history (three
// occurrences total, counting the current one).
func (p *Position) Threefold() bool {
	return p.CheckRepetition(3)
}

// FiftyMoves reports whether the halfmove clock has reached the
// fifty-move mark, making the position drawable on that rule alone.
func (p *Position) FiftyMoves() bool {
	return p.halfMoveClock >= 100
}

// Validate checks the structural invariants a Position must always
// satisfy and returns the first violation found, or nil. It is a
// diagnostic helper; the only mutator that calls it is Make, and only in
// debug builds (assertx.DEBUG), where a violation panics.
func (p *Position) Validate() error {
	if p.occupiedBb[White]&p.occupiedBb[Black] != 0 {
		return &InvariantError{Msg: "white and black occupancy overlap"}
	}
	var union Bitboard
	for pt := King; pt < PtLength; pt++ {
		union |= p.piecesBb[White][pt] | p.piecesBb[Black][pt]
	}
	if union != p.occupiedBb[White]|p.occupiedBb[Black] {
		return &InvariantError{Msg: "piece bitboards do not cover occupancy exactly"}
	}
	for _, c := range []Color{White, Black} {
		if p.piecesBb[c][King].PopCount() != 1 {
			return &InvariantError{Msg: "side does not have exactly one king"}
		}
		if p.piecesBb[c][Pawn]&(Rank1Bb|Rank8Bb) != 0 {
			return &InvariantError{Msg: "pawn on the back rank"}
		}
	}
	if p.IsAttacked(p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer) {
		return &InvariantError{Msg: "side not to move is in check"}
	}
	return nil
}

// undoSimpleMove relocates a piece from curSq back to origSq without any
// Zobrist bookkeeping - Unmake restores the hash wholesale from history.
func (p *Position) undoSimpleMove(curSq, origSq Square, c Color, pt PieceType) {
	p.board[curSq] = PieceNone
	p.piecesBb[c][pt] = p.piecesBb[c][pt].PopSquare(curSq)
	p.occupiedBb[c] = p.occupiedBb[c].PopSquare(curSq)
	p.board[origSq] = MakePiece(c, pt)
	p.piecesBb[c][pt] = p.piecesBb[c][pt].PushSquare(origSq)
	p.occupiedBb[c] = p.occupiedBb[c].PushSquare(origSq)
}

func oppositeDirection(mover Color) Direction {
	if mover == White {
		return South
	}
	return North
}

// setupFromFen parses the six FEN fields into p, replacing any prior state.
// On a parse failure p is left in the Clear state.
func (p *Position) setupFromFen(fen string) (err error) {
	defer func() {
		if err != nil {
			p.Clear()
		}
	}()

	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return &ParseError{Input: fen, Msg: "expected at least 4 fields"}
	}

	for s := SqA1; s < SqLength; s++ {
		p.board[s] = PieceNone
	}
	p.piecesBb = [ColorLength][PtLength]Bitboard{}
	p.occupiedBb = [ColorLength]Bitboard{}
	p.zobristKey = 0
	p.history = p.history[:0]

	rank, file := int(Rank8), int(FileA)
	for _, ch := range fields[0] {
		switch {
		case ch == '/':
			if file != 8 {
				return &ParseError{Input: fen, Msg: "rank did not fill 8 files before '/'"}
			}
			rank--
			file = int(FileA)
			if rank < int(Rank1) {
				return &ParseError{Input: fen, Msg: "too many ranks"}
			}
		case ch >= '1' && ch <= '8':
			file += int(ch - '0')
			if file > 8 {
				return &ParseError{Input: fen, Msg: "rank overflowed 8 files"}
			}
		default:
			if file >= 8 {
				return &ParseError{Input: fen, Msg: "rank overflowed 8 files"}
			}
			pc, ok := PieceFromChar(byte(ch))
			if !ok {
				return &ParseError{Input: fen, Msg: "invalid piece letter " + string(ch)}
			}
			p.putPiece(pc, MakeSquare(File(file), Rank(rank)))
			file++
		}
	}
	if file != 8 || rank != int(Rank1) {
		return &ParseError{Input: fen, Msg: "board field did not describe exactly 8 ranks"}
	}

	switch fields[1] {
	case "w":
		p.nextPlayer = White
	case "b":
		p.nextPlayer = Black
	default:
		return &ParseError{Input: fen, Msg: "side to move must be 'w' or 'b'"}
	}

	p.castlingRights = CastlingNone
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castlingRights = p.castlingRights.Add(CastlingWhiteOO)
			case 'Q':
				p.castlingRights = p.castlingRights.Add(CastlingWhiteOOO)
			case 'k':
				p.castlingRights = p.castlingRights.Add(CastlingBlackOO)
			case 'q':
				p.castlingRights = p.castlingRights.Add(CastlingBlackOOO)
			default:
				return &ParseError{Input: fen, Msg: "invalid castling letter " + string(ch)}
			}
		}
	}
	p.zobristKey ^= zobrist.Key(zobrist.Castling(p.castlingRights))

	p.enPassantSquare = SqNone
	if fields[3] != "-" {
		epSq, ok := SquareOf(fields[3])
		if !ok {
			return &ParseError{Input: fen, Msg: "invalid en passant square " + fields[3]}
		}
		p.enPassantSquare = epSq
		p.zobristKey ^= zobrist.Key(zobrist.EnPassantFile(epSq.FileOf()))
	}

	p.halfMoveClock = 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return &ParseError{Input: fen, Msg: "invalid half move clock"}
		}
		p.halfMoveClock = n
	}

	p.moveNumber = 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return &ParseError{Input: fen, Msg: "invalid full move number"}
		}
		p.moveNumber = n
	}

	if p.nextPlayer == Black {
		p.zobristKey ^= zobrist.Key(zobrist.SideToMove())
	}

	log.Debugf("parsed fen %q", fen)
	return nil
}

// Fen renders the position as a 6-field FEN string.
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		empty := 0
		for f := int(FileA); f <= int(FileH); f++ {
			pc := p.board[MakeSquare(File(f), Rank(r))]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > int(Rank1) {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.nextPlayer.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.moveNumber))
	return sb.String()
}

// String renders the position as its FEN.
func (p *Position) String() string {
	return p.Fen()
}

// StringBoard renders the debug stream format: an 8x8 grid of piece
// letters, rank 8 on top and "-" for empty squares, followed by the
// castling string, the en-passant square (or "-"), and the side to
// move. Not a stable wire format - Fen is what round-trips.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := int(FileA); f <= int(FileH); f++ {
			pc := p.board[MakeSquare(File(f), Rank(r))]
			if pc == PieceNone {
				sb.WriteByte('-')
			} else {
				sb.WriteByte(pc.Char())
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(p.castlingRights.String())
	sb.WriteByte('\n')
	sb.WriteString("EP: ")
	if p.enPassantSquare == SqNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.enPassantSquare.String())
	}
	sb.WriteByte('\n')
	sb.WriteString("Turn: ")
	sb.WriteString(p.nextPlayer.String())
	return sb.String()
}
