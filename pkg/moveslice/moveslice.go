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

// Package moveslice is a small growable slice of Move with front/back
// push/pop and filter helpers, used by the move generator and perft
// divide.
package moveslice

import (
	. "github.com/franckopp/chesscore/pkg/types"
)

// MoveSlice is a []Move with front/back push/pop helpers.
type MoveSlice []Move

// New returns an empty MoveSlice with the given initial capacity.
func New(capacity int) MoveSlice {
	return make(MoveSlice, 0, capacity)
}

// Len returns the number of moves currently held.
func (ms MoveSlice) Len() int { return len(ms) }

// Cap returns the slice's current capacity.
func (ms MoveSlice) Cap() int { return cap(ms) }

// PushBack appends m to the end.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// PopBack removes and returns the last move. Panics if ms is empty.
func (ms *MoveSlice) PopBack() Move {
	old := *ms
	n := len(old)
	if n == 0 {
		panic("chesscore: PopBack on empty MoveSlice")
	}
	m := old[n-1]
	*ms = old[:n-1]
	return m
}

// PushFront inserts m at the front, shifting every other element back.
func (ms *MoveSlice) PushFront(m Move) {
	old := *ms
	*ms = append(old, MoveNone)
	copy((*ms)[1:], old)
	(*ms)[0] = m
}

// PopFront removes and returns the first move. Panics if ms is empty.
func (ms *MoveSlice) PopFront() Move {
	old := *ms
	if len(old) == 0 {
		panic("chesscore: PopFront on empty MoveSlice")
	}
	m := old[0]
	*ms = old[1:]
	return m
}

// Clear empties ms without releasing its backing array.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// At returns the move at index i.
func (ms MoveSlice) At(i int) Move { return ms[i] }

// Filter returns a new MoveSlice containing only the moves for which
// keep returns true.
func (ms MoveSlice) Filter(keep func(Move) bool) MoveSlice {
	out := New(len(ms))
	for _, m := range ms {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
