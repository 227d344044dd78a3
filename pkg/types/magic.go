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

import "math/bits"

// magic holds one square's fancy-magic-bitboard entry: a relevancy mask,
// the multiplier, the right-shift and the resulting attack table slice.
type magic struct {
	mask  Bitboard
	number Bitboard
	table []Bitboard
	shift uint
}

func (m *magic) index(occupied Bitboard) uint64 {
	occ := occupied & m.mask
	return uint64(occ*m.number) >> m.shift
}

func (m *magic) attacks(occupied Bitboard) Bitboard {
	return m.table[m.index(occupied)]
}

var bishopMagics [SqLength]magic
var rookMagics [SqLength]magic

// prnG is a xorshift64star pseudo-random generator, used only to search
// for magic multipliers at init time - never on a hot path.
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (p *prnG) rand64() uint64 {
	p.s ^= p.s >> 12
	p.s ^= p.s << 25
	p.s ^= p.s >> 27
	return p.s * 2685821657736338717
}

// sparseRand ANDs three draws together to bias toward sparse bit patterns,
// which are more likely to be valid magic multipliers.
func (p *prnG) sparseRand() uint64 {
	return p.rand64() & p.rand64() & p.rand64()
}

// seeds, one per rank, taken from the Stockfish magic-bitboard search -
// tuned to keep the search for each square's magic number fast.
var magicSeeds = [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func initMagics() {
	initMagicsFor(Bishop, &bishopMagics, bishopDirs)
	initMagicsFor(Rook, &rookMagics, rookDirs)
}

func initMagicsFor(pt PieceType, table *[SqLength]magic, dirs []Direction) {
	var occupancy [4096]Bitboard
	var reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0

	for s := SqA1; s < SqLength; s++ {
		edges := ((Rank1Bb | Rank8Bb) &^ rankBb[s.RankOf()]) | ((FileABb | FileHBb) &^ fileBb[s.FileOf()])
		mask := slidingAttack(dirs, s, BbZero) &^ edges

		size := 1 << uint(mask.PopCount())
		shift := uint(64 - mask.PopCount())

		m := &table[s]
		m.mask = mask
		m.shift = shift
		m.table = make([]Bitboard, size)

		b := Bitboard(0)
		n := 0
		for {
			occupancy[n] = b
			reference[n] = slidingAttack(dirs, s, b)
			n++
			b = (b - mask) & mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(magicSeeds[s.RankOf()])
		i := 0
		for i < n {
			m.number = 0
			for bits.OnesCount64(uint64((m.number*Bitboard(mask))>>58)) < 6 {
				m.number = Bitboard(rng.sparseRand())
			}
			cnt++
			for i = 0; i < n; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.table[idx] = reference[i]
				} else if m.table[idx] != reference[i] {
					break
				}
			}
		}
	}
}
