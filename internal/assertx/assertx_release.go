//go:build !debug
// +build !debug

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

// Package assertx is a helper for invariant checks meant only for
// non-production builds. Using it makes it clear an assertion is
// diagnostic, not part of the contract callers can rely on.
package assertx

// DEBUG is false unless built with `-tags debug`.
const DEBUG = false

// Assert is a no-op in release builds. Go still evaluates a call's
// arguments even when the call itself does nothing, so call sites on a
// hot path should additionally guard with `if assertx.DEBUG { ... }`:
//
//	if assertx.DEBUG {
//	    assertx.Assert(sq.IsValid(), "invalid square %v", sq)
//	}
func Assert(test bool, msg string, a ...interface{}) {}
