// +build !debug

/*
 * chesscore - a UCI chess engine written in Go
 *
 * MIT License
 *
 * Copyright (c) 2019-2026 chesscore contributors
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

// Package assert lets internal invariants be stated inline without paying
// for them in a release build. Build with "-tags debug" to turn them on.
package assert

// DEBUG is true only when built with the "debug" build tag.
const DEBUG = false

// Assert panics with msg (formatted with a) if test is false. Guard calls
// with "if assert.DEBUG" so the arguments are not evaluated in release
// builds either:
//
//	if assert.DEBUG {
//		assert.Assert(p.board[sq].IsValid(), "expected a piece on %s", sq)
//	}
func Assert(test bool, msg string, a ...interface{}) {}
