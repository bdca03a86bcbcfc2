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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_MessagesNameTheOffendingContext(t *testing.T) {
	e4 := mustField("e4")

	var err error = &WrongFieldError{Raw: "z9"}
	assert.Contains(t, err.Error(), "z9")

	err = &NoFigureError{At: e4}
	assert.Contains(t, err.Error(), "e4")

	err = &FieldNotEmptyError{At: e4, Occupant: Piece{Kind: Queen, Color: White}}
	assert.Contains(t, err.Error(), "e4")
	assert.Contains(t, err.Error(), "Q")

	err = &IllegalMoveError{From: e4, To: mustField("e5"), Reason: "blocked"}
	assert.Contains(t, err.Error(), "blocked")

	err = &BadBoardStatusError{Status: StatusDraw}
	assert.Contains(t, err.Error(), "Draw")

	err = &InvalidFENError{FEN: "bogus", Reason: "too few fields"}
	assert.Contains(t, err.Error(), "too few fields")

	err = &UnknownCommandError{Line: "frobnicate"}
	assert.Contains(t, err.Error(), "frobnicate")
}
