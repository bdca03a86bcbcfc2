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

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kallaslund/chesscore/internal/types"
)

func TestStatus_OngoingGame(t *testing.T) {
	b := New()
	assert.Equal(t, types.StatusNone, b.Status())
}

func TestStatus_Checkmate(t *testing.T) {
	b, err := NewFEN("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.NoError(t, b.MakeMove(field("a1"), field("a8"), types.Pawn))
	assert.Equal(t, types.StatusWhiteWon, b.Status())
}

func TestStatus_Stalemate(t *testing.T) {
	// Black king a8 has no legal move and is not in check: classic stalemate.
	b, err := NewFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	assert.False(t, b.IsInCheck(types.Black))
	assert.Equal(t, types.StatusDraw, b.Status())
}

func TestStatus_InsufficientMaterial_BareKings(t *testing.T) {
	b, err := NewFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, types.StatusDraw, b.Status())
}

func TestStatus_InsufficientMaterial_SingleMinor(t *testing.T) {
	b, err := NewFEN("4k3/8/8/8/8/8/8/4KN2 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, types.StatusDraw, b.Status())
}

func TestStatus_SufficientMaterial_RookIsNotInsufficient(t *testing.T) {
	b, err := NewFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, types.StatusNone, b.Status())
}

func TestStatus_FiftyMoveRule(t *testing.T) {
	// King and queen shuffle back and forth: no pawn move or capture ever
	// occurs, so the clock only advances on Black's half of each pair.
	b, err := NewFEN("8/4k3/5q2/8/8/P7/4K3/8 w - - 0 0")
	assert.NoError(t, err)

	shufflePair := func() {
		assert.NoError(t, b.MakeMove(field("e2"), field("e3"), types.Pawn))
		assert.NoError(t, b.MakeMove(field("f6"), field("f7"), types.Pawn))
		assert.NoError(t, b.MakeMove(field("e3"), field("e2"), types.Pawn))
		assert.NoError(t, b.MakeMove(field("f7"), field("f6"), types.Pawn))
	}
	for i := 0; i < 24; i++ {
		shufflePair()
	}
	assert.Equal(t, 48, b.HalfMoveClock())

	assert.NoError(t, b.MakeMove(field("e2"), field("e3"), types.Pawn))
	assert.NoError(t, b.MakeMove(field("f6"), field("f7"), types.Pawn))
	assert.Equal(t, 49, b.HalfMoveClock())

	assert.NoError(t, b.MakeMove(field("e3"), field("e2"), types.Pawn))
	assert.Equal(t, 49, b.HalfMoveClock())

	assert.NoError(t, b.MakeMove(field("f7"), field("f6"), types.Pawn))
	assert.Equal(t, 50, b.HalfMoveClock())
	assert.Equal(t, types.StatusDraw, b.Status())
}
