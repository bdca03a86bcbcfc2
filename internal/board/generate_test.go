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

func TestLegalMoves_StartingPositionHasTwentyMoves(t *testing.T) {
	b := New()
	assert.Len(t, b.LegalMoves(types.White), 20)
}

func TestLegalMoves_NeverLeaveOwnKingAttacked(t *testing.T) {
	// White king pinned: moving the rook off the e-file would expose it.
	b, err := NewFEN("4r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	assert.NoError(t, err)
	for _, m := range b.LegalMoves(types.White) {
		if m.From.String() == "e2" {
			assert.Equal(t, types.FileE, m.To.File(), "pinned rook may only move along the e-file")
		}
	}
}

func TestLegalMoves_SubsetOfPseudoMoves(t *testing.T) {
	b := New()
	legal := b.legalMovesUnannotated(types.White)
	assert.NotEmpty(t, legal)
	for _, m := range legal {
		p := b.At(m.From)
		assert.True(t, p.IsValid())
		assert.Equal(t, types.White, p.Color)
	}
}

func TestLegalMoves_AnnotatesCheck(t *testing.T) {
	b, err := NewFEN("4k3/8/8/8/8/8/7R/4K3 w - - 0 1")
	assert.NoError(t, err)
	var found bool
	for _, m := range b.LegalMoves(types.White) {
		if m.To.String() == "h8" {
			assert.True(t, m.IsCheck)
			found = true
		}
	}
	assert.True(t, found)
}

func TestLegalMoves_AnnotatesMate(t *testing.T) {
	// Standard back-rank mate pattern: Ra8 is mate.
	b, err := NewFEN("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	var found bool
	for _, m := range b.LegalMoves(types.White) {
		if m.From.String() == "a1" && m.To.String() == "a8" {
			assert.True(t, m.IsCheck)
			assert.True(t, m.IsMate)
			found = true
		}
	}
	assert.True(t, found)
}

func TestIsInCheck(t *testing.T) {
	b, err := NewFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, b.IsInCheck(types.White))
	assert.False(t, b.IsInCheck(types.Black))
}

func TestIsLegal(t *testing.T) {
	b := New()
	_, ok := b.IsLegal(types.White, types.NewMove(field("e2"), field("e4"), types.Pawn))
	assert.True(t, ok)
	_, ok = b.IsLegal(types.White, types.NewMove(field("e2"), field("e5"), types.Pawn))
	assert.False(t, ok)
}
