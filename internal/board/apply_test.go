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

func TestReversibleMove_RoundTripIsByteEqual(t *testing.T) {
	b := New()
	before := b.Emit()

	for _, m := range b.LegalMoves(types.White) {
		rm := b.MakeReversibleMove(m)
		rm.Release()
		assert.Equal(t, before, b.Emit(), "Release must restore the exact pre-move FEN for move %s", m)
	}
}

func TestReversibleMove_ReleaseIsIdempotent(t *testing.T) {
	b := New()
	before := b.Emit()
	rm := b.MakeReversibleMove(b.LegalMoves(types.White)[0])
	rm.Release()
	rm.Release()
	assert.Equal(t, before, b.Emit())
}

func TestMakeMove_PawnDoublePushSetsEnPassantFile(t *testing.T) {
	b := New()
	assert.NoError(t, b.MakeMove(field("e2"), field("e4"), types.Pawn))
	assert.Equal(t, types.FileE, b.EnPassantFile())
	assert.Equal(t, 0, b.HalfMoveClock())
}

func TestMakeMove_NonPawnNonCaptureIncrementsHalfMoveClock(t *testing.T) {
	// The clock advances on Black's move, not White's: it mirrors
	// fullMoveNumber's own increment condition.
	b := New()
	assert.NoError(t, b.MakeMove(field("g1"), field("f3"), types.Pawn))
	assert.Equal(t, 0, b.HalfMoveClock(), "a lone White non-pawn non-capture move does not advance the clock")
	assert.NoError(t, b.MakeMove(field("b8"), field("c6"), types.Pawn))
	assert.Equal(t, 1, b.HalfMoveClock(), "the clock advances once Black has also moved")
}

func TestMakeMove_FullMoveNumberGrowsOnlyAfterBlack(t *testing.T) {
	b := New()
	assert.Equal(t, 1, b.FullMoveNumber())
	assert.NoError(t, b.MakeMove(field("e2"), field("e4"), types.Pawn))
	assert.Equal(t, 1, b.FullMoveNumber(), "full-move number does not grow after White's move")
	assert.NoError(t, b.MakeMove(field("e7"), field("e5"), types.Pawn))
	assert.Equal(t, 2, b.FullMoveNumber(), "full-move number grows after Black's move")
}

func TestMakeMove_CaptureResetsHalfMoveClockAndRemovesBeaten(t *testing.T) {
	b := New()
	assert.NoError(t, b.MakeMove(field("e2"), field("e4"), types.Pawn))
	assert.NoError(t, b.MakeMove(field("d7"), field("d5"), types.Pawn))
	assert.NoError(t, b.MakeMove(field("e4"), field("d5"), types.Pawn))
	assert.Equal(t, 0, b.HalfMoveClock())
	p, ok := b.GetFigure(field("d5"))
	assert.True(t, ok)
	assert.Equal(t, types.White, p.Piece.Color)
}

func TestMakeMove_EnPassantCaptureRemovesSkippedPawn(t *testing.T) {
	b, err := NewFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	assert.NoError(t, err)
	assert.NoError(t, b.MakeMove(field("e5"), field("d6"), types.Pawn))
	_, stillThere := b.GetFigure(field("d5"))
	assert.False(t, stillThere, "the captured pawn sat on d5, not on the destination d6")
	landed, ok := b.GetFigure(field("d6"))
	assert.True(t, ok)
	assert.Equal(t, types.Pawn, landed.Piece.Kind)
}

func TestMakeMove_CastlingMovesRookToo(t *testing.T) {
	b, err := NewFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.NoError(t, b.MakeMove(field("e1"), field("g1"), types.Pawn))
	rook, ok := b.GetFigure(field("f1"))
	assert.True(t, ok)
	assert.Equal(t, types.Rook, rook.Piece.Kind)
	_, rookGone := b.GetFigure(field("h1"))
	assert.False(t, rookGone)
}

func TestMakeMove_KingMoveClearsBothCastlingRights(t *testing.T) {
	b, err := NewFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.NoError(t, b.MakeMove(field("e1"), field("e2"), types.Pawn))
	assert.False(t, b.CastlingRights().Has(types.CastlingWhiteK))
	assert.False(t, b.CastlingRights().Has(types.CastlingWhiteQ))
	assert.True(t, b.CastlingRights().Has(types.CastlingBlackK))
}

func TestMakeMove_RookMoveClearsMatchingSideOnly(t *testing.T) {
	b, err := NewFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.NoError(t, b.MakeMove(field("a1"), field("a4"), types.Pawn))
	assert.False(t, b.CastlingRights().Has(types.CastlingWhiteQ))
	assert.True(t, b.CastlingRights().Has(types.CastlingWhiteK))
}

func TestMakeMove_CastlingRightsNeverGrow(t *testing.T) {
	b := New()
	seen := b.CastlingRights()
	for i := 0; i < 6; i++ {
		moves := b.LegalMoves(b.SideToMove())
		if len(moves) == 0 {
			break
		}
		assert.NoError(t, b.MakeMove(moves[0].From, moves[0].To, moves[0].Promotion))
		next := b.CastlingRights()
		assert.Equal(t, next, next&seen, "rights must never add a bit not already in the previous set")
		seen = next
	}
}

func TestMakeMove_PromotionReplacesKind(t *testing.T) {
	b, err := NewFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.NoError(t, b.MakeMove(field("a7"), field("a8"), types.Queen))
	p, ok := b.GetFigure(field("a8"))
	assert.True(t, ok)
	assert.Equal(t, types.Queen, p.Piece.Kind)
}

func TestMakeMove_RejectsIllegalMove(t *testing.T) {
	b := New()
	err := b.MakeMove(field("e2"), field("e5"), types.Pawn)
	assert.Error(t, err)
}

func TestMakeMove_RejectsMovingPinnedPieceOffTheLine(t *testing.T) {
	b, err := NewFEN("4r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	assert.NoError(t, err)
	err = b.MakeMove(field("e2"), field("a2"), types.Pawn)
	assert.Error(t, err, "moving the pinned rook off the e-file would expose the king")
}
