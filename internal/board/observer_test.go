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

type recordingObserver struct {
	added    int
	removed  int
	moved    int
	finished int
}

func (r *recordingObserver) FigureAdded(types.Piece, types.Field) { r.added++ }
func (r *recordingObserver) FigureRemoved(types.Field)            { r.removed++ }
func (r *recordingObserver) FigureMoved(_, _ types.Field)         { r.moved++ }
func (r *recordingObserver) GameFinished(types.GameStatus)        { r.finished++ }

func TestLegalMoves_SpeculativeExplorationNotifiesNothing(t *testing.T) {
	b := New()
	obs := &recordingObserver{}
	b.Subscribe(obs)

	b.LegalMoves(types.White)

	assert.Zero(t, obs.added, "probing pseudo-moves must not notify FigureAdded")
	assert.Zero(t, obs.removed, "probing pseudo-moves must not notify FigureRemoved")
	assert.Zero(t, obs.moved, "probing pseudo-moves must not notify FigureMoved")
}

func TestMakeReversibleMove_NotifiesNothing(t *testing.T) {
	b := New()
	obs := &recordingObserver{}
	b.Subscribe(obs)

	rm := b.MakeReversibleMove(b.LegalMoves(types.White)[0])
	rm.Release()

	assert.Zero(t, obs.moved, "MakeReversibleMove must not notify observers")
}

func TestMakeMove_NotifiesFigureMoved(t *testing.T) {
	b := New()
	obs := &recordingObserver{}
	b.Subscribe(obs)

	assert.NoError(t, b.MakeMove(field("e2"), field("e4"), types.Pawn))
	assert.Equal(t, 1, obs.moved)
	assert.Zero(t, obs.removed)
}

func TestMakeMove_CaptureNotifiesFigureRemoved(t *testing.T) {
	b, err := NewFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	obs := &recordingObserver{}
	b.Subscribe(obs)

	assert.NoError(t, b.MakeMove(field("e4"), field("d5"), types.Pawn))
	assert.Equal(t, 1, obs.removed, "capturing the black pawn must notify FigureRemoved")
	assert.Equal(t, 1, obs.moved)
}

func TestMakeMove_EnPassantCaptureNotifiesFigureRemoved(t *testing.T) {
	b, err := NewFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	assert.NoError(t, err)
	obs := &recordingObserver{}
	b.Subscribe(obs)

	assert.NoError(t, b.MakeMove(field("e5"), field("d6"), types.Pawn))
	assert.Equal(t, 1, obs.removed, "en-passant must notify FigureRemoved for the skipped pawn")
}

func TestMakeMove_CastlingNotifiesTwoFigureMoved(t *testing.T) {
	b, err := NewFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	obs := &recordingObserver{}
	b.Subscribe(obs)

	assert.NoError(t, b.MakeMove(field("e1"), field("g1"), types.Pawn))
	assert.Equal(t, 2, obs.moved, "castling moves both the king and the rook")
}

func TestUnsubscribe_StopsFurtherNotifications(t *testing.T) {
	b := New()
	obs := &recordingObserver{}
	b.Subscribe(obs)
	b.Unsubscribe(obs)

	assert.NoError(t, b.MakeMove(field("e2"), field("e4"), types.Pawn))
	assert.Zero(t, obs.moved)
}
