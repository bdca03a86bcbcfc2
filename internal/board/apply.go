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

import "github.com/kallaslund/chesscore/internal/types"

// boardState is a complete snapshot of everything a move can change. A
// ReversibleMove holds one of these rather than an incremental undo
// record: the struct is small enough (64 pieces plus five scalars) that a
// full copy is both simpler and cheap, which matters more than shaving the
// last cycles off undo given the non-goals around micro-optimizing search.
type boardState struct {
	squares        [64]types.Piece
	sideToMove     types.Color
	castlingRights types.CastlingRights
	enPassantFile  types.File
	halfMoveClock  int
	fullMoveNumber int
}

func (b *Board) snapshot() boardState {
	return boardState{
		squares:        b.squares,
		sideToMove:     b.sideToMove,
		castlingRights: b.castlingRights,
		enPassantFile:  b.enPassantFile,
		halfMoveClock:  b.halfMoveClock,
		fullMoveNumber: b.fullMoveNumber,
	}
}

func (b *Board) restore(s boardState) {
	b.squares = s.squares
	b.sideToMove = s.sideToMove
	b.castlingRights = s.castlingRights
	b.enPassantFile = s.enPassantFile
	b.halfMoveClock = s.halfMoveClock
	b.fullMoveNumber = s.fullMoveNumber
}

// ReversibleMove is a scoped handle returned by MakeReversibleMove. Release
// restores the board to the exact state it had before the move; it is
// idempotent so a deferred Release after an early explicit one is safe.
type ReversibleMove struct {
	board    *Board
	snapshot boardState
	released bool
}

// Release restores the board to its pre-move state. Safe to call more than
// once.
func (rm *ReversibleMove) Release() {
	if rm.released {
		return
	}
	rm.board.restore(rm.snapshot)
	rm.released = true
}

// MakeReversibleMove applies m and returns a handle that undoes it on
// Release. m must already be legal (typically a value returned by
// LegalMoves); the call does not re-validate it. No observers are
// notified — this is the path Search and the legality filter use to
// explore without mutating the visible game state.
func (b *Board) MakeReversibleMove(m types.Move) *ReversibleMove {
	return b.makeReversibleMoveUnchecked(m)
}

func (b *Board) makeReversibleMoveUnchecked(m types.Move) *ReversibleMove {
	snap := b.snapshot()
	b.doMove(m)
	return &ReversibleMove{board: b, snapshot: snap}
}

// moveEffect records what a doMove call actually changed on the board, so
// the audited path can notify observers about it after the fact. doMove
// itself never touches observers.
type moveEffect struct {
	from, to      types.Field
	captured      bool
	capturedField types.Field
	castled       bool
	rookFrom      types.Field
	rookTo        types.Field
}

// doMove performs the raw state transition for m: it assumes m is
// otherwise legal and does not touch observers, game status or the
// legality filter.
func (b *Board) doMove(m types.Move) moveEffect {
	mover := b.At(m.From)
	capturedField := m.To
	isCapture := m.FigureBeaten.IsValid()
	isPawnMove := mover.Kind == types.Pawn

	if isCapture && isPawnMove && m.To.File() != m.From.File() && !b.At(m.To).IsValid() {
		// en-passant: the captured pawn sits beside From, not on To.
		capturedField, _ = types.NewField(m.To.File(), m.From.Rank())
	}

	if isCapture {
		b.clearSilently(capturedField)
	}

	b.clearSilently(m.From)
	placed := mover
	if m.IsPromotion() {
		placed = types.Piece{Kind: m.Promotion, Color: mover.Color}
	}
	b.placeSilently(placed, m.To)

	effect := moveEffect{from: m.From, to: m.To, captured: isCapture, capturedField: capturedField}

	if m.IsCastling() {
		homeRank := m.From.Rank()
		var rookFrom, rookTo types.Field
		switch m.Castling {
		case types.CastlingK, types.Castlingk:
			rookFrom, _ = types.NewField(types.FileH, homeRank)
			rookTo, _ = types.NewField(types.FileF, homeRank)
		case types.CastlingQ, types.Castlingq:
			rookFrom, _ = types.NewField(types.FileA, homeRank)
			rookTo, _ = types.NewField(types.FileD, homeRank)
		}
		rook := b.At(rookFrom)
		b.clearSilently(rookFrom)
		b.placeSilently(rook, rookTo)
		effect.castled = true
		effect.rookFrom = rookFrom
		effect.rookTo = rookTo
	}

	b.updateCastlingRights(mover, m)
	b.updateEnPassantFile(mover, m)

	// The half-move clock advances once per completed full move rather than
	// once per ply: it increments when Black moves (the same moment
	// fullMoveNumber does) and resets immediately on either side's capture
	// or pawn move.
	if isCapture || isPawnMove {
		b.halfMoveClock = 0
	} else if b.sideToMove == types.Black {
		b.halfMoveClock++
	}
	if b.sideToMove == types.Black {
		b.fullMoveNumber++
	}
	b.sideToMove = b.sideToMove.Flip()

	b.assertConsistent()

	return effect
}

func (b *Board) updateCastlingRights(mover types.Piece, m types.Move) {
	if mover.Kind == types.King {
		b.castlingRights = b.castlingRights.Remove(types.Both(mover.Color))
		return
	}
	if mover.Kind == types.Rook {
		b.removeRookRight(mover.Color, m.From)
	}
	// a captured rook on its home square loses that side's right even if
	// the capturing piece is not itself a rook.
	if m.FigureBeaten.Kind == types.Rook {
		b.removeRookRight(m.FigureBeaten.Color, m.To)
	}
}

func (b *Board) removeRookRight(color types.Color, from types.Field) {
	homeRank := types.Rank1
	if color == types.Black {
		homeRank = types.Rank8
	}
	if from.Rank() != homeRank {
		return
	}
	switch from.File() {
	case types.FileA:
		b.castlingRights = b.castlingRights.Remove(types.QueenSide(color))
	case types.FileH:
		b.castlingRights = b.castlingRights.Remove(types.KingSide(color))
	}
}

func (b *Board) updateEnPassantFile(mover types.Piece, m types.Move) {
	b.enPassantFile = types.FileNone
	if mover.Kind != types.Pawn {
		return
	}
	delta := int(m.To.Rank()) - int(m.From.Rank())
	if delta == 2 || delta == -2 {
		b.enPassantFile = m.From.File()
	}
}

// MakeMove validates that (from, to, promotion) names a legal move, applies
// it, computes the resulting game status and notifies observers. It is the
// public, audited move path; Search never calls it.
func (b *Board) MakeMove(from, to types.Field, promotion types.PieceKind) error {
	candidate := types.NewMove(from, to, promotion)
	legal, ok := b.IsLegal(b.sideToMove, candidate)
	if !ok {
		return &types.IllegalMoveError{From: from, To: to}
	}
	effect := b.doMove(legal)
	if effect.captured {
		b.notifyRemoved(effect.capturedField)
	}
	b.notifyMoved(effect.from, effect.to)
	if effect.castled {
		b.notifyMoved(effect.rookFrom, effect.rookTo)
	}
	status := b.Status()
	if status.IsTerminal() {
		b.notifyFinished(status)
	}
	return nil
}
