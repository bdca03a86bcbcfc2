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

// Package board implements the chess position: the 8x8 figure mapping,
// castling rights, en-passant file, move clocks, move generation and
// legality filtering, reversible move application, FEN serialization and
// game-status detection. It is the authoritative owner of a single live
// position; Search works against independent clones.
package board

import (
	"github.com/kallaslund/chesscore/internal/assert"
	"github.com/kallaslund/chesscore/internal/types"
)

// Board is a chess position.
//
//	Create one with New() (starting position) or NewFEN(fen).
type Board struct {
	squares        [64]types.Piece
	sideToMove     types.Color
	castlingRights types.CastlingRights
	enPassantFile  types.File
	halfMoveClock  int
	fullMoveNumber int

	observers []Observer
}

// New creates a Board in the standard starting position.
func New() *Board {
	b, err := NewFEN(startFEN)
	if err != nil {
		panic("starting FEN must always parse: " + err.Error())
	}
	return b
}

// Empty creates a Board with no pieces, White to move, full castling
// rights cleared, and no en-passant square. Useful for building test
// positions with AddFigure.
func Empty() *Board {
	b := &Board{
		sideToMove:     types.White,
		castlingRights: types.CastlingNone,
		enPassantFile:  types.FileNone,
		halfMoveClock:  0,
		fullMoveNumber: 1,
	}
	for i := range b.squares {
		b.squares[i] = types.PieceNone
	}
	return b
}

// Clone returns an independent copy of b. Clones share no mutable state;
// Search relies on this to explore without synchronization.
func (b *Board) Clone() *Board {
	clone := *b
	clone.observers = nil // clones never carry over observers; see §4.2/§5
	return &clone
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() types.Color { return b.sideToMove }

// CastlingRights returns the current castling rights.
func (b *Board) CastlingRights() types.CastlingRights { return b.castlingRights }

// EnPassantFile returns the file on which the last move was a two-square
// pawn advance, or types.FileNone.
func (b *Board) EnPassantFile() types.File { return b.enPassantFile }

// HalfMoveClock returns the number of Black moves since the last pawn move
// or capture by either side (see doMove).
func (b *Board) HalfMoveClock() int { return b.halfMoveClock }

// FullMoveNumber returns the full move number (starts at 1, increments
// after a Black move).
func (b *Board) FullMoveNumber() int { return b.fullMoveNumber }

// At returns the piece on f, or types.PieceNone if f is empty. At also
// satisfies figures.Occupancy.
func (b *Board) At(f types.Field) types.Piece {
	if !f.IsValid() {
		return types.PieceNone
	}
	return b.squares[f.Index()]
}

// GetFigure returns the figure standing on f, if any.
func (b *Board) GetFigure(f types.Field) (types.Figure, bool) {
	p := b.At(f)
	if !p.IsValid() {
		return types.Figure{}, false
	}
	return types.Figure{Piece: p, Field: f}, true
}

// GetFigures returns every figure on the board.
func (b *Board) GetFigures() []types.Figure {
	var out []types.Figure
	for idx := 0; idx < 64; idx++ {
		p := b.squares[idx]
		if p.IsValid() {
			out = append(out, types.Figure{Piece: p, Field: types.FieldFromIndex(idx)})
		}
	}
	return out
}

// GetFiguresOf returns every figure belonging to color.
func (b *Board) GetFiguresOf(color types.Color) []types.Figure {
	var out []types.Figure
	for idx := 0; idx < 64; idx++ {
		p := b.squares[idx]
		if p.IsValid() && p.Color == color {
			out = append(out, types.Figure{Piece: p, Field: types.FieldFromIndex(idx)})
		}
	}
	return out
}

// FindKing returns the field of the first king of color found scanning from
// a1 to h8, and false if color has no king on the board.
func (b *Board) FindKing(color types.Color) (types.Field, bool) {
	for idx := 0; idx < 64; idx++ {
		p := b.squares[idx]
		if p.Kind == types.King && p.Color == color {
			return types.FieldFromIndex(idx), true
		}
	}
	return types.FieldNone, false
}

// AddFigure places piece p on field f. Fails with FieldNotEmptyError if f
// is already occupied.
func (b *Board) AddFigure(p types.Piece, f types.Field) error {
	if !f.IsValid() {
		return &types.WrongFieldError{File: f.File(), Rank: f.Rank()}
	}
	if existing := b.At(f); existing.IsValid() {
		return &types.FieldNotEmptyError{At: f, Occupant: existing}
	}
	b.squares[f.Index()] = p
	b.notifyAdded(p, f)
	return nil
}

// RemoveFigure removes whatever figure stands on f. Fails with
// NoFigureError if f is empty.
func (b *Board) RemoveFigure(f types.Field) error {
	if !b.At(f).IsValid() {
		return &types.NoFigureError{At: f}
	}
	b.squares[f.Index()] = types.PieceNone
	b.notifyRemoved(f)
	return nil
}

func (b *Board) placeSilently(p types.Piece, f types.Field) { b.squares[f.Index()] = p }
func (b *Board) clearSilently(f types.Field)                { b.squares[f.Index()] = types.PieceNone }

func (b *Board) assertConsistent() {
	if !assert.DEBUG {
		return
	}
	whiteKings, blackKings := 0, 0
	for idx := 0; idx < 64; idx++ {
		p := b.squares[idx]
		if p.Kind == types.King {
			if p.Color == types.White {
				whiteKings++
			} else {
				blackKings++
			}
		}
	}
	assert.Assert(whiteKings <= 1 && blackKings <= 1, "board has more than one king per color")
}
