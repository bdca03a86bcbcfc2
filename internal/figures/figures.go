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

// Package figures enumerates pseudo-moves per piece kind: moves that obey
// piece geometry but ignore whether they leave the moving side's own king
// attacked. Board performs the legality filter (phase B) on top of these.
//
// Each piece kind dispatches on its PieceKind tag rather than through an
// inheritance hierarchy; the three sliding pieces (bishop, rook, queen)
// share one ray-casting routine parameterized by direction set.
package figures

import "github.com/kallaslund/chesscore/internal/types"

// Occupancy is the read-only board view pseudo-move generation needs. A
// Board satisfies it directly.
type Occupancy interface {
	At(f types.Field) types.Piece
	CastlingRights() types.CastlingRights
	EnPassantFile() types.File
}

// PseudoMoves returns every pseudo-move for the figure of kind/color
// standing on from, including castling for the king.
func PseudoMoves(occ Occupancy, color types.Color, kind types.PieceKind, from types.Field) []types.Move {
	switch kind {
	case types.Pawn:
		return pawnMoves(occ, color, from)
	case types.Knight:
		return steppedMoves(occ, color, from, knightOffsets)
	case types.Bishop:
		return slidingMoves(occ, color, from, bishopDirections)
	case types.Rook:
		return slidingMoves(occ, color, from, rookDirections)
	case types.Queen:
		return slidingMoves(occ, color, from, queenDirections)
	case types.King:
		moves := steppedMoves(occ, color, from, kingOffsets)
		return append(moves, castlingMoves(occ, color, from)...)
	default:
		return nil
	}
}

// IsAttacked reports whether target is attacked by any piece of color by.
// It is the same routine used for "king in check": ask every by-colored
// piece for its pseudo-moves (ignoring self-check and excluding castling,
// which cannot itself deliver an attack) and see if target is a
// destination.
func IsAttacked(occ Occupancy, target types.Field, by types.Color) bool {
	for idx := 0; idx < 64; idx++ {
		f := types.FieldFromIndex(idx)
		p := occ.At(f)
		if !p.IsValid() || p.Color != by {
			continue
		}
		for _, m := range attackMoves(occ, by, p.Kind, f) {
			if m.To == target {
				return true
			}
		}
	}
	return false
}

// attackMoves is PseudoMoves without castling — used internally by
// IsAttacked so castling eligibility (which itself calls IsAttacked) never
// recurses into castling generation.
func attackMoves(occ Occupancy, color types.Color, kind types.PieceKind, from types.Field) []types.Move {
	switch kind {
	case types.Pawn:
		return pawnMoves(occ, color, from)
	case types.Knight:
		return steppedMoves(occ, color, from, knightOffsets)
	case types.Bishop:
		return slidingMoves(occ, color, from, bishopDirections)
	case types.Rook:
		return slidingMoves(occ, color, from, rookDirections)
	case types.Queen:
		return slidingMoves(occ, color, from, queenDirections)
	case types.King:
		return steppedMoves(occ, color, from, kingOffsets)
	default:
		return nil
	}
}
