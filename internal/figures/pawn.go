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

package figures

import "github.com/kallaslund/chesscore/internal/types"

var promotionKinds = []types.PieceKind{types.Bishop, types.Knight, types.Rook, types.Queen}

func pawnMoves(occ Occupancy, color types.Color, from types.Field) []types.Move {
	var moves []types.Move
	dir := color.PawnDirection()
	lastRank := color.PromotionRank()

	addMove := func(to types.Field, beaten types.Piece) {
		if to.Rank() == lastRank {
			for _, pk := range promotionKinds {
				m := types.NewMove(from, to, pk)
				m.FigureBeaten = beaten
				moves = append(moves, m)
			}
			return
		}
		m := types.NewMove(from, to, types.Pawn)
		m.FigureBeaten = beaten
		moves = append(moves, m)
	}

	// forward one
	if oneAhead, ok := from.Offset(0, dir); ok {
		if !occ.At(oneAhead).IsValid() {
			addMove(oneAhead, types.PieceNone)

			// forward two from the starting rank
			if from.Rank() == color.PawnStartRank() {
				if twoAhead, ok := from.Offset(0, 2*dir); ok && !occ.At(twoAhead).IsValid() {
					addMove(twoAhead, types.PieceNone)
				}
			}
		}
	}

	// diagonal captures
	for _, df := range [2]int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		target := occ.At(to)
		if target.IsValid() && target.Color != color {
			addMove(to, target)
			continue
		}
		// en-passant: en_passant_file matches the adjacent file and the
		// pawn stands on the rank from which such a capture is possible.
		if !target.IsValid() && from.Rank() == color.EnPassantRank() && occ.EnPassantFile().IsValid() && to.File() == occ.EnPassantFile() {
			m := types.NewMove(from, to, types.Pawn)
			m.FigureBeaten = types.Piece{Kind: types.Pawn, Color: color.Flip()}
			moves = append(moves, m)
		}
	}

	return moves
}
