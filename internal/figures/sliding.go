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

type offset struct{ dFile, dRank int }

var (
	knightOffsets = []offset{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingOffsets = []offset{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}
	bishopDirections = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirections    = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	queenDirections   = append(append([]offset{}, bishopDirections...), rookDirections...)
)

// steppedMoves generates single-step moves (knight, king) filtered to
// on-board, non-own-occupied destinations.
func steppedMoves(occ Occupancy, color types.Color, from types.Field, offsets []offset) []types.Move {
	var moves []types.Move
	for _, o := range offsets {
		to, ok := from.Offset(o.dFile, o.dRank)
		if !ok {
			continue
		}
		target := occ.At(to)
		if target.IsValid() && target.Color == color {
			continue
		}
		moves = append(moves, types.NewMove(from, to, types.Pawn))
	}
	return moves
}

// slidingMoves generates rays in the given direction set, sliding until
// blocked; the blocker's square is included iff it holds an opponent
// piece.
func slidingMoves(occ Occupancy, color types.Color, from types.Field, directions []offset) []types.Move {
	var moves []types.Move
	for _, d := range directions {
		cur := from
		for {
			to, ok := cur.Offset(d.dFile, d.dRank)
			if !ok {
				break
			}
			target := occ.At(to)
			if target.IsValid() {
				if target.Color != color {
					moves = append(moves, types.NewMove(from, to, types.Pawn))
				}
				break
			}
			moves = append(moves, types.NewMove(from, to, types.Pawn))
			cur = to
		}
	}
	return moves
}
