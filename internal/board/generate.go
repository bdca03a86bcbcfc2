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
	"github.com/kallaslund/chesscore/internal/figures"
	"github.com/kallaslund/chesscore/internal/types"
)

// IsInCheck reports whether color's king is currently attacked. Returns
// false if color has no king on the board (only possible on hand-built
// test positions).
func (b *Board) IsInCheck(color types.Color) bool {
	king, ok := b.FindKing(color)
	if !ok {
		return false
	}
	return figures.IsAttacked(b, king, color.Flip())
}

// legalMovesUnannotated is phase A (figures.PseudoMoves) followed by phase
// B (reject any move leaving the mover's own king attacked). It never sets
// IsCheck/IsMate — callers that need those call LegalMoves instead. Kept
// separate so LegalMoves can use it to probe the opponent's reply count
// without recursing into its own annotation pass.
func (b *Board) legalMovesUnannotated(color types.Color) []types.Move {
	var legal []types.Move
	for idx := 0; idx < 64; idx++ {
		from := types.FieldFromIndex(idx)
		p := b.squares[idx]
		if !p.IsValid() || p.Color != color {
			continue
		}
		for _, pm := range figures.PseudoMoves(b, color, p.Kind, from) {
			rm := b.makeReversibleMoveUnchecked(pm)
			king, ok := b.FindKing(color)
			safe := !ok || !figures.IsAttacked(b, king, color.Flip())
			rm.Release()
			if safe {
				legal = append(legal, pm)
			}
		}
	}
	return legal
}

// LegalMoves returns every legal move available to color in the current
// position, with IsCheck and IsMate filled in for each.
func (b *Board) LegalMoves(color types.Color) []types.Move {
	legal := b.legalMovesUnannotated(color)
	opponent := color.Flip()
	for i := range legal {
		rm := b.makeReversibleMoveUnchecked(legal[i])
		if king, ok := b.FindKing(opponent); ok {
			legal[i].IsCheck = figures.IsAttacked(b, king, color)
			if legal[i].IsCheck {
				legal[i].IsMate = len(b.legalMovesUnannotated(opponent)) == 0
			}
		}
		rm.Release()
	}
	return legal
}

// IsLegal reports whether m is among color's legal moves, returning the
// canonical (annotated) copy found if so.
func (b *Board) IsLegal(color types.Color, m types.Move) (types.Move, bool) {
	for _, candidate := range b.LegalMoves(color) {
		if candidate.Equal(m) {
			return candidate, true
		}
	}
	return types.Move{}, false
}
