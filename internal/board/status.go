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

// fiftyMoveLimit is the half-move-clock value at which the fifty-move rule
// claims a draw. The clock advances once per Black move rather than once
// per ply (see doMove), so the threshold is 50, not the 100-ply figure a
// per-ply clock would use.
const fiftyMoveLimit = 50

// Status classifies the current position: checkmate/stalemate for the side
// to move, a draw by the fifty-move rule or insufficient material, or
// StatusNone while the game continues.
func (b *Board) Status() types.GameStatus {
	toMove := b.sideToMove
	if len(b.legalMovesUnannotated(toMove)) == 0 {
		if b.IsInCheck(toMove) {
			if toMove == types.White {
				return types.StatusBlackWon
			}
			return types.StatusWhiteWon
		}
		return types.StatusDraw
	}
	if b.halfMoveClock >= fiftyMoveLimit {
		return types.StatusDraw
	}
	if b.hasInsufficientMaterial() {
		return types.StatusDraw
	}
	return types.StatusNone
}

// hasInsufficientMaterial reports the bare K vs K, K+N vs K and K+B vs K
// cases (single minor piece, no other material on the board). Positions
// with bishops of both colors, two minors, or any pawn/rook/queen are
// never treated as insufficient — deciding those is left to the search
// and the fifty-move rule.
func (b *Board) hasInsufficientMaterial() bool {
	var minors int
	for idx := 0; idx < 64; idx++ {
		p := b.squares[idx]
		if !p.IsValid() || p.Kind == types.King {
			continue
		}
		if p.Kind != types.Knight && p.Kind != types.Bishop {
			return false
		}
		minors++
		if minors > 1 {
			return false
		}
	}
	return true
}
