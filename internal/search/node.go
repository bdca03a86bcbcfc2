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

package search

import (
	"github.com/kallaslund/chesscore/internal/board"
	"github.com/kallaslund/chesscore/internal/types"
	"github.com/kallaslund/chesscore/internal/util"
)

// node is one evaluated point of the search tree: the move that reached
// it, the back-propagated (or leaf) value, and the signed mate distance.
// A node keeps no child list: expand holds a node's children only in a
// local slice until they are folded into its value.
type node struct {
	move        types.Move
	value       int
	movesToMate int

	// shallowReplyScore is only populated for root children: the material
	// balance after the opponent's single best immediate reply to move,
	// used for root selection's tie-break (spec step 6).
	shallowReplyScore int
}

// shallowReplyValue evaluates the opponent's best immediate reply on b by
// material alone — a one-ply lookahead independent of the cached depth-D
// value, used only to break ties among root candidates.
func shallowReplyValue(b *board.Board) int {
	side := b.SideToMove()
	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		v, _ := evaluateLeaf(b)
		return v
	}
	best := 0
	for i, m := range moves {
		rm := b.MakeReversibleMove(m)
		v := materialBalance(b)
		rm.Release()
		if i == 0 || (side == types.White && v > best) || (side == types.Black && v < best) {
			best = v
		}
	}
	return best
}

// materialBalance sums white material minus black material over every
// figure on b.
func materialBalance(b *board.Board) int {
	balance := 0
	for _, fig := range b.GetFigures() {
		m := fig.Piece.Kind.Material()
		if fig.Piece.Color == types.White {
			balance += m
		} else {
			balance -= m
		}
	}
	return balance
}

// evaluateLeaf scores a terminal-for-this-branch position: depth
// exhausted, or the game already over.
func evaluateLeaf(b *board.Board) (value int, movesToMate int) {
	value = materialBalance(b)
	switch b.Status() {
	case types.StatusWhiteWon:
		movesToMate = 1
	case types.StatusBlackWon:
		movesToMate = -1
	}
	return value, movesToMate
}

// expand evaluates the position on b to the given remaining depth and
// returns its back-propagated (value, movesToMate). b is mutated and
// restored via the reversible-move mechanism as children are explored; it
// is returned to its entry state before expand returns. cancelled is
// polled between child expansions; on a cancellation mid-loop, expand
// back-propagates over whatever children it has already evaluated.
func expand(b *board.Board, depthRemaining int, cancelled *util.Bool) (value int, movesToMate int) {
	if depthRemaining <= 0 || b.Status().IsTerminal() {
		return evaluateLeaf(b)
	}

	toMove := b.SideToMove()
	moves := b.LegalMoves(toMove)
	if len(moves) == 0 {
		return evaluateLeaf(b)
	}

	children := make([]node, 0, len(moves))
	for _, m := range moves {
		if cancelled.Load() {
			break
		}
		rm := b.MakeReversibleMove(m)
		v, mtm := expand(b, depthRemaining-1, cancelled)
		rm.Release()
		children = append(children, node{move: m, value: v, movesToMate: mtm})
	}

	if len(children) == 0 {
		// Cancelled before a single child could be explored: fall back to
		// this position's own leaf score.
		return evaluateLeaf(b)
	}
	return backPropagate(toMove, children)
}

// backPropagate applies the back-propagation laws for the side to move at
// a node (S) given its already-evaluated children.
func backPropagate(side types.Color, children []node) (value int, movesToMate int) {
	if side == types.White {
		return backPropagateMax(children)
	}
	return backPropagateMin(children)
}

// backPropagateMax implements the White (maximizing) back-propagation law:
// prefer the nearest forced mate of the opponent; else the best material
// among non-mate children; else the most-delayed forced mate against
// White.
func backPropagateMax(children []node) (value int, movesToMate int) {
	var haveMate, haveZero, haveNonMate, haveDelay bool
	var chosenMate, chosenNonMate, chosenDelay node

	for _, c := range children {
		switch {
		case c.movesToMate > 0:
			if !haveMate || c.movesToMate < chosenMate.movesToMate ||
				(c.movesToMate == chosenMate.movesToMate && c.value > chosenMate.value) {
				chosenMate = c
				haveMate = true
			}
		case c.movesToMate == 0:
			if !haveNonMate || c.value > chosenNonMate.value {
				chosenNonMate = c
				haveNonMate = true
			}
			haveZero = true
		default: // c.movesToMate < 0
			if !haveDelay || c.movesToMate < chosenDelay.movesToMate {
				chosenDelay = c
				haveDelay = true
			}
		}
	}

	if haveMate {
		return chosenMate.value, chosenMate.movesToMate + 1
	}
	if haveZero {
		return chosenNonMate.value, 0
	}
	return chosenDelay.value, chosenDelay.movesToMate - 1
}

// backPropagateMin mirrors backPropagateMax for Black (minimizing):
// prefer the nearest forced mate of White; else the best (lowest)
// material among non-mate children; else the most-delayed forced mate
// against Black.
func backPropagateMin(children []node) (value int, movesToMate int) {
	var haveMate, haveZero, haveNonMate, haveDelay bool
	var chosenMate, chosenNonMate, chosenDelay node

	for _, c := range children {
		switch {
		case c.movesToMate < 0:
			if !haveMate || c.movesToMate > chosenMate.movesToMate ||
				(c.movesToMate == chosenMate.movesToMate && c.value < chosenMate.value) {
				chosenMate = c
				haveMate = true
			}
		case c.movesToMate == 0:
			if !haveNonMate || c.value < chosenNonMate.value {
				chosenNonMate = c
				haveNonMate = true
			}
			haveZero = true
		default: // c.movesToMate > 0
			if !haveDelay || c.movesToMate > chosenDelay.movesToMate {
				chosenDelay = c
				haveDelay = true
			}
		}
	}

	if haveMate {
		return chosenMate.value, chosenMate.movesToMate - 1
	}
	if haveZero {
		return chosenNonMate.value, 0
	}
	return chosenDelay.value, chosenDelay.movesToMate + 1
}
