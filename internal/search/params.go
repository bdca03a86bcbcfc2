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

// Package search implements the fixed-depth, mate-preferring minimax that
// picks the engine's move. There is no alpha-beta pruning, move ordering,
// transposition table, quiescence search or opening book here — the tree is
// generated in full to Depth and reduced by the back-propagation laws,
// which is what a worked-out mate-distance contract requires of every node
// visited, not just the ones a pruning search would keep.
package search

import "time"

// Params bounds one search call.
type Params struct {
	// Depth is the number of plies explored below the root. Must be >= 1.
	Depth int

	// Threads bounds the number of root children explored concurrently.
	// Must be >= 1.
	Threads int

	// MoveTime is an optional wall-clock budget. Zero means unbounded.
	MoveTime time.Duration
}
