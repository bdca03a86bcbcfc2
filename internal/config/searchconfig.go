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

package config

// searchConfiguration holds the defaults the search uses when a "go"
// command does not specify depth, threads or a time budget explicitly.
//
// Unlike the teacher project this search has no opening book, no
// transposition table, no quiescence search, no pruning and no move
// ordering heuristics — all of those are explicit Non-goals — so none of
// those knobs are carried here.
type searchConfiguration struct {
	// DefaultDepth is the fixed search depth used when "go" omits "depth".
	DefaultDepth int

	// DefaultThreads bounds concurrent root-child workers when "go" omits
	// "threads".
	DefaultThreads int

	// DefaultMoveTimeMs is the wall-clock budget in milliseconds used when
	// "go" omits "movetime". Zero means no deadline.
	DefaultMoveTimeMs int
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Search.DefaultDepth = 4
	Settings.Search.DefaultThreads = 4
	Settings.Search.DefaultMoveTimeMs = 0
}

// setupSearch applies defaults for anything the config file left zero.
func setupSearch() {
	if Settings.Search.DefaultDepth <= 0 {
		Settings.Search.DefaultDepth = 4
	}
	if Settings.Search.DefaultThreads <= 0 {
		Settings.Search.DefaultThreads = 4
	}
}
