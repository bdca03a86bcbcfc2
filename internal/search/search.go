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
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/kallaslund/chesscore/internal/board"
	"github.com/kallaslund/chesscore/internal/logging"
	"github.com/kallaslund/chesscore/internal/types"
	"github.com/kallaslund/chesscore/internal/util"
)

// Run searches b to Params.Depth and returns the move root selection
// chooses. b is read-only to Run: every worker operates on its own clone.
// rng drives the random tie-break in step 7 of root selection and the
// last-resort random move on deadline expiry; callers that need
// reproducible search pass a seeded *rand.Rand, production callers pass
// rand.New(rand.NewSource(time.Now().UnixNano())).
func Run(b *board.Board, p Params, rng *rand.Rand) (types.Move, error) {
	defer util.TimeTrack(time.Now(), "search")

	log := logging.GetSearchLog()

	if b.Status().IsTerminal() {
		return types.Move{}, &types.BadBoardStatusError{Status: b.Status()}
	}
	if p.Depth < 1 {
		p.Depth = 1
	}
	if p.Threads < 1 {
		p.Threads = 1
	}

	root := b.SideToMove()
	rootMoves := b.LegalMoves(root)

	cancelled := util.NewBool(false)
	if p.MoveTime > 0 {
		timer := time.AfterFunc(p.MoveTime, func() { cancelled.Store(true) })
		defer timer.Stop()
	}

	results := make([]node, 0, len(rootMoves))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := semaphore.NewWeighted(int64(p.Threads))
	ctx := context.Background()

	for _, m := range rootMoves {
		if cancelled.Load() {
			break
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(move types.Move) {
			defer wg.Done()
			defer sem.Release(1)

			clone := b.Clone()
			rm := clone.MakeReversibleMove(move)
			value, mtm := expand(clone, p.Depth-1, cancelled)
			shallow := shallowReplyValue(clone)
			rm.Release()

			mu.Lock()
			results = append(results, node{move: move, value: value, movesToMate: mtm, shallowReplyScore: shallow})
			mu.Unlock()
		}(m)
	}
	wg.Wait()

	if len(results) == 0 {
		log.Warning("search cancelled before any root child finished; returning a random legal move")
		return rootMoves[rng.Intn(len(rootMoves))], nil
	}

	return selectRoot(results, root, rng), nil
}
