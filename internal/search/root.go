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
	"math/rand"

	"github.com/kallaslund/chesscore/internal/types"
)

// selectRoot implements the seven-step root selection algorithm over the
// already-evaluated root children.
func selectRoot(children []node, side types.Color, rng *rand.Rand) types.Move {
	candidates := narrowToMateTier(children, side)
	candidates = narrowByShallowReply(candidates, side)
	if len(candidates) == 1 {
		return candidates[0].move
	}
	return candidates[rng.Intn(len(candidates))].move
}

// narrowToMateTier applies steps 2-5: prefer the nearest forced mate of
// the opponent, else the best non-mate material value, else the most
// delayed forced mate against side.
func narrowToMateTier(children []node, side types.Color) []node {
	// sign turns movesToMate into a distance seen from side: positive when
	// side delivers the mate, negative when side is being mated.
	sign := 1
	if side == types.Black {
		sign = -1
	}
	var positiveMates, zeroMates, negativeMates []node
	for _, c := range children {
		switch {
		case sign*c.movesToMate > 0:
			positiveMates = append(positiveMates, c)
		case c.movesToMate == 0:
			zeroMates = append(zeroMates, c)
		default:
			negativeMates = append(negativeMates, c)
		}
	}

	if len(positiveMates) > 0 {
		best := sign * positiveMates[0].movesToMate
		for _, c := range positiveMates {
			if sign*c.movesToMate < best {
				best = sign * c.movesToMate
			}
		}
		var out []node
		for _, c := range positiveMates {
			if sign*c.movesToMate == best {
				out = append(out, c)
			}
		}
		return out
	}

	if len(zeroMates) > 0 {
		best := zeroMates[0].value
		for _, c := range zeroMates {
			if betterMaterial(c.value, best, side) {
				best = c.value
			}
		}
		var out []node
		for _, c := range zeroMates {
			if c.value == best {
				out = append(out, c)
			}
		}
		return out
	}

	best := sign * negativeMates[0].movesToMate
	for _, c := range negativeMates {
		if sign*c.movesToMate < best {
			best = sign * c.movesToMate
		}
	}
	var out []node
	for _, c := range negativeMates {
		if sign*c.movesToMate == best {
			out = append(out, c)
		}
	}
	return out
}

// betterMaterial reports whether candidate improves on current for side:
// White prefers larger, Black prefers smaller.
func betterMaterial(candidate, current int, side types.Color) bool {
	if side == types.White {
		return candidate > current
	}
	return candidate < current
}

// narrowByShallowReply applies step 6: among tied candidates, re-evaluate
// by material after the opponent's single best reply and keep whichever
// leave side best off. The score compared is each candidate's
// shallowReplyScore, which Run computes independently of the cached
// depth-D value.
func narrowByShallowReply(candidates []node, side types.Color) []node {
	if len(candidates) <= 1 {
		return candidates
	}
	scores := make([]int, len(candidates))
	for i, c := range candidates {
		scores[i] = c.shallowReplyScore
	}
	best := scores[0]
	for _, s := range scores {
		if betterMaterial(s, best, side) {
			best = s
		}
	}
	var out []node
	for i, c := range candidates {
		if scores[i] == best {
			out = append(out, c)
		}
	}
	return out
}
