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

package types

// GameStatus classifies the outcome of a position once no further move
// changes it (or None while play continues).
type GameStatus int8

const (
	StatusNone GameStatus = iota
	StatusWhiteWon
	StatusBlackWon
	StatusDraw
)

// String renders the status for logs and UCI info lines.
func (s GameStatus) String() string {
	switch s {
	case StatusWhiteWon:
		return "WhiteWon"
	case StatusBlackWon:
		return "BlackWon"
	case StatusDraw:
		return "Draw"
	default:
		return "None"
	}
}

// IsTerminal reports whether s ends the game.
func (s GameStatus) IsTerminal() bool { return s != StatusNone }
