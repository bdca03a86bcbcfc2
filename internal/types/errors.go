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

import "fmt"

// WrongFieldError reports a coordinate outside the 0..7 range, either given
// as explicit file/rank or as a raw string that failed to parse.
type WrongFieldError struct {
	File File
	Rank Rank
	Raw  string
}

func (e *WrongFieldError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("wrong field: %q is not a valid square", e.Raw)
	}
	return fmt.Sprintf("wrong field: file=%d rank=%d out of range", e.File, e.Rank)
}

// NoFigureError reports that an operation required an occupant at a field
// that is empty.
type NoFigureError struct {
	At Field
}

func (e *NoFigureError) Error() string {
	return fmt.Sprintf("no figure at %s", e.At)
}

// FieldNotEmptyError reports an add-figure onto an occupied square.
type FieldNotEmptyError struct {
	At       Field
	Occupant Piece
}

func (e *FieldNotEmptyError) Error() string {
	return fmt.Sprintf("field %s is already occupied by %c", e.At, e.Occupant.Letter())
}

// IllegalMoveError reports that a requested move is not among the legal
// moves of the piece on its from-field (including a missing or invalid
// promotion kind).
type IllegalMoveError struct {
	From, To Field
	Reason   string
}

func (e *IllegalMoveError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("illegal move %s%s: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("illegal move %s%s", e.From, e.To)
}

// BadBoardStatusError reports that the search was invoked on a terminal
// position.
type BadBoardStatusError struct {
	Status GameStatus
}

func (e *BadBoardStatusError) Error() string {
	return fmt.Sprintf("search invoked on terminal position (status=%s)", e.Status)
}

// InvalidFENError reports any of the strict FEN parse failures from the
// FEN codec.
type InvalidFENError struct {
	FEN    string
	Reason string
}

func (e *InvalidFENError) Error() string {
	return fmt.Sprintf("invalid FEN %q: %s", e.FEN, e.Reason)
}

// UnknownCommandError reports a front-end command line that did not match
// any known command.
type UnknownCommandError struct {
	Line string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %q", e.Line)
}
