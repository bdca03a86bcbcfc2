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

// Package uci is the line-oriented command front-end that drives a Board
// and the search package. It implements the subset of the UCI protocol
// named by the front-end contract: uci, isready, ucinewgame, position,
// go, d and quit.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	oplog "github.com/op/go-logging"

	"github.com/kallaslund/chesscore/internal/board"
	"github.com/kallaslund/chesscore/internal/config"
	"github.com/kallaslund/chesscore/internal/logging"
	"github.com/kallaslund/chesscore/internal/search"
	"github.com/kallaslund/chesscore/internal/types"
)

// Handler owns the live Board and runs the command loop. It is not safe
// for concurrent use by more than one goroutine at a time.
type Handler struct {
	in  *bufio.Scanner
	out io.Writer
	log *oplog.Logger

	board *board.Board
	rng   *rand.Rand
}

// New creates a Handler reading commands from in and writing replies to
// out. The Board starts at the standard starting position.
func New(in io.Reader, out io.Writer) *Handler {
	return &Handler{
		in:    bufio.NewScanner(in),
		out:   out,
		log:   logging.GetUciLog(),
		board: board.New(),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Loop reads one command per line until EOF or a "quit" command.
func (h *Handler) Loop() {
	for h.in.Scan() {
		line := h.in.Text()
		if !h.handle(line) {
			return
		}
	}
}

// handle dispatches a single command line. It returns false when the loop
// should stop (a "quit" command).
func (h *Handler) handle(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return true
	}
	h.log.Debug(trimmed)

	tokens := strings.Fields(trimmed)
	switch tokens[0] {
	case "quit":
		return false
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.board = board.New()
	case "position":
		h.positionCommand(tokens[1:])
	case "go":
		h.goCommand(tokens[1:])
	case "d":
		h.debugCommand()
	default:
		err := &types.UnknownCommandError{Line: line}
		h.log.Warning(err.Error())
		h.send(err.Error())
	}
	return true
}

func (h *Handler) uciCommand() {
	h.send("id name chesscore")
	h.send("id author chesscore contributors")
	h.send("uciok")
}

// positionCommand handles "position [startpos|fen <FEN>] [moves m1 m2 ...]".
func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) == 0 {
		h.send((&types.UnknownCommandError{Line: "position"}).Error())
		return
	}

	idx := 0
	switch tokens[0] {
	case "startpos":
		h.board = board.New()
		idx = 1
	case "fen":
		end := idx + 1
		for end < len(tokens) && tokens[end] != "moves" {
			end++
		}
		fen := strings.Join(tokens[1:end], " ")
		b, err := board.NewFEN(fen)
		if err != nil {
			h.send(err.Error())
			return
		}
		h.board = b
		idx = end
	default:
		h.send((&types.UnknownCommandError{Line: strings.Join(tokens, " ")}).Error())
		return
	}

	if idx < len(tokens) && tokens[idx] == "moves" {
		for _, ms := range tokens[idx+1:] {
			m, err := types.ParseMove(ms)
			if err != nil {
				h.send(err.Error())
				return
			}
			if err := h.board.MakeMove(m.From, m.To, m.Promotion); err != nil {
				h.send(err.Error())
				return
			}
		}
	}
}

// goCommand handles "go [depth d] [threads t] [movetime ms]", falling back
// to config.Settings.Search for anything omitted.
func (h *Handler) goCommand(tokens []string) {
	params := search.Params{
		Depth:    config.Settings.Search.DefaultDepth,
		Threads:  config.Settings.Search.DefaultThreads,
		MoveTime: time.Duration(config.Settings.Search.DefaultMoveTimeMs) * time.Millisecond,
	}
	for i := 0; i+1 < len(tokens); i += 2 {
		v, err := strconv.Atoi(tokens[i+1])
		if err != nil {
			continue
		}
		switch tokens[i] {
		case "depth":
			params.Depth = v
		case "threads":
			params.Threads = v
		case "movetime":
			params.MoveTime = time.Duration(v) * time.Millisecond
		}
	}

	m, err := search.Run(h.board, params, h.rng)
	if err != nil {
		h.send(err.Error())
		return
	}
	h.send(fmt.Sprintf("bestmove %s", m))
}

func (h *Handler) debugCommand() {
	h.send(h.board.Emit())
}

func (h *Handler) send(s string) {
	fmt.Fprintln(h.out, s)
}
