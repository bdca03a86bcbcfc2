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
	"fmt"
	"strconv"
	"strings"

	"github.com/kallaslund/chesscore/internal/types"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewFEN builds a Board from a FEN string. The board is left completely
// unused (no partial state) if parsing fails at any field.
func NewFEN(fen string) (*Board, error) {
	b := Empty()
	if err := b.LoadFEN(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadFEN parses fen into a fresh internal state and, only if every field
// is well-formed, replaces b's state with it. On any error b is left
// completely unchanged.
func (b *Board) LoadFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return &types.InvalidFENError{FEN: fen, Reason: fmt.Sprintf("expected 6 space-separated fields, got %d", len(fields))}
	}

	var parsed boardState
	if err := parsePlacement(fields[0], &parsed); err != nil {
		return &types.InvalidFENError{FEN: fen, Reason: err.Error()}
	}

	switch fields[1] {
	case "w":
		parsed.sideToMove = types.White
	case "b":
		parsed.sideToMove = types.Black
	default:
		return &types.InvalidFENError{FEN: fen, Reason: fmt.Sprintf("active color must be w or b, got %q", fields[1])}
	}

	rights, err := parseCastling(fields[2])
	if err != nil {
		return &types.InvalidFENError{FEN: fen, Reason: err.Error()}
	}
	parsed.castlingRights = rights

	epFile, err := parseEnPassant(fields[3], parsed.sideToMove)
	if err != nil {
		return &types.InvalidFENError{FEN: fen, Reason: err.Error()}
	}
	parsed.enPassantFile = epFile

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil || halfMove < 0 {
		return &types.InvalidFENError{FEN: fen, Reason: fmt.Sprintf("half-move clock %q is not a non-negative integer", fields[4])}
	}
	parsed.halfMoveClock = halfMove

	fullMove, err := strconv.Atoi(fields[5])
	if err != nil || fullMove < 0 {
		return &types.InvalidFENError{FEN: fen, Reason: fmt.Sprintf("full-move number %q is not a non-negative integer", fields[5])}
	}
	parsed.fullMoveNumber = fullMove

	b.restore(parsed)
	return nil
}

func parsePlacement(placement string, out *boardState) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("piece placement must have 8 ranks, got %d", len(ranks))
	}
	for i := range out.squares {
		out.squares[i] = types.PieceNone
	}
	for r, rankStr := range ranks {
		rank := types.Rank(7 - r)
		file := types.FileA
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += types.File(c - '0')
			default:
				kind := types.PieceKindNone
				color := types.White
				letter := byte(c)
				if letter >= 'a' && letter <= 'z' {
					color = types.Black
					letter -= 'a' - 'A'
				}
				switch letter {
				case 'P':
					kind = types.Pawn
				case 'N':
					kind = types.Knight
				case 'B':
					kind = types.Bishop
				case 'R':
					kind = types.Rook
				case 'Q':
					kind = types.Queen
				case 'K':
					kind = types.King
				default:
					return fmt.Errorf("unrecognized piece letter %q", c)
				}
				if !file.IsValid() {
					return fmt.Errorf("rank %q overflows past the h-file", rankStr)
				}
				f, _ := types.NewField(file, rank)
				out.squares[f.Index()] = types.Piece{Kind: kind, Color: color}
				file++
			}
		}
		if file != types.FileH+1 {
			return fmt.Errorf("rank %q does not cover exactly 8 files", rankStr)
		}
	}
	return nil
}

func parseCastling(s string) (types.CastlingRights, error) {
	if s == "-" {
		return types.CastlingNone, nil
	}
	var rights types.CastlingRights
	for _, c := range s {
		var bit types.CastlingRights
		switch c {
		case 'K':
			bit = types.CastlingWhiteK
		case 'Q':
			bit = types.CastlingWhiteQ
		case 'k':
			bit = types.CastlingBlackK
		case 'q':
			bit = types.CastlingBlackQ
		default:
			return 0, fmt.Errorf("castling field %q has unrecognized character %q", s, c)
		}
		if rights.Has(bit) {
			return 0, fmt.Errorf("castling field %q has duplicate character %q", s, c)
		}
		rights |= bit
	}
	return rights, nil
}

// parseEnPassant requires the square's rank to match the mover (the side
// that is not toMove): rank 3 if Black is to move (White just double-
// pushed), rank 6 if White is to move. It does not verify that a pawn
// capable of the capture actually stands beside it — lenient on that,
// strict on the rank, per the source's en-passant handling.
func parseEnPassant(s string, toMove types.Color) (types.File, error) {
	if s == "-" {
		return types.FileNone, nil
	}
	f, err := types.ParseField(s)
	if err != nil {
		return types.FileNone, fmt.Errorf("en-passant field %q is not a valid square", s)
	}
	want := toMove.Flip().EnPassantSkipRank()
	if f.Rank() != want {
		return types.FileNone, fmt.Errorf("en-passant square %q is not on the expected rank %s", s, want)
	}
	return f.File(), nil
}

// Emit renders b as a strict six-field FEN string. The en-passant field, if
// set, is emitted on the mover's skip rank (3 for a White double push, 6
// for a Black one) — the rank the pawn passed over, not the rank it
// landed on.
func (b *Board) Emit() string {
	var ranks []string
	for r := 7; r >= 0; r-- {
		var sb strings.Builder
		empty := 0
		for f := 0; f < 8; f++ {
			field, _ := types.NewField(types.File(f), types.Rank(r))
			p := b.At(field)
			if !p.IsValid() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		ranks = append(ranks, sb.String())
	}
	placement := strings.Join(ranks, "/")

	ep := "-"
	if b.enPassantFile.IsValid() {
		ep = fmt.Sprintf("%s%s", b.enPassantFile, b.sideToMove.Flip().EnPassantSkipRank())
	}

	return fmt.Sprintf("%s %s %s %s %d %d",
		placement, b.sideToMove, b.castlingRights, ep, b.halfMoveClock, b.fullMoveNumber)
}
