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

// Move is a structured move record. Equality for move identity purposes
// ignores IsCheck/IsMate/FigureBeaten/Castling — only From, To and
// Promotion identify a move (see Equal).
type Move struct {
	From, To Field

	// Promotion is the promoted-to kind for a pawn reaching the last rank,
	// or Pawn as the "no promotion" marker.
	Promotion PieceKind

	// Castling names the castling side this move performs, or
	// CastlingTagNone for a non-castling move.
	Castling CastlingTag

	// FigureBeaten is the piece captured by this move (including an
	// en-passant capture), or PieceNone if the move is not a capture.
	FigureBeaten Piece

	IsCheck bool
	IsMate  bool
}

// NewMove builds a plain (non-castling) move. Promotion should be Pawn when
// the move is not a promotion.
func NewMove(from, to Field, promotion PieceKind) Move {
	if promotion == PieceKindNone {
		promotion = Pawn
	}
	return Move{From: from, To: to, Promotion: promotion, FigureBeaten: PieceNone}
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion != Pawn && m.Promotion != PieceKindNone }

// IsCastling reports whether m performs castling.
func (m Move) IsCastling() bool { return m.Castling != CastlingTagNone }

// IsCapture reports whether m captures a piece.
func (m Move) IsCapture() bool { return m.FigureBeaten.IsValid() }

// Equal compares two moves by identity: From, To and Promotion only, per
// spec — check/mate flags, the beaten figure and the castling tag do not
// participate.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// String renders m as its UCI move string, e.g. "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(rune(m.Promotion.PromotionLetter()))
	}
	return s
}

// ParseMove parses a four- or five-character move string, e.g. "e7e8q".
// Uppercase is not accepted.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("move string %q must be 4 or 5 characters", s)
	}
	from, err := ParseField(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseField(s[2:4])
	if err != nil {
		return Move{}, err
	}
	prom := Pawn
	if len(s) == 5 {
		prom = PromotionLetterKind(s[4])
		if prom == PieceKindNone {
			return Move{}, fmt.Errorf("move string %q has invalid promotion letter %q", s, s[4])
		}
	}
	return NewMove(from, to, prom), nil
}
