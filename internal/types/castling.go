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

// CastlingRights is a four-bit set of {White-K, White-Q, Black-K, Black-Q}.
// Rights are monotonically non-increasing over a game: Remove only.
type CastlingRights uint8

const (
	CastlingWhiteK CastlingRights = 1 << iota
	CastlingWhiteQ
	CastlingBlackK
	CastlingBlackQ

	CastlingNone CastlingRights = 0
	CastlingAll  CastlingRights = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

// Has reports whether r includes f.
func (r CastlingRights) Has(f CastlingRights) bool { return r&f != 0 }

// Remove clears f from r and returns the result.
func (r CastlingRights) Remove(f CastlingRights) CastlingRights { return r &^ f }

// KingSide returns the king-side right for c.
func KingSide(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteK
	}
	return CastlingBlackK
}

// QueenSide returns the queen-side right for c.
func QueenSide(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteQ
	}
	return CastlingBlackQ
}

// Both returns both rights belonging to c.
func Both(c Color) CastlingRights {
	return KingSide(c) | QueenSide(c)
}

// String renders r as a subset of "KQkq" in that order, or "-" if empty.
func (r CastlingRights) String() string {
	if r == CastlingNone {
		return "-"
	}
	s := ""
	if r.Has(CastlingWhiteK) {
		s += "K"
	}
	if r.Has(CastlingWhiteQ) {
		s += "Q"
	}
	if r.Has(CastlingBlackK) {
		s += "k"
	}
	if r.Has(CastlingBlackQ) {
		s += "q"
	}
	return s
}

// CastlingTag names the castling side of a move, or CastlingTagNone.
type CastlingTag int8

const (
	CastlingTagNone CastlingTag = iota
	CastlingK                   // White king-side, "K"
	CastlingQ                   // White queen-side, "Q"
	Castlingk                   // Black king-side, "k"
	Castlingq                   // Black queen-side, "q"
)

// String renders the castling tag, e.g. "K", or "" for CastlingTagNone.
func (t CastlingTag) String() string {
	switch t {
	case CastlingK:
		return "K"
	case CastlingQ:
		return "Q"
	case Castlingk:
		return "k"
	case Castlingq:
		return "q"
	default:
		return ""
	}
}
