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

// PieceKind is one of the six chess piece kinds.
type PieceKind int8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PieceKindNone PieceKind = -1
)

// materialValue holds Pawn=1, Knight=3, Bishop=3, Rook=5, Queen=8, King=0 as
// specified — a plain material count, not the conventional 9-point queen,
// since evaluation heuristics beyond material count are out of scope.
var materialValue = [6]int{1, 3, 3, 5, 8, 0}

// Material returns the material value of k.
func (k PieceKind) Material() int {
	if !k.IsValid() {
		return 0
	}
	return materialValue[k]
}

// IsValid reports whether k is one of Pawn..King.
func (k PieceKind) IsValid() bool { return k >= Pawn && k <= King }

// letters indexed by PieceKind, uppercase (White letter). Black uses the
// lowercased form in FEN.
var kindLetters = [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// Letter returns the uppercase FEN letter for k.
func (k PieceKind) Letter() byte {
	if !k.IsValid() {
		return '?'
	}
	return kindLetters[k]
}

// PromotionLetterKind maps a lowercase promotion letter (b,n,r,q) from a
// move string to its PieceKind, or PieceKindNone if unrecognized.
func PromotionLetterKind(c byte) PieceKind {
	switch c {
	case 'b':
		return Bishop
	case 'n':
		return Knight
	case 'r':
		return Rook
	case 'q':
		return Queen
	default:
		return PieceKindNone
	}
}

// PromotionLetter returns the lowercase promotion letter for k, or 0 if k is
// not a valid promotion target.
func (k PieceKind) PromotionLetter() byte {
	switch k {
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	default:
		return 0
	}
}

// Piece is a (kind, color) pair. It carries no field — the field is owned
// by the Figure record and the board index it occupies, per the board
// invariant that the two must agree.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// PieceNone is the absence of a piece on a square.
var PieceNone = Piece{Kind: PieceKindNone, Color: ColorNone}

// IsValid reports whether p names a real piece.
func (p Piece) IsValid() bool { return p.Kind.IsValid() && p.Color.IsValid() }

// Letter returns the FEN letter for p: uppercase for White, lowercase for
// Black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Color == Black {
		return l + ('a' - 'A')
	}
	return l
}

// Figure is a piece sitting on a field. The field here is the figure's
// authoritative position; the board square at field.Index() must always
// agree with it.
type Figure struct {
	Piece Piece
	Field Field
}
