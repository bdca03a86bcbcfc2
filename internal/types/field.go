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

// Package types holds the primitive value types shared by every other
// package: Field, Color, PieceKind, Piece, Move and the error kinds rule
// and input errors are reported with.
package types

import "fmt"

// File is a board column, A..H.
type File int8

// File values. FileNone marks an absent file (e.g. no en-passant).
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone File = -1
)

// IsValid reports whether f is one of FileA..FileH.
func (f File) IsValid() bool { return f >= FileA && f <= FileH }

// String renders the file as its lowercase letter, e.g. "e".
func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(rune('a' + int(f)))
}

// Rank is a board row, 1..8, stored zero-based internally (Rank1 == 0).
type Rank int8

// Rank values.
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone Rank = -1
)

// IsValid reports whether r is one of Rank1..Rank8.
func (r Rank) IsValid() bool { return r >= Rank1 && r <= Rank8 }

// String renders the rank as its one-based digit, e.g. "4".
func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d", int(r)+1)
}

// Field is a single square of the board, identified by (file, rank).
// The zero value is a1 and is valid; use FieldNone for "no field".
type Field struct {
	file File
	rank Rank
}

// FieldNone represents the absence of a field (e.g. no en-passant target).
var FieldNone = Field{file: FileNone, rank: RankNone}

// NewField builds a Field from a file and a rank, failing with WrongField
// if either coordinate is out of the 0..7 range.
func NewField(file File, rank Rank) (Field, error) {
	if !file.IsValid() || !rank.IsValid() {
		return FieldNone, &WrongFieldError{File: file, Rank: rank}
	}
	return Field{file: file, rank: rank}, nil
}

// ParseField parses a two-character square string such as "e4". Case
// sensitive: only lowercase file letters are accepted.
func ParseField(s string) (Field, error) {
	if len(s) != 2 {
		return FieldNone, &WrongFieldError{Raw: s}
	}
	fc, rc := s[0], s[1]
	if fc < 'a' || fc > 'h' || rc < '1' || rc > '8' {
		return FieldNone, &WrongFieldError{Raw: s}
	}
	return Field{file: File(fc - 'a'), rank: Rank(rc - '1')}, nil
}

// File returns the field's file.
func (f Field) File() File { return f.file }

// Rank returns the field's rank.
func (f Field) Rank() Rank { return f.rank }

// IsValid reports whether the field lies on the board.
func (f Field) IsValid() bool { return f.file.IsValid() && f.rank.IsValid() }

// String renders the field the canonical way, e.g. "e4". Returns "-" for
// FieldNone or any other invalid field.
func (f Field) String() string {
	if !f.IsValid() {
		return "-"
	}
	return f.file.String() + f.rank.String()
}

// Index returns a dense 0..63 index (rank-major, a1=0, h8=63), used to
// address the board array.
func (f Field) Index() int { return int(f.rank)*8 + int(f.file) }

// FieldFromIndex is the inverse of Index. It does not check idx: an index
// outside 0..63 yields a field for which IsValid reports false.
func FieldFromIndex(idx int) Field {
	return Field{file: File(idx % 8), rank: Rank(idx / 8)}
}

// Offset returns the field fileDelta files and rankDelta ranks away from f,
// together with whether that destination is still on the board.
func (f Field) Offset(fileDelta, rankDelta int) (Field, bool) {
	nf := int(f.file) + fileDelta
	nr := int(f.rank) + rankDelta
	if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
		return FieldNone, false
	}
	return Field{file: File(nf), rank: Rank(nr)}, true
}
