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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Field
		wantErr bool
	}{
		{"a1", "a1", Field{file: FileA, rank: Rank1}, false},
		{"h8", "h8", Field{file: FileH, rank: Rank8}, false},
		{"e4", "e4", Field{file: FileE, rank: Rank4}, false},
		{"too short", "e", FieldNone, true},
		{"too long", "e44", FieldNone, true},
		{"bad file", "i4", FieldNone, true},
		{"bad rank", "e9", FieldNone, true},
		{"uppercase rejected", "E4", FieldNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseField(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestField_String(t *testing.T) {
	f, _ := ParseField("e4")
	assert.Equal(t, "e4", f.String())
	assert.Equal(t, "-", FieldNone.String())
}

func TestField_IndexRoundTrip(t *testing.T) {
	for file := FileA; file <= FileH; file++ {
		for rank := Rank1; rank <= Rank8; rank++ {
			f, err := NewField(file, rank)
			assert.NoError(t, err)
			idx := f.Index()
			assert.True(t, idx >= 0 && idx < 64)
			assert.Equal(t, f, FieldFromIndex(idx))
		}
	}
}

func TestField_Offset(t *testing.T) {
	e4, _ := ParseField("e4")

	to, ok := e4.Offset(1, 1)
	assert.True(t, ok)
	assert.Equal(t, "f5", to.String())

	_, ok = e4.Offset(0, 0)
	assert.True(t, ok)

	a1, _ := ParseField("a1")
	_, ok = a1.Offset(-1, 0)
	assert.False(t, ok, "offset off the a-file must report out of bounds")

	h8, _ := ParseField("h8")
	_, ok = h8.Offset(1, 1)
	assert.False(t, ok, "offset off the h8 corner must report out of bounds")
}

func TestNewField_OutOfRange(t *testing.T) {
	_, err := NewField(File(8), Rank1)
	assert.Error(t, err)
	_, err = NewField(FileA, Rank(-2))
	assert.Error(t, err)
}
