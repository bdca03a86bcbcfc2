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

// Color is a side to move or own a piece.
type Color int8

const (
	White Color = iota
	Black
	ColorNone Color = -1
)

// Flip returns the logical negation of c.
func (c Color) Flip() Color {
	if c == White {
		return Black
	}
	return White
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool { return c == White || c == Black }

// String renders the color as "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PromotionRank returns the rank a c pawn promotes on.
func (c Color) PromotionRank() Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

// PawnStartRank returns the rank c's pawns start the game on.
func (c Color) PawnStartRank() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// PawnDirection returns +1 for White (ranks increasing) or -1 for Black.
func (c Color) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// EnPassantRank returns the rank a c pawn must stand on to be able to
// capture en-passant (rank 5 for White, rank 4 for Black).
func (c Color) EnPassantRank() Rank {
	if c == White {
		return Rank5
	}
	return Rank4
}

// EnPassantSkipRank returns the rank a c pawn's double push skips over —
// the rank recorded as the FEN en-passant square (rank 3 for a White
// double push, rank 6 for a Black one). This is distinct from
// EnPassantRank, which names the rank a capturing pawn stands on.
func (c Color) EnPassantSkipRank() Rank {
	if c == White {
		return Rank3
	}
	return Rank6
}
