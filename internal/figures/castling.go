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

package figures

import "github.com/kallaslund/chesscore/internal/types"

// castlingMoves returns the (zero, one or two) castling moves available to
// the king of color standing on from. Any one failed condition for a side
// excludes that side's castling move silently.
func castlingMoves(occ Occupancy, color types.Color, from types.Field) []types.Move {
	homeRank := types.Rank1
	if color == types.Black {
		homeRank = types.Rank8
	}
	kingHome, _ := types.NewField(types.FileE, homeRank)
	if from != kingHome {
		return nil
	}

	var moves []types.Move

	if kingSideEligible(occ, color, homeRank) {
		to, _ := types.NewField(types.FileG, homeRank)
		m := types.NewMove(from, to, types.Pawn)
		if color == types.White {
			m.Castling = types.CastlingK
		} else {
			m.Castling = types.Castlingk
		}
		moves = append(moves, m)
	}
	if queenSideEligible(occ, color, homeRank) {
		to, _ := types.NewField(types.FileC, homeRank)
		m := types.NewMove(from, to, types.Pawn)
		if color == types.White {
			m.Castling = types.CastlingQ
		} else {
			m.Castling = types.Castlingq
		}
		moves = append(moves, m)
	}
	return moves
}

func kingSideEligible(occ Occupancy, color types.Color, homeRank types.Rank) bool {
	if !occ.CastlingRights().Has(types.KingSide(color)) {
		return false
	}
	kingHome, _ := types.NewField(types.FileE, homeRank)
	rookHome, _ := types.NewField(types.FileH, homeRank)
	fSq, _ := types.NewField(types.FileF, homeRank)
	gSq, _ := types.NewField(types.FileG, homeRank)

	rook := occ.At(rookHome)
	if rook.Kind != types.Rook || rook.Color != color {
		return false
	}
	if occ.At(fSq).IsValid() || occ.At(gSq).IsValid() {
		return false
	}
	opponent := color.Flip()
	return !IsAttacked(occ, kingHome, opponent) &&
		!IsAttacked(occ, fSq, opponent) &&
		!IsAttacked(occ, gSq, opponent)
}

func queenSideEligible(occ Occupancy, color types.Color, homeRank types.Rank) bool {
	if !occ.CastlingRights().Has(types.QueenSide(color)) {
		return false
	}
	kingHome, _ := types.NewField(types.FileE, homeRank)
	rookHome, _ := types.NewField(types.FileA, homeRank)
	dSq, _ := types.NewField(types.FileD, homeRank)
	cSq, _ := types.NewField(types.FileC, homeRank)
	bSq, _ := types.NewField(types.FileB, homeRank)

	rook := occ.At(rookHome)
	if rook.Kind != types.Rook || rook.Color != color {
		return false
	}
	if occ.At(dSq).IsValid() || occ.At(cSq).IsValid() || occ.At(bSq).IsValid() {
		return false
	}
	opponent := color.Flip()
	return !IsAttacked(occ, kingHome, opponent) &&
		!IsAttacked(occ, dSq, opponent) &&
		!IsAttacked(occ, cSq, opponent)
}
