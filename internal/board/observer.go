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

import "github.com/kallaslund/chesscore/internal/types"

// Observer receives notifications of board lifecycle events. Notifications
// fire only from MakeMove, AddFigure and RemoveFigure — never from the
// silent reversible-move path Search uses, and never from a Clone.
type Observer interface {
	FigureAdded(p types.Piece, f types.Field)
	FigureRemoved(f types.Field)
	FigureMoved(from, to types.Field)
	GameFinished(status types.GameStatus)
}

// Subscribe registers o to receive future notifications.
func (b *Board) Subscribe(o Observer) {
	b.observers = append(b.observers, o)
}

// Unsubscribe removes o, if registered. No-op if o was never subscribed.
func (b *Board) Unsubscribe(o Observer) {
	for i, existing := range b.observers {
		if existing == o {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return
		}
	}
}

func (b *Board) notifyAdded(p types.Piece, f types.Field) {
	for _, o := range b.observers {
		o.FigureAdded(p, f)
	}
}

func (b *Board) notifyRemoved(f types.Field) {
	for _, o := range b.observers {
		o.FigureRemoved(f)
	}
}

func (b *Board) notifyMoved(from, to types.Field) {
	for _, o := range b.observers {
		o.FigureMoved(from, to)
	}
}

func (b *Board) notifyFinished(status types.GameStatus) {
	for _, o := range b.observers {
		o.GameFinished(status)
	}
}
