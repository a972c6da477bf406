// Package game ties a position to its history: undo/redo snapshot
// stacks and an append-only move log with a cursor.
package game

import (
	"errors"

	"github.com/hailam/chesscore/internal/board"
)

// ErrIllegalMove is returned when a coordinate pair parses but matches
// no legal move for the side to move.
var ErrIllegalMove = errors.New("illegal move")

// Game is one engine instance. It exclusively owns its Position; all
// calls must be serialized by the caller. Undo and redo restore whole
// Position snapshots, never incremental diffs: the state is small and
// fixed-size, so the simple thing is also the correct one.
//
// The move log is an append-only arena with a cursor index. Entries
// after the cursor are not truncated when a new move follows an undo;
// the log is a pure append trace whose tail has no defined meaning
// once the timeline branches.
type Game struct {
	pos  *board.Position
	undo []*board.Position
	redo []*board.Position

	log    []board.Move
	cursor int // index of the last reached log entry, -1 before any
}

// New creates a game at the standard starting position.
func New() *Game {
	return &Game{pos: board.NewPosition(), cursor: -1}
}

// NewFromPosition creates a game starting from the given position,
// taking ownership of it.
func NewFromPosition(pos *board.Position) *Game {
	return &Game{pos: pos, cursor: -1}
}

// Position returns the live position. Callers must not mutate it.
func (g *Game) Position() *board.Position {
	return g.pos
}

// LegalMoves returns all legal moves for the side to move.
func (g *Game) LegalMoves() []board.Move {
	return g.pos.LegalMoves(g.pos.SideToMove)
}

// Status classifies the position for the side to move.
func (g *Game) Status() board.GameStatus {
	return g.pos.Status(g.pos.SideToMove)
}

// Play applies a move produced by LegalMoves: snapshot onto the undo
// stack, drop any redo future, append to the log, then execute.
func (g *Game) Play(m board.Move) {
	g.undo = append(g.undo, g.pos.Copy())
	g.redo = g.redo[:0]
	g.log = append(g.log, m)
	g.cursor = len(g.log) - 1
	g.pos.Apply(m)
}

// PlayCoord matches the given squares (and optional promotion type)
// against the legal moves for the side to move and plays the match.
// With no promotion letter, a promoting pawn becomes a queen, since
// the queen variant is generated first. Returns ErrIllegalMove when
// nothing matches; the game state is untouched in that case.
func (g *Game) PlayCoord(from, to board.Square, promo board.PieceType) error {
	for _, m := range g.LegalMoves() {
		if m.From != from || m.To != to {
			continue
		}
		if promo != board.NoPieceType && m.Promotion != promo {
			continue
		}
		g.Play(m)
		return nil
	}
	return ErrIllegalMove
}

// Undo restores the previous snapshot. The current position moves to
// the redo stack and the cursor steps back. No-op on an empty stack.
func (g *Game) Undo() bool {
	n := len(g.undo)
	if n == 0 {
		return false
	}
	g.redo = append(g.redo, g.pos)
	g.pos = g.undo[n-1]
	g.undo = g.undo[:n-1]
	if g.cursor >= 0 {
		g.cursor--
	}
	return true
}

// Redo restores the most recently undone snapshot and steps the cursor
// forward. No-op on an empty stack.
func (g *Game) Redo() bool {
	n := len(g.redo)
	if n == 0 {
		return false
	}
	g.undo = append(g.undo, g.pos)
	g.pos = g.redo[n-1]
	g.redo = g.redo[:n-1]
	if g.cursor < len(g.log)-1 {
		g.cursor++
	}
	return true
}

// History returns the move log and the cursor index of the last
// reached entry (-1 when before the first move).
func (g *Game) History() ([]board.Move, int) {
	return g.log, g.cursor
}
