package board

import (
	"fmt"
	"strings"
)

// Position is the complete mutable game state: the board, the side to
// move, en passant target, halfmove clock and the repetition table.
// A Position is exclusively owned by one engine instance; snapshots
// taken with Copy never alias the live value.
type Position struct {
	Board [64]Piece

	SideToMove Color

	// EnPassant is the square a capturing pawn would move to, set only
	// immediately after a two-square pawn advance. NoSquare otherwise.
	EnPassant Square

	// HalfMoveClock counts moves since the last pawn move or capture.
	HalfMoveClock int

	// FullMove is the full move counter, starting at 1.
	FullMove int

	// Repetitions maps canonical position keys to occurrence counts.
	Repetitions map[string]int
}

// NewPosition creates the standard starting position. The initial
// position counts as its first own occurrence in the repetition table.
func NewPosition() *Position {
	p := &Position{
		SideToMove:  White,
		EnPassant:   NoSquare,
		FullMove:    1,
		Repetitions: make(map[string]int),
	}

	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		p.Board[NewSquare(file, 0)] = Piece{Type: backRank[file], Color: White}
		p.Board[NewSquare(file, 1)] = Piece{Type: Pawn, Color: White}
		p.Board[NewSquare(file, 6)] = Piece{Type: Pawn, Color: Black}
		p.Board[NewSquare(file, 7)] = Piece{Type: backRank[file], Color: Black}
	}

	p.Repetitions[p.Key()] = 1
	return p
}

// Copy returns a deep copy of the position. The board array copies by
// value; the repetition table is cloned.
func (p *Position) Copy() *Position {
	cp := *p
	cp.Repetitions = make(map[string]int, len(p.Repetitions))
	for k, v := range p.Repetitions {
		cp.Repetitions[k] = v
	}
	return &cp
}

// PieceAt returns the piece on the given square.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Board[sq]
}

// KingSquare returns the square of the given color's king. Exactly one
// king of each color must be on the board; a missing king means the
// position has been corrupted, so this panics rather than recovering.
func (p *Position) KingSquare(c Color) Square {
	for sq := A1; sq <= H8; sq++ {
		if p.Board[sq].Type == King && p.Board[sq].Color == c {
			return sq
		}
	}
	panic(fmt.Sprintf("corrupt position: no %v king on the board", c))
}

// Key returns the canonical repetition key: two bytes per square
// (piece type and color) plus the side to move. Castling rights and
// en passant availability are not part of the key.
func (p *Position) Key() string {
	var sb strings.Builder
	sb.Grow(129)
	for sq := A1; sq <= H8; sq++ {
		sb.WriteByte('0' + byte(p.Board[sq].Type))
		sb.WriteByte('0' + byte(p.Board[sq].Color))
	}
	sb.WriteByte('0' + byte(p.SideToMove))
	return sb.String()
}

// String returns a visual representation of the position for debugging.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sb.WriteByte(p.Board[NewSquare(file, rank)].Char())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.SideToMove)
	fmt.Fprintf(&sb, "En passant: %s\n", p.EnPassant)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", p.HalfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", p.FullMove)
	return sb.String()
}
