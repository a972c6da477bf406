package board

// Color represents the color of a piece or player.
type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the type of a chess piece.
// NoPieceType is zero so that the zero Piece is an empty square.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Piece is the value stored in one board square. The zero value is an
// empty square. Moved tracks whether the piece has ever moved, which
// drives pawn double-step and castling eligibility.
type Piece struct {
	Type  PieceType
	Color Color
	Moved bool
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

var pieceChars = [7]byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}

// Char returns the display character for the piece: uppercase for
// white, lowercase for black, '.' for an empty square.
func (p Piece) Char() byte {
	c := pieceChars[p.Type]
	if p.Color == Black {
		c |= 0x20
	}
	return c
}

// String returns the display character as a string.
func (p Piece) String() string {
	return string(p.Char())
}

// PieceFromChar converts a FEN piece character to a Piece.
// Returns the zero Piece for unknown characters.
func PieceFromChar(c byte) Piece {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c &^= 0x20
	}
	for pt := Pawn; pt <= King; pt++ {
		if pieceChars[pt] == c {
			return Piece{Type: pt, Color: color}
		}
	}
	return Piece{}
}
