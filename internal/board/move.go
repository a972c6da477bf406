package board

// Move describes a single chess move. Moves are produced by
// (*Position).LegalMoves or matched against its output; the EnPassant
// and Castling flags are never set by hand.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType // NoPieceType unless the move promotes
	EnPassant bool
	Castling  bool
}

// String returns the coordinate form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += string(promotionChar(m.Promotion))
	}
	return s
}

func promotionChar(pt PieceType) byte {
	switch pt {
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	}
	return '?'
}

// PromotionFromChar maps a promotion letter (q, r, b, n) to a piece
// type. Returns NoPieceType for anything else.
func PromotionFromChar(c byte) PieceType {
	switch c {
	case 'q':
		return Queen
	case 'r':
		return Rook
	case 'b':
		return Bishop
	case 'n':
		return Knight
	}
	return NoPieceType
}
