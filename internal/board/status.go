package board

// GameStatus classifies a position for the side whose turn it is.
type GameStatus uint8

const (
	Active GameStatus = iota
	Check
	Checkmate
	Stalemate
	DrawRepetition
	DrawFiftyMove
	DrawMaterial
)

// String returns the wire form of the status.
func (s GameStatus) String() string {
	switch s {
	case Active:
		return "active"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawRepetition:
		return "draw (threefold repetition)"
	case DrawFiftyMove:
		return "draw (50-move rule)"
	case DrawMaterial:
		return "draw (insufficient material)"
	}
	return "unknown"
}

// GameOver reports whether the status ends the game.
func (s GameStatus) GameOver() bool {
	switch s {
	case Checkmate, Stalemate, DrawRepetition, DrawFiftyMove, DrawMaterial:
		return true
	}
	return false
}

// Status classifies the position for the given color. The evaluation
// order is fixed: repetition, then the fifty-move rule, then material,
// and only then mate/stalemate/check. A thrice-repeated position is a
// draw even if it would otherwise be checkmate.
func (p *Position) Status(c Color) GameStatus {
	if p.Repetitions[p.Key()] >= 3 {
		return DrawRepetition
	}
	if p.HalfMoveClock >= 100 {
		return DrawFiftyMove
	}
	if p.insufficientMaterial() {
		return DrawMaterial
	}

	if !p.HasLegalMoves(c) {
		if p.InCheck(c) {
			return Checkmate
		}
		return Stalemate
	}
	if p.InCheck(c) {
		return Check
	}
	return Active
}

// insufficientMaterial reports whether, kings aside, at most one minor
// piece remains and no pawn, rook or queen. King plus two bishops is
// not treated as a draw.
func (p *Position) insufficientMaterial() bool {
	minors := 0
	for sq := A1; sq <= H8; sq++ {
		switch p.Board[sq].Type {
		case NoPieceType, King:
		case Bishop, Knight:
			minors++
		default:
			return false
		}
	}
	return minors <= 1
}
