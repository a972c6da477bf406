package board

// Apply executes a legal move on the position. The step order matters:
// the halfmove clock must read the destination square before any board
// mutation, and the en passant victim must be removed before the mover
// lands, because the victim does not sit on the destination square.
func (p *Position) Apply(m Move) {
	mover := p.Board[m.From]

	// Halfmove clock from pre-mutation state.
	if mover.Type == Pawn || !p.Board[m.To].IsEmpty() {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	// En passant removes the enemy pawn one rank behind the destination,
	// relative to the mover's direction.
	if m.EnPassant {
		dir := 1
		if mover.Color == Black {
			dir = -1
		}
		p.Board[NewSquare(m.To.File(), m.To.Rank()-dir)] = Piece{}
	}

	// The target is cleared on every move and re-derived only after a
	// two-square pawn advance, as the square the pawn passed over.
	p.EnPassant = NoSquare
	if mover.Type == Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
		p.EnPassant = NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
	}

	// Castling relocates the rook next to the king's destination.
	if m.Castling {
		rank := m.From.Rank()
		var rookFrom, rookTo Square
		if m.To.File() > m.From.File() {
			rookFrom = NewSquare(7, rank)
			rookTo = NewSquare(m.To.File()-1, rank)
		} else {
			rookFrom = NewSquare(0, rank)
			rookTo = NewSquare(m.To.File()+1, rank)
		}
		p.Board[rookTo] = p.Board[rookFrom]
		p.Board[rookFrom] = Piece{}
	}

	mover.Moved = true
	p.Board[m.To] = mover
	p.Board[m.From] = Piece{}

	if m.Promotion != NoPieceType {
		p.Board[m.To].Type = m.Promotion
	}

	if p.SideToMove == Black {
		p.FullMove++
	}
	p.SideToMove = p.SideToMove.Other()
	p.Repetitions[p.Key()]++
}
