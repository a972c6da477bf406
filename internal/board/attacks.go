package board

// IsAttacked reports whether the given square is attacked by any piece
// of the given color. Pawn attacks are the two diagonal-forward squares
// regardless of occupancy, which differs from the pawn's move rule;
// every other piece type delegates to CanReach in raw attack mode.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	for from := A1; from <= H8; from++ {
		pc := p.Board[from]
		if pc.Color != by {
			continue
		}

		if pc.Type == Pawn {
			dir := 1
			if by == Black {
				dir = -1
			}
			if from.Rank()+dir == sq.Rank() && abs(from.File()-sq.File()) == 1 {
				return true
			}
			continue
		}

		if p.CanReach(from, sq, true) {
			return true
		}
	}
	return false
}

// InCheck reports whether the given color's king is attacked.
func (p *Position) InCheck(c Color) bool {
	return p.IsAttacked(p.KingSquare(c), c.Other())
}
