package board

// promotionOrder lists promotion piece types in generation order.
// Queen first, so coordinate input without a promotion letter resolves
// to the queen promotion.
var promotionOrder = [4]PieceType{Queen, Rook, Bishop, Knight}

// LegalMoves generates every legal move for the given color: each move
// satisfies its piece's movement pattern and does not leave the mover's
// own king in check. A pawn move reaching the last rank expands into
// four moves, one per promotion piece type. The scan is O(64²) per
// call, which is fine for interactive play but not for search.
func (p *Position) LegalMoves(c Color) []Move {
	var moves []Move

	for from := A1; from <= H8; from++ {
		pc := p.Board[from]
		if pc.Color != c {
			continue
		}

		for to := A1; to <= H8; to++ {
			if !p.CanReach(from, to, false) || !p.keepsKingSafe(from, to) {
				continue
			}

			m := Move{From: from, To: to}
			if pc.Type == King && abs(to.File()-from.File()) == 2 {
				m.Castling = true
			}
			if pc.Type == Pawn && to == p.EnPassant {
				m.EnPassant = true
			}

			if pc.Type == Pawn && (to.Rank() == 0 || to.Rank() == 7) {
				for _, promo := range promotionOrder {
					pm := m
					pm.Promotion = promo
					moves = append(moves, pm)
				}
			} else {
				moves = append(moves, m)
			}
		}
	}

	return moves
}

// HasLegalMoves reports whether the given color has at least one legal
// move.
func (p *Position) HasLegalMoves(c Color) bool {
	return len(p.LegalMoves(c)) > 0
}

// keepsKingSafe probes a candidate move on the live board: the mover is
// placed on the target square, the check test runs, and both squares
// are restored. Only the two squares involved are touched, so an en
// passant victim stays on the board during the probe.
func (p *Position) keepsKingSafe(from, to Square) bool {
	mover, target := p.Board[from], p.Board[to]
	p.Board[to] = mover
	p.Board[from] = Piece{}
	safe := !p.InCheck(mover.Color)
	p.Board[from] = mover
	p.Board[to] = target
	return safe
}

// Perft counts leaf nodes of the legal move tree to the given depth.
// The standard correctness check for move generation.
func Perft(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := p.LegalMoves(p.SideToMove)
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		child := p.Copy()
		child.Apply(m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}
