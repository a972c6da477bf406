package board

// CanReach reports whether the piece on from can reach to under its
// movement pattern, ignoring whether the move would leave its own king
// in check. With rawAttack set the evaluation is restricted to raw
// attack patterns: castling is never considered, which keeps attack
// detection free of recursion (castling safety itself asks whether
// squares are attacked).
//
// Returns false when from is empty or to holds a same-color piece.
func (p *Position) CanReach(from, to Square, rawAttack bool) bool {
	pc := p.Board[from]
	if pc.IsEmpty() || p.Board[to].Color == pc.Color {
		return false
	}

	dr := to.Rank() - from.Rank()
	dc := to.File() - from.File()

	switch pc.Type {
	case Pawn:
		dir := 1
		if pc.Color == Black {
			dir = -1
		}
		if dc == 0 && dr == dir && p.Board[to].IsEmpty() {
			return true
		}
		if dc == 0 && dr == 2*dir && !pc.Moved &&
			p.Board[NewSquare(from.File(), from.Rank()+dir)].IsEmpty() &&
			p.Board[to].IsEmpty() {
			return true
		}
		if abs(dc) == 1 && dr == dir {
			if !p.Board[to].IsEmpty() {
				return true
			}
			if to == p.EnPassant {
				return true
			}
		}
		return false

	case Knight:
		return (abs(dr) == 2 && abs(dc) == 1) || (abs(dr) == 1 && abs(dc) == 2)

	case King:
		if abs(dr) <= 1 && abs(dc) <= 1 {
			return true
		}
		if !rawAttack && dr == 0 && abs(dc) == 2 && !pc.Moved {
			return p.canCastle(from, to)
		}
		return false
	}

	// Sliding pieces: bishop, rook, queen.
	diagonal := abs(dr) == abs(dc)
	straight := dr == 0 || dc == 0
	switch pc.Type {
	case Bishop:
		if !diagonal {
			return false
		}
	case Rook:
		if !straight {
			return false
		}
	case Queen:
		if !diagonal && !straight {
			return false
		}
	}

	// Every square strictly between from and to must be empty.
	sr, sc := sign(dr), sign(dc)
	r, c := from.Rank()+sr, from.File()+sc
	for r != to.Rank() || c != to.File() {
		if !p.Board[NewSquare(c, r)].IsEmpty() {
			return false
		}
		r += sr
		c += sc
	}
	return true
}

// canCastle checks the castling preconditions for a king two-file move:
// the corresponding rook has never moved, the squares between king and
// rook are empty, and neither the king's square, its transit square nor
// its destination is attacked by the opponent.
func (p *Position) canCastle(from, to Square) bool {
	king := p.Board[from]
	rank := from.Rank()

	rookFile := 0
	step := -1
	if to.File() > from.File() {
		rookFile = 7
		step = 1
	}

	rook := p.Board[NewSquare(rookFile, rank)]
	if rook.Type != Rook || rook.Color != king.Color || rook.Moved {
		return false
	}

	for file := from.File() + step; file != rookFile; file += step {
		if !p.Board[NewSquare(file, rank)].IsEmpty() {
			return false
		}
	}

	enemy := king.Color.Other()
	return !p.IsAttacked(from, enemy) &&
		!p.IsAttacked(NewSquare(from.File()+step, rank), enemy) &&
		!p.IsAttacked(to, enemy)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
