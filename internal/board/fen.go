package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a Position. The castling rights
// field maps onto Moved flags: a right that is absent marks the
// corresponding rook (and, when no right remains for a color, the king)
// as having moved. Pawns off their starting rank are marked moved so
// the double-step rule holds for loaded positions.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	pos := &Position{
		EnPassant:   NoSquare,
		FullMove:    1,
		Repetitions: make(map[string]int),
	}

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	if err := applyCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		pos.EnPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("invalid half-move clock: %s", parts[4])
		}
		pos.HalfMoveClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("invalid full-move number: %s", parts[5])
		}
		pos.FullMove = fmn
	}

	pos.Repetitions[pos.Key()] = 1
	return pos, nil
}

// parsePiecePlacement fills the board from the placement field. Pawns
// off their starting rank are marked moved.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := PieceFromChar(byte(c))
			if piece.IsEmpty() {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			if piece.Type == Pawn {
				startRank := 1
				if piece.Color == Black {
					startRank = 6
				}
				piece.Moved = rank != startRank
			}
			pos.Board[NewSquare(file, rank)] = piece
			file++
		}

		if file != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

// applyCastlingRights translates the FEN castling field into Moved
// flags on the kings and corner rooks. Kings and corner rooks start
// marked moved; each present right clears the flags it needs.
func applyCastlingRights(pos *Position, castling string) error {
	markMoved := func(sq Square, pt PieceType, c Color) {
		if pos.Board[sq].Type == pt && pos.Board[sq].Color == c {
			pos.Board[sq].Moved = true
		}
	}
	clearMoved := func(kingSq, rookSq Square, c Color) {
		if pos.Board[kingSq].Type == King && pos.Board[kingSq].Color == c &&
			pos.Board[rookSq].Type == Rook && pos.Board[rookSq].Color == c {
			pos.Board[kingSq].Moved = false
			pos.Board[rookSq].Moved = false
		}
	}

	markMoved(E1, King, White)
	markMoved(E8, King, Black)
	markMoved(A1, Rook, White)
	markMoved(H1, Rook, White)
	markMoved(A8, Rook, Black)
	markMoved(H8, Rook, Black)

	if castling == "-" {
		return nil
	}

	for _, c := range castling {
		switch c {
		case 'K':
			clearMoved(E1, H1, White)
		case 'Q':
			clearMoved(E1, A1, White)
		case 'k':
			clearMoved(E8, H8, Black)
		case 'q':
			clearMoved(E8, A8, Black)
		default:
			return fmt.Errorf("invalid castling character: %c", c)
		}
	}

	return nil
}

// ToFEN returns the FEN representation of the position. Castling
// rights are derived from the Moved flags.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.Board[NewSquare(file, rank)]
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingField())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMove))

	return sb.String()
}

func (p *Position) castlingField() string {
	unmoved := func(sq Square, pt PieceType, c Color) bool {
		pc := p.Board[sq]
		return pc.Type == pt && pc.Color == c && !pc.Moved
	}

	var sb strings.Builder
	if unmoved(E1, King, White) {
		if unmoved(H1, Rook, White) {
			sb.WriteByte('K')
		}
		if unmoved(A1, Rook, White) {
			sb.WriteByte('Q')
		}
	}
	if unmoved(E8, King, Black) {
		if unmoved(H8, Rook, Black) {
			sb.WriteByte('k')
		}
		if unmoved(A8, Rook, Black) {
			sb.WriteByte('q')
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
