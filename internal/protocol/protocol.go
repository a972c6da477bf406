// Package protocol implements the line-oriented text protocol: board,
// turn and status emission plus the QUIT/UNDO/REDO/MOVE commands and a
// few debug commands. It holds no rules knowledge of its own.
package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/game"
)

// ErrInvalidMove is reported when a MOVE argument does not parse into
// board squares.
var ErrInvalidMove = errors.New("invalid move syntax")

// Handler runs the protocol loop against one game instance.
type Handler struct {
	game *game.Game
	out  io.Writer
}

// New creates a protocol handler writing to out.
func New(g *game.Game, out io.Writer) *Handler {
	return &Handler{game: g, out: out}
}

// Game returns the handler's game instance.
func (h *Handler) Game() *game.Game {
	return h.game
}

// Run reads whitespace-separated commands line by line until QUIT or
// EOF. State is emitted at startup and after every command; errors are
// non-fatal and leave the game untouched. Unknown commands only
// re-emit the state.
func (h *Handler) Run(r io.Reader) error {
	h.writeState()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToUpper(parts[0])
		args := parts[1:]

		switch cmd {
		case "QUIT":
			return scanner.Err()
		case "UNDO":
			h.game.Undo()
		case "REDO":
			h.game.Redo()
		case "MOVE":
			h.handleMove(args)
		case "HISTORY":
			h.writeHistory()
		// Debug commands
		case "POSITION":
			h.handlePosition(args)
		case "PERFT":
			h.handlePerft(args)
		}

		h.writeState()
	}
	return scanner.Err()
}

// handleMove parses and plays a coordinate move. A syntax failure
// reports InvalidMove, an unmatched move IllegalMove; either way the
// caller re-emits unchanged state.
func (h *Handler) handleMove(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(h.out, "ERROR InvalidMove")
		return
	}

	from, to, promo, err := ParseCoord(args[0])
	if err != nil {
		fmt.Fprintln(h.out, "ERROR InvalidMove")
		return
	}

	if err := h.game.PlayCoord(from, to, promo); err != nil {
		fmt.Fprintln(h.out, "ERROR IllegalMove")
	}
}

// ParseCoord parses a 4-5 character coordinate move such as "e2e4" or
// "e7e8q", case-insensitively. The optional fifth character selects
// the promotion piece.
func ParseCoord(s string) (from, to board.Square, promo board.PieceType, err error) {
	s = strings.ToLower(s)
	if len(s) != 4 && len(s) != 5 {
		return board.NoSquare, board.NoSquare, board.NoPieceType, ErrInvalidMove
	}

	from, err = board.ParseSquare(s[0:2])
	if err != nil {
		return board.NoSquare, board.NoSquare, board.NoPieceType, ErrInvalidMove
	}
	to, err = board.ParseSquare(s[2:4])
	if err != nil {
		return board.NoSquare, board.NoSquare, board.NoPieceType, ErrInvalidMove
	}

	if len(s) == 5 {
		promo = board.PromotionFromChar(s[4])
		if promo == board.NoPieceType {
			return board.NoSquare, board.NoSquare, board.NoPieceType, ErrInvalidMove
		}
	}

	return from, to, promo, nil
}

// handlePosition resets the game to startpos or a FEN position,
// discarding all history.
func (h *Handler) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	if args[0] == "startpos" {
		*h.game = *game.New()
		return
	}

	pos, err := board.ParseFEN(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(h.out, "ERROR InvalidPosition %v\n", err)
		return
	}
	*h.game = *game.NewFromPosition(pos)
}

// handlePerft counts move-tree leaves from the current position.
func (h *Handler) handlePerft(args []string) {
	depth := 1
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 0 {
			fmt.Fprintln(h.out, "ERROR InvalidDepth")
			return
		}
		depth = d
	}

	nodes := board.Perft(h.game.Position().Copy(), depth)
	fmt.Fprintf(h.out, "NODES %d\n", nodes)
}

// writeHistory prints the move log in coordinate form, one entry per
// line, with a '*' marking the entry the cursor has reached.
func (h *Handler) writeHistory() {
	moves, cursor := h.game.History()
	fmt.Fprintln(h.out, "HISTORY")
	for i, m := range moves {
		marker := ' '
		if i == cursor {
			marker = '*'
		}
		fmt.Fprintf(h.out, "%c %d %s\n", marker, i+1, m)
	}
}

// writeState emits the BOARD/TURN/STATUS block for the current
// position, rank 8 first.
func (h *Handler) writeState() {
	pos := h.game.Position()

	fmt.Fprintln(h.out, "BOARD")
	for rank := 7; rank >= 0; rank-- {
		var sb strings.Builder
		for file := 0; file < 8; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(pos.PieceAt(board.NewSquare(file, rank)).Char())
		}
		fmt.Fprintln(h.out, sb.String())
	}

	turn := "WHITE"
	if pos.SideToMove == board.Black {
		turn = "BLACK"
	}
	fmt.Fprintf(h.out, "TURN %s\n", turn)
	fmt.Fprintf(h.out, "STATUS %s\n", h.game.Status())
}
