package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFENStartingPosition(t *testing.T) {
	pos := mustParseFEN(t, StartFEN)

	if diff := cmp.Diff(NewPosition(), pos); diff != "" {
		t.Errorf("start FEN mismatch (-want +got):\n%s", diff)
	}
	if pos.ToFEN() != StartFEN {
		t.Errorf("ToFEN() = %q, want %q", pos.ToFEN(), StartFEN)
	}
}

func TestCastlingRightsMapToMovedFlags(t *testing.T) {
	pos := mustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")

	if pos.Board[E1].Moved || pos.Board[H1].Moved {
		t.Error("white king and h1 rook should be unmoved (K right)")
	}
	if !pos.Board[A1].Moved {
		t.Error("a1 rook should be marked moved (no Q right)")
	}
	if pos.Board[E8].Moved || pos.Board[A8].Moved {
		t.Error("black king and a8 rook should be unmoved (q right)")
	}
	if !pos.Board[H8].Moved {
		t.Error("h8 rook should be marked moved (no k right)")
	}

	if got := pos.ToFEN(); got != "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1" {
		t.Errorf("ToFEN() = %q", got)
	}
}

func TestNoCastlingRights(t *testing.T) {
	pos := mustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")

	for _, m := range pos.LegalMoves(White) {
		if m.Castling {
			t.Errorf("castling move %v generated without rights", m)
		}
	}
	if got := pos.ToFEN(); got != "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1" {
		t.Errorf("ToFEN() = %q", got)
	}
}

func TestPawnOffStartRankCannotDoubleStep(t *testing.T) {
	pos := mustParseFEN(t, "8/8/8/8/8/4P3/8/K6k w - - 0 1")

	for _, m := range pos.LegalMoves(White) {
		if m.From == E3 && m.To == E5 {
			t.Error("pawn on e3 must not double-step")
		}
	}
}

func TestEnPassantFieldRoundTrip(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2"
	pos := mustParseFEN(t, fen)

	if pos.EnPassant != D6 {
		t.Errorf("EnPassant = %s, want d6", pos.EnPassant)
	}
	if got := pos.ToFEN(); got != fen {
		t.Errorf("ToFEN() = %q, want %q", got, fen)
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",   // 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq - 0 1", // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", // bad ep square
	}

	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) should fail", fen)
		}
	}
}
