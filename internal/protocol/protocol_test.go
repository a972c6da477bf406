package protocol

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/game"
)

const startFrame = `BOARD
r n b q k b n r
p p p p p p p p
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
P P P P P P P P
R N B Q K B N R
TURN WHITE
STATUS active
`

const afterE4Frame = `BOARD
r n b q k b n r
p p p p p p p p
. . . . . . . .
. . . . . . . .
. . . . P . . .
. . . . . . . .
P P P P . P P P
R N B Q K B N R
TURN BLACK
STATUS active
`

// run feeds a command script to a fresh handler and returns the output.
func run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	h := New(game.New(), &out)
	if err := h.Run(strings.NewReader(input)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestStartupEmission(t *testing.T) {
	got := run(t, "QUIT\n")
	if diff := cmp.Diff(startFrame, got); diff != "" {
		t.Errorf("startup output mismatch (-want +got):\n%s", diff)
	}
}

func TestMoveEmitsNewState(t *testing.T) {
	got := run(t, "MOVE e2e4\nQUIT\n")
	want := startFrame + afterE4Frame
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestMoveIsCaseInsensitive(t *testing.T) {
	got := run(t, "MOVE E2E4\nQUIT\n")
	if !strings.Contains(got, "TURN BLACK") {
		t.Error("uppercase coordinates were not accepted")
	}
}

func TestInvalidMove(t *testing.T) {
	got := run(t, "MOVE zz99\nQUIT\n")
	want := startFrame + "ERROR InvalidMove\n" + startFrame
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestIllegalMove(t *testing.T) {
	got := run(t, "MOVE e2e5\nQUIT\n")
	want := startFrame + "ERROR IllegalMove\n" + startFrame
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestUndoRedoFlow(t *testing.T) {
	got := run(t, "MOVE e2e4\nUNDO\nREDO\nQUIT\n")
	want := startFrame + afterE4Frame + startFrame + afterE4Frame
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestUndoOnFreshGameKeepsState(t *testing.T) {
	got := run(t, "UNDO\nQUIT\n")
	want := startFrame + startFrame
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPerftCommand(t *testing.T) {
	got := run(t, "PERFT 2\nQUIT\n")
	if !strings.Contains(got, "NODES 400\n") {
		t.Errorf("missing perft node count in output:\n%s", got)
	}
}

func TestHistoryCommand(t *testing.T) {
	got := run(t, "MOVE e2e4\nMOVE e7e5\nUNDO\nHISTORY\nQUIT\n")
	if !strings.Contains(got, "HISTORY\n* 1 e2e4\n  2 e7e5\n") {
		t.Errorf("history output mismatch:\n%s", got)
	}
}

func TestPositionCommand(t *testing.T) {
	got := run(t, "POSITION 8/P6k/8/8/8/8/8/K7 w - - 0 1\nMOVE a7a8q\nQUIT\n")
	if !strings.Contains(got, "Q . . . . . . .") {
		t.Errorf("promotion via protocol failed:\n%s", got)
	}
}

func TestUnknownCommandReemitsState(t *testing.T) {
	got := run(t, "HELLO\nQUIT\n")
	want := startFrame + startFrame
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in      string
		from    board.Square
		to      board.Square
		promo   board.PieceType
		wantErr bool
	}{
		{"e2e4", board.E2, board.E4, board.NoPieceType, false},
		{"e7e8q", board.E7, board.E8, board.Queen, false},
		{"E7E8N", board.E7, board.E8, board.Knight, false},
		{"e2", 0, 0, 0, true},
		{"e2e9", 0, 0, 0, true},
		{"i2e4", 0, 0, 0, true},
		{"e7e8x", 0, 0, 0, true},
		{"e2e4qq", 0, 0, 0, true},
	}

	for _, tc := range tests {
		from, to, promo, err := ParseCoord(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseCoord(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCoord(%q): %v", tc.in, err)
			continue
		}
		if from != tc.from || to != tc.to || promo != tc.promo {
			t.Errorf("ParseCoord(%q) = %s %s %v", tc.in, from, to, promo)
		}
	}
}
