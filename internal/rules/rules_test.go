// FILE: internal/rules/rules_test.go
package rules

import (
	"errors"
	"testing"

	"checkers/internal/board"
	"checkers/internal/core"
)

// parse builds a board from a position string, failing the test on error.
// All test indices are written in White's frame unless noted.
func parse(t *testing.T, position string) *board.Board {
	t.Helper()
	b, _, err := board.ParsePosition(position)
	if err != nil {
		t.Fatalf("parse %q: %v", position, err)
	}
	return b
}

func white(x, y int) board.Index {
	return board.Index{X: x, Y: y, Orientation: core.White}
}

func targets(moves []Available) map[board.Index]Kind {
	out := make(map[board.Index]Kind, len(moves))
	for _, m := range moves {
		out[m.Target] = m.Kind
	}
	return out
}

func TestManMoves(t *testing.T) {
	tests := []struct {
		name     string
		position string
		source   board.Index
		want     []board.Index
	}{
		{
			name:     "open man steps forward both ways",
			position: "8/8/8/8/8/2w5/8/8 w",
			source:   white(2, 5),
			want:     []board.Index{white(1, 4), white(3, 4)},
		},
		{
			name:     "man at the edge has one step",
			position: "8/8/8/8/8/w7/8/8 w",
			source:   white(0, 5),
			want:     []board.Index{white(1, 4)},
		},
		{
			name:     "own piece blocks a step",
			position: "8/8/8/8/1w6/2w5/8/8 w",
			source:   white(2, 5),
			want:     []board.Index{white(3, 4)},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			b := parse(t, tt.position)
			moves, err := LegalMoves(b, tt.source)
			if err != nil {
				t.Fatal(err)
			}
			got := targets(moves)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d moves, want %d: %v", len(got), len(tt.want), moves)
			}
			for _, target := range tt.want {
				kind, ok := got[target]
				if !ok {
					t.Errorf("missing move to %s", target)
					continue
				}
				if kind != KindMove {
					t.Errorf("move to %s has kind %s", target, kind)
				}
			}
		})
	}
}

func TestManCaptureSuppressesQuietMoves(t *testing.T) {
	b := parse(t, "8/8/8/8/3b4/2w5/8/8 w")
	moves, err := LegalMoves(b, white(2, 5))
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 1 {
		t.Fatalf("got %d moves, want only the capture: %v", len(moves), moves)
	}
	m := moves[0]
	if m.Kind != KindCapture {
		t.Errorf("kind = %s, want capture", m.Kind)
	}
	if m.Target != white(4, 3) {
		t.Errorf("target = %s, want (4,3)", m.Target)
	}
	if len(m.Captured) != 1 || m.Captured[0] != white(3, 4) {
		t.Errorf("captured = %v, want the man at (3,4)", m.Captured)
	}
}

func TestManCapturesBackward(t *testing.T) {
	b := parse(t, "8/8/8/2w5/3b4/8/8/8 w")
	moves, err := LegalMoves(b, white(2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 1 {
		t.Fatalf("got %d moves, want only the backward capture: %v", len(moves), moves)
	}
	if moves[0].Target != white(4, 5) {
		t.Errorf("target = %s, want (4,5)", moves[0].Target)
	}
}

func TestMultiCaptureIsMaximal(t *testing.T) {
	b := parse(t, "8/8/3b4/8/3b4/2w5/8/8 w")
	moves, err := LegalMoves(b, white(2, 5))
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 1 {
		t.Fatalf("got %d moves, want the single full chain: %v", len(moves), moves)
	}
	m := moves[0]
	if m.Kind != KindMultiCapture {
		t.Errorf("kind = %s, want multi-capture", m.Kind)
	}
	if m.Target != white(2, 1) {
		t.Errorf("target = %s, want the chain end (2,1)", m.Target)
	}
	if len(m.Captured) != 2 {
		t.Fatalf("captured %d pieces, want 2", len(m.Captured))
	}
	if m.Captured[0] != white(3, 4) || m.Captured[1] != white(3, 2) {
		t.Errorf("captured = %v, want (3,4) then (3,2)", m.Captured)
	}
}

func TestLegalMovesNormalizesOrientation(t *testing.T) {
	b := parse(t, "8/8/3b4/8/8/8/8/8 b")

	// The black man addressed in White's frame; results come back in Black's.
	moves, err := LegalMoves(b, white(3, 2))
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 2 {
		t.Fatalf("got %d moves, want 2: %v", len(moves), moves)
	}
	for _, m := range moves {
		if m.Source.Orientation != core.Black {
			t.Errorf("source orientation = %s, want black", m.Source.Orientation)
		}
		if m.Target.Orientation != core.Black {
			t.Errorf("target orientation = %s, want black", m.Target.Orientation)
		}
	}
	got := targets(moves)
	for _, want := range []board.Index{
		{X: 3, Y: 4, Orientation: core.Black},
		{X: 5, Y: 4, Orientation: core.Black},
	} {
		if _, ok := got[want]; !ok {
			t.Errorf("missing move to %s", want)
		}
	}
}

func TestLegalMovesErrors(t *testing.T) {
	b := parse(t, "8/8/8/8/8/2w5/8/8 w")

	if _, err := LegalMoves(b, white(4, 5)); !errors.Is(err, core.ErrEmptySource) {
		t.Errorf("empty source err = %v, want ErrEmptySource", err)
	}
	if _, err := LegalMoves(b, white(8, 5)); !errors.Is(err, core.ErrOutOfBounds) {
		t.Errorf("out of bounds err = %v, want ErrOutOfBounds", err)
	}
}

func TestCaptureObligationIsPerSource(t *testing.T) {
	// The man at (2,5) must capture; the man at (6,5) still moves freely.
	b := parse(t, "8/8/8/8/3b4/2w3w1/8/8 w")

	mustCapture, err := LegalMoves(b, white(2, 5))
	if err != nil {
		t.Fatal(err)
	}
	if len(mustCapture) != 1 || !mustCapture[0].Kind.Capturing() {
		t.Fatalf("capture square offered %v", mustCapture)
	}

	free, err := LegalMoves(b, white(6, 5))
	if err != nil {
		t.Fatal(err)
	}
	if len(free) != 2 {
		t.Fatalf("quiet square got %d moves, want 2: %v", len(free), free)
	}
	for _, m := range free {
		if m.Kind != KindMove {
			t.Errorf("quiet square offered %s", m.Kind)
		}
	}
}

func TestCheckMove(t *testing.T) {
	b := parse(t, "8/8/8/8/3b4/2w5/8/8 w")

	// The capture is accepted.
	m, err := CheckMove(b, board.Move{Source: white(2, 5), Target: white(4, 3)})
	if err != nil {
		t.Fatal(err)
	}
	if m.Kind != KindCapture {
		t.Errorf("kind = %s, want capture", m.Kind)
	}

	// A quiet step from the same square is refused while the capture stands.
	_, err = CheckMove(b, board.Move{Source: white(2, 5), Target: white(1, 4)})
	if !errors.Is(err, core.ErrIllegalMove) {
		t.Errorf("quiet move err = %v, want ErrIllegalMove", err)
	}

	_, err = CheckMove(b, board.Move{Source: white(4, 5), Target: white(3, 4)})
	if !errors.Is(err, core.ErrEmptySource) {
		t.Errorf("empty source err = %v, want ErrEmptySource", err)
	}
}

func TestPickMatch(t *testing.T) {
	src := white(2, 5)
	target := white(2, 1)
	short := Available{Source: src, Kind: KindCapture, Target: target, Captured: []board.Index{white(3, 4)}}
	long := Available{Source: src, Kind: KindMultiCapture, Target: target, Captured: []board.Index{white(3, 4), white(3, 2)}}
	mv := board.Move{Source: src, Target: target}

	got, err := pickMatch([]Available{long, short}, mv)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Captured) != 1 {
		t.Errorf("picked chain of length %d, want the shorter one", len(got.Captured))
	}

	other := Available{Source: src, Kind: KindMultiCapture, Target: target, Captured: []board.Index{white(1, 4), white(1, 2)}}
	_, err = pickMatch([]Available{long, other}, mv)
	if !errors.Is(err, core.ErrAmbiguousMove) {
		t.Errorf("equal-length chains err = %v, want ErrAmbiguousMove", err)
	}
}

func TestHasMoves(t *testing.T) {
	// White's lone man is fully boxed in: the step square is occupied and
	// the jump landing is too.
	b := parse(t, "8/8/8/8/8/2b5/1b6/w7 w")

	if HasMoves(b, core.White) {
		t.Error("boxed-in white reported as having moves")
	}
	if !HasMoves(b, core.Black) {
		t.Error("black with open men reported as having no moves")
	}
}

func TestPlayerMoves(t *testing.T) {
	b := parse(t, "8/8/8/8/8/2w3w1/8/8 w")
	moves := PlayerMoves(b, core.White)
	if len(moves) != 4 {
		t.Fatalf("got %d moves, want 4: %v", len(moves), moves)
	}
}
