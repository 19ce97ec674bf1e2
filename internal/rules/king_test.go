// FILE: internal/rules/king_test.go
package rules

import (
	"testing"

	"checkers/internal/board"
	"checkers/internal/core"
)

func TestKingSlides(t *testing.T) {
	b := parse(t, "8/8/8/8/3W4/8/8/8 w")
	moves, err := LegalMoves(b, white(3, 4))
	if err != nil {
		t.Fatal(err)
	}

	// 3 squares NW, 4 NE, 3 SE, 3 SW from (3,4) on an empty 8x8 board.
	if len(moves) != 13 {
		t.Fatalf("got %d slides, want 13: %v", len(moves), moves)
	}
	for _, m := range moves {
		if m.Kind != KindKingMove {
			t.Errorf("slide to %s has kind %s", m.Target, m.Kind)
		}
		if len(m.Captured) != 0 {
			t.Errorf("slide to %s captures %v", m.Target, m.Captured)
		}
	}

	got := targets(moves)
	for _, want := range []board.Index{
		white(0, 1), white(7, 0), white(6, 7), white(0, 7),
	} {
		if _, ok := got[want]; !ok {
			t.Errorf("missing slide to diagonal end %s", want)
		}
	}
}

func TestKingSlideStopsAtPieces(t *testing.T) {
	// Own man at (5,2) blocks the NE diagonal beyond (4,3).
	b := parse(t, "8/8/5w2/8/3W4/8/8/8 w")
	moves, err := LegalMoves(b, white(3, 4))
	if err != nil {
		t.Fatal(err)
	}

	got := targets(moves)
	if _, ok := got[white(4, 3)]; !ok {
		t.Error("missing slide to (4,3) before the blocker")
	}
	if _, ok := got[white(5, 2)]; ok {
		t.Error("slide onto own piece offered")
	}
	if _, ok := got[white(6, 1)]; ok {
		t.Error("slide past the blocker offered")
	}
}

func TestKingCaptureLandingChoice(t *testing.T) {
	b := parse(t, "8/8/8/8/8/2b5/8/W7 w")
	moves, err := LegalMoves(b, white(0, 7))
	if err != nil {
		t.Fatal(err)
	}

	// Every open square beyond the captured man is a landing option.
	if len(moves) != 5 {
		t.Fatalf("got %d captures, want 5: %v", len(moves), moves)
	}
	for _, m := range moves {
		if m.Kind != KindKingCapture {
			t.Errorf("capture to %s has kind %s", m.Target, m.Kind)
		}
		if len(m.Captured) != 1 || m.Captured[0] != white(2, 5) {
			t.Errorf("capture to %s removed %v, want the man at (2,5)", m.Target, m.Captured)
		}
	}

	got := targets(moves)
	for _, want := range []board.Index{
		white(3, 4), white(4, 3), white(5, 2), white(6, 1), white(7, 0),
	} {
		if _, ok := got[want]; !ok {
			t.Errorf("missing landing %s", want)
		}
	}
}

func TestKingCaptureBlockedBehind(t *testing.T) {
	// A second piece at (4,3) leaves (3,4) as the only landing.
	b := parse(t, "8/8/8/4w3/8/2b5/8/W7 w")
	moves, err := LegalMoves(b, white(0, 7))
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 1 {
		t.Fatalf("got %d captures, want 1: %v", len(moves), moves)
	}
	if moves[0].Target != white(3, 4) {
		t.Errorf("landing = %s, want (3,4)", moves[0].Target)
	}
}

func TestKingCannotJumpTwoAdjacentPieces(t *testing.T) {
	// Two black men in a row on the diagonal are an impassable wall.
	b := parse(t, "8/8/8/8/3b4/2b5/8/W7 w")
	moves, err := LegalMoves(b, white(0, 7))
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range moves {
		if m.Kind.Capturing() {
			t.Errorf("capture through a wall offered: %v", m)
		}
	}
}

func TestKingMultiCaptureTurnsCorners(t *testing.T) {
	// NE over (2,5) landing (3,4), then SE over (4,5) landing past it.
	b := parse(t, "8/8/8/8/8/2b1b3/8/W7 w")
	moves, err := LegalMoves(b, white(0, 7))
	if err != nil {
		t.Fatal(err)
	}

	var best Available
	for _, m := range moves {
		if len(m.Captured) > len(best.Captured) {
			best = m
		}
	}
	if len(best.Captured) != 2 {
		t.Fatalf("longest chain captures %d, want 2: %v", len(best.Captured), moves)
	}
	if best.Kind != KindKingMultiCapture {
		t.Errorf("kind = %s, want king multi-capture", best.Kind)
	}
	if best.Captured[0] != white(2, 5) || best.Captured[1] != white(4, 5) {
		t.Errorf("captured = %v, want (2,5) then (4,5)", best.Captured)
	}
}

func TestBlackKingFrame(t *testing.T) {
	// A black king slides in its own frame; targets come back Black-tagged.
	b := parse(t, "8/8/8/4B3/8/8/8/8 b")
	moves, err := LegalMoves(b, board.Index{X: 4, Y: 3, Orientation: core.White})
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) == 0 {
		t.Fatal("black king has no slides")
	}
	for _, m := range moves {
		if m.Kind != KindKingMove {
			t.Errorf("kind = %s, want king move", m.Kind)
		}
		if m.Target.Orientation != core.Black {
			t.Errorf("target %s not in black's frame", m.Target)
		}
	}
}
