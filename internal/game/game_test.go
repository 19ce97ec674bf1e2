// FILE: internal/game/game_test.go
package game

import (
	"errors"
	"testing"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/notation"
	"checkers/internal/rules"
)

const fresh8x8 = "1b1b1b1b/b1b1b1b1/1b1b1b1b/8/8/w1w1w1w1/1w1w1w1w/w1w1w1w1 w"

func apply(t *testing.T, g *Game, move string) *MoveResult {
	t.Helper()
	mv, err := notation.ParseMove(move, g.Board())
	if err != nil {
		t.Fatalf("parse %q: %v", move, err)
	}
	result, err := g.Apply(mv)
	if err != nil {
		t.Fatalf("apply %q: %v", move, err)
	}
	return result
}

func applyErr(t *testing.T, g *Game, move string) error {
	t.Helper()
	mv, err := notation.ParseMove(move, g.Board())
	if err != nil {
		t.Fatalf("parse %q: %v", move, err)
	}
	_, err = g.Apply(mv)
	if err == nil {
		t.Fatalf("apply %q succeeded, expected an error", move)
	}
	return err
}

func TestNewGame(t *testing.T) {
	g, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}

	if g.State().Over() {
		t.Error("fresh game is already over")
	}
	if g.State().Turn != core.White {
		t.Errorf("turn = %s, want white", g.State().Turn)
	}
	if got := g.Position(); got != fresh8x8 {
		t.Errorf("position = %q, want %q", got, fresh8x8)
	}
	if got := g.InitialPosition(); got != fresh8x8 {
		t.Errorf("initial position = %q", got)
	}
	if len(g.Moves()) != 0 {
		t.Errorf("fresh game has moves: %v", g.Moves())
	}
	if g.LastResult() != nil {
		t.Error("fresh game has a last result")
	}
}

func TestApplyAlternatesTurns(t *testing.T) {
	g, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}

	result := apply(t, g, "C6 B5")
	if result.Player != core.White {
		t.Errorf("first mover = %s", result.Player)
	}
	if result.Kind != rules.KindMove {
		t.Errorf("kind = %s, want move", result.Kind)
	}
	if g.State().Turn != core.Black {
		t.Errorf("turn after white's move = %s", g.State().Turn)
	}

	result = apply(t, g, "D3 C4")
	if result.Player != core.Black {
		t.Errorf("second mover = %s", result.Player)
	}
	if g.State().Turn != core.White {
		t.Errorf("turn after black's move = %s", g.State().Turn)
	}

	want := []string{"C6 B5", "D3 C4"}
	got := g.Moves()
	if len(got) != len(want) {
		t.Fatalf("moves = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("move %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOpeningExchange(t *testing.T) {
	g, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}

	apply(t, g, "C6 B5")
	apply(t, g, "D3 C4")

	// White jumps the advanced black man into the square it vacated.
	result := apply(t, g, "B5 D3")
	if result.Kind != rules.KindCapture {
		t.Errorf("kind = %s, want capture", result.Kind)
	}
	if result.Captured != 1 {
		t.Errorf("captured = %d, want 1", result.Captured)
	}
	if g.Board().Count(core.Black) != 11 {
		t.Errorf("black count = %d, want 11", g.Board().Count(core.Black))
	}
}

func TestApplyRejectsBadMoves(t *testing.T) {
	g, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	before := g.Position()

	tests := []struct {
		name string
		move string
		want error
	}{
		{"non-diagonal step", "C6 C5", core.ErrIllegalMove},
		{"backward quiet step", "C6 B7", core.ErrIllegalMove},
		{"opponent's piece", "D3 C4", core.ErrIllegalMove},
		{"empty source", "D5 C4", core.ErrEmptySource},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := applyErr(t, g, tt.move)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if g.Position() != before {
				t.Errorf("position changed by rejected move")
			}
			if g.State().Turn != core.White {
				t.Errorf("turn changed by rejected move")
			}
		})
	}
}

func TestPromotionWhite(t *testing.T) {
	g, err := Resume("8/2w5/8/8/5b2/8/8/8 w")
	if err != nil {
		t.Fatal(err)
	}

	result := apply(t, g, "C2 B1")
	if !result.Promoted {
		t.Error("man on the far row not promoted")
	}

	tile, err := g.Board().GetTile(board.NewIndex(1, 0, core.White))
	if err != nil {
		t.Fatal(err)
	}
	if tile != core.TileWhiteKing {
		t.Errorf("tile after promotion = %v, want white king", tile)
	}
	if g.State().Over() {
		t.Error("promotion ended a game the opponent can still play")
	}
}

func TestPromotionBlack(t *testing.T) {
	g, err := Resume("8/8/8/8/8/8/5b2/4w3 b")
	if err != nil {
		t.Fatal(err)
	}

	result := apply(t, g, "F7 G8")
	if !result.Promoted {
		t.Error("black man on white's back row not promoted")
	}

	tile, err := g.Board().GetTile(board.NewIndex(6, 7, core.White))
	if err != nil {
		t.Fatal(err)
	}
	if tile != core.TileBlackKing {
		t.Errorf("tile after promotion = %v, want black king", tile)
	}
}

func TestWinByCapturingLastPiece(t *testing.T) {
	g, err := Resume("8/8/8/8/3b4/2w5/8/8 w")
	if err != nil {
		t.Fatal(err)
	}

	result := apply(t, g, "C6 E4")
	if !result.State.Over() {
		t.Fatal("game not over after last capture")
	}
	if result.State.Winner != core.White {
		t.Errorf("winner = %s, want white", result.State.Winner)
	}

	err = applyErr(t, g, "E4 D3")
	if !errors.Is(err, core.ErrGameOver) {
		t.Errorf("move after win err = %v, want ErrGameOver", err)
	}
}

func TestWinByBlockingAllMoves(t *testing.T) {
	// White's step into G2 leaves the black man in the corner with its step
	// square taken and its jump landing occupied.
	g, err := Resume("7b/8/5w1w/8/8/8/8/8 w")
	if err != nil {
		t.Fatal(err)
	}

	result := apply(t, g, "H3 G2")
	if !result.State.Over() {
		t.Fatal("game not over with black immobilized")
	}
	if result.State.Winner != core.White {
		t.Errorf("winner = %s, want white", result.State.Winner)
	}
	if g.Board().Count(core.Black) != 1 {
		t.Errorf("black count = %d, the win should not remove pieces", g.Board().Count(core.Black))
	}
}

func TestResumeAlreadyWon(t *testing.T) {
	// Black to move without a single piece.
	g, err := Resume("8/8/8/8/8/8/8/4w3 b")
	if err != nil {
		t.Fatal(err)
	}

	if !g.State().Over() {
		t.Fatal("resumed position not recognized as won")
	}
	if g.State().Winner != core.White {
		t.Errorf("winner = %s, want white", g.State().Winner)
	}
}

func TestUndoMoves(t *testing.T) {
	g, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	initial := g.Position()

	apply(t, g, "C6 B5")
	apply(t, g, "D3 E4")

	if err := g.UndoMoves(1); err != nil {
		t.Fatal(err)
	}
	if g.State().Turn != core.Black {
		t.Errorf("turn after undoing black's move = %s", g.State().Turn)
	}
	if g.LastResult() != nil {
		t.Error("last result survives an undo")
	}

	if err := g.UndoMoves(1); err != nil {
		t.Fatal(err)
	}
	if g.Position() != initial {
		t.Errorf("position after full undo = %q, want initial", g.Position())
	}
	if g.State().Turn != core.White {
		t.Errorf("turn after full undo = %s", g.State().Turn)
	}

	if err := g.UndoMoves(1); err == nil {
		t.Error("undo with no moves played succeeded")
	}
	if err := g.UndoMoves(0); err == nil {
		t.Error("undo count 0 accepted")
	}
}

func TestUndoReopensWonGame(t *testing.T) {
	g, err := Resume("8/8/8/8/3b4/2w5/8/8 w")
	if err != nil {
		t.Fatal(err)
	}
	apply(t, g, "C6 E4")
	if !g.State().Over() {
		t.Fatal("setup: game should be won")
	}

	if err := g.UndoMoves(1); err != nil {
		t.Fatal(err)
	}
	if g.State().Over() {
		t.Error("game still over after undoing the winning move")
	}
	if g.State().Turn != core.White {
		t.Errorf("turn = %s, want white", g.State().Turn)
	}
}
