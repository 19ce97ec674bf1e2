// FILE: internal/board/board_test.go
package board

import (
	"errors"
	"testing"

	"checkers/internal/core"
)

func TestNewOpeningLayout(t *testing.T) {
	tests := []struct {
		name   string
		height int
		width  int
	}{
		{"international 10x10", 10, 10},
		{"english 8x8", 8, 8},
		{"narrow 8x4", 8, 4},
		{"tall 12x10", 12, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.height, tt.width)
			if err != nil {
				t.Fatalf("New(%d, %d): %v", tt.height, tt.width, err)
			}

			perSide := (tt.height - 2) * tt.width / 4
			if got := b.Count(core.White); got != perSide {
				t.Errorf("white count = %d, want %d", got, perSide)
			}
			if got := b.Count(core.Black); got != perSide {
				t.Errorf("black count = %d, want %d", got, perSide)
			}

			// Middle rows stay empty
			for x := 0; x < tt.width; x++ {
				for _, y := range []int{tt.height/2 - 1, tt.height / 2} {
					tile, err := b.GetTile(Index{X: x, Y: y, Orientation: core.White})
					if err != nil {
						t.Fatalf("GetTile(%d,%d): %v", x, y, err)
					}
					if tile != core.TileEmpty {
						t.Errorf("middle square (%d,%d) = %v, want empty", x, y, tile)
					}
				}
			}

			// Pieces only on dark squares
			for y := 0; y < tt.height; y++ {
				for x := 0; x < tt.width; x++ {
					tile, _ := b.GetTile(Index{X: x, Y: y, Orientation: core.White})
					if tile != core.TileEmpty && (x+y)%2 != 1 {
						t.Errorf("piece on light square (%d,%d)", x, y)
					}
				}
			}
		})
	}
}

func TestNewRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name   string
		height int
		width  int
	}{
		{"odd height", 9, 10},
		{"too short", 2, 10},
		{"too narrow", 10, 1},
		{"too tall", 28, 10},
		{"too wide", 10, 27},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.height, tt.width); err == nil {
				t.Errorf("New(%d, %d) accepted invalid dimensions", tt.height, tt.width)
			}
		})
	}
}

func TestReverseInvolution(t *testing.T) {
	b, err := New(10, 10)
	if err != nil {
		t.Fatal(err)
	}

	for _, idx := range []Index{
		{X: 0, Y: 0, Orientation: core.White},
		{X: 9, Y: 9, Orientation: core.White},
		{X: 3, Y: 6, Orientation: core.Black},
		{X: 5, Y: 2, Orientation: core.White},
	} {
		rev := b.Reverse(idx)
		if rev.Orientation != idx.Orientation.Enemy() {
			t.Errorf("Reverse(%s) kept orientation", idx)
		}
		if back := b.Reverse(rev); back != idx {
			t.Errorf("Reverse(Reverse(%s)) = %s", idx, back)
		}
	}
}

func TestOrientationDispatch(t *testing.T) {
	b, err := New(10, 10)
	if err != nil {
		t.Fatal(err)
	}

	// The same storage square addressed from both frames.
	white := Index{X: 1, Y: 2, Orientation: core.White}
	black := b.Reverse(white)

	if err := b.SetTile(white, core.TileWhiteKing); err != nil {
		t.Fatal(err)
	}
	tile, err := b.GetTile(black)
	if err != nil {
		t.Fatal(err)
	}
	if tile != core.TileWhiteKing {
		t.Errorf("black-frame read = %v, want white king", tile)
	}

	if err := b.SetTile(black, core.TileBlackMan); err != nil {
		t.Fatal(err)
	}
	tile, err = b.GetTile(white)
	if err != nil {
		t.Fatal(err)
	}
	if tile != core.TileBlackMan {
		t.Errorf("white-frame read after black-frame write = %v", tile)
	}
}

func TestGetTileOutOfBounds(t *testing.T) {
	b, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}

	for _, idx := range []Index{
		{X: -1, Y: 0, Orientation: core.White},
		{X: 8, Y: 0, Orientation: core.White},
		{X: 0, Y: 8, Orientation: core.White},
		{X: 8, Y: 8, Orientation: core.Black},
	} {
		if _, err := b.GetTile(idx); !errors.Is(err, core.ErrOutOfBounds) {
			t.Errorf("GetTile(%s) err = %v, want ErrOutOfBounds", idx, err)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	c := b.Clone()

	idx := Index{X: 1, Y: 0, Orientation: core.White}
	if err := c.SetTile(idx, core.TileEmpty); err != nil {
		t.Fatal(err)
	}

	tile, err := b.GetTile(idx)
	if err != nil {
		t.Fatal(err)
	}
	if tile != core.TileBlackMan {
		t.Errorf("original board changed after clone write: %v", tile)
	}
}

func TestSquaresOrientation(t *testing.T) {
	b, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []core.Player{core.White, core.Black} {
		squares := b.Squares(p)
		if len(squares) != 12 {
			t.Fatalf("Squares(%s) returned %d squares, want 12", p, len(squares))
		}
		for _, idx := range squares {
			if idx.Orientation != p {
				t.Errorf("Squares(%s) returned foreign orientation %s", p, idx)
			}
			owner, ok, err := b.Owner(idx)
			if err != nil {
				t.Fatal(err)
			}
			if !ok || owner != p {
				t.Errorf("square %s not owned by %s", idx, p)
			}
			// Opening men sit in the owner's own three rows, y 5..7
			if idx.Y < 5 {
				t.Errorf("opening man outside own half: %s", idx)
			}
		}
	}
}

func TestTranslate(t *testing.T) {
	idx := Index{X: 2, Y: 3, Orientation: core.Black}

	moved, ok := idx.Translate(1, -1)
	if !ok {
		t.Fatal("Translate(1, -1) failed")
	}
	if moved.X != 3 || moved.Y != 2 || moved.Orientation != core.Black {
		t.Errorf("Translate(1, -1) = %s", moved)
	}

	if _, ok := idx.Translate(-3, 0); ok {
		t.Error("Translate below zero succeeded")
	}
	if _, ok := idx.Translate(0, -4); ok {
		t.Error("Translate below zero succeeded")
	}
}
