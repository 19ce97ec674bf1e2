// FILE: internal/core/core_test.go
package core

import "testing"

func TestPlayerEnemy(t *testing.T) {
	if White.Enemy() != Black {
		t.Error("white's enemy is not black")
	}
	if Black.Enemy() != White {
		t.Error("black's enemy is not white")
	}
	if White.Enemy().Enemy() != White {
		t.Error("enemy of enemy is not self")
	}
}

func TestPlayerStrings(t *testing.T) {
	if White.String() != "white" || Black.String() != "black" {
		t.Errorf("player strings: %s, %s", White, Black)
	}
	if White.Letter() != "w" || Black.Letter() != "b" {
		t.Errorf("player letters: %s, %s", White.Letter(), Black.Letter())
	}
	if Player(0).String() != "-" {
		t.Errorf("zero player string: %s", Player(0))
	}
}

func TestTileOwner(t *testing.T) {
	tests := []struct {
		tile  Tile
		owner Player
		ok    bool
	}{
		{TileEmpty, 0, false},
		{TileWhiteMan, White, true},
		{TileBlackMan, Black, true},
		{TileWhiteKing, White, true},
		{TileBlackKing, Black, true},
	}

	for _, tt := range tests {
		owner, ok := tt.tile.Owner()
		if owner != tt.owner || ok != tt.ok {
			t.Errorf("%s Owner() = %v, %v", tt.tile, owner, ok)
		}
	}
}

func TestTileCrowned(t *testing.T) {
	if TileWhiteMan.Crowned() != TileWhiteKing {
		t.Error("white man not crowned to white king")
	}
	if TileBlackMan.Crowned() != TileBlackKing {
		t.Error("black man not crowned to black king")
	}
	if TileWhiteKing.Crowned() != TileWhiteKing {
		t.Error("crowning a king changed it")
	}
	if TileEmpty.Crowned() != TileEmpty {
		t.Error("crowning an empty square changed it")
	}

	if TileWhiteMan.King() || !TileWhiteKing.King() {
		t.Error("King() misclassifies tiles")
	}
}

func TestState(t *testing.T) {
	ongoing := TurnOf(White)
	if ongoing.Over() {
		t.Error("ongoing state reports over")
	}
	if ongoing.String() != "white to move" {
		t.Errorf("ongoing string: %s", ongoing)
	}

	won := WonBy(Black)
	if !won.Over() {
		t.Error("won state not over")
	}
	if won.String() != "black wins" {
		t.Errorf("won string: %s", won)
	}
}
