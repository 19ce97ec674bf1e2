// FILE: internal/core/core.go
package core

// Player identifies one of the two sides.
type Player int

const (
	White Player = iota + 1
	Black
)

func (p Player) String() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "-"
	}
}

// Letter returns the single-character color code used in positions and storage.
func (p Player) Letter() string {
	if p == White {
		return "w"
	}
	return "b"
}

// Enemy returns the opposing player.
func (p Player) Enemy() Player {
	if p == White {
		return Black
	}
	return White
}

// Tile is the content of one board square.
type Tile int

const (
	TileEmpty Tile = iota
	TileWhiteMan
	TileBlackMan
	TileWhiteKing
	TileBlackKing
)

// Owner returns the player owning the tile; ok is false for an empty square.
func (t Tile) Owner() (Player, bool) {
	switch t {
	case TileWhiteMan, TileWhiteKing:
		return White, true
	case TileBlackMan, TileBlackKing:
		return Black, true
	default:
		return 0, false
	}
}

// King reports whether the tile holds a crowned piece.
func (t Tile) King() bool {
	return t == TileWhiteKing || t == TileBlackKing
}

// Crowned returns the king tile for a man, or the tile unchanged if it is
// already a king or empty.
func (t Tile) Crowned() Tile {
	switch t {
	case TileWhiteMan:
		return TileWhiteKing
	case TileBlackMan:
		return TileBlackKing
	default:
		return t
	}
}

func (t Tile) String() string {
	switch t {
	case TileWhiteMan:
		return "white man"
	case TileBlackMan:
		return "black man"
	case TileWhiteKing:
		return "white king"
	case TileBlackKing:
		return "black king"
	default:
		return "empty"
	}
}

// State is the turn/win state of a game. Exactly one of Turn and Winner is
// set; a state with a Winner is terminal.
type State struct {
	Turn   Player
	Winner Player
}

// TurnOf returns an ongoing state with p to move.
func TurnOf(p Player) State {
	return State{Turn: p}
}

// WonBy returns the terminal state with p as the winner.
func WonBy(p Player) State {
	return State{Winner: p}
}

// Over reports whether the game has ended.
func (s State) Over() bool {
	return s.Winner != 0
}

func (s State) String() string {
	if s.Over() {
		return s.Winner.String() + " wins"
	}
	return s.Turn.String() + " to move"
}
