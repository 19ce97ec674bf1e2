// FILE: internal/game/game.go
package game

import (
	"fmt"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/notation"
	"checkers/internal/rules"
)

// Snapshot is one point of the game history: the encoded position after a
// move, the move that created it, and the side to move next.
type Snapshot struct {
	Position     string
	PreviousMove string // empty for the initial position
	NextTurn     core.Player
}

// MoveResult describes the outcome of one applied move.
type MoveResult struct {
	Move     string // notation, White's orientation
	Player   core.Player
	Kind     rules.Kind
	Captured int
	Promoted bool
	State    core.State
}

// Game owns one board and its turn state. It is the only component that
// mutates the board: every change goes through Apply, which either
// performs the whole move (displacement, captures, promotion, turn flip)
// or leaves board and state untouched.
type Game struct {
	board      *board.Board
	state      core.State
	snapshots  []Snapshot
	lastResult *MoveResult
}

// New starts a game with the standard opening layout, White to move.
func New(height, width int) (*Game, error) {
	b, err := board.New(height, width)
	if err != nil {
		return nil, err
	}
	return fromBoard(b, core.White), nil
}

// Resume restores a game from an encoded position. A position whose side
// to move has no pieces or no legal moves resumes as already won.
func Resume(position string) (*Game, error) {
	b, turn, err := board.ParsePosition(position)
	if err != nil {
		return nil, err
	}
	return fromBoard(b, turn), nil
}

func fromBoard(b *board.Board, turn core.Player) *Game {
	g := &Game{board: b, state: core.TurnOf(turn)}
	if b.Count(turn) == 0 || !rules.HasMoves(b, turn) {
		g.state = core.WonBy(turn.Enemy())
	}
	g.snapshots = []Snapshot{{Position: board.Encode(b, turn), NextTurn: turn}}
	return g
}

func (g *Game) Board() *board.Board { return g.board }
func (g *Game) State() core.State   { return g.state }

// Position returns the current encoded position.
func (g *Game) Position() string {
	return g.snapshots[len(g.snapshots)-1].Position
}

// Moves returns the applied move notations in order.
func (g *Game) Moves() []string {
	moves := make([]string, 0, len(g.snapshots)-1)
	for _, s := range g.snapshots[1:] {
		moves = append(moves, s.PreviousMove)
	}
	return moves
}

// InitialPosition returns the position the game started from.
func (g *Game) InitialPosition() string {
	return g.snapshots[0].Position
}

// LastResult returns the outcome of the most recent move, or nil.
func (g *Game) LastResult() *MoveResult { return g.lastResult }

// LegalMovesFrom enumerates the legal moves of the piece on a square given
// in White's orientation.
func (g *Game) LegalMovesFrom(square board.Index) ([]rules.Available, error) {
	return rules.LegalMoves(g.board, square)
}

// Apply executes a move given in White's orientation (the notation
// parser's output); when it is Black's turn the move is reversed into
// Black's frame first. On any error the board and state are unchanged.
func (g *Game) Apply(mv board.Move) (*MoveResult, error) {
	if g.state.Over() {
		return nil, fmt.Errorf("%w: %s won", core.ErrGameOver, g.state.Winner)
	}
	mover := g.state.Turn

	oriented := mv
	if mover == core.Black {
		oriented = board.Move{
			Source: g.board.Reverse(mv.Source),
			Target: g.board.Reverse(mv.Target),
		}
	}

	tile, err := g.board.GetTile(oriented.Source)
	if err != nil {
		return nil, err
	}
	owner, occupied := tile.Owner()
	if !occupied {
		return nil, fmt.Errorf("%w at %s", core.ErrEmptySource, mv.Source)
	}
	if owner != mover {
		return nil, fmt.Errorf("%w: the %s at %s belongs to the opponent", core.ErrIllegalMove, tile, notation.FormatSquare(mv.Source))
	}

	available, err := rules.CheckMove(g.board, oriented)
	if err != nil {
		return nil, err
	}

	// Validation is complete; nothing below can fail.
	g.mustSet(available.Source, core.TileEmpty)
	for _, captured := range available.Captured {
		g.mustSet(captured, core.TileEmpty)
	}

	promoted := false
	finalTile := tile
	if !tile.King() && available.Target.Y == 0 {
		finalTile = tile.Crowned()
		promoted = true
	}
	g.mustSet(available.Target, finalTile)

	enemy := mover.Enemy()
	if g.board.Count(enemy) == 0 || !rules.HasMoves(g.board, enemy) {
		g.state = core.WonBy(mover)
	} else {
		g.state = core.TurnOf(enemy)
	}

	moveText := notation.Format(mv)
	g.snapshots = append(g.snapshots, Snapshot{
		Position:     board.Encode(g.board, enemy),
		PreviousMove: moveText,
		NextTurn:     enemy,
	})

	g.lastResult = &MoveResult{
		Move:     moveText,
		Player:   mover,
		Kind:     available.Kind,
		Captured: len(available.Captured),
		Promoted: promoted,
		State:    g.state,
	}
	return g.lastResult, nil
}

// UndoMoves rewinds the last count moves, restoring the board from the
// history snapshot. Undoing past a win reopens the game.
func (g *Game) UndoMoves(count int) error {
	if count < 1 {
		return fmt.Errorf("invalid undo count: %d", count)
	}
	available := len(g.snapshots) - 1
	if count > available {
		return fmt.Errorf("cannot undo %d moves: only %d played", count, available)
	}

	g.snapshots = g.snapshots[:len(g.snapshots)-count]
	last := g.snapshots[len(g.snapshots)-1]

	b, turn, err := board.ParsePosition(last.Position)
	if err != nil {
		panic("internal error, shouldn't get here: " + err.Error())
	}
	g.board = b
	g.state = core.TurnOf(turn)
	g.lastResult = nil
	return nil
}

// mustSet writes at an index the rule engine validated; failure is a
// defect, not a runtime condition.
func (g *Game) mustSet(idx board.Index, tile core.Tile) {
	if err := g.board.SetTile(idx, tile); err != nil {
		panic("internal error, shouldn't get here: " + err.Error())
	}
}
