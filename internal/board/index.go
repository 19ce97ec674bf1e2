// FILE: internal/board/index.go
package board

import (
	"fmt"

	"checkers/internal/core"
)

// Index addresses one square of the board from a specific player's
// perspective. A White-tagged index maps onto storage directly, with (0,0)
// in the top-left corner. A Black-tagged index sees the board mirrored
// about its center, so for both players "forward" is decreasing y in their
// own frame. Board.Reverse is the only conversion between the two frames.
type Index struct {
	X, Y        int
	Orientation core.Player
}

func NewIndex(x, y int, orientation core.Player) Index {
	return Index{X: x, Y: y, Orientation: orientation}
}

// Translate returns the index moved by (dx, dy) within its own frame.
// It fails when either coordinate would become negative; upper-bound
// checks are left to board access.
func (i Index) Translate(dx, dy int) (Index, bool) {
	x, y := i.X+dx, i.Y+dy
	if x < 0 || y < 0 {
		return Index{}, false
	}
	return Index{X: x, Y: y, Orientation: i.Orientation}, true
}

func (i Index) String() string {
	return fmt.Sprintf("(%d,%d %s)", i.X, i.Y, i.Orientation)
}

// Move is a requested displacement: source and target expressed in the
// same orientation, the mover's.
type Move struct {
	Source Index
	Target Index
}

func (m Move) String() string {
	return m.Source.String() + " -> " + m.Target.String()
}
