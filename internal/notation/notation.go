// FILE: internal/notation/notation.go
// Package notation parses and formats the letter+number move notation the
// terminal game and the HTTP API accept: a pair of squares like "A6 B5",
// letters for the column and 1-based numbers for the row, always from
// White's viewing orientation.
package notation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"checkers/internal/board"
	"checkers/internal/core"
)

var (
	movePattern   = regexp.MustCompile(`^([A-Z])([0-9]+) ([A-Z])([0-9]+)$`)
	squarePattern = regexp.MustCompile(`^([A-Z])([0-9]+)$`)
)

// ParseMove reads a move description and returns a Move in White's
// orientation, bounds-checked against the board. Input is upper-cased
// first, so notation is case-insensitive. Malformed or out-of-board input
// yields ErrParse.
func ParseMove(text string, b *board.Board) (board.Move, error) {
	m := movePattern.FindStringSubmatch(normalize(text))
	if m == nil {
		return board.Move{}, fmt.Errorf("%w: %q", core.ErrParse, strings.TrimSpace(text))
	}

	source, err := square(m[1], m[2], b)
	if err != nil {
		return board.Move{}, fmt.Errorf("source %w", err)
	}
	target, err := square(m[3], m[4], b)
	if err != nil {
		return board.Move{}, fmt.Errorf("target %w", err)
	}

	return board.Move{Source: source, Target: target}, nil
}

// ParseSquare reads a single square description in White's orientation.
func ParseSquare(text string, b *board.Board) (board.Index, error) {
	m := squarePattern.FindStringSubmatch(normalize(text))
	if m == nil {
		return board.Index{}, fmt.Errorf("%w: %q", core.ErrParse, strings.TrimSpace(text))
	}
	return square(m[1], m[2], b)
}

// IsMove reports whether text looks like move notation at all, used by
// the command reader to tell moves from commands.
func IsMove(text string) bool {
	return movePattern.MatchString(normalize(text))
}

// Format renders a move back into notation. The indices are formatted in
// their own frame; callers pass White-oriented moves.
func Format(mv board.Move) string {
	return FormatSquare(mv.Source) + " " + FormatSquare(mv.Target)
}

// FormatSquare renders one index as letter+number.
func FormatSquare(idx board.Index) string {
	return fmt.Sprintf("%c%d", 'A'+idx.X, idx.Y+1)
}

// FormatOriented renders an index of either orientation as the square a
// player looking from White's side would name.
func FormatOriented(b *board.Board, idx board.Index) string {
	if idx.Orientation == core.Black {
		idx = b.Reverse(idx)
	}
	return FormatSquare(idx)
}

func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToUpper(text)), " ")
}

func square(letter, number string, b *board.Board) (board.Index, error) {
	x := int(letter[0] - 'A')
	row, err := strconv.Atoi(number)
	if err != nil || row < 1 {
		return board.Index{}, fmt.Errorf("%w: row %q", core.ErrParse, number)
	}
	y := row - 1

	if x >= b.Width() {
		return board.Index{}, fmt.Errorf("%w: column %s is outside the board", core.ErrParse, letter)
	}
	if y >= b.Height() {
		return board.Index{}, fmt.Errorf("%w: row %d is outside the board", core.ErrParse, row)
	}

	return board.NewIndex(x, y, core.White), nil
}
