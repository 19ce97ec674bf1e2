// FILE: internal/board/position.go
package board

import (
	"fmt"
	"strconv"
	"strings"

	"checkers/internal/core"
)

// Position strings are a compact snapshot of a board plus the side to
// move, in the spirit of chess FEN: rows from the top of White's frame,
// separated by "/", with digit runs for empty squares and the letters
// w/b for men, W/B for kings, then a space and "w" or "b" for the turn.
//
// A fresh 8x8 board encodes as
//
//	1b1b1b1b/b1b1b1b1/1b1b1b1b/8/8/w1w1w1w1/1w1w1w1w/w1w1w1w1 w

var tileLetters = map[core.Tile]byte{
	core.TileWhiteMan:  'w',
	core.TileBlackMan:  'b',
	core.TileWhiteKing: 'W',
	core.TileBlackKing: 'B',
}

var letterTiles = map[byte]core.Tile{
	'w': core.TileWhiteMan,
	'b': core.TileBlackMan,
	'W': core.TileWhiteKing,
	'B': core.TileBlackKing,
}

// Encode serializes the board and the side to move.
func Encode(b *Board, turn core.Player) string {
	var sb strings.Builder

	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		run := 0
		for x := 0; x < b.width; x++ {
			tile := b.tiles[x+y*b.width]
			if tile == core.TileEmpty {
				run++
				continue
			}
			if run > 0 {
				sb.WriteString(strconv.Itoa(run))
				run = 0
			}
			sb.WriteByte(tileLetters[tile])
		}
		if run > 0 {
			sb.WriteString(strconv.Itoa(run))
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(turn.Letter())
	return sb.String()
}

// ParsePosition rebuilds a board and the side to move from a position
// string. It enforces the board invariants: even height within notation
// limits, uniform row width, and no piece on a light square.
func ParsePosition(position string) (*Board, core.Player, error) {
	parts := strings.Fields(strings.TrimSpace(position))
	if len(parts) != 2 {
		return nil, 0, fmt.Errorf("invalid position: expected board and turn, got %d parts", len(parts))
	}

	var turn core.Player
	switch parts[1] {
	case "w":
		turn = core.White
	case "b":
		turn = core.Black
	default:
		return nil, 0, fmt.Errorf("invalid position: turn must be 'w' or 'b', got %q", parts[1])
	}

	rows := strings.Split(parts[0], "/")
	height := len(rows)
	if height%2 != 0 {
		return nil, 0, fmt.Errorf("invalid position: board height cannot be odd, got %d", height)
	}
	if height < 4 || height > MaxDimension {
		return nil, 0, fmt.Errorf("invalid position: unsupported height %d", height)
	}

	width := rowWidth(rows[0])
	if width < 2 || width > MaxDimension {
		return nil, 0, fmt.Errorf("invalid position: unsupported width %d", width)
	}

	b := &Board{
		height: height,
		width:  width,
		tiles:  make([]core.Tile, height*width),
	}

	for y, row := range rows {
		x := 0
		run := 0
		for i := 0; i < len(row); i++ {
			ch := row[i]
			if ch >= '0' && ch <= '9' {
				run = run*10 + int(ch-'0')
				continue
			}
			x += run
			run = 0

			tile, ok := letterTiles[ch]
			if !ok {
				return nil, 0, fmt.Errorf("invalid position: unexpected character %q in row %d", ch, y+1)
			}
			if x >= width {
				return nil, 0, fmt.Errorf("invalid position: row %d is wider than %d", y+1, width)
			}
			if (x+y)%2 != 1 {
				return nil, 0, fmt.Errorf("invalid position: piece on light square (%d,%d)", x, y)
			}
			b.tiles[x+y*width] = tile
			x++
		}
		x += run
		if x != width {
			return nil, 0, fmt.Errorf("invalid position: row %d has width %d, expected %d", y+1, x, width)
		}
	}

	return b, turn, nil
}

func rowWidth(row string) int {
	width := 0
	run := 0
	for i := 0; i < len(row); i++ {
		ch := row[i]
		if ch >= '0' && ch <= '9' {
			run = run*10 + int(ch-'0')
			continue
		}
		width += run + 1
		run = 0
	}
	return width + run
}
