// FILE: internal/board/board.go
package board

import (
	"fmt"
	"strings"

	"checkers/internal/core"
)

const (
	DefaultHeight = 10
	DefaultWidth  = 10

	// MaxDimension bounds both axes so squares stay addressable with a
	// single column letter A..Z.
	MaxDimension = 26
)

// Board is a dense height×width grid of tiles, row-major, stored in
// White's frame. All access goes through orientation-aware Get/Set;
// Black-tagged indices are reversed once and then read storage directly.
type Board struct {
	height int
	width  int
	tiles  []core.Tile
}

// New creates a board with the standard opening layout: the two middle
// rows empty, every other dark square ((x+y) odd) holding a man, Black in
// the top half of storage and White in the bottom. Height must be even.
func New(height, width int) (*Board, error) {
	if height%2 != 0 {
		return nil, fmt.Errorf("board height cannot be odd, got %d", height)
	}
	if height < 4 || width < 2 {
		return nil, fmt.Errorf("board size %dx%d is too small to play on", height, width)
	}
	if height > MaxDimension || width > MaxDimension {
		return nil, fmt.Errorf("board size %dx%d exceeds the %d square notation limit", height, width, MaxDimension)
	}

	b := &Board{
		height: height,
		width:  width,
		tiles:  make([]core.Tile, height*width),
	}

	for y := 0; y < height; y++ {
		if y == height/2 || y == height/2-1 {
			continue
		}
		for x := 0; x < width; x++ {
			if (x+y)%2 != 1 {
				continue
			}
			if y < height/2 {
				b.tiles[x+y*width] = core.TileBlackMan
			} else {
				b.tiles[x+y*width] = core.TileWhiteMan
			}
		}
	}

	return b, nil
}

func (b *Board) Height() int { return b.height }
func (b *Board) Width() int  { return b.width }

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	tiles := make([]core.Tile, len(b.tiles))
	copy(tiles, b.tiles)
	return &Board{height: b.height, width: b.width, tiles: tiles}
}

// Reverse mirrors an index about the board center and flips its
// orientation tag. Applying it twice yields the original index.
func (b *Board) Reverse(idx Index) Index {
	return Index{
		X:           b.width - idx.X - 1,
		Y:           b.height - idx.Y - 1,
		Orientation: idx.Orientation.Enemy(),
	}
}

// GetTile reads the tile addressed by idx in its own orientation.
func (b *Board) GetTile(idx Index) (core.Tile, error) {
	pos, err := b.storageOffset(idx)
	if err != nil {
		return core.TileEmpty, err
	}
	return b.tiles[pos], nil
}

// SetTile writes the tile addressed by idx in its own orientation.
func (b *Board) SetTile(idx Index, tile core.Tile) error {
	pos, err := b.storageOffset(idx)
	if err != nil {
		return err
	}
	b.tiles[pos] = tile
	return nil
}

// Owner returns the player owning the piece at idx, if any.
func (b *Board) Owner(idx Index) (core.Player, bool, error) {
	tile, err := b.GetTile(idx)
	if err != nil {
		return 0, false, err
	}
	owner, ok := tile.Owner()
	return owner, ok, nil
}

// Count returns the number of pieces owned by p.
func (b *Board) Count(p core.Player) int {
	n := 0
	for _, t := range b.tiles {
		if owner, ok := t.Owner(); ok && owner == p {
			n++
		}
	}
	return n
}

// Squares returns every index holding a piece owned by p, in p's own
// orientation.
func (b *Board) Squares(p core.Player) []Index {
	var out []Index
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			owner, ok := b.tiles[x+y*b.width].Owner()
			if !ok || owner != p {
				continue
			}
			idx := Index{X: x, Y: y, Orientation: core.White}
			if p == core.Black {
				idx = b.Reverse(idx)
			}
			out = append(out, idx)
		}
	}
	return out
}

func (b *Board) storageOffset(idx Index) (int, error) {
	if idx.Orientation == core.Black {
		idx = b.Reverse(idx)
	}
	if idx.X < 0 || idx.X >= b.width || idx.Y < 0 || idx.Y >= b.height {
		return 0, fmt.Errorf("%w: %s on %dx%d board", core.ErrOutOfBounds, idx, b.height, b.width)
	}
	return idx.X + idx.Y*b.width, nil
}

// ToASCII renders a plain-text grid from White's viewing orientation,
// with column letters and 1-based row numbers.
func (b *Board) ToASCII() string {
	var sb strings.Builder

	sb.WriteString("   ")
	for x := 0; x < b.width; x++ {
		sb.WriteByte(byte('A' + x))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	for y := 0; y < b.height; y++ {
		sb.WriteString(fmt.Sprintf("%2d ", y+1))
		for x := 0; x < b.width; x++ {
			switch b.tiles[x+y*b.width] {
			case core.TileWhiteMan:
				sb.WriteString("w ")
			case core.TileBlackMan:
				sb.WriteString("b ")
			case core.TileWhiteKing:
				sb.WriteString("W ")
			case core.TileBlackKing:
				sb.WriteString("B ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteString(fmt.Sprintf("%d\n", y+1))
	}

	sb.WriteString("   ")
	for x := 0; x < b.width; x++ {
		sb.WriteByte(byte('A' + x))
		sb.WriteByte(' ')
	}

	return sb.String()
}
