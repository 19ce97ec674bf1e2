// FILE: internal/client/display/board.go
package display

import (
	"fmt"
	"strings"
)

// RenderBoard renders an ASCII board with colored pieces. The grid uses
// 'w'/'W' for white pieces, 'b'/'B' for black pieces and '.' for empty
// squares, with column letters and row numbers around the edge.
func RenderBoard(asciiBoard string) {
	lines := strings.Split(asciiBoard, "\n")

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		isEdgeLine := i == 0 || i == len(lines)-1

		for _, char := range line {
			switch {
			case isEdgeLine:
				// Column letters - Cyan
				fmt.Printf("%s%c%s", Cyan, char, Reset)
			case char == 'w' || char == 'W':
				fmt.Printf("%s%c%s", WhitePiece, char, Reset)
			case char == 'b' || char == 'B':
				fmt.Printf("%s%c%s", BlackPiece, char, Reset)
			case char >= '0' && char <= '9':
				// Row numbers - Cyan
				fmt.Printf("%s%c%s", Cyan, char, Reset)
			default:
				fmt.Printf("%c", char)
			}
		}
		fmt.Println()
	}
}

// ColorForTurn returns colored turn indicator
func ColorForTurn(turn string) string {
	if turn == "w" {
		return WhitePiece + "White" + Reset
	}
	return BlackPiece + "Black" + Reset
}
