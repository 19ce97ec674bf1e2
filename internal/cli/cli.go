// FILE: internal/cli/cli.go
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/game"
	"checkers/internal/notation"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdResume
	CmdMove
	CmdMoves
	CmdUndo
	CmdColor
	CmdVerbose
	CmdHistory
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBlue  ColorTheme = "blue"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	borderFg string
	borderBg string
	darkBg   string
	lightBg  string
	white    string
	black    string
	reset    string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBlue: {
		borderFg: "\033[34m",
		borderBg: "\033[47m",
		darkBg:   "\033[44m", // Blue
		lightBg:  "\033[48;5;153m",
		white:    "\033[97m",
		black:    "\033[30m",
		reset:    "\033[0m",
	},
	ThemeGreen: {
		borderFg: "\033[30m",
		borderBg: "\033[47m",
		darkBg:   "\033[48;5;22m", // Dark green
		lightBg:  "\033[48;5;157m",
		white:    "\033[97m",
		black:    "\033[30m",
		reset:    "\033[0m",
	},
	ThemeGray: {
		borderFg: "\033[30m",
		borderBg: "\033[47m",
		darkBg:   "\033[48;5;240m", // Dark gray
		lightBg:  "\033[48;5;251m",
		white:    "\033[97m",
		black:    "\033[30m",
		reset:    "\033[0m",
	},
}

// Board glyphs, with box-drawing borders around the grid.
const (
	glyphMan  = '●'
	glyphKing = '○'

	borderTLC        = '┌'
	borderTRC        = '┐'
	borderBLC        = '└'
	borderBRC        = '┘'
	borderHorizontal = '─'
	borderVertical   = '│'
)

type CLI struct {
	input   *bufio.Scanner
	output  io.Writer
	theme   ColorTheme
	verbose bool
}

func New(input io.Reader, output io.Writer) *CLI {
	return &CLI{
		input:  bufio.NewScanner(input),
		output: output,
		theme:  ThemeOff,
	}
}

// Reads a command synchronously
func (c *CLI) GetCommand() (*Command, error) {
	if !c.input.Scan() {
		if err := c.input.Err(); err != nil {
			return nil, err
		}
		return &Command{Type: CmdQuit}, nil
	}

	input := strings.TrimSpace(c.input.Text())
	if input == "" {
		return &Command{Type: CmdNone}, nil
	}

	return c.parseCommand(input), nil
}

func (c *CLI) parseCommand(input string) *Command {
	if notation.IsMove(input) {
		return &Command{Type: CmdMove, Raw: input}
	}

	parts := strings.Fields(input)
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew, Args: args}
	case "resume":
		return &Command{Type: CmdResume, Args: args, Raw: input}
	case "moves":
		return &Command{Type: CmdMoves, Args: args}
	case "undo":
		return &Command{Type: CmdUndo, Args: args}
	case "color":
		return &Command{Type: CmdColor, Args: args}
	case "verbose":
		return &Command{Type: CmdVerbose}
	case "history":
		return &Command{Type: CmdHistory}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	default:
		return &Command{Type: CmdNone, Raw: input}
	}
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, blue, green, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) ToggleVerbose() bool {
	c.verbose = !c.verbose
	return c.verbose
}

func (c *CLI) IsVerbose() bool {
	return c.verbose
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v", err))
}

func (c *CLI) ShowPrompt(prompt string) {
	fmt.Fprint(c.output, prompt)
}

func (c *CLI) ReadLine() string {
	if c.input.Scan() {
		return strings.TrimSpace(c.input.Text())
	}
	return ""
}

// DisplayBoard renders the board from White's viewing orientation with
// column letters, 1-based row numbers and box-drawing borders.
func (c *CLI) DisplayBoard(b *board.Board) {
	theme := themes[c.theme]
	labelWidth := len(fmt.Sprint(b.Height()))
	pad := strings.Repeat(" ", labelWidth)

	var sb strings.Builder
	sb.WriteByte('\n')

	letters := make([]byte, b.Width())
	for x := 0; x < b.Width(); x++ {
		letters[x] = byte('A' + x)
	}
	letterLine := fmt.Sprintf("%s %s\n", pad, letters)
	sb.WriteString(letterLine)

	sb.WriteString(pad)
	sb.WriteString(c.border(theme, borderTLC, borderTRC, b.Width()))
	sb.WriteByte('\n')

	for y := 0; y < b.Height(); y++ {
		sb.WriteString(fmt.Sprintf("%-*d", labelWidth, y+1))
		sb.WriteString(c.borderGlyph(theme, borderVertical))
		for x := 0; x < b.Width(); x++ {
			tile, err := b.GetTile(board.NewIndex(x, y, core.White))
			if err != nil {
				panic("internal error, shouldn't get here: " + err.Error())
			}
			sb.WriteString(c.square(theme, x, y, tile))
		}
		sb.WriteString(c.borderGlyph(theme, borderVertical))
		sb.WriteString(fmt.Sprintf("%d\n", y+1))
	}

	sb.WriteString(pad)
	sb.WriteString(c.border(theme, borderBLC, borderBRC, b.Width()))
	sb.WriteByte('\n')
	sb.WriteString(letterLine)

	c.ShowMessage(sb.String())
}

func (c *CLI) border(theme themeColors, left, right rune, width int) string {
	line := string(left) + strings.Repeat(string(borderHorizontal), width) + string(right)
	if c.theme == ThemeOff {
		return line
	}
	return theme.borderFg + theme.borderBg + line + theme.reset
}

func (c *CLI) borderGlyph(theme themeColors, glyph rune) string {
	if c.theme == ThemeOff {
		return string(glyph)
	}
	return theme.borderFg + theme.borderBg + string(glyph) + theme.reset
}

func (c *CLI) square(theme themeColors, x, y int, tile core.Tile) string {
	glyph := ' '
	if tile != core.TileEmpty {
		glyph = glyphMan
		if tile.King() {
			glyph = glyphKing
		}
	}

	if c.theme == ThemeOff {
		// Without colors the piece glyph alone cannot show ownership;
		// fall back to letters.
		switch tile {
		case core.TileWhiteMan:
			return "w"
		case core.TileBlackMan:
			return "b"
		case core.TileWhiteKing:
			return "W"
		case core.TileBlackKing:
			return "B"
		default:
			return " "
		}
	}

	bg := theme.lightBg
	if (x+y)%2 == 1 {
		bg = theme.darkBg
	}
	fg := theme.white
	if owner, ok := tile.Owner(); ok && owner == core.Black {
		fg = theme.black
	}
	return bg + fg + string(glyph) + theme.reset
}

// ShowLegend prints the piece glyphs in the active theme, since terminals
// render them differently.
func (c *CLI) ShowLegend() {
	if c.theme == ThemeOff {
		c.ShowMessage("Pieces: w/b men, W/B kings (use 'color <theme>' for glyphs)")
		return
	}
	theme := themes[c.theme]
	c.ShowMessage("Note that your terminal may change piece appearance, here is a reference:")
	c.ShowMessage(fmt.Sprintf("  White man:  %s", theme.darkBg+theme.white+string(glyphMan)+theme.reset))
	c.ShowMessage(fmt.Sprintf("  White king: %s", theme.darkBg+theme.white+string(glyphKing)+theme.reset))
	c.ShowMessage(fmt.Sprintf("  Black man:  %s", theme.darkBg+theme.black+string(glyphMan)+theme.reset))
	c.ShowMessage(fmt.Sprintf("  Black king: %s", theme.darkBg+theme.black+string(glyphKing)+theme.reset))
	c.ShowMessage("")
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  new [HxW]          - Start a new game, e.g. 'new 8x8' (default 10x10)
  resume <position>  - Resume from an encoded position
  <move>             - Make a move as two squares, e.g. 'C7 B6'
  moves <square>     - List legal moves from a square, e.g. 'moves C7'
  undo [count]       - Undo last move(s), default 1
  color <theme>      - Set board color theme (off|blue|green|gray)
  verbose            - Toggle detailed move information
  history            - Show game move history and positions
  quit/exit          - Exit the program
  help/?             - Show this help message

Moves use column letter + 1-based row number, always from White's view.`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Checkers!")
	c.ShowMessage("Commands: new [HxW], resume <position>, <move>, moves <square>, undo, color, history, help/?")
	c.ShowMessage("Example: 'C7 B6' moves the white man from C7 to B6.")
	c.ShowMessage("")
}

func (c *CLI) ShowGameHistory(g *game.Game) {
	c.ShowMessage(fmt.Sprintf("Starting position: %s\n", g.InitialPosition()))

	moves := g.Moves()
	for i := 0; i < len(moves); i += 2 {
		moveNum := i/2 + 1
		if i+1 < len(moves) {
			c.ShowMessage(fmt.Sprintf("%d. %s | %s", moveNum, moves[i], moves[i+1]))
		} else {
			c.ShowMessage(fmt.Sprintf("%d. %s | ...", moveNum, moves[i]))
		}
	}
	c.ShowMessage(fmt.Sprintf("\nCurrent position: %s", g.Position()))
	c.ShowMessage(fmt.Sprintf("Game state: %s", g.State()))
}

func (c *CLI) ShowMoveResult(result *game.MoveResult) {
	if result == nil {
		return
	}
	if result.Kind.Capturing() {
		plural := ""
		if result.Captured > 1 {
			plural = "s"
		}
		c.ShowMessage(fmt.Sprintf("%s: %s, capturing %d piece%s", result.Player, result.Move, result.Captured, plural))
	} else if c.verbose {
		c.ShowMessage(fmt.Sprintf("%s: %s (%s)", result.Player, result.Move, result.Kind))
	}
	if result.Promoted {
		c.ShowMessage("The man is crowned a king!")
	}
}

func (c *CLI) ShowGameOver(state core.State) {
	c.ShowMessage(fmt.Sprintf("\nGame Over: %s!", state))
	c.ShowMessage("Start a new game with 'new' or 'resume'.")
}
