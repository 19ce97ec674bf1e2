// FILE: internal/transport/cli/handler.go
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"checkers/internal/board"
	"checkers/internal/cli"
	"checkers/internal/notation"
	"checkers/internal/service"
)

type CLIHandler struct {
	svc    *service.Service
	view   *cli.CLI
	gameID string
}

func New(svc *service.Service, view *cli.CLI) *CLIHandler {
	return &CLIHandler{
		svc:  svc,
		view: view,
	}
}

// Main game loop - simple command processing
func (h *CLIHandler) Run() {
	for {
		h.view.ShowPrompt(h.getPrompt())

		// Get command (blocking)
		cmd, err := h.view.GetCommand()
		if err != nil {
			break
		}

		// Process command - returns false to exit
		if !h.ProcessCommand(cmd) {
			break
		}
	}
}

// Generates the appropriate command prompt
func (h *CLIHandler) getPrompt() string {
	prompt := "> "
	if h.gameID != "" {
		g, err := h.svc.GetGame(h.gameID)
		if err == nil && !g.State().Over() {
			prompt = fmt.Sprintf("[%s]> ", g.State().Turn)
		}
	}
	return prompt
}

// Handles user commands - returns false to exit
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		return true

	case cli.CmdNew:
		size := ""
		if len(cmd.Args) > 0 {
			size = cmd.Args[0]
		}
		return h.handleNewGame(size)

	case cli.CmdResume:
		position := strings.Join(cmd.Args, " ")
		if position == "" {
			h.view.ShowPrompt("Position: ")
			position = h.view.ReadLine()
		}
		if position == "" {
			h.view.ShowMessage("Usage: resume <position string>")
			return true
		}
		return h.handleResume(position)

	case cli.CmdMove:
		if h.gameID == "" {
			h.view.ShowMessage("No active game. Use 'new' or 'resume <position>'.")
			return true
		}

		result, err := h.svc.MakeMove(h.gameID, cmd.Raw)
		if err != nil {
			h.view.ShowError(fmt.Errorf("invalid move: %v", err))
			return true
		}

		h.view.ShowMoveResult(result)

		g, _ := h.svc.GetGame(h.gameID)
		h.view.DisplayBoard(g.Board())

		if result.State.Over() {
			h.view.ShowGameOver(result.State)
			h.gameID = ""
		}

	case cli.CmdMoves:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: moves <square>, e.g. moves C6")
			return true
		}
		h.showMoves(cmd.Args[0])

	case cli.CmdUndo:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}

		// Parse undo count
		count := 1
		if len(cmd.Args) > 0 {
			if n, err := strconv.Atoi(cmd.Args[0]); err == nil && n > 0 {
				count = n
			} else {
				h.view.ShowMessage("Invalid undo count. Usage: undo [count]")
				return true
			}
		}

		if err := h.svc.UndoMoves(h.gameID, count); err != nil {
			h.view.ShowError(err)
		} else {
			if count == 1 {
				h.view.ShowMessage("Move undone")
			} else {
				h.view.ShowMessage(fmt.Sprintf("%d moves undone", count))
			}

			g, _ := h.svc.GetGame(h.gameID)
			h.view.DisplayBoard(g.Board())
		}

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|blue|green|gray>")
			return true
		}

		theme := cli.ColorTheme(cmd.Args[0])
		if err := h.view.SetTheme(theme); err != nil {
			h.view.ShowError(err)
		} else {
			h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
			h.view.ShowLegend()
			if h.gameID != "" {
				g, _ := h.svc.GetGame(h.gameID)
				h.view.DisplayBoard(g.Board())
			}
		}

	case cli.CmdVerbose:
		verbose := h.view.ToggleVerbose()
		h.view.ShowMessage(fmt.Sprintf("Verbose mode: %t", verbose))

	case cli.CmdHistory:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		g, _ := h.svc.GetGame(h.gameID)
		h.view.ShowGameHistory(g)

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

// Starts a new game, optionally with a HEIGHTxWIDTH size argument
func (h *CLIHandler) handleNewGame(size string) bool {
	height, width, err := parseSize(size)
	if err != nil {
		h.view.ShowError(err)
		return true
	}

	id := h.svc.GenerateGameID()
	g, err := h.svc.NewGame(id, height, width, "")
	if err != nil {
		h.view.ShowError(fmt.Errorf("could not start the game: %v", err))
		return true
	}

	h.gameID = id
	h.view.ShowMessage("Game started.")
	h.view.DisplayBoard(g.Board())
	return true
}

func (h *CLIHandler) handleResume(position string) bool {
	id := h.svc.GenerateGameID()
	g, err := h.svc.ResumeGame(id, position, "")
	if err != nil {
		h.view.ShowError(fmt.Errorf("could not resume the game: %v", err))
		return true
	}

	h.gameID = id
	h.view.ShowMessage("Game resumed.")
	h.view.DisplayBoard(g.Board())

	if g.State().Over() {
		h.view.ShowGameOver(g.State())
		h.gameID = ""
	}
	return true
}

func (h *CLIHandler) showMoves(square string) {
	g, _ := h.svc.GetGame(h.gameID)

	src, err := notation.ParseSquare(square, g.Board())
	if err != nil {
		h.view.ShowError(err)
		return
	}

	available, err := g.LegalMovesFrom(src)
	if err != nil {
		h.view.ShowError(err)
		return
	}

	if len(available) == 0 {
		h.view.ShowMessage(fmt.Sprintf("No legal moves from %s.", square))
		return
	}

	for _, a := range available {
		line := fmt.Sprintf("%s %s (%s)",
			notation.FormatOriented(g.Board(), a.Source),
			notation.FormatOriented(g.Board(), a.Target),
			a.Kind)
		if len(a.Captured) > 0 {
			taken := make([]string, 0, len(a.Captured))
			for _, c := range a.Captured {
				taken = append(taken, notation.FormatOriented(g.Board(), c))
			}
			line += " takes " + strings.Join(taken, ", ")
		}
		h.view.ShowMessage(line)
	}
}

func parseSize(size string) (height, width int, err error) {
	if size == "" {
		return board.DefaultHeight, board.DefaultWidth, nil
	}

	parts := strings.SplitN(strings.ToLower(size), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q, expected HEIGHTxWIDTH, e.g. 10x10", size)
	}

	height, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height %q", parts[0])
	}
	width, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width %q", parts[1])
	}
	return height, width, nil
}
