// FILE: internal/client/commands/game.go
package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"checkers/internal/client/api"
	"checkers/internal/client/display"
)

func (r *Registry) registerGameCommands() {
	r.Register(&Command{
		Name:        "new",
		ShortName:   "n",
		Description: "Create a new game",
		Usage:       "new",
		Handler:     newGameHandler,
	})

	r.Register(&Command{
		Name:        "join",
		ShortName:   "j",
		Description: "Join/set current game ID",
		Usage:       "join <gameId>",
		Handler:     joinGameHandler,
	})

	r.Register(&Command{
		Name:        "move",
		ShortName:   "m",
		Description: "Make a move",
		Usage:       "move <from> <to>, e.g. move C6 B5",
		Handler:     moveHandler,
	})

	r.Register(&Command{
		Name:        "legal",
		ShortName:   "g",
		Description: "List legal moves from a square",
		Usage:       "legal <square>, e.g. legal C6",
		Handler:     legalMovesHandler,
	})

	r.Register(&Command{
		Name:        "undo",
		ShortName:   "u",
		Description: "Undo moves",
		Usage:       "undo [count]",
		Handler:     undoHandler,
	})

	r.Register(&Command{
		Name:        "show",
		ShortName:   "h",
		Description: "Show board and game state",
		Usage:       "show",
		Handler:     showBoardHandler,
	})

	r.Register(&Command{
		Name:        "state",
		ShortName:   "s",
		Description: "Show raw game JSON",
		Usage:       "state",
		Handler:     gameStateHandler,
	})

	r.Register(&Command{
		Name:        "delete",
		ShortName:   "d",
		Description: "Delete a game",
		Usage:       "delete [gameId]",
		Handler:     deleteGameHandler,
	})
}

func newGameHandler(s Session, args []string) error {
	scanner := bufio.NewScanner(os.Stdin)
	c := s.GetClient().(*api.Client)

	fmt.Println("\n" + display.Cyan + "Creating new game..." + display.Reset)

	req := &api.CreateGameRequest{}

	fmt.Print(display.Yellow + "Board size HEIGHTxWIDTH [10x10]: " + display.Reset)
	scanner.Scan()
	size := strings.ToLower(strings.TrimSpace(scanner.Text()))
	if size != "" {
		parts := strings.SplitN(size, "x", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid size %q, expected HEIGHTxWIDTH", size)
		}
		height, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("invalid height: %s", parts[0])
		}
		width, err := strconv.Atoi(parts[1])
		if err != nil {
			return fmt.Errorf("invalid width: %s", parts[1])
		}
		req.Height = height
		req.Width = width
	}

	fmt.Print(display.Yellow + "Starting position [default]: " + display.Reset)
	scanner.Scan()
	req.Position = strings.TrimSpace(scanner.Text())

	resp, err := c.CreateGame(req)
	if err != nil {
		return err
	}

	s.SetCurrentGame(resp.GameID)
	s.SetLastMoveCount(len(resp.Moves))
	s.SetGameState(resp)

	fmt.Printf("%sGame created: %s%s\n", display.Green, resp.GameID, display.Reset)
	fmt.Printf("%sCurrent game set to: %s%s\n", display.Cyan, resp.GameID, display.Reset)

	return nil
}

func joinGameHandler(s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: join <gameId>")
	}

	gameID := args[0]
	c := s.GetClient().(*api.Client)

	// Verify game exists
	resp, err := c.GetGame(gameID)
	if err != nil {
		return err
	}

	s.SetCurrentGame(gameID)
	s.SetLastMoveCount(len(resp.Moves))
	s.SetGameState(resp)

	fmt.Printf("%sJoined game: %s%s\n", display.Green, gameID, display.Reset)
	fmt.Printf("Turn: %s | State: %s | Moves: %d\n", resp.Turn, resp.State, len(resp.Moves))

	return nil
}

func moveHandler(s Session, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: move <from> <to>, e.g. move C6 B5")
	}

	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	move := args[0] + " " + args[1]
	c := s.GetClient().(*api.Client)

	resp, err := c.MakeMove(gameID, move)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Code == api.CodeAmbiguousMove {
			fmt.Printf("%sSeveral capture chains start and end on those squares, play the jumps one square at a time%s\n",
				display.Yellow, display.Reset)
		}
		return err
	}

	s.SetLastMoveCount(len(resp.Moves))
	s.SetGameState(resp)
	fmt.Printf("%sMove accepted%s\n", display.Green, display.Reset)

	if resp.LastMove != nil {
		info := fmt.Sprintf("%s (%s)", resp.LastMove.Move, resp.LastMove.Kind)
		if resp.LastMove.Captured > 0 {
			info += fmt.Sprintf(", %d captured", resp.LastMove.Captured)
		}
		if resp.LastMove.Promoted {
			info += ", promoted"
		}
		fmt.Println(info)
	}

	if resp.Winner != "" {
		fmt.Printf("%sGame over: %s%s\n", display.Magenta, resp.State, display.Reset)
	}

	return nil
}

func legalMovesHandler(s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: legal <square>, e.g. legal C6")
	}

	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	c := s.GetClient().(*api.Client)
	resp, err := c.LegalMoves(gameID, strings.ToUpper(args[0]))
	if err != nil {
		return err
	}

	if len(resp.Moves) == 0 {
		fmt.Printf("%sNo legal moves from %s%s\n", display.Yellow, resp.Square, display.Reset)
		return nil
	}

	fmt.Printf("%sLegal moves from %s:%s\n", display.Cyan, resp.Square, display.Reset)
	for _, opt := range resp.Moves {
		line := fmt.Sprintf("  %s -> %s (%s)", resp.Square, opt.Target, opt.Kind)
		if len(opt.Captured) > 0 {
			line += " takes " + strings.Join(opt.Captured, ", ")
		}
		fmt.Println(line)
	}

	return nil
}

func undoHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	count := 1
	if len(args) > 0 {
		var err error
		count, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid count: %s", args[0])
		}
	}

	c := s.GetClient().(*api.Client)
	resp, err := c.UndoMoves(gameID, count)
	if err != nil {
		return err
	}

	s.SetLastMoveCount(len(resp.Moves))
	fmt.Printf("%sUndid %d move(s)%s\n", display.Green, count, display.Reset)
	return nil
}

func showBoardHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	c := s.GetClient().(*api.Client)

	// Get full game state
	game, err := c.GetGame(gameID)
	if err != nil {
		return err
	}

	// Get ASCII board
	board, err := c.GetBoard(gameID)
	if err != nil {
		return err
	}

	s.SetLastMoveCount(len(game.Moves))
	s.SetGameState(game)

	// Display board with colors
	fmt.Println()
	display.RenderBoard(board.Board)

	// Display game info
	fmt.Printf("\nPosition: %s\n", game.Position)
	if game.Winner != "" {
		fmt.Printf("State: %s | Moves: %d\n", game.State, len(game.Moves))
	} else {
		fmt.Printf("Turn: %s | State: %s | Moves: %d\n",
			display.ColorForTurn(game.Turn), game.State, len(game.Moves))
	}

	// Display move history
	if len(game.Moves) > 0 {
		fmt.Printf("\nHistory: ")
		for i, move := range game.Moves {
			if i > 0 {
				fmt.Print(" ")
			}
			if i%2 == 0 {
				fmt.Printf("%d.%s", (i/2)+1, move)
			} else {
				fmt.Printf(" %s", move)
			}
		}
		fmt.Println()
	}

	// Display last move info
	if game.LastMove != nil {
		color := "White"
		if game.LastMove.PlayerColor == "b" {
			color = "Black"
		}
		fmt.Printf("Last move: %s by %s (%s)", game.LastMove.Move, color, game.LastMove.Kind)
		if game.LastMove.Captured > 0 {
			fmt.Printf(", %d captured", game.LastMove.Captured)
		}
		if game.LastMove.Promoted {
			fmt.Printf(", promoted")
		}
		fmt.Println()
	}

	return nil
}

func gameStateHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	c := s.GetClient().(*api.Client)
	resp, err := c.GetGame(gameID)
	if err != nil {
		return err
	}

	s.SetLastMoveCount(len(resp.Moves))

	// Pretty print JSON
	fmt.Printf("%sGame State:%s\n", display.Cyan, display.Reset)
	display.PrettyPrintJSON(resp)

	return nil
}

func deleteGameHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if len(args) > 0 {
		gameID = args[0]
	}

	if gameID == "" {
		return fmt.Errorf("specify game ID or set current game")
	}

	c := s.GetClient().(*api.Client)
	err := c.DeleteGame(gameID)
	if err != nil {
		return err
	}

	if gameID == s.GetCurrentGame() {
		s.SetCurrentGame("")
		s.SetLastMoveCount(0)
	}

	fmt.Printf("%sGame deleted: %s%s\n", display.Green, gameID, display.Reset)
	return nil
}
