// FILE: internal/transport/http/game_handler.go
package http

import (
	"errors"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/game"
	"checkers/internal/notation"

	"github.com/gofiber/fiber/v2"
)

// CreateGame creates a new game, either fresh with the given dimensions
// or resumed from an encoded position
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	// Ensure middleware validation ran
	validated, ok := c.Locals("validated").(bool)
	if !ok || !validated {
		return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "validation bypass detected",
			Code:  core.CodeInternalError,
		})
	}

	validatedBody := c.Locals("validatedBody")
	if validatedBody == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "validation data missing",
			Code:  core.CodeInternalError,
		})
	}
	req := *(validatedBody.(*core.CreateGameRequest))

	// Retrieve authenticated user ID if available
	userID, _ := c.Locals("userID").(string)

	id := h.svc.GenerateGameID()

	var g *game.Game
	var err error
	if req.Position != "" {
		g, err = h.svc.ResumeGame(id, req.Position, userID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
				Error:   "invalid position",
				Code:    core.CodeInvalidPosition,
				Details: err.Error(),
			})
		}
	} else {
		height, width := req.Height, req.Width
		if height == 0 {
			height = board.DefaultHeight
		}
		if width == 0 {
			width = board.DefaultWidth
		}
		g, err = h.svc.NewGame(id, height, width, userID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
				Error:   "invalid board dimensions",
				Code:    core.CodeInvalidRequest,
				Details: err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(buildGameResponse(id, g))
}

// GetGame retrieves current game state
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return gameNotFound(c)
	}

	return c.JSON(buildGameResponse(gameID, g))
}

// MakeMove submits a move in notation
func (h *HTTPHandler) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	validated, ok := c.Locals("validated").(bool)
	if !ok || !validated {
		return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "validation bypass detected",
			Code:  core.CodeInternalError,
		})
	}

	validatedBody := c.Locals("validatedBody")
	if validatedBody == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "validation data missing",
			Code:  core.CodeInternalError,
		})
	}
	req := *(validatedBody.(*core.MoveRequest))

	if _, err := h.svc.GetGame(gameID); err != nil {
		return gameNotFound(c)
	}

	if _, err := h.svc.MakeMove(gameID, req.Move); err != nil {
		return c.Status(moveErrorStatus(err)).JSON(core.ErrorResponse{
			Error:   "move rejected",
			Code:    moveErrorCode(err),
			Details: err.Error(),
		})
	}

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return gameNotFound(c)
	}

	return c.JSON(buildGameResponse(gameID, g))
}

// UndoMove undoes one or more moves
func (h *HTTPHandler) UndoMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	validated, ok := c.Locals("validated").(bool)
	if !ok || !validated {
		return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "validation bypass detected",
			Code:  core.CodeInternalError,
		})
	}

	validatedBody := c.Locals("validatedBody")
	if validatedBody == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "validation data missing",
			Code:  core.CodeInternalError,
		})
	}
	req := *(validatedBody.(*core.UndoRequest))

	if _, err := h.svc.GetGame(gameID); err != nil {
		return gameNotFound(c)
	}

	if err := h.svc.UndoMoves(gameID, req.Count); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "undo rejected",
			Code:    core.CodeInvalidRequest,
			Details: err.Error(),
		})
	}

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return gameNotFound(c)
	}

	return c.JSON(buildGameResponse(gameID, g))
}

// DeleteGame ends and cleans up a game
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	if err := h.svc.DeleteGame(gameID); err != nil {
		return gameNotFound(c)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetBoard returns ASCII representation of the board
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return gameNotFound(c)
	}

	return c.JSON(core.BoardResponse{
		Position: g.Position(),
		Board:    g.Board().ToASCII(),
	})
}

// LegalMoves lists the legal moves of the piece on a square
func (h *HTTPHandler) LegalMoves(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return gameNotFound(c)
	}

	src, err := notation.ParseSquare(c.Params("square"), g.Board())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "invalid square",
			Code:    core.CodeInvalidNotation,
			Details: err.Error(),
		})
	}

	available, err := g.LegalMovesFrom(src)
	if err != nil {
		return c.Status(moveErrorStatus(err)).JSON(core.ErrorResponse{
			Error:   "cannot list moves",
			Code:    moveErrorCode(err),
			Details: err.Error(),
		})
	}

	resp := core.LegalMovesResponse{
		Square: notation.FormatSquare(src),
		Moves:  make([]core.MoveOption, 0, len(available)),
	}
	for _, a := range available {
		opt := core.MoveOption{
			Target: notation.FormatOriented(g.Board(), a.Target),
			Kind:   a.Kind.String(),
		}
		for _, captured := range a.Captured {
			opt.Captured = append(opt.Captured, notation.FormatOriented(g.Board(), captured))
		}
		resp.Moves = append(resp.Moves, opt)
	}

	return c.JSON(resp)
}

// buildGameResponse assembles the full game state payload
func buildGameResponse(gameID string, g *game.Game) core.GameResponse {
	state := g.State()
	resp := core.GameResponse{
		GameID:   gameID,
		Position: g.Position(),
		State:    state.String(),
		Height:   g.Board().Height(),
		Width:    g.Board().Width(),
		Moves:    g.Moves(),
	}

	if state.Over() {
		resp.Winner = state.Winner.Letter()
	} else {
		resp.Turn = state.Turn.Letter()
	}

	if result := g.LastResult(); result != nil {
		resp.LastMove = &core.MoveInfo{
			Move:        result.Move,
			PlayerColor: result.Player.Letter(),
			Kind:        result.Kind.String(),
			Captured:    result.Captured,
			Promoted:    result.Promoted,
		}
	}

	return resp
}

// moveErrorStatus maps rule errors to HTTP status codes
func moveErrorStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrGameOver):
		return fiber.StatusConflict
	case errors.Is(err, core.ErrAmbiguousMove):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

// moveErrorCode maps rule errors to API error codes
func moveErrorCode(err error) string {
	switch {
	case errors.Is(err, core.ErrGameOver):
		return core.CodeGameOver
	case errors.Is(err, core.ErrAmbiguousMove):
		return core.CodeAmbiguousMove
	case errors.Is(err, core.ErrParse):
		return core.CodeInvalidNotation
	default:
		return core.CodeInvalidMove
	}
}

func invalidGameID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
		Error:   "invalid game ID format",
		Code:    core.CodeInvalidRequest,
		Details: "game ID must be a valid UUID",
	})
}

func gameNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(core.ErrorResponse{
		Error: "game not found",
		Code:  core.CodeGameNotFound,
	})
}
