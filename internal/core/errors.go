// FILE: internal/core/errors.go
package core

import "errors"

// Sentinel errors returned by the board, rule engine and game controller.
// All of them except ErrOutOfBounds are expected runtime conditions: the
// caller may report them and re-prompt without losing game state.
// ErrOutOfBounds signals an index constructed outside validated bounds,
// i.e. a defect in the calling code.
var (
	ErrOutOfBounds   = errors.New("index outside of board")
	ErrEmptySource   = errors.New("source is an empty tile")
	ErrIllegalMove   = errors.New("illegal move")
	ErrAmbiguousMove = errors.New("ambiguous move")
	ErrGameOver      = errors.New("the game has already ended")
	ErrParse         = errors.New("move does not match required notation")
)

// API error codes
const (
	CodeGameNotFound      = "GAME_NOT_FOUND"
	CodeInvalidMove       = "INVALID_MOVE"
	CodeAmbiguousMove     = "AMBIGUOUS_MOVE"
	CodeInvalidNotation   = "INVALID_NOTATION"
	CodeGameOver          = "GAME_OVER"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeAuthRequired      = "AUTH_REQUIRED"
	CodeInvalidContent    = "INVALID_CONTENT_TYPE"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidPosition   = "INVALID_POSITION"
	CodeInternalError     = "INTERNAL_ERROR"
)
