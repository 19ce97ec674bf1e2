// FILE: internal/client/api/types.go
package api

import "time"

// Server error codes this client reacts to
const (
	CodeAmbiguousMove = "AMBIGUOUS_MOVE"
	CodeAuthRequired  = "AUTH_REQUIRED"
	CodeGameNotFound  = "GAME_NOT_FOUND"
)

// Request types

type CreateGameRequest struct {
	Height   int    `json:"height,omitempty"`
	Width    int    `json:"width,omitempty"`
	Position string `json:"position,omitempty"`
}

type MoveRequest struct {
	Move string `json:"move"` // notation: "C6 B5"
}

type UndoRequest struct {
	Count int `json:"count"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Response types

type GameResponse struct {
	GameID   string    `json:"gameId"`
	Position string    `json:"position"`
	Turn     string    `json:"turn,omitempty"`
	Winner   string    `json:"winner,omitempty"`
	State    string    `json:"state"`
	Height   int       `json:"height"`
	Width    int       `json:"width"`
	Moves    []string  `json:"moves"`
	LastMove *MoveInfo `json:"lastMove,omitempty"`
}

type MoveInfo struct {
	Move        string `json:"move"`
	PlayerColor string `json:"playerColor"`
	Kind        string `json:"kind"`
	Captured    int    `json:"captured,omitempty"`
	Promoted    bool   `json:"promoted,omitempty"`
}

type BoardResponse struct {
	Position string `json:"position"`
	Board    string `json:"board"`
}

type LegalMovesResponse struct {
	Square string       `json:"square"`
	Moves  []MoveOption `json:"moves"`
}

type MoveOption struct {
	Target   string   `json:"target"`
	Kind     string   `json:"kind"`
	Captured []string `json:"captured,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Time    int64  `json:"time"`
	Storage string `json:"storage,omitempty"`
}

type AuthResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type UserResponse struct {
	UserID    string     `json:"userId"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
