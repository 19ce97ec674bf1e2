// FILE: internal/core/api.go
package core

// Request types

type CreateGameRequest struct {
	Height   int    `json:"height,omitempty" validate:"omitempty,min=4,max=26"`
	Width    int    `json:"width,omitempty" validate:"omitempty,min=2,max=26"`
	Position string `json:"position,omitempty" validate:"omitempty,max=800"`
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,movepair"` // "A1 B2" through "J10 K11"
}

type UndoRequest struct {
	Count int `json:"count" validate:"required,min=1,max=500"`
}

// Response types

type GameResponse struct {
	GameID   string    `json:"gameId"`
	Position string    `json:"position"`
	Turn     string    `json:"turn,omitempty"` // "w" or "b", empty once won
	Winner   string    `json:"winner,omitempty"`
	State    string    `json:"state"`
	Height   int       `json:"height"`
	Width    int       `json:"width"`
	Moves    []string  `json:"moves"`
	LastMove *MoveInfo `json:"lastMove,omitempty"`
}

type MoveInfo struct {
	Move        string `json:"move"`
	PlayerColor string `json:"playerColor"`        // "w" or "b"
	Kind        string `json:"kind"`               // "move", "capture", ...
	Captured    int    `json:"captured,omitempty"` // pieces taken by this move
	Promoted    bool   `json:"promoted,omitempty"`
}

type BoardResponse struct {
	Position string `json:"position"`
	Board    string `json:"board"` // ASCII representation
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

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
