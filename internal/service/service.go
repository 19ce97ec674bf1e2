// FILE: internal/service/service.go
package service

import (
	"fmt"
	"sync"
	"time"

	"checkers/internal/game"
	"checkers/internal/notation"
	"checkers/internal/storage"

	"github.com/google/uuid"
)

// Service is a pure state manager for checkers games with optional persistence
type Service struct {
	games     map[string]*game.Game
	mu        sync.RWMutex
	store     *storage.Store // nil if persistence disabled
	jwtSecret []byte
}

// New creates a new service instance with optional storage
func New(store *storage.Store, jwtSecret []byte) *Service {
	return &Service{
		games:     make(map[string]*game.Game),
		store:     store,
		jwtSecret: jwtSecret,
	}
}

// NewGame creates a game with the standard layout for the given dimensions
func (s *Service) NewGame(id string, height, width int, createdBy string) (*game.Game, error) {
	g, err := game.New(height, width)
	if err != nil {
		return nil, err
	}
	return s.addGame(id, g, createdBy)
}

// ResumeGame creates a game from an encoded position
func (s *Service) ResumeGame(id string, position string, createdBy string) (*game.Game, error) {
	g, err := game.Resume(position)
	if err != nil {
		return nil, err
	}
	return s.addGame(id, g, createdBy)
}

func (s *Service) addGame(id string, g *game.Game, createdBy string) (*game.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return nil, fmt.Errorf("game %s already exists", id)
	}
	s.games[id] = g

	// Persist if storage enabled
	if s.store != nil {
		b := g.Board()
		record := storage.GameRecord{
			GameID:          id,
			InitialPosition: g.InitialPosition(),
			Height:          b.Height(),
			Width:           b.Width(),
			CreatedBy:       createdBy,
			StartTimeUTC:    time.Now().UTC(),
		}
		s.store.RecordNewGame(record)
	}

	return g, nil
}

// GetGame retrieves a game by ID
func (s *Service) GetGame(gameID string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	return g, nil
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Ensure UUID uniqueness (handle potential conflicts)
	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// MakeMove parses and applies a move described in notation, persisting
// the result when storage is enabled
func (s *Service) MakeMove(gameID, moveText string) (*game.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}

	mv, err := notation.ParseMove(moveText, g.Board())
	if err != nil {
		return nil, err
	}

	result, err := g.Apply(mv)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		record := storage.MoveRecord{
			GameID:        gameID,
			MoveNumber:    len(g.Moves()),
			MoveText:      result.Move,
			PositionAfter: g.Position(),
			PlayerColor:   result.Player.Letter(),
			MoveTimeUTC:   time.Now().UTC(),
		}
		s.store.RecordMove(record)
	}

	return result, nil
}

// UndoMoves removes the specified number of moves from game history
func (s *Service) UndoMoves(gameID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}

	originalMoveCount := len(g.Moves())

	if err := g.UndoMoves(count); err != nil {
		return err
	}

	// Delete undone moves from storage if enabled
	if s.store != nil {
		remainingMoves := originalMoveCount - count
		s.store.DeleteUndoneMoves(gameID, remainingMoves)
	}

	return nil
}

// DeleteGame removes a game from memory and storage
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}

	delete(s.games, gameID)

	if s.store != nil {
		s.store.DeleteGame(gameID)
	}
	return nil
}

// GetStorageHealth returns the storage component status
func (s *Service) GetStorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// Close cleans up resources
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Clear all games
	s.games = make(map[string]*game.Game)

	// Close storage if enabled
	if s.store != nil {
		return s.store.Close()
	}

	return nil
}
