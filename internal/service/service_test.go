// FILE: internal/service/service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkers/internal/core"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := New(nil, []byte("test-secret"))
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func TestGameLifecycle(t *testing.T) {
	svc := newTestService(t)

	id := svc.GenerateGameID()
	g, err := svc.NewGame(id, 8, 8, "")
	require.NoError(t, err)
	assert.Equal(t, core.White, g.State().Turn)

	got, err := svc.GetGame(id)
	require.NoError(t, err)
	assert.Same(t, g, got)

	// Duplicate IDs are refused
	_, err = svc.NewGame(id, 8, 8, "")
	assert.Error(t, err)

	require.NoError(t, svc.DeleteGame(id))
	_, err = svc.GetGame(id)
	assert.Error(t, err)
	assert.Error(t, svc.DeleteGame(id))
}

func TestMakeMove(t *testing.T) {
	svc := newTestService(t)

	id := svc.GenerateGameID()
	_, err := svc.NewGame(id, 10, 10, "")
	require.NoError(t, err)

	result, err := svc.MakeMove(id, "b7 a6")
	require.NoError(t, err)
	assert.Equal(t, "B7 A6", result.Move)
	assert.Equal(t, core.White, result.Player)
	assert.Equal(t, core.Black, result.State.Turn)

	_, err = svc.MakeMove(id, "not a move")
	assert.Error(t, err)
	_, err = svc.MakeMove("no-such-game", "A7 B6")
	assert.Error(t, err)
}

func TestResumeGame(t *testing.T) {
	svc := newTestService(t)

	position := "8/8/8/8/3b4/2w5/8/8 w"
	id := svc.GenerateGameID()
	g, err := svc.ResumeGame(id, position, "")
	require.NoError(t, err)
	assert.Equal(t, position, g.Position())

	_, err = svc.ResumeGame(svc.GenerateGameID(), "garbage", "")
	assert.Error(t, err)
}

func TestUndoMoves(t *testing.T) {
	svc := newTestService(t)

	id := svc.GenerateGameID()
	g, err := svc.NewGame(id, 8, 8, "")
	require.NoError(t, err)
	initial := g.Position()

	_, err = svc.MakeMove(id, "C6 B5")
	require.NoError(t, err)

	require.NoError(t, svc.UndoMoves(id, 1))
	assert.Equal(t, initial, g.Position())

	assert.Error(t, svc.UndoMoves(id, 1))
	assert.Error(t, svc.UndoMoves("no-such-game", 1))
}

func TestStorageHealthDisabled(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, "disabled", svc.GetStorageHealth())
}
