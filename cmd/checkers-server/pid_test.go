// FILE: cmd/checkers-server/pid_test.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestManagePIDFileWritesPID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "checkers.pid")

	cleanup, err := managePIDFile(path, false)
	if err != nil {
		t.Fatalf("managePIDFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading PID file: %v", err)
	}
	want := fmt.Sprintf("%d", os.Getpid())
	if got := strings.TrimSpace(string(data)); got != want {
		t.Errorf("PID file contains %q, want %q", got, want)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("PID file still present after cleanup")
	}
}

func TestManagePIDFileRefusesSecondInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkers.pid")

	cleanup, err := managePIDFile(path, true)
	if err != nil {
		t.Fatalf("first instance: %v", err)
	}
	defer cleanup()

	if _, err := managePIDFile(path, true); err == nil {
		t.Fatal("second locked instance succeeded, want error")
	}
}

func TestCleanupKeepsSuccessorPIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkers.pid")

	cleanup, err := managePIDFile(path, false)
	if err != nil {
		t.Fatalf("managePIDFile: %v", err)
	}

	// Simulate a replacement server taking over the file before we exit
	if err := os.WriteFile(path, []byte("99999999\n"), 0644); err != nil {
		t.Fatalf("rewriting PID file: %v", err)
	}

	cleanup()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("successor's PID file was removed: %v", err)
	}
}
