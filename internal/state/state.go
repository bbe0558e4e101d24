// Package state persists what the launcher did last, so the next interactive
// run can preselect the same profile, and guards against concurrent runs.
package state

import (
	"encoding/json" // For JSON encoding and decoding of the state file
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"setup-launcher/internal/logger"
)

// RunRecord summarizes one real (non-dry) run.
type RunRecord struct {
	Profile        string    `json:"profile"`
	Dotfiles       bool      `json:"dotfiles"`
	Status         string    `json:"status"`                // "completed" or "aborted"
	FailedStep     int       `json:"failed_step,omitempty"` // 1-based plan position
	ElapsedSeconds float64   `json:"elapsed_seconds"`
	FinishedAt     time.Time `json:"finished_at"`
}

// State is the whole state file.
type State struct {
	LastProfile string     `json:"last_profile,omitempty"`
	LastRun     *RunRecord `json:"last_run,omitempty"`
}

// DefaultPath returns $XDG_STATE_HOME/setup-launcher/state.json, creating the directory.
func DefaultPath() (string, error) {
	path, err := xdg.StateFile(filepath.Join("setup-launcher", "state.json"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve state file: %w", err)
	}
	return path, nil
}

// LoadState reads the state file. A missing or unreadable file yields an empty State.
func LoadState(path string) *State {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("[DEBUG] No state at %s: %v\n", path, err)
		return &State{}
	}

	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		logger.Warn("[WARN] Ignoring corrupt state file %s: %v\n", path, err)
		return &State{}
	}
	return &st
}

// SaveState writes st as indented JSON. The write goes through a temp file and a
// rename so an interrupted run never leaves a truncated state file behind.
func SaveState(path string, st *State) error {
	raw, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(raw))

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".state-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", path, err)
	}
	return nil
}

// Record stores the result of a finished run.
func (s *State) Record(r RunRecord) {
	s.LastProfile = r.Profile
	rec := r
	s.LastRun = &rec
}
