// Package state persists what the monitor has already reported between
// cron invocations. The store is a plain JSON file keyed by match ID; it is
// read once at the start of a run and rewritten once at the end. It is the
// sole mechanism preventing duplicate alerts across polling cycles.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MatchState is the remembered view of one match from the previous run.
type MatchState struct {
	Status    string   `json:"status"`
	HomeScore int      `json:"home_score"`
	AwayScore int      `json:"away_score"`
	EventIDs  []string `json:"event_ids"`
}

// State maps match ID to what was last seen for that match.
type State map[string]MatchState

// Store reads and writes State at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path. The file does not
// have to exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the state file. A missing file is not an error: the monitor
// simply starts with an empty state. A corrupt file is an error so the
// caller can decide whether to start fresh.
func (s *Store) Load() (State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	st := State{}
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing state file %s: %w", s.path, err)
	}
	return st, nil
}

// Save rewrites the state file. Writes go through a temp file and rename so
// an interrupted run leaves the previous state intact.
func (s *Store) Save(st State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating state dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}
