package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	StatsFile = "gamestats.json"
	GroupSize = 100 // Records folded into one record of the next level
)

// ScoreStore keeps the best score across rounds.
type ScoreStore interface {
	Get() int
	Set(value int) error
}

type GameStats struct {
	HighScore    int           `json:"highScore"`
	ScoreHistory []RoundRecord `json:"scoreHistory"`
}

// StateManager is the file-backed ScoreStore. An empty filename keeps
// everything in memory.
type StateManager struct {
	filename     string
	highScore    int
	scoreHistory []RoundRecord
	mutex        sync.RWMutex
}

// NewStateManager loads dir/gamestats.json when it exists. A missing file
// is not an error; a corrupt one is.
func NewStateManager(dir string) (*StateManager, error) {
	if dir == "" {
		return NewMemoryStateManager(), nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	sm := &StateManager{
		filename:     filepath.Join(dir, StatsFile),
		scoreHistory: make([]RoundRecord, 0),
	}
	if err := sm.LoadStats(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return sm, nil
}

func NewMemoryStateManager() *StateManager {
	return &StateManager{scoreHistory: make([]RoundRecord, 0)}
}

func (sm *StateManager) LoadStats() error {
	data, err := os.ReadFile(sm.filename)
	if err != nil {
		return err
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return fmt.Errorf("parse %s: %w", sm.filename, err)
	}

	sm.mutex.Lock()
	defer sm.mutex.Unlock()
	sm.highScore = stats.HighScore
	sm.scoreHistory = stats.ScoreHistory
	return nil
}

// saveLocked writes the stats file. Caller holds the write lock.
func (sm *StateManager) saveLocked() error {
	if sm.filename == "" {
		return nil
	}
	stats := GameStats{
		HighScore:    sm.highScore,
		ScoreHistory: sm.scoreHistory,
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}

	tmp := sm.filename + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return os.Rename(tmp, sm.filename)
}

func (sm *StateManager) Get() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.highScore
}

// Set stores value if it beats the current best.
func (sm *StateManager) Set(value int) error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()
	if value <= sm.highScore {
		return nil
	}
	sm.highScore = value
	return sm.saveLocked()
}

// AddToHistory records a finished round. Once GroupSize records share a
// compression level they are folded into one record of the next level.
func (sm *StateManager) AddToHistory(record RoundRecord) error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()
	sm.scoreHistory = compressHistory(append(sm.scoreHistory, record.single()))
	return sm.saveLocked()
}

func (sm *StateManager) GetScoreHistory() []RoundRecord {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	history := make([]RoundRecord, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return history
}

// Summary aggregates every round recorded so far.
func (sm *StateManager) Summary() HistorySummary {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return summarize(sm.scoreHistory)
}
