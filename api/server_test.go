package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestSnapshotBeforeFirstEvent(t *testing.T) {
	s := NewServer(manager.NewMemoryStateManager())
	if w := get(t, s, "/snapshot"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %d", w.Code)
	}
}

func TestSnapshotServesLatest(t *testing.T) {
	s := NewServer(manager.NewMemoryStateManager())
	s.Observe(game.Event{Type: game.EventSnapshot, Snapshot: game.Snapshot{Score: 1}})
	s.Observe(game.Event{Type: game.EventSnapshot, Snapshot: game.Snapshot{
		Snake:     []types.Point{{X: 3, Y: 4}},
		Food:      types.Point{X: 7, Y: 8},
		Score:     2,
		Status:    game.GameOver,
		Collision: types.WallCollision,
		Heading:   types.Left,
	}})

	w := get(t, s, "/snapshot")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["score"] != float64(2) {
		t.Errorf("Expected score 2, got %v", body["score"])
	}
	if body["status"] != "game_over" || body["collision"] != "wall" || body["heading"] != "left" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestBestAndHistory(t *testing.T) {
	store := manager.NewMemoryStateManager()
	if err := store.Set(12); err != nil {
		t.Fatal(err)
	}
	if err := store.AddToHistory(manager.RoundRecord{ID: "r1", Score: 12, Cause: types.SelfCollision}); err != nil {
		t.Fatal(err)
	}
	s := NewServer(store)

	var best struct {
		BestScore int `json:"bestScore"`
	}
	if err := json.Unmarshal(get(t, s, "/best").Body.Bytes(), &best); err != nil {
		t.Fatal(err)
	}
	if best.BestScore != 12 {
		t.Errorf("Expected best 12, got %d", best.BestScore)
	}

	var history struct {
		ScoreHistory []manager.RoundRecord  `json:"scoreHistory"`
		Summary      manager.HistorySummary `json:"summary"`
	}
	if err := json.Unmarshal(get(t, s, "/history").Body.Bytes(), &history); err != nil {
		t.Fatal(err)
	}
	if len(history.ScoreHistory) != 1 || history.ScoreHistory[0].ID != "r1" {
		t.Errorf("unexpected history %+v", history.ScoreHistory)
	}
	if history.Summary.GamesPlayed != 1 || history.Summary.MaxScore != 12 {
		t.Errorf("unexpected summary %+v", history.Summary)
	}
}

func TestPing(t *testing.T) {
	s := NewServer(manager.NewMemoryStateManager())
	if w := get(t, s, "/ping"); w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}
