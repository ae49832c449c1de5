package entity

import (
	"testing"

	"gridsnake/game/types"
)

func TestSnakeMoveAndGrow(t *testing.T) {
	s := NewSnake([]types.Point{{X: 10, Y: 10}, {X: 10, Y: 11}})

	s.Prepend(types.Point{X: 10, Y: 9})
	if s.Len() != 3 {
		t.Fatalf("Expected length 3 after prepend, got %d", s.Len())
	}
	if s.GetHead() != (types.Point{X: 10, Y: 9}) {
		t.Errorf("Expected head (10,9), got %v", s.GetHead())
	}
	if s.GetTail() != (types.Point{X: 10, Y: 11}) {
		t.Errorf("Expected tail (10,11), got %v", s.GetTail())
	}

	s.RemoveTail()
	want := []types.Point{{X: 10, Y: 9}, {X: 10, Y: 10}}
	got := s.Body()
	if len(got) != len(want) {
		t.Fatalf("Expected body %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSnakeNeverDropsLastSegment(t *testing.T) {
	s := NewSnake([]types.Point{{X: 1, Y: 1}})
	s.RemoveTail()
	if s.Len() != 1 {
		t.Errorf("Expected single segment to survive, got length %d", s.Len())
	}
}

func TestSnakeBodyIsACopy(t *testing.T) {
	start := []types.Point{{X: 3, Y: 3}}
	s := NewSnake(start)
	start[0] = types.Point{X: 0, Y: 0}
	if s.GetHead() != (types.Point{X: 3, Y: 3}) {
		t.Errorf("NewSnake must copy its input")
	}

	b := s.Body()
	b[0] = types.Point{X: 9, Y: 9}
	if !s.Contains(types.Point{X: 3, Y: 3}) || s.Contains(types.Point{X: 9, Y: 9}) {
		t.Errorf("Body must return a copy")
	}
}
