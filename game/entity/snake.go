package entity

import (
	"gridsnake/game/types"
)

// Snake is the ordered body, head first.
type Snake struct {
	body []types.Point
}

func NewSnake(body []types.Point) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{body: b}
}

// Prepend moves the head onto newHead. The tail stays until RemoveTail.
func (s *Snake) Prepend(newHead types.Point) {
	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.body) > 1 {
		s.body = s.body[:len(s.body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.body[len(s.body)-1]
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Contains checks every segment, tail included.
func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}

// Body returns a copy safe to hand to other goroutines.
func (s *Snake) Body() []types.Point {
	b := make([]types.Point, len(s.body))
	copy(b, s.body)
	return b
}
