// Package bell is a terminal client for a user's notification bell.
package bell

import (
	"sync"

	"mbti-social/internal/domain"
)

// State is the locally held notification list, newest first.
type State struct {
	mu    sync.Mutex
	items []domain.Notification
}

func NewState() *State {
	return &State{}
}

// Push prepends n unless a notification with the same id is already held.
func (s *State) Push(n domain.Notification) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.ID == n.ID {
			return false
		}
	}
	s.items = append([]domain.Notification{n}, s.items...)
	return true
}

func (s *State) Replace(list []domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]domain.Notification(nil), list...)
}

func (s *State) Items() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Notification(nil), s.items...)
}

func (s *State) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.items {
		if !n.Read {
			count++
		}
	}
	return count
}
