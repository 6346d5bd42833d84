// Package dialog keeps the per-chat conversation state. Dialogs live only in
// memory; a restart drops whatever was in flight.
package dialog

import (
	"sync"

	"github.com/study-room/studybot/internal/domain"
)

// Store holds at most one active dialog per chat. Putting a dialog for a chat
// that already has one replaces it.
type Store interface {
	Get(chatID int64) (*domain.Dialog, bool)
	Put(chatID int64, d *domain.Dialog)
	Remove(chatID int64)
	// Update runs fn on the chat's dialog while holding the store lock, so
	// concurrent events for the same chat cannot interleave mid-transition.
	// It reports whether a dialog existed.
	Update(chatID int64, fn func(*domain.Dialog)) bool
	// Complete is Update for transitions that may finish the dialog: when fn
	// reports done, the dialog is removed before the lock is released, so no
	// later event can observe the terminal state.
	Complete(chatID int64, fn func(*domain.Dialog) (done bool)) bool
}

type MemoryStore struct {
	mu      sync.Mutex
	dialogs map[int64]*domain.Dialog
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{dialogs: make(map[int64]*domain.Dialog)}
}

func (s *MemoryStore) Get(chatID int64) (*domain.Dialog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dialogs[chatID]
	return d, ok
}

func (s *MemoryStore) Put(chatID int64, d *domain.Dialog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs[chatID] = d
}

func (s *MemoryStore) Remove(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dialogs, chatID)
}

func (s *MemoryStore) Update(chatID int64, fn func(*domain.Dialog)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dialogs[chatID]
	if !ok {
		return false
	}
	fn(d)
	return true
}

func (s *MemoryStore) Complete(chatID int64, fn func(*domain.Dialog) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dialogs[chatID]
	if !ok {
		return false
	}
	if fn(d) {
		delete(s.dialogs, chatID)
	}
	return true
}
