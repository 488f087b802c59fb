package flash

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	messages  []Message
	expiresAt time.Time
}

// MemoryStore 單一行程內的 flash store，過期資料在存取時清除
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Add(ctx context.Context, session string, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	entry, ok := s.entries[session]
	if !ok {
		entry = &memoryEntry{}
		s.entries[session] = entry
	}
	entry.messages = append(entry.messages, msg)
	entry.expiresAt = now.Add(s.ttl)
	return nil
}

func (s *MemoryStore) Pop(ctx context.Context, session string) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(s.now())

	entry, ok := s.entries[session]
	if !ok {
		return nil, nil
	}
	delete(s.entries, session)
	return entry.messages, nil
}

// Len 回傳尚未過期的 session 數量
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(s.now())
	return len(s.entries)
}

func (s *MemoryStore) sweep(now time.Time) {
	for session, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, session)
		}
	}
}
