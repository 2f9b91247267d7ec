package notifications

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a toast for the client.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Toast is one in-memory notification surfaced to a buyer session.
type Toast struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Service holds per-session toast feeds. Nothing here survives a
// restart; a read drains the feed the way a toast disappears once shown.
type Service interface {
	Push(sessionID string, kind Kind, message string)
	Drain(sessionID string) []Toast
}

type service struct {
	mu    sync.Mutex
	feeds map[string][]Toast
	limit int
}

// NewService builds a feed store keeping at most limit pending toasts
// per session, oldest dropped first.
func NewService(limit int) Service {
	if limit <= 0 {
		limit = 50
	}
	return &service{
		feeds: make(map[string][]Toast),
		limit: limit,
	}
}

func (s *service) Push(sessionID string, kind Kind, message string) {
	if sessionID == "" || message == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	feed := append(s.feeds[sessionID], Toast{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
	if len(feed) > s.limit {
		feed = feed[len(feed)-s.limit:]
	}
	s.feeds[sessionID] = feed
}

func (s *service) Drain(sessionID string) []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed := s.feeds[sessionID]
	if len(feed) == 0 {
		return []Toast{}
	}
	delete(s.feeds, sessionID)
	return feed
}
