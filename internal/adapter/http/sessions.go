package http

import (
	"sync"
	"time"

	"proconnect/internal/usecase"

	"github.com/google/uuid"
)

const sessionHeader = "X-Session-ID"

// session is the view state of one client. Requests of a session run one
// at a time under mu.
type session struct {
	mu       sync.Mutex
	convs    *usecase.ConversationSelection
	calendar *usecase.CalendarSelection
	pods     *usecase.PodSelection
	lastSeen time.Time
}

// Sessions maps session ids to view state. Sessions idle for longer than
// ttl are dropped when a new one is created.
type Sessions struct {
	mu    sync.Mutex
	store usecase.EntityStore
	now   func() time.Time
	ttl   time.Duration
	byID  map[uuid.UUID]*session
}

func NewSessions(store usecase.EntityStore, ttl time.Duration) *Sessions {
	return &Sessions{store: store, now: time.Now, ttl: ttl, byID: map[uuid.UUID]*session{}}
}

// Get returns the session for raw, creating one with a fresh id when raw is
// empty, malformed or unknown.
func (s *Sessions) Get(raw string) (uuid.UUID, *session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if id, err := uuid.Parse(raw); err == nil {
		if sess, ok := s.byID[id]; ok {
			sess.lastSeen = now
			return id, sess
		}
	}

	s.sweep(now)
	id := uuid.New()
	sess := &session{
		convs:    usecase.NewConversationSelection(s.store),
		calendar: usecase.NewCalendarSelection(s.store, now),
		pods:     usecase.NewPodSelection(s.store),
		lastSeen: now,
	}
	s.byID[id] = sess
	return id, sess
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

func (s *Sessions) sweep(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, sess := range s.byID {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.byID, id)
		}
	}
}
