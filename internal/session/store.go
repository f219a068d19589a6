package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/actuallystonmai/nutriguide-service/internal/domain"
)

const defaultTTL = 30 * time.Minute

// Page is a rendered snapshot of a session's paginator.
type Page struct {
	SessionID string                  `json:"session_id"`
	Mode      string                  `json:"mode,omitempty"`
	Items     []domain.Recommendation `json:"page"`
	Offset    int                     `json:"offset"`
	PageSize  int                     `json:"page_size"`
	Total     int                     `json:"total"`
	Warning   string                  `json:"warning,omitempty"`
	// Metadata is set only on the response that produced the result.
	Metadata *domain.RecommendationMeta `json:"metadata,omitempty"`
}

// Session owns one user's paginator. Sessions never share mutable state.
type Session struct {
	ID string

	mu        sync.Mutex
	mode      string
	paginator *Paginator

	// guarded by Store.mu
	lastSeen time.Time
}

func (s *Session) SetResult(mode string, recs []domain.Recommendation) Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	s.paginator.SetResult(recs)
	return s.snapshot()
}

func (s *Session) Next() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paginator.NextPage()
	return s.snapshot()
}

func (s *Session) Current() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Page {
	return Page{
		SessionID: s.ID,
		Mode:      s.mode,
		Items:     s.paginator.CurrentPage(),
		Offset:    s.paginator.Offset(),
		PageSize:  s.paginator.PageSize(),
		Total:     s.paginator.Len(),
	}
}

// Store keeps sessions in memory. Idle sessions expire after the TTL; they are
// evicted lazily, on lookup and on creation.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	pageSize int
	now      func() time.Time
}

func NewStore(ttl time.Duration, pageSize int) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		pageSize: pageSize,
		now:      time.Now,
	}
}

func (st *Store) Create() *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	st.evictExpired(now)

	s := &Session{
		ID:        uuid.NewString(),
		paginator: NewPaginator(st.pageSize),
		lastSeen:  now,
	}
	st.sessions[s.ID] = s
	return s
}

// Get returns a live session and refreshes its idle timer.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	now := st.now()
	if now.Sub(s.lastSeen) > st.ttl {
		delete(st.sessions, id)
		return nil, fmt.Errorf("%w: %s expired", domain.ErrSessionNotFound, id)
	}
	s.lastSeen = now
	return s, nil
}

func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	_, ok := st.sessions[id]
	delete(st.sessions, id)
	return ok
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) evictExpired(now time.Time) {
	for id, s := range st.sessions {
		if now.Sub(s.lastSeen) > st.ttl {
			delete(st.sessions, id)
		}
	}
}
