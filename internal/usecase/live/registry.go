package live

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
)

const maxSweepInterval = time.Minute

// Registry keeps live sessions in memory and expires idle ones
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	logger   *zap.Logger
	stop     chan struct{}
	once     sync.Once
}

// NewRegistry creates a registry and starts its janitor
func NewRegistry(ttl time.Duration, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		logger:   logger,
		stop:     make(chan struct{}),
	}

	interval := ttl / 2
	if interval > maxSweepInterval {
		interval = maxSweepInterval
	}
	if interval <= 0 {
		interval = maxSweepInterval
	}
	go r.janitor(interval)

	return r
}

// Create starts a session under a fresh id
func (r *Registry) Create() *Session {
	s := newSession(uuid.NewString(), time.Now())

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	r.logger.Info("live session created", zap.String("session_id", s.ID))
	return s
}

// GetOrCreate returns the session for id, starting one if needed
func (r *Registry) GetOrCreate(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		return s
	}
	s := newSession(id, time.Now())
	r.sessions[id] = s
	r.logger.Info("live session created", zap.String("session_id", id))
	return s
}

// Get returns the session for id
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, entities.ErrLiveSessionNotFound
	}
	return s, nil
}

// Remove ends the session for id
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if !ok {
		return entities.ErrLiveSessionNotFound
	}
	s.close()
	r.logger.Info("live session ended", zap.String("session_id", id))
	return nil
}

// Len returns the number of open sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Close stops the janitor and ends every session
func (r *Registry) Close() {
	r.once.Do(func() {
		close(r.stop)

		r.mu.Lock()
		sessions := r.sessions
		r.sessions = make(map[string]*Session)
		r.mu.Unlock()

		for _, s := range sessions {
			s.close()
		}
	})
}

func (r *Registry) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case now := <-ticker.C:
			r.sweep(now)
		}
	}
}

// sweep removes sessions idle for longer than the ttl
func (r *Registry) sweep(now time.Time) int {
	r.mu.Lock()
	expired := make([]*Session, 0)
	for id, s := range r.sessions {
		if s.idleSince(now) > r.ttl {
			delete(r.sessions, id)
			expired = append(expired, s)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.close()
		r.logger.Info("live session expired", zap.String("session_id", s.ID))
	}
	return len(expired)
}
