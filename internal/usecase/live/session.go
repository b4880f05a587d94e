package live

import (
	"sync"
	"time"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/usecase/transcript"
)

// Session is one live interview whose turns are grouped as they arrive
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	grouper    *transcript.Grouper
	lastActive time.Time
	closed     bool
	done       chan struct{}
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:         id,
		CreatedAt:  now,
		grouper:    transcript.NewGrouper(),
		lastActive: now,
		done:       make(chan struct{}),
	}
}

// Apply feeds one turn to the session's grouper. Turns with an unknown
// speaker are rejected with entities.ErrUnknownSpeaker.
func (s *Session) Apply(turn entities.Turn) (transcript.Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return transcript.Change{}, entities.ErrLiveSessionClosed
	}
	s.lastActive = time.Now()
	return s.grouper.Add(turn)
}

// Blocks returns a snapshot of the grouped transcript
func (s *Session) Blocks() []entities.Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grouper.Blocks()
}

// Done is closed when the session ends
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Touch marks the session active without changing its transcript
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActive)
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
}
