package cache

import (
	"sync"

	"github.com/danielbohnn/quizcode/internal/models"
)

// Session is one in-flight quiz attempt: the retained question set (with its
// answer key, which never leaves the process) and the answers collected so
// far. Progress through the set is len(Answers).
type Session struct {
	Questions []models.Question
	Answers   []models.SubmittedAnswer
}

func (s Session) Done() bool {
	return len(s.Answers) >= len(s.Questions)
}

func (s Session) Current() (models.Question, bool) {
	if s.Done() || len(s.Questions) == 0 {
		return models.Question{}, false
	}
	return s.Questions[len(s.Answers)], true
}

// Cache holds at most one active session per user. A new generation simply
// overwrites the previous session.
type Cache struct {
	mu       sync.Mutex
	sessions map[int64]Session
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]Session),
	}
}

func (c *Cache) SetSession(userID int64, session Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[userID] = session
}

func (c *Cache) GetSession(userID int64) (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.sessions[userID]
	return session, exists
}

func (c *Cache) DeleteSession(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
}
