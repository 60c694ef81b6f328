package bot

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// TechMenu is the fixed numbered menu shown at /start. Its order defines
// the 1-based indices users reply with.
var TechMenu = []string{
	"Python", "Node.js", "React", "Django", "Flutter", "AWS", "GCP",
	"FastAPI", "MongoDB", "PostgreSQL", "MySQL",
}

type state int

const (
	stateTechs state = iota
	stateLocation
	stateYOE
)

// session tracks one in-progress search conversation for a single chat.
type session struct {
	state    state
	techs    []string
	location string
}

// sessions keys conversation state by chat ID behind a mutex, so parallel
// users never clobber each other's half-built query.
type sessions struct {
	mu sync.Mutex
	m  map[int64]*session
}

func newSessions() *sessions {
	return &sessions{m: make(map[int64]*session)}
}

func (s *sessions) start(chatID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &session{state: stateTechs}
	s.m[chatID] = sess
	return sess
}

func (s *sessions) get(chatID int64) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.m[chatID]
	return sess, ok
}

func (s *sessions) end(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, chatID)
}

// parseTechSelection turns a reply like "1,4,6" into menu entries.
// Out-of-range indices are silently dropped; anything non-numeric is an
// error and the user gets re-prompted.
func parseTechSelection(text string) ([]string, error) {
	var techs []string
	for _, part := range strings.Split(text, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid selection %q", strings.TrimSpace(part))
		}
		if idx >= 1 && idx <= len(TechMenu) {
			techs = append(techs, TechMenu[idx-1])
		}
	}
	return techs, nil
}

func renderTechMenu() string {
	var b strings.Builder
	for i, tech := range TechMenu {
		fmt.Fprintf(&b, "%d. %s\n", i+1, tech)
	}
	return strings.TrimRight(b.String(), "\n")
}

// excerpt bounds a blurb for presentation. Storage keeps the full text;
// only the rendered message is cut.
func excerpt(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
