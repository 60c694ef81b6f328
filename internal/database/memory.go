package database

import (
	"context"
	"strings"
	"sync"

	"github.com/Traverser25/GetCoditer/internal/models"
)

// MemStore is the in-memory Store. It mirrors the SQL semantics of
// Repository exactly and doubles as the reference implementation in tests.
// Reads take the shared lock and may run concurrently; Insert takes the
// write lock, so a scan never observes a half-appended collection.
type MemStore struct {
	mu      sync.RWMutex
	nextID  int64
	records []models.Candidate
}

func NewMemStore() *MemStore {
	return &MemStore{nextID: 1}
}

func (m *MemStore) Insert(ctx context.Context, c *models.Candidate) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = m.nextID
	m.nextID++

	m.records = append(m.records, cloneCandidate(*c))
	return c.ID, nil
}

func (m *MemStore) Filter(ctx context.Context, q models.Query) ([]models.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Candidate
	for _, c := range m.records {
		if c.ExperienceYears < q.MinYOE {
			continue
		}
		if !matchesTechs(c, q.Techs) {
			continue
		}
		if !matchesLocations(c, q.Locations) {
			continue
		}
		out = append(out, cloneCandidate(c))
	}
	return out, nil
}

func (m *MemStore) SearchByAuthor(ctx context.Context, name string) ([]models.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Candidate
	for _, c := range m.records {
		if strings.Contains(c.Author, name) {
			out = append(out, cloneCandidate(c))
		}
	}
	return out, nil
}

func (m *MemStore) GetAll(ctx context.Context) ([]models.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Candidate, 0, len(m.records))
	for _, c := range m.records {
		out = append(out, cloneCandidate(c))
	}
	return out, nil
}

// matchesTechs requires every requested tech to appear as a substring of
// the comma-joined stack — same as the LIKE chain in the SQL path.
func matchesTechs(c models.Candidate, techs []string) bool {
	stack := JoinStack(c.TechStack)
	for _, tech := range techs {
		if !strings.Contains(stack, tech) {
			return false
		}
	}
	return true
}

// matchesLocations accepts the record when any requested location is a
// substring of the stored one. No locations requested means no constraint.
func matchesLocations(c models.Candidate, locations []string) bool {
	if len(locations) == 0 {
		return true
	}
	for _, loc := range locations {
		if strings.Contains(c.Location, loc) {
			return true
		}
	}
	return false
}

// cloneCandidate copies the record so callers can never mutate stored state
// through a returned slice.
func cloneCandidate(c models.Candidate) models.Candidate {
	c.TechStack = append([]string(nil), c.TechStack...)
	return c
}
