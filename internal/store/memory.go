// Package store holds the in-memory participant collection. State is
// process-lifetime only; a restart discards all records.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/civicpulse/participant-api/internal/models"
)

// MemoryStore owns the ordered participant collection and the id counter.
// Ids start at 1, increase strictly in insertion order, and are only
// reused after Clear resets the counter. The mutex keeps the store safe
// under the net/http concurrent handler model.
type MemoryStore struct {
	mu      sync.RWMutex
	records []*models.Participant
	nextID  int
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Insert merges an arbitrary field map with a store-assigned id and
// timestamp and appends the record. No field validation is performed;
// whatever the client sent is stored as-is.
func (s *MemoryStore) Insert(fields map[string]any) *models.Participant {
	p := models.FromMap(fields)
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	p.Timestamp = s.now().Format(time.RFC3339)
	s.records = append(s.records, p)
	return p
}

// ListAll returns the collection in insertion order. The slice is never
// nil so handlers always encode a JSON array.
func (s *MemoryStore) ListAll() []*models.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Participant, 0, len(s.records))
	return append(out, s.records...)
}

// GetByID returns the record with the given id, or nil.
func (s *MemoryStore) GetByID(id int) *models.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.records {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FilterByOffice returns records whose congressional office contains text
// as a case-sensitive substring. Records without an office never match.
func (s *MemoryStore) FilterByOffice(text string) []*models.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*models.Participant{}
	for _, p := range s.records {
		if p.CongressionalOffice != "" && strings.Contains(p.CongressionalOffice, text) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByProfile returns records whose audience profile matches exactly.
func (s *MemoryStore) FilterByProfile(profile string) []*models.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*models.Participant{}
	for _, p := range s.records {
		if p.AudienceProfile == profile {
			out = append(out, p)
		}
	}
	return out
}

// Search matches query case-insensitively against name, office and
// profile. An empty query returns everything.
func (s *MemoryStore) Search(query string) []*models.Participant {
	if query == "" {
		return s.ListAll()
	}
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*models.Participant{}
	for _, p := range s.records {
		if strings.Contains(p.SearchText(), q) {
			out = append(out, p)
		}
	}
	return out
}

// Clear empties the collection and resets the id counter to 1.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.nextID = 1
}

// Count returns the collection size.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
