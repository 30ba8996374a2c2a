package services

import (
	"strconv"

	"github.com/civicpulse/participant-api/internal/models"
)

// ParticipantStore abstracts the record store operations the service needs.
type ParticipantStore interface {
	Insert(fields map[string]any) *models.Participant
	ListAll() []*models.Participant
	GetByID(id int) *models.Participant
	FilterByOffice(text string) []*models.Participant
	FilterByProfile(profile string) []*models.Participant
	Search(query string) []*models.Participant
	Clear()
	Count() int
}

type ParticipantService struct {
	store ParticipantStore
}

func NewParticipantService(store ParticipantStore) *ParticipantService {
	return &ParticipantService{store: store}
}

// Create stores an arbitrary field map as a new participant. Missing or
// malformed fields are accepted as-is; there is no input validation.
func (s *ParticipantService) Create(fields map[string]any) *models.Participant {
	if fields == nil {
		fields = map[string]any{}
	}
	return s.store.Insert(fields)
}

func (s *ParticipantService) List() []*models.Participant {
	return s.store.ListAll()
}

// Get looks a participant up by its id as received on the wire. A
// non-numeric id is treated as "no match", not a format error.
func (s *ParticipantService) Get(idText string) (*models.Participant, error) {
	id, err := strconv.Atoi(idText)
	if err != nil {
		return nil, NewNotFoundError("Participant not found")
	}
	p := s.store.GetByID(id)
	if p == nil {
		return nil, NewNotFoundError("Participant not found")
	}
	return p, nil
}

func (s *ParticipantService) ByOffice(text string) []*models.Participant {
	return s.store.FilterByOffice(text)
}

func (s *ParticipantService) ByProfile(profile string) []*models.Participant {
	return s.store.FilterByProfile(profile)
}

func (s *ParticipantService) Search(query string) []*models.Participant {
	return s.store.Search(query)
}

// Reset removes every participant and restarts id assignment at 1.
func (s *ParticipantService) Reset() {
	s.store.Clear()
}

func (s *ParticipantService) Count() int {
	return s.store.Count()
}
