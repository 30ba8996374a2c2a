package services

import (
	"math"
	"time"

	"github.com/civicpulse/participant-api/internal/models"
)

// undefinedKey buckets records that lack a categorical field so the
// distributions still account for every record.
const undefinedKey = "undefined"

type StatsStore interface {
	ListAll() []*models.Participant
}

// StatsService derives aggregate statistics from the full collection on
// every call. Nothing is memoized.
type StatsService struct {
	store StatsStore
	now   func() time.Time
}

func NewStatsService(store StatsStore) *StatsService {
	return &StatsService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

type Summary struct {
	TotalParticipants   int            `json:"totalParticipants"`
	UniqueOffices       int            `json:"uniqueOffices"`
	ProfileDistribution map[string]int `json:"profileDistribution"`
	ConcernDistribution map[string]int `json:"concernDistribution"`
	AvgTraitsSelected   int            `json:"avgTraitsSelected"`
	CompletionRate      int            `json:"completionRate"`
	LastUpdated         string         `json:"lastUpdated"`
}

func (s *StatsService) Compute() *Summary {
	records := s.store.ListAll()

	offices := map[string]struct{}{}
	profiles := map[string]int{}
	concerns := map[string]int{}
	traitTotal := 0
	for _, p := range records {
		if key, ok := p.OfficeKey(); ok {
			offices[key] = struct{}{}
		} else {
			offices[undefinedKey] = struct{}{}
		}
		profiles[orUndefined(p.AudienceProfile)]++
		concerns[orUndefined(p.PrimaryConcern)]++
		traitTotal += len(p.SelectedTraits)
	}

	avg := 0
	if len(records) > 0 {
		avg = int(math.Round(float64(traitTotal) / float64(len(records))))
	}

	return &Summary{
		TotalParticipants:   len(records),
		UniqueOffices:       len(offices),
		ProfileDistribution: profiles,
		ConcernDistribution: concerns,
		AvgTraitsSelected:   avg,
		// Every stored record is a completed submission, so this stays a
		// constant until partial submissions exist.
		CompletionRate: 100,
		LastUpdated:    s.now().Format(time.RFC3339),
	}
}

func orUndefined(v string) string {
	if v == "" {
		return undefinedKey
	}
	return v
}
