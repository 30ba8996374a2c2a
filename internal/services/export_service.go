package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/civicpulse/participant-api/internal/models"
)

type ExportStore interface {
	ListAll() []*models.Participant
}

// ExportResult carries the rendered CSV plus the response metadata the
// handler needs.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders the current collection as CSV. Fields are quoted
// per RFC 4180 by encoding/csv, so embedded commas and quotes survive.
type ExportService struct {
	store ExportStore
	now   func() time.Time
}

func NewExportService(store ExportStore) *ExportService {
	return &ExportService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

var csvHeader = []string{
	"ID", "Name", "Congressional Office", "Profile", "Primary Concern",
	"Adjectives", "Priorities", "Selected Traits", "Timestamp",
}

// Export renders one row per record in insertion order. The suggested
// filename embeds the current epoch milliseconds so each download is
// distinct.
func (s *ExportService) Export() (*ExportResult, error) {
	records := s.store.ListAll()

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write(csvHeader)
	for _, p := range records {
		rec := []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.OfficeName(),
			p.AudienceProfile,
			p.PrimaryConcern,
			strings.Join(p.Adjectives, ","),
			strings.Join(p.Priorities, ";"),
			strings.Join(p.SelectedTraits, ","),
			p.Timestamp,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &ExportResult{
		Filename:    fmt.Sprintf("participants-%d.csv", s.now().UnixMilli()),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}
