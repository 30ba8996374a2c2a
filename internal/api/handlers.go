package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/civicpulse/participant-api/internal/services"
)

// Handler answers the participant API requests. It owns no state beyond
// the injected services and the process start time used for uptime.
type Handler struct {
	participants *services.ParticipantService
	stats        *services.StatsService
	export       *services.ExportService
	start        time.Time
}

func NewHandler(participants *services.ParticipantService, stats *services.StatsService, export *services.ExportService) *Handler {
	return &Handler{
		participants: participants,
		stats:        stats,
		export:       export,
		start:        time.Now(),
	}
}

// GET /api/participants
func (h *Handler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.participants.List())
}

// POST /api/participants
func (h *Handler) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil && !errors.Is(err, io.EOF) {
		// No input-validation category: a body we cannot read is an
		// unhandled fault, detail stays server-side.
		log.Error().Err(err).Str("path", r.URL.Path).Msg("decode request body")
		writeInternalError(w)
		return
	}
	created := h.participants.Create(fields)
	writeJSON(w, http.StatusCreated, created)
}

// GET /api/participants/{id}
func (h *Handler) GetParticipant(w http.ResponseWriter, r *http.Request) {
	p, err := h.participants.Get(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GET /api/participants/office/{office}
func (h *Handler) ParticipantsByOffice(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.participants.ByOffice(mux.Vars(r)["office"]))
}

// GET /api/participants/profile/{profile}
func (h *Handler) ParticipantsByProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.participants.ByProfile(mux.Vars(r)["profile"]))
}

// GET /api/participants/search?q=...
func (h *Handler) SearchParticipants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.participants.Search(r.URL.Query().Get("q")))
}

// DELETE /api/participants
func (h *Handler) DeleteParticipants(w http.ResponseWriter, r *http.Request) {
	h.participants.Reset()
	writeJSON(w, http.StatusOK, map[string]string{"message": "All participants deleted"})
}

// GET /api/statistics
func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.stats.Compute())
}

// GET /api/export/csv
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	res, err := h.export.Export()
	if err != nil {
		log.Error().Err(err).Msg("csv export failed")
		writeInternalError(w)
		return
	}
	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+res.Filename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Data)
}

// GET /health (also served under /api/health)
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "healthy",
		"participantCount": h.participants.Count(),
		"uptime":           int(time.Since(h.start).Seconds()),
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("encode JSON response")
	}
}

// writeServiceError maps service error codes onto the API's two-outcome
// error contract: Not-Found or a generic fault.
func writeServiceError(w http.ResponseWriter, err error) {
	if se, ok := services.AsServiceError(err); ok && se.Code == services.ErrorNotFound {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": se.Message})
		return
	}
	log.Error().Err(err).Msg("request failed")
	writeInternalError(w)
}

func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Something went wrong!"})
}
