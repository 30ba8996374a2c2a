package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/civicpulse/participant-api/internal/middleware"
)

// VersionInfo is stamped into the binary's environment at build time.
type VersionInfo struct {
	Commit    string
	BuildTime string
}

// NewRouter wires all API routes. Literal participant sub-paths are
// registered before the {id} route so "search", "office" and "profile"
// are never captured as ids.
func NewRouter(h *Handler, v VersionInfo) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Recovery)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/participants/search", h.SearchParticipants).Methods(http.MethodGet)
	api.HandleFunc("/participants/office/{office}", h.ParticipantsByOffice).Methods(http.MethodGet)
	api.HandleFunc("/participants/profile/{profile}", h.ParticipantsByProfile).Methods(http.MethodGet)
	api.HandleFunc("/participants/{id}", h.GetParticipant).Methods(http.MethodGet)
	api.HandleFunc("/participants", h.ListParticipants).Methods(http.MethodGet)
	api.HandleFunc("/participants", h.CreateParticipant).Methods(http.MethodPost)
	api.HandleFunc("/participants", h.DeleteParticipants).Methods(http.MethodDelete)
	api.HandleFunc("/statistics", h.GetStatistics).Methods(http.MethodGet)
	api.HandleFunc("/export/csv", h.ExportCSV).Methods(http.MethodGet)
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/version", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"commit":     v.Commit,
			"build_time": v.BuildTime,
		})
	}).Methods(http.MethodGet)

	return r
}
