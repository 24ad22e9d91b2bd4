package stats

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/tobiclare/studylog/export"
	"github.com/tobiclare/studylog/internal/models"
	"github.com/tobiclare/studylog/store"
)

type errorHandler func(w http.ResponseWriter, r *http.Request) error

func (h errorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err != nil {
		pterm.Error.Println(err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// server exposes read-only queries over the persisted session log. It is
// not a command surface: sessions can only be started and finished from
// the terminal.
type server struct {
	db store.Store
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")

	return json.NewEncoder(w).Encode(v)
}

func (s *server) sessions(w http.ResponseWriter, r *http.Request) error {
	log, err := s.db.LoadLog()
	if err != nil {
		return err
	}

	limit := len(log)

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n >= 0 && n < limit {
			limit = n
		}
	}

	if log == nil {
		log = []models.Session{}
	}

	return writeJSON(w, log[:limit])
}

func (s *server) stats(w http.ResponseWriter, r *http.Request) error {
	log, err := s.db.LoadLog()
	if err != nil {
		return err
	}

	return writeJSON(w, ComputeBreakdown(log, time.Now()))
}

func (s *server) export(w http.ResponseWriter, r *http.Request) error {
	log, err := s.db.LoadLog()
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().
		Set("Content-Disposition", "attachment; filename=study_sessions.csv")

	return export.Sessions(w, log)
}

func (s *server) health(w http.ResponseWriter, r *http.Request) error {
	_, err := s.db.LoadLog()

	status := "healthy"
	if err != nil {
		status = "degraded"
	}

	return writeJSON(w, map[string]string{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Server starts a local HTTP server exposing the session log and its
// statistics. It blocks until the server exits.
func Server(db store.Store, port uint) error {
	mux := http.NewServeMux()

	s := &server{db: db}

	mux.Handle("/sessions", errorHandler(s.sessions))
	mux.Handle("/stats", errorHandler(s.stats))
	mux.Handle("/export", errorHandler(s.export))
	mux.Handle("/healthz", errorHandler(s.health))

	pterm.Info.Printfln("starting server on port: %d", port)

	srv := &http.Server{
		Addr:              fmt.Sprintf("localhost:%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return srv.ListenAndServe()
}
