// Package web serves the generated holiday calendar as a subscribable feed.
package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"helgdagar/internal/config"
	"helgdagar/internal/holiday"
	"helgdagar/internal/ics"
	appLog "helgdagar/internal/log"
)

// Server provides the HTTP endpoints of the feed service.
type Server struct {
	cfg *config.Config
	mux *http.ServeMux
}

// NewServer constructs a new Server.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		cfg: cfg,
		mux: http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// Handler returns the underlying http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/calendar.ics", s.handleCalendar)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleCalendar generates and serves the calendar.
//
// GET /calendar.ics?start=2025&years=5
//   - start: first year of the span (default: the current year)
//   - years: number of consecutive years (default: config.Years)
//
// The response is served inline with METHOD:PUBLISH so calendar clients
// treat it as a subscription rather than a download.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, err := parseIntDefault(q.Get("start"), time.Now().Year())
	if err != nil {
		http.Error(w, "start must be an integer year", http.StatusBadRequest)
		return
	}
	years, err := parseIntDefault(q.Get("years"), s.cfg.Years)
	if err != nil {
		http.Error(w, "years must be an integer", http.StatusBadRequest)
		return
	}

	doc, err := holiday.Build(start, years)
	if err != nil {
		if errors.Is(err, holiday.ErrInvalidArgument) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		appLog.Error("calendar build failed", err, "start", start, "years", years)
		http.Error(w, "failed to build calendar", http.StatusInternalServerError)
		return
	}

	out := ics.Encode(doc, ics.EncodeOptions{
		Publish:      true,
		CalendarName: s.cfg.CalendarName,
		PublishedTTL: s.cfg.PublishedTTL,
	})

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(out))
}

// parseIntDefault parses s as an integer, returning def for the empty
// string and an error for anything else that does not parse.
func parseIntDefault(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

// StartServer runs the HTTP server bound to cfg.Listen until ctx is
// canceled, then shuts it down gracefully.
func StartServer(ctx context.Context, cfg *config.Config) error {
	s := NewServer(cfg)
	srv := &http.Server{
		Addr:    cfg.Listen,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	appLog.Info("started HTTP server", "listen", "http://"+cfg.Listen)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
