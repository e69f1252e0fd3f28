package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"helgdagar/internal/config"
)

func testServer() *Server {
	return NewServer(config.DefaultConfig())
}

func TestHandleHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	testServer().Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "OK")
	}
}

func TestHandleCalendarDefaults(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/calendar.ics", nil)
	testServer().Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/calendar; charset=utf-8" {
		t.Errorf("Content-Type = %q, want text/calendar", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != "" {
		t.Errorf("subscription feed must not force a download, got Content-Disposition %q", cd)
	}

	body := rec.Body.String()
	required := []string{
		"BEGIN:VCALENDAR",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:" + config.DefaultCalendarName,
		"X-PUBLISHED-TTL:" + config.DefaultPublishedTTL,
		"END:VCALENDAR",
	}
	for _, want := range required {
		if !strings.Contains(body, want) {
			t.Errorf("feed missing %q", want)
		}
	}
}

func TestHandleCalendarExplicitSpan(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/calendar.ics?start=2024&years=1", nil)
	testServer().Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "DTSTART;VALUE=DATE:20240331") {
		t.Error("feed for 2024 missing Easter Sunday")
	}
	if got := strings.Count(body, "BEGIN:VEVENT"); got != 22 {
		t.Errorf("feed contains %d events, want 22", got)
	}
}

func TestHandleCalendarBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"malformed start", "/calendar.ics?start=abc"},
		{"malformed years", "/calendar.ics?years=x"},
		{"zero years", "/calendar.ics?years=0"},
		{"start year out of range", "/calendar.ics?start=1200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			testServer().Handler().ServeHTTP(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}
