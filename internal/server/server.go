// Package server exposes the scraped events over HTTP, mirroring the listing
// and fight-card pages as server-rendered HTML.
package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/amehta/fight-events/internal/event"
	"github.com/amehta/fight-events/internal/logger"
	"github.com/amehta/fight-events/internal/orgs"
	"github.com/amehta/fight-events/internal/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

// Fetcher is the scraper surface the server needs.
type Fetcher interface {
	FetchEvents() ([]*event.Event, error)
	FetchEventDetail(eventURL string) (*event.Event, error)
}

// Server renders the events listing and individual fight cards.
type Server struct {
	fetcher Fetcher
	store   *storage.Storage
	aliases orgs.AliasTable
	tmpl    *template.Template
}

// New creates a Server. store may be nil to disable snapshot fallback.
func New(fetcher Fetcher, store *storage.Storage, aliases orgs.AliasTable) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Server{
		fetcher: fetcher,
		store:   store,
		aliases: aliases,
		tmpl:    tmpl,
	}, nil
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /event/{id}", s.handleEvent)
	return mux
}

type indexData struct {
	Events []*event.Event
	Org    string
	Stale  bool
}

// handleIndex renders the upcoming-events listing, optionally filtered with
// ?org=<short code>. When the live fetch fails the last snapshot is served
// instead, marked stale.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{Org: r.URL.Query().Get("org")}

	events, err := s.fetcher.FetchEvents()
	if err != nil {
		logger.Error("listing fetch failed, serving snapshot", nil, err)
		events = s.snapshotEvents()
		data.Stale = true
	} else if s.store != nil {
		if err := s.store.SaveEvents(events); err != nil {
			logger.Warn("saving snapshot failed", nil)
		}
	}

	data.Events = s.aliases.Filter(data.Org, events)
	s.render(w, "index.html", data)
}

// handleEvent renders one event's full fight card.
func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")

	evt, ok := s.findEvent(eventID)
	if !ok {
		http.NotFound(w, r)
		return
	}

	detail, err := s.fetcher.FetchEventDetail(evt.URL)
	if err != nil {
		logger.Error("event detail fetch failed", logger.Fields{"id": eventID}, err)
		http.Error(w, "failed to load event", http.StatusBadGateway)
		return
	}

	s.render(w, "event.html", detail)
}

// findEvent resolves an event ID via the snapshot, refetching the listing
// when the snapshot doesn't know the ID.
func (s *Server) findEvent(eventID string) (*event.Event, bool) {
	if s.store != nil {
		if evt, err := s.store.GetEventByID(eventID); err == nil {
			return evt, true
		}
	}

	events, err := s.fetcher.FetchEvents()
	if err != nil {
		return nil, false
	}
	if s.store != nil {
		if err := s.store.SaveEvents(events); err != nil {
			logger.Warn("saving snapshot failed", nil)
		}
	}
	for _, evt := range events {
		if evt.ID == eventID {
			return evt, true
		}
	}
	return nil, false
}

func (s *Server) snapshotEvents() []*event.Event {
	if s.store == nil {
		return nil
	}
	snapshot, err := s.store.LoadSnapshot()
	if err != nil {
		return nil
	}
	return snapshot.Ordered()
}

func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("rendering template", logger.Fields{"template": name}, err)
	}
}
