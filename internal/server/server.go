// Package server exposes the catalog over HTTP: the JSON API backing
// the single-page client, a WebSocket live channel, and the static
// shell and media served through the asset cache.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"majasdoc/internal/assetcache"
	"majasdoc/internal/authgate"
	"majasdoc/internal/catalog"
	"majasdoc/internal/media"
	"majasdoc/internal/prefs"
)

// Config holds server configuration.
type Config struct {
	Port     int
	WebDir   string // SPA shell, login page, data.json
	MediaDir string // photos/, videos/, thumbnails/
	AllowAll bool   // allow all CORS origins (dev mode)

	// PrecacheMedia stages every referenced media file at startup.
	PrecacheMedia bool
}

// Server serves one immutable catalog document for its lifetime. The
// document never changes after New, so handlers read it without
// locking.
type Server struct {
	cfg        Config
	doc        *catalog.Document
	tagIndex   []string
	store      *prefs.Store
	cache      *assetcache.Cache
	static     http.Handler
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for the given document and preference store.
func New(cfg Config, doc *catalog.Document, store *prefs.Store) *Server {
	s := &Server{
		cfg:      cfg,
		doc:      doc,
		tagIndex: doc.TagIndex(),
		store:    store,
		cache:    assetcache.New(),
	}

	s.static = s.buildStatic()
	s.router = s.buildRouter()

	if cfg.PrecacheMedia {
		s.precache()
	}
	return s
}

// buildStatic mounts the web dir with media overlaid, all behind the
// asset cache.
func (s *Server) buildStatic() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/media/", http.StripPrefix("/media/", http.FileServer(http.Dir(s.cfg.MediaDir))))
	mux.Handle("/", http.FileServer(http.Dir(s.cfg.WebDir)))
	return s.cache.Handler(mux)
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Session gate. Login page, login endpoint, and health stay open.
	r.Use(authgate.Middleware)

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/data", s.handleData)
		r.Get("/tags", s.handleTags)
		r.Get("/rooms", s.handleRooms)
		r.Get("/rooms/{id}", s.handleRoom)
		r.Get("/suggest", s.handleSuggest)
		r.Get("/resolve", s.handleResolve)
		r.Post("/transition", s.handleTransition)
		r.Get("/prefs/{key}", s.handleGetPref)
		r.Put("/prefs/{key}", s.handleSetPref)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.Get("/ws", s.handleWebSocket)
	})

	// Everything else is the static site through the asset cache.
	r.NotFound(s.static.ServeHTTP)

	return r
}

// precache stages every referenced media file and activates the
// generation at once, mirroring a worker's install-time precache.
func (s *Server) precache() {
	refs := media.References(s.doc)
	staged := 0
	for _, ref := range refs {
		if s.cache.StageFrom(s.static, "/media/"+filepath.ToSlash(ref.Path)) {
			staged++
		}
	}
	s.cache.SkipWaiting()
	log.Printf("server: precached %d/%d media files", staged, len(refs))
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Cache returns the asset cache.
func (s *Server) Cache() *assetcache.Cache { return s.cache }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("majasdoc listening on %s (%d rooms, %d tags)", addr, len(s.doc.Rooms), len(s.tagIndex))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
