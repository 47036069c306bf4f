package site

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/folio/internal/theme"
)

// ShutdownTimeout bounds how long Shutdown waits for open requests.
const ShutdownTimeout = 10 * time.Second

// ServerConfig holds dev server configuration.
type ServerConfig struct {
	Port     int
	AllowAll bool // allow all CORS origins
}

// Server is the development server: it serves the generated output,
// renders the page live at arbitrary widths and pushes reload events.
type Server struct {
	cfg        ServerConfig
	gen        *Generator
	hub        *Hub
	live       *Live
	logger     *slog.Logger
	router     chi.Router
	httpServer *http.Server

	shutdownTimeout time.Duration
}

// NewServer returns a Server for gen's output directory.
func NewServer(cfg ServerConfig, gen *Generator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:    cfg,
		gen:    gen,
		hub:    NewHub(logger),
		live:   NewLive(gen, logger),
		logger: logger,

		shutdownTimeout: ShutdownTimeout,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// The websocket is long-lived, so it stays outside the timeout group.
	r.Handle(ReloadPath, s.hub)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Get("/render", s.handleRender)
		r.Get("/live", s.handleLive)
		r.Get("/live/hero", s.handleLiveHero)
		r.Post("/live/resize", s.handleLiveResize)
		r.Handle("/*", http.FileServer(http.Dir(s.gen.OutputDir)))
	})

	return r
}

// handleRender builds the page for ?width=N. A missing or invalid width
// falls back to the configured viewport.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	width, err := strconv.Atoi(r.URL.Query().Get("width"))
	if err != nil || width <= 0 {
		width = 0
	}
	doc, m, err := s.gen.Render(r.Context(), width)
	if err != nil {
		s.logger.Error("live render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Folio-Device", string(m.Device))
	w.Header().Set("X-Folio-Build", m.BuildID)
	if err := doc.Render(w); err != nil {
		s.logger.Error("writing live render", "error", err)
	}
}

// handleLive serves the live page. ?width=N, or the first request, builds a
// fresh one.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	width, err := strconv.Atoi(r.URL.Query().Get("width"))
	if err != nil || width <= 0 {
		width = 0
	}
	if _, _, err := s.live.Hero(); width > 0 || errors.Is(err, ErrNoLivePage) {
		if _, err := s.live.Load(r.Context(), width); err != nil {
			s.logger.Error("loading live page failed", "error", err)
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.live.Render(w); err != nil {
		s.logger.Error("writing live page", "error", err)
	}
}

type heroStatus struct {
	State  string            `json:"state"`
	Device theme.DeviceClass `json:"device"`
}

func (s *Server) handleLiveHero(w http.ResponseWriter, r *http.Request) {
	snap, state, err := s.live.Hero()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, heroStatus{State: state.String(), Device: snap.Device})
}

// handleLiveResize forwards ?width=N to the live hero. The response carries
// the hero's state before the debounce settles.
func (s *Server) handleLiveResize(w http.ResponseWriter, r *http.Request) {
	width, err := strconv.Atoi(r.URL.Query().Get("width"))
	if err != nil || width <= 0 {
		http.Error(w, "width must be a positive integer", http.StatusBadRequest)
		return
	}
	snap, state, err := s.live.Resize(width)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusAccepted, heroStatus{State: state.String(), Device: snap.Device})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the live-reload hub.
func (s *Server) Hub() *Hub { return s.hub }

// Rebuild regenerates the site and notifies reload clients.
func (s *Server) Rebuild(ctx context.Context) error {
	if _, err := s.gen.Generate(ctx); err != nil {
		return err
	}
	s.hub.Broadcast()
	return nil
}

// Start begins listening on the configured port. With open set, the site
// is opened in the default browser.
func (s *Server) Start(open bool) error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if open {
		go openBrowser(fmt.Sprintf("http://localhost:%d", s.cfg.Port))
	}
	s.logger.Info("folio dev server listening", "addr", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server, giving in-flight requests at
// most ShutdownTimeout to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	s.live.Close()
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
