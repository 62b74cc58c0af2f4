// Package web is the HTTP request dispatcher: a JSON API mapped onto the
// drawing API, plus the embedded control page and a framebuffer preview.
package web

import (
	"context"
	"crypto/subtle"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"epdctl/internal/battery"
	"epdctl/internal/capture"
	"epdctl/internal/config"
	"epdctl/internal/display"
	appLog "epdctl/internal/log"
)

// Request body limits.
const (
	maxJSONBody  = 64 << 10
	maxImageBody = 16 << 20
)

const batteryCacheTTL = 30 * time.Second

//go:embed static
var embeddedStatic embed.FS

// Options are the collaborators of a Server. Only Guard is required.
type Options struct {
	Guard *display.Guard

	// BasicAuth, if both fields are set, protects everything except /health.
	BasicAuth *config.BasicAuthConfig

	// Battery feeds /api/status. Nil reports no battery.
	Battery battery.Reader

	// Capturer serves /api/capture. Nil disables the endpoint.
	Capturer capture.Capturer

	// Network is reported, redacted, on /api/status.
	Network config.Credentials
}

// Server dispatches HTTP requests onto one display.
type Server struct {
	opts Options
	mux  *http.ServeMux

	batteryMu    sync.Mutex
	batteryCache *batteryCache
}

// batteryCache holds the last known battery status and its timestamp.
type batteryCache struct {
	status    battery.Status
	updatedAt time.Time
}

// NewServer constructs a Server.
func NewServer(opts Options) *Server {
	if opts.Battery == nil {
		opts.Battery = battery.Static{}
	}
	s := &Server{
		opts: opts,
		mux:  http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// Handler returns the root handler, wrapped with basic auth when configured.
func (s *Server) Handler() http.Handler {
	h := http.Handler(s.mux)
	if s.basicAuthEnabled() {
		appLog.Info("HTTP basic auth enabled")
		h = s.basicAuthMiddleware(h)
	}
	return logRequests(h)
}

func (s *Server) basicAuthEnabled() bool {
	a := s.opts.BasicAuth
	return a != nil && a.Username != "" && a.Password != ""
}

// basicAuthMiddleware wraps all handlers except /health with HTTP Basic Auth.
func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	username := s.opts.BasicAuth.Username
	password := s.opts.BasicAuth.Password

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}
		u, p, ok := r.BasicAuth()
		if !ok || !secureCompare(u, username) || !secureCompare(p, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="epdctl", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// secureCompare compares two strings in constant time.
func secureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		if rec.status >= http.StatusBadRequest {
			appLog.Warn("http request failed", "method", r.Method, "path", r.URL.Path, "status", rec.status)
			return
		}
		appLog.Debug("http request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "took", time.Since(start))
	})
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		appLog.Info("starting HTTP server", "listen", "http://"+addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /preview.png", s.handlePreview)
	s.mux.HandleFunc("GET /api/status", s.handleStatus)

	s.mux.HandleFunc("POST /api/text", s.handleText)
	s.mux.HandleFunc("POST /api/multi", s.handleMulti)
	s.mux.HandleFunc("POST /api/clear", s.handleClear)
	s.mux.HandleFunc("POST /api/rect", s.handleRect)
	s.mux.HandleFunc("POST /api/orientation", s.handleOrientation)
	s.mux.HandleFunc("POST /api/partial", s.handlePartial)
	s.mux.HandleFunc("POST /api/partial/enter", s.handlePartialEnter)
	s.mux.HandleFunc("POST /api/partial/exit", s.handlePartialExit)
	s.mux.HandleFunc("POST /api/image", s.handleImage)
	s.mux.HandleFunc("POST /api/capture", s.handleCapture)

	s.mux.HandleFunc("/api/", func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	s.mux.Handle("/", s.staticFileServer())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// staticFileServer serves the embedded control page.
func (s *Server) staticFileServer() http.Handler {
	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		appLog.Error("failed to initialize embedded static filesystem", err)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "static UI not available", http.StatusServiceUnavailable)
		})
	}
	return http.FileServer(http.FS(sub))
}

// batteryStatus returns the cached battery status, reading the gauge at
// most once per batteryCacheTTL.
func (s *Server) batteryStatus(ctx context.Context) battery.Status {
	s.batteryMu.Lock()
	defer s.batteryMu.Unlock()
	if bc := s.batteryCache; bc != nil && time.Since(bc.updatedAt) < batteryCacheTTL {
		return bc.status
	}
	st, err := s.opts.Battery.Read(ctx)
	if err != nil {
		appLog.Error("battery read failed", err)
		st = battery.Status{}
	}
	s.batteryCache = &batteryCache{status: st, updatedAt: time.Now()}
	return st
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		appLog.Error("failed to write JSON response", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Warning carries a degraded-but-completed refresh, e.g. a busy timeout.
	Warning string `json:"warning,omitempty"`
}
