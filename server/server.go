// Package server exposes the operator REST surface: autopilot controls,
// the review queue, connections, content browsing and dedup memory.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/postpilot/postpilot/pkg/domain"
	"github.com/postpilot/postpilot/pkg/memory"
	"github.com/postpilot/postpilot/pkg/scheduler"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/autopilot.go -pkg mocks -skip-ensure -fmt goimports . AutoPilot
//go:generate moq -out mocks/review_queue.go -pkg mocks -skip-ensure -fmt goimports . ReviewQueue
//go:generate moq -out mocks/content_store.go -pkg mocks -skip-ensure -fmt goimports . ContentStore
//go:generate moq -out mocks/connection_store.go -pkg mocks -skip-ensure -fmt goimports . ConnectionStore
//go:generate moq -out mocks/dispatch_stats.go -pkg mocks -skip-ensure -fmt goimports . DispatchStats
//go:generate moq -out mocks/memory_manager.go -pkg mocks -skip-ensure -fmt goimports . MemoryManager
//go:generate moq -out mocks/state_store.go -pkg mocks -skip-ensure -fmt goimports . StateStore

// Server represents HTTP server instance
type Server struct {
	config      ConfigProvider
	autopilot   AutoPilot
	queue       ReviewQueue
	content     ContentStore
	connections ConnectionStore
	dispatch    DispatchStats
	memory      MemoryManager
	state       StateStore
	version     string
	debug       bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// AutoPilot controls the recurring generation schedule
type AutoPilot interface {
	Enable(ctx context.Context, intervalHours int) error
	Disable(ctx context.Context) error
	Configure(ctx context.Context, s scheduler.Settings) error
	GenerateNow(ctx context.Context) error
	Status() scheduler.AutoPilotStatus
}

// ReviewQueue is the human approval surface
type ReviewQueue interface {
	List(ctx context.Context) ([]*domain.ContentItem, error)
	Approve(ctx context.Context, id string, scheduledTime *time.Time) error
	Reject(ctx context.Context, id string) error
	ApproveAll(ctx context.Context) (int, error)
	RejectAll(ctx context.Context) (int, error)
	Edit(ctx context.Context, id string, patch domain.ContentPatch) (*domain.ContentItem, error)
	Regenerate(ctx context.Context, id string) (*domain.ContentItem, error)
}

// ContentStore is the content browsing surface
type ContentStore interface {
	ListItems(ctx context.Context, status domain.Status, limit int) ([]*domain.ContentItem, error)
	GetItem(ctx context.Context, id string) (*domain.ContentItem, error)
	DeleteItem(ctx context.Context, id string) error
}

// ConnectionStore manages platform connections
type ConnectionStore interface {
	Upsert(ctx context.Context, conn *domain.Connection) error
	Get(ctx context.Context, platform domain.Platform) (*domain.Connection, error)
	All(ctx context.Context) ([]*domain.Connection, error)
}

// DispatchStats reports publish dispatcher counters
type DispatchStats interface {
	Stats() scheduler.DispatcherStats
}

// MemoryManager is the dedup memory maintenance surface
type MemoryManager interface {
	Clear(category memory.Category)
	ClearAll()
	Snapshot() ([]byte, error)
}

// StateStore persists namespaced state blobs
type StateStore interface {
	Set(ctx context.Context, namespace string, value []byte) error
}

// Config holds server dependencies
type Config struct {
	Config      ConfigProvider
	AutoPilot   AutoPilot
	Queue       ReviewQueue
	Content     ContentStore
	Connections ConnectionStore
	Dispatch    DispatchStats
	Memory      MemoryManager
	State       StateStore
	Version     string
	Debug       bool
}

// New initializes a new server instance
func New(cfg Config) *Server {
	s := &Server{
		config:      cfg.Config,
		autopilot:   cfg.AutoPilot,
		queue:       cfg.Queue,
		content:     cfg.Content,
		connections: cfg.Connections,
		dispatch:    cfg.Dispatch,
		memory:      cfg.Memory,
		state:       cfg.State,
		version:     cfg.Version,
		debug:       cfg.Debug,
		router:      routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("postpilot", "postpilot", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /autopilot/enable", s.autopilotEnableHandler)
		r.HandleFunc("POST /autopilot/disable", s.autopilotDisableHandler)
		r.HandleFunc("PUT /autopilot/config", s.autopilotConfigHandler)
		r.HandleFunc("POST /autopilot/generate", s.generateNowHandler)

		r.HandleFunc("GET /connections", s.connectionsListHandler)
		r.HandleFunc("POST /connections/{platform}", s.connectHandler)
		r.HandleFunc("DELETE /connections/{platform}", s.disconnectHandler)

		r.HandleFunc("GET /review", s.reviewListHandler)
		r.HandleFunc("POST /review/approve-all", s.approveAllHandler)
		r.HandleFunc("POST /review/reject-all", s.rejectAllHandler)
		r.HandleFunc("POST /review/{id}/approve", s.approveHandler)
		r.HandleFunc("POST /review/{id}/reject", s.rejectHandler)
		r.HandleFunc("POST /review/{id}/regenerate", s.regenerateHandler)
		r.HandleFunc("PATCH /review/{id}", s.editHandler)

		r.HandleFunc("GET /content", s.contentListHandler)
		r.HandleFunc("GET /content/{id}", s.contentGetHandler)
		r.HandleFunc("DELETE /content/{id}", s.contentDeleteHandler)

		r.HandleFunc("DELETE /memory", s.memoryClearAllHandler)
		r.HandleFunc("DELETE /memory/{category}", s.memoryClearHandler)
	})
}

// statusHandler returns the lifecycle status for the operator dashboard
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":    "ok",
		"version":   s.version,
		"time":      time.Now().UTC(),
		"autopilot": s.autopilot.Status(),
		"dispatch":  s.dispatch.Stats(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
