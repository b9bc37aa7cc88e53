package main

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/diewo77/gestioneau/httpx"
	"github.com/diewo77/gestioneau/internal/catalog"
	"github.com/diewo77/gestioneau/internal/handlers"
	"github.com/diewo77/gestioneau/internal/metrics"
	"github.com/diewo77/gestioneau/internal/schema"
	"github.com/diewo77/gestioneau/internal/search"
	"github.com/diewo77/gestioneau/internal/services"
)

const requestIDHeader = "X-Request-ID"

// App is the main application handler that sets up all routes.
type App struct {
	mux        *http.ServeMux
	db         *gorm.DB
	search     *search.Client
	metrics    *metrics.Metrics
	log        *zap.Logger
	reindexers []services.Reindexer
}

// NewApp creates a new application with all routes configured.
func NewApp(db *gorm.DB, sc *search.Client, m *metrics.Metrics, log *zap.Logger) *App {
	app := &App{
		mux:     http.NewServeMux(),
		db:      db,
		search:  sc.WithObserver(m),
		metrics: m,
		log:     log,
	}
	app.setupRoutes()
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handler := withRequestID(withRecover(a.log, withLogging(a.log, a.metrics.Middleware(a.mux))))
	handler.ServeHTTP(w, r)
}

// Reindexers lists one entry per concept, in catalog order.
func (a *App) Reindexers() []services.Reindexer { return a.reindexers }

// mount serves concept c under /api/{path} and keeps its reindexer.
func mount[E, D any](a *App, c *schema.Concept[E, D]) {
	svc := services.New(a.db, c, a.search, a.log)
	handlers.NewResource(catalog.Path(c), svc, a.log).Register(a.mux)
	a.reindexers = append(a.reindexers, svc)
}

func (a *App) setupRoutes() {
	a.mux.HandleFunc("GET /health", a.health)
	a.mux.HandleFunc("GET /healthz", a.healthz)
	a.mux.Handle("GET /metrics", a.metrics.Handler())

	// Lookup tables
	mount(a, catalog.Region)
	mount(a, catalog.TypeCommune)
	mount(a, catalog.TypeHabitation)
	mount(a, catalog.NatureOuvrage)
	mount(a, catalog.ModeEvacExcreta)
	mount(a, catalog.ModeEvacuationEauUsee)
	mount(a, catalog.SourceApprovEp)
	mount(a, catalog.Macon)
	mount(a, catalog.Prefabricant)
	mount(a, catalog.Annee)

	// Territory
	mount(a, catalog.Province)
	mount(a, catalog.Commune)
	mount(a, catalog.Localite)
	mount(a, catalog.Secteur)
	mount(a, catalog.Section)
	mount(a, catalog.Lot)
	mount(a, catalog.Parcelle)

	// Organisation and follow-up
	mount(a, catalog.DirectionRegionale)
	mount(a, catalog.CentreRegroupement)
	mount(a, catalog.Centre)
	mount(a, catalog.Prevision)
	mount(a, catalog.FicheSuiviOuvrage)
}

func (a *App) health(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// healthz also checks that the database answers.
func (a *App) healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "database": err.Error()})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok", "database": "ok"})
}

type ctxKey struct{}

// requestID returns the id attached by withRequestID, if any.
func requestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// withRequestID keeps a caller supplied X-Request-ID or generates one, and
// echoes it on the response.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (s *statusWriter) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// withLogging adds request logging middleware.
func withLogging(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", requestID(r.Context())),
		)
	})
}

// withRecover turns a handler panic into a 500.
func withRecover(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic serving request",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
					zap.String("request_id", requestID(r.Context())),
					zap.Stack("stack"),
				)
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
