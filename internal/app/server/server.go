package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrmlite/internal/domain/attendance"
	"hrmlite/internal/domain/dashboard"
	"hrmlite/internal/domain/employee"
	"hrmlite/internal/domain/reports"
	"hrmlite/internal/platform/config"
	"hrmlite/internal/platform/db"
	attendancehandler "hrmlite/internal/transport/http/handlers/attendance"
	dashboardhandler "hrmlite/internal/transport/http/handlers/dashboard"
	employeehandler "hrmlite/internal/transport/http/handlers/employee"
	reportshandler "hrmlite/internal/transport/http/handlers/reports"
	"hrmlite/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Pool   *pgxpool.Pool
	Router http.Handler
}

// New connects, migrates, optionally seeds, and builds the router.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, 100); err != nil {
			pool.Close()
			return nil, err
		}
	}

	empStore := employee.NewStore(pool)
	attStore := attendance.NewStore(pool)

	empService := employee.NewService(empStore)
	attService := attendance.NewService(attStore, empStore)
	dashService := dashboard.NewService(dashboard.NewStore(pool))
	reportService := reports.NewService(attService)

	return &App{
		Config: cfg,
		Pool:   pool,
		Router: NewRouter(cfg, pool, empService, attService, dashService, reportService),
	}, nil
}

// NewRouter assembles the middleware chain and the /api/v1 routes.
func NewRouter(
	cfg config.Config,
	pool *pgxpool.Pool,
	empService *employee.Service,
	attService *attendance.Service,
	dashService *dashboard.Service,
	reportService *reports.Service,
) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.CORS(cfg.CORSOrigin))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if pool == nil {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		employeehandler.NewHandler(empService).RegisterRoutes(r)
		attendancehandler.NewHandler(attService).RegisterRoutes(r)
		dashboardhandler.NewHandler(dashService).RegisterRoutes(r)
		reportshandler.NewHandler(reportService).RegisterRoutes(r)
	})

	return router
}

func (a *App) Close() {
	if a.Pool != nil {
		a.Pool.Close()
	}
}

func Run() {
	cfg := config.Load()

	ctx := context.Background()
	app, err := New(ctx, cfg)
	if err != nil {
		log.Fatalf("server init failed: %v", err)
	}
	defer app.Close()

	log.Printf("HRMS Lite server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
