package server

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"srms/internal/domain/auth"
	"srms/internal/domain/staff"
	"srms/internal/platform/config"
	"srms/internal/platform/store"
	authhandler "srms/internal/transport/http/handlers/auth"
	dashboardhandler "srms/internal/transport/http/handlers/dashboard"
	reportshandler "srms/internal/transport/http/handlers/reports"
	staffhandler "srms/internal/transport/http/handlers/staff"
	"srms/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	kv, err := store.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("store open failed: %v", err)
	}
	defer kv.Close()

	gate := auth.NewGate(kv)
	if err := gate.Initialize(); err != nil {
		log.Fatalf("auth initialization failed: %v", err)
	}

	repo := staff.NewRepository(kv)
	if cfg.RunSeed {
		if err := repo.Initialize(); err != nil {
			log.Fatalf("staff seed failed: %v", err)
		}
	}

	secret := cfg.SessionSecret
	if secret == "" {
		// Development fallback; Validate rejects an empty secret in production.
		secret = "srms-dev-secret"
	}

	router := NewRouter(cfg, secret, gate, repo)

	log.Printf("SRMS server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// NewRouter assembles the admin API and the static console frontend.
func NewRouter(cfg config.Config, secret string, gate *auth.Gate, repo *staff.Repository) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(gate, secret)
		authHandler.RegisterPublicRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(secret, gate))

			authHandler.RegisterProtectedRoutes(r)
			staffhandler.NewHandler(repo, cfg.DefaultPageSize).RegisterRoutes(r)
			dashboardhandler.NewHandler(repo).RegisterRoutes(r)
			reportshandler.NewHandler(repo).RegisterRoutes(r)
		})
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	return router
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
