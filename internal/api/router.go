package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/vvka-141/movieapi/docs" // registers the Swagger document
	"github.com/vvka-141/movieapi/internal/movies"
)

// RouterConfig configures cross-cutting middleware.
type RouterConfig struct {
	CORSAllowedOrigins []string
}

// NewRouter wires every route over repo.
func NewRouter(repo movies.Repository, log zerolog.Logger, cfg RouterConfig) http.Handler {
	h := NewHandlers(repo)
	r := chi.NewRouter()

	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r.Use(RequestLogger(log))
	r.Use(recoverer)
	r.Use(PrometheusMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         86400,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/", h.Index)
	r.Route("/movies", func(r chi.Router) {
		r.Get("/", h.ListMovies)
		r.Post("/", h.CreateMovie)
		r.Get("/{id}", h.GetMovie)
		r.Put("/{id}", h.UpdateMovie)
		r.Delete("/{id}", h.DeleteMovie)
	})

	r.Get("/spec", h.Spec)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/spec"),
		httpSwagger.DocExpansion("list"),
	))
	r.Handle("/metrics", promhttp.Handler())

	return r
}
