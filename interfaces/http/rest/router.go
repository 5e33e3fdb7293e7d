// Package rest wires the HTTP surface of the service: routing, middleware,
// and handlers.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"knowcore/application/services"
	"knowcore/infrastructure/config"
	"knowcore/interfaces/http/rest/handlers"
	"knowcore/interfaces/http/rest/middleware"
	"knowcore/pkg/observability"
	"knowcore/pkg/ratelimit"
)

// Router creates and configures the HTTP router.
type Router struct {
	cfg       *config.Config
	knowledge *services.KnowledgeService
	graph     *services.GraphService
	limiter   *ratelimit.SlidingWindow
	metrics   *observability.Collector
	logger    *zap.Logger
}

// NewRouter creates a router over the application services.
func NewRouter(
	cfg *config.Config,
	knowledge *services.KnowledgeService,
	graph *services.GraphService,
	limiter *ratelimit.SlidingWindow,
	metrics *observability.Collector,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:       cfg,
		knowledge: knowledge,
		graph:     graph,
		limiter:   limiter,
		metrics:   metrics,
		logger:    logger,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Metrics(rt.metrics))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		// API traffic shares one per-IP budget; health and metrics stay
		// outside it.
		r.Use(middleware.RateLimit(rt.limiter, rt.metrics, rt.logger))

		r.Route("/knowledge", func(r chi.Router) {
			knowledgeHandler := handlers.NewKnowledgeHandler(rt.knowledge, rt.logger)
			r.Post("/", knowledgeHandler.CreateUnit)
			r.Get("/", knowledgeHandler.ListUnits)
			r.Get("/{unitID}", knowledgeHandler.GetUnit)
			r.Put("/{unitID}", knowledgeHandler.UpdateUnit)
			r.Delete("/{unitID}", knowledgeHandler.DeleteUnit)
		})

		r.Route("/graph", func(r chi.Router) {
			graphHandler := handlers.NewGraphHandler(rt.graph, rt.logger)
			r.Post("/links", graphHandler.CreateLink)
			r.Get("/links/{unitID}", graphHandler.GetOutgoingLinks)
			r.Get("/", graphHandler.GetGraph)
		})
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
