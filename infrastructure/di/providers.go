// Package di wires the application together. Every shared-state component is
// constructed exactly once here and handed to its consumers by reference;
// nothing in the service reaches for package-level singletons.
package di

import (
	"go.uber.org/zap"

	"knowcore/application/ports"
	"knowcore/application/services"
	"knowcore/domain/knowledge"
	"knowcore/infrastructure/config"
	"knowcore/infrastructure/persistence/memory"
	"knowcore/pkg/cache"
	"knowcore/pkg/graph"
	"knowcore/pkg/observability"
	"knowcore/pkg/ratelimit"
)

// ProvideLogger creates the service logger.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideMetrics creates the Prometheus collector.
func ProvideMetrics(cfg *config.Config) *observability.Collector {
	return observability.NewCollector(cfg.MetricsNamespace)
}

// ProvideUnitCache creates the knowledge-unit read cache. Capacity evictions
// feed the eviction counter.
func ProvideUnitCache(cfg *config.Config, metrics *observability.Collector) *cache.Cache[*knowledge.Unit] {
	return cache.New[*knowledge.Unit](
		cfg.CacheMaxSize,
		cfg.CacheDefaultTTL,
		cache.WithOnEvict(func(string, *knowledge.Unit) {
			metrics.CacheEvictions.Inc()
		}),
	)
}

// ProvideGraph creates the relation graph.
func ProvideGraph() *graph.Graph {
	return graph.New()
}

// ProvideRateLimiter creates the per-client sliding-window limiter.
func ProvideRateLimiter(cfg *config.Config) *ratelimit.SlidingWindow {
	return ratelimit.NewSlidingWindow(cfg.RateLimitMaxEvents, cfg.RateLimitWindow)
}

// ProvideKnowledgeRepository creates the in-memory knowledge store.
func ProvideKnowledgeRepository() ports.KnowledgeRepository {
	return memory.NewKnowledgeStore()
}

// ProvideKnowledgeService creates the knowledge service.
func ProvideKnowledgeService(
	repo ports.KnowledgeRepository,
	unitCache *cache.Cache[*knowledge.Unit],
	metrics *observability.Collector,
	logger *zap.Logger,
) *services.KnowledgeService {
	return services.NewKnowledgeService(repo, unitCache, metrics, logger)
}

// ProvideGraphService creates the graph service.
func ProvideGraphService(
	g *graph.Graph,
	metrics *observability.Collector,
	logger *zap.Logger,
) *services.GraphService {
	return services.NewGraphService(g, metrics, logger)
}
