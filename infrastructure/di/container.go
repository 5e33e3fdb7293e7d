package di

import (
	"go.uber.org/zap"

	"knowcore/application/ports"
	"knowcore/application/services"
	"knowcore/domain/knowledge"
	"knowcore/infrastructure/config"
	"knowcore/pkg/cache"
	"knowcore/pkg/graph"
	"knowcore/pkg/observability"
	"knowcore/pkg/ratelimit"
)

// Container holds all application dependencies.
type Container struct {
	Config           *config.Config
	Logger           *zap.Logger
	Metrics          *observability.Collector
	UnitCache        *cache.Cache[*knowledge.Unit]
	Graph            *graph.Graph
	RateLimiter      *ratelimit.SlidingWindow
	KnowledgeRepo    ports.KnowledgeRepository
	KnowledgeService *services.KnowledgeService
	GraphService     *services.GraphService
}
