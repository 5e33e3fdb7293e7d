//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"knowcore/infrastructure/config"
)

// SuperSet is the main provider set containing all providers.
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideMetrics,
	ProvideUnitCache,
	ProvideGraph,
	ProvideRateLimiter,
	ProvideKnowledgeRepository,
	ProvideKnowledgeService,
	ProvideGraphService,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container.
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
