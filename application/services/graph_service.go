package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	apperrors "knowcore/pkg/errors"
	"knowcore/pkg/graph"
	"knowcore/pkg/observability"
)

// GraphService manages the weighted relation graph between knowledge units.
// It translates the graph's rejections into application errors the REST
// layer knows how to map.
type GraphService struct {
	graph   *graph.Graph
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewGraphService creates a graph service.
func NewGraphService(g *graph.Graph, metrics *observability.Collector, logger *zap.Logger) *GraphService {
	return &GraphService{
		graph:   g,
		metrics: metrics,
		logger:  logger,
	}
}

// Link creates or updates a weighted directed link between two units.
func (s *GraphService) Link(ctx context.Context, fromID, toID string, weight float64) error {
	if fromID == "" || toID == "" {
		return apperrors.Validation("from_id and to_id are required")
	}

	err := s.graph.AddOrUpdateLink(fromID, toID, weight)
	switch {
	case errors.Is(err, graph.ErrInvalidWeight):
		return apperrors.Validation("link weight must be between 0.0 and 1.0, got %v", weight)
	case errors.Is(err, graph.ErrSelfLoop):
		return apperrors.Validation("cannot link a knowledge unit to itself")
	case err != nil:
		return apperrors.Internal("failed to upsert link", err)
	}

	s.metrics.LinksUpserted.Inc()
	s.logger.Info("graph link upserted",
		zap.String("fromID", fromID),
		zap.String("toID", toID),
		zap.Float64("weight", weight),
	)
	return nil
}

// Outgoing returns the links whose source is fromID. An unknown identifier
// yields an empty slice, never an error.
func (s *GraphService) Outgoing(ctx context.Context, fromID string) []graph.Link {
	return s.graph.Outgoing(fromID)
}

// Snapshot returns a point-in-time copy of the whole graph.
func (s *GraphService) Snapshot(ctx context.Context) map[string][]graph.Link {
	return s.graph.Snapshot()
}
