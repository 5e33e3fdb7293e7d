package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"knowcore/application/ports"
	"knowcore/domain/knowledge"
	"knowcore/pkg/cache"
	"knowcore/pkg/observability"
)

// KnowledgeService manages knowledge units. Reads go cache-aside: a miss
// loads from the repository (deduplicated through singleflight so a burst of
// readers for the same cold key produces one load) and repopulates the cache.
type KnowledgeService struct {
	repo    ports.KnowledgeRepository
	cache   *cache.Cache[*knowledge.Unit]
	group   singleflight.Group
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewKnowledgeService creates a knowledge service.
func NewKnowledgeService(
	repo ports.KnowledgeRepository,
	unitCache *cache.Cache[*knowledge.Unit],
	metrics *observability.Collector,
	logger *zap.Logger,
) *KnowledgeService {
	return &KnowledgeService{
		repo:    repo,
		cache:   unitCache,
		metrics: metrics,
		logger:  logger,
	}
}

// CreateUnitInput carries the caller-supplied fields for a new unit.
type CreateUnitInput struct {
	AuthorID    string
	ContentText string
	SceneURL    string
	Tags        []string
}

// Create builds, stores, and caches a new knowledge unit.
func (s *KnowledgeService) Create(ctx context.Context, input CreateUnitInput) (*knowledge.Unit, error) {
	unit, err := knowledge.NewUnit(input.AuthorID, input.ContentText, input.Tags)
	if err != nil {
		return nil, err
	}
	unit.SceneURL = input.SceneURL

	if err := s.repo.Save(ctx, unit); err != nil {
		return nil, err
	}
	s.cache.Set(unit.ID, unit.Clone())

	s.logger.Info("knowledge unit created",
		zap.String("unitID", unit.ID),
		zap.String("authorID", unit.AuthorID),
		zap.Int("tags", len(unit.Tags)),
	)
	return unit, nil
}

// Get returns the unit with the given ID, serving from cache when possible.
func (s *KnowledgeService) Get(ctx context.Context, id string) (*knowledge.Unit, error) {
	if unit, ok := s.cache.Get(id); ok {
		s.metrics.CacheHits.Inc()
		return unit.Clone(), nil
	}
	s.metrics.CacheMisses.Inc()

	v, err, _ := s.group.Do(id, func() (interface{}, error) {
		unit, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		s.cache.Set(id, unit)
		return unit, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*knowledge.Unit).Clone(), nil
}

// List returns every stored unit. The listing always reads the repository:
// the cache only accelerates single-unit lookups.
func (s *KnowledgeService) List(ctx context.Context) ([]*knowledge.Unit, error) {
	return s.repo.FindAll(ctx)
}

// Update replaces the content of an existing unit, recording the previous
// state in its version history and invalidating the cached copy.
func (s *KnowledgeService) Update(ctx context.Context, id, contentText string, tags []string) (*knowledge.Unit, error) {
	unit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unit.VersionHistory = append(unit.VersionHistory, unit.ID+"@"+unit.UpdatedAt.Format(time.RFC3339))
	if contentText != "" {
		unit.ContentText = contentText
	}
	if tags != nil {
		unit.Tags = tags
	}
	unit.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, unit); err != nil {
		return nil, err
	}
	s.cache.Delete(id)

	s.logger.Info("knowledge unit updated", zap.String("unitID", id))
	return unit, nil
}

// Delete removes the unit and drops it from the cache.
func (s *KnowledgeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(id)

	s.logger.Info("knowledge unit deleted", zap.String("unitID", id))
	return nil
}
