package datasource

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/bowl-pool/internal/models"
)

const (
	cacheKeyBowls   = "bowls"
	cacheKeyFactors = "team_factors"
	cacheKeyPicks   = "picks"
)

// CachedSource wraps a RecordSource with a TTL cache so repeated runs
// against the same worksheet don't refetch within the cache window.
type CachedSource struct {
	inner  RecordSource
	cache  *gocache.Cache
	logger *logrus.Logger
}

// NewCachedSource wraps the given source with a TTL cache
func NewCachedSource(inner RecordSource, ttl time.Duration, logger *logrus.Logger) *CachedSource {
	if logger == nil {
		logger = logrus.New()
	}

	return &CachedSource{
		inner:  inner,
		cache:  gocache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// Name returns the wrapped source's name
func (s *CachedSource) Name() string {
	return s.inner.Name()
}

// FetchBowls returns cached bowls or fetches through to the inner source
func (s *CachedSource) FetchBowls(ctx context.Context) ([]models.Bowl, error) {
	if cached, found := s.cache.Get(cacheKeyBowls); found {
		s.logger.WithField("key", cacheKeyBowls).Debug("Record cache hit")
		return cached.([]models.Bowl), nil
	}

	bowls, err := s.inner.FetchBowls(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(cacheKeyBowls, bowls)
	return bowls, nil
}

// FetchTeamFactors returns cached factors or fetches through to the inner source
func (s *CachedSource) FetchTeamFactors(ctx context.Context) ([]models.TeamFactor, error) {
	if cached, found := s.cache.Get(cacheKeyFactors); found {
		s.logger.WithField("key", cacheKeyFactors).Debug("Record cache hit")
		return cached.([]models.TeamFactor), nil
	}

	factors, err := s.inner.FetchTeamFactors(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(cacheKeyFactors, factors)
	return factors, nil
}

// FetchPicks returns cached picks or fetches through to the inner source
func (s *CachedSource) FetchPicks(ctx context.Context) ([]models.Pick, error) {
	if cached, found := s.cache.Get(cacheKeyPicks); found {
		s.logger.WithField("key", cacheKeyPicks).Debug("Record cache hit")
		return cached.([]models.Pick), nil
	}

	picks, err := s.inner.FetchPicks(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(cacheKeyPicks, picks)
	return picks, nil
}

// Invalidate drops all cached record sets
func (s *CachedSource) Invalidate() {
	s.cache.Flush()
}
