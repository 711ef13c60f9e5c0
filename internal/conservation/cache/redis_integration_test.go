//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"botanica/internal/conservation/cache"
	"botanica/internal/conservation/models"
	"botanica/pkg/platform/sentinel"
	"botanica/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *cache.Redis
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.cache = cache.NewRedis(s.redis.Client.Client, time.Hour)
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisCacheSuite) TestRoundTrip() {
	ctx := context.Background()
	criteria := "A2acd"
	assessor := "IUCN Species Specialist Group"
	a := models.Assessment{
		ScientificName:  "Welwitschia mirabilis",
		Category:        models.NearThreatened,
		Criteria:        &criteria,
		AssessmentDate:  time.Date(2019, 7, 18, 0, 0, 0, 0, time.UTC),
		PopulationTrend: models.TrendDecreasing,
		Threats:         []string{"Climate change", "Collection"},
		Assessor:        &assessor,
	}
	s.Require().NoError(s.cache.Set(ctx, a))

	got, err := s.cache.Get(ctx, " Welwitschia  mirabilis ")
	s.Require().NoError(err)
	s.Equal(a, *got)

	ttl, err := s.redis.Client.TTL(ctx, "conservation:assessment:Welwitschia mirabilis").Result()
	s.Require().NoError(err)
	s.Greater(ttl, 59*time.Minute)
}

func (s *RedisCacheSuite) TestMissIsNotFound() {
	_, err := s.cache.Get(context.Background(), "Quercus robur")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisCacheSuite) TestDelete() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, models.Assessment{ScientificName: "Cannabis sativa", Category: models.NotEvaluated}))
	s.Require().NoError(s.cache.Delete(ctx, "Cannabis sativa"))

	_, err := s.cache.Get(ctx, "Cannabis sativa")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisCacheSuite) TestClientHealth() {
	s.NoError(s.redis.Client.Health(context.Background()))
}
