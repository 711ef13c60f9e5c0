//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"botanica/internal/conservation/models"
	"botanica/internal/conservation/store"
	"botanica/pkg/platform/sentinel"
	"botanica/pkg/platform/tx"
	"botanica/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Postgres
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "conservation_assessments"))
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	criteria := "A2acd"
	assessor := "IUCN Species Specialist Group"
	reviewer := "IUCN Red List Unit"
	a := models.Assessment{
		ScientificName:      "Welwitschia mirabilis",
		Category:            models.NearThreatened,
		Criteria:            &criteria,
		AssessmentDate:      time.Date(2019, 7, 18, 0, 0, 0, 0, time.UTC),
		PopulationTrend:     models.TrendDecreasing,
		Threats:             []string{"Climate change", "Collection"},
		ConservationActions: []string{"Protected areas"},
		ActionsNeeded:       []string{"Population monitoring"},
		Assessor:            &assessor,
		Reviewer:            &reviewer,
	}
	fetched := time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC)
	s.Require().NoError(s.store.Upsert(ctx, a, fetched))

	snap, err := s.store.Latest(ctx, " Welwitschia  mirabilis ")
	s.Require().NoError(err)
	s.Equal(a, snap.Assessment)
	s.True(fetched.Equal(snap.FetchedAt))

	_, err = s.store.Latest(ctx, "WELWITSCHIA MIRABILIS")
	s.ErrorIs(err, sentinel.ErrNotFound, "case is significant")
}

func (s *PostgresStoreSuite) TestEmptyListsAndNulls() {
	ctx := context.Background()
	a := models.Assessment{
		ScientificName:  "Cannabis sativa",
		Category:        models.NotEvaluated,
		AssessmentDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PopulationTrend: models.TrendUnknown,
	}
	s.Require().NoError(s.store.Upsert(ctx, a, time.Now()))

	snap, err := s.store.Latest(ctx, "Cannabis sativa")
	s.Require().NoError(err)
	s.Nil(snap.Assessment.Criteria)
	s.Nil(snap.Assessment.Reviewer)
	s.Empty(snap.Assessment.Threats)
	s.Nil(snap.Assessment.Assessor)
}

func (s *PostgresStoreSuite) TestNewerAssessmentWins() {
	ctx := context.Background()
	older := models.Assessment{ScientificName: "Abies nebrodensis", Category: models.Endangered,
		AssessmentDate: time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC), PopulationTrend: models.TrendStable}
	newer := older
	newer.Category = models.CriticallyEndangered
	newer.AssessmentDate = time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)

	s.Require().NoError(s.store.Upsert(ctx, newer, time.Now()))
	s.Require().NoError(s.store.Upsert(ctx, older, time.Now()))

	snap, err := s.store.Latest(ctx, "Abies nebrodensis")
	s.Require().NoError(err)
	s.Equal(models.CriticallyEndangered, snap.Assessment.Category)

	threatened, err := s.store.ListByCategory(ctx, []models.Category{models.CriticallyEndangered}, 10)
	s.Require().NoError(err)
	s.Len(threatened, 1)
}

func (s *PostgresStoreSuite) TestLatestMissing() {
	_, err := s.store.Latest(context.Background(), "Quercus robur")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestUpsertJoinsContextTransaction() {
	ctx := context.Background()
	a := models.Assessment{
		ScientificName:  "Encephalartos woodii",
		Category:        models.ExtinctInWild,
		AssessmentDate:  time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		PopulationTrend: models.TrendUnknown,
	}

	sqlTx, err := s.postgres.DB.BeginTx(ctx, nil)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Upsert(tx.WithTx(ctx, sqlTx), a, time.Now()))
	s.Require().NoError(sqlTx.Rollback())

	_, err = s.store.Latest(ctx, "Encephalartos woodii")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
