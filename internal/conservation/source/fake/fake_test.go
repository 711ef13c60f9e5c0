package fake

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botanica/internal/conservation/models"
	"botanica/internal/conservation/source/contract"
)

func TestFakeContract(t *testing.T) {
	suite := contract.Suite{
		SourceID: ID,
		Source:   New(),
		Found:    []string{"Cannabis sativa", "Welwitschia mirabilis"},
		Missing:  []string{"Quercus robur", ""},
	}
	suite.Run(t)
}

func TestLookup_CannabisSativa(t *testing.T) {
	res, err := New().Lookup(context.Background(), "Cannabis sativa")
	require.NoError(t, err)
	require.Equal(t, models.OutcomeFound, res.Outcome)

	a := res.Assessment
	assert.Equal(t, models.NotEvaluated, a.Category)
	assert.Nil(t, a.Criteria)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), a.AssessmentDate)
	assert.Equal(t, models.TrendUnknown, a.PopulationTrend)
	assert.Equal(t, []string{"Legal restrictions", "Habitat loss"}, a.Threats)
	assert.Equal(t, []string{"Cultivation programs"}, a.ConservationActions)
	assert.Equal(t, []string{"Legal status review"}, a.ActionsNeeded)
	require.NotNil(t, a.Assessor)
	assert.Equal(t, "Mock Assessment", *a.Assessor)
	assert.Nil(t, a.Reviewer)
}

func TestLookup_WelwitschiaMirabilis(t *testing.T) {
	res, err := New().Lookup(context.Background(), "Welwitschia mirabilis")
	require.NoError(t, err)
	require.Equal(t, models.OutcomeFound, res.Outcome)

	a := res.Assessment
	assert.Equal(t, models.NearThreatened, a.Category)
	require.NotNil(t, a.Criteria)
	assert.Equal(t, "A2acd", *a.Criteria)
	assert.Equal(t, time.Date(2019, 7, 18, 0, 0, 0, 0, time.UTC), a.AssessmentDate)
	assert.Equal(t, models.TrendDecreasing, a.PopulationTrend)
	assert.Equal(t, []string{"Climate change", "Collection"}, a.Threats)
	require.NotNil(t, a.Assessor)
	assert.Equal(t, "IUCN Species Specialist Group", *a.Assessor)
	require.NotNil(t, a.Reviewer)
	assert.Equal(t, "IUCN Red List Unit", *a.Reviewer)
}

func TestLookup_ResultsAreIndependentCopies(t *testing.T) {
	src := New()
	first, err := src.Lookup(context.Background(), "Cannabis sativa")
	require.NoError(t, err)
	first.Assessment.Threats[0] = "mutated"

	second, err := src.Lookup(context.Background(), "Cannabis sativa")
	require.NoError(t, err)
	assert.Equal(t, "Legal restrictions", second.Assessment.Threats[0])
}

func TestLookup_DelayHonoursCancellation(t *testing.T) {
	src := New(WithDelay(time.Second))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := src.Lookup(ctx, "Cannabis sativa")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}
