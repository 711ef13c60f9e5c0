package local

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botanica/internal/plantcontext"
	"botanica/internal/plantcontext/models"
	taxonomy "botanica/internal/taxonomy/models"
	id "botanica/pkg/domain"
)

func snapshot(genus, epithet string, records ...taxonomy.CultivationRecord) taxonomy.SpeciesSnapshot {
	return taxonomy.SpeciesSnapshot{
		Species: taxonomy.NamedSpecies{
			Species:   taxonomy.Species{ID: id.SpeciesID(uuid.New()), SpecificEpithet: epithet, Authority: "L."},
			GenusName: genus,
		},
		Records: records,
	}
}

func TestRecommend_WithRecords(t *testing.T) {
	notes := "Lower leaves show nutrient deficiency"
	snap := snapshot("Rosa", "canina", taxonomy.CultivationRecord{
		GrowthStage: taxonomy.GrowthStageVegetative,
		Notes:       &notes,
		RecordedAt:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	q := models.Query{PlantID: snap.Species.ID, Query: "Species: Rosa canina - is it overwatered?"}

	resp, err := New().Recommend(context.Background(), q, snap)
	require.NoError(t, err)

	assert.Equal(t, "Species: Rosa canina\nAuthority: L.\nCurrent stage: Vegetative\nNotes: Lower leaves show nutrient deficiency", resp.Context)
	assert.Equal(t, []string{"Consider adjusting nutrient levels", "Review watering schedule"}, resp.Recommendations)
	assert.InDelta(t, 0.5, resp.ConfidenceScore, 1e-9)
	require.Len(t, resp.RelevantDocuments, 1)
	assert.Equal(t, "Rosa canina", resp.RelevantDocuments[0].Title)
	assert.Equal(t, "local", resp.RelevantDocuments[0].Source)
	assert.NoError(t, plantcontext.ValidateResponse(*resp))
}

func TestRecommend_WithoutRecords(t *testing.T) {
	snap := snapshot("Rosa", "canina")
	q := models.Query{PlantID: snap.Species.ID, Query: "Species: Rosa canina - general care"}

	resp, err := New().Recommend(context.Background(), q, snap)
	require.NoError(t, err)

	assert.InDelta(t, 0.1, resp.ConfidenceScore, 1e-9)
	assert.Equal(t, []string{plantcontext.FallbackRecommendation}, resp.Recommendations)
}

func TestRecommend_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Recommend(ctx, models.Query{}, snapshot("Rosa", "canina"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIndexAndSearch(t *testing.T) {
	ctx := context.Background()
	src := New()
	rose := snapshot("Rosa", "canina")
	welwitschia := snapshot("Welwitschia", "mirabilis")

	require.NoError(t, src.Index(ctx, welwitschia))
	require.NoError(t, src.Index(ctx, rose))

	got, err := src.Search(ctx, "ROSA")
	require.NoError(t, err)
	assert.Equal(t, "Species: Rosa canina\nAuthority: L.\nRecords: 0", got)

	got, err = src.Search(ctx, "authority")
	require.NoError(t, err)
	assert.Equal(t, "Species: Rosa canina\nAuthority: L.\nRecords: 0\n\nSpecies: Welwitschia mirabilis\nAuthority: L.\nRecords: 0", got)

	got, err = src.Search(ctx, "rosa mirabilis")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIndex_ReplacesPreviousDocument(t *testing.T) {
	ctx := context.Background()
	src := New()
	snap := snapshot("Rosa", "canina")
	require.NoError(t, src.Index(ctx, snap))

	snap.Records = []taxonomy.CultivationRecord{{GrowthStage: taxonomy.GrowthStageFlowering}}
	require.NoError(t, src.Index(ctx, snap))

	got, err := src.Search(ctx, "canina")
	require.NoError(t, err)
	assert.Equal(t, "Species: Rosa canina\nAuthority: L.\nCurrent stage: Flowering\nRecords: 1", got)
}

func TestSnippet_TruncatesRunes(t *testing.T) {
	long := make([]rune, 250)
	for i := range long {
		long[i] = 'é'
	}
	assert.Len(t, []rune(snippet(string(long))), 200)
	assert.Equal(t, "short", snippet("short"))
}
