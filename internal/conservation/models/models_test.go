package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "botanica/pkg/domain-errors"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
	}{
		{"VU", Vulnerable},
		{"vu", Vulnerable},
		{" NT ", NearThreatened},
		{"Least Concern", LeastConcern},
		{"extinct in the wild", ExtinctInWild},
		{"EX", Extinct},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseCategory("LR/cd")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestCategory_Names(t *testing.T) {
	for _, c := range Categories {
		assert.NotEmpty(t, c.Name(), string(c))
	}
	assert.Equal(t, "Near Threatened", NearThreatened.Name())
}

func TestParsePopulationTrend(t *testing.T) {
	got, err := ParsePopulationTrend("Decreasing")
	require.NoError(t, err)
	assert.Equal(t, TrendDecreasing, got)

	got, err = ParsePopulationTrend("")
	require.NoError(t, err)
	assert.Equal(t, TrendUnknown, got)

	_, err = ParsePopulationTrend("sideways")
	require.Error(t, err)
}

func TestAssessment_JSON(t *testing.T) {
	criteria := "A2acd"
	assessor := "IUCN Species Specialist Group"
	a := Assessment{
		ScientificName:  "Welwitschia mirabilis",
		Category:        NearThreatened,
		Criteria:        &criteria,
		AssessmentDate:  time.Date(2019, 7, 18, 0, 0, 0, 0, time.UTC),
		PopulationTrend: TrendDecreasing,
		Threats:         []string{"Climate change"},
		Assessor:        &assessor,
	}

	raw, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"category":"NT"`)
	assert.Contains(t, string(raw), `"population_trend":"decreasing"`)
	assert.NotContains(t, string(raw), `"reviewer"`)

	var decoded Assessment
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, a, decoded)
}

func TestAssessment_JSONKeepsAbsentAssessorAbsent(t *testing.T) {
	in := `{"scientific_name":"Cannabis sativa","category":"NE","assessment_date":"2024-01-01T00:00:00Z",` +
		`"population_trend":"unknown","threats":[],"conservation_actions":[],"actions_needed":[]}`

	var a Assessment
	require.NoError(t, json.Unmarshal([]byte(in), &a))
	assert.Nil(t, a.Assessor)

	raw, err := json.Marshal(a)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"assessor"`)
	assert.JSONEq(t, in, string(raw))

	empty := ""
	a.Assessor = &empty
	raw, err = json.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"assessor":""`, "an empty assessor stays distinct from an absent one")
}

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "Welwitschia mirabilis", CanonicalName("  Welwitschia \t mirabilis\n"))
	assert.Equal(t, "cannabis sativa", CanonicalName("cannabis sativa"), "case is preserved")
	assert.Equal(t, "", CanonicalName("   "))
}

func TestAssessment_RejectsUnknownCategory(t *testing.T) {
	var a Assessment
	err := json.Unmarshal([]byte(`{"category":"ZZ"}`), &a)
	require.Error(t, err)
}

func TestLookupResultConstructors(t *testing.T) {
	found := Found(Assessment{ScientificName: "Cannabis sativa"})
	assert.Equal(t, OutcomeFound, found.Outcome)
	require.NotNil(t, found.Assessment)

	assert.Nil(t, NotFound().Assessment)
	assert.Equal(t, OutcomeUnavailable, Unavailable().Outcome)
}
