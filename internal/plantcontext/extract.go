// Package plantcontext turns cultivation data and free text into plant care
// recommendations.
package plantcontext

import (
	"fmt"
	"strings"

	"botanica/internal/plantcontext/models"
	taxonomy "botanica/internal/taxonomy/models"
	dErrors "botanica/pkg/domain-errors"
)

// FallbackRecommendation is returned when text is present but no rule fires.
const FallbackRecommendation = "Review cultivation data and environmental conditions."

type rule struct {
	matches        func(text string) bool
	recommendation string
}

func allOf(words ...string) func(string) bool {
	return func(text string) bool {
		for _, w := range words {
			if !strings.Contains(text, w) {
				return false
			}
		}
		return true
	}
}

func anyOf(words ...string) func(string) bool {
	return func(text string) bool {
		for _, w := range words {
			if strings.Contains(text, w) {
				return true
			}
		}
		return false
	}
}

// rules are evaluated in order and independently of each other.
var rules = []rule{
	{allOf("nutrient", "deficiency"), "Consider adjusting nutrient levels"},
	{func(t string) bool { return strings.Contains(t, "water") && anyOf("over", "under")(t) }, "Review watering schedule"},
	{allOf("light", "stress"), "Adjust lighting conditions"},
	{allOf("ph"), "Check and adjust soil/water pH levels"},
	{allOf("harvest", "ready"), "Consider harvest timing evaluation"},
	{allOf("temperature"), "Monitor temperature conditions"},
	{anyOf("pest", "insect"), "Check for pest management needs"},
	{anyOf("disease", "fungus"), "Evaluate plant health and disease prevention"},
	{anyOf("pruning", "trim"), "Consider pruning and plant training techniques"},
}

// ExtractRecommendations matches text against a fixed keyword table. The
// output follows table order. Empty text yields an empty slice; text that
// matches nothing yields only FallbackRecommendation.
func ExtractRecommendations(text string) []string {
	out := []string{}
	if text == "" {
		return out
	}
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.matches(lower) {
			out = append(out, r.recommendation)
		}
	}
	if len(out) == 0 {
		out = append(out, FallbackRecommendation)
	}
	return out
}

// BuildQuery prepares a context query for a species and its records.
func BuildQuery(species taxonomy.Species, genusName string, records []taxonomy.CultivationRecord, userQuery string) models.Query {
	return models.Query{
		PlantID:                   species.ID,
		Query:                     fmt.Sprintf("Species: %s %s - %s", genusName, species.SpecificEpithet, userQuery),
		IncludeCultivationHistory: len(records) > 0,
		IncludeSpeciesData:        true,
		MaxDocuments:              models.DefaultMaxDocuments,
		MaxTokens:                 models.DefaultMaxTokens,
	}
}

// ValidateResponse rejects responses with an empty query or context, or a
// confidence score outside [0, 1].
func ValidateResponse(resp models.Response) error {
	if resp.Query == "" {
		return dErrors.New(dErrors.CodeValidation, "Query cannot be empty")
	}
	if resp.Context == "" {
		return dErrors.New(dErrors.CodeValidation, "Context cannot be empty")
	}
	if resp.ConfidenceScore < 0 || resp.ConfidenceScore > 1 {
		return dErrors.New(dErrors.CodeValidation, "Confidence score must be between 0.0 and 1.0")
	}
	return nil
}

// AssembleContext renders the species and its latest record as the plain text
// block sources reason over.
func AssembleContext(snap taxonomy.SpeciesSnapshot) string {
	parts := []string{
		"Species: " + snap.Species.ScientificName(),
		"Authority: " + snap.Species.Authority,
	}
	if snap.Species.FamilyName != "" {
		parts = append(parts, "Family: "+snap.Species.FamilyName)
	}
	latest := snap.Latest
	if latest == nil {
		latest = taxonomy.LatestRecord(snap.Records)
	}
	if latest != nil {
		parts = append(parts, "Current stage: "+latest.GrowthStage.Label())
		if latest.Notes != nil && *latest.Notes != "" {
			parts = append(parts, "Notes: "+*latest.Notes)
		}
	}
	return strings.Join(parts, "\n")
}
