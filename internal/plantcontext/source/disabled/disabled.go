// Package disabled is the context source wired when the knowledge-context
// capability is off. It answers every call with a fixed notice.
package disabled

import (
	"context"

	"botanica/internal/plantcontext/models"
	taxonomy "botanica/internal/taxonomy/models"
)

const (
	ID = "disabled"

	Notice         = "ContextLite feature not enabled"
	Recommendation = "Enable ContextLite feature for AI recommendations"
)

type Source struct{}

func New() Source { return Source{} }

func (Source) ID() string { return ID }

func (Source) Recommend(_ context.Context, q models.Query, _ taxonomy.SpeciesSnapshot) (*models.Response, error) {
	return &models.Response{
		PlantID:           q.PlantID,
		Query:             q.Query,
		Context:           Notice,
		Recommendations:   []string{Recommendation},
		RelevantDocuments: []models.Document{},
		ConfidenceScore:   0,
	}, nil
}

func (Source) Search(_ context.Context, query string) (string, error) {
	return Notice + " for query: " + query, nil
}

func (Source) Index(context.Context, taxonomy.SpeciesSnapshot) error {
	return nil
}
