// Package fake is a deterministic conservation source for tests, demos and
// offline development. It knows exactly two species.
package fake

import (
	"context"
	"strings"
	"time"

	"botanica/internal/conservation/models"
)

const ID = "fake"

// Source answers from a fixed in-memory table.
type Source struct {
	delay       time.Duration
	assessments map[string]models.Assessment
}

type Option func(*Source)

// WithDelay simulates network latency. The delay is abandoned when ctx ends.
func WithDelay(d time.Duration) Option {
	return func(s *Source) {
		s.delay = d
	}
}

func New(opts ...Option) *Source {
	s := &Source{assessments: fixtures()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) ID() string { return ID }

func (s *Source) Lookup(ctx context.Context, scientificName string) (models.LookupResult, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.LookupResult{}, ctx.Err()
		case <-timer.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return models.LookupResult{}, err
	}

	a, ok := s.assessments[strings.TrimSpace(scientificName)]
	if !ok {
		return models.NotFound(), nil
	}
	return models.Found(clone(a)), nil
}

// Names lists the species the fake knows about.
func (s *Source) Names() []string {
	return []string{"Cannabis sativa", "Welwitschia mirabilis"}
}

func fixtures() map[string]models.Assessment {
	criteria := "A2acd"
	reviewer := "IUCN Red List Unit"
	return map[string]models.Assessment{
		"Cannabis sativa": {
			ScientificName:      "Cannabis sativa",
			Category:            models.NotEvaluated,
			AssessmentDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			PopulationTrend:     models.TrendUnknown,
			Threats:             []string{"Legal restrictions", "Habitat loss"},
			ConservationActions: []string{"Cultivation programs"},
			ActionsNeeded:       []string{"Legal status review"},
			Assessor:            ptr("Mock Assessment"),
		},
		"Welwitschia mirabilis": {
			ScientificName:      "Welwitschia mirabilis",
			Category:            models.NearThreatened,
			Criteria:            &criteria,
			AssessmentDate:      time.Date(2019, 7, 18, 0, 0, 0, 0, time.UTC),
			PopulationTrend:     models.TrendDecreasing,
			Threats:             []string{"Climate change", "Collection"},
			ConservationActions: []string{"Protected areas"},
			ActionsNeeded:       []string{"Population monitoring"},
			Assessor:            ptr("IUCN Species Specialist Group"),
			Reviewer:            &reviewer,
		},
	}
}

// clone keeps callers from mutating the fixture slices.
func clone(a models.Assessment) models.Assessment {
	a.Threats = append([]string(nil), a.Threats...)
	a.ConservationActions = append([]string(nil), a.ConservationActions...)
	a.ActionsNeeded = append([]string(nil), a.ActionsNeeded...)
	a.Criteria = clonePtr(a.Criteria)
	a.Assessor = clonePtr(a.Assessor)
	a.Reviewer = clonePtr(a.Reviewer)
	return a
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	return ptr(*s)
}

func ptr(s string) *string { return &s }
