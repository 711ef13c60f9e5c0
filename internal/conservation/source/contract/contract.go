// Package contract holds reusable tests every conservation source must pass.
package contract

import (
	"context"
	"testing"

	"botanica/internal/conservation/models"
	"botanica/internal/conservation/source"
)

// Suite checks the answers a source gives for names it does and does not know.
type Suite struct {
	SourceID string
	Source   source.Source
	Found    []string
	Missing  []string
	Errors   []ErrorTest
}

// Run executes all contract tests in the suite
func (s *Suite) Run(t *testing.T) {
	t.Helper()

	if got := s.Source.ID(); got != s.SourceID {
		t.Errorf("expected source ID %s, got %s", s.SourceID, got)
	}

	for _, name := range s.Found {
		t.Run("found/"+name, func(t *testing.T) {
			res, err := s.Source.Lookup(context.Background(), name)
			if err != nil {
				t.Fatalf("source lookup failed: %v", err)
			}
			if res.Outcome != models.OutcomeFound {
				t.Fatalf("expected outcome %s, got %s", models.OutcomeFound, res.Outcome)
			}
			validateAssessment(t, name, res.Assessment)
		})
	}

	for _, name := range s.Missing {
		t.Run("missing/"+name, func(t *testing.T) {
			res, err := s.Source.Lookup(context.Background(), name)
			if err != nil {
				t.Fatalf("source lookup failed: %v", err)
			}
			if res.Outcome != models.OutcomeNotFound {
				t.Errorf("expected outcome %s, got %s", models.OutcomeNotFound, res.Outcome)
			}
			if res.Assessment != nil {
				t.Error("not-found result carries an assessment")
			}
		})
	}

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		res, err := s.Source.Lookup(ctx, "Cannabis sativa")
		// A cancelled lookup must not invent an assessment. Sources that do no
		// I/O may still answer.
		if err == nil && res.Outcome == models.OutcomeFound && res.Assessment == nil {
			t.Error("found result without assessment")
		}
	})

	for _, et := range s.Errors {
		et.Run(t)
	}
}

func validateAssessment(t *testing.T, name string, a *models.Assessment) {
	t.Helper()
	if a == nil {
		t.Fatal("found result without assessment")
	}
	if a.ScientificName != name {
		t.Errorf("expected scientific name %q, got %q", name, a.ScientificName)
	}
	if !a.Category.IsValid() {
		t.Errorf("invalid category %q", a.Category)
	}
	if p := a.Category.Priority(); p < 0 || p > 10 {
		t.Errorf("priority %d out of range [0, 10]", p)
	}
	if a.AssessmentDate.IsZero() {
		t.Error("assessment date not set")
	}
	if a.PopulationTrend == "" {
		t.Error("population trend not set")
	}
}

// ErrorTest validates that source errors follow the taxonomy
type ErrorTest struct {
	Name          string
	Source        source.Source
	Input         string
	ExpectedError source.ErrorCategory
	ExpectedRetry bool
}

// Run executes an error contract test
func (et *ErrorTest) Run(t *testing.T) {
	t.Run("error/"+et.Name, func(t *testing.T) {
		_, err := et.Source.Lookup(context.Background(), et.Input)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if got := source.GetCategory(err); got != et.ExpectedError {
			t.Errorf("expected error category %s, got %s", et.ExpectedError, got)
		}
		if got := source.IsRetryable(err); got != et.ExpectedRetry {
			t.Errorf("expected retryable=%v, got %v", et.ExpectedRetry, got)
		}
	})
}
