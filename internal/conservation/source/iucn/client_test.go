package iucn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botanica/internal/conservation/models"
	"botanica/internal/conservation/source"
	"botanica/internal/conservation/source/contract"
	"botanica/pkg/platform/circuit"
)

const (
	testToken = "test-token"

	welwitschiaTaxon = `{
		"taxon": {"scientific_name": "Welwitschia mirabilis"},
		"assessments": [
			{"assessment_id": 100, "latest": false, "year_published": "2004"},
			{"assessment_id": 200, "latest": true, "year_published": "2019"}
		]
	}`

	welwitschiaAssessment = `{
		"assessment_id": 200,
		"assessment_date": "2019-07-18T00:00:00.000Z",
		"criteria": "A2acd",
		"red_list_category": {"code": "NT", "description": {"en": "Near Threatened"}},
		"population_trend": {"code": "1", "description": {"en": "Decreasing"}},
		"threats": [
			{"description": {"en": "Climate change"}},
			{"description": {"en": "Collection"}},
			{"description": {"en": "climate change"}}
		],
		"conservation_actions": [{"description": {"en": "Protected areas"}}],
		"research": [{"description": {"en": "Population monitoring"}}],
		"credits": [
			{"type": "Assessor(s)", "value": "IUCN Species Specialist Group"},
			{"type": "Reviewer(s)", "value": "IUCN Red List Unit"}
		]
	}`
)

// redList serves a tiny Red List: Welwitschia mirabilis is assessed, other
// binomials are unknown. Genus "Broken" exercises failure paths.
func redList(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /taxa/scientific_name", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != testToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		q := r.URL.Query()
		switch q.Get("genus_name") {
		case "Welwitschia":
			if q.Get("species_name") != "mirabilis" {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(welwitschiaTaxon))
		case "Unassessed":
			_, _ = w.Write([]byte(`{"taxon": {"scientific_name": "Unassessed plant"}, "assessments": []}`))
		case "Outage":
			w.WriteHeader(http.StatusBadGateway)
		case "Throttled":
			w.WriteHeader(http.StatusTooManyRequests)
		case "Garbled":
			_, _ = w.Write([]byte(`{"taxon": [`))
		case "Teapot":
			w.WriteHeader(http.StatusTeapot)
		case "Orphan":
			_, _ = w.Write([]byte(`{"assessments": [{"assessment_id": 404, "latest": true}]}`))
		case "Oddity":
			_, _ = w.Write([]byte(`{"assessments": [{"assessment_id": 500, "latest": true}]}`))
		default:
			http.NotFound(w, r)
		}
	})
	mux.HandleFunc("GET /assessment/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("id") {
		case "200":
			_, _ = w.Write([]byte(welwitschiaAssessment))
		case "500":
			_, _ = w.Write([]byte(`{"assessment_id": 500, "assessment_date": "2020-01-01", "red_list_category": {"code": "LR/cd"}}`))
		default:
			http.NotFound(w, r)
		}
	})
	return mux
}

func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: baseURL, Token: testToken, RatePerSecond: 1000, Burst: 100}, opts...)
	require.NoError(t, err)
	return c
}

func TestIUCNContract(t *testing.T) {
	server := httptest.NewServer(redList(t))
	defer server.Close()
	client := newTestClient(t, server.URL)

	suite := contract.Suite{
		SourceID: ID,
		Source:   client,
		Found:    []string{"Welwitschia mirabilis"},
		Missing:  []string{"Quercus robur", "Unassessed plant", "Welwitschia", ""},
		Errors: []contract.ErrorTest{
			{Name: "upstream outage", Source: client, Input: "Outage plant", ExpectedError: source.ErrorOutage, ExpectedRetry: true},
			{Name: "throttled", Source: client, Input: "Throttled plant", ExpectedError: source.ErrorRateLimited, ExpectedRetry: true},
			{Name: "malformed body", Source: client, Input: "Garbled plant", ExpectedError: source.ErrorBadData},
			{Name: "unexpected status", Source: client, Input: "Teapot plant", ExpectedError: source.ErrorContractMismatch},
			{Name: "listed assessment missing", Source: client, Input: "Orphan plant", ExpectedError: source.ErrorNotFound},
			{Name: "unknown category", Source: client, Input: "Oddity plant", ExpectedError: source.ErrorBadData},
		},
	}
	suite.Run(t)
}

func TestLookup_DecodesLatestAssessment(t *testing.T) {
	server := httptest.NewServer(redList(t))
	defer server.Close()

	res, err := newTestClient(t, server.URL).Lookup(context.Background(), "  Welwitschia   mirabilis ")
	require.NoError(t, err)
	require.Equal(t, models.OutcomeFound, res.Outcome)

	a := res.Assessment
	assert.Equal(t, "Welwitschia mirabilis", a.ScientificName)
	assert.Equal(t, models.NearThreatened, a.Category)
	require.NotNil(t, a.Criteria)
	assert.Equal(t, "A2acd", *a.Criteria)
	assert.Equal(t, time.Date(2019, 7, 18, 0, 0, 0, 0, time.UTC), a.AssessmentDate)
	assert.Equal(t, models.TrendDecreasing, a.PopulationTrend)
	assert.Equal(t, []string{"Climate change", "Collection"}, a.Threats, "case-insensitive duplicates collapse")
	assert.Equal(t, []string{"Protected areas"}, a.ConservationActions)
	assert.Equal(t, []string{"Population monitoring"}, a.ActionsNeeded)
	require.NotNil(t, a.Assessor)
	assert.Equal(t, "IUCN Species Specialist Group", *a.Assessor)
	require.NotNil(t, a.Reviewer)
	assert.Equal(t, "IUCN Red List Unit", *a.Reviewer)
}

func TestLookup_BadTokenIsAuthentication(t *testing.T) {
	server := httptest.NewServer(redList(t))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL, Token: "wrong", RatePerSecond: 1000})
	require.NoError(t, err)

	_, err = c.Lookup(context.Background(), "Welwitschia mirabilis")
	require.Error(t, err)
	assert.Equal(t, source.ErrorAuthentication, source.GetCategory(err))
	assert.False(t, source.IsRetryable(err))
	assert.False(t, c.Breaker().IsOpen(), "auth failures do not trip the circuit")
}

func TestLookup_SlowUpstreamTimesOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL, Timeout: 20 * time.Millisecond, RatePerSecond: 1000})
	require.NoError(t, err)

	_, err = c.Lookup(context.Background(), "Welwitschia mirabilis")
	require.Error(t, err)
	assert.Equal(t, source.ErrorTimeout, source.GetCategory(err))
	assert.True(t, source.IsRetryable(err))
}

func TestLookup_CircuitOpensAndRetries(t *testing.T) {
	var calls atomic.Int32
	healthy := atomic.Bool{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	breaker := circuit.New(ID, circuit.WithFailureThreshold(2), circuit.WithSuccessThreshold(1))
	c := newTestClient(t, server.URL,
		WithBreaker(breaker),
		WithRetryInterval(time.Minute),
		WithClock(func() time.Time { return now }),
	)
	ctx := context.Background()

	for range 2 {
		_, err := c.Lookup(ctx, "Abies alba")
		require.Error(t, err)
	}
	require.True(t, breaker.IsOpen())
	require.Equal(t, int32(2), calls.Load())

	_, err := c.Lookup(ctx, "Abies alba")
	require.Error(t, err)
	assert.Equal(t, source.ErrorOutage, source.GetCategory(err))
	assert.Equal(t, int32(2), calls.Load(), "open circuit short-circuits")

	healthy.Store(true)
	now = now.Add(2 * time.Minute)
	res, err := c.Lookup(ctx, "Abies alba")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNotFound, res.Outcome)
	assert.Equal(t, int32(3), calls.Load(), "retry reaches upstream")
	assert.False(t, breaker.IsOpen(), "successful retry closes the circuit")
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
}

func TestTaxonQuery(t *testing.T) {
	tests := []struct {
		input string
		name  string
		infra string
		ok    bool
	}{
		{input: "Welwitschia mirabilis", name: "Welwitschia mirabilis", ok: true},
		{input: "Rosa canina var. dumalis", name: "Rosa canina var. dumalis", infra: "dumalis", ok: true},
		{input: "Rosa", ok: false},
		{input: "   ", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, q, ok := taxonQuery(tt.input)
			assert.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.infra, q.Get("infra_name"))
		})
	}
}

func TestLatestAssessment_FallsBackToNewestYear(t *testing.T) {
	resp := taxonResponse{Assessments: []assessmentRef{
		{AssessmentID: 1, YearPublished: "1998"},
		{AssessmentID: 2, YearPublished: "2011"},
		{AssessmentID: 3, YearPublished: "2004"},
	}}
	id, ok := resp.latestAssessment()
	require.True(t, ok)
	assert.Equal(t, int64(2), id)

	_, ok = taxonResponse{}.latestAssessment()
	assert.False(t, ok)
}
