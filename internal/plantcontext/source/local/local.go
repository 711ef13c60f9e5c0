// Package local answers context queries from the species data alone, with an
// in-memory knowledge index fed by Index.
package local

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"botanica/internal/plantcontext"
	"botanica/internal/plantcontext/models"
	taxonomy "botanica/internal/taxonomy/models"
	id "botanica/pkg/domain"
)

const (
	ID = "local"

	withRecordsConfidence    = 0.5
	withoutRecordsConfidence = 0.1
	snippetLength            = 200
)

type document struct {
	title   string
	content string
}

// Source is safe for concurrent use.
type Source struct {
	mu    sync.RWMutex
	index map[id.SpeciesID]document
}

func New() *Source {
	return &Source{index: make(map[id.SpeciesID]document)}
}

func (s *Source) ID() string { return ID }

// Recommend assembles the species context and extracts recommendations from
// it together with the query text.
func (s *Source) Recommend(ctx context.Context, q models.Query, snap taxonomy.SpeciesSnapshot) (*models.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := plantcontext.AssembleContext(snap)
	confidence := withoutRecordsConfidence
	if len(snap.Records) > 0 {
		confidence = withRecordsConfidence
	}

	return &models.Response{
		PlantID:         q.PlantID,
		Query:           q.Query,
		Context:         text,
		Recommendations: plantcontext.ExtractRecommendations(text + "\n" + q.Query),
		RelevantDocuments: []models.Document{{
			ID:             snap.Species.ID.String(),
			Title:          snap.Species.ScientificName(),
			Source:         ID,
			RelevanceScore: confidence,
			ContentSnippet: snippet(text),
		}},
		ConfidenceScore: confidence,
	}, nil
}

// Search returns the indexed documents mentioning every word of query, ordered
// by species name. Nothing matching yields an empty string.
func (s *Source) Search(ctx context.Context, query string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	terms := strings.Fields(strings.ToLower(query))

	s.mu.RLock()
	var hits []document
	for _, doc := range s.index {
		if matchesAll(strings.ToLower(doc.content), terms) {
			hits = append(hits, doc)
		}
	}
	s.mu.RUnlock()

	sort.Slice(hits, func(i, j int) bool { return hits[i].title < hits[j].title })
	parts := make([]string, 0, len(hits))
	for _, h := range hits {
		parts = append(parts, h.content)
	}
	return strings.Join(parts, "\n\n"), nil
}

// Index replaces the stored document for the snapshot's species.
func (s *Source) Index(ctx context.Context, snap taxonomy.SpeciesSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc := document{
		title: snap.Species.ScientificName(),
		content: fmt.Sprintf("%s\nRecords: %d",
			plantcontext.AssembleContext(snap), len(snap.Records)),
	}

	s.mu.Lock()
	s.index[snap.Species.ID] = doc
	s.mu.Unlock()
	return nil
}

func matchesAll(content string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(content, t) {
			return false
		}
	}
	return true
}

func snippet(text string) string {
	r := []rune(text)
	if len(r) <= snippetLength {
		return text
	}
	return string(r[:snippetLength])
}
