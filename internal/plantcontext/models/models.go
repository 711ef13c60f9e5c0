// Package models holds the knowledge-context request and response shapes.
package models

import (
	id "botanica/pkg/domain"
)

const (
	DefaultMaxDocuments = 10
	DefaultMaxTokens    = 4000
)

// Query asks a context source about one plant.
type Query struct {
	PlantID                   id.SpeciesID `json:"plant_id"`
	Query                     string       `json:"query"`
	IncludeCultivationHistory bool         `json:"include_cultivation_history"`
	IncludeSpeciesData        bool         `json:"include_species_data"`
	MaxDocuments              int          `json:"max_documents"`
	MaxTokens                 int          `json:"max_tokens"`
}

// Response is the assembled context and the recommendations drawn from it.
type Response struct {
	PlantID           id.SpeciesID `json:"plant_id"`
	Query             string       `json:"query"`
	Context           string       `json:"context"`
	Recommendations   []string     `json:"recommendations"`
	RelevantDocuments []Document   `json:"relevant_documents"`
	ConfidenceScore   float64      `json:"confidence_score"`
}

// Document is a knowledge-base entry that contributed to a response.
type Document struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Source         string  `json:"source"`
	RelevanceScore float64 `json:"relevance_score"`
	ContentSnippet string  `json:"content_snippet"`
}
