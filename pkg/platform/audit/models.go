package audit

import (
	"context"
	"time"
)

// EventCategory classifies audit events by their primary purpose so sinks
// can route and retain them differently.
type EventCategory string

const (
	// CategoryCuration covers changes to the curated taxonomy and specimen data.
	CategoryCuration EventCategory = "curation"

	// CategoryEnrichment covers lookups against external knowledge sources
	// (IUCN, ContextLite). These record which source answered and how.
	CategoryEnrichment EventCategory = "enrichment"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory `json:"category"`
	Timestamp time.Time     `json:"timestamp"`
	Action    string        `json:"action"`
	// Subject is what the action was about: a species ID, a scientific name.
	Subject string `json:"subject"`
	// Outcome is action specific: "found", "not_found", "unavailable", "created".
	Outcome   string `json:"outcome,omitempty"`
	Source    string `json:"source,omitempty"`
	Actor     string `json:"actor,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

type Action string

const (
	ActionFamilyCreated      Action = "family_created"
	ActionGenusCreated       Action = "genus_created"
	ActionSpeciesCreated     Action = "species_created"
	ActionRecordAdded        Action = "cultivation_record_added"
	ActionOccurrenceRecorded Action = "occurrence_recorded"

	ActionConservationLookup Action = "conservation_lookup"
	ActionContextRequested   Action = "context_requested"
	ActionContextIndexed     Action = "context_indexed"
)

var actionCategories = map[Action]EventCategory{
	ActionFamilyCreated:      CategoryCuration,
	ActionGenusCreated:       CategoryCuration,
	ActionSpeciesCreated:     CategoryCuration,
	ActionRecordAdded:        CategoryCuration,
	ActionOccurrenceRecorded: CategoryCuration,
	ActionConservationLookup: CategoryEnrichment,
	ActionContextRequested:   CategoryEnrichment,
	ActionContextIndexed:     CategoryEnrichment,
}

// Category returns the routing category for an action. Unknown actions are enrichment.
func (a Action) Category() EventCategory {
	if c, ok := actionCategories[a]; ok {
		return c
	}
	return CategoryEnrichment
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// Lister is implemented by stores that can read events back.
type Lister interface {
	ListBySubject(ctx context.Context, subject string) ([]Event, error)
}
