// Package models defines the Darwin Core exchange records.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Kingdom is the only kingdom the adapter produces records for.
const Kingdom = "Plantae"

// Coordinates is a WGS84 point in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Occurrence is a Darwin Core occurrence record. Optional terms are nil when absent.
type Occurrence struct {
	OccurrenceID    uuid.UUID `json:"occurrence_id"`
	ScientificName  string    `json:"scientific_name"`
	Kingdom         *string   `json:"kingdom,omitempty"`
	Phylum          *string   `json:"phylum,omitempty"`
	Class           *string   `json:"class,omitempty"`
	Order           *string   `json:"order,omitempty"`
	Family          *string   `json:"family,omitempty"`
	Genus           *string   `json:"genus,omitempty"`
	SpecificEpithet *string   `json:"specific_epithet,omitempty"`

	EventDate  *Date      `json:"event_date,omitempty"`
	EventTime  *time.Time `json:"event_time,omitempty"`
	RecordedBy *string    `json:"recorded_by,omitempty"`

	DecimalLatitude               *float64 `json:"decimal_latitude,omitempty"`
	DecimalLongitude              *float64 `json:"decimal_longitude,omitempty"`
	CoordinateUncertaintyInMeters *float64 `json:"coordinate_uncertainty_in_meters,omitempty"`
	Country                       *string  `json:"country,omitempty"`
	StateProvince                 *string  `json:"state_province,omitempty"`
	Locality                      *string  `json:"locality,omitempty"`

	BasisOfRecord    BasisOfRecord    `json:"basis_of_record"`
	OccurrenceStatus OccurrenceStatus `json:"occurrence_status"`
	CatalogNumber    *string          `json:"catalog_number,omitempty"`
	CollectionCode   *string          `json:"collection_code,omitempty"`
	InstitutionCode  *string          `json:"institution_code,omitempty"`

	IndividualCount       *int                `json:"individual_count,omitempty"`
	LifeStage             *string             `json:"life_stage,omitempty"`
	ReproductiveCondition *string             `json:"reproductive_condition,omitempty"`
	EstablishmentMeans    *EstablishmentMeans `json:"establishment_means,omitempty"`
	Preparations          *string             `json:"preparations,omitempty"`
}

// Taxon is a Darwin Core taxon record. Name-usage IDs are weak references.
type Taxon struct {
	TaxonID                  uuid.UUID          `json:"taxon_id"`
	ScientificName           string             `json:"scientific_name"`
	ScientificNameAuthorship *string            `json:"scientific_name_authorship,omitempty"`
	TaxonomicStatus          TaxonomicStatus    `json:"taxonomic_status"`
	TaxonRank                TaxonRank          `json:"taxon_rank"`
	NomenclaturalCode        *NomenclaturalCode `json:"nomenclatural_code,omitempty"`
	NomenclaturalStatus      *string            `json:"nomenclatural_status,omitempty"`
	ParentNameUsageID        *uuid.UUID         `json:"parent_name_usage_id,omitempty"`
	AcceptedNameUsageID      *uuid.UUID         `json:"accepted_name_usage_id,omitempty"`
	OriginalNameUsageID      *uuid.UUID         `json:"original_name_usage_id,omitempty"`
}
