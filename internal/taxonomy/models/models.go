package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	id "botanica/pkg/domain"
	dErrors "botanica/pkg/domain-errors"
)

// Family is the top of the managed hierarchy.
type Family struct {
	ID        id.FamilyID `json:"id"`
	Name      string      `json:"name"`
	Authority string      `json:"authority"`
	CreatedAt time.Time   `json:"created_at"`
}

// Genus belongs to exactly one Family.
type Genus struct {
	ID        id.GenusID  `json:"id"`
	FamilyID  id.FamilyID `json:"family_id"`
	Name      string      `json:"name"`
	Authority string      `json:"authority"`
	CreatedAt time.Time   `json:"created_at"`
}

// Species is the taxon the enrichment layers read.
//
// Invariants:
//   - SpecificEpithet is non-empty and lower case
//   - (GenusID, SpecificEpithet) is unique
type Species struct {
	ID                 id.SpeciesID `json:"id"`
	GenusID            id.GenusID   `json:"genus_id"`
	SpecificEpithet    string       `json:"specific_epithet"`
	Authority          string       `json:"authority"`
	PublicationYear    *int         `json:"publication_year,omitempty"`
	ConservationStatus *string      `json:"conservation_status,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// CultivationRecord is one observation of a cultivated plant.
type CultivationRecord struct {
	ID          id.CultivationRecordID `json:"id"`
	SpeciesID   id.SpeciesID           `json:"species_id"`
	GrowthStage GrowthStage            `json:"growth_stage"`
	Cultivator  string                 `json:"cultivator"`
	Notes       *string                `json:"notes,omitempty"`
	RecordedAt  time.Time              `json:"recorded_at"`
}

// NewFamily validates and builds a Family.
func NewFamily(name, authority string, now time.Time) (*Family, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "family name is required")
	}
	return &Family{
		ID:        id.FamilyID(uuid.New()),
		Name:      name,
		Authority: strings.TrimSpace(authority),
		CreatedAt: now,
	}, nil
}

// NewGenus validates and builds a Genus.
func NewGenus(familyID id.FamilyID, name, authority string, now time.Time) (*Genus, error) {
	if familyID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "family_id is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "genus name is required")
	}
	return &Genus{
		ID:        id.GenusID(uuid.New()),
		FamilyID:  familyID,
		Name:      name,
		Authority: strings.TrimSpace(authority),
		CreatedAt: now,
	}, nil
}

// NewSpecies validates and builds a Species. The epithet is stored lower case.
func NewSpecies(genusID id.GenusID, epithet, authority string, publicationYear *int, conservationStatus *string, now time.Time) (*Species, error) {
	if genusID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "genus_id is required")
	}
	epithet = strings.ToLower(strings.TrimSpace(epithet))
	if epithet == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "specific_epithet is required")
	}
	if strings.ContainsAny(epithet, " \t") {
		return nil, dErrors.New(dErrors.CodeValidation, "specific_epithet must be a single word")
	}
	if publicationYear != nil && (*publicationYear < 1753 || *publicationYear > now.Year()) {
		return nil, dErrors.New(dErrors.CodeValidation, "publication_year must be between 1753 and the current year")
	}
	return &Species{
		ID:                 id.SpeciesID(uuid.New()),
		GenusID:            genusID,
		SpecificEpithet:    epithet,
		Authority:          strings.TrimSpace(authority),
		PublicationYear:    publicationYear,
		ConservationStatus: conservationStatus,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// NewCultivationRecord validates and builds a CultivationRecord.
func NewCultivationRecord(speciesID id.SpeciesID, stage GrowthStage, cultivator string, notes *string, now time.Time) (*CultivationRecord, error) {
	if speciesID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "species_id is required")
	}
	if !stage.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown growth_stage")
	}
	cultivator = strings.TrimSpace(cultivator)
	if cultivator == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "cultivator is required")
	}
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		if trimmed == "" {
			notes = nil
		} else {
			notes = &trimmed
		}
	}
	return &CultivationRecord{
		ID:          id.CultivationRecordID(uuid.New()),
		SpeciesID:   speciesID,
		GrowthStage: stage,
		Cultivator:  cultivator,
		Notes:       notes,
		RecordedAt:  now,
	}, nil
}

// LatestRecord returns the most recently recorded entry, or nil.
func LatestRecord(records []CultivationRecord) *CultivationRecord {
	var latest *CultivationRecord
	for i := range records {
		if latest == nil || records[i].RecordedAt.After(latest.RecordedAt) {
			latest = &records[i]
		}
	}
	return latest
}

// NamedSpecies is a Species joined with its genus and family names, the
// shape search results and the enrichment layers need.
type NamedSpecies struct {
	Species
	GenusName  string `json:"genus_name"`
	FamilyName string `json:"family_name"`
}

// ScientificName is the binomial "{Genus} {epithet}".
func (n NamedSpecies) ScientificName() string {
	return n.GenusName + " " + n.SpecificEpithet
}
