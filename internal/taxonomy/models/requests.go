package models

import (
	"strings"

	dErrors "botanica/pkg/domain-errors"
)

// CreateFamilyRequest is the body of POST /taxonomy/families.
type CreateFamilyRequest struct {
	Name      string `json:"name"`
	Authority string `json:"authority"`
}

func (r *CreateFamilyRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Authority = strings.TrimSpace(r.Authority)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}

// CreateGenusRequest is the body of POST /taxonomy/genera.
type CreateGenusRequest struct {
	FamilyID  string `json:"family_id"`
	Name      string `json:"name"`
	Authority string `json:"authority"`
}

func (r *CreateGenusRequest) Validate() error {
	r.FamilyID = strings.TrimSpace(r.FamilyID)
	r.Name = strings.TrimSpace(r.Name)
	r.Authority = strings.TrimSpace(r.Authority)
	if r.FamilyID == "" {
		return dErrors.New(dErrors.CodeValidation, "family_id is required")
	}
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}

// CreateSpeciesRequest is the body of POST /taxonomy/species.
type CreateSpeciesRequest struct {
	GenusID            string  `json:"genus_id"`
	SpecificEpithet    string  `json:"specific_epithet"`
	Authority          string  `json:"authority"`
	PublicationYear    *int    `json:"publication_year,omitempty"`
	ConservationStatus *string `json:"conservation_status,omitempty"`
}

func (r *CreateSpeciesRequest) Validate() error {
	r.GenusID = strings.TrimSpace(r.GenusID)
	r.SpecificEpithet = strings.TrimSpace(r.SpecificEpithet)
	r.Authority = strings.TrimSpace(r.Authority)
	if r.GenusID == "" {
		return dErrors.New(dErrors.CodeValidation, "genus_id is required")
	}
	if r.SpecificEpithet == "" {
		return dErrors.New(dErrors.CodeValidation, "specific_epithet is required")
	}
	if r.ConservationStatus != nil && strings.TrimSpace(*r.ConservationStatus) == "" {
		r.ConservationStatus = nil
	}
	return nil
}

// AddRecordRequest is the body of POST /taxonomy/species/{id}/records.
type AddRecordRequest struct {
	GrowthStage string  `json:"growth_stage"`
	Cultivator  string  `json:"cultivator"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *AddRecordRequest) Validate() error {
	r.Cultivator = strings.TrimSpace(r.Cultivator)
	if strings.TrimSpace(r.GrowthStage) == "" {
		return dErrors.New(dErrors.CodeValidation, "growth_stage is required")
	}
	if _, err := ParseGrowthStage(r.GrowthStage); err != nil {
		return err
	}
	if r.Cultivator == "" {
		return dErrors.New(dErrors.CodeValidation, "cultivator is required")
	}
	return nil
}

// SpeciesSnapshot is a species with its cultivation history, the input the
// enrichment services build context from.
type SpeciesSnapshot struct {
	Species NamedSpecies        `json:"species"`
	Records []CultivationRecord `json:"records"`
	Latest  *CultivationRecord  `json:"latest,omitempty"`
}
