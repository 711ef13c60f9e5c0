// Package darwincore converts taxonomy entities into Darwin Core records and
// checks record completeness.
package darwincore

import (
	"github.com/google/uuid"

	"botanica/internal/darwincore/models"
	taxonomy "botanica/internal/taxonomy/models"
)

const (
	WarningMissingCoordinates = "Missing geographic coordinates"
	WarningMissingDate        = "Missing collection date"
	WarningMissingCollector   = "Missing collector information"
)

// SpeciesToTaxon builds an accepted, species-rank ICN taxon record.
func SpeciesToTaxon(species taxonomy.Species, genusName string) models.Taxon {
	code := models.CodeICN
	authority := species.Authority
	return models.Taxon{
		TaxonID:                  uuid.New(),
		ScientificName:           scientificName(genusName, species.SpecificEpithet),
		ScientificNameAuthorship: &authority,
		TaxonomicStatus:          models.TaxonomicAccepted,
		TaxonRank:                models.RankSpecies,
		NomenclaturalCode:        &code,
	}
}

// CreateOccurrence builds a preserved-specimen occurrence for a species.
//
// A coordinate axis whose value is exactly 0.0 is stored as absent, so points
// on the equator or the prime meridian lose that axis.
func CreateOccurrence(species taxonomy.Species, genusName, familyName string, location *models.Coordinates, collector *string) models.Occurrence {
	kingdom := models.Kingdom
	epithet := species.SpecificEpithet
	count := 1

	occ := models.Occurrence{
		OccurrenceID:     uuid.New(),
		ScientificName:   scientificName(genusName, epithet),
		Kingdom:          &kingdom,
		Family:           &familyName,
		Genus:            &genusName,
		SpecificEpithet:  &epithet,
		BasisOfRecord:    models.BasisPreservedSpecimen,
		OccurrenceStatus: models.StatusPresent,
		IndividualCount:  &count,
	}
	if collector != nil {
		recordedBy := *collector
		occ.RecordedBy = &recordedBy
	}
	if location != nil {
		occ.DecimalLatitude = nonZero(location.Latitude)
		occ.DecimalLongitude = nonZero(location.Longitude)
	}
	return occ
}

// ValidateRecord lists completeness warnings in a fixed order. An empty
// result means the record is complete; warnings never block a record.
func ValidateRecord(occ models.Occurrence) []string {
	warnings := []string{}
	if occ.DecimalLatitude == nil || occ.DecimalLongitude == nil {
		warnings = append(warnings, WarningMissingCoordinates)
	}
	if occ.EventDate == nil {
		warnings = append(warnings, WarningMissingDate)
	}
	if occ.RecordedBy == nil {
		warnings = append(warnings, WarningMissingCollector)
	}
	return warnings
}

func scientificName(genus, epithet string) string {
	return genus + " " + epithet
}

func nonZero(v float64) *float64 {
	if v == 0.0 {
		return nil
	}
	return &v
}
