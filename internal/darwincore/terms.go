package darwincore

import (
	"botanica/internal/darwincore/models"
)

// TermNamespace is the Darwin Core terms vocabulary IRI.
const TermNamespace = "http://rs.tdwg.org/dwc/terms/"

// Terms keys the set fields of occ by Darwin Core term IRI, the shape
// RDF and JSON-LD exporters consume. Absent optional terms are omitted.
func Terms(occ models.Occurrence) map[string]any {
	out := map[string]any{
		TermNamespace + "occurrenceID":     occ.OccurrenceID.String(),
		TermNamespace + "scientificName":   occ.ScientificName,
		TermNamespace + "basisOfRecord":    string(occ.BasisOfRecord),
		TermNamespace + "occurrenceStatus": string(occ.OccurrenceStatus),
	}

	strs := map[string]*string{
		"kingdom":               occ.Kingdom,
		"phylum":                occ.Phylum,
		"class":                 occ.Class,
		"order":                 occ.Order,
		"family":                occ.Family,
		"genus":                 occ.Genus,
		"specificEpithet":       occ.SpecificEpithet,
		"recordedBy":            occ.RecordedBy,
		"country":               occ.Country,
		"stateProvince":         occ.StateProvince,
		"locality":              occ.Locality,
		"catalogNumber":         occ.CatalogNumber,
		"collectionCode":        occ.CollectionCode,
		"institutionCode":       occ.InstitutionCode,
		"lifeStage":             occ.LifeStage,
		"reproductiveCondition": occ.ReproductiveCondition,
		"preparations":          occ.Preparations,
	}
	for term, v := range strs {
		if v != nil {
			out[TermNamespace+term] = *v
		}
	}

	floats := map[string]*float64{
		"decimalLatitude":               occ.DecimalLatitude,
		"decimalLongitude":              occ.DecimalLongitude,
		"coordinateUncertaintyInMeters": occ.CoordinateUncertaintyInMeters,
	}
	for term, v := range floats {
		if v != nil {
			out[TermNamespace+term] = *v
		}
	}

	if occ.EventDate != nil {
		out[TermNamespace+"eventDate"] = occ.EventDate.String()
	}
	if occ.EventTime != nil {
		out[TermNamespace+"eventTime"] = occ.EventTime.Format("15:04:05Z07:00")
	}
	if occ.IndividualCount != nil {
		out[TermNamespace+"individualCount"] = *occ.IndividualCount
	}
	if occ.EstablishmentMeans != nil {
		out[TermNamespace+"establishmentMeans"] = string(*occ.EstablishmentMeans)
	}
	return out
}
