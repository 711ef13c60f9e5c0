package handler

import (
	"botanica/internal/taxonomy/models"
	dErrors "botanica/pkg/domain-errors"
)

var badLimit = dErrors.New(dErrors.CodeBadRequest, "limit must be an integer")

type speciesResponse struct {
	models.NamedSpecies
	ScientificName string                     `json:"scientific_name"`
	Records        []models.CultivationRecord `json:"records,omitempty"`
}

func toSpeciesResponse(n *models.NamedSpecies) speciesResponse {
	return speciesResponse{NamedSpecies: *n, ScientificName: n.ScientificName()}
}
