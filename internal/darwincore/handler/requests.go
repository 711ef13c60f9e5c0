package handler

import (
	"strings"

	"botanica/internal/darwincore/models"
	dErrors "botanica/pkg/domain-errors"
)

type recordOccurrenceRequest struct {
	Location  *models.Coordinates `json:"location,omitempty"`
	Collector *string             `json:"collector,omitempty"`
}

func (r *recordOccurrenceRequest) Validate() error {
	if r.Collector != nil {
		trimmed := strings.TrimSpace(*r.Collector)
		if trimmed == "" {
			r.Collector = nil
		} else {
			r.Collector = &trimmed
		}
	}
	if r.Location != nil {
		if r.Location.Latitude < -90 || r.Location.Latitude > 90 {
			return dErrors.New(dErrors.CodeValidation, "latitude must be between -90 and 90")
		}
		if r.Location.Longitude < -180 || r.Location.Longitude > 180 {
			return dErrors.New(dErrors.CodeValidation, "longitude must be between -180 and 180")
		}
	}
	return nil
}

type validateRequest struct {
	models.Occurrence
}

func (r *validateRequest) Validate() error {
	if strings.TrimSpace(r.ScientificName) == "" {
		return dErrors.New(dErrors.CodeValidation, "scientific_name is required")
	}
	return nil
}

type validateResponse struct {
	Complete bool     `json:"complete"`
	Warnings []string `json:"warnings"`
}
