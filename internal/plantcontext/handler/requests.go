package handler

import (
	"strings"

	dErrors "botanica/pkg/domain-errors"
)

const maxTextLength = 10_000

type recommendationRequest struct {
	Query string `json:"query"`
}

func (r *recommendationRequest) Validate() error {
	r.Query = strings.TrimSpace(r.Query)
	if r.Query == "" {
		return dErrors.New(dErrors.CodeValidation, "query is required")
	}
	return nil
}

type extractRequest struct {
	Text string `json:"text"`
}

func (r *extractRequest) Validate() error {
	if len(r.Text) > maxTextLength {
		return dErrors.Newf(dErrors.CodeValidation, "text must be at most %d bytes", maxTextLength)
	}
	return nil
}
