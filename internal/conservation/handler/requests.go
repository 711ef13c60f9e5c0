package handler

import (
	"strings"

	dErrors "botanica/pkg/domain-errors"
)

const maxBatchNames = 50

type batchRequest struct {
	Names []string `json:"names"`
}

func (r *batchRequest) Validate() error {
	if len(r.Names) == 0 {
		return dErrors.New(dErrors.CodeValidation, "names are required")
	}
	if len(r.Names) > maxBatchNames {
		return dErrors.Newf(dErrors.CodeValidation, "at most %d names per request", maxBatchNames)
	}
	for i, n := range r.Names {
		r.Names[i] = strings.TrimSpace(n)
		if r.Names[i] == "" {
			return dErrors.New(dErrors.CodeValidation, "names must not be empty")
		}
	}
	return nil
}
