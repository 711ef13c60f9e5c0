// Package disabled is the conservation source wired when the capability is off.
package disabled

import (
	"context"

	"botanica/internal/conservation/models"
)

const ID = "disabled"

// Source never finds anything.
type Source struct{}

func New() Source { return Source{} }

func (Source) ID() string { return ID }

func (Source) Lookup(context.Context, string) (models.LookupResult, error) {
	return models.NotFound(), nil
}
