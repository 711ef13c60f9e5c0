// Package cache holds recently fetched assessments keyed by scientific name.
//
// Only Found assessments are cached. A miss is reported as sentinel.ErrNotFound.
package cache

import "botanica/internal/conservation/models"

// Key is the canonical scientific name; it keeps case so the cache answers
// exactly what the source would.
func Key(scientificName string) string {
	return models.CanonicalName(scientificName)
}
