// Package conservation classifies species by IUCN Red List assessment.
package conservation

import "botanica/internal/conservation/models"

// IsThreatened reports whether the assessment category is Vulnerable or worse.
func IsThreatened(a models.Assessment) bool {
	return a.Category.IsThreatened()
}

// PriorityScore maps the assessment category onto a fixed 0 to 10 scale.
func PriorityScore(a models.Assessment) int {
	return a.Category.Priority()
}

// Classify builds a Classification. A nil assessment is reported as unavailable
// with zero priority.
func Classify(name string, a *models.Assessment) models.Classification {
	c := models.Classification{ScientificName: name, Assessment: a}
	if a == nil {
		return c
	}
	c.Available = true
	c.Threatened = IsThreatened(*a)
	c.Priority = PriorityScore(*a)
	return c
}
