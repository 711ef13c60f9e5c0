// Package models holds the IUCN Red List assessment model.
package models

import (
	"strings"
	"time"

	dErrors "botanica/pkg/domain-errors"
)

// Category is an IUCN Red List category. The string value is the IUCN code.
type Category string

const (
	NotEvaluated         Category = "NE"
	DataDeficient        Category = "DD"
	LeastConcern         Category = "LC"
	NearThreatened       Category = "NT"
	Vulnerable           Category = "VU"
	Endangered           Category = "EN"
	CriticallyEndangered Category = "CR"
	ExtinctInWild        Category = "EW"
	Extinct              Category = "EX"
)

// Categories lists every category from least to most at risk.
var Categories = []Category{
	NotEvaluated, DataDeficient, LeastConcern, NearThreatened,
	Vulnerable, Endangered, CriticallyEndangered, ExtinctInWild, Extinct,
}

var categoryNames = map[Category]string{
	NotEvaluated:         "Not Evaluated",
	DataDeficient:        "Data Deficient",
	LeastConcern:         "Least Concern",
	NearThreatened:       "Near Threatened",
	Vulnerable:           "Vulnerable",
	Endangered:           "Endangered",
	CriticallyEndangered: "Critically Endangered",
	ExtinctInWild:        "Extinct in the Wild",
	Extinct:              "Extinct",
}

// priorities is a literal table. DataDeficient ranks below NearThreatened.
var priorities = map[Category]int{
	NotEvaluated:         0,
	LeastConcern:         1,
	DataDeficient:        3,
	NearThreatened:       4,
	Vulnerable:           6,
	Endangered:           7,
	CriticallyEndangered: 8,
	ExtinctInWild:        9,
	Extinct:              10,
}

func (c Category) IsValid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Name is the English label, e.g. "Near Threatened".
func (c Category) Name() string {
	return categoryNames[c]
}

// IsThreatened is true for Vulnerable and every category above it.
func (c Category) IsThreatened() bool {
	switch c {
	case Vulnerable, Endangered, CriticallyEndangered, ExtinctInWild, Extinct:
		return true
	default:
		return false
	}
}

// Priority returns the conservation priority in [0,10]. Unknown categories score 0.
func (c Category) Priority() int {
	return priorities[c]
}

// ParseCategory accepts an IUCN code ("VU") or English label ("Vulnerable"),
// case-insensitively.
func ParseCategory(s string) (Category, error) {
	trimmed := strings.TrimSpace(s)
	code := Category(strings.ToUpper(trimmed))
	if code.IsValid() {
		return code, nil
	}
	for c, name := range categoryNames {
		if strings.EqualFold(name, trimmed) {
			return c, nil
		}
	}
	return "", dErrors.Newf(dErrors.CodeValidation, "unknown IUCN category %q", s)
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// PopulationTrend is the direction of the assessed population.
type PopulationTrend string

const (
	TrendIncreasing PopulationTrend = "increasing"
	TrendStable     PopulationTrend = "stable"
	TrendDecreasing PopulationTrend = "decreasing"
	TrendUnknown    PopulationTrend = "unknown"
)

// ParsePopulationTrend is case-insensitive. An empty string is TrendUnknown.
func ParsePopulationTrend(s string) (PopulationTrend, error) {
	t := PopulationTrend(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case "":
		return TrendUnknown, nil
	case TrendIncreasing, TrendStable, TrendDecreasing, TrendUnknown:
		return t, nil
	}
	return "", dErrors.Newf(dErrors.CodeValidation, "unknown population trend %q", s)
}

func (t *PopulationTrend) UnmarshalText(text []byte) error {
	parsed, err := ParsePopulationTrend(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// CanonicalName trims scientificName and collapses inner whitespace. Case is
// kept: "cannabis sativa" and "Cannabis sativa" are different names.
func CanonicalName(scientificName string) string {
	return strings.Join(strings.Fields(scientificName), " ")
}

// Assessment is a single Red List assessment snapshot for a species.
type Assessment struct {
	ScientificName      string          `json:"scientific_name"`
	Category            Category        `json:"category"`
	Criteria            *string         `json:"criteria,omitempty"`
	AssessmentDate      time.Time       `json:"assessment_date"`
	PopulationTrend     PopulationTrend `json:"population_trend"`
	Threats             []string        `json:"threats"`
	ConservationActions []string        `json:"conservation_actions"`
	ActionsNeeded       []string        `json:"actions_needed"`
	Assessor            *string         `json:"assessor,omitempty"`
	Reviewer            *string         `json:"reviewer,omitempty"`
}

// Outcome distinguishes why a lookup did or did not produce an assessment.
type Outcome string

const (
	OutcomeFound       Outcome = "found"
	OutcomeNotFound    Outcome = "not_found"
	OutcomeUnavailable Outcome = "unavailable"
)

// LookupResult is what a source answers. Assessment is set only when Outcome is OutcomeFound.
type LookupResult struct {
	Outcome    Outcome     `json:"outcome"`
	Assessment *Assessment `json:"assessment,omitempty"`
}

func Found(a Assessment) LookupResult {
	return LookupResult{Outcome: OutcomeFound, Assessment: &a}
}

func NotFound() LookupResult {
	return LookupResult{Outcome: OutcomeNotFound}
}

func Unavailable() LookupResult {
	return LookupResult{Outcome: OutcomeUnavailable}
}

// Classification summarises an assessment for callers that only need the verdict.
type Classification struct {
	ScientificName string      `json:"scientific_name"`
	Assessment     *Assessment `json:"assessment"`
	Available      bool        `json:"available"`
	Threatened     bool        `json:"threatened"`
	Priority       int         `json:"priority"`
}
