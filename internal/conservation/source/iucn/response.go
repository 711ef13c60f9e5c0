package iucn

import (
	"fmt"
	"strings"
	"time"

	"botanica/internal/conservation/models"
	listutil "botanica/pkg/platform/strings"
)

// taxonResponse is the subset of GET /taxa/scientific_name the client reads.
type taxonResponse struct {
	Taxon struct {
		ScientificName string `json:"scientific_name"`
	} `json:"taxon"`
	Assessments []assessmentRef `json:"assessments"`
}

type assessmentRef struct {
	AssessmentID  int64  `json:"assessment_id"`
	Latest        bool   `json:"latest"`
	YearPublished string `json:"year_published"`
}

// latestAssessment prefers the entry flagged latest, then the newest publication year.
func (t taxonResponse) latestAssessment() (int64, bool) {
	var best *assessmentRef
	for i := range t.Assessments {
		ref := &t.Assessments[i]
		if ref.Latest {
			return ref.AssessmentID, true
		}
		if best == nil || ref.YearPublished > best.YearPublished {
			best = ref
		}
	}
	if best == nil {
		return 0, false
	}
	return best.AssessmentID, true
}

type localized struct {
	En string `json:"en"`
}

type described struct {
	Description localized `json:"description"`
}

type credit struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// assessmentResponse is the subset of GET /assessment/{id} the client reads.
type assessmentResponse struct {
	AssessmentID    int64   `json:"assessment_id"`
	AssessmentDate  string  `json:"assessment_date"`
	YearPublished   string  `json:"year_published"`
	Criteria        *string `json:"criteria"`
	RedListCategory struct {
		Code string `json:"code"`
	} `json:"red_list_category"`
	PopulationTrend     *described  `json:"population_trend"`
	Threats             []described `json:"threats"`
	ConservationActions []described `json:"conservation_actions"`
	Research            []described `json:"research"`
	Credits             []credit    `json:"credits"`
}

func (r assessmentResponse) toAssessment(name string) (models.Assessment, error) {
	category, err := models.ParseCategory(r.RedListCategory.Code)
	if err != nil {
		return models.Assessment{}, err
	}
	date, err := r.date()
	if err != nil {
		return models.Assessment{}, err
	}

	trend := models.TrendUnknown
	if r.PopulationTrend != nil {
		if parsed, err := models.ParsePopulationTrend(r.PopulationTrend.Description.En); err == nil {
			trend = parsed
		}
	}

	var criteria *string
	if r.Criteria != nil && strings.TrimSpace(*r.Criteria) != "" {
		c := strings.TrimSpace(*r.Criteria)
		criteria = &c
	}

	var assessor, reviewer *string
	if assessors := r.credited("assessor"); assessors != "" {
		assessor = &assessors
	}
	if reviewers := r.credited("reviewer"); reviewers != "" {
		reviewer = &reviewers
	}

	return models.Assessment{
		ScientificName:      name,
		Category:            category,
		Criteria:            criteria,
		AssessmentDate:      date,
		PopulationTrend:     trend,
		Threats:             texts(r.Threats),
		ConservationActions: texts(r.ConservationActions),
		ActionsNeeded:       texts(r.Research),
		Assessor:            assessor,
		Reviewer:            reviewer,
	}, nil
}

func (r assessmentResponse) date() (time.Time, error) {
	if r.AssessmentDate != "" {
		if t, err := time.Parse(time.RFC3339, r.AssessmentDate); err == nil {
			return t.UTC(), nil
		}
		if t, err := time.Parse(time.DateOnly, r.AssessmentDate); err == nil {
			return t, nil
		}
		return time.Time{}, fmt.Errorf("unparseable assessment_date %q", r.AssessmentDate)
	}
	if r.YearPublished != "" {
		t, err := time.Parse("2006", r.YearPublished)
		if err != nil {
			return time.Time{}, fmt.Errorf("unparseable year_published %q", r.YearPublished)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("assessment %d has no date", r.AssessmentID)
}

// credited joins the credit values whose type starts with role, e.g. "Assessor(s)".
func (r assessmentResponse) credited(role string) string {
	var names []string
	for _, c := range r.Credits {
		if strings.HasPrefix(strings.ToLower(c.Type), role) {
			names = append(names, c.Value)
		}
	}
	return strings.Join(listutil.DedupeAndTrim(names), ", ")
}

func texts(items []described) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Description.En)
	}
	return listutil.DedupeFold(out)
}
