// Package store keeps the last known assessment per species so enrichment
// survives source outages.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"botanica/internal/conservation/models"
	"botanica/pkg/platform/sentinel"
	"botanica/pkg/platform/tx"
)

// Postgres persists snapshots in conservation_assessments through database/sql and lib/pq.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn joins a transaction carried by ctx, if any.
func (s *Postgres) conn(ctx context.Context) querier {
	if t, ok := tx.From(ctx); ok {
		return t
	}
	return s.db
}

const upsertSQL = `
	INSERT INTO conservation_assessments (
		scientific_name, category, criteria, assessment_date, population_trend,
		threats, conservation_actions, actions_needed, assessor, reviewer, fetched_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (scientific_name) DO UPDATE SET
		category = EXCLUDED.category,
		criteria = EXCLUDED.criteria,
		assessment_date = EXCLUDED.assessment_date,
		population_trend = EXCLUDED.population_trend,
		threats = EXCLUDED.threats,
		conservation_actions = EXCLUDED.conservation_actions,
		actions_needed = EXCLUDED.actions_needed,
		assessor = EXCLUDED.assessor,
		reviewer = EXCLUDED.reviewer,
		fetched_at = EXCLUDED.fetched_at
	WHERE conservation_assessments.assessment_date <= EXCLUDED.assessment_date`

// Upsert stores a. An older assessment never replaces a newer one.
func (s *Postgres) Upsert(ctx context.Context, a models.Assessment, fetchedAt time.Time) error {
	_, err := s.conn(ctx).ExecContext(ctx, upsertSQL,
		models.CanonicalName(a.ScientificName),
		string(a.Category),
		nullable(a.Criteria),
		a.AssessmentDate,
		string(a.PopulationTrend),
		pq.Array(orEmpty(a.Threats)),
		pq.Array(orEmpty(a.ConservationActions)),
		pq.Array(orEmpty(a.ActionsNeeded)),
		nullable(a.Assessor),
		nullable(a.Reviewer),
		fetchedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert assessment snapshot: %w", err)
	}
	return nil
}

const latestSQL = `
	SELECT scientific_name, category, criteria, assessment_date, population_trend,
	       threats, conservation_actions, actions_needed, assessor, reviewer, fetched_at
	FROM conservation_assessments
	WHERE scientific_name = $1
	ORDER BY assessment_date DESC
	LIMIT 1`

// Latest returns the stored snapshot for scientificName.
func (s *Postgres) Latest(ctx context.Context, scientificName string) (*Snapshot, error) {
	row := s.conn(ctx).QueryRowContext(ctx, latestSQL, models.CanonicalName(scientificName))
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load assessment snapshot: %w", err)
	}
	return snap, nil
}

const listSQL = `
	SELECT scientific_name, category, criteria, assessment_date, population_trend,
	       threats, conservation_actions, actions_needed, assessor, reviewer, fetched_at
	FROM conservation_assessments
	WHERE category = ANY($1)
	ORDER BY scientific_name
	LIMIT $2`

// ListByCategory returns snapshots in any of categories, sorted by name.
func (s *Postgres) ListByCategory(ctx context.Context, categories []models.Category, limit int) ([]Snapshot, error) {
	codes := make([]string, len(categories))
	for i, c := range categories {
		codes[i] = string(c)
	}
	rows, err := s.conn(ctx).QueryContext(ctx, listSQL, pq.Array(codes), limit)
	if err != nil {
		return nil, fmt.Errorf("list assessment snapshots: %w", err)
	}
	defer rows.Close()

	out := []Snapshot{}
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment snapshot: %w", err)
		}
		out = append(out, *snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assessment snapshots: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*Snapshot, error) {
	var (
		snap                       Snapshot
		category, trend            string
		criteria, assessor, review sql.NullString
		threats, actions, needed   pq.StringArray
	)
	err := row.Scan(
		&snap.Assessment.ScientificName,
		&category,
		&criteria,
		&snap.Assessment.AssessmentDate,
		&trend,
		&threats,
		&actions,
		&needed,
		&assessor,
		&review,
		&snap.FetchedAt,
	)
	if err != nil {
		return nil, err
	}
	snap.Assessment.Category = models.Category(category)
	snap.Assessment.PopulationTrend = models.PopulationTrend(trend)
	snap.Assessment.Criteria = fromNull(criteria)
	snap.Assessment.Assessor = fromNull(assessor)
	snap.Assessment.Reviewer = fromNull(review)
	snap.Assessment.Threats = []string(threats)
	snap.Assessment.ConservationActions = []string(actions)
	snap.Assessment.ActionsNeeded = []string(needed)
	snap.Assessment.AssessmentDate = snap.Assessment.AssessmentDate.UTC()
	snap.FetchedAt = snap.FetchedAt.UTC()
	return &snap, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
