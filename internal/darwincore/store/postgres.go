package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"botanica/internal/darwincore/models"
	id "botanica/pkg/domain"
	"botanica/pkg/platform/sentinel"
	textutil "botanica/pkg/platform/strings"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Postgres stores occurrences in the occurrences table.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

const occurrenceColumns = `occurrence_id, scientific_name, kingdom, phylum, class, "order", family, genus,
	specific_epithet, event_date, event_time, recorded_by, decimal_latitude, decimal_longitude,
	coordinate_uncertainty_in_meters, country, state_province, locality, basis_of_record,
	occurrence_status, catalog_number, collection_code, institution_code, individual_count,
	life_stage, reproductive_condition, establishment_means, preparations`

func (s *Postgres) Create(ctx context.Context, occ *models.Occurrence, speciesID *id.SpeciesID) error {
	var sid *uuid.UUID
	if speciesID != nil {
		u := uuid.UUID(*speciesID)
		sid = &u
	}
	var eventDate *time.Time
	if occ.EventDate != nil {
		eventDate = &occ.EventDate.Time
	}
	var establishment *string
	if occ.EstablishmentMeans != nil {
		v := string(*occ.EstablishmentMeans)
		establishment = &v
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO occurrences (species_id, `+occurrenceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)`,
		sid, occ.OccurrenceID, occ.ScientificName, occ.Kingdom, occ.Phylum, occ.Class, occ.Order,
		occ.Family, occ.Genus, occ.SpecificEpithet, eventDate, occ.EventTime, occ.RecordedBy,
		occ.DecimalLatitude, occ.DecimalLongitude, occ.CoordinateUncertaintyInMeters, occ.Country,
		occ.StateProvince, occ.Locality, string(occ.BasisOfRecord), string(occ.OccurrenceStatus),
		occ.CatalogNumber, occ.CollectionCode, occ.InstitutionCode, occ.IndividualCount,
		occ.LifeStage, occ.ReproductiveCondition, establishment, occ.Preparations,
	)
	if err != nil {
		return translate(err, "create occurrence")
	}
	return nil
}

func (s *Postgres) Find(ctx context.Context, occurrenceID uuid.UUID) (*models.Occurrence, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+occurrenceColumns+` FROM occurrences WHERE occurrence_id = $1`, occurrenceID)
	occ, err := scanOccurrence(row)
	if err != nil {
		return nil, translate(err, "find occurrence")
	}
	return occ, nil
}

func (s *Postgres) ListByCollector(ctx context.Context, collector string, limit int) ([]models.Occurrence, error) {
	return s.list(ctx, `WHERE recorded_by ILIKE '%' || $1 || '%' ESCAPE '\'`, textutil.EscapeLike(collector), limit)
}

func (s *Postgres) ListByLocality(ctx context.Context, locality string, limit int) ([]models.Occurrence, error) {
	return s.list(ctx, `WHERE locality ILIKE '%' || $1 || '%' ESCAPE '\'`, textutil.EscapeLike(locality), limit)
}

func (s *Postgres) ListBySpecies(ctx context.Context, speciesID id.SpeciesID) ([]models.Occurrence, error) {
	return s.list(ctx, `WHERE species_id = $1`, uuid.UUID(speciesID), 0)
}

func (s *Postgres) list(ctx context.Context, where string, arg any, limit int) ([]models.Occurrence, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pool.Query(ctx, `SELECT `+occurrenceColumns+` FROM occurrences `+where+`
		ORDER BY scientific_name, created_at LIMIT $2`, arg, limit)
	if err != nil {
		return nil, fmt.Errorf("list occurrences: %w", err)
	}
	defer rows.Close()

	out := []models.Occurrence{}
	for rows.Next() {
		occ, err := scanOccurrence(rows)
		if err != nil {
			return nil, fmt.Errorf("scan occurrence: %w", err)
		}
		out = append(out, *occ)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate occurrences: %w", err)
	}
	return out, nil
}

func scanOccurrence(row pgx.Row) (*models.Occurrence, error) {
	var (
		occ           models.Occurrence
		eventDate     *time.Time
		basis, status string
		establishment *string
	)
	err := row.Scan(&occ.OccurrenceID, &occ.ScientificName, &occ.Kingdom, &occ.Phylum, &occ.Class,
		&occ.Order, &occ.Family, &occ.Genus, &occ.SpecificEpithet, &eventDate, &occ.EventTime,
		&occ.RecordedBy, &occ.DecimalLatitude, &occ.DecimalLongitude, &occ.CoordinateUncertaintyInMeters,
		&occ.Country, &occ.StateProvince, &occ.Locality, &basis, &status, &occ.CatalogNumber,
		&occ.CollectionCode, &occ.InstitutionCode, &occ.IndividualCount, &occ.LifeStage,
		&occ.ReproductiveCondition, &establishment, &occ.Preparations)
	if err != nil {
		return nil, err
	}
	if eventDate != nil {
		d := models.NewDate(*eventDate)
		occ.EventDate = &d
	}
	occ.BasisOfRecord = models.BasisOfRecord(basis)
	occ.OccurrenceStatus = models.OccurrenceStatus(status)
	if establishment != nil {
		e := models.EstablishmentMeans(*establishment)
		occ.EstablishmentMeans = &e
	}
	return &occ, nil
}

func translate(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, sentinel.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", op, sentinel.ErrAlreadyExists)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: species %w", op, sentinel.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
