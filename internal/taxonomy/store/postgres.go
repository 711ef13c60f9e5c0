package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"botanica/internal/taxonomy/models"
	id "botanica/pkg/domain"
	"botanica/pkg/platform/sentinel"
	textutil "botanica/pkg/platform/strings"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Postgres persists the taxonomy in PostgreSQL through a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (s *Postgres) CreateFamily(ctx context.Context, f *models.Family) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO families (id, name, authority, created_at)
		VALUES ($1, $2, $3, $4)`,
		uuid.UUID(f.ID), f.Name, f.Authority, f.CreatedAt,
	)
	if err != nil {
		return translate(err, "create family")
	}
	return nil
}

func (s *Postgres) FindFamily(ctx context.Context, familyID id.FamilyID) (*models.Family, error) {
	var (
		f   models.Family
		fid uuid.UUID
	)
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, authority, created_at FROM families WHERE id = $1`,
		uuid.UUID(familyID),
	).Scan(&fid, &f.Name, &f.Authority, &f.CreatedAt)
	if err != nil {
		return nil, translate(err, "find family")
	}
	f.ID = id.FamilyID(fid)
	return &f, nil
}

func (s *Postgres) CreateGenus(ctx context.Context, g *models.Genus) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO genera (id, family_id, name, authority, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.UUID(g.ID), uuid.UUID(g.FamilyID), g.Name, g.Authority, g.CreatedAt,
	)
	if err != nil {
		return translate(err, "create genus")
	}
	return nil
}

func (s *Postgres) FindGenus(ctx context.Context, genusID id.GenusID) (*models.Genus, error) {
	var (
		g        models.Genus
		gid, fid uuid.UUID
	)
	err := s.pool.QueryRow(ctx, `
		SELECT id, family_id, name, authority, created_at FROM genera WHERE id = $1`,
		uuid.UUID(genusID),
	).Scan(&gid, &fid, &g.Name, &g.Authority, &g.CreatedAt)
	if err != nil {
		return nil, translate(err, "find genus")
	}
	g.ID = id.GenusID(gid)
	g.FamilyID = id.FamilyID(fid)
	return &g, nil
}

func (s *Postgres) CreateSpecies(ctx context.Context, sp *models.Species) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO species (id, genus_id, specific_epithet, authority, publication_year,
			conservation_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.UUID(sp.ID), uuid.UUID(sp.GenusID), sp.SpecificEpithet, sp.Authority,
		sp.PublicationYear, sp.ConservationStatus, sp.CreatedAt, sp.UpdatedAt,
	)
	if err != nil {
		return translate(err, "create species")
	}
	return nil
}

const namedSpeciesSelect = `
	SELECT s.id, s.genus_id, s.specific_epithet, s.authority, s.publication_year,
		s.conservation_status, s.created_at, s.updated_at, g.name, f.name
	FROM species s
	JOIN genera g ON g.id = s.genus_id
	JOIN families f ON f.id = g.family_id`

func (s *Postgres) FindSpecies(ctx context.Context, speciesID id.SpeciesID) (*models.NamedSpecies, error) {
	row := s.pool.QueryRow(ctx, namedSpeciesSelect+` WHERE s.id = $1`, uuid.UUID(speciesID))
	named, err := scanNamedSpecies(row)
	if err != nil {
		return nil, translate(err, "find species")
	}
	return named, nil
}

// SearchSpecies matches query case-insensitively against "Genus epithet".
func (s *Postgres) SearchSpecies(ctx context.Context, query string, limit int) ([]models.NamedSpecies, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx, namedSpeciesSelect+`
		WHERE (g.name || ' ' || s.specific_epithet) ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY g.name, s.specific_epithet
		LIMIT $2`, textutil.EscapeLike(query), limit)
	if err != nil {
		return nil, fmt.Errorf("search species: %w", err)
	}
	defer rows.Close()

	var out []models.NamedSpecies
	for rows.Next() {
		named, err := scanNamedSpecies(rows)
		if err != nil {
			return nil, fmt.Errorf("scan species: %w", err)
		}
		out = append(out, *named)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate species: %w", err)
	}
	return out, nil
}

func (s *Postgres) AddRecord(ctx context.Context, rec *models.CultivationRecord) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO cultivation_records (id, species_id, growth_stage, cultivator, notes, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.UUID(rec.ID), uuid.UUID(rec.SpeciesID), string(rec.GrowthStage), rec.Cultivator,
		rec.Notes, rec.RecordedAt,
	)
	if err != nil {
		return translate(err, "add cultivation record")
	}
	return nil
}

// ListRecords returns records oldest first.
func (s *Postgres) ListRecords(ctx context.Context, speciesID id.SpeciesID) ([]models.CultivationRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, species_id, growth_stage, cultivator, notes, recorded_at
		FROM cultivation_records
		WHERE species_id = $1
		ORDER BY recorded_at`, uuid.UUID(speciesID))
	if err != nil {
		return nil, fmt.Errorf("list cultivation records: %w", err)
	}
	defer rows.Close()

	var out []models.CultivationRecord
	for rows.Next() {
		var (
			rec      models.CultivationRecord
			rid, sid uuid.UUID
			stage    string
		)
		if err := rows.Scan(&rid, &sid, &stage, &rec.Cultivator, &rec.Notes, &rec.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan cultivation record: %w", err)
		}
		rec.ID = id.CultivationRecordID(rid)
		rec.SpeciesID = id.SpeciesID(sid)
		rec.GrowthStage = models.GrowthStage(stage)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cultivation records: %w", err)
	}
	return out, nil
}

func scanNamedSpecies(row pgx.Row) (*models.NamedSpecies, error) {
	var (
		named    models.NamedSpecies
		sid, gid uuid.UUID
	)
	err := row.Scan(&sid, &gid, &named.SpecificEpithet, &named.Authority, &named.PublicationYear,
		&named.ConservationStatus, &named.CreatedAt, &named.UpdatedAt, &named.GenusName, &named.FamilyName)
	if err != nil {
		return nil, err
	}
	named.ID = id.SpeciesID(sid)
	named.GenusID = id.GenusID(gid)
	return &named, nil
}

// translate maps driver errors onto sentinels so the service can pick a domain code.
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
			return fmt.Errorf("%s: parent %w", op, sentinel.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
