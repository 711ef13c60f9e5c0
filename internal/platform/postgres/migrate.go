package postgres

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	dErrors "botanica/pkg/domain-errors"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrationStatus describes the schema state of a database.
type MigrationStatus struct {
	Version uint   `json:"version"`
	Latest  uint   `json:"latest"`
	Dirty   bool   `json:"dirty"`
	Applied []uint `json:"applied"`
}

// UpToDate reports whether every embedded migration has been applied cleanly.
func (s MigrationStatus) UpToDate() bool {
	return !s.Dirty && s.Version == s.Latest
}

// Migrate applies all pending migrations. No pending work is not an error.
func Migrate(db *sql.DB) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return dErrors.Wrap(err, dErrors.CodeMigration, "apply migrations")
	}
	return nil
}

// Status reports the applied version against the embedded set.
func Status(db *sql.DB) (MigrationStatus, error) {
	versions, err := embeddedVersions()
	if err != nil {
		return MigrationStatus{}, err
	}
	status := MigrationStatus{}
	if len(versions) > 0 {
		status.Latest = versions[len(versions)-1]
	}

	m, err := newMigrator(db)
	if err != nil {
		return MigrationStatus{}, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return status, nil
	}
	if err != nil {
		return MigrationStatus{}, dErrors.Wrap(err, dErrors.CodeMigration, "read schema version")
	}
	status.Version = version
	status.Dirty = dirty
	for _, v := range versions {
		if v <= version {
			status.Applied = append(status.Applied, v)
		}
	}
	return status, nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeMigration, "open embedded migrations")
	}
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeMigration, "create migration driver")
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeMigration, "create migrator")
	}
	return m, nil
}

func embeddedVersions() ([]uint, error) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	seen := map[uint]struct{}{}
	for _, e := range entries {
		prefix, _, ok := strings.Cut(e.Name(), "_")
		if !ok {
			continue
		}
		v, err := strconv.ParseUint(prefix, 10, 64)
		if err != nil {
			continue
		}
		seen[uint(v)] = struct{}{}
	}
	versions := make([]uint, 0, len(seen))
	for v := range seen {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i] < versions[j] })
	return versions, nil
}
