package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"botanica/internal/taxonomy/models"
	id "botanica/pkg/domain"
	"botanica/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
	now   time.Time
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
}

func (s *InMemoryStoreSuite) seedRosa() (*models.Family, *models.Genus, *models.Species) {
	fam, err := models.NewFamily("Rosaceae", "Juss.", s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.CreateFamily(s.ctx, fam))

	gen, err := models.NewGenus(fam.ID, "Rosa", "L.", s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.CreateGenus(s.ctx, gen))

	sp, err := models.NewSpecies(gen.ID, "rubiginosa", "L.", nil, nil, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.CreateSpecies(s.ctx, sp))
	return fam, gen, sp
}

// ===== Hierarchy =====

func (s *InMemoryStoreSuite) TestHierarchy() {
	fam, gen, sp := s.seedRosa()

	s.Run("species resolves genus and family names", func() {
		named, err := s.store.FindSpecies(s.ctx, sp.ID)
		s.Require().NoError(err)
		s.Equal("Rosa", named.GenusName)
		s.Equal("Rosaceae", named.FamilyName)
		s.Equal("Rosa rubiginosa", named.ScientificName())
	})

	s.Run("finds family and genus", func() {
		f, err := s.store.FindFamily(s.ctx, fam.ID)
		s.Require().NoError(err)
		s.Equal("Rosaceae", f.Name)
		g, err := s.store.FindGenus(s.ctx, gen.ID)
		s.Require().NoError(err)
		s.Equal(fam.ID, g.FamilyID)
	})

	s.Run("unknown ids are ErrNotFound", func() {
		_, err := s.store.FindSpecies(s.ctx, id.SpeciesID(uuid.New()))
		s.ErrorIs(err, sentinel.ErrNotFound)
		_, err = s.store.FindGenus(s.ctx, id.GenusID(uuid.New()))
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("genus requires existing family", func() {
		orphan, err := models.NewGenus(id.FamilyID(uuid.New()), "Orphanus", "", s.now)
		s.Require().NoError(err)
		s.ErrorIs(s.store.CreateGenus(s.ctx, orphan), sentinel.ErrNotFound)
	})
}

// ===== Uniqueness =====

func (s *InMemoryStoreSuite) TestUniqueness() {
	_, gen, _ := s.seedRosa()

	s.Run("family names are case-insensitively unique", func() {
		dup, err := models.NewFamily("ROSACEAE", "", s.now)
		s.Require().NoError(err)
		s.ErrorIs(s.store.CreateFamily(s.ctx, dup), sentinel.ErrAlreadyExists)
	})

	s.Run("epithet is unique within a genus", func() {
		dup, err := models.NewSpecies(gen.ID, "Rubiginosa", "", nil, nil, s.now)
		s.Require().NoError(err)
		s.ErrorIs(s.store.CreateSpecies(s.ctx, dup), sentinel.ErrAlreadyExists)
	})
}

// ===== Search =====

func (s *InMemoryStoreSuite) TestSearchSpecies() {
	_, gen, _ := s.seedRosa()
	canina, err := models.NewSpecies(gen.ID, "canina", "L.", nil, nil, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.CreateSpecies(s.ctx, canina))

	s.Run("matches genus prefix case-insensitively, sorted", func() {
		found, err := s.store.SearchSpecies(s.ctx, "rosa", 0)
		s.Require().NoError(err)
		s.Require().Len(found, 2)
		s.Equal("Rosa canina", found[0].ScientificName())
		s.Equal("Rosa rubiginosa", found[1].ScientificName())
	})

	s.Run("matches across genus and epithet", func() {
		found, err := s.store.SearchSpecies(s.ctx, "a rubig", 0)
		s.Require().NoError(err)
		s.Len(found, 1)
	})

	s.Run("honours limit", func() {
		found, err := s.store.SearchSpecies(s.ctx, "rosa", 1)
		s.Require().NoError(err)
		s.Len(found, 1)
	})
}

// ===== Cultivation records =====

func (s *InMemoryStoreSuite) TestRecords() {
	_, _, sp := s.seedRosa()

	later, err := models.NewCultivationRecord(sp.ID, models.GrowthStageFlowering, "J. Smith", nil, s.now.Add(time.Hour))
	s.Require().NoError(err)
	earlier, err := models.NewCultivationRecord(sp.ID, models.GrowthStageSeedling, "J. Smith", nil, s.now)
	s.Require().NoError(err)

	s.Require().NoError(s.store.AddRecord(s.ctx, later))
	s.Require().NoError(s.store.AddRecord(s.ctx, earlier))

	records, err := s.store.ListRecords(s.ctx, sp.ID)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(models.GrowthStageSeedling, records[0].GrowthStage, "oldest first")

	orphan, err := models.NewCultivationRecord(id.SpeciesID(uuid.New()), models.GrowthStageSeed, "X", nil, s.now)
	s.Require().NoError(err)
	s.ErrorIs(s.store.AddRecord(s.ctx, orphan), sentinel.ErrNotFound)
}
