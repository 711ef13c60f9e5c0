package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"botanica/internal/taxonomy/models"
	"botanica/internal/taxonomy/service/mocks"
	"botanica/internal/taxonomy/store"
	id "botanica/pkg/domain"
	dErrors "botanica/pkg/domain-errors"
	audit "botanica/pkg/platform/audit"
	"botanica/pkg/platform/sentinel"
	"botanica/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	now     time.Time
	audit   *mocks.MockAuditPublisher
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.audit = mocks.NewMockAuditPublisher(ctrl)
	s.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.now = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.service = New(store.NewInMemory(), WithAuditPublisher(s.audit))
}

func (s *ServiceSuite) createRosa() *models.NamedSpecies {
	family, err := s.service.CreateFamily(s.ctx, &models.CreateFamilyRequest{Name: "Rosaceae", Authority: "Juss."})
	s.Require().NoError(err)
	genus, err := s.service.CreateGenus(s.ctx, &models.CreateGenusRequest{FamilyID: family.ID.String(), Name: "Rosa", Authority: "L."})
	s.Require().NoError(err)
	species, err := s.service.CreateSpecies(s.ctx, &models.CreateSpeciesRequest{
		GenusID:         genus.ID.String(),
		SpecificEpithet: "Rubiginosa",
		Authority:       "L.",
	})
	s.Require().NoError(err)
	return species
}

// ===== Creation =====

func (s *ServiceSuite) TestCreateSpecies_ReturnsNamedSpecies() {
	species := s.createRosa()

	s.Equal("rubiginosa", species.SpecificEpithet)
	s.Equal("Rosa rubiginosa", species.ScientificName())
	s.Equal("Rosaceae", species.FamilyName)
	s.Equal(s.now, species.CreatedAt, "request time is the creation time")
}

func (s *ServiceSuite) TestCreateSpecies_DuplicateIsConstraintViolation() {
	species := s.createRosa()

	_, err := s.service.CreateSpecies(s.ctx, &models.CreateSpeciesRequest{
		GenusID:         species.GenusID.String(),
		SpecificEpithet: "rubiginosa",
	})
	s.True(dErrors.HasCode(err, dErrors.CodeConstraint))
}

func (s *ServiceSuite) TestCreateGenus_UnknownFamilyIsNotFound() {
	_, err := s.service.CreateGenus(s.ctx, &models.CreateGenusRequest{
		FamilyID: "0b7c2f1e-96d5-4c1b-9f55-0e6f4b0f9a11",
		Name:     "Rosa",
	})
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestCreateGenus_MalformedFamilyID() {
	_, err := s.service.CreateGenus(s.ctx, &models.CreateGenusRequest{FamilyID: "rosaceae", Name: "Rosa"})
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

// Justification: publication years before Linnaeus (1753) are not valid botanical names.
func (s *ServiceSuite) TestCreateSpecies_RejectsPreLinnaeanYear() {
	species := s.createRosa()
	year := 1700

	_, err := s.service.CreateSpecies(s.ctx, &models.CreateSpeciesRequest{
		GenusID:         species.GenusID.String(),
		SpecificEpithet: "canina",
		PublicationYear: &year,
	})
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

// ===== Records =====

func (s *ServiceSuite) TestAddCultivationRecord_AndSnapshot() {
	species := s.createRosa()

	_, err := s.service.AddCultivationRecord(s.ctx, species.ID, &models.AddRecordRequest{
		GrowthStage: "Seedling",
		Cultivator:  "Kew",
	})
	s.Require().NoError(err)

	later := requestcontext.WithTime(s.ctx, s.now.Add(48*time.Hour))
	notes := "needs support"
	_, err = s.service.AddCultivationRecord(later, species.ID, &models.AddRecordRequest{
		GrowthStage: "flowering",
		Cultivator:  "Kew",
		Notes:       &notes,
	})
	s.Require().NoError(err)

	snap, err := s.service.Snapshot(s.ctx, species.ID)
	s.Require().NoError(err)
	s.Len(snap.Records, 2)
	s.Require().NotNil(snap.Latest)
	s.Equal(models.GrowthStageFlowering, snap.Latest.GrowthStage)
	s.Equal("needs support", *snap.Latest.Notes)
}

func (s *ServiceSuite) TestAddCultivationRecord_UnknownSpecies() {
	_, err := s.service.AddCultivationRecord(s.ctx, id.SpeciesID{1}, &models.AddRecordRequest{
		GrowthStage: "seed",
		Cultivator:  "Kew",
	})
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestListRecords_EmptyIsNotNil() {
	species := s.createRosa()

	records, err := s.service.ListRecords(s.ctx, species.ID)
	s.Require().NoError(err)
	s.NotNil(records)
	s.Empty(records)
}

// ===== Search =====

func (s *ServiceSuite) TestSearchSpecies() {
	s.createRosa()

	found, err := s.service.SearchSpecies(s.ctx, "rosa rub", 0)
	s.Require().NoError(err)
	s.Len(found, 1)

	_, err = s.service.SearchSpecies(s.ctx, "", 0)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

// ===== Store failures =====

func (s *ServiceSuite) TestStoreFailureIsDatabaseError() {
	ctrl := gomock.NewController(s.T())
	mockStore := mocks.NewMockStore(ctrl)
	svc := New(mockStore)

	mockStore.EXPECT().FindSpecies(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := svc.GetSpecies(s.ctx, id.SpeciesID{2})
	s.True(dErrors.HasCode(err, dErrors.CodeDatabase))
}

func (s *ServiceSuite) TestAuditEventEmittedOnCreate() {
	ctrl := gomock.NewController(s.T())
	mockStore := mocks.NewMockStore(ctrl)
	publisher := mocks.NewMockAuditPublisher(ctrl)
	svc := New(mockStore, WithAuditPublisher(publisher))

	mockStore.EXPECT().CreateFamily(gomock.Any(), gomock.Any()).Return(nil)
	publisher.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e audit.Event) error {
		s.Equal(string(audit.ActionFamilyCreated), e.Action)
		s.Equal("created", e.Outcome)
		return nil
	})

	_, err := svc.CreateFamily(s.ctx, &models.CreateFamilyRequest{Name: "Welwitschiaceae"})
	s.Require().NoError(err)
}

// Justification: audit sink failures must not fail the curation write.
func (s *ServiceSuite) TestAuditFailureDoesNotFailWrite() {
	ctrl := gomock.NewController(s.T())
	mockStore := mocks.NewMockStore(ctrl)
	publisher := mocks.NewMockAuditPublisher(ctrl)
	svc := New(mockStore, WithAuditPublisher(publisher))

	mockStore.EXPECT().CreateFamily(gomock.Any(), gomock.Any()).Return(nil)
	publisher.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

	_, err := svc.CreateFamily(s.ctx, &models.CreateFamilyRequest{Name: "Cannabaceae"})
	s.NoError(err)
}

func (s *ServiceSuite) TestTranslate() {
	s.True(dErrors.HasCode(s.service.translate(sentinel.ErrNotFound, "x"), dErrors.CodeNotFound))
	s.True(dErrors.HasCode(s.service.translate(sentinel.ErrAlreadyExists, "x"), dErrors.CodeConstraint))
	s.True(dErrors.HasCode(s.service.translate(context.DeadlineExceeded, "x"), dErrors.CodeTimeout))
}
