package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"botanica/internal/plantcontext/handler/mocks"
	"botanica/internal/plantcontext/models"
	id "botanica/pkg/domain"
	dErrors "botanica/pkg/domain-errors"
)

type stubValidator struct{}

func (stubValidator) ValidateSubject(token string) (string, error) {
	if token == "good" {
		return "curator-1", nil
	}
	return "", errors.New("bad token")
}

type HandlerSuite struct {
	suite.Suite
	service   *mocks.MockService
	router    chi.Router
	speciesID id.SpeciesID
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	s.router = chi.NewRouter()
	New(s.service, stubValidator{}, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(s.router)
	s.speciesID = id.SpeciesID(uuid.New())
}

func (s *HandlerSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// ===== Recommendations =====

func (s *HandlerSuite) TestRecommendations() {
	s.service.EXPECT().GetPlantRecommendations(gomock.Any(), s.speciesID, "yellow leaves").Return(&models.Response{
		PlantID:           s.speciesID,
		Query:             "Species: Rosa canina - yellow leaves",
		Context:           "Species: Rosa canina",
		Recommendations:   []string{"Consider adjusting nutrient levels"},
		RelevantDocuments: []models.Document{},
		ConfidenceScore:   0.5,
	}, nil)

	rec := s.do(http.MethodPost, "/context/species/"+s.speciesID.String()+"/recommendations", map[string]string{"query": " yellow leaves "}, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	body := s.decode(rec)
	s.Equal(s.speciesID.String(), body["plant_id"])
	s.Equal([]any{"Consider adjusting nutrient levels"}, body["recommendations"])
	s.InDelta(0.5, body["confidence_score"], 1e-9)
}

func (s *HandlerSuite) TestRecommendations_EmptyQuery() {
	rec := s.do(http.MethodPost, "/context/species/"+s.speciesID.String()+"/recommendations", map[string]string{"query": "  "}, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestRecommendations_BadSpeciesID() {
	rec := s.do(http.MethodPost, "/context/species/not-a-uuid/recommendations", map[string]string{"query": "q"}, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestRecommendations_SourceErrorIs503() {
	s.service.EXPECT().GetPlantRecommendations(gomock.Any(), s.speciesID, "q").
		Return(nil, dErrors.Wrap(errors.New("refused"), dErrors.CodeContextSource, "recommendation request failed"))

	rec := s.do(http.MethodPost, "/context/species/"+s.speciesID.String()+"/recommendations", map[string]string{"query": "q"}, "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("context_source_error", s.decode(rec)["error"])
}

// ===== Extract =====

func (s *HandlerSuite) TestExtract() {
	rec := s.do(http.MethodPost, "/context/extract", map[string]string{"text": "Plant is overwatered and shows nutrient deficiency"}, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal([]any{"Consider adjusting nutrient levels", "Review watering schedule"}, s.decode(rec)["recommendations"])
}

func (s *HandlerSuite) TestExtract_EmptyTextIsEmptyList() {
	rec := s.do(http.MethodPost, "/context/extract", map[string]string{"text": ""}, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal([]any{}, s.decode(rec)["recommendations"])
}

// ===== Search =====

func (s *HandlerSuite) TestSearch() {
	s.service.EXPECT().QueryKnowledge(gomock.Any(), "rose pruning").Return("Prune in late winter", nil)

	rec := s.do(http.MethodGet, "/context/search?q=rose+pruning", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("Prune in late winter", s.decode(rec)["context"])
}

func (s *HandlerSuite) TestSearch_MissingQuery() {
	rec := s.do(http.MethodGet, "/context/search", nil, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

// ===== Index =====

func (s *HandlerSuite) TestIndex_RequiresCurator() {
	rec := s.do(http.MethodPost, "/context/species/"+s.speciesID.String()+"/index", nil, "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/context/species/"+s.speciesID.String()+"/index", nil, "wrong")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerSuite) TestIndex() {
	s.service.EXPECT().IndexPlantData(gomock.Any(), s.speciesID).Return(nil)

	rec := s.do(http.MethodPost, "/context/species/"+s.speciesID.String()+"/index", nil, "good")
	s.Equal(http.StatusAccepted, rec.Code)
}

func (s *HandlerSuite) TestIndex_UnknownSpecies() {
	s.service.EXPECT().IndexPlantData(gomock.Any(), s.speciesID).Return(dErrors.New(dErrors.CodeNotFound, "species not found"))

	rec := s.do(http.MethodPost, "/context/species/"+s.speciesID.String()+"/index", nil, "good")
	s.Equal(http.StatusNotFound, rec.Code)
}
