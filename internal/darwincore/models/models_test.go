package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "botanica/pkg/domain-errors"
)

func TestEnumsRejectUnknownValues(t *testing.T) {
	var basis BasisOfRecord
	err := json.Unmarshal([]byte(`"Herbarium"`), &basis)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	var rank TaxonRank
	require.Error(t, json.Unmarshal([]byte(`"Species"`), &rank), "ranks are lower case")
	require.NoError(t, json.Unmarshal([]byte(`"species"`), &rank))
	assert.Equal(t, RankSpecies, rank)
}

func TestTaxonRankLevels(t *testing.T) {
	assert.Equal(t, 0, RankKingdom.Level())
	assert.Equal(t, 6, RankSpecies.Level())
	assert.Equal(t, 10, RankCultivar.Level())
	assert.Equal(t, -1, TaxonRank("tribe").Level())
	assert.Less(t, RankGenus.Level(), RankSpecies.Level())
}

func TestDateIsDateOnly(t *testing.T) {
	d := NewDate(time.Date(2024, 6, 3, 22, 15, 0, 0, time.UTC))

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-03"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, d.Equal(back.Time))

	require.Error(t, json.Unmarshal([]byte(`"03/06/2024"`), &back))
}

func TestOccurrenceJSONFieldNames(t *testing.T) {
	lat := 40.7128
	collector := "J. Smith"
	date := NewDate(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))
	occ := Occurrence{
		OccurrenceID:     uuid.New(),
		ScientificName:   "Rosa rubiginosa",
		DecimalLatitude:  &lat,
		RecordedBy:       &collector,
		EventDate:        &date,
		BasisOfRecord:    BasisPreservedSpecimen,
		OccurrenceStatus: StatusPresent,
	}

	raw, err := json.Marshal(occ)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "Rosa rubiginosa", fields["scientific_name"])
	assert.Equal(t, 40.7128, fields["decimal_latitude"])
	assert.Equal(t, "J. Smith", fields["recorded_by"])
	assert.Equal(t, "2024-06-03", fields["event_date"])
	assert.Equal(t, "PreservedSpecimen", fields["basis_of_record"])
	assert.Equal(t, "present", fields["occurrence_status"])
	assert.NotContains(t, fields, "decimal_longitude")

	var back Occurrence
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, occ.OccurrenceID, back.OccurrenceID)
	assert.Equal(t, "2024-06-03", back.EventDate.String())
}
