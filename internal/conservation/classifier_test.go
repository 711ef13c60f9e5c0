package conservation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"botanica/internal/conservation/models"
)

func TestClassifier_AllCategories(t *testing.T) {
	tests := []struct {
		category   models.Category
		threatened bool
		priority   int
	}{
		{models.NotEvaluated, false, 0},
		{models.LeastConcern, false, 1},
		{models.DataDeficient, false, 3},
		{models.NearThreatened, false, 4},
		{models.Vulnerable, true, 6},
		{models.Endangered, true, 7},
		{models.CriticallyEndangered, true, 8},
		{models.ExtinctInWild, true, 9},
		{models.Extinct, true, 10},
	}
	assert.Len(t, tests, len(models.Categories), "every category is covered")

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			a := models.Assessment{Category: tt.category}
			assert.Equal(t, tt.threatened, IsThreatened(a))
			assert.Equal(t, tt.priority, PriorityScore(a))
			assert.GreaterOrEqual(t, PriorityScore(a), 0)
			assert.LessOrEqual(t, PriorityScore(a), 10)
		})
	}
}

// Justification: the table is literal; DataDeficient is not promoted above NearThreatened.
func TestPriorityScore_DataDeficientBelowNearThreatened(t *testing.T) {
	dd := PriorityScore(models.Assessment{Category: models.DataDeficient})
	nt := PriorityScore(models.Assessment{Category: models.NearThreatened})
	assert.Less(t, dd, nt)
}

func TestClassify(t *testing.T) {
	t.Run("nil assessment is unavailable", func(t *testing.T) {
		c := Classify("Unknown plant", nil)
		assert.False(t, c.Available)
		assert.False(t, c.Threatened)
		assert.Zero(t, c.Priority)
		assert.Nil(t, c.Assessment)
	})

	t.Run("endangered species", func(t *testing.T) {
		a := &models.Assessment{ScientificName: "Abies nebrodensis", Category: models.CriticallyEndangered}
		c := Classify(a.ScientificName, a)
		assert.True(t, c.Available)
		assert.True(t, c.Threatened)
		assert.Equal(t, 8, c.Priority)
		assert.Same(t, a, c.Assessment)
	})
}
