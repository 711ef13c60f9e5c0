package models

import (
	"strings"

	dErrors "botanica/pkg/domain-errors"
)

// GrowthStage is the phenological stage noted on a cultivation record.
type GrowthStage string

const (
	GrowthStageSeed       GrowthStage = "seed"
	GrowthStageSeedling   GrowthStage = "seedling"
	GrowthStageVegetative GrowthStage = "vegetative"
	GrowthStageFlowering  GrowthStage = "flowering"
	GrowthStageFruiting   GrowthStage = "fruiting"
	GrowthStageHarvest    GrowthStage = "harvest"
	GrowthStageDormant    GrowthStage = "dormant"
)

var growthStages = map[GrowthStage]string{
	GrowthStageSeed:       "Seed",
	GrowthStageSeedling:   "Seedling",
	GrowthStageVegetative: "Vegetative",
	GrowthStageFlowering:  "Flowering",
	GrowthStageFruiting:   "Fruiting",
	GrowthStageHarvest:    "Harvest",
	GrowthStageDormant:    "Dormant",
}

// ParseGrowthStage accepts any casing of a known stage.
func ParseGrowthStage(s string) (GrowthStage, error) {
	stage := GrowthStage(strings.ToLower(strings.TrimSpace(s)))
	if !stage.IsValid() {
		return "", dErrors.Newf(dErrors.CodeValidation, "unknown growth stage %q", s)
	}
	return stage, nil
}

func (g GrowthStage) IsValid() bool {
	_, ok := growthStages[g]
	return ok
}

// Label is the display form used when assembling plant context.
func (g GrowthStage) Label() string {
	if label, ok := growthStages[g]; ok {
		return label
	}
	return string(g)
}
