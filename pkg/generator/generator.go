// Package generator builds the full rule set for a new plan. Two strategies
// share one output shape so the expansion engine never cares where a plan
// came from: the external generative service (preferred) and an offline
// crop-family heuristic.
package generator

import (
	"context"
	"time"

	"krishi/entities"
)

// Input is one validated plan-creation request.
type Input struct {
	CropType string
	CropName string
	Area     float64
	Planting time.Time
	Harvest  *time.Time // nil = infer from crop maturity
	Country  string
}

// Result is a complete generated rule set, ready to persist.
type Result struct {
	Title       entities.LocalizedText
	Overview    entities.LocalizedText
	HarvestDate string // YYYY-MM-DD
	CleanupDate string // harvest + 1 day
	Watering    []entities.WateringRule
	Recurring   []entities.RecurringTaskRule
	OneOffs     []entities.OneOffTask
	Source      string // heuristic|generated
}

// Generator is the strategy interface over the two plan builders.
type Generator interface {
	Generate(ctx context.Context, in Input) (*Result, error)
}
