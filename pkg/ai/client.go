// Package ai talks to the external generative plan service. The service is
// treated as unreliable and possibly unconfigured; callers must work fully
// without it.
package ai

import (
	"context"

	"krishi/entities"
)

// PlanRequest carries the inputs for one plan generation.
type PlanRequest struct {
	CropType     string  `json:"crop_type"`
	CropName     string  `json:"crop_name"`
	Area         float64 `json:"area"`
	PlantingDate string  `json:"planting_date"`          // YYYY-MM-DD
	HarvestDate  string  `json:"harvest_date,omitempty"` // empty = let the service infer
	Country      string  `json:"country"`
}

// PlanResponse is the structured plan the service returns.
type PlanResponse struct {
	Title       entities.LocalizedText       `json:"title"`
	Overview    entities.LocalizedText       `json:"overview"`
	HarvestDate string                       `json:"harvest_date"` // YYYY-MM-DD
	Watering    []entities.WateringRule      `json:"watering"`
	Recurring   []entities.RecurringTaskRule `json:"recurring"`
	OneOffs     []entities.OneOffTask        `json:"one_offs"`
}

type Client interface {
	// GeneratePlan synthesizes a full rule set for the given crop cycle.
	// The context bounds the call; a timeout is an ordinary failure.
	GeneratePlan(ctx context.Context, req PlanRequest) (*PlanResponse, error)
}
