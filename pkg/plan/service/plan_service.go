package service

import (
	"context"
	"errors"

	"krishi/entities"
)

// ErrInvalidInput flags a rejected creation request; wrap it with the
// specific reason.
var ErrInvalidInput = errors.New("invalid plan input")

// CreateRequest is one plan-creation call. Dates accept ISO or DD/MM/YYYY.
type CreateRequest struct {
	CropType     string  `json:"crop_type"`
	CropName     string  `json:"crop_name"`
	Area         float64 `json:"area"`
	PlantingDate string  `json:"planting_date"`
	HarvestDate  string  `json:"harvest_date,omitempty"`
}

// PlanService is the plan lifecycle manager: idempotent creation, derived
// task queries and end-of-life cleanup.
type PlanService interface {
	// CreateOrReuse creates the plan for the deterministic id derived from
	// (crop, planting date, area), or reuses the existing one. The external
	// generator is attempted at most once per plan, ever.
	CreateOrReuse(ctx context.Context, userID string, req CreateRequest) (string, error)

	GetPlan(userID, planID string) (*entities.FarmingPlan, error)

	GetTasksInRange(userID, planID, startISO, endISO, lang string) ([]entities.TaskInstance, error)

	// GetTasksOnDate is a single-day range query; watering tasks carry a
	// best-effort water-amount hint extracted from their notes.
	GetTasksOnDate(userID, planID, dateISO, lang string) ([]entities.TaskInstance, error)

	// GetUpcoming expands a rolling today..today+windowDays window across
	// all of the user's active plans.
	GetUpcoming(userID string, windowDays int, lang string) ([]entities.TaskInstance, error)

	// CleanupExpired deletes plans past their cleanup date.
	CleanupExpired(userID string) (int64, error)
}
