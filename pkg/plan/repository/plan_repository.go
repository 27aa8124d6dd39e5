package repository

import (
	"errors"
	"time"

	"krishi/entities"
)

// ErrNotFound is returned when no plan exists for (userID, planID).
var ErrNotFound = errors.New("plan not found")

// PlanRepository is the persistent plan store, a document store keyed by
// user id and plan id.
type PlanRepository interface {
	Get(userID, planID string) (*entities.FarmingPlan, error)
	Put(p *entities.FarmingPlan) error

	// ClaimGeneration atomically stamps the generation attempt, succeeding
	// only if no attempt is recorded yet. Returns false when another caller
	// already holds or held the claim. This conditional write closes the
	// concurrent-create race on the external generator.
	ClaimGeneration(userID, planID string, at time.Time) (bool, error)

	// FillIfEmpty writes p's plan content (title, overview, dates, rules,
	// source, generation error) only while the stored row has no content yet.
	// Returns false without writing when another caller filled the plan
	// first; like ClaimGeneration, the condition lives in the store, not in
	// process memory.
	FillIfEmpty(p *entities.FarmingPlan) (bool, error)

	// ListActive returns plans whose cleanup date is on or after today.
	ListActive(userID, todayISO string) ([]entities.FarmingPlan, error)

	// DeleteExpired removes plans whose cleanup date is strictly before
	// today and reports how many went away. Safe to run repeatedly.
	DeleteExpired(userID, todayISO string) (int64, error)
}
