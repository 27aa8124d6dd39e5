package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalizedText maps a language code ("en", "bn") to display text.
// The "en" entry doubles as the language-neutral canonical phrase.
type LocalizedText map[string]string

// Default returns the neutral-language entry.
func (lt LocalizedText) Default() string { return lt["en"] }

// Task categories.
const (
	CategoryWatering   = "watering"
	CategoryFertilizer = "fertilizer"
	CategoryPest       = "pest"
	CategoryDisease    = "disease"
	CategoryField      = "field"
	CategoryHarvest    = "harvest"
	CategoryGeneral    = "general"
)

// Time-of-day slots.
const (
	TimeMorning   = "morning"
	TimeAfternoon = "afternoon"
	TimeEvening   = "evening"
	TimeNight     = "night"
)

// Plan sources.
const (
	SourceHeuristic = "heuristic"
	SourceGenerated = "generated"
)

// Plan statuses.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// NeverStride marks a rule as disabled; strides at or above it emit nothing.
// Used to encode "irrigation stops here" markers without a separate rule kind.
const NeverStride = 999

// Text is a tagged-optional title/notes value: the canonical neutral phrase
// plus optional explicit translations. Heuristic plans and records written
// before localized fields existed carry only Key; the locale package
// backfills translations from its phrase dictionary.
type Text struct {
	Key       string        `json:"key,omitempty"`
	Localized LocalizedText `json:"localized,omitempty"`
}

// Phrase wraps a canonical phrase with no explicit translations.
func Phrase(key string) Text { return Text{Key: key} }

// Empty reports whether the value carries neither a key nor translations.
func (t Text) Empty() bool { return t.Key == "" && len(t.Localized) == 0 }

// WateringRule generates watering occurrences on an arithmetic day sequence
// relative to the planting date: startDay, startDay+everyDays, ... up to
// endDay inclusive.
type WateringRule struct {
	StartDay  int    `json:"start_day"`
	EndDay    int    `json:"end_day"`
	EveryDays int    `json:"every_days"`
	TimeOfDay string `json:"time_of_day,omitempty"` // morning|afternoon|evening|night, empty = category default
	Title     Text   `json:"title"`
	Notes     Text   `json:"notes,omitempty"`
}

// RecurringTaskRule is a WateringRule with an explicit category and a stable id.
type RecurringTaskRule struct {
	RuleID    string `json:"rule_id"`
	Category  string `json:"category"`
	StartDay  int    `json:"start_day"`
	EndDay    int    `json:"end_day"`
	EveryDays int    `json:"every_days"`
	TimeOfDay string `json:"time_of_day,omitempty"`
	Title     Text   `json:"title"`
	Notes     Text   `json:"notes,omitempty"`
}

// OneOffTask is a single dated task with an absolute due date.
type OneOffTask struct {
	Category  string `json:"category"`
	DueDate   string `json:"due_date"` // YYYY-MM-DD
	TimeOfDay string `json:"time_of_day,omitempty"`
	Title     Text   `json:"title"`
	Notes     Text   `json:"notes,omitempty"`
}

// FarmingPlan is the aggregate root for one crop-planting cycle. The rule
// collections are stored as JSON documents; the record is immutable after
// generation except for status and the generation bookkeeping fields.
type FarmingPlan struct {
	UserID string `gorm:"primaryKey" json:"user_id"`
	PlanID string `gorm:"primaryKey" json:"plan_id"`

	CropType     string  `json:"crop_type"`
	CropName     string  `json:"crop_name"`
	Area         float64 `json:"area"`
	PlantingDate string  `json:"planting_date"` // YYYY-MM-DD
	HarvestDate  string  `json:"harvest_date"`
	CleanupDate  string  `json:"cleanup_date"` // harvest + 1 day
	Status       string  `json:"status"`       // active|completed
	Source       string  `json:"source"`       // heuristic|generated

	Title    LocalizedText `gorm:"serializer:json" json:"title"`
	Overview LocalizedText `gorm:"serializer:json" json:"overview"`

	Watering  []WateringRule      `gorm:"serializer:json" json:"watering"`
	Recurring []RecurringTaskRule `gorm:"serializer:json" json:"recurring"`
	OneOffs   []OneOffTask        `gorm:"serializer:json" json:"one_offs"`

	GenerationAttemptedAt *time.Time `json:"generation_attempted_at,omitempty"`
	GenerationError       string     `json:"generation_error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Generated reports whether the plan already carries generated content.
func (p *FarmingPlan) Generated() bool {
	return len(p.Title) > 0 && len(p.Overview) > 0
}

// planNamespace salts the deterministic plan ids.
var planNamespace = uuid.MustParse("8f1b9a52-6c3d-4b77-9a10-2f6e4d0c51aa")

// DerivePlanID computes the deterministic plan id for (crop, planting date,
// area). Resubmitting the same inputs always maps to the same plan.
func DerivePlanID(cropName, plantingISO string, area float64) string {
	crop := strings.ToLower(strings.Join(strings.Fields(cropName), " "))
	seed := fmt.Sprintf("%s|%s|%.3f", crop, plantingISO, area)
	return uuid.NewSHA1(planNamespace, []byte(seed)).String()
}

// DeriveRuleID gives a recurring rule a stable identifier from its category
// and canonical title.
func DeriveRuleID(category string, title Text) string {
	slug := strings.ToLower(strings.Join(strings.Fields(title.Key), "-"))
	return category + ":" + slug
}
