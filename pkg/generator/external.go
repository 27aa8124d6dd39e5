package generator

import (
	"context"
	"fmt"
	"time"

	"krishi/entities"
	"krishi/pkg/ai"
	"krishi/pkg/calendar"
)

// External delegates to the generative plan service and normalizes its
// response into the shared Result shape. It never retries; the lifecycle
// manager records each attempt and falls back to the heuristic on failure.
type External struct {
	client  ai.Client
	timeout time.Duration
}

func NewExternal(client ai.Client, timeout time.Duration) *External {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &External{client: client, timeout: timeout}
}

func (g *External) Generate(ctx context.Context, in Input) (*Result, error) {
	if g.client == nil {
		return nil, fmt.Errorf("generative service not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req := ai.PlanRequest{
		CropType:     in.CropType,
		CropName:     in.CropName,
		Area:         in.Area,
		PlantingDate: calendar.ToISODay(in.Planting),
		Country:      in.Country,
	}
	if in.Harvest != nil {
		req.HarvestDate = calendar.ToISODay(*in.Harvest)
	}

	resp, err := g.client.GeneratePlan(ctx, req)
	if err != nil {
		return nil, err
	}

	harvest, err := calendar.ParseLooseDate(resp.HarvestDate)
	if err != nil {
		if in.Harvest != nil {
			harvest = *in.Harvest
		} else {
			return nil, fmt.Errorf("generated plan has no usable harvest date: %w", err)
		}
	}
	// Never accept a harvest at or before planting.
	if !harvest.After(in.Planting) {
		harvest = calendar.AddDays(in.Planting, 1)
	}

	res := &Result{
		Title:       resp.Title,
		Overview:    resp.Overview,
		HarvestDate: calendar.ToISODay(harvest),
		CleanupDate: calendar.ToISODay(calendar.AddDays(harvest, 1)),
		Watering:    resp.Watering,
		Recurring:   make([]entities.RecurringTaskRule, 0, len(resp.Recurring)),
		OneOffs:     make([]entities.OneOffTask, 0, len(resp.OneOffs)),
		Source:      entities.SourceGenerated,
	}

	for _, r := range resp.Recurring {
		if r.Title.Empty() {
			continue
		}
		r.Category = normalizeCategory(r.Category)
		if r.RuleID == "" {
			r.RuleID = entities.DeriveRuleID(r.Category, r.Title)
		}
		res.Recurring = append(res.Recurring, r)
	}
	for _, o := range resp.OneOffs {
		if o.Title.Empty() {
			continue
		}
		due, err := calendar.ParseLooseDate(o.DueDate)
		if err != nil {
			continue
		}
		// The expander compares due dates lexicographically, so DD/MM/YYYY
		// input must become ISO here.
		o.DueDate = calendar.ToISODay(due)
		o.Category = normalizeCategory(o.Category)
		res.OneOffs = append(res.OneOffs, o)
	}
	return res, nil
}

var knownCategories = map[string]bool{
	entities.CategoryWatering:   true,
	entities.CategoryFertilizer: true,
	entities.CategoryPest:       true,
	entities.CategoryDisease:    true,
	entities.CategoryField:      true,
	entities.CategoryHarvest:    true,
	entities.CategoryGeneral:    true,
}

func normalizeCategory(c string) string {
	if knownCategories[c] {
		return c
	}
	return entities.CategoryGeneral
}
