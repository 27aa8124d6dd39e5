package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"krishi/entities"
	"krishi/pkg/calendar"
	"krishi/pkg/generator"
	"krishi/pkg/plan/repository"
	"krishi/pkg/plan/service"
	"krishi/pkg/rules"
)

type PlanSvc struct {
	repo      repository.PlanRepository
	engine    rules.Engine
	external  generator.Generator
	heuristic generator.Generator
	log       *zap.Logger
	country   string
	now       func() time.Time
}

func NewPlanService(repo repository.PlanRepository, engine rules.Engine, external, heuristic generator.Generator, country string, log *zap.Logger) *PlanSvc {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlanSvc{
		repo:      repo,
		engine:    engine,
		external:  external,
		heuristic: heuristic,
		log:       log,
		country:   country,
		now:       time.Now,
	}
}

// WithClock pins "today" for tests.
func (s *PlanSvc) WithClock(now func() time.Time) *PlanSvc {
	s.now = now
	return s
}

func (s *PlanSvc) CreateOrReuse(ctx context.Context, userID string, req service.CreateRequest) (string, error) {
	in, err := s.validate(req)
	if err != nil {
		return "", err
	}
	plantingISO := calendar.ToISODay(in.Planting)
	planID := entities.DerivePlanID(in.CropName, plantingISO, in.Area)

	p, err := s.repo.Get(userID, planID)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNotFound):
		p = &entities.FarmingPlan{
			UserID:       userID,
			PlanID:       planID,
			CropType:     in.CropType,
			CropName:     in.CropName,
			Area:         in.Area,
			PlantingDate: plantingISO,
			Status:       entities.StatusActive,
		}
		if err := s.repo.Put(p); err != nil {
			return "", fmt.Errorf("persist plan skeleton: %w", err)
		}
	default:
		return "", err
	}

	// Idempotency: generated content present means nothing left to do.
	if p.Generated() {
		return planID, nil
	}

	// A recorded attempt, success or failure, is never retried against the
	// external service; missing content is filled heuristically instead.
	if p.GenerationAttemptedAt != nil {
		return planID, s.fillHeuristic(ctx, p, in)
	}

	at := s.now().UTC()
	claimed, err := s.repo.ClaimGeneration(userID, planID, at)
	if err != nil {
		return "", err
	}
	if !claimed {
		// Lost the creation race. The winner generates synchronously;
		// converge on its plan rather than erroring.
		p, err = s.repo.Get(userID, planID)
		if err != nil {
			return "", err
		}
		if p.Generated() {
			return planID, nil
		}
		return planID, s.fillHeuristic(ctx, p, in)
	}

	p.GenerationAttemptedAt = &at
	res, genErr := s.external.Generate(ctx, in)
	if genErr != nil {
		s.log.Warn("external plan generation failed, using heuristic",
			zap.String("plan_id", planID), zap.String("crop", in.CropName), zap.Error(genErr))
		p.GenerationError = genErr.Error()
		return planID, s.fillHeuristic(ctx, p, in)
	}

	s.apply(p, res)
	if err := s.repo.Put(p); err != nil {
		return "", fmt.Errorf("persist generated plan: %w", err)
	}
	return planID, nil
}

func (s *PlanSvc) fillHeuristic(ctx context.Context, p *entities.FarmingPlan, in generator.Input) error {
	res, err := s.heuristic.Generate(ctx, in)
	if err != nil {
		return fmt.Errorf("heuristic generation: %w", err)
	}
	s.apply(p, res)
	// Conditional write: a concurrent caller may have persisted generated
	// content since this plan was read, and heuristic content must never
	// replace it.
	applied, err := s.repo.FillIfEmpty(p)
	if err != nil {
		return fmt.Errorf("persist heuristic plan: %w", err)
	}
	if !applied {
		s.log.Debug("heuristic fill skipped, plan already has content",
			zap.String("plan_id", p.PlanID))
	}
	return nil
}

func (s *PlanSvc) apply(p *entities.FarmingPlan, res *generator.Result) {
	p.Title = res.Title
	p.Overview = res.Overview
	p.HarvestDate = res.HarvestDate
	p.CleanupDate = res.CleanupDate
	p.Watering = res.Watering
	p.Recurring = res.Recurring
	p.OneOffs = res.OneOffs
	p.Source = res.Source
}

func (s *PlanSvc) validate(req service.CreateRequest) (generator.Input, error) {
	var in generator.Input
	if strings.TrimSpace(req.CropName) == "" {
		return in, fmt.Errorf("%w: crop name is required", service.ErrInvalidInput)
	}
	if req.Area <= 0 {
		return in, fmt.Errorf("%w: area must be positive", service.ErrInvalidInput)
	}
	planting, err := calendar.ParseLooseDate(req.PlantingDate)
	if err != nil {
		return in, fmt.Errorf("%w: planting date: %v", service.ErrInvalidInput, err)
	}
	in = generator.Input{
		CropType: req.CropType,
		CropName: req.CropName,
		Area:     req.Area,
		Planting: planting,
		Country:  s.country,
	}
	if strings.TrimSpace(req.HarvestDate) != "" {
		harvest, err := calendar.ParseLooseDate(req.HarvestDate)
		if err != nil {
			return in, fmt.Errorf("%w: harvest date: %v", service.ErrInvalidInput, err)
		}
		if !harvest.After(planting) {
			return in, fmt.Errorf("%w: harvest date must be after planting date", service.ErrInvalidInput)
		}
		in.Harvest = &harvest
	}
	return in, nil
}

func (s *PlanSvc) GetPlan(userID, planID string) (*entities.FarmingPlan, error) {
	p, err := s.repo.Get(userID, planID)
	if err != nil {
		return nil, err
	}
	s.refreshStatus(p)
	return p, nil
}

func (s *PlanSvc) GetTasksInRange(userID, planID, startISO, endISO, lang string) ([]entities.TaskInstance, error) {
	p, err := s.repo.Get(userID, planID)
	if err != nil {
		return nil, err
	}
	return s.engine.Expand(p, startISO, endISO, lang), nil
}

func (s *PlanSvc) GetTasksOnDate(userID, planID, dateISO, lang string) ([]entities.TaskInstance, error) {
	tasks, err := s.GetTasksInRange(userID, planID, dateISO, dateISO, lang)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].Category != entities.CategoryWatering {
			continue
		}
		if qty, unit, ok := waterHint(tasks[i].Notes); ok {
			tasks[i].Qty = &qty
			tasks[i].Unit = unit
		}
	}
	return tasks, nil
}

func (s *PlanSvc) GetUpcoming(userID string, windowDays int, lang string) ([]entities.TaskInstance, error) {
	today := s.now()
	plans, err := s.repo.ListActive(userID, calendar.ToISODay(today))
	if err != nil {
		return nil, err
	}

	seen := map[string]entities.TaskInstance{}
	for i := range plans {
		for _, t := range s.engine.ExpandUpcoming(&plans[i], today, windowDays, lang) {
			seen[t.DedupKey()] = t
		}
	}
	out := make([]entities.TaskInstance, 0, len(seen))
	for _, t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DueDate != out[j].DueDate {
			return out[i].DueDate < out[j].DueDate
		}
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].PlanID < out[j].PlanID
	})
	return out, nil
}

func (s *PlanSvc) CleanupExpired(userID string) (int64, error) {
	return s.repo.DeleteExpired(userID, calendar.ToISODay(s.now()))
}

func (s *PlanSvc) refreshStatus(p *entities.FarmingPlan) {
	if p.CleanupDate != "" && p.CleanupDate < calendar.ToISODay(s.now()) {
		p.Status = entities.StatusCompleted
	}
}

// waterHintRe matches "50 mm", "12.5 L" and similar amounts in notes text.
var waterHintRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(mm|l)\b`)

func waterHint(notes string) (float64, string, bool) {
	m := waterHintRe.FindStringSubmatch(notes)
	if m == nil {
		return 0, "", false
	}
	qty, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}
	unit := "mm"
	if strings.EqualFold(m[2], "l") {
		unit = "L"
	}
	return qty, unit, true
}
