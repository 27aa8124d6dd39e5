package generator

import (
	"context"
	"strings"
	"time"

	"krishi/entities"
	"krishi/pkg/calendar"
	"krishi/pkg/locale"
)

// Heuristic is the deterministic, offline plan builder. Every phrase it emits
// is a key in the locale package's static dictionary, so heuristic plans
// localize with no translation work of their own.
type Heuristic struct {
	maturity map[string]int // crop name or family -> days, merged over the defaults
}

// NewHeuristic builds the heuristic generator. Overrides (typically loaded
// from the crop-table workbook) shadow the built-in maturity days.
func NewHeuristic(overrides map[string]int) *Heuristic {
	m := make(map[string]int, len(defaultMaturity)+len(overrides))
	for k, v := range defaultMaturity {
		m[k] = v
	}
	for k, v := range overrides {
		m[k] = v
	}
	return &Heuristic{maturity: m}
}

func (h *Heuristic) Generate(_ context.Context, in Input) (*Result, error) {
	family := cropFamily(in.CropType, in.CropName)
	maturity := h.maturityFor(in.CropType, in.CropName, family)

	var harvest time.Time
	if in.Harvest != nil {
		harvest = *in.Harvest
	} else {
		harvest = calendar.AddDays(in.Planting, maturity)
	}
	if !harvest.After(in.Planting) {
		harvest = calendar.AddDays(in.Planting, 1)
	}
	days := int(harvest.Sub(in.Planting).Hours() / 24)

	res := &Result{
		Title:       locale.Phrases[planTitleKey(family)],
		Overview:    locale.Phrases["A season-long schedule of watering, fertilization and field care from planting to harvest."],
		HarvestDate: calendar.ToISODay(harvest),
		CleanupDate: calendar.ToISODay(calendar.AddDays(harvest, 1)),
		Source:      entities.SourceHeuristic,
	}

	switch family {
	case familyRice:
		h.riceSchedule(res, in, days)
	case familyWheat:
		h.wheatSchedule(res, in, days)
	default:
		h.genericSchedule(res, in, days)
	}

	for i := range res.Recurring {
		if res.Recurring[i].RuleID == "" {
			res.Recurring[i].RuleID = entities.DeriveRuleID(res.Recurring[i].Category, res.Recurring[i].Title)
		}
	}
	return res, nil
}

// maturityFor prefers an exact crop entry (maize, potato, workbook overrides)
// over the schedule family's default.
func (h *Heuristic) maturityFor(cropType, cropName, family string) int {
	for _, k := range []string{
		strings.ToLower(strings.TrimSpace(cropName)),
		strings.ToLower(strings.TrimSpace(cropType)),
		family,
	} {
		if d, ok := h.maturity[k]; ok && d > 0 {
			return d
		}
	}
	return h.maturity[familyGeneric]
}

func planTitleKey(family string) string {
	switch family {
	case familyRice:
		return "Rice cultivation plan"
	case familyWheat:
		return "Wheat cultivation plan"
	default:
		return "Crop cultivation plan"
	}
}

func (h *Heuristic) riceSchedule(res *Result, in Input, days int) {
	res.Watering = []entities.WateringRule{
		{StartDay: 0, EndDay: min(30, days), EveryDays: 1,
			Title: entities.Phrase("Keep 2-3 cm standing water in the field"),
			Notes: entities.Phrase("Apply about 50 mm of water")},
		{StartDay: 31, EndDay: days - 15, EveryDays: 3,
			Title: entities.Phrase("Alternate wetting and drying irrigation"),
			Notes: entities.Phrase("Apply about 50 mm of water")},
		// Terminal drainage marker: a disabled stride carries the advice
		// without ever emitting an occurrence.
		{StartDay: days - 14, EndDay: days, EveryDays: entities.NeverStride,
			Title: entities.Phrase("Stop irrigation before harvest"),
			Notes: entities.Phrase("Drain the field and let it dry")},
	}
	res.Recurring = []entities.RecurringTaskRule{
		{Category: entities.CategoryFertilizer, StartDay: 20, EndDay: 60, EveryDays: 20,
			Title: entities.Phrase("Top dress urea and irrigate afterwards")},
		{Category: entities.CategoryPest, StartDay: 14, EndDay: days - 20, EveryDays: 7,
			Title: entities.Phrase("Scout for pests and natural enemies"),
			Notes: entities.Phrase("Apply pest control only if threshold is crossed")},
		{Category: entities.CategoryDisease, StartDay: 21, EndDay: days - 20, EveryDays: 10,
			Title: entities.Phrase("Check leaves for disease symptoms")},
		{Category: entities.CategoryField, StartDay: 15, EndDay: min(45, days), EveryDays: 15,
			Title: entities.Phrase("Remove weeds from the field")},
	}
	res.OneOffs = []entities.OneOffTask{
		{Category: entities.CategoryFertilizer, DueDate: calendar.ToISODay(in.Planting),
			Title: entities.Phrase("Basal fertilization (FYM/compost + recommended NPK) and zinc if needed")},
		{Category: entities.CategoryHarvest, DueDate: res.HarvestDate,
			Title: entities.Phrase("Harvest when 80-85% of grains are golden")},
	}
}

func (h *Heuristic) wheatSchedule(res *Result, in Input, days int) {
	res.Watering = []entities.WateringRule{
		{StartDay: 0, EndDay: min(20, days), EveryDays: 4,
			Title: entities.Phrase("Light irrigation to keep the soil moist")},
		{StartDay: 25, EndDay: days - 20, EveryDays: 12,
			Title: entities.Phrase("Irrigate the field"),
			Notes: entities.Phrase("Apply about 50 mm of water")},
		{StartDay: days - 19, EndDay: days, EveryDays: entities.NeverStride,
			Title: entities.Phrase("Stop irrigation before harvest")},
	}
	res.Recurring = []entities.RecurringTaskRule{
		{Category: entities.CategoryFertilizer, StartDay: 21, EndDay: 65, EveryDays: 22,
			Title: entities.Phrase("Split application of nitrogen fertilizer")},
		{Category: entities.CategoryPest, StartDay: 14, EndDay: days - 20, EveryDays: 7,
			Title: entities.Phrase("Scout for pests and natural enemies")},
		{Category: entities.CategoryField, StartDay: 20, EndDay: min(50, days), EveryDays: 15,
			Title: entities.Phrase("Remove weeds from the field")},
	}
	res.OneOffs = []entities.OneOffTask{
		{Category: entities.CategoryFertilizer, DueDate: calendar.ToISODay(in.Planting),
			Title: entities.Phrase("Basal fertilization (FYM/compost + recommended NPK) and zinc if needed")},
		{Category: entities.CategoryWatering, DueDate: calendar.ToISODay(calendar.AddDays(in.Planting, 21)),
			Title: entities.Phrase("First irrigation at crown root initiation stage")},
		{Category: entities.CategoryHarvest, DueDate: res.HarvestDate,
			Title: entities.Phrase("Harvest the crop")},
	}
}

func (h *Heuristic) genericSchedule(res *Result, in Input, days int) {
	res.Watering = []entities.WateringRule{
		{StartDay: 0, EndDay: min(30, days), EveryDays: 2,
			Title: entities.Phrase("Irrigate the field")},
		{StartDay: 31, EndDay: days - 10, EveryDays: 4,
			Title: entities.Phrase("Irrigate the field"),
			Notes: entities.Phrase("Apply about 50 mm of water")},
	}
	res.Recurring = []entities.RecurringTaskRule{
		{Category: entities.CategoryFertilizer, StartDay: 25, EndDay: 25, EveryDays: 1,
			Title: entities.Phrase("Top dress urea and irrigate afterwards")},
		{Category: entities.CategoryPest, StartDay: 10, EndDay: days - 15, EveryDays: 7,
			Title: entities.Phrase("Scout for pests and natural enemies")},
		{Category: entities.CategoryField, StartDay: 15, EndDay: min(60, days), EveryDays: 15,
			Title: entities.Phrase("Remove weeds from the field")},
	}
	res.OneOffs = []entities.OneOffTask{
		{Category: entities.CategoryFertilizer, DueDate: calendar.ToISODay(in.Planting),
			Title: entities.Phrase("Basal fertilization (FYM/compost + recommended NPK) and zinc if needed")},
		{Category: entities.CategoryHarvest, DueDate: res.HarvestDate,
			Title: entities.Phrase("Harvest the crop")},
	}
}
