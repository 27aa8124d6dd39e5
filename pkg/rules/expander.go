// Package rules expands a plan's declarative rule sources into concrete,
// localized task instances for a requested date window. Expansion is pure:
// no I/O, and identical inputs always produce the identical sequence.
package rules

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"krishi/entities"
	"krishi/pkg/calendar"
	"krishi/pkg/locale"
)

// Engine turns rule sources into dated task instances.
type Engine interface {
	// Expand returns every instance whose due date falls inside
	// [startISO, endISO], further clamped to the plan's own
	// [planting, harvest] span. Safe for concurrent use.
	Expand(p *entities.FarmingPlan, startISO, endISO, lang string) []entities.TaskInstance

	// ExpandUpcoming anchors the window at today through today+windowDays.
	ExpandUpcoming(p *entities.FarmingPlan, today time.Time, windowDays int, lang string) []entities.TaskInstance
}

type engine struct {
	log *zap.Logger
}

// New builds the expansion engine. The logger only ever reports corrupt plan
// records; expansion itself performs no I/O.
func New(log *zap.Logger) Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &engine{log: log}
}

// Default time-of-day slot per task category.
var defaultSlot = map[string]string{
	entities.CategoryWatering:   entities.TimeMorning,
	entities.CategoryFertilizer: entities.TimeMorning,
	entities.CategoryDisease:    entities.TimeMorning,
	entities.CategoryHarvest:    entities.TimeMorning,
	entities.CategoryPest:       entities.TimeEvening,
	entities.CategoryField:      entities.TimeAfternoon,
	entities.CategoryGeneral:    entities.TimeAfternoon,
}

// Default clock time per slot.
var slotClock = map[string]string{
	entities.TimeMorning:   "07:00",
	entities.TimeAfternoon: "13:00",
	entities.TimeEvening:   "18:00",
	entities.TimeNight:     "20:30",
}

// SlotFor resolves a possibly-absent time-of-day against the category default.
func SlotFor(timeOfDay, category string) string {
	if _, ok := slotClock[timeOfDay]; ok {
		return timeOfDay
	}
	if s, ok := defaultSlot[category]; ok {
		return s
	}
	return entities.TimeAfternoon
}

// ClockFor maps a slot to its default clock time.
func ClockFor(slot string) string {
	if c, ok := slotClock[slot]; ok {
		return c
	}
	return slotClock[entities.TimeAfternoon]
}

func (e *engine) Expand(p *entities.FarmingPlan, startISO, endISO, lang string) []entities.TaskInstance {
	if p == nil || startISO > endISO {
		return nil
	}
	lang = locale.Normalize(lang)

	planting, err := calendar.ParseLooseDate(p.PlantingDate)
	if err != nil {
		e.log.Warn("plan has unparseable planting date, excluded from expansion",
			zap.String("plan_id", p.PlanID), zap.String("planting_date", p.PlantingDate), zap.Error(err))
		return nil
	}
	harvest, err := calendar.ParseLooseDate(p.HarvestDate)
	if err != nil {
		e.log.Warn("plan has unparseable harvest date, excluded from expansion",
			zap.String("plan_id", p.PlanID), zap.String("harvest_date", p.HarvestDate), zap.Error(err))
		return nil
	}

	// Clamp the requested window to the plan's own lifetime. Tasks never
	// surface before planting or after the declared harvest.
	plantingISO := calendar.ToISODay(planting)
	harvestISO := calendar.ToISODay(harvest)
	effStart := calendar.ClampISO(startISO, plantingISO, harvestISO)
	effEnd := calendar.ClampISO(endISO, plantingISO, harvestISO)
	if startISO > harvestISO || endISO < plantingISO || effStart > effEnd {
		return nil
	}

	winStart := daysBetween(planting, effStart)
	winEnd := daysBetween(planting, effEnd)

	planTitle := resolvePlanText(p.Title, lang)
	seen := map[string]entities.TaskInstance{}
	keep := func(t entities.TaskInstance) { seen[t.DedupKey()] = t }

	for _, w := range p.Watering {
		for _, off := range occurrences(w.StartDay, w.EndDay, w.EveryDays, winStart, winEnd) {
			keep(e.instance(p, planTitle, entities.CategoryWatering, w.Title, w.Notes, w.TimeOfDay, planting, off, lang))
		}
	}
	for _, r := range p.Recurring {
		for _, off := range occurrences(r.StartDay, r.EndDay, r.EveryDays, winStart, winEnd) {
			keep(e.instance(p, planTitle, r.Category, r.Title, r.Notes, r.TimeOfDay, planting, off, lang))
		}
	}
	for _, o := range p.OneOffs {
		if o.DueDate < effStart || o.DueDate > effEnd {
			continue
		}
		slot := SlotFor(o.TimeOfDay, o.Category)
		keep(entities.TaskInstance{
			PlanID:    p.PlanID,
			CropName:  p.CropName,
			PlanTitle: planTitle,
			Category:  o.Category,
			Title:     locale.ResolveText(o.Title, lang),
			DueDate:   o.DueDate,
			TimeOfDay: slot,
			Time:      ClockFor(slot),
			Notes:     locale.ResolveText(o.Notes, lang),
		})
	}

	out := make([]entities.TaskInstance, 0, len(seen))
	for _, t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DueDate != out[j].DueDate {
			return out[i].DueDate < out[j].DueDate
		}
		return out[i].Title < out[j].Title
	})
	return out
}

func (e *engine) ExpandUpcoming(p *entities.FarmingPlan, today time.Time, windowDays int, lang string) []entities.TaskInstance {
	if windowDays < 0 {
		return nil
	}
	start := calendar.ToISODay(today)
	end := calendar.ToISODay(calendar.AddDays(today, windowDays))
	return e.Expand(p, start, end, lang)
}

// occurrences walks a rule's arithmetic day sequence, aligning the cursor to
// the window start in whole strides so a long rule is never enumerated from
// day zero for a narrow window. Offsets are days since planting.
func occurrences(startDay, endDay, every, winStart, winEnd int) []int {
	if every >= entities.NeverStride {
		// Disabled rule ("irrigation stops" markers).
		return nil
	}
	if every < 1 {
		every = 1
	}
	last := endDay
	if winEnd < last {
		last = winEnd
	}
	cursor := startDay
	if cursor < winStart {
		steps := (winStart - cursor + every - 1) / every
		cursor += steps * every
	}
	var out []int
	for ; cursor <= last; cursor += every {
		out = append(out, cursor)
	}
	return out
}

func (e *engine) instance(p *entities.FarmingPlan, planTitle, category string, title, notes entities.Text, timeOfDay string, planting time.Time, dayOffset int, lang string) entities.TaskInstance {
	slot := SlotFor(timeOfDay, category)
	return entities.TaskInstance{
		PlanID:    p.PlanID,
		CropName:  p.CropName,
		PlanTitle: planTitle,
		Category:  category,
		Title:     locale.ResolveText(title, lang),
		DueDate:   calendar.ToISODay(calendar.AddDays(planting, dayOffset)),
		TimeOfDay: slot,
		Time:      ClockFor(slot),
		Notes:     locale.ResolveText(notes, lang),
	}
}

func resolvePlanText(lt entities.LocalizedText, lang string) string {
	v, _ := locale.Resolve(lt, lang)
	return v
}

// daysBetween counts whole days from a midnight-anchored date to an ISO day.
func daysBetween(from time.Time, iso string) int {
	to, err := calendar.ParseLooseDate(iso)
	if err != nil {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
