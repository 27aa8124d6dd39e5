package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi/entities"
)

func testPlan() *entities.FarmingPlan {
	return &entities.FarmingPlan{
		UserID:       "u1",
		PlanID:       "p1",
		CropName:     "rice",
		PlantingDate: "2024-01-01",
		HarvestDate:  "2024-04-30",
		CleanupDate:  "2024-05-01",
		Title:        entities.LocalizedText{"en": "Rice cultivation plan"},
		Overview:     entities.LocalizedText{"en": "overview"},
	}
}

func TestExpand_CursorAlignment(t *testing.T) {
	p := testPlan()
	p.Watering = []entities.WateringRule{
		{StartDay: 0, EndDay: 30, EveryDays: 3, Title: entities.Phrase("Irrigate the field")},
	}
	e := New(nil)

	got := e.Expand(p, "2024-01-10", "2024-01-16", "en")
	require.Len(t, got, 3)
	assert.Equal(t, "2024-01-10", got[0].DueDate) // day 9
	assert.Equal(t, "2024-01-13", got[1].DueDate) // day 12
	assert.Equal(t, "2024-01-16", got[2].DueDate) // day 15
	for _, inst := range got {
		assert.Equal(t, "Irrigate the field", inst.Title)
		assert.Equal(t, entities.CategoryWatering, inst.Category)
		assert.Equal(t, entities.TimeMorning, inst.TimeOfDay)
		assert.Equal(t, "07:00", inst.Time)
	}
}

func TestExpand_FirstOccurrencePastWindowEnd(t *testing.T) {
	// Rule starts on day 40, window covers days 9..15 only. The loop must
	// terminate immediately and emit nothing.
	p := testPlan()
	p.Watering = []entities.WateringRule{
		{StartDay: 40, EndDay: 90, EveryDays: 2, Title: entities.Phrase("Irrigate the field")},
	}
	got := New(nil).Expand(p, "2024-01-10", "2024-01-16", "en")
	assert.Empty(t, got)
}

func TestExpand_DisabledStrideSentinel(t *testing.T) {
	p := testPlan()
	p.Watering = []entities.WateringRule{
		{StartDay: 0, EndDay: 119, EveryDays: entities.NeverStride, Title: entities.Phrase("Stop irrigation before harvest")},
		{StartDay: 0, EndDay: 119, EveryDays: 2000, Title: entities.Phrase("Stop irrigation before harvest")},
	}
	got := New(nil).Expand(p, "2024-01-01", "2024-04-30", "en")
	assert.Empty(t, got)
}

func TestExpand_WindowClampedToPlanSpan(t *testing.T) {
	p := testPlan()
	p.Watering = []entities.WateringRule{
		{StartDay: 0, EndDay: 365, EveryDays: 1, Title: entities.Phrase("Irrigate the field")},
	}
	e := New(nil)

	t.Run("window wider than plan", func(t *testing.T) {
		got := e.Expand(p, "2023-01-01", "2025-12-31", "en")
		require.NotEmpty(t, got)
		assert.Equal(t, "2024-01-01", got[0].DueDate)
		assert.Equal(t, "2024-04-30", got[len(got)-1].DueDate)
	})

	t.Run("window entirely before planting", func(t *testing.T) {
		assert.Empty(t, e.Expand(p, "2023-01-01", "2023-12-31", "en"))
	})

	t.Run("window entirely after harvest", func(t *testing.T) {
		assert.Empty(t, e.Expand(p, "2024-05-02", "2024-06-01", "en"))
	})

	t.Run("inverted window", func(t *testing.T) {
		assert.Empty(t, e.Expand(p, "2024-02-01", "2024-01-01", "en"))
	})
}

func TestExpand_OneOffInclusion(t *testing.T) {
	p := testPlan()
	p.OneOffs = []entities.OneOffTask{
		{Category: entities.CategoryHarvest, DueDate: "2024-04-30", Title: entities.Phrase("Harvest the crop")},
		{Category: entities.CategoryGeneral, DueDate: "2024-02-15", Title: entities.Phrase("Mid-season check")},
	}
	got := New(nil).Expand(p, "2024-04-01", "2024-04-30", "en")
	require.Len(t, got, 1)
	assert.Equal(t, "Harvest the crop", got[0].Title)
	assert.Equal(t, entities.TimeMorning, got[0].TimeOfDay)
}

func TestExpand_Deduplication(t *testing.T) {
	// A watering rule and a recurring rule that land on the same day with the
	// same resolved title must collapse to one instance.
	p := testPlan()
	p.Watering = []entities.WateringRule{
		{StartDay: 0, EndDay: 10, EveryDays: 5, Title: entities.Phrase("Irrigate the field")},
	}
	p.Recurring = []entities.RecurringTaskRule{
		{Category: entities.CategoryWatering, StartDay: 0, EndDay: 10, EveryDays: 10, Title: entities.Phrase("Irrigate the field")},
	}
	got := New(nil).Expand(p, "2024-01-01", "2024-01-11", "en")
	keys := map[string]int{}
	for _, inst := range got {
		keys[inst.DedupKey()]++
	}
	for k, n := range keys {
		assert.Equalf(t, 1, n, "duplicate key %s", k)
	}
	require.Len(t, got, 3) // days 0, 5, 10
}

func TestExpand_OrderingAndDeterminism(t *testing.T) {
	p := testPlan()
	p.Watering = []entities.WateringRule{
		{StartDay: 0, EndDay: 20, EveryDays: 2, Title: entities.Phrase("Irrigate the field")},
	}
	p.Recurring = []entities.RecurringTaskRule{
		{Category: entities.CategoryPest, StartDay: 0, EndDay: 20, EveryDays: 2, Title: entities.Phrase("Scout for pests and natural enemies")},
		{Category: entities.CategoryField, StartDay: 0, EndDay: 20, EveryDays: 4, Title: entities.Phrase("Remove weeds from the field")},
	}
	e := New(nil)

	first := e.Expand(p, "2024-01-01", "2024-01-21", "bn")
	for i := 1; i < len(first); i++ {
		prev, cur := first[i-1], first[i]
		ok := prev.DueDate < cur.DueDate || (prev.DueDate == cur.DueDate && prev.Title <= cur.Title)
		assert.Truef(t, ok, "out of order at %d: %v then %v", i, prev, cur)
	}
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Expand(p, "2024-01-01", "2024-01-21", "bn"))
	}
}

func TestExpand_TimeOfDayDefaults(t *testing.T) {
	p := testPlan()
	p.Recurring = []entities.RecurringTaskRule{
		{Category: entities.CategoryPest, StartDay: 0, EndDay: 0, EveryDays: 1, Title: entities.Phrase("Scout for pests and natural enemies")},
		{Category: entities.CategoryField, StartDay: 0, EndDay: 0, EveryDays: 1, Title: entities.Phrase("Remove weeds from the field")},
		{Category: entities.CategoryFertilizer, StartDay: 0, EndDay: 0, EveryDays: 1, TimeOfDay: entities.TimeNight, Title: entities.Phrase("Split application of nitrogen fertilizer")},
	}
	got := New(nil).Expand(p, "2024-01-01", "2024-01-01", "en")
	require.Len(t, got, 3)
	byTitle := map[string]entities.TaskInstance{}
	for _, inst := range got {
		byTitle[inst.Title] = inst
	}
	assert.Equal(t, "18:00", byTitle["Scout for pests and natural enemies"].Time)
	assert.Equal(t, "13:00", byTitle["Remove weeds from the field"].Time)
	// explicit time-of-day wins over the category default
	assert.Equal(t, "20:30", byTitle["Split application of nitrogen fertilizer"].Time)
}

func TestExpand_LocalizedTitles(t *testing.T) {
	p := testPlan()
	p.Watering = []entities.WateringRule{
		{StartDay: 0, EndDay: 0, EveryDays: 1, Title: entities.Phrase("Irrigate the field")},
	}
	got := New(nil).Expand(p, "2024-01-01", "2024-01-01", "bn")
	require.Len(t, got, 1)
	assert.Equal(t, "জমিতে সেচ দিন", got[0].Title)
}

func TestExpand_CorruptPlantingDate(t *testing.T) {
	p := testPlan()
	p.PlantingDate = "not-a-date"
	p.Watering = []entities.WateringRule{
		{StartDay: 0, EndDay: 10, EveryDays: 1, Title: entities.Phrase("Irrigate the field")},
	}
	assert.Empty(t, New(nil).Expand(p, "2024-01-01", "2024-01-31", "en"))
}

func TestExpandUpcoming(t *testing.T) {
	p := testPlan()
	p.Watering = []entities.WateringRule{
		{StartDay: 0, EndDay: 120, EveryDays: 1, Title: entities.Phrase("Irrigate the field")},
	}
	today := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	got := New(nil).ExpandUpcoming(p, today, 6, "en")
	require.Len(t, got, 7)
	assert.Equal(t, "2024-02-01", got[0].DueDate)
	assert.Equal(t, "2024-02-07", got[6].DueDate)
}
