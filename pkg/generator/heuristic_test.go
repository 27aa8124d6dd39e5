package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi/entities"
	"krishi/pkg/locale"
)

func date(iso string) time.Time {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		panic(err)
	}
	return d
}

func TestHeuristic_RiceMaturityDefault(t *testing.T) {
	h := NewHeuristic(nil)
	res, err := h.Generate(context.Background(), Input{
		CropType: "rice", CropName: "rice", Area: 2.0,
		Planting: date("2024-06-01"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-09-29", res.HarvestDate) // planting + 120 days
	assert.Equal(t, "2024-09-30", res.CleanupDate)
	assert.Equal(t, entities.SourceHeuristic, res.Source)
	assert.Equal(t, "Rice cultivation plan", res.Title.Default())

	// day-0 one-off carries the basal fertilization phrase
	var basal bool
	for _, o := range res.OneOffs {
		if o.DueDate == "2024-06-01" && o.Category == entities.CategoryFertilizer {
			assert.Equal(t, "Basal fertilization (FYM/compost + recommended NPK) and zinc if needed", o.Title.Key)
			basal = true
		}
	}
	assert.True(t, basal, "missing day-0 basal fertilization task")

	// early watering rule covers day 0 with a daily stride
	require.NotEmpty(t, res.Watering)
	assert.Equal(t, 0, res.Watering[0].StartDay)
	assert.Equal(t, 1, res.Watering[0].EveryDays)

	// terminal drainage marker is disabled
	last := res.Watering[len(res.Watering)-1]
	assert.GreaterOrEqual(t, last.EveryDays, entities.NeverStride)
}

func TestHeuristic_PhrasesAreInDictionary(t *testing.T) {
	h := NewHeuristic(nil)
	for _, crop := range []string{"rice", "wheat", "tomato"} {
		res, err := h.Generate(context.Background(), Input{
			CropType: crop, CropName: crop, Area: 1.0, Planting: date("2024-06-01"),
		})
		require.NoError(t, err)
		check := func(txt entities.Text) {
			if txt.Empty() {
				return
			}
			_, ok := locale.Phrases[txt.Key]
			assert.Truef(t, ok, "crop %s: phrase %q not in dictionary", crop, txt.Key)
		}
		for _, w := range res.Watering {
			check(w.Title)
			check(w.Notes)
		}
		for _, r := range res.Recurring {
			check(r.Title)
			check(r.Notes)
		}
		for _, o := range res.OneOffs {
			check(o.Title)
			check(o.Notes)
		}
	}
}

func TestHeuristic_ExplicitHarvestWins(t *testing.T) {
	h := NewHeuristic(nil)
	harvest := date("2024-08-15")
	res, err := h.Generate(context.Background(), Input{
		CropType: "rice", CropName: "rice", Area: 1.0,
		Planting: date("2024-06-01"), Harvest: &harvest,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-08-15", res.HarvestDate)
	assert.Equal(t, "2024-08-16", res.CleanupDate)
}

func TestHeuristic_NamedCropMaturity(t *testing.T) {
	h := NewHeuristic(nil)
	tests := []struct {
		crop    string
		harvest string
	}{
		{"maize", "2024-09-09"},  // 100 days
		{"potato", "2024-09-04"}, // 95 days
	}
	for _, tt := range tests {
		t.Run(tt.crop, func(t *testing.T) {
			res, err := h.Generate(context.Background(), Input{
				CropType: "cereal", CropName: tt.crop, Area: 1.0, Planting: date("2024-06-01"),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.harvest, res.HarvestDate,
				"named crop must use its own maturity, not the generic default")
		})
	}
}

func TestHeuristic_MaturityOverride(t *testing.T) {
	h := NewHeuristic(map[string]int{"rice": 90})
	res, err := h.Generate(context.Background(), Input{
		CropType: "rice", CropName: "rice", Area: 1.0, Planting: date("2024-06-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-08-30", res.HarvestDate)
}

func TestHeuristic_GenericFallbackFamily(t *testing.T) {
	h := NewHeuristic(nil)
	res, err := h.Generate(context.Background(), Input{
		CropType: "vegetable", CropName: "eggplant", Area: 0.5, Planting: date("2024-06-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-09-19", res.HarvestDate) // generic 110 days
	assert.Equal(t, "Crop cultivation plan", res.Title.Default())
	for _, r := range res.Recurring {
		assert.NotEmpty(t, r.RuleID)
	}
}
