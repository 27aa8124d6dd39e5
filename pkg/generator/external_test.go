package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi/entities"
	"krishi/pkg/ai"
)

type stubClient struct {
	resp *ai.PlanResponse
	err  error
}

func (s *stubClient) GeneratePlan(context.Context, ai.PlanRequest) (*ai.PlanResponse, error) {
	return s.resp, s.err
}

func TestExternal_NormalizesResponse(t *testing.T) {
	client := &stubClient{resp: &ai.PlanResponse{
		Title:       entities.LocalizedText{"en": "Rice plan", "bn": "ধান পরিকল্পনা"},
		Overview:    entities.LocalizedText{"en": "overview"},
		HarvestDate: "2024-09-20",
		Recurring: []entities.RecurringTaskRule{
			{Category: "spraying", StartDay: 5, EndDay: 50, EveryDays: 10,
				Title: entities.Text{Localized: entities.LocalizedText{"en": "Spray"}, Key: "Spray"}},
			{Category: entities.CategoryPest, StartDay: 7, EndDay: 60, EveryDays: 7}, // empty title, dropped
		},
		OneOffs: []entities.OneOffTask{
			{Category: entities.CategoryHarvest, DueDate: "2024-09-20", Title: entities.Phrase("Harvest the crop")},
			{Category: entities.CategoryFertilizer, DueDate: "15/07/2024", Title: entities.Phrase("Top dress urea and irrigate afterwards")},
			{Category: entities.CategoryHarvest, DueDate: "soon", Title: entities.Phrase("Harvest the crop")}, // bad date, dropped
		},
	}}
	g := NewExternal(client, 0)

	res, err := g.Generate(context.Background(), Input{
		CropType: "rice", CropName: "rice", Area: 2.0, Planting: date("2024-06-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.SourceGenerated, res.Source)
	assert.Equal(t, "2024-09-20", res.HarvestDate)
	assert.Equal(t, "2024-09-21", res.CleanupDate)

	require.Len(t, res.Recurring, 1)
	assert.Equal(t, entities.CategoryGeneral, res.Recurring[0].Category) // unknown category coerced
	assert.NotEmpty(t, res.Recurring[0].RuleID)
	require.Len(t, res.OneOffs, 2)
	assert.Equal(t, "2024-09-20", res.OneOffs[0].DueDate)
	assert.Equal(t, "2024-07-15", res.OneOffs[1].DueDate, "loose due dates must come out as ISO")
}

func TestExternal_HarvestGuard(t *testing.T) {
	client := &stubClient{resp: &ai.PlanResponse{
		Title:       entities.LocalizedText{"en": "t"},
		Overview:    entities.LocalizedText{"en": "o"},
		HarvestDate: "2024-05-01", // before planting
	}}
	res, err := NewExternal(client, 0).Generate(context.Background(), Input{
		CropType: "rice", CropName: "rice", Area: 1.0, Planting: date("2024-06-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-02", res.HarvestDate) // forced to planting + 1
	assert.Equal(t, "2024-06-03", res.CleanupDate)
}

func TestExternal_PropagatesFailure(t *testing.T) {
	g := NewExternal(&stubClient{err: errors.New("boom")}, 0)
	_, err := g.Generate(context.Background(), Input{
		CropType: "rice", CropName: "rice", Area: 1.0, Planting: date("2024-06-01"),
	})
	assert.Error(t, err)
}
