package ai

import (
	"context"

	"krishi/entities"
	"krishi/pkg/calendar"
)

type mockClient struct{}

// NewMock returns a deterministic offline client, used when no LLM endpoint
// is configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) GeneratePlan(_ context.Context, req PlanRequest) (*PlanResponse, error) {
	harvest := req.HarvestDate
	if harvest == "" {
		planting, err := calendar.ParseLooseDate(req.PlantingDate)
		if err != nil {
			return nil, err
		}
		harvest = calendar.ToISODay(calendar.AddDays(planting, 110))
	}
	return &PlanResponse{
		Title: entities.LocalizedText{
			"en": req.CropName + " plan (mock)",
			"bn": req.CropName + " পরিকল্পনা (মক)",
		},
		Overview: entities.LocalizedText{
			"en": "Mock schedule for local development.",
			"bn": "স্থানীয় ডেভেলপমেন্টের জন্য মক সময়সূচি।",
		},
		HarvestDate: harvest,
		Watering: []entities.WateringRule{
			{StartDay: 0, EndDay: 30, EveryDays: 2, Title: entities.Phrase("Irrigate the field")},
		},
		Recurring: []entities.RecurringTaskRule{
			{Category: entities.CategoryPest, StartDay: 7, EndDay: 60, EveryDays: 7,
				Title: entities.Phrase("Scout for pests and natural enemies")},
		},
		OneOffs: []entities.OneOffTask{
			{Category: entities.CategoryHarvest, DueDate: harvest,
				Title: entities.Phrase("Harvest the crop")},
		},
	}, nil
}
