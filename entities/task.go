package entities

// TaskInstance is one concrete, dated, localized occurrence derived from a
// plan's rules. Instances are never persisted; they are recomputed per query.
// Two instances are the same task when (PlanID, DueDate, Title) match.
type TaskInstance struct {
	PlanID    string   `json:"plan_id"`
	CropName  string   `json:"crop_name"`
	PlanTitle string   `json:"plan_title"`
	Category  string   `json:"category"`
	Title     string   `json:"title"`
	DueDate   string   `json:"due_date"` // YYYY-MM-DD
	TimeOfDay string   `json:"time_of_day"`
	Time      string   `json:"time"` // HH:MM
	Notes     string   `json:"notes,omitempty"`
	Qty       *float64 `json:"qty,omitempty"` // water-amount hint, on-date queries only
	Unit      string   `json:"unit,omitempty"`
}

// DedupKey is the identity triple used to collapse duplicates.
func (t TaskInstance) DedupKey() string {
	return t.PlanID + "|" + t.DueDate + "|" + t.Title
}
