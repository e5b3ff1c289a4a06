package domain

import "time"

// NudgeRecord is one entry of the per-user nudge history. The history is an
// append-only rolling window; the repository trims it on insert.
type NudgeRecord struct {
	ID          string
	UserID      string
	ProfileID   string
	TemplateID  string
	TimingScore float64
	Load        float64
	CreatedAt   time.Time
}

// Interaction is the recorded outcome of a delivered nudge.
type Interaction struct {
	ID         string
	UserID     string
	NudgeID    string
	ProfileID  string
	TemplateID string
	Outcome    Outcome
	Reason     string
	CreatedAt  time.Time
}
