package events

import "time"

const (
	SalaryCycleLockedTopic     = "payroll.salary.cycle.locked.v1"
	SalaryCycleLockedEventType = "salary.cycle.locked"
)

type SalaryCycleLockedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	CycleID    string    `json:"cycle_id"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	LockedBy   string    `json:"locked_by"`
	Inserted   int       `json:"inserted"`
	OccurredAt time.Time `json:"occurred_at"`
}
