package planner

import (
	"time"

	"github.com/google/uuid"
)

// AIRunType distinguishes what the AI was asked for.
type AIRunType string

const (
	AIRunWeekPlan  AIRunType = "WEEK_PLAN"
	AIRunSlotRegen AIRunType = "SLOT_REGEN"
)

// AIRunStatus is the outcome recorded for an AI planning call.
type AIRunStatus string

const (
	AIRunSuccess     AIRunStatus = "success"
	AIRunInvalidJSON AIRunStatus = "invalid_json"
	AIRunError       AIRunStatus = "error"
)

// AIRun is the audit record kept for every AI planning attempt.
type AIRun struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Type         AIRunType
	Status       AIRunStatus
	Model        string
	LatencyMs    int64
	ErrorCode    string
	ErrorMessage string
	RequestScope string
	CreatedAt    time.Time
}
