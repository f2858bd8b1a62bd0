package model

import (
	"time"

	"github.com/google/uuid"
)

// StatusSuccess is the only status that suppresses a re-send. Failed
// attempts are never recorded, so they are retried on the next run.
const StatusSuccess = "SUCCESS"

// SentNotification proves that a warranty milestone email was delivered for
// a piece of equipment. At most one SUCCESS row exists per
// (equipment, milestone) pair; deleting the row forces a re-send.
type SentNotification struct {
	ID          uuid.UUID `json:"id"`
	EquipmentID uuid.UUID `json:"equipment_id"`
	Milestone   int       `json:"milestone"` // months after the invoice date
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// RunReport aggregates the outcome of one reconciliation run.
type RunReport struct {
	ID         uuid.UUID `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Sent       int       `json:"sent"`
	Failed     int       `json:"failed"`
	Skipped    int       `json:"skipped"`
}
