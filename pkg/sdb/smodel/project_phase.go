package smodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectPhase statuses. Unlike negotiation phases these are driven by the
// phase state machine: pending -> in_progress -> waiting_client_review ->
// done, with reject sending waiting_client_review back to in_progress.
// Deleted is a soft-delete tombstone, the row stays in storage.
const (
	PhaseStatusPending             = "pending"
	PhaseStatusInProgress          = "in_progress"
	PhaseStatusWaitingClientReview = "waiting_client_review"
	PhaseStatusDone                = "done"
	PhaseStatusDeleted             = "deleted"
)

// ProjectPhase ordering within a project is by creation time, there is no
// explicit sequence column. "Next phase" means the earliest phase created
// after this one.
type ProjectPhase struct {
	ID            int             `json:"id"`
	UUID          string          `json:"uuid"`
	ProjectID     int             `json:"project_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Budget        decimal.Decimal `json:"budget" gorm:"type:decimal(10,2)"`
	EstimatedDays int             `json:"estimated_days"`
	Deliverables  string          `json:"deliverables"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
