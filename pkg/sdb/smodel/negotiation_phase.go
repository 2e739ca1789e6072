package smodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// NegotiationPhase statuses are free-form bargaining markers. Unlike project
// phases there is no enforced workflow, parties set them directly while
// negotiating the milestone plan.
const (
	NegotiationPhaseStatusPending          = "pending"
	NegotiationPhaseStatusInProgress       = "in_progress"
	NegotiationPhaseStatusCompleted        = "completed"
	NegotiationPhaseStatusApproved         = "approved"
	NegotiationPhaseStatusRevisionRequired = "revision_required"
)

type NegotiationPhase struct {
	ID            int             `json:"id"`
	UUID          string          `json:"uuid"`
	NegotiationID int             `json:"negotiation_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Budget        decimal.Decimal `json:"budget" gorm:"type:decimal(10,2)"`
	Deadline      *time.Time      `json:"deadline"`
	Deliverables  string          `json:"deliverables"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
