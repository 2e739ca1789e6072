package smodel

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RequestStatusPending   = "pending"
	RequestStatusAccepted  = "accepted"
	RequestStatusCompleted = "completed"
	RequestStatusCancelled = "cancelled"
	RequestStatusRejected  = "rejected"
)

// Request is a service request posted by a client. Deleting a request is a
// soft delete, the status moves to cancelled and the row stays.
type Request struct {
	ID          int             `json:"id"`
	UUID        string          `json:"uuid"`
	ClientID    int             `json:"client_id"`
	Client      *Client         `json:"client" gorm:"foreignKey:ClientID;references:ID"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Attachments string          `json:"attachments"`
	BudgetMin   decimal.Decimal `json:"budget_min" gorm:"type:decimal(10,2)"`
	BudgetMax   decimal.Decimal `json:"budget_max" gorm:"type:decimal(10,2)"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
