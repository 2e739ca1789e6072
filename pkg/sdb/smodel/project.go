package smodel

import "time"

const (
	ProjectStatusInProgress = "in_progress"
	ProjectStatusDone       = "done"
)

// Project is created from exactly one agreed negotiation. It carries no party
// references of its own, the client and freelancer derive from the
// negotiation.
type Project struct {
	ID            int          `json:"id"`
	UUID          string       `json:"uuid"`
	Slug          string       `json:"slug" gorm:"uniqueIndex"`
	NegotiationID int          `json:"negotiation_id" gorm:"uniqueIndex"`
	Negotiation   *Negotiation `json:"negotiation,omitempty" gorm:"foreignKey:NegotiationID;references:ID"`
	Title         string       `json:"title"`
	Status        string       `json:"status"`
	StartDate     *time.Time   `json:"start_date"`
	EndDate       *time.Time   `json:"end_date"`
	CreatedAt     time.Time    `json:"created_at"`
}
