package smodel

import "time"

const (
	HelpStatusPending  = "pending"
	HelpStatusResolved = "resolved"
)

type HelpTicket struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id" gorm:"index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Problem   string    `json:"problem"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
