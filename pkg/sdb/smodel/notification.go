package smodel

import "time"

type Notification struct {
	ID         int       `json:"id"`
	ReceiverID int       `json:"receiver_id" gorm:"index"`
	Content    string    `json:"content"`
	Seen       bool      `json:"seen"`
	CreatedAt  time.Time `json:"created_at"`
}
