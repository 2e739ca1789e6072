package smodel

import "time"

const (
	CommentStatusPending  = "pending"
	CommentStatusResolved = "resolved"
	CommentStatusDeleted  = "deleted"
)

// NegotiationComment is a floating comment on a negotiation. Replies thread
// through ParentID. Deletion is a status tombstone.
type NegotiationComment struct {
	ID            int       `json:"id"`
	NegotiationID int       `json:"negotiation_id"`
	UserID        int       `json:"user_id"`
	User          *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	ParentID      *int      `json:"parent_id"`
	Comment       string    `json:"comment"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
