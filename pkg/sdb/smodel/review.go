package smodel

import "time"

// Review is a client's rating of a freelancer, at most one per pair.
type Review struct {
	ID           int         `json:"id"`
	ClientID     int         `json:"client_id" gorm:"uniqueIndex:idx_review_pair"`
	Client       *Client     `json:"client,omitempty" gorm:"foreignKey:ClientID;references:ID"`
	FreelancerID int         `json:"freelancer_id" gorm:"uniqueIndex:idx_review_pair"`
	Freelancer   *Freelancer `json:"freelancer,omitempty" gorm:"foreignKey:FreelancerID;references:ID"`
	Rating       int         `json:"rating"`
	Feedback     string      `json:"feedback"`
	IsDeleted    bool        `json:"is_deleted"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
