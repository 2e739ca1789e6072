package smodel

import "time"

type CommunityPost struct {
	ID          int       `json:"id"`
	OwnerID     int       `json:"owner_id" gorm:"index"`
	Owner       *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID;references:ID"`
	Description string    `json:"description"`
	Attachments string    `json:"attachments"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CommunityComment struct {
	ID        int       `json:"id"`
	PostID    int       `json:"post_id" gorm:"index"`
	UserID    int       `json:"user_id"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	ParentID  *int      `json:"parent_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CommunityLike struct {
	ID        int       `json:"id"`
	PostID    int       `json:"post_id" gorm:"uniqueIndex:idx_like_once"`
	UserID    int       `json:"user_id" gorm:"uniqueIndex:idx_like_once"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	CreatedAt time.Time `json:"created_at"`
}
