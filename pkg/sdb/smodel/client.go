package smodel

import "time"

type Client struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id" gorm:"uniqueIndex"`
	User           *User     `json:"user" gorm:"foreignKey:UserID;references:ID"`
	ProfilePicture string    `json:"profile_picture"`
	PhoneNumber    string    `json:"phone_number"`
	City           string    `json:"city"`
	Wilaya         string    `json:"wilaya"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
