package smodel

import "time"

type Company struct {
	ID                 int       `json:"id"`
	UserID             int       `json:"user_id" gorm:"uniqueIndex"`
	User               *User     `json:"user" gorm:"foreignKey:UserID;references:ID"`
	RegistrationNumber string    `json:"registration_number" gorm:"uniqueIndex"`
	TaxID              string    `json:"tax_id"`
	Representative     string    `json:"representative"`
	BusinessType       string    `json:"business_type"`
	Logo               string    `json:"logo"`
	Description        string    `json:"description"`
	Industry           string    `json:"industry"`
	IsVerified         bool      `json:"is_verified"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
