package smodel

import "time"

const (
	OfferTypeJob        = "job"
	OfferTypeInternship = "internship"
)

// Offer is a job or internship posting by a company.
type Offer struct {
	ID           int       `json:"id"`
	CompanyID    int       `json:"company_id" gorm:"index"`
	Company      *Company  `json:"company,omitempty" gorm:"foreignKey:CompanyID;references:ID"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Requirements string    `json:"requirements"`
	Duration     string    `json:"duration"`
	WhatWeOffer  string    `json:"what_we_offer"`
	Attachment   string    `json:"attachment"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
