package stor

import (
	"time"

	"github.com/shopspring/decimal"
)

// Typed partial-update payloads. A nil field is left untouched; there is no
// dynamic map merging anywhere in the persistence layer.

type ClientUpdate struct {
	PhoneNumber    *string
	City           *string
	Wilaya         *string
	ProfilePicture *string
}

type FreelancerUpdate struct {
	PhoneNumber     *string
	Description     *string
	Skills          *string
	Categories      *string
	City            *string
	Wilaya          *string
	YearsExperience *int
	SocialLinks     *string
	Education       *string
	CCPAccount      *string
	BaridAccount    *string
	CVPath          *string
	ProfilePicture  *string
}

type CompanyUpdate struct {
	TaxID          *string
	Representative *string
	BusinessType   *string
	Description    *string
	Industry       *string
	Logo           *string
}

type RequestUpdate struct {
	Title       *string
	Category    *string
	Attachments *string
	BudgetMin   *decimal.Decimal
	BudgetMax   *decimal.Decimal
	Status      *string
}

type NegotiationPhaseUpdate struct {
	Title        *string
	Description  *string
	Budget       *decimal.Decimal
	Deadline     *time.Time
	Deliverables *string
	Status       *string
}

type ProjectPhaseUpdate struct {
	Title         *string
	Description   *string
	Budget        *decimal.Decimal
	EstimatedDays *int
	Deliverables  *string
}

type ReviewUpdate struct {
	Rating   *int
	Feedback *string
}

type OfferUpdate struct {
	Title        *string
	Requirements *string
	Duration     *string
	WhatWeOffer  *string
	Attachment   *string
}
